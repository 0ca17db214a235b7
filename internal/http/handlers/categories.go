package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TeluguDelicacies/WebsiteWithAdmin-sub000/internal/catalog"
	"github.com/TeluguDelicacies/WebsiteWithAdmin-sub000/internal/http/middleware"
	"github.com/TeluguDelicacies/WebsiteWithAdmin-sub000/internal/http/validation"
	"github.com/TeluguDelicacies/WebsiteWithAdmin-sub000/internal/modules/categories"
	"github.com/TeluguDelicacies/WebsiteWithAdmin-sub000/internal/shared/apperr"
	"github.com/TeluguDelicacies/WebsiteWithAdmin-sub000/pkg/view"
)

type CategoriesHandler struct {
	svc  *categories.Service
	repo *categories.Repo
}

func NewCategoriesHandler(svc *categories.Service, repo *categories.Repo) *CategoriesHandler {
	return &CategoriesHandler{svc: svc, repo: repo}
}

func (h *CategoriesHandler) List(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	vms := make([]view.CategoryVM, 0, len(items))
	for _, cat := range items {
		vms = append(vms, mapCategory(cat))
	}
	okJSON(c, vms)
}

func (h *CategoriesHandler) New(c *gin.Context) {
	h.svc.BeginCreate()
	okJSON(c, view.CategoryVM{Visible: true})
}

func (h *CategoriesHandler) Show(c *gin.Context) {
	cat, err := h.svc.BeginEdit(c.Request.Context(), c.Param("id"))
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	okJSON(c, mapCategory(cat))
}

func (h *CategoriesHandler) Save(c *gin.Context) {
	var in categories.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Check the highlighted fields.", validation.FromBindError(err, &in)))
		return
	}

	cat, summary, err := h.svc.Save(c.Request.Context(), in)
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	status := http.StatusOK
	if in.ID == "" {
		status = http.StatusCreated
	}
	savedJSON(c, status, mapCategory(cat), summary)
}

func (h *CategoriesHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"toast":      view.InfoToast("Category deleted."),
		"request_id": middleware.GetRequestID(c),
	})
}

type idListRequest struct {
	IDs []string `json:"ids" binding:"required"`
}

// Reorder renumbers the global category order from the submitted id list.
func (h *CategoriesHandler) Reorder(c *gin.Context) {
	var req idListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Invalid reorder request.", validation.FromBindError(err, &req)))
		return
	}

	ctx := c.Request.Context()
	if err := catalog.CommitOrder(ctx, h.repo, catalog.Updates(req.IDs)); err != nil {
		middleware.Fail(c, apperr.Remote(err))
		return
	}

	items, err := h.svc.List(ctx)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	vms := make([]view.CategoryVM, 0, len(items))
	for _, cat := range items {
		vms = append(vms, mapCategory(cat))
	}
	savedJSON(c, http.StatusOK, vms, []string{"Order saved"})
}

func mapCategory(cat categories.Category) view.CategoryVM {
	return view.CategoryVM{
		ID:           cat.ID,
		Title:        cat.Title,
		Slug:         cat.Slug,
		SubBrand:     cat.SubBrand,
		Description:  cat.Description,
		HeroText:     cat.HeroText,
		DisplayOrder: cat.DisplayOrder,
		Visible:      cat.Visible,
	}
}
