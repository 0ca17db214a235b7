package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TeluguDelicacies/WebsiteWithAdmin-sub000/internal/catalog"
	"github.com/TeluguDelicacies/WebsiteWithAdmin-sub000/internal/http/middleware"
	"github.com/TeluguDelicacies/WebsiteWithAdmin-sub000/internal/http/validation"
	"github.com/TeluguDelicacies/WebsiteWithAdmin-sub000/internal/modules/sections"
	"github.com/TeluguDelicacies/WebsiteWithAdmin-sub000/internal/shared/apperr"
	"github.com/TeluguDelicacies/WebsiteWithAdmin-sub000/pkg/view"
)

// SectionsHandler covers the site-info features and the page-section blocks.
type SectionsHandler struct {
	svc  *sections.Service
	repo *sections.Repo
}

func NewSectionsHandler(svc *sections.Service, repo *sections.Repo) *SectionsHandler {
	return &SectionsHandler{svc: svc, repo: repo}
}

func (h *SectionsHandler) ListFeatures(c *gin.Context) {
	items, err := h.svc.ListFeatures(c.Request.Context())
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	vms := make([]view.FeatureVM, 0, len(items))
	for _, f := range items {
		vms = append(vms, mapFeature(f))
	}
	okJSON(c, vms)
}

func (h *SectionsHandler) NewFeature(c *gin.Context) {
	h.svc.BeginFeatureCreate()
	okJSON(c, view.FeatureVM{})
}

func (h *SectionsHandler) ShowFeature(c *gin.Context) {
	f, err := h.svc.BeginFeatureEdit(c.Request.Context(), c.Param("id"))
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	okJSON(c, mapFeature(f))
}

func (h *SectionsHandler) SaveFeature(c *gin.Context) {
	var in sections.FeatureInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Check the highlighted fields.", validation.FromBindError(err, &in)))
		return
	}

	f, summary, err := h.svc.SaveFeature(c.Request.Context(), in)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	status := http.StatusOK
	if in.ID == "" {
		status = http.StatusCreated
	}
	savedJSON(c, status, mapFeature(f), summary)
}

func (h *SectionsHandler) DeleteFeature(c *gin.Context) {
	if err := h.svc.DeleteFeature(c.Request.Context(), c.Param("id")); err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"toast":      view.InfoToast("Feature deleted."),
		"request_id": middleware.GetRequestID(c),
	})
}

// ReorderFeatures writes feature_order, not display_order; the repo's
// dedicated writer carries that distinction.
func (h *SectionsHandler) ReorderFeatures(c *gin.Context) {
	var req idListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Invalid reorder request.", validation.FromBindError(err, &req)))
		return
	}

	ctx := c.Request.Context()
	if err := catalog.CommitOrder(ctx, h.repo.FeatureOrders(), catalog.Updates(req.IDs)); err != nil {
		middleware.Fail(c, apperr.Remote(err))
		return
	}

	items, err := h.svc.ListFeatures(ctx)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	vms := make([]view.FeatureVM, 0, len(items))
	for _, f := range items {
		vms = append(vms, mapFeature(f))
	}
	savedJSON(c, http.StatusOK, vms, []string{"Order saved"})
}

func (h *SectionsHandler) ListSections(c *gin.Context) {
	items, err := h.svc.ListSections(c.Request.Context(), c.Query("page"))
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	vms := make([]view.SectionVM, 0, len(items))
	for _, sec := range items {
		vms = append(vms, mapSection(sec))
	}
	okJSON(c, vms)
}

func (h *SectionsHandler) NewSection(c *gin.Context) {
	h.svc.BeginSectionCreate()
	okJSON(c, view.SectionVM{Visible: true})
}

func (h *SectionsHandler) ShowSection(c *gin.Context) {
	sec, err := h.svc.BeginSectionEdit(c.Request.Context(), c.Param("id"))
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	okJSON(c, mapSection(sec))
}

func (h *SectionsHandler) SaveSection(c *gin.Context) {
	var in sections.SectionInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Check the highlighted fields.", validation.FromBindError(err, &in)))
		return
	}

	sec, summary, err := h.svc.SaveSection(c.Request.Context(), in)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	status := http.StatusOK
	if in.ID == "" {
		status = http.StatusCreated
	}
	savedJSON(c, status, mapSection(sec), summary)
}

func (h *SectionsHandler) DeleteSection(c *gin.Context) {
	if err := h.svc.DeleteSection(c.Request.Context(), c.Param("id")); err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"toast":      view.InfoToast("Section deleted."),
		"request_id": middleware.GetRequestID(c),
	})
}

func (h *SectionsHandler) ReorderSections(c *gin.Context) {
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

	items, err := h.svc.ListSections(ctx, "")
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	vms := make([]view.SectionVM, 0, len(items))
	for _, sec := range items {
		vms = append(vms, mapSection(sec))
	}
	savedJSON(c, http.StatusOK, vms, []string{"Order saved"})
}

func mapFeature(f sections.WhyUsFeature) view.FeatureVM {
	return view.FeatureVM{
		ID:           f.ID,
		Title:        f.Title,
		Body:         f.Body,
		Icon:         f.Icon,
		FeatureOrder: f.FeatureOrder,
	}
}

func mapSection(sec sections.PageSection) view.SectionVM {
	return view.SectionVM{
		ID:           sec.ID,
		PageKey:      sec.PageKey,
		Heading:      sec.Heading,
		Body:         sec.Body,
		ImageURL:     sec.ImageURL,
		DisplayOrder: sec.DisplayOrder,
		Visible:      sec.Visible,
	}
}
