package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TeluguDelicacies/WebsiteWithAdmin-sub000/internal/catalog"
	"github.com/TeluguDelicacies/WebsiteWithAdmin-sub000/internal/http/middleware"
	"github.com/TeluguDelicacies/WebsiteWithAdmin-sub000/internal/http/validation"
	"github.com/TeluguDelicacies/WebsiteWithAdmin-sub000/internal/modules/categories"
	"github.com/TeluguDelicacies/WebsiteWithAdmin-sub000/internal/modules/products"
	"github.com/TeluguDelicacies/WebsiteWithAdmin-sub000/internal/shared/apperr"
	"github.com/TeluguDelicacies/WebsiteWithAdmin-sub000/pkg/view"
)

// ProductsHandler serves the product admin surface: the projected list, the
// edit forms, saves, deletes, image management and reordering.
type ProductsHandler struct {
	svc   *products.Service
	repo  *products.Repo
	cats  *categories.Service
	store *catalog.Store
	log   *slog.Logger
}

func NewProductsHandler(svc *products.Service, repo *products.Repo, cats *categories.Service, store *catalog.Store, log *slog.Logger) *ProductsHandler {
	return &ProductsHandler{svc: svc, repo: repo, cats: cats, store: store, log: log}
}

// List refreshes the entity cache and returns the filtered, ordered
// projection. Switching a filter re-invokes only the projection; the client
// passes the active filter on every call.
func (h *ProductsHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	prods, err := h.svc.List(ctx)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	cats, err := h.cats.List(ctx)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	h.refreshStore(prods, cats)

	f := catalog.Filter{
		Category:     c.DefaultQuery("category", catalog.CategoryAll),
		TrendingOnly: c.Query("trending") == "true",
	}
	entries, canReorder := catalog.Project(h.store.Products(), h.store.Rank, f)

	vm := view.ProductListVM{Items: make([]view.ProductVM, 0, len(entries)), CanReorder: canReorder}
	for _, e := range entries {
		if p, ok := e.(products.Product); ok {
			vm.Items = append(vm.Items, h.mapProduct(p))
		}
	}
	okJSON(c, vm)
}

// New opens a create form: the edit snapshot is cleared so the eventual save
// reports "created".
func (h *ProductsHandler) New(c *gin.Context) {
	h.svc.BeginCreate()
	okJSON(c, view.ProductVM{Variants: []view.VariantVM{}, Nutrition: map[string]any{}, Visible: true})
}

// Show opens an edit form for an existing product and captures its snapshot.
func (h *ProductsHandler) Show(c *gin.Context) {
	p, err := h.svc.BeginEdit(c.Request.Context(), c.Param("id"))
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	okJSON(c, h.mapProduct(p))
}

// Cancel closes an edit form without saving; the snapshot is discarded.
func (h *ProductsHandler) Cancel(c *gin.Context) {
	h.svc.CancelEdit()
	c.Status(http.StatusNoContent)
}

func (h *ProductsHandler) Save(c *gin.Context) {
	var in products.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Check the highlighted fields.", validation.FromBindError(err, &in)))
		return
	}

	p, summary, err := h.svc.Save(c.Request.Context(), in)
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	status := http.StatusOK
	if in.ID == "" {
		status = http.StatusCreated
	}
	savedJSON(c, status, h.mapProduct(p), summary)
}

func (h *ProductsHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"toast":      view.InfoToast("Product deleted."),
		"request_id": middleware.GetRequestID(c),
	})
}

type moveRequest struct {
	IDs  []string `json:"ids" binding:"required"`
	From int      `json:"from"`
	To   int      `json:"to"`
}

// Move applies one drop gesture to the given order and returns the new order
// without persisting anything; the client renders it and offers Save Order.
func (h *ProductsHandler) Move(c *gin.Context) {
	var req moveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Invalid drop gesture.", validation.FromBindError(err, &req)))
		return
	}
	okJSON(c, gin.H{"ids": catalog.ApplyDrop(req.IDs, req.From, req.To)})
}

type reorderRequest struct {
	Category string   `json:"category" binding:"required"`
	IDs      []string `json:"ids" binding:"required"`
}

// Reorder commits a Save Order: the container's child order arrives as an id
// list, each row gets its dense 1-based position written sequentially, and
// the response carries a fresh fetch of the category (the source of truth) —
// also after a partial failure, which keeps the rows already written.
func (h *ProductsHandler) Reorder(c *gin.Context) {
	var req reorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Invalid reorder request.", validation.FromBindError(err, &req)))
		return
	}
	f := catalog.Filter{Category: req.Category}
	if !f.AllowsReorder() {
		middleware.Fail(c, apperr.InvalidErr("Select a single category before reordering.", nil))
		return
	}

	ctx := c.Request.Context()
	commitErr := catalog.CommitOrder(ctx, h.repo, catalog.Updates(req.IDs))

	fresh, err := h.repo.ListByCategory(ctx, req.Category)
	if err != nil {
		middleware.Fail(c, apperr.Remote(err))
		return
	}
	items := make([]view.ProductVM, 0, len(fresh))
	for _, p := range fresh {
		items = append(items, h.mapProduct(p))
	}

	if commitErr != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error":      commitErr.Error(),
			"data":       view.ProductListVM{Items: items, CanReorder: true},
			"request_id": middleware.GetRequestID(c),
		})
		return
	}
	savedJSON(c, http.StatusOK, view.ProductListVM{Items: items, CanReorder: true}, []string{"Order saved"})
}

func (h *ProductsHandler) refreshStore(prods []products.Product, cats []categories.Category) {
	entries := make([]catalog.Entry, len(prods))
	for i, p := range prods {
		entries[i] = p
	}
	refs := make([]catalog.CategoryRef, len(cats))
	for i, cat := range cats {
		refs[i] = catalog.CategoryRef{Slug: cat.Slug, Order: cat.DisplayOrder}
	}
	h.store.SetProducts(entries)
	h.store.SetCategories(refs)
}

func (h *ProductsHandler) mapProduct(p products.Product) view.ProductVM {
	variants := p.ParseVariants(h.log)
	vms := make([]view.VariantVM, 0, len(variants))
	for _, v := range variants {
		vms = append(vms, view.VariantVM{
			Quantity:  v.Quantity,
			Price:     v.Price,
			MRP:       v.MRP,
			Stock:     v.Stock,
			BatchSold: v.BatchSold,
			TotalSold: v.TotalSold,
			Packaging: v.Packaging,
		})
	}
	images := make([]view.ImageVM, 0, len(p.Images))
	for _, im := range p.Images {
		images = append(images, view.ImageVM{
			ID:           im.ID,
			URL:          im.URL,
			IsDefault:    im.IsDefault,
			DisplayOrder: im.DisplayOrder,
		})
	}
	return view.ProductVM{
		ID:           p.ID,
		Name:         p.Name,
		CategorySlug: p.CategorySlug,
		Tagline:      p.Tagline,
		Description:  p.Description,
		Nutrition:    p.ParseNutrition(h.log),
		Variants:     vms,
		Stock:        p.Stock,
		Visible:      p.Visible,
		Trending:     p.Trending,
		DisplayOrder: p.DisplayOrder,
		Slug:         p.Slug,
		Images:       images,
	}
}
