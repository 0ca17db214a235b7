package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TeluguDelicacies/WebsiteWithAdmin-sub000/internal/catalog"
	"github.com/TeluguDelicacies/WebsiteWithAdmin-sub000/internal/http/middleware"
	"github.com/TeluguDelicacies/WebsiteWithAdmin-sub000/internal/http/validation"
	"github.com/TeluguDelicacies/WebsiteWithAdmin-sub000/internal/modules/testimonials"
	"github.com/TeluguDelicacies/WebsiteWithAdmin-sub000/internal/shared/apperr"
	"github.com/TeluguDelicacies/WebsiteWithAdmin-sub000/pkg/view"
)

type TestimonialsHandler struct {
	svc  *testimonials.Service
	repo *testimonials.Repo
}

func NewTestimonialsHandler(svc *testimonials.Service, repo *testimonials.Repo) *TestimonialsHandler {
	return &TestimonialsHandler{svc: svc, repo: repo}
}

func (h *TestimonialsHandler) List(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	vms := make([]view.TestimonialVM, 0, len(items))
	for _, tm := range items {
		vms = append(vms, mapTestimonial(tm))
	}
	okJSON(c, vms)
}

func (h *TestimonialsHandler) New(c *gin.Context) {
	h.svc.BeginCreate()
	okJSON(c, view.TestimonialVM{Rating: 5})
}

func (h *TestimonialsHandler) Show(c *gin.Context) {
	tm, err := h.svc.BeginEdit(c.Request.Context(), c.Param("id"))
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	okJSON(c, mapTestimonial(tm))
}

func (h *TestimonialsHandler) Save(c *gin.Context) {
	var in testimonials.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Check the highlighted fields.", validation.FromBindError(err, &in)))
		return
	}

	tm, summary, err := h.svc.Save(c.Request.Context(), in)
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	status := http.StatusOK
	if in.ID == "" {
		status = http.StatusCreated
	}
	savedJSON(c, status, mapTestimonial(tm), summary)
}

func (h *TestimonialsHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"toast":      view.InfoToast("Testimonial deleted."),
		"request_id": middleware.GetRequestID(c),
	})
}

func (h *TestimonialsHandler) Reorder(c *gin.Context) {
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
	vms := make([]view.TestimonialVM, 0, len(items))
	for _, tm := range items {
		vms = append(vms, mapTestimonial(tm))
	}
	savedJSON(c, http.StatusOK, vms, []string{"Order saved"})
}

func mapTestimonial(tm testimonials.Testimonial) view.TestimonialVM {
	return view.TestimonialVM{
		ID:           tm.ID,
		Author:       tm.Author,
		Location:     tm.Location,
		Message:      tm.Message,
		Rating:       tm.Rating,
		ProductName:  tm.ProductName,
		DisplayOrder: tm.DisplayOrder,
	}
}
