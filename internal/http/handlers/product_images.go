package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TeluguDelicacies/WebsiteWithAdmin-sub000/internal/http/middleware"
	"github.com/TeluguDelicacies/WebsiteWithAdmin-sub000/internal/modules/products"
	"github.com/TeluguDelicacies/WebsiteWithAdmin-sub000/internal/shared/apperr"
	"github.com/TeluguDelicacies/WebsiteWithAdmin-sub000/internal/storage"
	"github.com/TeluguDelicacies/WebsiteWithAdmin-sub000/pkg/view"
)

// ProductImagesHandler uploads, deletes and flags product images.
type ProductImagesHandler struct {
	repo  *products.Repo
	files storage.Storage
	log   *slog.Logger
}

func NewProductImagesHandler(repo *products.Repo, files storage.Storage, log *slog.Logger) *ProductImagesHandler {
	return &ProductImagesHandler{repo: repo, files: files, log: log}
}

func (h *ProductImagesHandler) Upload(c *gin.Context) {
	productID := c.Param("id")

	fh, err := c.FormFile("image")
	if err != nil {
		middleware.Fail(c, apperr.InvalidErr("Attach an image file.", map[string]string{"image": "This field is required."}))
		return
	}

	f, err := fh.Open()
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	defer f.Close()

	res, err := h.files.Put(c.Request.Context(), f, storage.PutInput{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
	})
	if err != nil {
		middleware.Fail(c, apperr.Remote(err))
		return
	}

	existing, err := h.repo.Get(c.Request.Context(), productID)
	if err != nil {
		middleware.Fail(c, apperr.Remote(err))
		return
	}
	position := len(existing.Images) + 1
	isDefault := len(existing.Images) == 0

	im, err := h.repo.AddImage(c.Request.Context(), productID, res.Key, res.URL, isDefault, position)
	if err != nil {
		middleware.Fail(c, apperr.Remote(err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"data": view.ImageVM{
			ID:           im.ID,
			URL:          im.URL,
			IsDefault:    im.IsDefault,
			DisplayOrder: im.DisplayOrder,
		},
		"toast":      view.SuccessToast("Image uploaded."),
		"request_id": middleware.GetRequestID(c),
	})
}

func (h *ProductImagesHandler) Delete(c *gin.Context) {
	productID := c.Param("id")
	imageID := c.Param("imageID")
	ctx := c.Request.Context()

	im, err := h.repo.GetImage(ctx, productID, imageID)
	if err != nil {
		middleware.Fail(c, apperr.NotFoundErr("Image not found."))
		return
	}

	if err := h.repo.DeleteImage(ctx, productID, imageID); err != nil {
		middleware.Fail(c, apperr.Remote(err))
		return
	}
	if im.StorageKey != "" {
		if err := h.files.Delete(ctx, im.StorageKey); err != nil {
			// The row is gone; an orphaned blob is only worth a log line.
			h.log.Warn("orphaned image blob", "key", im.StorageKey, "err", err)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"toast":      view.InfoToast("Image removed."),
		"request_id": middleware.GetRequestID(c),
	})
}

func (h *ProductImagesHandler) SetDefault(c *gin.Context) {
	if err := h.repo.SetDefaultImage(c.Request.Context(), c.Param("id"), c.Param("imageID")); err != nil {
		middleware.Fail(c, apperr.Remote(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"toast":      view.SuccessToast("Default image updated."),
		"request_id": middleware.GetRequestID(c),
	})
}
