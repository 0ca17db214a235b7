package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TeluguDelicacies/WebsiteWithAdmin-sub000/internal/http/middleware"
	"github.com/TeluguDelicacies/WebsiteWithAdmin-sub000/internal/http/validation"
	"github.com/TeluguDelicacies/WebsiteWithAdmin-sub000/internal/modules/settings"
	"github.com/TeluguDelicacies/WebsiteWithAdmin-sub000/internal/shared/apperr"
)

type SettingsHandler struct {
	svc *settings.Service
}

func NewSettingsHandler(svc *settings.Service) *SettingsHandler {
	return &SettingsHandler{svc: svc}
}

// Show returns the singleton settings row; initialized false means no row
// exists yet and the form starts blank.
func (h *SettingsHandler) Show(c *gin.Context) {
	row, initialized, err := h.svc.Get(c.Request.Context())
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"data":        row,
		"initialized": initialized,
		"request_id":  middleware.GetRequestID(c),
	})
}

func (h *SettingsHandler) Save(c *gin.Context) {
	var in settings.SiteSettings
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Check the highlighted fields.", validation.FromBindError(err, &in)))
		return
	}

	saved, summary, err := h.svc.Save(c.Request.Context(), in)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	savedJSON(c, http.StatusOK, saved, summary)
}
