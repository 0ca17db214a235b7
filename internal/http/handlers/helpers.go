package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/TeluguDelicacies/WebsiteWithAdmin-sub000/internal/http/middleware"
	"github.com/TeluguDelicacies/WebsiteWithAdmin-sub000/pkg/view"
)

func okJSON(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{
		"data":       data,
		"request_id": middleware.GetRequestID(c),
	})
}

func savedJSON(c *gin.Context, status int, data any, summary []string) {
	c.JSON(status, gin.H{
		"data":       data,
		"toast":      view.SuccessToast(summaryMessage(summary)),
		"request_id": middleware.GetRequestID(c),
	})
}

// summaryMessage joins the change labels into the toast body.
func summaryMessage(labels []string) string {
	return strings.Join(labels, ", ")
}
