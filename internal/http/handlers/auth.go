package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TeluguDelicacies/WebsiteWithAdmin-sub000/internal/http/middleware"
	"github.com/TeluguDelicacies/WebsiteWithAdmin-sub000/internal/http/validation"
	"github.com/TeluguDelicacies/WebsiteWithAdmin-sub000/internal/modules/auth"
	"github.com/TeluguDelicacies/WebsiteWithAdmin-sub000/internal/shared/apperr"
	"github.com/TeluguDelicacies/WebsiteWithAdmin-sub000/pkg/view"
)

type AuthHandler struct {
	svc        *auth.Service
	cookieName string
	secure     bool
}

func NewAuthHandler(svc *auth.Service, cookieName string, secure bool) *AuthHandler {
	return &AuthHandler{svc: svc, cookieName: cookieName, secure: secure}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Check the highlighted fields.", validation.FromBindError(err, &req)))
		return
	}

	sess, user, err := h.svc.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	c.SetCookie(h.cookieName, sess.ID, 0, "/", "", h.secure, true)
	c.JSON(http.StatusOK, gin.H{
		"data":       gin.H{"email": user.Email, "role": user.Role},
		"toast":      view.SuccessToast("Signed in."),
		"request_id": middleware.GetRequestID(c),
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if sess, ok := middleware.CurrentSession(c); ok {
		if err := h.svc.SignOut(c.Request.Context(), sess.ID); err != nil {
			middleware.Fail(c, err)
			return
		}
	}
	c.SetCookie(h.cookieName, "", -1, "/", "", h.secure, true)
	c.JSON(http.StatusOK, gin.H{
		"toast":      view.InfoToast("Signed out."),
		"request_id": middleware.GetRequestID(c),
	})
}

// Session reports who is signed in; the client uses this on page load.
func (h *AuthHandler) Session(c *gin.Context) {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusOK, gin.H{
			"data":       nil,
			"request_id": middleware.GetRequestID(c),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"data":       gin.H{"email": u.Email, "role": u.Role},
		"request_id": middleware.GetRequestID(c),
	})
}
