package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TeluguDelicacies/WebsiteWithAdmin-sub000/internal/modules/auth"
)

const (
	ctxKeySession = "session"
	ctxKeyUser    = "user"
)

// SessionCfg holds configuration for the session middleware.
type SessionCfg struct {
	Auth       *auth.Service
	Log        *slog.Logger
	CookieName string
	Secure     bool
}

// Session resolves the operator's session cookie. An expired or idle-timed-out
// session clears the cookie and tells the client to show the forced-logout
// notice; requests without a cookie pass through unauthenticated.
func Session(cfg SessionCfg) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(cfg.CookieName)
		if err != nil || sessionID == "" {
			c.Next()
			return
		}

		sess, user, err := cfg.Auth.Resolve(c.Request.Context(), sessionID)
		if err != nil {
			c.SetCookie(cfg.CookieName, "", -1, "/", "", cfg.Secure, true)
			if errors.Is(err, auth.ErrSessionExpired) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error":      "Session expired due to inactivity. Please sign in again.",
					"request_id": GetRequestID(c),
				})
				return
			}
			cfg.Log.Error("session resolve failed", "err", err, "request_id", GetRequestID(c))
			c.Next()
			return
		}

		c.Set(ctxKeySession, &sess)
		c.Set(ctxKeyUser, &user)
		c.Next()
	}
}

// CurrentUser retrieves the authenticated operator from the gin context.
func CurrentUser(c *gin.Context) (*auth.User, bool) {
	v, ok := c.Get(ctxKeyUser)
	if !ok {
		return nil, false
	}
	u, ok := v.(*auth.User)
	return u, ok
}

// CurrentSession retrieves the resolved session, if any.
func CurrentSession(c *gin.Context) (*auth.Session, bool) {
	v, ok := c.Get(ctxKeySession)
	if !ok {
		return nil, false
	}
	s, ok := v.(*auth.Session)
	return s, ok
}
