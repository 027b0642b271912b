package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	LoginPath = "/login"
	HomePath  = "/"
)

// SessionState reports whether the remote session is logged in.
type SessionState interface {
	IsAuthenticated() bool
}

// RequireLogin redirects page requests to the login page while logged out.
func RequireLogin(sessions SessionState) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !sessions.IsAuthenticated() {
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RedirectIfLoggedIn sends a logged in user away from the login page.
func RedirectIfLoggedIn(sessions SessionState) gin.HandlerFunc {
	return func(c *gin.Context) {
		if sessions.IsAuthenticated() {
			c.Redirect(http.StatusFound, HomePath)
			c.Abort()
			return
		}
		c.Next()
	}
}

// FallbackRedirect handles unknown page paths by state.
func FallbackRedirect(sessions SessionState) gin.HandlerFunc {
	return func(c *gin.Context) {
		if sessions.IsAuthenticated() {
			c.Redirect(http.StatusFound, HomePath)
			return
		}
		c.Redirect(http.StatusFound, LoginPath)
	}
}
