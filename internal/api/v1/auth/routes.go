package auth

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the public auth endpoints. Logout accepts requests
// without a token but then only clears the cookie.
func RegisterRoutes(router *gin.RouterGroup, h *Handler) {
	auth := router.Group("/auth")
	auth.POST("/login", h.Login)
	auth.POST("/logout", h.Logout)
	auth.GET("/status", h.Status)
}
