package logindevices

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup, h *Handler) {
	router.GET("/login-devices", h.ListLoginDevices)
}
