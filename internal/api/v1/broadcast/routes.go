package broadcast

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup, h *Handler) {
	router.POST("/broadcast", h.SendBroadcast)
}
