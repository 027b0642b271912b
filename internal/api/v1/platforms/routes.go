package platforms

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup, h *Handler) {
	platforms := router.Group("/platforms")
	platforms.GET("", h.ListPlatforms)
	platforms.POST("", h.CreatePlatform)
	platforms.GET("/:id", h.GetPlatform)
	platforms.PUT("/:id", h.UpdatePlatform)
	platforms.DELETE("/:id", h.DeletePlatform)
}
