package osonconfig

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup, h *Handler) {
	configs := router.Group("/oson-configs")
	configs.GET("", h.ListConfigs)
	configs.POST("", h.CreateConfig)
	configs.POST("/quick-paste", h.QuickPaste)
	configs.GET("/:id", h.GetConfig)
	configs.PUT("/:id", h.UpdateConfig)
	configs.DELETE("/:id", h.DeleteConfig)
	configs.PUT("/:id/primary", h.SetPrimary)
}
