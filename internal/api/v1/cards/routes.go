package cards

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup, h *Handler) {
	cards := router.Group("/cards")
	cards.GET("", h.ListCards)
	cards.POST("", h.CreateCard)
	cards.POST("/sync", h.SyncCards)
	cards.GET("/:id", h.GetCard)
	cards.PUT("/:id", h.UpdateCard)
	cards.DELETE("/:id", h.DeleteCard)
	cards.PUT("/:id/set-main", h.SetMainCard)
}
