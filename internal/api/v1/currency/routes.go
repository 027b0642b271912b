package currency

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup, h *Handler) {
	router.GET("/currency", h.LatestRate)
	router.POST("/currency", h.UpdateRate)
}
