package features

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup, h *Handler) {
	router.GET("/features", h.ListFeatures)
	router.PUT("/features/:name", h.ToggleFeature)
}
