package humo

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup, h *Handler) {
	humo := router.Group("/humo")
	humo.POST("/new-number", h.NewNumber)
	humo.POST("/sms-code", h.SMSCode)
	humo.POST("/two-step", h.TwoStep)
	humo.GET("/active", h.ListActive)
	humo.DELETE("", h.DeleteAccount)
}
