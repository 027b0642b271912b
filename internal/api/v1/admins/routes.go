package admins

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup, h *Handler) {
	admins := router.Group("/admins")
	admins.GET("", h.ListAdminChats)
	admins.POST("", h.CreateAdminChat)
	admins.PUT("/:chatId/notifications", h.SetNotifications)
	admins.DELETE("/:chatId", h.DeleteAdminChat)
}
