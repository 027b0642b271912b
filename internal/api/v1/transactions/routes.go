package transactions

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup, h *Handler) {
	transactions := router.Group("/transactions")
	transactions.GET("", h.ListTransactions)
	transactions.GET("/export", h.ExportTransactions)
	transactions.POST("/bulk-delete", h.BulkDeleteTransactions)
	transactions.DELETE("/:id", h.DeleteTransaction)
}
