package lottery

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup, h *Handler) {
	lottery := router.Group("/lottery")
	lottery.GET("/prizes", h.ListPrizes)
	lottery.POST("/prizes", h.AddPrize)
	lottery.DELETE("/prizes/:id", h.DeletePrize)
	lottery.GET("/users/:chatId/balance", h.GetUserBalance)
	lottery.DELETE("/users/:chatId/balance", h.ResetBalance)
	lottery.POST("/users/:chatId/tickets", h.AddTickets)
	lottery.DELETE("/users/:chatId/tickets", h.ResetTickets)
	lottery.POST("/award-random", h.AwardRandomUsers)
}
