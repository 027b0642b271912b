package lottery

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"payadmin-backend/internal/api/v1/common"
	"payadmin-backend/internal/apperr"
	"payadmin-backend/internal/format"
	"payadmin-backend/internal/middleware"
	"payadmin-backend/internal/models"
	"payadmin-backend/internal/remote"
	"payadmin-backend/internal/utils"
)

const resource = "lottery"

type Handler struct {
	api *remote.Client
}

func NewHandler(api *remote.Client) *Handler {
	return &Handler{api: api}
}

// ListPrizes godoc
// @Summary List lottery prizes
// @Tags lottery
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.Response{data=[]PrizeView}
// @Router /lottery/prizes [get]
func (h *Handler) ListPrizes(c *gin.Context) {
	prizes, err := h.api.ListPrizes(c.Request.Context(), middleware.Credential(c))
	if err != nil {
		apperr.Respond(c, err, "Sovrinlarni yuklashda xatolik")
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Prizes retrieved successfully", newPrizeViews(prizes)))
}

// AddPrize godoc
// @Summary Add a lottery prize
// @Tags lottery
// @Accept json
// @Produce json
// @Security Bearer
// @Param input body models.PrizeInput true "Prize"
// @Success 201 {object} utils.Response{data=models.Prize}
// @Router /lottery/prizes [post]
func (h *Handler) AddPrize(c *gin.Context) {
	var input models.PrizeInput
	if !utils.BindAndValidate(c, &input) {
		return
	}
	prize, err := h.api.AddPrize(c.Request.Context(), middleware.Credential(c), input)
	if err != nil {
		apperr.Respond(c, err, "Sovrin qo'shishda xatolik")
		return
	}
	common.RecordAction(c, "add-prize", resource, common.FormatID(prize.ID), input)
	c.JSON(http.StatusCreated, utils.NewResponse(http.StatusCreated, "Prize added successfully", prize))
}

// DeletePrize godoc
// @Summary Delete a lottery prize
// @Tags lottery
// @Security Bearer
// @Param id path int true "Prize ID"
// @Success 200 {object} utils.Response
// @Router /lottery/prizes/{id} [delete]
func (h *Handler) DeletePrize(c *gin.Context) {
	id, ok := common.ParseID(c, "id")
	if !ok {
		return
	}
	if err := h.api.DeletePrize(c.Request.Context(), middleware.Credential(c), id); err != nil {
		apperr.Respond(c, err, "Sovrinni o'chirishda xatolik")
		return
	}
	common.RecordAction(c, "delete-prize", resource, common.FormatID(id), nil)
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Prize deleted successfully", nil))
}

// GetUserBalance godoc
// @Summary Get a user's lottery balance
// @Tags lottery
// @Produce json
// @Security Bearer
// @Param chatId path int true "Chat ID"
// @Success 200 {object} utils.Response{data=BalanceView}
// @Router /lottery/users/{chatId}/balance [get]
func (h *Handler) GetUserBalance(c *gin.Context) {
	chatID, ok := common.ParseID(c, "chatId")
	if !ok {
		return
	}
	balance, err := h.api.UserBalance(c.Request.Context(), middleware.Credential(c), chatID)
	if err != nil {
		apperr.Respond(c, err, "Foydalanuvchi balansini yuklashda xatolik")
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Balance retrieved successfully", BalanceView{
		UserBalance:    *balance,
		BalanceDisplay: format.Amount(balance.Balance),
	}))
}

// AddTickets godoc
// @Summary Give lottery tickets to a user
// @Tags lottery
// @Accept json
// @Security Bearer
// @Param chatId path int true "Chat ID"
// @Param input body TicketsRequest true "Tickets"
// @Success 200 {object} utils.Response
// @Router /lottery/users/{chatId}/tickets [post]
func (h *Handler) AddTickets(c *gin.Context) {
	chatID, ok := common.ParseID(c, "chatId")
	if !ok {
		return
	}
	var input TicketsRequest
	if !utils.BindAndValidate(c, &input) {
		return
	}
	if err := h.api.AddTickets(c.Request.Context(), middleware.Credential(c), chatID, input.Amount); err != nil {
		apperr.Respond(c, err, "Chipta qo'shishda xatolik")
		return
	}
	common.RecordAction(c, "add-tickets", resource, common.FormatID(chatID), input)
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Tickets added successfully", nil))
}

// ResetTickets godoc
// @Summary Reset a user's tickets
// @Tags lottery
// @Security Bearer
// @Param chatId path int true "Chat ID"
// @Success 200 {object} utils.Response
// @Router /lottery/users/{chatId}/tickets [delete]
func (h *Handler) ResetTickets(c *gin.Context) {
	chatID, ok := common.ParseID(c, "chatId")
	if !ok {
		return
	}
	if err := h.api.ResetTickets(c.Request.Context(), middleware.Credential(c), chatID); err != nil {
		apperr.Respond(c, err, "Chiptalarni tozalashda xatolik")
		return
	}
	common.RecordAction(c, "reset-tickets", resource, common.FormatID(chatID), nil)
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Tickets reset successfully", nil))
}

// ResetBalance godoc
// @Summary Reset a user's lottery balance
// @Tags lottery
// @Security Bearer
// @Param chatId path int true "Chat ID"
// @Success 200 {object} utils.Response
// @Router /lottery/users/{chatId}/balance [delete]
func (h *Handler) ResetBalance(c *gin.Context) {
	chatID, ok := common.ParseID(c, "chatId")
	if !ok {
		return
	}
	if err := h.api.ResetBalance(c.Request.Context(), middleware.Credential(c), chatID); err != nil {
		apperr.Respond(c, err, "Balansni tozalashda xatolik")
		return
	}
	common.RecordAction(c, "reset-balance", resource, common.FormatID(chatID), nil)
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Balance reset successfully", nil))
}

// AwardRandomUsers godoc
// @Summary Award a prize to random users
// @Description randomUsers may not exceed totalUsers.
// @Tags lottery
// @Accept json
// @Security Bearer
// @Param input body models.RandomAward true "Award"
// @Success 200 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Router /lottery/award-random [post]
func (h *Handler) AwardRandomUsers(c *gin.Context) {
	var input models.RandomAward
	if !utils.BindAndValidate(c, &input) {
		return
	}
	if err := h.api.AwardRandomUsers(c.Request.Context(), middleware.Credential(c), input); err != nil {
		apperr.Respond(c, err, "Tasodifiy foydalanuvchilarni taqdirlashda xatolik")
		return
	}
	common.RecordAction(c, "award-random", resource, "", input)
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Users awarded successfully", nil))
}
