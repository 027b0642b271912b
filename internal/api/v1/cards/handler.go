package cards

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

const resource = "cards"

type Handler struct {
	api *remote.Client
}

func NewHandler(api *remote.Client) *Handler {
	return &Handler{api: api}
}

// ListCards godoc
// @Summary List cards
// @Tags cards
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.Response{data=[]CardView}
// @Failure 401 {object} utils.Response
// @Failure 502 {object} utils.Response
// @Router /cards [get]
func (h *Handler) ListCards(c *gin.Context) {
	cards, err := h.api.ListCards(c.Request.Context(), middleware.Credential(c))
	if err != nil {
		apperr.Respond(c, err, "Kartalarni yuklashda xatolik yuz berdi")
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Cards retrieved successfully", newCardViews(cards)))
}

// GetCard godoc
// @Summary Get a card
// @Tags cards
// @Produce json
// @Security Bearer
// @Param id path int true "Card ID"
// @Success 200 {object} utils.Response{data=CardView}
// @Failure 404 {object} utils.Response
// @Router /cards/{id} [get]
func (h *Handler) GetCard(c *gin.Context) {
	id, ok := common.ParseID(c, "id")
	if !ok {
		return
	}
	card, err := h.api.GetCard(c.Request.Context(), middleware.Credential(c), id)
	if err != nil {
		apperr.Respond(c, err, "Karta ma'lumotlarini yuklashda xatolik")
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Card retrieved successfully", newCardView(*card)))
}

// bindCard validates the form and normalizes the card number.
func bindCard(c *gin.Context) (models.CardInput, bool) {
	var input models.CardInput
	if !utils.BindAndValidate(c, &input) {
		return input, false
	}
	number, valid := format.NormalizeCardNumber(input.CardNumber)
	if !valid {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Card number must be 16 digits"))
		return input, false
	}
	input.CardNumber = number
	return input, true
}

// CreateCard godoc
// @Summary Create a card
// @Tags cards
// @Accept json
// @Produce json
// @Security Bearer
// @Param input body models.CardInput true "Card"
// @Success 201 {object} utils.Response{data=CardView}
// @Failure 400 {object} utils.Response
// @Router /cards [post]
func (h *Handler) CreateCard(c *gin.Context) {
	input, ok := bindCard(c)
	if !ok {
		return
	}
	card, err := h.api.CreateCard(c.Request.Context(), middleware.Credential(c), input)
	if err != nil {
		apperr.Respond(c, err, "Karta qo'shishda xatolik")
		return
	}
	common.RecordAction(c, "create", resource, common.FormatID(card.ID), gin.H{"ownerName": input.OwnerName})
	c.JSON(http.StatusCreated, utils.NewResponse(http.StatusCreated, "Card created successfully", newCardView(*card)))
}

// UpdateCard godoc
// @Summary Update a card
// @Tags cards
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Card ID"
// @Param input body models.CardInput true "Card"
// @Success 200 {object} utils.Response{data=CardView}
// @Router /cards/{id} [put]
func (h *Handler) UpdateCard(c *gin.Context) {
	id, ok := common.ParseID(c, "id")
	if !ok {
		return
	}
	input, ok := bindCard(c)
	if !ok {
		return
	}
	card, err := h.api.UpdateCard(c.Request.Context(), middleware.Credential(c), id, input)
	if err != nil {
		apperr.Respond(c, err, "Kartani yangilashda xatolik")
		return
	}
	common.RecordAction(c, "update", resource, common.FormatID(id), gin.H{"ownerName": input.OwnerName})
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Card updated successfully", newCardView(*card)))
}

// DeleteCard godoc
// @Summary Delete a card
// @Tags cards
// @Security Bearer
// @Param id path int true "Card ID"
// @Success 200 {object} utils.Response
// @Router /cards/{id} [delete]
func (h *Handler) DeleteCard(c *gin.Context) {
	id, ok := common.ParseID(c, "id")
	if !ok {
		return
	}
	if err := h.api.DeleteCard(c.Request.Context(), middleware.Credential(c), id); err != nil {
		apperr.Respond(c, err, "Kartani o'chirishda xatolik")
		return
	}
	common.RecordAction(c, "delete", resource, common.FormatID(id), nil)
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Card deleted successfully", nil))
}

// SetMainCard godoc
// @Summary Mark a card as the main card
// @Tags cards
// @Security Bearer
// @Param id path int true "Card ID"
// @Success 200 {object} utils.Response
// @Router /cards/{id}/set-main [put]
func (h *Handler) SetMainCard(c *gin.Context) {
	id, ok := common.ParseID(c, "id")
	if !ok {
		return
	}
	if err := h.api.SetMainCard(c.Request.Context(), middleware.Credential(c), id); err != nil {
		apperr.Respond(c, err, "Asosiy kartani o'rnatishda xatolik")
		return
	}
	common.RecordAction(c, "set-main", resource, common.FormatID(id), nil)
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Main card updated successfully", nil))
}

// SyncCards godoc
// @Summary Sync cards and wallet balance from Oson
// @Tags cards
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.Response{data=SyncResponse}
// @Router /cards/sync [post]
func (h *Handler) SyncCards(c *gin.Context) {
	result, err := h.api.SyncCards(c.Request.Context(), middleware.Credential(c))
	if err != nil {
		apperr.Respond(c, err, "Kartalarni sinxronlashda xatolik")
		return
	}
	common.RecordAction(c, "sync", resource, "", gin.H{"cards": len(result.Cards)})
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Cards synced successfully", SyncResponse{
		Cards:                newCardViews(result.Cards),
		WalletBalance:        result.WalletBalance,
		WalletBalanceDisplay: format.CardBalance(result.WalletBalance),
	}))
}
