package admins

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"payadmin-backend/internal/api/v1/common"
	"payadmin-backend/internal/apperr"
	"payadmin-backend/internal/middleware"
	"payadmin-backend/internal/models"
	"payadmin-backend/internal/remote"
	"payadmin-backend/internal/utils"
)

const resource = "admins"

type Handler struct {
	api *remote.Client
}

func NewHandler(api *remote.Client) *Handler {
	return &Handler{api: api}
}

// ListAdminChats godoc
// @Summary List admin chats
// @Tags admins
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.Response{data=[]models.AdminChat}
// @Router /admins [get]
func (h *Handler) ListAdminChats(c *gin.Context) {
	chats, err := h.api.ListAdminChats(c.Request.Context(), middleware.Credential(c))
	if err != nil {
		apperr.Respond(c, err, "Adminlarni yuklashda xatolik")
		return
	}
	if chats == nil {
		chats = []models.AdminChat{}
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Admin chats retrieved successfully", chats))
}

// CreateAdminChat godoc
// @Summary Register an admin chat
// @Tags admins
// @Accept json
// @Security Bearer
// @Param input body CreateAdminChatRequest true "Chat"
// @Success 201 {object} utils.Response
// @Router /admins [post]
func (h *Handler) CreateAdminChat(c *gin.Context) {
	var input CreateAdminChatRequest
	if !utils.BindAndValidate(c, &input) {
		return
	}
	if err := h.api.CreateAdminChat(c.Request.Context(), middleware.Credential(c), input.ChatID); err != nil {
		apperr.Respond(c, err, "Admin qo'shishda xatolik")
		return
	}
	common.RecordAction(c, "create", resource, common.FormatID(input.ChatID), nil)
	c.JSON(http.StatusCreated, utils.NewResponse(http.StatusCreated, "Admin chat created successfully", nil))
}

// SetNotifications godoc
// @Summary Toggle notifications for an admin chat
// @Tags admins
// @Accept json
// @Security Bearer
// @Param chatId path int true "Chat ID"
// @Param input body NotificationsRequest true "Toggle"
// @Success 200 {object} utils.Response
// @Router /admins/{chatId}/notifications [put]
func (h *Handler) SetNotifications(c *gin.Context) {
	chatID, ok := common.ParseID(c, "chatId")
	if !ok {
		return
	}
	var input NotificationsRequest
	if !utils.BindAndValidate(c, &input) {
		return
	}
	if err := h.api.SetAdminNotifications(c.Request.Context(), middleware.Credential(c), chatID, *input.Enable); err != nil {
		apperr.Respond(c, err, "Bildirishnomalarni o'zgartirishda xatolik")
		return
	}
	common.RecordAction(c, "notifications", resource, common.FormatID(chatID), gin.H{"enable": *input.Enable})
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Notifications updated successfully", nil))
}

// DeleteAdminChat godoc
// @Summary Remove an admin chat
// @Tags admins
// @Security Bearer
// @Param chatId path int true "Chat ID"
// @Success 200 {object} utils.Response
// @Router /admins/{chatId} [delete]
func (h *Handler) DeleteAdminChat(c *gin.Context) {
	chatID, ok := common.ParseID(c, "chatId")
	if !ok {
		return
	}
	if err := h.api.DeleteAdminChat(c.Request.Context(), middleware.Credential(c), chatID); err != nil {
		apperr.Respond(c, err, "Adminni o'chirishda xatolik")
		return
	}
	common.RecordAction(c, "delete", resource, common.FormatID(chatID), nil)
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Admin chat deleted successfully", nil))
}
