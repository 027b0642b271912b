package broadcast

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"payadmin-backend/internal/api/v1/common"
	"payadmin-backend/internal/apperr"
	"payadmin-backend/internal/middleware"
	"payadmin-backend/internal/models"
	"payadmin-backend/internal/remote"
	"payadmin-backend/internal/utils"
)

const scheduleLayout = "2006-01-02T15:04:05"

type Handler struct {
	api *remote.Client
}

func NewHandler(api *remote.Client) *Handler {
	return &Handler{api: api}
}

// SendBroadcast godoc
// @Summary Send or schedule a broadcast to bot users
// @Tags broadcast
// @Accept json
// @Security Bearer
// @Param input body SendRequest true "Broadcast"
// @Success 200 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Router /broadcast [post]
func (h *Handler) SendBroadcast(c *gin.Context) {
	var input SendRequest
	if !utils.BindAndValidate(c, &input) {
		return
	}

	msg := models.Broadcast{
		MessageText: input.MessageText,
		ButtonText:  input.ButtonText,
		ButtonURL:   input.ButtonURL,
	}
	if input.Schedule {
		at, err := models.ParseUTCTime(input.ScheduledTime)
		if err != nil {
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid scheduledTime"))
			return
		}
		scheduled := at.Format(scheduleLayout)
		msg.ScheduledTime = &scheduled
	}

	if err := h.api.SendBroadcast(c.Request.Context(), middleware.Credential(c), msg); err != nil {
		apperr.Respond(c, err, "Xabar yuborishda xatolik")
		return
	}

	common.RecordAction(c, "send", "broadcast", "", msg)
	message := "Broadcast sent successfully"
	if msg.ScheduledTime != nil {
		message = "Broadcast scheduled successfully"
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse(message, gin.H{"sentAt": time.Now().UTC(), "scheduledTime": msg.ScheduledTime}))
}
