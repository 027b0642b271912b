package logindevices

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"payadmin-backend/internal/apperr"
	"payadmin-backend/internal/middleware"
	"payadmin-backend/internal/models"
	"payadmin-backend/internal/remote"
	"payadmin-backend/internal/session"
	"payadmin-backend/internal/utils"
)

type Handler struct {
	api *remote.Client
}

func NewHandler(api *remote.Client) *Handler {
	return &Handler{api: api}
}

// ListLoginDevices godoc
// @Summary List recorded panel logins, newest first
// @Tags login-devices
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.Response{data=[]models.LoginEvent}
// @Router /login-devices [get]
func (h *Handler) ListLoginDevices(c *gin.Context) {
	events, err := h.api.LoginEvents(c.Request.Context(), middleware.Credential(c))
	if err != nil {
		apperr.Respond(c, err, "Qurilmalarni yuklashda xatolik")
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Login devices retrieved successfully", normalize(events)))
}

// normalize labels every event with a device name and orders the list by
// login time, newest first. Login times are already UTC after decoding.
func normalize(events []models.LoginEvent) []models.LoginEvent {
	out := make([]models.LoginEvent, len(events))
	copy(out, events)
	for i := range out {
		if out[i].DeviceName == "" {
			out[i].DeviceName = session.DeviceName(out[i].UserAgent)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].LoginTime.After(out[j].LoginTime.Time)
	})
	return out
}
