package features

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

type ToggleRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

type Handler struct {
	api *remote.Client
}

func NewHandler(api *remote.Client) *Handler {
	return &Handler{api: api}
}

// ListFeatures godoc
// @Summary List bot feature flags
// @Tags features
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.Response{data=[]models.Feature}
// @Router /features [get]
func (h *Handler) ListFeatures(c *gin.Context) {
	features, err := h.api.ListFeatures(c.Request.Context(), middleware.Credential(c))
	if err != nil {
		apperr.Respond(c, err, "Funksiyalarni yuklashda xatolik")
		return
	}
	if features == nil {
		features = []models.Feature{}
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Features retrieved successfully", features))
}

// ToggleFeature godoc
// @Summary Enable or disable a feature
// @Tags features
// @Accept json
// @Security Bearer
// @Param name path string true "Feature name"
// @Param input body ToggleRequest true "State"
// @Success 200 {object} utils.Response{data=models.Feature}
// @Router /features/{name} [put]
func (h *Handler) ToggleFeature(c *gin.Context) {
	name := c.Param("name")
	var input ToggleRequest
	if !utils.BindAndValidate(c, &input) {
		return
	}
	if err := h.api.SetFeature(c.Request.Context(), middleware.Credential(c), name, *input.Enabled); err != nil {
		apperr.Respond(c, err, "Funksiyani o'zgartirishda xatolik")
		return
	}
	common.RecordAction(c, "toggle", "features", name, gin.H{"enabled": *input.Enabled})
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Feature updated successfully", models.Feature{Name: name, Enabled: *input.Enabled}))
}
