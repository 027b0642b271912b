package platforms

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

const resource = "platforms"

type Handler struct {
	api *remote.Client
}

func NewHandler(api *remote.Client) *Handler {
	return &Handler{api: api}
}

// auditPayload drops the password before an input reaches the activity log.
func auditPayload(in models.PlatformInput) models.PlatformInput {
	in.Password = ""
	return in
}

// ListPlatforms godoc
// @Summary List platforms
// @Tags platforms
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.Response{data=[]models.Platform}
// @Router /platforms [get]
func (h *Handler) ListPlatforms(c *gin.Context) {
	platforms, err := h.api.ListPlatforms(c.Request.Context(), middleware.Credential(c))
	if err != nil {
		apperr.Respond(c, err, "Platformalarni yuklashda xatolik")
		return
	}
	if platforms == nil {
		platforms = []models.Platform{}
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Platforms retrieved successfully", platforms))
}

// GetPlatform godoc
// @Summary Get a platform
// @Tags platforms
// @Produce json
// @Security Bearer
// @Param id path int true "Platform ID"
// @Success 200 {object} utils.Response{data=models.Platform}
// @Router /platforms/{id} [get]
func (h *Handler) GetPlatform(c *gin.Context) {
	id, ok := common.ParseID(c, "id")
	if !ok {
		return
	}
	platform, err := h.api.GetPlatform(c.Request.Context(), middleware.Credential(c), id)
	if err != nil {
		apperr.Respond(c, err, "Platforma ma'lumotlarini yuklashda xatolik")
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Platform retrieved successfully", platform))
}

// CreatePlatform godoc
// @Summary Create a platform
// @Description The password is required on create and never returned.
// @Tags platforms
// @Accept json
// @Produce json
// @Security Bearer
// @Param input body models.PlatformInput true "Platform"
// @Success 201 {object} utils.Response{data=models.Platform}
// @Failure 400 {object} utils.Response
// @Router /platforms [post]
func (h *Handler) CreatePlatform(c *gin.Context) {
	var input models.PlatformInput
	if !utils.BindAndValidate(c, &input) {
		return
	}
	if input.Password == "" {
		c.JSON(http.StatusBadRequest, utils.NewResponse(http.StatusBadRequest, "Invalid request parameters", utils.ValidationErrorData{
			Errors: []utils.ValidationErrorDetail{{
				Field:    "password",
				Message:  "Field 'password' is required",
				Expected: "not empty",
				Received: "",
			}},
		}))
		return
	}
	if input.Currency == "" {
		input.Currency = models.CurrencyUZS
	}

	platform, err := h.api.CreatePlatform(c.Request.Context(), middleware.Credential(c), input)
	if err != nil {
		apperr.Respond(c, err, "Platforma qo'shishda xatolik")
		return
	}
	common.RecordAction(c, "create", resource, common.FormatID(platform.ID), auditPayload(input))
	c.JSON(http.StatusCreated, utils.NewResponse(http.StatusCreated, "Platform created successfully", platform))
}

// UpdatePlatform godoc
// @Summary Update a platform
// @Description An empty password keeps the current one.
// @Tags platforms
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Platform ID"
// @Param input body models.PlatformInput true "Platform"
// @Success 200 {object} utils.Response{data=models.Platform}
// @Router /platforms/{id} [put]
func (h *Handler) UpdatePlatform(c *gin.Context) {
	id, ok := common.ParseID(c, "id")
	if !ok {
		return
	}
	var input models.PlatformInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	platform, err := h.api.UpdatePlatform(c.Request.Context(), middleware.Credential(c), id, input)
	if err != nil {
		apperr.Respond(c, err, "Platformani yangilashda xatolik")
		return
	}
	common.RecordAction(c, "update", resource, common.FormatID(id), auditPayload(input))
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Platform updated successfully", platform))
}

// DeletePlatform godoc
// @Summary Delete a platform
// @Tags platforms
// @Security Bearer
// @Param id path int true "Platform ID"
// @Success 200 {object} utils.Response
// @Router /platforms/{id} [delete]
func (h *Handler) DeletePlatform(c *gin.Context) {
	id, ok := common.ParseID(c, "id")
	if !ok {
		return
	}
	if err := h.api.DeletePlatform(c.Request.Context(), middleware.Credential(c), id); err != nil {
		apperr.Respond(c, err, "Platformani o'chirishda xatolik")
		return
	}
	common.RecordAction(c, "delete", resource, common.FormatID(id), nil)
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Platform deleted successfully", nil))
}
