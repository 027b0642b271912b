package osonconfig

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"payadmin-backend/internal/api/v1/common"
	"payadmin-backend/internal/apperr"
	"payadmin-backend/internal/middleware"
	"payadmin-backend/internal/models"
	"payadmin-backend/internal/quickpaste"
	"payadmin-backend/internal/remote"
	"payadmin-backend/internal/utils"
)

const resource = "oson-configs"

type Handler struct {
	api *remote.Client
}

func NewHandler(api *remote.Client) *Handler {
	return &Handler{api: api}
}

func auditPayload(cfg models.OsonConfig) models.OsonConfig {
	cfg.Password = ""
	cfg.APIKey = ""
	return cfg
}

// ListConfigs godoc
// @Summary List Oson configs
// @Tags oson-configs
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.Response{data=[]models.OsonConfig}
// @Router /oson-configs [get]
func (h *Handler) ListConfigs(c *gin.Context) {
	configs, err := h.api.ListOsonConfigs(c.Request.Context(), middleware.Credential(c))
	if err != nil {
		apperr.Respond(c, err, "Oson sozlamalarini yuklashda xatolik")
		return
	}
	if configs == nil {
		configs = []models.OsonConfig{}
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Oson configs retrieved successfully", configs))
}

// GetConfig godoc
// @Summary Get an Oson config
// @Tags oson-configs
// @Produce json
// @Security Bearer
// @Param id path int true "Config ID"
// @Success 200 {object} utils.Response{data=models.OsonConfig}
// @Router /oson-configs/{id} [get]
func (h *Handler) GetConfig(c *gin.Context) {
	id, ok := common.ParseID(c, "id")
	if !ok {
		return
	}
	cfg, err := h.api.GetOsonConfig(c.Request.Context(), middleware.Credential(c), id)
	if err != nil {
		apperr.Respond(c, err, "Oson sozlamasini yuklashda xatolik")
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Oson config retrieved successfully", cfg))
}

// CreateConfig godoc
// @Summary Create an Oson config
// @Tags oson-configs
// @Accept json
// @Produce json
// @Security Bearer
// @Param input body models.OsonConfig true "Config"
// @Success 201 {object} utils.Response{data=models.OsonConfig}
// @Router /oson-configs [post]
func (h *Handler) CreateConfig(c *gin.Context) {
	var input models.OsonConfig
	if !utils.BindAndValidate(c, &input) {
		return
	}
	input.ID = 0
	cfg, err := h.api.CreateOsonConfig(c.Request.Context(), middleware.Credential(c), input)
	if err != nil {
		apperr.Respond(c, err, "Sozlamani saqlashda xatolik")
		return
	}
	common.RecordAction(c, "create", resource, common.FormatID(cfg.ID), auditPayload(input))
	c.JSON(http.StatusCreated, utils.NewResponse(http.StatusCreated, "Oson config created successfully", cfg))
}

// UpdateConfig godoc
// @Summary Update an Oson config
// @Tags oson-configs
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Config ID"
// @Param input body models.OsonConfig true "Config"
// @Success 200 {object} utils.Response{data=models.OsonConfig}
// @Router /oson-configs/{id} [put]
func (h *Handler) UpdateConfig(c *gin.Context) {
	id, ok := common.ParseID(c, "id")
	if !ok {
		return
	}
	var input models.OsonConfig
	if !utils.BindAndValidate(c, &input) {
		return
	}
	input.ID = id
	cfg, err := h.api.UpdateOsonConfig(c.Request.Context(), middleware.Credential(c), id, input)
	if err != nil {
		apperr.Respond(c, err, "Sozlamani saqlashda xatolik")
		return
	}
	common.RecordAction(c, "update", resource, common.FormatID(id), auditPayload(input))
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Oson config updated successfully", cfg))
}

// DeleteConfig godoc
// @Summary Delete an Oson config
// @Tags oson-configs
// @Security Bearer
// @Param id path int true "Config ID"
// @Success 200 {object} utils.Response
// @Router /oson-configs/{id} [delete]
func (h *Handler) DeleteConfig(c *gin.Context) {
	id, ok := common.ParseID(c, "id")
	if !ok {
		return
	}
	if err := h.api.DeleteOsonConfig(c.Request.Context(), middleware.Credential(c), id); err != nil {
		apperr.Respond(c, err, "Sozlamani o'chirishda xatolik")
		return
	}
	common.RecordAction(c, "delete", resource, common.FormatID(id), nil)
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Oson config deleted successfully", nil))
}

// SetPrimary godoc
// @Summary Make an Oson config the primary one
// @Tags oson-configs
// @Security Bearer
// @Param id path int true "Config ID"
// @Success 200 {object} utils.Response
// @Router /oson-configs/{id}/primary [put]
func (h *Handler) SetPrimary(c *gin.Context) {
	id, ok := common.ParseID(c, "id")
	if !ok {
		return
	}
	if err := h.api.SetPrimaryOsonConfig(c.Request.Context(), middleware.Credential(c), id); err != nil {
		apperr.Respond(c, err, "Asosiy sozlamani belgilashda xatolik")
		return
	}
	common.RecordAction(c, "set-primary", resource, common.FormatID(id), nil)
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Primary Oson config updated successfully", nil))
}

// QuickPaste godoc
// @Summary Fill an Oson config form from a pasted key=value string
// @Description Nothing is stored; the merged config is returned for review.
// @Tags oson-configs
// @Accept json
// @Produce json
// @Security Bearer
// @Param input body QuickPasteRequest true "Pasted text and current form"
// @Success 200 {object} utils.Response{data=QuickPasteResponse}
// @Failure 400 {object} utils.Response
// @Router /oson-configs/quick-paste [post]
func (h *Handler) QuickPaste(c *gin.Context) {
	var input QuickPasteRequest
	if !utils.BindAndValidate(c, &input) {
		return
	}
	fields := quickpaste.Parse(input.Text)
	if fields.Empty() {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Joylashtirilgan ma'lumotlardan kerakli maydonlar topilmadi."))
		return
	}
	cfg := input.Config
	quickpaste.Apply(&cfg, fields)
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Quick paste applied", QuickPasteResponse{Config: cfg, Fields: fields}))
}
