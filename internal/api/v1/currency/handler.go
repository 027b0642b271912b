package currency

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

type Handler struct {
	api *remote.Client
}

func NewHandler(api *remote.Client) *Handler {
	return &Handler{api: api}
}

// LatestRate godoc
// @Summary Get the latest UZS/RUB exchange rate
// @Tags currency
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.Response{data=models.ExchangeRate}
// @Router /currency [get]
func (h *Handler) LatestRate(c *gin.Context) {
	rate, err := h.api.LatestRate(c.Request.Context(), middleware.Credential(c))
	if err != nil {
		apperr.Respond(c, err, "Valyuta kursini yuklashda xatolik")
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Exchange rate retrieved successfully", rate))
}

// UpdateRate godoc
// @Summary Update the exchange rate
// @Tags currency
// @Accept json
// @Produce json
// @Security Bearer
// @Param input body models.ExchangeRateInput true "Rates"
// @Success 200 {object} utils.Response{data=models.ExchangeRate}
// @Router /currency [post]
func (h *Handler) UpdateRate(c *gin.Context) {
	var input models.ExchangeRateInput
	if !utils.BindAndValidate(c, &input) {
		return
	}
	rate, err := h.api.UpdateRate(c.Request.Context(), middleware.Credential(c), input)
	if err != nil {
		apperr.Respond(c, err, "Valyuta kursini yangilashda xatolik")
		return
	}
	common.RecordAction(c, "update", "currency", common.FormatID(rate.ID), input)
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Exchange rate updated successfully", rate))
}
