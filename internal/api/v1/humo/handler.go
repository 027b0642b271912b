package humo

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

const resource = "humo"

type Handler struct {
	api *remote.Client
}

func NewHandler(api *remote.Client) *Handler {
	return &Handler{api: api}
}

// NewNumber godoc
// @Summary Start linking a Humo account by phone number
// @Tags humo
// @Accept json
// @Produce json
// @Security Bearer
// @Param input body models.HumoPhone true "Phone"
// @Success 200 {object} utils.Response{data=StepResponse}
// @Router /humo/new-number [post]
func (h *Handler) NewNumber(c *gin.Context) {
	var input models.HumoPhone
	if !utils.BindAndValidate(c, &input) {
		return
	}
	res, err := h.api.HumoNewNumber(c.Request.Context(), middleware.Credential(c), input)
	if err != nil {
		apperr.Respond(c, err, "Raqamni qo'shishda xatolik")
		return
	}
	common.RecordAction(c, "new-number", resource, input.Phone, nil)
	c.JSON(http.StatusOK, utils.NewSuccessResponse("SMS code sent", newStepResponse(res)))
}

// SMSCode godoc
// @Summary Confirm the SMS code
// @Description The reply may ask for the two-step password.
// @Tags humo
// @Accept json
// @Produce json
// @Security Bearer
// @Param input body models.HumoSMSCode true "Code"
// @Success 200 {object} utils.Response{data=StepResponse}
// @Router /humo/sms-code [post]
func (h *Handler) SMSCode(c *gin.Context) {
	var input models.HumoSMSCode
	if !utils.BindAndValidate(c, &input) {
		return
	}
	res, err := h.api.HumoSMSCode(c.Request.Context(), middleware.Credential(c), input)
	if err != nil {
		apperr.Respond(c, err, "SMS kodni tasdiqlashda xatolik")
		return
	}
	step := newStepResponse(res)
	message := "Account linked successfully"
	if step.NeedsTwoStep {
		message = "Two-step password required"
	} else {
		common.RecordAction(c, "link", resource, input.Phone, nil)
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse(message, step))
}

// TwoStep godoc
// @Summary Submit the two-step password
// @Tags humo
// @Accept json
// @Produce json
// @Security Bearer
// @Param input body models.HumoTwoStep true "Password"
// @Success 200 {object} utils.Response{data=StepResponse}
// @Router /humo/two-step [post]
func (h *Handler) TwoStep(c *gin.Context) {
	var input models.HumoTwoStep
	if !utils.BindAndValidate(c, &input) {
		return
	}
	res, err := h.api.HumoTwoStep(c.Request.Context(), middleware.Credential(c), input)
	if err != nil {
		apperr.Respond(c, err, "Parolni tasdiqlashda xatolik")
		return
	}
	common.RecordAction(c, "link", resource, input.Phone, nil)
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Account linked successfully", newStepResponse(res)))
}

// ListActive godoc
// @Summary List linked Humo accounts
// @Tags humo
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.Response{data=[]models.HumoAccount}
// @Router /humo/active [get]
func (h *Handler) ListActive(c *gin.Context) {
	accounts, err := h.api.HumoActive(c.Request.Context(), middleware.Credential(c))
	if err != nil {
		apperr.Respond(c, err, "Akkauntlarni yuklashda xatolik")
		return
	}
	if accounts == nil {
		accounts = []models.HumoAccount{}
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Accounts retrieved successfully", accounts))
}

// DeleteAccount godoc
// @Summary Unlink a Humo account
// @Tags humo
// @Security Bearer
// @Param phone query string true "Phone"
// @Success 200 {object} utils.Response
// @Router /humo [delete]
func (h *Handler) DeleteAccount(c *gin.Context) {
	phone := c.Query("phone")
	if phone == "" {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "phone is required"))
		return
	}
	if err := h.api.HumoDelete(c.Request.Context(), middleware.Credential(c), phone); err != nil {
		apperr.Respond(c, err, "Akkauntni o'chirishda xatolik")
		return
	}
	common.RecordAction(c, "delete", resource, phone, nil)
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Account deleted successfully", nil))
}
