package activity

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"payadmin-backend/internal/models"
	"payadmin-backend/internal/services"
	"payadmin-backend/internal/utils"
)

const maxLimit = 100

type ActivityListResponse struct {
	Actions []models.ActionLog `json:"actions"`
	Total   int64              `json:"total"`
	Page    int                `json:"page"`
	Limit   int                `json:"limit"`
}

// ListActions godoc
// @Summary List the local activity log
// @Description Mutations made through this panel, newest first.
// @Tags activity
// @Produce json
// @Security Bearer
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Param resource query string false "Resource filter"
// @Param action query string false "Action filter"
// @Success 200 {object} utils.Response{data=ActivityListResponse}
// @Failure 400 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /activity [get]
func ListActions(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid page number"))
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 || limit > maxLimit {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid limit number"))
		return
	}

	actions, total, err := services.ListActions(c.Request.Context(), services.ActivityFilter{
		Resource: c.Query("resource"),
		Action:   c.Query("action"),
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch activity"))
		return
	}
	if actions == nil {
		actions = []models.ActionLog{}
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Activity retrieved successfully", ActivityListResponse{
		Actions: actions,
		Total:   total,
		Page:    page,
		Limit:   limit,
	}))
}
