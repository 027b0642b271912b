// Package common holds helpers shared by the page handlers.
package common

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"payadmin-backend/internal/middleware"
	"payadmin-backend/internal/services"
	"payadmin-backend/internal/utils"
)

// ParseID reads an integer path parameter, answering 400 when it is not one.
func ParseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid "+name))
		return 0, false
	}
	return id, true
}

// RecordAction appends a successful mutation to the activity log.
func RecordAction(c *gin.Context, action, resource, resourceID string, payload interface{}) {
	services.RecordAction(c.Request.Context(), services.Action{
		Action:     action,
		Resource:   resource,
		ResourceID: resourceID,
		Payload:    payload,
		RequestID:  middleware.RequestID(c),
	})
}

func FormatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
