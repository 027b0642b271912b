package utils

import "net/http"

// Response is the envelope of every panel API answer. Data is null on
// errors unless the failure carries details, such as field errors or the
// payment API's own validation payload.
type Response struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

func NewResponse(status int, message string, data interface{}) Response {
	return Response{
		Status:  status,
		Message: message,
		Data:    data,
	}
}

func NewSuccessResponse(message string, data interface{}) Response {
	return NewResponse(http.StatusOK, message, data)
}

func NewErrorResponse(status int, message string) Response {
	return NewResponse(status, message, nil)
}

// NewDetailedErrorResponse is an error response that keeps its details.
func NewDetailedErrorResponse(status int, message string, details interface{}) Response {
	return NewResponse(status, message, details)
}
