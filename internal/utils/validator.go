package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// ValidationErrorDetail represents the structure of a single validation error.
type ValidationErrorDetail struct {
	Field    string      `json:"field"`
	Message  string      `json:"message"`
	Expected string      `json:"expected"`
	Received interface{} `json:"received"`
}

// ValidationErrorData represents the data field in the validation error response.
type ValidationErrorData struct {
	Errors []ValidationErrorDetail `json:"errors"`
}

var registerTagNames sync.Once

// useJSONFieldNames makes validator report json tag names instead of Go
// field names.
func useJSONFieldNames() {
	registerTagNames.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "" || name == "-" {
				return f.Name
			}
			return name
		})
	})
}

// BindAndValidate binds the request body to obj and validates it.
// On failure it writes a 400 response with field details and returns false.
func BindAndValidate(c *gin.Context, obj interface{}) bool {
	useJSONFieldNames()
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, NewDetailedErrorResponse(http.StatusBadRequest,
			"Invalid request parameters", ValidationErrorData{Errors: DescribeBindError(err)}))
		return false
	}
	return true
}

// DescribeBindError turns a binding error into field-level details.
func DescribeBindError(err error) []ValidationErrorDetail {
	var details []ValidationErrorDetail

	var errs validator.ValidationErrors
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &errs):
		for _, e := range errs {
			detail := ValidationErrorDetail{
				Field:    e.Field(),
				Message:  fmt.Sprintf("Field '%s' failed on the '%s' rule", e.Field(), e.Tag()),
				Expected: e.Param(),
				Received: e.Value(),
			}
			if detail.Expected == "" {
				detail.Expected = e.Tag()
			}

			switch e.Tag() {
			case "required":
				detail.Message = fmt.Sprintf("Field '%s' is required", e.Field())
				detail.Expected = "not empty"
			case "gt":
				detail.Message = fmt.Sprintf("Field '%s' must be greater than %s", e.Field(), e.Param())
			case "ltefield":
				detail.Message = fmt.Sprintf("Field '%s' must not exceed '%s'", e.Field(), e.Param())
			case "oneof":
				detail.Message = fmt.Sprintf("Field '%s' must be one of [%s]", e.Field(), e.Param())
			case "url":
				detail.Message = fmt.Sprintf("Field '%s' must be a valid URL", e.Field())
			}

			details = append(details, detail)
		}
	case errors.As(err, &typeErr):
		details = append(details, ValidationErrorDetail{
			Field:    typeErr.Field,
			Message:  fmt.Sprintf("Field '%s' has invalid type", typeErr.Field),
			Expected: typeErr.Type.String(),
			Received: typeErr.Value,
		})
	default:
		details = append(details, ValidationErrorDetail{
			Field:    "body",
			Message:  "Malformed JSON or invalid request body",
			Expected: "valid JSON",
			Received: "invalid",
		})
	}

	return details
}
