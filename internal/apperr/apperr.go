// Package apperr classifies every failure a page endpoint can meet into one
// small set of kinds and renders it uniformly.
package apperr

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"payadmin-backend/internal/remote"
	"payadmin-backend/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type Kind int

const (
	Unknown Kind = iota
	Unauthorized
	Validation
	NotFound
)

func (k Kind) String() string {
	switch k {
	case Unauthorized:
		return "unauthorized"
	case Validation:
		return "validation"
	case NotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrValidation   = errors.New("validation failed")
	ErrNotFound     = errors.New("not found")
)

// Classify maps an error to its Kind. Remote status codes win over
// wrapped sentinels.
func Classify(err error) Kind {
	if err == nil {
		return Unknown
	}

	var httpErr *remote.HTTPError
	if errors.As(err, &httpErr) {
		switch httpErr.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return Unauthorized
		case http.StatusBadRequest, http.StatusConflict, http.StatusUnprocessableEntity:
			return Validation
		case http.StatusNotFound:
			return NotFound
		default:
			return Unknown
		}
	}

	var validationErrs validator.ValidationErrors
	switch {
	case errors.Is(err, ErrUnauthorized):
		return Unauthorized
	case errors.Is(err, ErrValidation), errors.As(err, &validationErrs):
		return Validation
	case errors.Is(err, ErrNotFound):
		return NotFound
	}
	return Unknown
}

// Status returns the HTTP status the panel answers with for err.
func Status(err error) int {
	switch Classify(err) {
	case Unauthorized:
		return http.StatusUnauthorized
	case Validation:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	}
	if errors.Is(err, errLocal) {
		return http.StatusInternalServerError
	}
	return http.StatusBadGateway
}

var errLocal = errors.New("local failure")

// Local marks err as a failure of this service rather than of the remote API.
func Local(err error) error {
	return &localError{err: err}
}

type localError struct{ err error }

func (e *localError) Error() string { return e.err.Error() }

func (e *localError) Unwrap() []error { return []error{e.err, errLocal} }

// Respond writes err in the standard envelope. fallback is the page message
// for failures the user cannot act on. Validation failures from the remote
// API carry the server payload as data.
func Respond(c *gin.Context, err error, fallback string) {
	status := Status(err)
	_ = c.Error(err)

	switch Classify(err) {
	case Unauthorized:
		c.JSON(status, utils.NewErrorResponse(status, "Session expired or invalid credentials"))
	case Validation:
		var httpErr *remote.HTTPError
		if errors.As(err, &httpErr) {
			c.JSON(status, utils.NewDetailedErrorResponse(status, fallback, rawPayload(httpErr.Body)))
			return
		}
		c.JSON(status, utils.NewErrorResponse(status, err.Error()))
	case NotFound:
		c.JSON(status, utils.NewErrorResponse(status, "Not found"))
	default:
		c.JSON(status, utils.NewErrorResponse(status, fallback))
	}
}

func rawPayload(body []byte) interface{} {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil
	}
	if json.Valid(body) {
		return json.RawMessage(body)
	}
	return string(body)
}
