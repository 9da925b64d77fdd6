package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/mycart/commerce-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors:
// {code, message, detail, errors} where errors names the offending fields.
type errorResponse struct {
	Code    int            `json:"code"`
	Message string         `json:"message"`
	Detail  map[string]any `json:"detail"`
	Errors  []string       `json:"errors"`
}

func newErrorResponse(code int, message string, fields []string) errorResponse {
	if fields == nil {
		fields = []string{}
	}
	return errorResponse{
		Code:    code,
		Message: message,
		Detail:  map[string]any{},
		Errors:  fields,
	}
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps domain errors to their HTTP-analog status and numeric code.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders the consistent {code, message, detail, errors} envelope.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, body := resolveError(err, log, c)
		_ = c.JSON(status, body)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, errorResponse) {
	// Core-raised faults carry their own status, code, and field list.
	var derr *domain.Error
	if errors.As(err, &derr) {
		return derr.Status, newErrorResponse(derr.Code, derr.Message, derr.Fields)
	}

	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, newErrorResponse(0, fmt.Sprintf("%v", he.Message), nil)
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, newErrorResponse(0, "internal server error", nil)
}
