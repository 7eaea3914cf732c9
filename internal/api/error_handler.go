package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/sweetshop/inventory-system/internal/core/domain"
)

// errorResponse is the error envelope every failed request gets.
type errorResponse struct {
	Error string `json:"error"`
}

// statusByError maps domain sentinels to HTTP codes. Insufficient stock is a
// conflict with current state, not a malformed request, hence 409 rather
// than 422.
var statusByError = []struct {
	sentinel error
	code     int
	message  string
}{
	{domain.ErrSweetNotFound, http.StatusNotFound, "sweet not found"},
	{domain.ErrInsufficientStock, http.StatusConflict, "insufficient stock"},
	{domain.ErrInvalidAmount, http.StatusUnprocessableEntity, ""},
	{domain.ErrForbidden, http.StatusForbidden, "access forbidden"},
	{domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
	{domain.ErrUserNotFound, http.StatusNotFound, "user not found"},
	{domain.ErrUserExists, http.StatusConflict, "user already exists"},
}

// NewHTTPErrorHandler builds the central error handler: domain errors become
// their mapped status, echo's own errors pass through, and anything else is
// logged and hidden behind a generic 500.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			_ = c.JSON(he.Code, errorResponse{Error: fmt.Sprintf("%v", he.Message)})
			return
		}

		for _, entry := range statusByError {
			if !errors.Is(err, entry.sentinel) {
				continue
			}
			msg := entry.message
			if msg == "" {
				msg = err.Error()
			}
			_ = c.JSON(entry.code, errorResponse{Error: msg})
			return
		}

		log.Error().
			Err(err).
			Str("method", c.Request().Method).
			Str("path", c.Path()).
			Msg("unhandled error")

		_ = c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}
