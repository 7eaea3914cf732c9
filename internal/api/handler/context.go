package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sweetshop/inventory-system/internal/api/middleware"
)

// ctxClaims extracts the auth claims injected by the Auth middleware. An
// empty role means the middleware never ran on this route, so the request is
// rejected before any service call.
func ctxClaims(c echo.Context) (userID, role string, err error) {
	role, _ = c.Get(middleware.ContextRole).(string)
	if role == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	userID, _ = c.Get(middleware.ContextUserID).(string)
	return userID, role, nil
}
