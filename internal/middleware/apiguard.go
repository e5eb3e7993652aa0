package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mkravets/theater-tickets/internal/model"
)

// CanPerform is the access decision for catalog REST endpoints.
// Read-class methods are open to any authenticated caller; write-class
// methods require the ADMIN role. Anything unauthenticated or not
// matching a rule is denied; there is no fallback.
func CanPerform(method, role string, authenticated bool) bool {
	if !authenticated {
		return false
	}
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return role == model.RoleAdmin
	}
	return false
}

// APIGuard enforces CanPerform on the /api route group. It assumes
// JWTAuth ran earlier in the chain; requests it rejected never reach
// this middleware, so an absent user id here is treated as
// unauthenticated and denied.
func APIGuard() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			_, authenticated := UserID(c)
			if !CanPerform(c.Request().Method, Role(c), authenticated) {
				return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
