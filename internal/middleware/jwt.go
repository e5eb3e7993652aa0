// Package middleware provides shared request processing: JWT
// authentication, the catalog write-access policy, Redis rate limiting
// and response caching.
package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/mkravets/theater-tickets/internal/utils"
)

// Context keys populated by JWTAuth for downstream handlers.
const (
	CtxUserID = "user_id"
	CtxRole   = "role"
)

// JWTAuth validates a Bearer access token and injects the subject user
// id and role claim into the request context. The secret must match the
// one used when issuing tokens.
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
			}
			raw := strings.TrimPrefix(auth, "Bearer ")
			uid, role, err := utils.ParseAccessToken(secret, raw)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
			}
			c.Set(CtxUserID, uid)
			c.Set(CtxRole, role)
			return next(c)
		}
	}
}

// UserID extracts the authenticated user id stored by JWTAuth.
func UserID(c echo.Context) (uuid.UUID, bool) {
	uid, ok := c.Get(CtxUserID).(uuid.UUID)
	return uid, ok && uid != uuid.Nil
}

// Role extracts the authenticated role stored by JWTAuth.
func Role(c echo.Context) string {
	role, _ := c.Get(CtxRole).(string)
	return role
}
