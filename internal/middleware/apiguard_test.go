package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/mkravets/theater-tickets/internal/model"
)

func TestCanPerform(t *testing.T) {
	cases := []struct {
		name          string
		method        string
		role          string
		authenticated bool
		want          bool
	}{
		{"anonymous read", http.MethodGet, "", false, false},
		{"anonymous write", http.MethodPost, "", false, false},
		{"user GET", http.MethodGet, model.RoleUser, true, true},
		{"user HEAD", http.MethodHead, model.RoleUser, true, true},
		{"user OPTIONS", http.MethodOptions, model.RoleUser, true, true},
		{"user POST", http.MethodPost, model.RoleUser, true, false},
		{"user PUT", http.MethodPut, model.RoleUser, true, false},
		{"user DELETE", http.MethodDelete, model.RoleUser, true, false},
		{"admin GET", http.MethodGet, model.RoleAdmin, true, true},
		{"admin POST", http.MethodPost, model.RoleAdmin, true, true},
		{"admin PUT", http.MethodPut, model.RoleAdmin, true, true},
		{"admin PATCH", http.MethodPatch, model.RoleAdmin, true, true},
		{"admin DELETE", http.MethodDelete, model.RoleAdmin, true, true},
		{"unknown method admin", "TRACE", model.RoleAdmin, true, false},
		{"unknown method user", "TRACE", model.RoleUser, true, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CanPerform(tc.method, tc.role, tc.authenticated))
		})
	}
}

func TestAPIGuard(t *testing.T) {
	e := echo.New()
	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	do := func(method, role string) int {
		req := httptest.NewRequest(method, "/api/theaters", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		if role != "" {
			c.Set(CtxUserID, uuid.New())
			c.Set(CtxRole, role)
		}
		_ = APIGuard()(next)(c)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, do(http.MethodGet, model.RoleUser))
	assert.Equal(t, http.StatusForbidden, do(http.MethodPost, model.RoleUser))
	assert.Equal(t, http.StatusOK, do(http.MethodPost, model.RoleAdmin))
	assert.Equal(t, http.StatusForbidden, do(http.MethodGet, ""))
}
