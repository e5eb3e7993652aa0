package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkravets/theater-tickets/internal/model"
	"github.com/mkravets/theater-tickets/internal/utils"
)

const testSecret = "test-secret"

func TestJWTAuth(t *testing.T) {
	e := echo.New()
	uid := uuid.New()

	token, err := utils.NewAccessToken(testSecret, uid, model.RoleAdmin, 5)
	require.NoError(t, err)

	next := func(c echo.Context) error {
		gotID, ok := UserID(c)
		assert.True(t, ok)
		assert.Equal(t, uid, gotID)
		assert.Equal(t, model.RoleAdmin, Role(c))
		return c.NoContent(http.StatusOK)
	}

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	req.Header.Set("Authorization", "Bearer "+token.Token)
	rec := httptest.NewRecorder()

	err = JWTAuth(testSecret)(next)(e.NewContext(req, rec))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestJWTAuthRejects(t *testing.T) {
	e := echo.New()
	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	do := func(header string) int {
		req := httptest.NewRequest(http.MethodGet, "/profile", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		_ = JWTAuth(testSecret)(next)(e.NewContext(req, rec))
		return rec.Code
	}

	assert.Equal(t, http.StatusUnauthorized, do(""))
	assert.Equal(t, http.StatusUnauthorized, do("Bearer garbage"))

	// Token signed with a different secret fails verification.
	other, err := utils.NewAccessToken("other-secret", uuid.New(), model.RoleUser, 5)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, do("Bearer "+other.Token))
}
