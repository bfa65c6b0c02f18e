package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recicla-contigo/backend/internal/auth/security"
)

func newGuardedRouter(tokens *security.TokenManager, required bool) *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/guarded", TokenAuth(tokens, required), func(c *gin.Context) {
		userID, _ := c.Get("user_id")
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})
	return r
}

func doGuarded(r *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestTokenAuth_ValidTokenBindsUserID(t *testing.T) {
	tokens := security.NewTokenManager("mw-secret", time.Hour)
	token, err := tokens.Issue("user-42")
	require.NoError(t, err)

	rec := doGuarded(newGuardedRouter(tokens, true), "Bearer "+token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "user-42")
}

func TestTokenAuth_Required(t *testing.T) {
	tokens := security.NewTokenManager("mw-secret", time.Hour)
	r := newGuardedRouter(tokens, true)

	t.Run("missing header", func(t *testing.T) {
		rec := doGuarded(r, "")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Token requerido")
	})

	t.Run("wrong scheme", func(t *testing.T) {
		rec := doGuarded(r, "Basic abc123")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		rec := doGuarded(r, "Bearer not.a.token")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Token inválido o expirado")
	})

	t.Run("expired token", func(t *testing.T) {
		expired := security.NewTokenManager("mw-secret", -time.Hour)
		token, err := expired.Issue("user-42")
		require.NoError(t, err)

		rec := doGuarded(r, "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := security.NewTokenManager("another-secret", time.Hour)
		token, err := other.Issue("user-42")
		require.NoError(t, err)

		rec := doGuarded(r, "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestTokenAuth_Optional(t *testing.T) {
	tokens := security.NewTokenManager("mw-secret", time.Hour)
	r := newGuardedRouter(tokens, false)

	t.Run("missing header passes", func(t *testing.T) {
		rec := doGuarded(r, "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("invalid token passes without identity", func(t *testing.T) {
		rec := doGuarded(r, "Bearer not.a.token")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, rec.Body.String(), "user-42")
	})

	t.Run("valid token still binds identity", func(t *testing.T) {
		token, err := tokens.Issue("user-42")
		require.NoError(t, err)

		rec := doGuarded(r, "Bearer "+token)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "user-42")
	})
}
