package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	appmission "github.com/autoexpert/backend/internal/application/mission"
	"github.com/autoexpert/backend/internal/domain/identity"
	"github.com/autoexpert/backend/internal/infrastructure/auth"
	"github.com/autoexpert/backend/internal/infrastructure/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestTokenManager(expiration time.Duration) *auth.TokenManager {
	return auth.NewTokenManager(config.JWTConfig{
		Secret:     "test-secret",
		Expiration: expiration,
		Issuer:     "test",
	})
}

func issueToken(t *testing.T, tokens *auth.TokenManager, id uint, login string, role identity.Role) string {
	t.Helper()
	user, err := identity.NewUser(login, role)
	require.NoError(t, err)
	user.ID = id

	token, _, err := tokens.Issue(user)
	require.NoError(t, err)
	return token
}

func newAuthTestRouter(tokens *auth.TokenManager) *gin.Engine {
	engine := gin.New()
	engine.Use(Authenticate(tokens))
	engine.GET("/whoami", func(c *gin.Context) {
		actor := GetActor(c)
		c.JSON(http.StatusOK, gin.H{"user_id": actor.UserID, "role": actor.Role})
	})
	engine.POST("/managed", RequireManager(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return engine
}

func TestAuthenticate(t *testing.T) {
	tokens := newTestTokenManager(time.Hour)
	engine := newAuthTestRouter(tokens)

	t.Run("valid token", func(t *testing.T) {
		token := issueToken(t, tokens, 42, "jdoe", identity.RoleAgent)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set(AuthHeader, BearerPrefix+token)
		engine.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, float64(42), body["user_id"])
		assert.Equal(t, "agent", body["role"])
	})

	t.Run("missing header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "UNAUTHORIZED")
	})

	t.Run("malformed header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set(AuthHeader, "Basic abc")
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set(AuthHeader, BearerPrefix+"not-a-token")
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid token")
	})

	t.Run("expired token", func(t *testing.T) {
		expired := newTestTokenManager(-time.Minute)
		token := issueToken(t, expired, 42, "jdoe", identity.RoleAgent)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set(AuthHeader, BearerPrefix+token)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Token has expired")
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		other := auth.NewTokenManager(config.JWTConfig{
			Secret:     "other-secret",
			Expiration: time.Hour,
			Issuer:     "test",
		})
		token := issueToken(t, other, 42, "jdoe", identity.RoleAgent)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set(AuthHeader, BearerPrefix+token)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRequireManager(t *testing.T) {
	tokens := newTestTokenManager(time.Hour)
	engine := newAuthTestRouter(tokens)

	t.Run("manager passes", func(t *testing.T) {
		token := issueToken(t, tokens, 1, "boss", identity.RoleManager)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/managed", nil)
		req.Header.Set(AuthHeader, BearerPrefix+token)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("agent is rejected", func(t *testing.T) {
		token := issueToken(t, tokens, 2, "field", identity.RoleAgent)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/managed", nil)
		req.Header.Set(AuthHeader, BearerPrefix+token)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "FORBIDDEN")
	})
}

func TestGetActor_Unset(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	assert.Equal(t, appmission.Actor{}, GetActor(c))
	assert.Nil(t, GetClaims(c))
}
