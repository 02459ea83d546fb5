package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"hrms/internal/models"
	"hrms/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newProtectedRouter(t *testing.T, tokens *service.TokenService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", AuthMiddleware(tokens, zap.NewNop()), func(c *gin.Context) {
		claims, ok := ClaimsFromContext(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"user_id": claims.UserID, "role": claims.Role})
	})
	return router
}

func newTokenService(t *testing.T, expireMinutes int) *service.TokenService {
	t.Helper()
	tokens, err := service.NewTokenService("middleware-test-secret", "HS256", expireMinutes)
	require.NoError(t, err)
	return tokens
}

func doRequest(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	router := newProtectedRouter(t, newTokenService(t, 60))

	w := doRequest(router, "")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "detail")
}

func TestAuthMiddlewareMalformedHeader(t *testing.T) {
	router := newProtectedRouter(t, newTokenService(t, 60))

	for _, header := range []string{"Bearer", "bearer abc", "Token abc", "Bearer a b"} {
		w := doRequest(router, header)
		assert.Equal(t, http.StatusForbidden, w.Code, header)
	}
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	router := newProtectedRouter(t, newTokenService(t, 60))

	w := doRequest(router, "Bearer not-a-real-token")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuthMiddlewareExpiredToken(t *testing.T) {
	expired := newTokenService(t, -5)
	tokenString, _, err := expired.Issue(&models.User{ID: 7, Email: "hr@example.com", Role: models.RoleHR})
	require.NoError(t, err)

	router := newProtectedRouter(t, newTokenService(t, 60))

	w := doRequest(router, "Bearer "+tokenString)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Token expired")
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	tokens := newTokenService(t, 60)
	tokenString, _, err := tokens.Issue(&models.User{ID: 7, Email: "hr@example.com", Role: models.RoleHR})
	require.NoError(t, err)

	router := newProtectedRouter(t, tokens)

	w := doRequest(router, "Bearer "+tokenString)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"role":"hr"`)
	assert.Contains(t, w.Body.String(), `"user_id":7`)
}
