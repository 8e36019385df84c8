package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Xushengqwer/wiki_service/config"
	"github.com/Xushengqwer/wiki_service/security"
)

func newTestRouter(t *testing.T) (*gin.Engine, *security.TokenManager) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	tokens, err := security.NewTokenManager(config.JWTConfig{Secret: "test-secret"})
	require.NoError(t, err)
	enforcer, err := NewEnforcer()
	require.NoError(t, err)

	r := gin.New()
	authed := r.Group("/api/v1", JWTAuth(tokens, zap.NewNop()))
	authed.GET("/me", func(c *gin.Context) {
		id, ok := CurrentUserID(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": id, "role": CurrentRole(c)})
	})
	admin := authed.Group("/admin", RequireRole(enforcer, zap.NewNop()))
	admin.GET("/stats", func(c *gin.Context) { c.Status(http.StatusOK) })
	admin.PUT("/listings/:id/approve", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r, tokens
}

func doRequest(r http.Handler, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuth(t *testing.T) {
	r, tokens := newTestRouter(t)

	assert.Equal(t, http.StatusUnauthorized, doRequest(r, http.MethodGet, "/api/v1/me", "").Code)
	assert.Equal(t, http.StatusForbidden, doRequest(r, http.MethodGet, "/api/v1/me", "not-a-token").Code)

	token, err := tokens.Issue(7, "ana", "ana@example.com", "user")
	require.NoError(t, err)
	w := doRequest(r, http.MethodGet, "/api/v1/me", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":7,"role":"user"}`, w.Body.String())
}

func TestRequireRole(t *testing.T) {
	r, tokens := newTestRouter(t)

	userToken, _ := tokens.Issue(7, "ana", "ana@example.com", "user")
	adminToken, _ := tokens.Issue(1, "root", "root@example.com", "admin")

	assert.Equal(t, http.StatusUnauthorized, doRequest(r, http.MethodGet, "/api/v1/admin/stats", "").Code)
	assert.Equal(t, http.StatusForbidden, doRequest(r, http.MethodGet, "/api/v1/admin/stats", userToken).Code)
	assert.Equal(t, http.StatusOK, doRequest(r, http.MethodGet, "/api/v1/admin/stats", adminToken).Code)
	assert.Equal(t, http.StatusOK, doRequest(r, http.MethodPut, "/api/v1/admin/listings/3/approve", adminToken).Code)
}

func TestEnforcerPolicy(t *testing.T) {
	e, err := NewEnforcer()
	require.NoError(t, err)

	ok, err := e.Enforce("admin", "/api/v1/admin/users/3/ban", "PUT")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = e.Enforce("user", "/api/v1/admin/stats", "GET")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = e.Enforce("admin", "/api/v1/listings", "GET")
	require.NoError(t, err)
	assert.False(t, ok)
}
