package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/nusava/nusava-backend/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", AuthMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userId": c.GetString("userId"),
			"role":   c.GetString("role"),
		})
	})
	return router
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	router := authTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareMalformedHeader(t *testing.T) {
	router := authTestRouter()

	for _, header := range []string{"token-without-scheme", "Basic abc123"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", header)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code, "header: %s", header)
	}
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	router := authTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	router := authTestRouter()

	token, _, err := services.GenerateToken("user-123", "agent@nusava.com", "AGENT")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-123")
	assert.Contains(t, w.Body.String(), "AGENT")
}

func roleTestRouter(mw gin.HandlerFunc, role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/restricted", func(c *gin.Context) {
		if role != "" {
			c.Set("role", role)
		}
	}, mw, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return router
}

func TestAgentMiddlewareAllowsAgentAndAdmin(t *testing.T) {
	for _, role := range []string{"AGENT", "ADMIN"} {
		router := roleTestRouter(AgentMiddleware(), role)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/restricted", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code, "role: %s", role)
	}
}

func TestAgentMiddlewareRejectsUser(t *testing.T) {
	router := roleTestRouter(AgentMiddleware(), "USER")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/restricted", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminMiddlewareRejectsAgent(t *testing.T) {
	router := roleTestRouter(AdminMiddleware(), "AGENT")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/restricted", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRoleMiddlewareWithoutAuthContext(t *testing.T) {
	router := roleTestRouter(AgentMiddleware(), "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/restricted", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
