package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"gymtrack/pkg/middleware"
	"gymtrack/pkg/utils"
)

var testSecret = []byte("test-secret")

func newAuthedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	protected := r.Group("/", middleware.JWTAuthMiddleware(testSecret))
	protected.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString("user_id"), "role": c.GetString("role")})
	})
	admin := protected.Group("/admin", middleware.RoleMiddleware("admin"))
	admin.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestJWTAuthMiddlewareRejectsMissingToken(t *testing.T) {
	r := newAuthedRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthMiddlewareAcceptsBearerToken(t *testing.T) {
	r := newAuthedRouter()
	accountID := uuid.New()
	token, err := utils.CreateToken(testSecret, accountID, "client", time.Hour)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), accountID.String())
}

func TestJWTAuthMiddlewareAcceptsCookie(t *testing.T) {
	r := newAuthedRouter()
	token, err := utils.CreateToken(testSecret, uuid.New(), "client", time.Hour)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: middleware.TokenCookieName, Value: token})
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
}

func TestJWTAuthMiddlewareRejectsExpiredToken(t *testing.T) {
	r := newAuthedRouter()
	token, err := utils.CreateToken(testSecret, uuid.New(), "client", -time.Minute)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRoleMiddleware(t *testing.T) {
	r := newAuthedRouter()

	clientToken, err := utils.CreateToken(testSecret, uuid.New(), "client", time.Hour)
	require.NoError(t, err)
	adminToken, err := utils.CreateToken(testSecret, uuid.New(), "admin", time.Hour)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer "+clientToken)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusForbidden, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
}
