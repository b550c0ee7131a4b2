package middleware

import (
	"Limelight/internal/api/config"
	"Limelight/internal/pkg/security"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOptionalAuthRouter(t *testing.T) (*gin.Engine, *string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	config.Cfg = &config.Config{Server: config.ServerConfig{JWTSecret: "test-secret"}}

	var seenUserID string
	r := gin.New()
	r.Use(AuthOptionalMiddleware())
	r.POST("/impression", func(c *gin.Context) {
		seenUserID = c.GetString("user_id")
		c.Status(http.StatusOK)
	})
	return r, &seenUserID
}

func signTestToken(t *testing.T, secret string) string {
	t.Helper()
	claims := security.UserClaims{
		UserID: "user-1",
		Roles:  []string{"CREATOR"},
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestAuthOptionalMiddlewareAnonymous(t *testing.T) {
	r, seenUserID := newOptionalAuthRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/impression", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "匿名请求不应被拦截")
	assert.Empty(t, *seenUserID)
}

func TestAuthOptionalMiddlewareWithToken(t *testing.T) {
	r, seenUserID := newOptionalAuthRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/impression", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, "test-secret"))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-1", *seenUserID)
}

func TestAuthOptionalMiddlewareBadToken(t *testing.T) {
	r, seenUserID := newOptionalAuthRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/impression", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "无效令牌降级为匿名，不应被拦截")
	assert.Empty(t, *seenUserID)
}
