package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jwtsvc "eventagency/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func protectedRouter(jwt *jwtsvc.Service) *gin.Engine {
	router := gin.New()
	router.Use(Auth(jwt))
	router.GET("/protected", func(c *gin.Context) {
		adminID, _ := c.Get("admin_id")
		email, _ := c.Get("admin_email")
		c.JSON(http.StatusOK, gin.H{"admin_id": adminID, "admin_email": email})
	})
	return router
}

func TestAuth_ValidToken(t *testing.T) {
	jwtService := jwtsvc.New("test-secret-123", time.Hour)
	token, _ := jwtService.GenerateToken(42, "admin@agency.local")

	router := protectedRouter(jwtService)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "42")
	assert.Contains(t, w.Body.String(), "admin@agency.local")
}

func TestAuth_InvalidToken(t *testing.T) {
	router := protectedRouter(jwtsvc.New("test-secret-123", time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "UNAUTHORIZED")
}

func TestAuth_MissingHeader(t *testing.T) {
	router := protectedRouter(jwtsvc.New("test-secret-123", time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRateLimit_BlocksAfterBurst(t *testing.T) {
	router := gin.New()
	router.Use(RateLimit(0.0001, 2))
	router.POST("/contact", func(c *gin.Context) { c.Status(http.StatusCreated) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/contact", nil)
		router.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusCreated, http.StatusCreated, http.StatusTooManyRequests}, codes)
}
