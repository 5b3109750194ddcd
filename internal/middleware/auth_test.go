package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ashraf-Khalifa/digital-new/internal/middleware"
	"github.com/Ashraf-Khalifa/digital-new/internal/utils"
)

func newGuardedRouter(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", middleware.AuthRequired(secret), func(c *gin.Context) {
		email, _ := c.Get(middleware.ContextEmail)
		c.JSON(http.StatusOK, gin.H{"email": email})
	})
	return router
}

func request(router *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestAuthRequired_MissingHeader(t *testing.T) {
	router := newGuardedRouter("test-secret")
	recorder := request(router, "")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestAuthRequired_MalformedHeader(t *testing.T) {
	router := newGuardedRouter("test-secret")
	assert.Equal(t, http.StatusUnauthorized, request(router, "Token abc").Code)
	assert.Equal(t, http.StatusUnauthorized, request(router, "Bearer").Code)
}

func TestAuthRequired_InvalidToken(t *testing.T) {
	router := newGuardedRouter("test-secret")

	signed, err := utils.GenerateAccessToken("a@b.com", "other-secret", 15)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, request(router, "Bearer "+signed).Code)
	assert.Equal(t, http.StatusUnauthorized, request(router, "Bearer garbage").Code)
}

func TestAuthRequired_ExpiredToken(t *testing.T) {
	router := newGuardedRouter("test-secret")

	signed, err := utils.GenerateAccessToken("a@b.com", "test-secret", -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, request(router, "Bearer "+signed).Code)
}

func TestAuthRequired_ValidToken(t *testing.T) {
	router := newGuardedRouter("test-secret")

	signed, err := utils.GenerateAccessToken("a@b.com", "test-secret", 15)
	require.NoError(t, err)

	recorder := request(router, "Bearer "+signed)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "a@b.com")
}
