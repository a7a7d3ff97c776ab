package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/javajoker/store-admin/internal/utils"
)

type stubResolver struct{}

func (stubResolver) Resolve(token string) (string, error) {
	if token == "good" {
		return "user_1", nil
	}
	return "", errors.New("bad token")
}

func whoami(c *gin.Context) {
	userID, ok := utils.GetUserIDFromContext(c)
	if !ok {
		c.String(http.StatusOK, "anonymous")
		return
	}
	c.String(http.StatusOK, userID)
}

func serve(r *gin.Engine, method, authorization string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, "/", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Identity(stubResolver{}))
	r.GET("/", whoami)

	cases := map[string]string{
		"":            "anonymous",
		"Bearer good": "user_1",
		"Bearer bad":  "anonymous",
		"Basic good":  "anonymous",
		"Bearergood":  "anonymous",
	}
	for header, want := range cases {
		w := serve(r, "GET", header)
		assert.Equal(t, http.StatusOK, w.Code, header)
		assert.Equal(t, want, w.Body.String(), header)
	}
}

func TestAuthRequired(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Identity(stubResolver{}), AuthRequired())
	r.GET("/", whoami)

	assert.Equal(t, http.StatusUnauthorized, serve(r, "GET", "").Code)
	assert.Equal(t, http.StatusOK, serve(r, "GET", "Bearer good").Code)
}

func TestJWTResolver(t *testing.T) {
	tokens := utils.NewTokenManager("secret", "store-admin")
	token, err := tokens.GenerateJWT("user_42", time.Hour)
	require.NoError(t, err)

	userID, err := NewJWTResolver(tokens).Resolve(token)
	require.NoError(t, err)
	assert.Equal(t, "user_42", userID)

	_, err = NewJWTResolver(tokens).Resolve("not-a-jwt")
	assert.Error(t, err)
}

func TestRateLimiter_MutationsOnly(t *testing.T) {
	gin.SetMode(gin.TestMode)
	limiter := NewRateLimiter(rate.Every(time.Hour), 1)

	r := gin.New()
	r.Use(limiter.MutationsOnly())
	r.GET("/", whoami)
	r.POST("/", whoami)

	assert.Equal(t, http.StatusOK, serve(r, "POST", "").Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(r, "POST", "").Code)

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, serve(r, "GET", "").Code)
	}
}

func TestRateLimiter_CleanupDropsIdleVisitors(t *testing.T) {
	limiter := NewRateLimiter(rate.Limit(1), 1)
	limiter.getVisitor("10.0.0.1")
	limiter.getVisitor("10.0.0.2")

	limiter.cleanup(time.Now())
	assert.Len(t, limiter.visitors, 2)

	limiter.cleanup(time.Now().Add(visitorTTL + time.Second))
	assert.Empty(t, limiter.visitors)
}

func TestRequestLogger_PassesThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestLogger())
	r.GET("/", whoami)

	w := serve(r, "GET", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "anonymous", w.Body.String())
}
