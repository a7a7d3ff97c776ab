package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Name   string          `json:"name" validate:"required" msg:"name is required"`
	Tags   []string        `json:"tags" validate:"required,min=1" msg:"Tags are required"`
	Price  decimal.Decimal `json:"price" validate:"required" msg:"price is required"`
	Region string          `json:"region" validate:"required"`
}

func TestFirstValidationMessage_DeclarationOrder(t *testing.T) {
	req := &sampleRequest{}
	assert.Equal(t, "name is required", FirstValidationMessage(req))

	req.Name = "Shirt"
	assert.Equal(t, "Tags are required", FirstValidationMessage(req))

	req.Tags = []string{}
	assert.Equal(t, "Tags are required", FirstValidationMessage(req))

	req.Tags = []string{"summer"}
	assert.Equal(t, "price is required", FirstValidationMessage(req))

	req.Price = decimal.RequireFromString("19.99")
	assert.Equal(t, "Region is required", FirstValidationMessage(req))

	req.Region = "eu"
	assert.Empty(t, FirstValidationMessage(req))
}

func TestFirstValidationMessage_ZeroDecimalIsMissing(t *testing.T) {
	req := &sampleRequest{Name: "a", Tags: []string{"b"}, Price: decimal.Zero, Region: "c"}
	assert.Equal(t, "price is required", FirstValidationMessage(req))
}

func TestTokenManager_RoundTrip(t *testing.T) {
	m := NewTokenManager("secret", "store-admin")

	token, err := m.GenerateJWT("user_123", time.Hour)
	require.NoError(t, err)

	claims, err := m.ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "user_123", claims.UserID)
	assert.Equal(t, "user_123", claims.Subject)
}

func TestTokenManager_Rejects(t *testing.T) {
	m := NewTokenManager("secret", "store-admin")

	_, err := m.GenerateJWT("", time.Hour)
	assert.Error(t, err)

	expired, err := m.GenerateJWT("user_123", -time.Minute)
	require.NoError(t, err)
	_, err = m.ValidateJWT(expired)
	assert.Error(t, err)

	other, err := NewTokenManager("other-secret", "store-admin").GenerateJWT("user_123", time.Hour)
	require.NoError(t, err)
	_, err = m.ValidateJWT(other)
	assert.Error(t, err)

	wrongIssuer, err := NewTokenManager("secret", "someone-else").GenerateJWT("user_123", time.Hour)
	require.NoError(t, err)
	_, err = m.ValidateJWT(wrongIssuer)
	assert.Error(t, err)
}

func TestTokenManager_SubjectOnlyToken(t *testing.T) {
	m := NewTokenManager("secret", "")
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "user_sub",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte("secret"))
	require.NoError(t, err)

	claims, err := m.ValidateJWT(signed)
	require.NoError(t, err)
	assert.Equal(t, "user_sub", claims.UserID)
}

func TestErrorResponses(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		write  func(c *gin.Context)
		status int
		code   string
		msg    string
	}{
		{"bad request", func(c *gin.Context) { BadRequestResponse(c, "name is required", nil) }, http.StatusBadRequest, "BAD_REQUEST", "name is required"},
		{"unauthorized", func(c *gin.Context) { UnauthorizedResponse(c, "") }, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthenticated"},
		{"forbidden", func(c *gin.Context) { ForbiddenResponse(c, "") }, http.StatusForbidden, "FORBIDDEN", "Unauthorized"},
		{"not found", func(c *gin.Context) { NotFoundResponse(c, "Product") }, http.StatusNotFound, "NOT_FOUND", "Product not found"},
		{"conflict", func(c *gin.Context) { ConflictResponse(c, "Size is still in use") }, http.StatusConflict, "CONFLICT", "Size is still in use"},
		{"internal", func(c *gin.Context) { InternalErrorResponse(c) }, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			tc.write(c)

			assert.Equal(t, tc.status, w.Code)
			var body APIResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.Equal(t, tc.code, body.Error.Code)
			assert.Equal(t, tc.msg, body.Error.Message)
		})
	}
}

func TestGetUserIDFromContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, ok := GetUserIDFromContext(c)
	assert.False(t, ok)

	c.Set("user_id", "")
	_, ok = GetUserIDFromContext(c)
	assert.False(t, ok)

	c.Set("user_id", "user_1")
	id, ok := GetUserIDFromContext(c)
	assert.True(t, ok)
	assert.Equal(t, "user_1", id)
}
