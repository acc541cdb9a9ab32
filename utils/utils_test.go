package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestPasswordHashing(t *testing.T) {
	PasswordCost = bcrypt.MinCost

	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.True(t, CheckPasswordHash("s3cret", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(TokenConfig{Secret: testSecret, TTL: time.Hour}, 42, "ADMIN")
	require.NoError(t, err)

	id, err := ParseToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)
}

func TestParseTokenRejects(t *testing.T) {
	expired, err := GenerateToken(TokenConfig{Secret: testSecret, TTL: -time.Minute}, 1, "USER")
	require.NoError(t, err)
	_, err = ParseToken(testSecret, expired)
	assert.Error(t, err)

	other, err := GenerateToken(TokenConfig{Secret: testSecret, TTL: time.Hour}, 1, "USER")
	require.NoError(t, err)
	_, err = ParseToken("another-secret-another-secret-xx", other)
	assert.Error(t, err)

	_, err = ParseToken(testSecret, "not-a-token")
	assert.Error(t, err)

	_, err = GenerateToken(TokenConfig{TTL: time.Hour}, 1, "USER")
	assert.Error(t, err)
}

func newAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/whoami", OptionalAuthMiddleware(testSecret), func(c *gin.Context) {
		id := ActingUserID(c)
		if id == nil {
			c.JSON(http.StatusOK, gin.H{"user": nil})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": *id})
	})
	return r
}

func TestOptionalAuthMiddleware(t *testing.T) {
	r := newAuthRouter()
	token, err := GenerateToken(TokenConfig{Secret: testSecret, TTL: time.Hour}, 9, "ADMIN")
	require.NoError(t, err)

	t.Run("anonymous", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"user":null}`, w.Body.String())
	})

	t.Run("bearer token", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"user":9}`, w.Body.String())
	})

	t.Run("bad token", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error":"Invalid token"}`, w.Body.String())
	})
}
