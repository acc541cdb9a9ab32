// utils/auth.go
package utils

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// ContextUserID is the gin context key holding the acting user's id (uint).
const ContextUserID = "userId"

// PasswordCost is the bcrypt cost used by HashPassword. main sets it from
// config; tests lower it.
var PasswordCost = 12

// Hash password
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	return string(bytes), err
}

// Check password
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

type TokenConfig struct {
	Secret string
	TTL    time.Duration
}

// GenerateToken signs an HS256 token whose subject is the user id.
func GenerateToken(cfg TokenConfig, userID uint, role string) (string, error) {
	if cfg.Secret == "" {
		return "", errors.New("jwt secret not set")
	}
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  strconv.FormatUint(uint64(userID), 10),
		"role": role,
		"exp":  now.Add(cfg.TTL).Unix(),
		"iat":  now.Unix(),
	})
	return token.SignedString([]byte(cfg.Secret))
}

// ParseToken validates the signature and expiry and returns the subject as a
// user id.
func ParseToken(secret, tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return 0, err
	}
	if !token.Valid {
		return 0, errors.New("invalid token")
	}

	sub, err := token.Claims.GetSubject()
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseUint(sub, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New("invalid token subject")
	}
	return uint(id), nil
}

// OptionalAuthMiddleware identifies the caller when an Authorization header is
// present. Requests without one continue anonymously; a bad token is rejected.
func OptionalAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("Authorization")
		if tokenString == "" {
			c.Next()
			return
		}

		if len(tokenString) > 7 && strings.ToUpper(tokenString[0:6]) == "BEARER" {
			tokenString = tokenString[7:]
		}

		userID, err := ParseToken(secret, tokenString)
		if err != nil {
			RespondWithError(c, http.StatusUnauthorized, "Invalid token")
			return
		}

		c.Set(ContextUserID, userID)
		c.Next()
	}
}

// ActingUserID returns the authenticated user's id, or nil for anonymous
// requests.
func ActingUserID(c *gin.Context) *uint {
	v, exists := c.Get(ContextUserID)
	if !exists {
		return nil
	}
	id, ok := v.(uint)
	if !ok {
		return nil
	}
	return &id
}
