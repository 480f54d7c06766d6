package middleware

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func jwtKey() []byte {
	return []byte(os.Getenv("KEY"))
}

// GenerateToken issues the bearer token returned at login.
func GenerateToken(username string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"Username": username,
	})
	return token.SignedString(jwtKey())
}

// DecodeToken pulls the username out of the request's Authorization
// header. The error is the same for a missing header, a bad signature and
// a malformed token.
func DecodeToken(c *gin.Context) (string, error) {
	header := c.GetHeader("Authorization")
	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return "", errors.New("missing bearer token")
	}

	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return jwtKey(), nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid claims")
	}
	username, ok := claims["Username"].(string)
	if !ok || username == "" {
		return "", errors.New("invalid claims")
	}
	return username, nil
}

// AuthRequired guards routes that need a logged-in user. The decoded
// username is stored on the context under "username".
func AuthRequired(c *gin.Context) {
	username, err := DecodeToken(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	c.Set("username", username)
	c.Next()
}
