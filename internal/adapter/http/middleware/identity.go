package middleware

import (
	"errors"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	log "github.com/sirupsen/logrus"
)

// UsernameKey is the gin context key the identity middleware populates.
const UsernameKey = "username"

var errUnexpectedSigningMethod = errors.New("unexpected signing method")

// Identity resolves the caller's username for realtime subscriptions. It
// accepts a Bearer JWT (HS256, claim "username" falling back to "sub") and,
// for browser websocket clients that cannot set headers, a ?user= query
// parameter. Resolution is best-effort: requests without a resolvable
// identity proceed with an empty username and only receive broadcast events.
func Identity() gin.HandlerFunc {
	secret := []byte(os.Getenv("JWT_SECRET"))

	return func(c *gin.Context) {
		if username := usernameFromBearer(c.GetHeader("Authorization"), secret); username != "" {
			c.Set(UsernameKey, username)
			c.Next()
			return
		}
		if user := strings.TrimSpace(c.Query("user")); user != "" {
			c.Set(UsernameKey, user)
		}
		c.Next()
	}
}

func usernameFromBearer(header string, secret []byte) string {
	const prefix = "Bearer "
	if len(secret) == 0 || !strings.HasPrefix(header, prefix) {
		return ""
	}

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(strings.TrimPrefix(header, prefix), claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errUnexpectedSigningMethod
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		log.WithError(err).Debug("[http][identity] bearer token rejected")
		return ""
	}

	if username, ok := claims["username"].(string); ok && username != "" {
		return username
	}
	if sub, ok := claims["sub"].(string); ok {
		return sub
	}
	return ""
}
