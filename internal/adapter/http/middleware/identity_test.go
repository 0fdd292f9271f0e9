package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func identityProbe(t *testing.T) (*gin.Engine, *string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var seen string
	r := gin.New()
	r.Use(Identity())
	r.GET("/probe", func(c *gin.Context) {
		seen = c.GetString(UsernameKey)
		c.Status(http.StatusOK)
	})
	return r, &seen
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return token
}

func TestIdentity_BearerToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r, seen := identityProbe(t)

	token := signToken(t, "test-secret", jwt.MapClaims{
		"username": "ana",
		"exp":      time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if *seen != "ana" {
		t.Fatalf("expected username ana, got %q", *seen)
	}
}

func TestIdentity_BearerFallsBackToSub(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r, seen := identityProbe(t)

	token := signToken(t, "test-secret", jwt.MapClaims{
		"sub": "bob",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if *seen != "bob" {
		t.Fatalf("expected username bob, got %q", *seen)
	}
}

func TestIdentity_RejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r, seen := identityProbe(t)

	token := signToken(t, "other-secret", jwt.MapClaims{"username": "ana"})

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if *seen != "" {
		t.Fatalf("expected empty username for bad signature, got %q", *seen)
	}
	if w.Code != http.StatusOK {
		t.Fatalf("identity must not block the request, got %d", w.Code)
	}
}

func TestIdentity_QueryFallback(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r, seen := identityProbe(t)

	req := httptest.NewRequest(http.MethodGet, "/probe?user=carla", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if *seen != "carla" {
		t.Fatalf("expected username carla, got %q", *seen)
	}
}
