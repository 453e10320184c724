package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fastline/analytics-engine/internal/core/services"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mintToken(t *testing.T, secret, issuer, subject string, expiresIn time.Duration) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub": subject,
		"iss": issuer,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(expiresIn).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Parallel()

	setupRouter := func(verifier *services.TokenVerifier) *gin.Engine {
		router := gin.New()
		router.Use(AuthMiddleware(verifier))
		router.GET("/protected", func(c *gin.Context) {
			userID, ok := GetUserID(c)
			if !ok {
				c.String(http.StatusInternalServerError, "UserID not found in context")
				return
			}
			c.String(http.StatusOK, "Hello "+userID)
		})
		return router
	}

	secret := "test-secret-middleware"
	issuer := "fastline-auth"

	t.Run("Success: Valid Token", func(t *testing.T) {
		t.Parallel()
		verifier := services.NewTokenVerifier(secret, issuer)
		router := setupRouter(verifier)

		validToken := mintToken(t, secret, issuer, "user-123", 1*time.Hour)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+validToken)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Hello user-123", w.Body.String())
	})

	t.Run("Fail: Missing Authorization Header", func(t *testing.T) {
		t.Parallel()
		verifier := services.NewTokenVerifier(secret, issuer)
		router := setupRouter(verifier)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "authorization header required")
	})

	t.Run("Fail: Invalid Header Format", func(t *testing.T) {
		t.Parallel()
		verifier := services.NewTokenVerifier(secret, issuer)
		router := setupRouter(verifier)

		formats := []string{
			"Bearer",
			"Token 12345",
			"Bearer12345",
			"Bearer ",
		}

		for _, h := range formats {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.Header.Set("Authorization", h)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code, "Should fail for header: "+h)
		}
	})

	t.Run("Fail: Token with Wrong Signature (Tampered)", func(t *testing.T) {
		t.Parallel()
		verifier := services.NewTokenVerifier(secret, issuer)
		router := setupRouter(verifier)

		badToken := mintToken(t, "wrong-secret", issuer, "attacker", 1*time.Hour)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+badToken)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "invalid or expired token")
	})

	t.Run("Fail: Expired Token", func(t *testing.T) {
		t.Parallel()
		verifier := services.NewTokenVerifier(secret, issuer)
		router := setupRouter(verifier)

		expiredToken := mintToken(t, secret, issuer, "user-expired", -1*time.Second)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+expiredToken)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "invalid or expired token")
	})

	t.Run("Success: Dev Mode Trusts X-User-ID", func(t *testing.T) {
		t.Parallel()
		router := setupRouter(nil)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("X-User-ID", "dev-user")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Hello dev-user", w.Body.String())
	})

	t.Run("Fail: Dev Mode Missing X-User-ID", func(t *testing.T) {
		t.Parallel()
		router := setupRouter(nil)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "X-User-ID header required")
	})
}
