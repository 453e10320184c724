package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mintHS256(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestTokenVerifier_VerifyToken(t *testing.T) {
	secret := "super-secret-key-for-testing"
	issuer := "fastline-auth"
	userID := "user-123-uuid"

	verifier := NewTokenVerifier(secret, issuer)

	t.Run("Success: Should accept a valid token and return the subject", func(t *testing.T) {
		token := mintHS256(t, secret, jwt.MapClaims{
			"sub": userID,
			"iss": issuer,
			"exp": time.Now().Add(1 * time.Hour).Unix(),
		})

		extracted, err := verifier.VerifyToken(token)

		assert.NoError(t, err)
		assert.Equal(t, userID, extracted)
	})

	t.Run("Success: Issuer check is skipped when not configured", func(t *testing.T) {
		lenient := NewTokenVerifier(secret, "")
		token := mintHS256(t, secret, jwt.MapClaims{
			"sub": userID,
			"iss": "whoever",
			"exp": time.Now().Add(1 * time.Hour).Unix(),
		})

		extracted, err := lenient.VerifyToken(token)

		assert.NoError(t, err)
		assert.Equal(t, userID, extracted)
	})

	t.Run("Fail: Should reject expired token", func(t *testing.T) {
		token := mintHS256(t, secret, jwt.MapClaims{
			"sub": userID,
			"iss": issuer,
			"exp": time.Now().Add(-1 * time.Minute).Unix(),
		})

		extracted, err := verifier.VerifyToken(token)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "token is expired")
		assert.Empty(t, extracted)
	})

	t.Run("Fail: Should reject token signed with another key (Tampered)", func(t *testing.T) {
		token := mintHS256(t, "wrong-key", jwt.MapClaims{
			"sub": userID,
			"iss": issuer,
			"exp": time.Now().Add(1 * time.Hour).Unix(),
		})

		extracted, err := verifier.VerifyToken(token)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid token")
		assert.Empty(t, extracted)
	})

	t.Run("Fail: Should reject token from another issuer", func(t *testing.T) {
		token := mintHS256(t, secret, jwt.MapClaims{
			"sub": userID,
			"iss": "evil-issuer",
			"exp": time.Now().Add(1 * time.Hour).Unix(),
		})

		extracted, err := verifier.VerifyToken(token)

		assert.Error(t, err)
		assert.Equal(t, "invalid token issuer", err.Error())
		assert.Empty(t, extracted)
	})

	t.Run("Fail: Should reject token without a subject", func(t *testing.T) {
		token := mintHS256(t, secret, jwt.MapClaims{
			"iss": issuer,
			"exp": time.Now().Add(1 * time.Hour).Unix(),
		})

		extracted, err := verifier.VerifyToken(token)

		assert.Error(t, err)
		assert.Equal(t, "invalid token subject", err.Error())
		assert.Empty(t, extracted)
	})

	t.Run("Fail: Should reject 'None' algorithm attack", func(t *testing.T) {
		token := jwt.New(jwt.SigningMethodNone)
		claims := token.Claims.(jwt.MapClaims)
		claims["sub"] = userID
		claims["iss"] = issuer

		fakeToken, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = verifier.VerifyToken(fakeToken)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "unexpected signing method")
	})

	t.Run("Fail: Should reject malformed token string", func(t *testing.T) {
		extracted, err := verifier.VerifyToken("this-is-not-a-jwt")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid token")
		assert.Empty(t, extracted)
	})
}
