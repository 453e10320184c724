package services

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// TokenVerifier checks HS256 access tokens minted by the upstream auth
// service. This engine never issues tokens; it only needs the subject
// out of ones it can trust.
type TokenVerifier struct {
	secretKey []byte
	issuer    string
}

func NewTokenVerifier(secretKey string, issuer string) *TokenVerifier {
	return &TokenVerifier{
		secretKey: []byte(secretKey),
		issuer:    issuer,
	}
}

// VerifyToken validates signature, expiry and issuer, returning the
// subject (user id) on success.
func (s *TokenVerifier) VerifyToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	})

	if err != nil {
		return "", fmt.Errorf("invalid token: %w", err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		if s.issuer != "" {
			if iss, ok := claims["iss"].(string); !ok || iss != s.issuer {
				return "", fmt.Errorf("invalid token issuer")
			}
		}

		userID, ok := claims["sub"].(string)
		if !ok || userID == "" {
			return "", fmt.Errorf("invalid token subject")
		}

		return userID, nil
	}

	return "", fmt.Errorf("invalid token claims")
}
