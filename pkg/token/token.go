// Package token issues and validates the signed session token stored
// alongside the logged-in user record.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jfcardenas/panapp/config"
)

// SessionTTL is how long a login stays valid before the session record is
// treated as logged out.
const SessionTTL = 24 * time.Hour

// Claims holds the typed JWT payload.
type Claims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

func secret() []byte {
	return []byte(config.JWTSecret())
}

// Generate creates a signed session token for the given user.
func Generate(userID, username string) (string, error) {
	claims := Claims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(SessionTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret())
}

// Validate parses and validates a session token string.
func Validate(t string) (*Claims, error) {
	tok, err := jwt.ParseWithClaims(t, &Claims{}, func(tok *jwt.Token) (interface{}, error) {
		return secret(), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := tok.Claims.(*Claims)
	if !ok || !tok.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	return claims, nil
}
