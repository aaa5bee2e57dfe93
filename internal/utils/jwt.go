package utils

import (
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AuthClaims carry the authenticated identity through the request lifecycle.
// Subject holds the user's ObjectID hex.
type AuthClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

const defaultTokenTTL = 7 * 24 * time.Hour

func tokenTTL() time.Duration {
	if v := os.Getenv("JWT_EXPIRES_IN_HOURS"); v != "" {
		if h, err := strconv.Atoi(v); err == nil && h > 0 {
			return time.Duration(h) * time.Hour
		}
	}
	return defaultTokenTTL
}

// SignToken issues an HS256 token for the given user id and role.
func SignToken(userID, role string) (string, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", E(CodeInternal, "SignToken", "JWT_SECRET is not set", nil)
	}

	now := time.Now().UTC()
	claims := AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL())),
		},
		Role: role,
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
