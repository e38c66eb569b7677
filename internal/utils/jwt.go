package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// SessionCookie is the cookie carrying the session token.
const SessionCookie = "token"

// Claims are the JWT claims carried in the session cookie.
type Claims struct {
	UserID  uint64 `json:"user_id"`
	IsGuest bool   `json:"is_guest,omitempty"`
	jwt.RegisteredClaims
}

// GenerateToken signs a session token for the user.
func GenerateToken(key string, userID uint64, isGuest bool, ttl time.Duration) (string, error) {
	claims := &Claims{
		UserID:  userID,
		IsGuest: isGuest,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(key))
}

// ParseToken validates a session token and returns its claims.
func ParseToken(key, tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(key), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}
