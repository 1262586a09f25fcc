package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AdminClaims - claims админского JWT
type AdminClaims struct {
	Scope string `json:"scope"`
	jwt.RegisteredClaims
}

const adminScope = "admin"

var ErrInvalidAdminToken = errors.New("invalid admin token")

// GenerateAdminToken выдает короткоживущий JWT с админским scope
func GenerateAdminToken(secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := AdminClaims{
		Scope: adminScope,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseAdminToken валидирует JWT и проверяет админский scope
func ParseAdminToken(secret, tokenStr string) (*AdminClaims, error) {
	claims := &AdminClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidAdminToken
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidAdminToken
	}
	if claims.Scope != adminScope {
		return nil, ErrInvalidAdminToken
	}
	return claims, nil
}
