package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/giuseppevitello83-a11y/fullstack-portfolio/internal/entity"
)

type JwtCustomClaims struct {
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  entity.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenManager issues the signed bearer tokens returned by register and login.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenManager(secret string) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: 24 * time.Hour}
}

func (m *TokenManager) Generate(user *entity.User) (string, error) {
	claims := &JwtCustomClaims{
		Name:  user.Username,
		Email: user.Email,
		Role:  user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Email,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Secret exposes the signing key for the request-authentication middleware.
func (m *TokenManager) Secret() []byte {
	return m.secret
}
