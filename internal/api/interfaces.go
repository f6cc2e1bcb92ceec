package api

import (
	"github.com/golang-jwt/jwt/v5"

	"github.com/limbo/challenger/pkg/entity"
)

type JWTServiceI interface {
	GenerateToken(user *entity.User) (string, error)
	ParseToken(tokenString string) (*JWTClaims, error)
}

// JWTClaims are the identity provider's claims. Subject holds the user id.
type JWTClaims struct {
	jwt.RegisteredClaims
	Email    string `json:"email"`
	Username string `json:"username"`
}
