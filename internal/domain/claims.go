package domain

import "github.com/golang-jwt/jwt/v5"

const RoleAdmin = "admin"

// Claims são as informações do token usado nas rotas administrativas
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}
