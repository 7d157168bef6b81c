package domain

import "github.com/golang-jwt/jwt/v5"

const (
	RoleAdmin = "admin"
)

// Claims carried by admin tokens.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}
