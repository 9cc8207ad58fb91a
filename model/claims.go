package model

import "github.com/golang-jwt/jwt/v5"

// AuthClaims binds a user identity to a token expiry. The same claim shape
// is used for both access and refresh tokens; only the signing secret and
// lifetime differ.
type AuthClaims struct {
	UserID int    `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}
