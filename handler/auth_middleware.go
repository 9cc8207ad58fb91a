package handler

import (
	"context"
	"net/http"
	"strings"

	"go-user-api/common"
	"go-user-api/model"
)

type contextKey string

const (
	UserIDKey    contextKey = "userID"
	UserEmailKey contextKey = "userEmail"
)

// accessTokenVerifier is the slice of AuthService the gate needs.
type accessTokenVerifier interface {
	ParseAccessToken(tokenString string) (*model.AuthClaims, error)
}

// AuthMiddleware validates the Bearer token on protected routes and attaches
// the decoded identity to the request context. Every request is evaluated
// independently; there is no lockout or rate limiting here.
func AuthMiddleware(verifier accessTokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				common.NewAppError(http.StatusUnauthorized, "Missing or invalid token", nil).Send(w)
				return
			}

			headerParts := strings.Split(authHeader, " ")
			if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
				common.NewAppError(http.StatusUnauthorized, "Missing or invalid token", nil).Send(w)
				return
			}

			claims, err := verifier.ParseAccessToken(headerParts[1])
			if err != nil {
				common.NewAppError(http.StatusUnauthorized, "Unauthorized", nil).Send(w)
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
			ctx = context.WithValue(ctx, UserEmailKey, claims.Email)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
