package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"go-user-api/model"
	"go-user-api/service"
)

func TestAuthMiddleware(t *testing.T) {
	authService := service.NewAuthService(nil, testConfig())
	requireAuth := AuthMiddleware(authService)

	var gotUserID int
	var gotEmail string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, _ = r.Context().Value(UserIDKey).(int)
		gotEmail, _ = r.Context().Value(UserEmailKey).(string)
		w.WriteHeader(http.StatusOK)
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/auth/me", nil)
		rr := httptest.NewRecorder()

		requireAuth(next).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.JSONEq(t, `{"error":"Missing or invalid token"}`, rr.Body.String())
	})

	t.Run("malformed header is rejected", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/auth/me", nil)
		req.Header.Set("Authorization", "Token abcdef")
		rr := httptest.NewRecorder()

		requireAuth(next).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.JSONEq(t, `{"error":"Missing or invalid token"}`, rr.Body.String())
	})

	t.Run("invalid token is rejected", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/auth/me", nil)
		req.Header.Set("Authorization", "Bearer not.a.token")
		rr := httptest.NewRecorder()

		requireAuth(next).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.JSONEq(t, `{"error":"Unauthorized"}`, rr.Body.String())
	})

	t.Run("refresh token is rejected at the access gate", func(t *testing.T) {
		refreshToken, err := authService.GenerateRefreshToken(&model.User{ID: 1, Email: "a@x.com"})
		assert.NoError(t, err)

		req := httptest.NewRequest("GET", "/api/auth/me", nil)
		req.Header.Set("Authorization", "Bearer "+refreshToken)
		rr := httptest.NewRecorder()

		requireAuth(next).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("valid token attaches identity to the context", func(t *testing.T) {
		accessToken, err := authService.GenerateAccessToken(&model.User{ID: 42, Email: "alice@example.com"})
		assert.NoError(t, err)

		req := httptest.NewRequest("GET", "/api/auth/me", nil)
		req.Header.Set("Authorization", "Bearer "+accessToken)
		rr := httptest.NewRecorder()

		requireAuth(next).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, 42, gotUserID)
		assert.Equal(t, "alice@example.com", gotEmail)
	})
}
