// file: service/auth_service_test.go

package service

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"go-user-api/model"
	"go-user-api/repository"
)

// TestAuthService_HashAndCheckPassword ensures that password hashing and
// verification work correctly.
func TestAuthService_HashAndCheckPassword(t *testing.T) {
	authService := NewAuthService(nil, testConfig())
	password := "mySecretPassword123"

	hashedPassword, err := authService.HashPassword(password)
	assert.NoError(t, err)
	assert.NotEqual(t, password, hashedPassword)

	// Hashing is salted, so two hashes of the same input must differ.
	secondHash, err := authService.HashPassword(password)
	assert.NoError(t, err)
	assert.NotEqual(t, hashedPassword, secondHash)

	assert.True(t, authService.CheckPasswordHash(password, hashedPassword))
	assert.True(t, authService.CheckPasswordHash(password, secondHash))
	assert.False(t, authService.CheckPasswordHash("notMyPassword", hashedPassword))
}

func TestAuthService_Login(t *testing.T) {
	user := &model.User{ID: 1, Name: "Alice", Email: "alice@example.com"}

	t.Run("success returns user and both tokens", func(t *testing.T) {
		authService := NewAuthService(nil, testConfig())
		hash, _ := authService.HashPassword("correct-horse")
		stored := *user
		stored.PasswordHash = hash

		mockRepo := new(mockUserRepo)
		mockRepo.On("GetUserByEmail", "alice@example.com").Return(&stored, nil).Once()

		authService = NewAuthService(mockRepo, testConfig())
		got, access, refresh, err := authService.Login("alice@example.com", "correct-horse")

		assert.NoError(t, err)
		assert.Equal(t, 1, got.ID)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)

		claims, err := authService.ParseAccessToken(access)
		assert.NoError(t, err)
		assert.Equal(t, 1, claims.UserID)
		assert.Equal(t, "alice@example.com", claims.Email)
		mockRepo.AssertExpectations(t)
	})

	t.Run("unknown email and wrong password are indistinguishable", func(t *testing.T) {
		authService := NewAuthService(nil, testConfig())
		hash, _ := authService.HashPassword("correct-horse")
		stored := *user
		stored.PasswordHash = hash

		mockRepo := new(mockUserRepo)
		mockRepo.On("GetUserByEmail", "ghost@example.com").Return(nil, repository.ErrUserNotFound).Once()
		mockRepo.On("GetUserByEmail", "alice@example.com").Return(&stored, nil).Once()

		authService = NewAuthService(mockRepo, testConfig())

		_, _, _, errUnknown := authService.Login("ghost@example.com", "whatever")
		_, _, _, errWrongPass := authService.Login("alice@example.com", "wrong-password")

		assert.ErrorIs(t, errUnknown, ErrInvalidCredentials)
		assert.ErrorIs(t, errWrongPass, ErrInvalidCredentials)
		assert.Equal(t, errUnknown, errWrongPass)
	})

	t.Run("missing signing secret fails closed", func(t *testing.T) {
		authService := NewAuthService(nil, testConfig())
		hash, _ := authService.HashPassword("correct-horse")
		stored := *user
		stored.PasswordHash = hash

		mockRepo := new(mockUserRepo)
		mockRepo.On("GetUserByEmail", "alice@example.com").Return(&stored, nil).Once()

		cfg := testConfig()
		cfg.JWT.AccessSecret = ""
		authService = NewAuthService(mockRepo, cfg)

		_, access, _, err := authService.Login("alice@example.com", "correct-horse")

		assert.ErrorIs(t, err, ErrSigningSecretMissing)
		assert.Empty(t, access)
	})

	t.Run("repository failure is not masked as bad credentials", func(t *testing.T) {
		dbErr := errors.New("connection reset")
		mockRepo := new(mockUserRepo)
		mockRepo.On("GetUserByEmail", "alice@example.com").Return(nil, dbErr).Once()

		authService := NewAuthService(mockRepo, testConfig())
		_, _, _, err := authService.Login("alice@example.com", "correct-horse")

		assert.ErrorIs(t, err, dbErr)
	})
}

func TestAuthService_TokenVerification(t *testing.T) {
	user := &model.User{ID: 2, Email: "bob@example.com"}

	t.Run("expired access token is rejected", func(t *testing.T) {
		cfg := testConfig()
		cfg.JWT.AccessTTL = -time.Minute
		authService := NewAuthService(nil, cfg)

		token, err := authService.GenerateAccessToken(user)
		assert.NoError(t, err)

		_, err = authService.ParseAccessToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("access token is not accepted as a refresh token", func(t *testing.T) {
		authService := NewAuthService(nil, testConfig())

		accessToken, err := authService.GenerateAccessToken(user)
		assert.NoError(t, err)

		_, err = authService.RefreshAccessToken(accessToken)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("refresh token is not accepted as an access token", func(t *testing.T) {
		authService := NewAuthService(nil, testConfig())

		refreshToken, err := authService.GenerateRefreshToken(user)
		assert.NoError(t, err)

		_, err = authService.ParseAccessToken(refreshToken)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		authService := NewAuthService(nil, testConfig())

		_, err := authService.ParseAccessToken("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestAuthService_RefreshAccessToken(t *testing.T) {
	user := &model.User{ID: 3, Email: "carol@example.com"}
	authService := NewAuthService(nil, testConfig())

	refreshToken, err := authService.GenerateRefreshToken(user)
	assert.NoError(t, err)

	accessToken, err := authService.RefreshAccessToken(refreshToken)
	assert.NoError(t, err)

	claims, err := authService.ParseAccessToken(accessToken)
	assert.NoError(t, err)
	assert.Equal(t, 3, claims.UserID)
	assert.Equal(t, "carol@example.com", claims.Email)

	// The refresh token stays valid; it is not rotated on use.
	_, err = authService.RefreshAccessToken(refreshToken)
	assert.NoError(t, err)
}
