package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"go-user-api/config"
	"go-user-api/logger"
	"go-user-api/model"
	"go-user-api/repository"
)

var (
	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password so that the two cases are indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrSigningSecretMissing means token issuance was refused because the
	// respective signing secret is not configured.
	ErrSigningSecretMissing = errors.New("signing secret not configured")

	// ErrInvalidToken means a token failed signature or expiry checks.
	ErrInvalidToken = errors.New("invalid or expired token")
)

// AuthService verifies credentials and issues the two token variants.
// Access and refresh tokens are signed with distinct secrets; neither is
// ever accepted in place of the other.
type AuthService struct {
	userRepo      repository.IUserRepository
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	bcryptCost    int
}

func NewAuthService(userRepo repository.IUserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo:      userRepo,
		accessSecret:  []byte(cfg.JWT.AccessSecret),
		refreshSecret: []byte(cfg.JWT.RefreshSecret),
		accessTTL:     cfg.JWT.AccessTTL,
		refreshTTL:    cfg.JWT.RefreshTTL,
		bcryptCost:    cfg.Bcrypt.Cost,
	}
}

func (s *AuthService) HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to hash password")
		return "", err
	}
	return string(bytes), nil
}

func (s *AuthService) CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// Login verifies the email/password pair and returns the user together with
// a fresh access and refresh token. An unknown email and a wrong password
// both yield ErrInvalidCredentials.
func (s *AuthService) Login(email, password string) (*model.User, string, string, error) {
	user, err := s.userRepo.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, "", "", ErrInvalidCredentials
		}
		return nil, "", "", err
	}

	if !s.CheckPasswordHash(password, user.PasswordHash) {
		return nil, "", "", ErrInvalidCredentials
	}

	accessToken, err := s.GenerateAccessToken(user)
	if err != nil {
		return nil, "", "", err
	}
	refreshToken, err := s.GenerateRefreshToken(user)
	if err != nil {
		return nil, "", "", err
	}

	logger.Log.WithField("user_id", user.ID).Info("User logged in")
	return user, accessToken, refreshToken, nil
}

func (s *AuthService) GenerateAccessToken(user *model.User) (string, error) {
	return s.signToken(user, s.accessSecret, s.accessTTL)
}

func (s *AuthService) GenerateRefreshToken(user *model.User) (string, error) {
	return s.signToken(user, s.refreshSecret, s.refreshTTL)
}

func (s *AuthService) signToken(user *model.User, secret []byte, ttl time.Duration) (string, error) {
	if len(secret) == 0 {
		return "", ErrSigningSecretMissing
	}

	claims := &model.AuthClaims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Email,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(secret)
	if err != nil {
		logger.Log.WithError(err).WithField("user_id", user.ID).Error("Failed to sign token")
		return "", fmt.Errorf("failed to sign token string: %w", err)
	}
	return tokenString, nil
}

// ParseAccessToken validates an access token and returns its claims.
func (s *AuthService) ParseAccessToken(tokenString string) (*model.AuthClaims, error) {
	return s.parseToken(tokenString, s.accessSecret)
}

// RefreshAccessToken validates a refresh token and mints a new access token
// for the same identity. The refresh token itself is not rotated.
func (s *AuthService) RefreshAccessToken(refreshToken string) (string, error) {
	claims, err := s.parseToken(refreshToken, s.refreshSecret)
	if err != nil {
		return "", err
	}

	user := &model.User{ID: claims.UserID, Email: claims.Email}
	return s.GenerateAccessToken(user)
}

func (s *AuthService) parseToken(tokenString string, secret []byte) (*model.AuthClaims, error) {
	if len(secret) == 0 {
		return nil, ErrSigningSecretMissing
	}

	claims := &model.AuthClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
