package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"go-user-api/common"
	"go-user-api/logger"
	"go-user-api/model"
	"go-user-api/repository"
	"go-user-api/service"
)

type AuthHandler struct {
	authService *service.AuthService
	userService *service.UserService
}

func NewAuthHandler(authService *service.AuthService, userService *service.UserService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		userService: userService,
	}
}

// Login godoc
// @Summary      Authenticate with email and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials  body  model.LoginRequest  true  "Credentials"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  common.AppError
// @Failure      401  {object}  common.AppError
// @Failure      500  {object}  common.AppError
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.LoginRequest
	if err := common.DecodeAndValidate(r, &req); err != nil {
		return common.NewAppError(http.StatusBadRequest, "Email and password are required.", nil)
	}

	logger.Log.WithField("email", req.Email).Info("Login request received")

	user, accessToken, refreshToken, err := h.authService.Login(req.Email, req.Password)
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return common.NewAppError(http.StatusUnauthorized, "Invalid email or password.", nil)
	case errors.Is(err, service.ErrSigningSecretMissing):
		return common.NewAppError(http.StatusInternalServerError, "JWT secret not configured.", err)
	case err != nil:
		return common.NewAppError(http.StatusInternalServerError, "Login failed.", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"token":        accessToken,
		"refreshToken": refreshToken,
		"user":         user.Public(),
	})
	return nil
}

// Refresh mints a new access token from a valid refresh token. The refresh
// token is presented in the request body, not in a header, and is not
// rotated on use.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.RefreshToken == "" {
		return common.NewAppError(http.StatusUnauthorized, "Refresh token required.", nil)
	}

	accessToken, err := h.authService.RefreshAccessToken(req.RefreshToken)
	switch {
	case errors.Is(err, service.ErrInvalidToken):
		return common.NewAppError(http.StatusForbidden, "Invalid refresh token.", nil)
	case err != nil:
		return common.NewAppError(http.StatusInternalServerError, "Failed to refresh token.", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"accessToken": accessToken})
	return nil
}

// Me returns the account of the authenticated caller, resolved from the
// identity the auth gate attached to the request context.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, ok := r.Context().Value(UserIDKey).(int)
	if !ok {
		return common.NewAppError(http.StatusUnauthorized, "Unauthorized", nil)
	}

	user, err := h.userService.GetUserByID(userID)
	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		return common.NewAppError(http.StatusNotFound, "User not found.", nil)
	case err != nil:
		return common.NewAppError(http.StatusInternalServerError, "Failed to fetch user.", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(user.Public())
	return nil
}
