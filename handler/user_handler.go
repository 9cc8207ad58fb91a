package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"go-user-api/common"
	"go-user-api/logger"
	"go-user-api/model"
	"go-user-api/repository"
	"go-user-api/service"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func writeUser(w http.ResponseWriter, status int, user *model.User) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(user.Public())
}

// GetByEmail fetches a user by email.
func (h *UserHandler) GetByEmail(w http.ResponseWriter, r *http.Request) *common.AppError {
	email := r.PathValue("email")

	user, err := h.userService.GetUserByEmail(email)
	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		return common.NewAppError(http.StatusNotFound, "User not found.", nil)
	case err != nil:
		return common.NewAppError(http.StatusInternalServerError, "Failed to fetch user.", err)
	}

	writeUser(w, http.StatusOK, user)
	return nil
}

// GetByID fetches a user by ID.
func (h *UserHandler) GetByID(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return common.NewAppError(http.StatusBadRequest, "Invalid user ID.", nil)
	}

	user, err := h.userService.GetUserByID(id)
	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		return common.NewAppError(http.StatusNotFound, "User not found.", nil)
	case err != nil:
		return common.NewAppError(http.StatusInternalServerError, "Failed to fetch user.", err)
	}

	writeUser(w, http.StatusOK, user)
	return nil
}

// GetAll lists every user.
func (h *UserHandler) GetAll(w http.ResponseWriter, r *http.Request) *common.AppError {
	users, err := h.userService.GetAllUsers()
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Failed to fetch users.", err)
	}

	publics := make([]model.PublicUser, 0, len(users))
	for _, u := range users {
		publics = append(publics, u.Public())
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(publics)
	return nil
}

// Create godoc
// @Summary      Create a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        user  body  model.CreateUserRequest  true  "New user"
// @Success      201  {object}  model.PublicUser
// @Failure      400  {object}  common.AppError
// @Failure      409  {object}  common.AppError
// @Failure      500  {object}  common.AppError
// @Router       /api/users [post]
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.CreateUserRequest
	if err := common.DecodeAndValidate(r, &req); err != nil {
		return common.NewAppError(http.StatusBadRequest, "Name, email, and password are required.", nil)
	}

	logger.Log.WithField("email", req.Email).Info("Create user request received")

	user, err := h.userService.CreateUser(req)
	switch {
	case errors.Is(err, repository.ErrDuplicateEmail):
		return common.NewAppError(http.StatusConflict, "Email already exists.", nil)
	case err != nil:
		return common.NewAppError(http.StatusInternalServerError, "Failed to create user.", err)
	}

	writeUser(w, http.StatusCreated, user)
	return nil
}

// Update applies a partial update to a user's name, email or password.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return common.NewAppError(http.StatusBadRequest, "Invalid user ID.", nil)
	}

	var req model.UpdateUserRequest
	if err := common.DecodeAndValidate(r, &req); err != nil {
		return common.NewAppError(http.StatusBadRequest, "Invalid request body.", nil)
	}

	user, err := h.userService.UpdateUser(id, req)
	switch {
	case errors.Is(err, service.ErrEmptyUpdate):
		return common.NewAppError(http.StatusBadRequest, "No valid fields provided for update.", nil)
	case errors.Is(err, repository.ErrDuplicateEmail):
		return common.NewAppError(http.StatusConflict, "Email already exists.", nil)
	case errors.Is(err, repository.ErrUserNotFound):
		return common.NewAppError(http.StatusNotFound, "User not found.", nil)
	case err != nil:
		return common.NewAppError(http.StatusInternalServerError, "Failed to update user.", err)
	}

	writeUser(w, http.StatusOK, user)
	return nil
}

// Delete removes a user permanently.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return common.NewAppError(http.StatusBadRequest, "Invalid user ID.", nil)
	}

	if err := h.userService.DeleteUser(id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return common.NewAppError(http.StatusNotFound, "User not found.", nil)
		}
		return common.NewAppError(http.StatusInternalServerError, "Failed to delete user.", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"message": "User deleted successfully."})
	return nil
}
