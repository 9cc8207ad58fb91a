package model

// LoginRequest defines the payload for user authentication.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest carries the long-lived refresh token presented to mint a
// new access token.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// CreateUserRequest defines the payload for creating a new user.
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateUserRequest defines the payload for a partial user update. Every
// field is optional; at least one must be present.
type UpdateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
