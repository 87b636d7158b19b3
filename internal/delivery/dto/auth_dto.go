package dto

import (
	"enfermeria-api/pkg/opt"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token        string        `json:"token"`
	RefreshToken string        `json:"refresh_token"`
	ExpiresIn    int64         `json:"expires_in"`
	User         *UserResponse `json:"user"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

// UpdateProfileRequest is the self-service profile edit. ImagenURL is
// tri-state: absent leaves the avatar untouched, null removes it.
type UpdateProfileRequest struct {
	Nombre          *string           `json:"nombre,omitempty"`
	Apellido        *string           `json:"apellido,omitempty"`
	Email           *string           `json:"email,omitempty" validate:"omitempty,email"`
	Password        *string           `json:"password,omitempty" validate:"omitempty,min=6"`
	CurrentPassword *string           `json:"currentPassword,omitempty"`
	ImagenURL       opt.Field[string] `json:"imagen_url"`
}
