package dto

import (
	"time"
)

type CreateUserRequest struct {
	Nombre   string `json:"nombre" validate:"required,max=100"`
	Apellido string `json:"apellido" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	RoleID   int    `json:"role_id" validate:"required"`
	Activo   *bool  `json:"activo,omitempty"`
}

type UpdateUserRequest struct {
	Nombre   *string `json:"nombre,omitempty"`
	Apellido *string `json:"apellido,omitempty"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=6"`
	RoleID   *int    `json:"role_id,omitempty"`
	Activo   *bool   `json:"activo,omitempty"`
}

type RoleResponse struct {
	ID          int    `json:"id"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion,omitempty"`
}

type UserResponse struct {
	ID        int           `json:"id"`
	Nombre    string        `json:"nombre"`
	Apellido  string        `json:"apellido"`
	Email     string        `json:"email"`
	Role      *RoleResponse `json:"role,omitempty"`
	Activo    *bool         `json:"activo,omitempty"`
	Ultimavez *time.Time    `json:"ultimavez,omitempty"`
	ImagenURL *string       `json:"imagen_url,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

type UserListResponse struct {
	Users []*UserResponse `json:"users"`
	Total int             `json:"total"`
}
