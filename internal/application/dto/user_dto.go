package dto

import "time"

// RegisterRequest body para POST /api/v1/auth/register.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"full_name,omitempty"`
	Role     string `json:"role,omitempty" validate:"omitempty,oneof=admin manager staff"`
}

// LoginRequest body para POST /api/v1/auth/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token + usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UpdateUserRequest patch explícito para usuarios (solo campos mutables).
type UpdateUserRequest struct {
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	FullName *string `json:"full_name,omitempty"`
	Role     *string `json:"role,omitempty" validate:"omitempty,oneof=admin manager staff"`
	IsActive *bool   `json:"is_active,omitempty"`
}

// ChangePasswordRequest body para PUT /api/v1/users/:id/password.
type ChangePasswordRequest struct {
	Password string `json:"password" validate:"required,min=8"`
}

// UserResponse usuario en respuestas (sin hash de password).
type UserResponse struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	FullName  string     `json:"full_name,omitempty"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}
