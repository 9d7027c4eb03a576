package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateUserRequest entrada para crear un socio. El password inicia vacío
// ("debe fijarse en el próximo login"), por eso no se pide aquí.
type CreateUserRequest struct {
	Name       string `json:"name" validate:"required,min=1,max=200"`
	MemberNo   string `json:"member_no" validate:"required,min=1,max=20"`
	Permission string `json:"permission" validate:"omitempty,oneof=default admin"`
}

// UpdateUserRequest entrada para editar el perfil de un socio.
type UpdateUserRequest struct {
	Name     *string `json:"name"`
	MemberNo *string `json:"member_no"`
}

// ChangePasswordRequest entrada para fijar un nuevo password.
type ChangePasswordRequest struct {
	Password string `json:"password" validate:"required,min=4"`
}

// UserResponse salida de un socio (sin credencial; PasswordSet indica si ya la fijó).
type UserResponse struct {
	ID          int64           `json:"id"`
	MemberNo    string          `json:"member_no"`
	Name        string          `json:"name"`
	Permission  string          `json:"permission"`
	Balance     decimal.Decimal `json:"balance"`
	PasswordSet bool            `json:"password_set"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// UserListResponse página de socios con metadatos de paginación.
type UserListResponse struct {
	Data       []UserResponse `json:"data"`
	Pagination Pagination     `json:"pagination"`
}

// LoginRequest entrada de login por número de socio.
type LoginRequest struct {
	MemberNo   string `json:"member_no" validate:"required"`
	Password   string `json:"password"`
	RememberMe bool   `json:"remember_me"`
}

// LoginResponse salida de login; el token viaja en la cookie httpOnly, no en el cuerpo.
type LoginResponse struct {
	User UserResponse `json:"user"`
}
