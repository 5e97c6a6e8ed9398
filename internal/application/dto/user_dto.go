package dto

import "github.com/jhoicas/Vendas-api/internal/domain/entity"

// SignUpRequest entrada de POST /users/signup. Establishment es el nombre del establecimiento.
type SignUpRequest struct {
	Name          string     `json:"name" validate:"required"`
	Email         string     `json:"email" validate:"required,email"`
	Phone         PhoneDTO   `json:"phone"`
	Address       AddressDTO `json:"address"`
	Password      string     `json:"password" validate:"required,min=8"`
	Establishment string     `json:"establishment" validate:"required"`
}

// SignInRequest entrada de POST /users/signin.
type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// AuthResponse salida de signup/signin. Token es el JWT firmado; ID el del usuario.
type AuthResponse struct {
	Message       string                 `json:"message"`
	Token         string                 `json:"token"`
	ID            string                 `json:"id"`
	Name          string                 `json:"name"`
	Establishment *EstablishmentResponse `json:"establishment,omitempty"`
}

// UserResponse salida de un usuario (sin password ni marcas de auditoría).
type UserResponse struct {
	ID              string         `json:"id,omitempty"`
	Name            string         `json:"name"`
	Email           string         `json:"email"`
	Phone           entity.Phone   `json:"phone"`
	Address         entity.Address `json:"address"`
	Customer        bool           `json:"customer"`
	EstablishmentID string         `json:"establishment_id,omitempty"`
}

// UserListResponse salida de GET /users sin filtros.
type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Size  int            `json:"size"`
}

// UserQuery filtros de GET /users.
type UserQuery struct {
	Name     string `query:"name"`
	Email    string `query:"email"`
	Customer string `query:"customer"` // "true" | "false" | ""
}

// UpdateUserRequest edición parcial de vendedor o cliente; campos nil no se tocan.
type UpdateUserRequest struct {
	ID       string      `json:"id" validate:"required"`
	Name     *string     `json:"name" validate:"omitempty,min=1"`
	Email    *string     `json:"email" validate:"omitempty,email"`
	Phone    *PhoneDTO   `json:"phone" validate:"omitempty"`
	Address  *AddressDTO `json:"address" validate:"omitempty"`
	Password *string     `json:"password" validate:"omitempty,min=8"`
}

// IDRequest cuerpo con un único ID.
type IDRequest struct {
	ID string `json:"id" validate:"required"`
}
