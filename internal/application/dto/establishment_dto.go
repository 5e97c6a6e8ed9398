package dto

import "github.com/jhoicas/Vendas-api/internal/domain/entity"

// AddressDTO dirección postal con reglas de validación.
type AddressDTO struct {
	ZipCode    string `json:"zip_code" validate:"required,len=8"`
	Street     string `json:"street" validate:"required"`
	District   string `json:"district" validate:"required"`
	Complement string `json:"complement,omitempty"`
	Number     int    `json:"number" validate:"required"`
	City       string `json:"city" validate:"required"`
	State      string `json:"state" validate:"required,max=2"`
}

// Entity convierte a la entidad de dominio.
func (a AddressDTO) Entity() entity.Address {
	return entity.Address{
		ZipCode: a.ZipCode, Street: a.Street, District: a.District, Complement: a.Complement,
		Number: a.Number, City: a.City, State: a.State,
	}
}

// PhoneDTO teléfono con reglas de validación (DDD 2 dígitos, número 9 dígitos).
type PhoneDTO struct {
	AreaCode string `json:"area_code" validate:"required,len=2"`
	Number   string `json:"number" validate:"required,len=9"`
}

// Entity convierte a la entidad de dominio.
func (p PhoneDTO) Entity() entity.Phone {
	return entity.Phone{AreaCode: p.AreaCode, Number: p.Number}
}

// EstablishmentSignUpRequest entrada de POST /establishments/signup.
type EstablishmentSignUpRequest struct {
	Name    string     `json:"name" validate:"required"`
	Phone   PhoneDTO   `json:"phone"`
	Address AddressDTO `json:"address"`
}

// EstablishmentSignUpResponse conserva el campo "token" con el ID del establecimiento creado.
type EstablishmentSignUpResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// EstablishmentResponse salida pública de un establecimiento.
type EstablishmentResponse struct {
	ID      string         `json:"id"`
	Name    string         `json:"name"`
	Address entity.Address `json:"address"`
	Phone   entity.Phone   `json:"phone"`
}
