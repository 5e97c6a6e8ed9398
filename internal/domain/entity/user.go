package entity

import "time"

// User persona ligada a un establecimiento. Customer=true es cliente; false es vendedor (colaborador).
type User struct {
	ID              string
	EstablishmentID string
	Name            string
	Email           string
	PasswordHash    string // bcrypt; vacío para clientes importados
	Phone           Phone
	Address         Address
	Customer        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsVendor indica si el usuario es un colaborador (puede iniciar sesión).
func (u *User) IsVendor() bool {
	return !u.Customer
}

// SameProfile compara los campos que la importación de clientes puede modificar.
func (u *User) SameProfile(other *User) bool {
	return u.Name == other.Name &&
		u.Phone == other.Phone &&
		u.Address == other.Address &&
		u.Customer == other.Customer
}
