package entity

import "time"

// Establishment negocio que agrupa usuarios, productos y pedidos.
// Unicidad por (Name, Phone) verificada antes de insertar.
type Establishment struct {
	ID        string
	Name      string
	Address   Address
	Phone     Phone
	CreatedAt time.Time
	UpdatedAt time.Time
}
