package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product artículo vendible de un establecimiento. Code es la clave de conciliación en importaciones.
type Product struct {
	ID              string
	EstablishmentID string
	Name            string
	Value           decimal.Decimal // precio de venta
	Cost            decimal.Decimal // precio de costo
	Category        string
	Code            string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// UnitProfit lucro por unidad (valor - costo).
func (p *Product) UnitProfit() decimal.Decimal {
	return p.Value.Sub(p.Cost)
}

// SameData compara los campos que la importación de productos puede modificar.
func (p *Product) SameData(other *Product) bool {
	return p.Name == other.Name &&
		p.Value.Equal(other.Value) &&
		p.Cost.Equal(other.Cost) &&
		p.Category == other.Category
}
