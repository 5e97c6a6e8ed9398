package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItem línea de pedido: referencia a producto + cantidad.
type OrderItem struct {
	ProductID string `json:"id" bson:"id"`
	Quantity  int    `json:"quantity" bson:"quantity"`
}

// Order venta registrada. Inmutable salvo Status.
type Order struct {
	ID              string
	EstablishmentID string
	Value           decimal.Decimal
	OrderDate       time.Time
	Products        []OrderItem
	PaymentMethodID string
	UserID          string // cliente
	VendorID        string // opcional
	Status          string // id de Status
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ProductCount suma de cantidades de todas las líneas.
func (o *Order) ProductCount() int {
	n := 0
	for _, it := range o.Products {
		n += it.Quantity
	}
	return n
}

// SameBasket compara valor, método de pago, cliente y la lista de productos (mismo orden).
func (o *Order) SameBasket(other *Order) bool {
	if !o.Value.Equal(other.Value) || o.PaymentMethodID != other.PaymentMethodID || o.UserID != other.UserID {
		return false
	}
	if len(o.Products) != len(other.Products) {
		return false
	}
	for i := range o.Products {
		if o.Products[i] != other.Products[i] {
			return false
		}
	}
	return true
}

// SameInstant compara las fechas truncadas al segundo.
func (o *Order) SameInstant(other *Order) bool {
	return o.OrderDate.Truncate(time.Second).Equal(other.OrderDate.Truncate(time.Second))
}
