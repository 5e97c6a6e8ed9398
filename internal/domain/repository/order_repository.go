package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Vendas-api/internal/domain/entity"
)

// OrderFilter criterios de búsqueda de pedidos. Campos cero no filtran.
// From/To son inclusivos sobre OrderDate.
type OrderFilter struct {
	EstablishmentID string
	UserID          string
	VendorID        string
	Status          string
	PaymentMethodID string
	Value           *decimal.Decimal
	From            *time.Time
	To              *time.Time
}

// OrderRepository define el puerto de persistencia para Order. Los resultados se ordenan por OrderDate ascendente.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	List(ctx context.Context, filter OrderFilter) ([]*entity.Order, error)
	UpdateStatus(ctx context.Context, id, status string) error
}
