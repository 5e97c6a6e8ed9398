package repository

import (
	"context"

	"github.com/jhoicas/Vendas-api/internal/domain/entity"
)

// PaymentMethodRepository catálogo de métodos de pago.
type PaymentMethodRepository interface {
	Create(ctx context.Context, pm *entity.PaymentMethod) error
	GetByID(ctx context.Context, id string) (*entity.PaymentMethod, error)
	GetByName(ctx context.Context, name string) (*entity.PaymentMethod, error)
	List(ctx context.Context) ([]*entity.PaymentMethod, error)
}

// StatusRepository catálogo de estados de pedido.
type StatusRepository interface {
	Create(ctx context.Context, status *entity.Status) error
	GetByID(ctx context.Context, id string) (*entity.Status, error)
	List(ctx context.Context) ([]*entity.Status, error)
}

// Store agrupa todos los puertos de persistencia de un mismo backend.
type Store struct {
	Establishments EstablishmentRepository
	Users          UserRepository
	Products       ProductRepository
	Orders         OrderRepository
	PaymentMethods PaymentMethodRepository
	Statuses       StatusRepository
	Ping           func(ctx context.Context) error
	Close          func(ctx context.Context) error
}
