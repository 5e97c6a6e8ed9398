package repository

import (
	"context"

	"github.com/jhoicas/Vendas-api/internal/domain/entity"
)

// EstablishmentRepository define el puerto de persistencia para Establishment.
type EstablishmentRepository interface {
	Create(ctx context.Context, establishment *entity.Establishment) error
	GetByID(ctx context.Context, id string) (*entity.Establishment, error)
	GetByName(ctx context.Context, name string) (*entity.Establishment, error)
	GetByNameAndPhone(ctx context.Context, name string, phone entity.Phone) (*entity.Establishment, error)
}
