package repository

import (
	"context"

	"github.com/jhoicas/Vendas-api/internal/domain/entity"
)

// UserFilter criterios de búsqueda de usuarios. Campos vacíos no filtran.
type UserFilter struct {
	EstablishmentID string
	Name            string
	Email           string
	Customer        *bool
	ExcludeID       string
}

// IsEmpty indica si no hay criterios además del establecimiento.
func (f UserFilter) IsEmpty() bool {
	return f.Name == "" && f.Email == "" && f.Customer == nil
}

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByName(ctx context.Context, establishmentID, name string) (*entity.User, error)
	List(ctx context.Context, filter UserFilter) ([]*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id string) error
}
