package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Vendas-api/internal/domain"
	"github.com/jhoicas/Vendas-api/internal/domain/entity"
	"github.com/jhoicas/Vendas-api/internal/domain/repository"
)

var _ repository.EstablishmentRepository = (*EstablishmentRepo)(nil)

const establishmentColumns = `id, name, address, phone, created_at, updated_at`

// EstablishmentRepo implementación del puerto EstablishmentRepository sobre PostgreSQL.
// Dirección y teléfono se guardan como JSONB.
type EstablishmentRepo struct {
	q Querier
}

// NewEstablishmentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEstablishmentRepository(q Querier) *EstablishmentRepo {
	return &EstablishmentRepo{q: q}
}

// Create persiste un nuevo establecimiento.
func (r *EstablishmentRepo) Create(ctx context.Context, e *entity.Establishment) error {
	query := `
		INSERT INTO establishments (` + establishmentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query, e.ID, e.Name, e.Address, e.Phone, e.CreatedAt, e.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEstablishmentExists
		}
		return fmt.Errorf("insert establishment: %w", err)
	}
	return nil
}

// GetByID obtiene un establecimiento por ID.
func (r *EstablishmentRepo) GetByID(ctx context.Context, id string) (*entity.Establishment, error) {
	return r.scanOne(ctx, `SELECT `+establishmentColumns+` FROM establishments WHERE id = $1`, id)
}

// GetByName obtiene el primer establecimiento con ese nombre.
func (r *EstablishmentRepo) GetByName(ctx context.Context, name string) (*entity.Establishment, error) {
	return r.scanOne(ctx, `SELECT `+establishmentColumns+` FROM establishments WHERE name = $1 ORDER BY created_at LIMIT 1`, name)
}

// GetByNameAndPhone busca por la clave de unicidad (nombre, teléfono).
func (r *EstablishmentRepo) GetByNameAndPhone(ctx context.Context, name string, phone entity.Phone) (*entity.Establishment, error) {
	query := `
		SELECT ` + establishmentColumns + ` FROM establishments
		WHERE name = $1 AND phone->>'area_code' = $2 AND phone->>'number' = $3
		LIMIT 1`
	return r.scanOne(ctx, query, name, phone.AreaCode, phone.Number)
}

func (r *EstablishmentRepo) scanOne(ctx context.Context, query string, args ...any) (*entity.Establishment, error) {
	var e entity.Establishment
	err := r.q.QueryRow(ctx, query, args...).Scan(&e.ID, &e.Name, &e.Address, &e.Phone, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get establishment: %w", err)
	}
	return &e, nil
}
