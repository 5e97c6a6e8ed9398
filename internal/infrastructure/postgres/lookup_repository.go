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

var (
	_ repository.PaymentMethodRepository = (*PaymentMethodRepo)(nil)
	_ repository.StatusRepository        = (*StatusRepo)(nil)
)

// PaymentMethodRepo catálogo payment_methods.
type PaymentMethodRepo struct {
	q Querier
}

// NewPaymentMethodRepository construye el adaptador.
func NewPaymentMethodRepository(q Querier) *PaymentMethodRepo {
	return &PaymentMethodRepo{q: q}
}

func (r *PaymentMethodRepo) Create(ctx context.Context, pm *entity.PaymentMethod) error {
	_, err := r.q.Exec(ctx, `INSERT INTO payment_methods (id, name) VALUES ($1, $2)`, pm.ID, pm.Name)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert payment method: %w", err)
	}
	return nil
}

func (r *PaymentMethodRepo) GetByID(ctx context.Context, id string) (*entity.PaymentMethod, error) {
	return r.scanOne(ctx, `SELECT id, name FROM payment_methods WHERE id = $1`, id)
}

func (r *PaymentMethodRepo) GetByName(ctx context.Context, name string) (*entity.PaymentMethod, error) {
	return r.scanOne(ctx, `SELECT id, name FROM payment_methods WHERE name = $1`, name)
}

func (r *PaymentMethodRepo) List(ctx context.Context) ([]*entity.PaymentMethod, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name FROM payment_methods ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list payment methods: %w", err)
	}
	defer rows.Close()
	var list []*entity.PaymentMethod
	for rows.Next() {
		var pm entity.PaymentMethod
		if err := rows.Scan(&pm.ID, &pm.Name); err != nil {
			return nil, fmt.Errorf("scan payment method: %w", err)
		}
		list = append(list, &pm)
	}
	return list, rows.Err()
}

func (r *PaymentMethodRepo) scanOne(ctx context.Context, query string, arg string) (*entity.PaymentMethod, error) {
	var pm entity.PaymentMethod
	if err := r.q.QueryRow(ctx, query, arg).Scan(&pm.ID, &pm.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment method: %w", err)
	}
	return &pm, nil
}

// StatusRepo catálogo status.
type StatusRepo struct {
	q Querier
}

// NewStatusRepository construye el adaptador.
func NewStatusRepository(q Querier) *StatusRepo {
	return &StatusRepo{q: q}
}

func (r *StatusRepo) Create(ctx context.Context, s *entity.Status) error {
	if _, err := r.q.Exec(ctx, `INSERT INTO status (id, value) VALUES ($1, $2)`, s.ID, s.Value); err != nil {
		return fmt.Errorf("insert status: %w", err)
	}
	return nil
}

func (r *StatusRepo) GetByID(ctx context.Context, id string) (*entity.Status, error) {
	var s entity.Status
	if err := r.q.QueryRow(ctx, `SELECT id, value FROM status WHERE id = $1`, id).Scan(&s.ID, &s.Value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get status: %w", err)
	}
	return &s, nil
}

func (r *StatusRepo) List(ctx context.Context) ([]*entity.Status, error) {
	rows, err := r.q.Query(ctx, `SELECT id, value FROM status ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list status: %w", err)
	}
	defer rows.Close()
	var list []*entity.Status
	for rows.Next() {
		var s entity.Status
		if err := rows.Scan(&s.ID, &s.Value); err != nil {
			return nil, fmt.Errorf("scan status: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
