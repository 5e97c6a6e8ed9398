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

var _ repository.OrderRepository = (*OrderRepo)(nil)

const orderColumns = `id, establishment_id, value, order_date, products, payment_method_id, user_id,
	COALESCE(vendor_id, ''), status, created_at, updated_at`

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL. Las líneas van en JSONB.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste un pedido.
func (r *OrderRepo) Create(ctx context.Context, o *entity.Order) error {
	query := `
		INSERT INTO orders (id, establishment_id, value, order_date, products, payment_method_id, user_id,
			vendor_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	products := o.Products
	if products == nil {
		products = []entity.OrderItem{}
	}
	_, err := r.q.Exec(ctx, query,
		o.ID, o.EstablishmentID, o.Value, o.OrderDate, products, o.PaymentMethodID, o.UserID,
		nullIfEmpty(o.VendorID), o.Status, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByID obtiene un pedido por ID.
func (r *OrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	o, err := scanOrder(r.q.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return o, nil
}

// List lista pedidos según el filtro, en orden cronológico.
func (r *OrderRepo) List(ctx context.Context, f repository.OrderFilter) ([]*entity.Order, error) {
	var w where
	if f.EstablishmentID != "" {
		w.add("establishment_id = $%d", f.EstablishmentID)
	}
	if f.UserID != "" {
		w.add("user_id = $%d", f.UserID)
	}
	if f.VendorID != "" {
		w.add("vendor_id = $%d", f.VendorID)
	}
	if f.Status != "" {
		w.add("status = $%d", f.Status)
	}
	if f.PaymentMethodID != "" {
		w.add("payment_method_id = $%d", f.PaymentMethodID)
	}
	if f.Value != nil {
		w.add("value = $%d", *f.Value)
	}
	if f.From != nil {
		w.add("order_date >= $%d", *f.From)
	}
	if f.To != nil {
		w.add("order_date <= $%d", *f.To)
	}
	rows, err := r.q.Query(ctx, `SELECT `+orderColumns+` FROM orders`+w.String()+` ORDER BY order_date, created_at`, w.args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, o)
	}
	return list, rows.Err()
}

// UpdateStatus cambia el único campo mutable de un pedido.
func (r *OrderRepo) UpdateStatus(ctx context.Context, id, status string) error {
	tag, err := r.q.Exec(ctx, `UPDATE orders SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

func scanOrder(row pgx.Row) (*entity.Order, error) {
	var o entity.Order
	err := row.Scan(&o.ID, &o.EstablishmentID, &o.Value, &o.OrderDate, &o.Products, &o.PaymentMethodID,
		&o.UserID, &o.VendorID, &o.Status, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}
