// Package memory implementa los puertos de persistencia en memoria (DB_DRIVER=memory y tests).
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/jhoicas/Vendas-api/internal/domain"
	"github.com/jhoicas/Vendas-api/internal/domain/entity"
	"github.com/jhoicas/Vendas-api/internal/domain/repository"
)

var (
	_ repository.EstablishmentRepository = (*EstablishmentRepo)(nil)
	_ repository.UserRepository          = (*UserRepo)(nil)
	_ repository.ProductRepository       = (*ProductRepo)(nil)
	_ repository.OrderRepository         = (*OrderRepo)(nil)
	_ repository.PaymentMethodRepository = (*PaymentMethodRepo)(nil)
	_ repository.StatusRepository        = (*StatusRepo)(nil)
)

// NewStore construye un Store completo en memoria.
func NewStore() repository.Store {
	noop := func(context.Context) error { return nil }
	return repository.Store{
		Establishments: NewEstablishmentRepository(),
		Users:          NewUserRepository(),
		Products:       NewProductRepository(),
		Orders:         NewOrderRepository(),
		PaymentMethods: NewPaymentMethodRepository(),
		Statuses:       NewStatusRepository(),
		Ping:           noop,
		Close:          noop,
	}
}

// ── Establishments ────────────────────────────────────────────────────────────

// EstablishmentRepo establecimientos en memoria.
type EstablishmentRepo struct {
	mu   sync.RWMutex
	rows []entity.Establishment
}

// NewEstablishmentRepository construye el repositorio vacío.
func NewEstablishmentRepository() *EstablishmentRepo { return &EstablishmentRepo{} }

func (r *EstablishmentRepo) Create(_ context.Context, e *entity.Establishment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, row := range r.rows {
		if row.ID == e.ID {
			return domain.ErrDuplicate
		}
	}
	r.rows = append(r.rows, *e)
	return nil
}

func (r *EstablishmentRepo) find(match func(*entity.Establishment) bool) *entity.Establishment {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.rows {
		if match(&r.rows[i]) {
			e := r.rows[i]
			return &e
		}
	}
	return nil
}

func (r *EstablishmentRepo) GetByID(_ context.Context, id string) (*entity.Establishment, error) {
	return r.find(func(e *entity.Establishment) bool { return e.ID == id }), nil
}

func (r *EstablishmentRepo) GetByName(_ context.Context, name string) (*entity.Establishment, error) {
	return r.find(func(e *entity.Establishment) bool { return e.Name == name }), nil
}

func (r *EstablishmentRepo) GetByNameAndPhone(_ context.Context, name string, phone entity.Phone) (*entity.Establishment, error) {
	return r.find(func(e *entity.Establishment) bool { return e.Name == name && e.Phone == phone }), nil
}

// ── Users ─────────────────────────────────────────────────────────────────────

// UserRepo usuarios en memoria. El email es único, igual que el índice de las bases reales.
type UserRepo struct {
	mu   sync.RWMutex
	rows []entity.User
}

// NewUserRepository construye el repositorio vacío.
func NewUserRepository() *UserRepo { return &UserRepo{} }

func (r *UserRepo) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, row := range r.rows {
		if u.Email != "" && strings.EqualFold(row.Email, u.Email) {
			return domain.ErrEmailAlreadyExists
		}
	}
	r.rows = append(r.rows, *u)
	return nil
}

func (r *UserRepo) find(match func(*entity.User) bool) *entity.User {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.rows {
		if match(&r.rows[i]) {
			u := r.rows[i]
			return &u
		}
	}
	return nil
}

func (r *UserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return u.ID == id }), nil
}

func (r *UserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return strings.EqualFold(u.Email, email) }), nil
}

func (r *UserRepo) GetByName(_ context.Context, establishmentID, name string) (*entity.User, error) {
	return r.find(func(u *entity.User) bool {
		return u.EstablishmentID == establishmentID && u.Name == name
	}), nil
}

func (r *UserRepo) List(_ context.Context, f repository.UserFilter) ([]*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*entity.User
	for i := range r.rows {
		u := r.rows[i]
		if f.EstablishmentID != "" && u.EstablishmentID != f.EstablishmentID {
			continue
		}
		if f.Name != "" && u.Name != f.Name {
			continue
		}
		if f.Email != "" && !strings.EqualFold(u.Email, f.Email) {
			continue
		}
		if f.Customer != nil && u.Customer != *f.Customer {
			continue
		}
		if f.ExcludeID != "" && u.ID == f.ExcludeID {
			continue
		}
		out = append(out, &u)
	}
	return out, nil
}

func (r *UserRepo) Update(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	idx := -1
	for i := range r.rows {
		if r.rows[i].ID == u.ID {
			idx = i
			continue
		}
		if u.Email != "" && strings.EqualFold(r.rows[i].Email, u.Email) {
			return domain.ErrEmailAlreadyExists
		}
	}
	if idx < 0 {
		return domain.ErrUserNotFound
	}
	r.rows[idx] = *u
	return nil
}

func (r *UserRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.rows {
		if r.rows[i].ID == id {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			return nil
		}
	}
	return nil
}

// ── Products ──────────────────────────────────────────────────────────────────

// ProductRepo productos en memoria.
type ProductRepo struct {
	mu   sync.RWMutex
	rows []entity.Product
}

// NewProductRepository construye el repositorio vacío.
func NewProductRepository() *ProductRepo { return &ProductRepo{} }

func (r *ProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, row := range r.rows {
		if row.ID == p.ID || (p.Code != "" && row.EstablishmentID == p.EstablishmentID && row.Code == p.Code) {
			return domain.ErrDuplicate
		}
	}
	r.rows = append(r.rows, *p)
	return nil
}

func (r *ProductRepo) find(match func(*entity.Product) bool) *entity.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.rows {
		if match(&r.rows[i]) {
			p := r.rows[i]
			return &p
		}
	}
	return nil
}

func (r *ProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	return r.find(func(p *entity.Product) bool { return p.ID == id }), nil
}

func (r *ProductRepo) GetByCode(_ context.Context, establishmentID, code string) (*entity.Product, error) {
	return r.find(func(p *entity.Product) bool {
		return p.EstablishmentID == establishmentID && p.Code == code
	}), nil
}

func (r *ProductRepo) GetByName(_ context.Context, establishmentID, name string) (*entity.Product, error) {
	return r.find(func(p *entity.Product) bool {
		return p.EstablishmentID == establishmentID && p.Name == name
	}), nil
}

func (r *ProductRepo) List(_ context.Context, f repository.ProductFilter) ([]*entity.Product, error) {
	ids := make(map[string]struct{}, len(f.IDs))
	for _, id := range f.IDs {
		ids[id] = struct{}{}
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*entity.Product
	for i := range r.rows {
		p := r.rows[i]
		if f.EstablishmentID != "" && p.EstablishmentID != f.EstablishmentID {
			continue
		}
		if len(ids) > 0 {
			if _, ok := ids[p.ID]; !ok {
				continue
			}
		}
		out = append(out, &p)
	}
	return out, nil
}

func (r *ProductRepo) Update(_ context.Context, p *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.rows {
		if r.rows[i].ID == p.ID {
			r.rows[i] = *p
			return nil
		}
	}
	return domain.ErrProductNotFound
}

// ── Orders ────────────────────────────────────────────────────────────────────

// OrderRepo pedidos en memoria.
type OrderRepo struct {
	mu   sync.RWMutex
	rows []entity.Order
}

// NewOrderRepository construye el repositorio vacío.
func NewOrderRepository() *OrderRepo { return &OrderRepo{} }

func (r *OrderRepo) Create(_ context.Context, o *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *o
	cp.Products = append([]entity.OrderItem(nil), o.Products...)
	r.rows = append(r.rows, cp)
	return nil
}

func (r *OrderRepo) GetByID(_ context.Context, id string) (*entity.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.rows {
		if r.rows[i].ID == id {
			o := r.rows[i]
			return &o, nil
		}
	}
	return nil, nil
}

func (r *OrderRepo) List(_ context.Context, f repository.OrderFilter) ([]*entity.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*entity.Order
	for i := range r.rows {
		o := r.rows[i]
		if !matchOrder(&o, f) {
			continue
		}
		out = append(out, &o)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].OrderDate.Before(out[j].OrderDate) })
	return out, nil
}

func matchOrder(o *entity.Order, f repository.OrderFilter) bool {
	switch {
	case f.EstablishmentID != "" && o.EstablishmentID != f.EstablishmentID:
		return false
	case f.UserID != "" && o.UserID != f.UserID:
		return false
	case f.VendorID != "" && o.VendorID != f.VendorID:
		return false
	case f.Status != "" && o.Status != f.Status:
		return false
	case f.PaymentMethodID != "" && o.PaymentMethodID != f.PaymentMethodID:
		return false
	case f.Value != nil && !o.Value.Equal(*f.Value):
		return false
	case f.From != nil && o.OrderDate.Before(*f.From):
		return false
	case f.To != nil && o.OrderDate.After(*f.To):
		return false
	}
	return true
}

func (r *OrderRepo) UpdateStatus(_ context.Context, id, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.rows {
		if r.rows[i].ID == id {
			r.rows[i].Status = status
			return nil
		}
	}
	return domain.ErrOrderNotFound
}

// ── Lookups ───────────────────────────────────────────────────────────────────

// PaymentMethodRepo catálogo de métodos de pago en memoria.
type PaymentMethodRepo struct {
	mu   sync.RWMutex
	rows []entity.PaymentMethod
}

// NewPaymentMethodRepository construye el repositorio vacío.
func NewPaymentMethodRepository() *PaymentMethodRepo { return &PaymentMethodRepo{} }

func (r *PaymentMethodRepo) Create(_ context.Context, pm *entity.PaymentMethod) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = append(r.rows, *pm)
	return nil
}

func (r *PaymentMethodRepo) GetByID(_ context.Context, id string) (*entity.PaymentMethod, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, pm := range r.rows {
		if pm.ID == id {
			return &pm, nil
		}
	}
	return nil, nil
}

func (r *PaymentMethodRepo) GetByName(_ context.Context, name string) (*entity.PaymentMethod, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, pm := range r.rows {
		if pm.Name == name {
			return &pm, nil
		}
	}
	return nil, nil
}

func (r *PaymentMethodRepo) List(_ context.Context) ([]*entity.PaymentMethod, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.PaymentMethod, 0, len(r.rows))
	for i := range r.rows {
		pm := r.rows[i]
		out = append(out, &pm)
	}
	return out, nil
}

// StatusRepo catálogo de estados en memoria.
type StatusRepo struct {
	mu   sync.RWMutex
	rows []entity.Status
}

// NewStatusRepository construye el repositorio vacío.
func NewStatusRepository() *StatusRepo { return &StatusRepo{} }

func (r *StatusRepo) Create(_ context.Context, s *entity.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = append(r.rows, *s)
	return nil
}

func (r *StatusRepo) GetByID(_ context.Context, id string) (*entity.Status, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.rows {
		if s.ID == id {
			return &s, nil
		}
	}
	return nil, nil
}

func (r *StatusRepo) List(_ context.Context) ([]*entity.Status, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Status, 0, len(r.rows))
	for i := range r.rows {
		s := r.rows[i]
		out = append(out, &s)
	}
	return out, nil
}
