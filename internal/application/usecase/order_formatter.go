package usecase

import (
	"context"

	"github.com/jhoicas/Vendas-api/internal/application/dto"
	"github.com/jhoicas/Vendas-api/internal/domain/entity"
	"github.com/jhoicas/Vendas-api/internal/domain/repository"
)

// OrderFormatter une cada pedido con su cliente, vendedor, método de pago y productos.
// Los productos se traen en un solo lote y los usuarios se cachean por ID.
type OrderFormatter struct {
	users          repository.UserRepository
	products       repository.ProductRepository
	paymentMethods repository.PaymentMethodRepository
}

// NewOrderFormatter construye el formateador.
func NewOrderFormatter(users repository.UserRepository, products repository.ProductRepository, paymentMethods repository.PaymentMethodRepository) *OrderFormatter {
	return &OrderFormatter{users: users, products: products, paymentMethods: paymentMethods}
}

// Format devuelve los pedidos en el mismo orden. Líneas con productos inexistentes se omiten.
func (f *OrderFormatter) Format(ctx context.Context, orders []*entity.Order) ([]dto.OrderResponse, error) {
	out := make([]dto.OrderResponse, 0, len(orders))
	if len(orders) == 0 {
		return out, nil
	}
	catalog, err := f.catalog(ctx, orders)
	if err != nil {
		return nil, err
	}
	methods, err := f.paymentMethodNames(ctx)
	if err != nil {
		return nil, err
	}
	users := make(map[string]*entity.User)
	lookupUser := func(id string) (*entity.User, error) {
		if id == "" {
			return nil, nil
		}
		if u, ok := users[id]; ok {
			return u, nil
		}
		u, err := f.users.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		users[id] = u
		return u, nil
	}

	for _, o := range orders {
		client, err := lookupUser(o.UserID)
		if err != nil {
			return nil, err
		}
		vendor, err := lookupUser(o.VendorID)
		if err != nil {
			return nil, err
		}
		resp := dto.OrderResponse{
			ID:            o.ID,
			Value:         o.Value,
			OrderDate:     o.OrderDate,
			Status:        o.Status,
			Client:        sanitized(client),
			Vendor:        sanitized(vendor),
			PaymentMethod: methods[o.PaymentMethodID],
			Products:      make([]dto.OrderProductDTO, 0, len(o.Products)),
		}
		for _, it := range o.Products {
			p, ok := catalog[it.ProductID]
			if !ok {
				continue
			}
			resp.Products = append(resp.Products, dto.OrderProductDTO{
				ID:       p.ID,
				Name:     p.Name,
				Value:    p.Value,
				Cost:     p.Cost,
				Category: p.Category,
				Code:     p.Code,
				Quantity: it.Quantity,
			})
		}
		out = append(out, resp)
	}
	return out, nil
}

func (f *OrderFormatter) catalog(ctx context.Context, orders []*entity.Order) (map[string]*entity.Product, error) {
	seen := make(map[string]struct{})
	var ids []string
	for _, o := range orders {
		for _, it := range o.Products {
			if _, ok := seen[it.ProductID]; ok {
				continue
			}
			seen[it.ProductID] = struct{}{}
			ids = append(ids, it.ProductID)
		}
	}
	out := make(map[string]*entity.Product, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	products, err := f.products.List(ctx, repository.ProductFilter{IDs: ids})
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		out[p.ID] = p
	}
	return out, nil
}

func (f *OrderFormatter) paymentMethodNames(ctx context.Context) (map[string]string, error) {
	list, err := f.paymentMethods.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(list))
	for _, pm := range list {
		out[pm.ID] = pm.Name
	}
	return out, nil
}

// sanitized embebe al usuario sin ID, password, flag customer ni timestamps.
func sanitized(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		Name:            u.Name,
		Email:           u.Email,
		Phone:           u.Phone,
		Address:         u.Address,
		EstablishmentID: u.EstablishmentID,
	}
}
