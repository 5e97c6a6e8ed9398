package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/Vendas-api/internal/application/dto"
	"github.com/jhoicas/Vendas-api/internal/domain/entity"
	"github.com/jhoicas/Vendas-api/internal/domain/repository"
)

// Mensajes de los catálogos.
const (
	MsgPaymentMethodsFound = "Métodos de pagamento buscados com sucesso"
	MsgStatusesFound       = "Status das vendas buscados com sucesso"
)

// Valores iniciales de los catálogos, en orden.
var (
	DefaultPaymentMethods = []string{"Dinheiro", "Cartão de Crédito", "Cartão de Débito", "Pix"}
	DefaultStatuses       = []string{"Pendente", "Em preparo", "Enviado", "Entregue", "Cancelado"}
)

// LookupUseCase catálogos de métodos de pago y estados.
type LookupUseCase struct {
	paymentMethods repository.PaymentMethodRepository
	statuses       repository.StatusRepository
}

// NewLookupUseCase construye el caso de uso.
func NewLookupUseCase(paymentMethods repository.PaymentMethodRepository, statuses repository.StatusRepository) *LookupUseCase {
	return &LookupUseCase{paymentMethods: paymentMethods, statuses: statuses}
}

// PaymentMethods lista el catálogo de métodos de pago.
func (uc *LookupUseCase) PaymentMethods(ctx context.Context) ([]dto.PaymentMethodResponse, error) {
	list, err := uc.paymentMethods.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PaymentMethodResponse, 0, len(list))
	for _, pm := range list {
		out = append(out, dto.PaymentMethodResponse{ID: pm.ID, Name: pm.Name})
	}
	return out, nil
}

// Statuses lista el catálogo de estados de pedido.
func (uc *LookupUseCase) Statuses(ctx context.Context) ([]dto.StatusResponse, error) {
	list, err := uc.statuses.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StatusResponse, 0, len(list))
	for _, s := range list {
		out = append(out, dto.StatusResponse{ID: s.ID, Value: s.Value})
	}
	return out, nil
}

// SeedResult cantidad de registros creados por Seed.
type SeedResult struct {
	PaymentMethods int
	Statuses       int
}

// Seed inserta los valores por defecto que falten. Los IDs son UUIDv7 para que el orden
// por ID respete el orden de inserción (el primer estado es el de los pedidos nuevos).
func (uc *LookupUseCase) Seed(ctx context.Context) (SeedResult, error) {
	var res SeedResult
	for _, name := range DefaultPaymentMethods {
		existing, err := uc.paymentMethods.GetByName(ctx, name)
		if err != nil {
			return res, err
		}
		if existing != nil {
			continue
		}
		id, err := uuid.NewV7()
		if err != nil {
			return res, fmt.Errorf("uuid: %w", err)
		}
		if err := uc.paymentMethods.Create(ctx, &entity.PaymentMethod{ID: id.String(), Name: name}); err != nil {
			return res, fmt.Errorf("insert payment method %q: %w", name, err)
		}
		res.PaymentMethods++
	}

	current, err := uc.statuses.List(ctx)
	if err != nil {
		return res, err
	}
	have := make(map[string]bool, len(current))
	for _, s := range current {
		have[s.Value] = true
	}
	for _, value := range DefaultStatuses {
		if have[value] {
			continue
		}
		id, err := uuid.NewV7()
		if err != nil {
			return res, fmt.Errorf("uuid: %w", err)
		}
		if err := uc.statuses.Create(ctx, &entity.Status{ID: id.String(), Value: value}); err != nil {
			return res, fmt.Errorf("insert status %q: %w", value, err)
		}
		res.Statuses++
	}
	return res, nil
}
