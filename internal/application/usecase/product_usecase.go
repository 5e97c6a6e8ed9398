package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Vendas-api/internal/application/dto"
	"github.com/jhoicas/Vendas-api/internal/domain"
	"github.com/jhoicas/Vendas-api/internal/domain/entity"
	"github.com/jhoicas/Vendas-api/internal/domain/repository"
)

// MsgProductCreated respuesta de alta de producto.
const MsgProductCreated = "Produto cadastrado com sucesso!"

// ProductUseCase alta y listado de productos de un establecimiento.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Add crea un producto. El código, si viene, es único dentro del establecimiento.
func (uc *ProductUseCase) Add(ctx context.Context, establishmentID string, in dto.ProductInput) (*dto.ProductResponse, error) {
	if in.Value.IsNegative() || in.Cost.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	code := strings.TrimSpace(in.Code)
	if code != "" {
		existing, err := uc.repo.GetByCode(ctx, establishmentID, code)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
	}
	now := time.Now()
	product := &entity.Product{
		ID:              uuid.New().String(),
		EstablishmentID: establishmentID,
		Name:            strings.TrimSpace(in.Name),
		Value:           in.Value,
		Cost:            in.Cost,
		Category:        in.Category,
		Code:            code,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return ToProductResponse(product), nil
}

// List productos del establecimiento.
func (uc *ProductUseCase) List(ctx context.Context, establishmentID string) ([]dto.ProductResponse, error) {
	products, err := uc.repo.List(ctx, repository.ProductFilter{EstablishmentID: establishmentID})
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, *ToProductResponse(p))
	}
	return out, nil
}

// ToProductResponse proyecta el producto a su forma pública.
func ToProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:              p.ID,
		Name:            p.Name,
		Value:           p.Value,
		Cost:            p.Cost,
		Category:        p.Category,
		Code:            p.Code,
		EstablishmentID: p.EstablishmentID,
	}
}
