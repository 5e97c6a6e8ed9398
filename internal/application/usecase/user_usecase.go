package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Vendas-api/internal/application/dto"
	"github.com/jhoicas/Vendas-api/internal/domain"
	"github.com/jhoicas/Vendas-api/internal/domain/entity"
	"github.com/jhoicas/Vendas-api/internal/domain/repository"
)

// UserUseCase consultas y edición de vendedores y clientes de un establecimiento.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// List lista usuarios del establecimiento. Con filtros y sin resultados devuelve domain.ErrUserNotFound.
func (uc *UserUseCase) List(ctx context.Context, establishmentID string, q dto.UserQuery) (*dto.UserListResponse, error) {
	filter := repository.UserFilter{
		EstablishmentID: establishmentID,
		Name:            strings.TrimSpace(q.Name),
		Email:           strings.TrimSpace(q.Email),
	}
	if q.Customer != "" {
		b, err := strconv.ParseBool(q.Customer)
		if err != nil {
			return nil, fmt.Errorf("customer %q: %w", q.Customer, domain.ErrInvalidInput)
		}
		filter.Customer = &b
	}
	users, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 && !filter.IsEmpty() {
		return nil, domain.ErrUserNotFound
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *ToUserResponse(u))
	}
	return &dto.UserListResponse{Users: out, Size: len(out)}, nil
}

// Get obtiene un vendedor (customer=false) o cliente (customer=true) del establecimiento.
func (uc *UserUseCase) Get(ctx context.Context, establishmentID, id string, customer bool) (*dto.UserResponse, error) {
	u, err := uc.scoped(ctx, establishmentID, id, customer)
	if err != nil {
		return nil, err
	}
	return ToUserResponse(u), nil
}

// ListByKind vendedores o clientes del establecimiento; excludeID omite al propio llamante.
func (uc *UserUseCase) ListByKind(ctx context.Context, establishmentID string, customer bool, excludeID string) ([]dto.UserResponse, error) {
	users, err := uc.repo.List(ctx, repository.UserFilter{
		EstablishmentID: establishmentID,
		Customer:        &customer,
		ExcludeID:       excludeID,
	})
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *ToUserResponse(u))
	}
	return out, nil
}

// Options vendedores o clientes como pares {text: nombre, value: id}.
func (uc *UserUseCase) Options(ctx context.Context, establishmentID string, customer bool, excludeID string) ([]dto.OptionResponse, error) {
	users, err := uc.ListByKind(ctx, establishmentID, customer, excludeID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OptionResponse, 0, len(users))
	for _, u := range users {
		out = append(out, dto.OptionResponse{Text: u.Name, Value: u.ID})
	}
	return out, nil
}

// Edit actualización parcial. El password solo aplica a vendedores.
func (uc *UserUseCase) Edit(ctx context.Context, establishmentID string, customer bool, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	u, err := uc.scoped(ctx, establishmentID, in.ID, customer)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		u.Name = strings.TrimSpace(*in.Name)
	}
	if in.Email != nil {
		u.Email = strings.TrimSpace(*in.Email)
	}
	if in.Phone != nil {
		u.Phone = in.Phone.Entity()
	}
	if in.Address != nil {
		u.Address = in.Address.Entity()
	}
	if in.Password != nil {
		if customer {
			return nil, fmt.Errorf("password de cliente: %w", domain.ErrInvalidInput)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		u.PasswordHash = string(hash)
	}
	u.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return ToUserResponse(u), nil
}

// DeleteVendor única eliminación física: solo vendedores del mismo establecimiento y nunca el propio llamante.
func (uc *UserUseCase) DeleteVendor(ctx context.Context, establishmentID, callerID, id string) error {
	if id == callerID {
		return domain.ErrForbidden
	}
	if _, err := uc.scoped(ctx, establishmentID, id, false); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *UserUseCase) scoped(ctx context.Context, establishmentID, id string, customer bool) (*entity.User, error) {
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil || u.EstablishmentID != establishmentID || u.Customer != customer {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

// ToUserResponse proyecta el usuario sin password ni marcas de auditoría.
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:              u.ID,
		Name:            u.Name,
		Email:           u.Email,
		Phone:           u.Phone,
		Address:         u.Address,
		Customer:        u.Customer,
		EstablishmentID: u.EstablishmentID,
	}
}
