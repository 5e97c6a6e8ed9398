package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Vendas-api/internal/application/dto"
	"github.com/jhoicas/Vendas-api/internal/application/ports"
	"github.com/jhoicas/Vendas-api/internal/domain"
	"github.com/jhoicas/Vendas-api/internal/domain/entity"
	"github.com/jhoicas/Vendas-api/internal/domain/repository"
)

// MsgEstablishmentCreated respuesta de alta de establecimiento.
const MsgEstablishmentCreated = "Estabelecimento cadastrado com sucesso!"

// EstablishmentUseCase alta de establecimientos.
type EstablishmentUseCase struct {
	repo    repository.EstablishmentRepository
	locker  ports.Locker
	lockTTL time.Duration
}

// NewEstablishmentUseCase construye el caso de uso. locker nil equivale a NoopLocker.
func NewEstablishmentUseCase(repo repository.EstablishmentRepository, locker ports.Locker, lockTTL time.Duration) *EstablishmentUseCase {
	if locker == nil {
		locker = ports.NoopLocker{}
	}
	return &EstablishmentUseCase{repo: repo, locker: locker, lockTTL: lockTTL}
}

// SignUp crea el establecimiento si el par (nombre, teléfono) no existe.
// Devuelve domain.ErrEstablishmentExists en caso contrario.
func (uc *EstablishmentUseCase) SignUp(ctx context.Context, in dto.EstablishmentSignUpRequest) (*dto.EstablishmentSignUpResponse, error) {
	phone := in.Phone.Entity()
	key := "signup:establishment:" + strings.ToLower(strings.TrimSpace(in.Name)) + ":" + phone.String()
	release, err := uc.locker.Acquire(ctx, key, uc.lockTTL)
	if err != nil {
		return nil, err
	}
	defer release()

	existing, err := uc.repo.GetByNameAndPhone(ctx, in.Name, phone)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEstablishmentExists
	}
	now := time.Now()
	est := &entity.Establishment{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Address:   in.Address.Entity(),
		Phone:     phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, est); err != nil {
		return nil, err
	}
	return &dto.EstablishmentSignUpResponse{Message: MsgEstablishmentCreated, Token: est.ID}, nil
}
