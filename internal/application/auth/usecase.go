package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Vendas-api/internal/application/dto"
	"github.com/jhoicas/Vendas-api/internal/application/ports"
	"github.com/jhoicas/Vendas-api/internal/domain"
	"github.com/jhoicas/Vendas-api/internal/domain/entity"
	"github.com/jhoicas/Vendas-api/internal/domain/repository"
	"github.com/jhoicas/Vendas-api/pkg/jwt"
)

// Errores de autenticación con el mensaje que ve el cliente.
var (
	ErrAlreadyRegistered    = errors.New("Usuário já está cadastrado! Tente realizar o login")
	ErrUnknownEstablishment = errors.New("Estabelecimento não encontrado! Certifique-se de que está cadastrado")
	ErrCollaboratorNotFound = errors.New("Colaborador não está cadastrado.")
	ErrInvalidCredentials   = errors.New("Credenciais inválidas")
	ErrNotAuthenticated     = errors.New("Usuário não está autenticado")
)

// Mensajes de éxito.
const (
	MsgSignUpOK = "Usuário cadastrado com sucesso!"
	MsgSignInOK = "Login realizado com sucesso!"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// Principal identidad autenticada de una petición.
type Principal struct {
	UserID          string
	EstablishmentID string
	Customer        bool
	Name            string
}

// AuthUseCase casos de uso de autenticación: registro, login y verificación de token.
type AuthUseCase struct {
	userRepo          repository.UserRepository
	establishmentRepo repository.EstablishmentRepository
	locker            ports.Locker
	lockTTL           time.Duration
	jwtCfg            JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth. locker nil equivale a NoopLocker.
func NewAuthUseCase(userRepo repository.UserRepository, establishmentRepo repository.EstablishmentRepository, locker ports.Locker, lockTTL time.Duration, jwtCfg JWTConfig) *AuthUseCase {
	if locker == nil {
		locker = ports.NoopLocker{}
	}
	return &AuthUseCase{userRepo: userRepo, establishmentRepo: establishmentRepo, locker: locker, lockTTL: lockTTL, jwtCfg: jwtCfg}
}

// SignUp registra un colaborador en un establecimiento existente (buscado por nombre).
// La secuencia verificar-entonces-insertar corre bajo el lock del email.
func (uc *AuthUseCase) SignUp(ctx context.Context, in dto.SignUpRequest) (*dto.AuthResponse, error) {
	email := strings.TrimSpace(in.Email)
	release, err := uc.locker.Acquire(ctx, "signup:user:"+strings.ToLower(email), uc.lockTTL)
	if err != nil {
		return nil, err
	}
	defer release()

	existing, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyRegistered
	}
	est, err := uc.establishmentRepo.GetByName(ctx, in.Establishment)
	if err != nil {
		return nil, err
	}
	if est == nil {
		return nil, ErrUnknownEstablishment
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	now := time.Now()
	user := &entity.User{
		ID:              uuid.New().String(),
		EstablishmentID: est.ID,
		Name:            in.Name,
		Email:           email,
		PasswordHash:    string(hash),
		Phone:           in.Phone.Entity(),
		Address:         in.Address.Entity(),
		Customer:        false,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			return nil, ErrAlreadyRegistered
		}
		return nil, err
	}
	return uc.authResponse(MsgSignUpOK, user, est)
}

// SignIn verifica email/password y emite el token firmado.
func (uc *AuthUseCase) SignIn(ctx context.Context, in dto.SignInRequest) (*dto.AuthResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, strings.TrimSpace(in.Email))
	if err != nil {
		return nil, err
	}
	if user == nil || user.EstablishmentID == "" || user.PasswordHash == "" {
		return nil, ErrCollaboratorNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	est, err := uc.establishmentRepo.GetByID(ctx, user.EstablishmentID)
	if err != nil {
		return nil, err
	}
	if est == nil {
		return nil, ErrCollaboratorNotFound
	}
	return uc.authResponse(MsgSignInOK, user, est)
}

// Authenticate valida firma y expiración del token y que el usuario siga existiendo.
func (uc *AuthUseCase) Authenticate(ctx context.Context, token string) (*Principal, error) {
	if token == "" {
		return nil, ErrNotAuthenticated
	}
	claims, err := jwt.Parse(uc.jwtCfg.Secret, token)
	if err != nil {
		return nil, ErrNotAuthenticated
	}
	user, err := uc.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotAuthenticated
	}
	return &Principal{
		UserID:          user.ID,
		EstablishmentID: user.EstablishmentID,
		Customer:        user.Customer,
		Name:            user.Name,
	}, nil
}

func (uc *AuthUseCase) authResponse(msg string, user *entity.User, est *entity.Establishment) (*dto.AuthResponse, error) {
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.EstablishmentID, user.Customer, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}
	return &dto.AuthResponse{
		Message:       msg,
		Token:         token,
		ID:            user.ID,
		Name:          user.Name,
		Establishment: ToEstablishmentResponse(est),
	}, nil
}

// ToEstablishmentResponse proyecta el establecimiento a su forma pública.
func ToEstablishmentResponse(e *entity.Establishment) *dto.EstablishmentResponse {
	if e == nil {
		return nil
	}
	return &dto.EstablishmentResponse{ID: e.ID, Name: e.Name, Address: e.Address, Phone: e.Phone}
}
