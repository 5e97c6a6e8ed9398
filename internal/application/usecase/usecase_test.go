package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Vendas-api/internal/application/dto"
	"github.com/jhoicas/Vendas-api/internal/application/ports"
	"github.com/jhoicas/Vendas-api/internal/application/usecase"
	"github.com/jhoicas/Vendas-api/internal/domain"
	"github.com/jhoicas/Vendas-api/internal/domain/entity"
	"github.com/jhoicas/Vendas-api/internal/domain/repository"
	"github.com/jhoicas/Vendas-api/internal/infrastructure/memory"
	"github.com/jhoicas/Vendas-api/pkg/logger"
)

// ──── Helpers de test ────

type recordingPublisher struct {
	events []ports.OrderEvent
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, events ...ports.OrderEvent) error {
	p.events = append(p.events, events...)
	return p.err
}

type fixture struct {
	store  repository.Store
	events *recordingPublisher
	orders *usecase.OrderUseCase
	pix    string
	cash   string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()
	lookups := usecase.NewLookupUseCase(store.PaymentMethods, store.Statuses)
	_, err := lookups.Seed(ctx)
	require.NoError(t, err)

	for _, e := range []*entity.Establishment{{ID: "est-1", Name: "Padaria"}, {ID: "est-2", Name: "Outra"}} {
		require.NoError(t, store.Establishments.Create(ctx, e))
	}
	users := []*entity.User{
		{ID: "vend-1", EstablishmentID: "est-1", Name: "Vendedor", Email: "v@x.com", PasswordHash: "hash"},
		{ID: "vend-2", EstablishmentID: "est-1", Name: "Outro Vendedor", Email: "v2@x.com"},
		{ID: "cli-1", EstablishmentID: "est-1", Name: "Cliente", Email: "c@x.com", Customer: true, Phone: entity.Phone{AreaCode: "21", Number: "987654321"}},
		{ID: "cli-x", EstablishmentID: "est-2", Name: "Estranho", Email: "e@x.com", Customer: true},
	}
	for _, u := range users {
		require.NoError(t, store.Users.Create(ctx, u))
	}
	products := []*entity.Product{
		{ID: "p-1", EstablishmentID: "est-1", Name: "Coxinha", Value: decimal.NewFromInt(5), Cost: decimal.NewFromInt(2), Code: "C1"},
		{ID: "p-2", EstablishmentID: "est-1", Name: "Pastel", Value: decimal.NewFromInt(7), Cost: decimal.NewFromInt(3), Code: "C2"},
		{ID: "p-x", EstablishmentID: "est-2", Name: "Alheio", Value: decimal.NewFromInt(1)},
	}
	for _, p := range products {
		require.NoError(t, store.Products.Create(ctx, p))
	}
	pix, err := store.PaymentMethods.GetByName(ctx, "Pix")
	require.NoError(t, err)
	cash, err := store.PaymentMethods.GetByName(ctx, "Dinheiro")
	require.NoError(t, err)

	events := &recordingPublisher{}
	return &fixture{
		store:  store,
		events: events,
		orders: usecase.NewOrderUseCase(store, events, time.UTC, logger.Nop()),
		pix:    pix.ID,
		cash:   cash.ID,
	}
}

func (f *fixture) addOrder(t *testing.T, in dto.AddOrderRequest) *entity.Order {
	t.Helper()
	o, err := f.orders.Add(context.Background(), "est-1", in)
	require.NoError(t, err)
	return o
}

func at(day, hour int) *time.Time {
	d := time.Date(2024, 3, day, hour, 0, 0, 0, time.UTC)
	return &d
}

// ──── Pedidos ────

func TestOrderAdd_EstadoPorDefectoYEvento(t *testing.T) {
	f := newFixture(t)

	o := f.addOrder(t, dto.AddOrderRequest{
		Value:           decimal.NewFromInt(10),
		Products:        []dto.OrderItemDTO{{ID: "p-1", Quantity: 2}},
		PaymentMethodID: f.pix,
		UserID:          "cli-1",
	})

	statuses, err := f.store.Statuses.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, statuses[0].ID, o.Status)
	require.Len(t, f.events.events, 1)
	assert.Equal(t, ports.EventOrderCreated, f.events.events[0].Type)
	assert.Equal(t, "10.00", f.events.events[0].Value)
}

func TestOrderAdd_ReferenciasInexistentes(t *testing.T) {
	f := newFixture(t)
	base := dto.AddOrderRequest{
		Value:           decimal.NewFromInt(5),
		Products:        []dto.OrderItemDTO{{ID: "p-1", Quantity: 1}},
		PaymentMethodID: f.pix,
		UserID:          "cli-1",
	}
	cases := []struct {
		name   string
		mutate func(*dto.AddOrderRequest)
		want   error
	}{
		{"cliente de otro establecimiento", func(in *dto.AddOrderRequest) { in.UserID = "cli-x" }, domain.ErrUserNotFound},
		{"producto ajeno", func(in *dto.AddOrderRequest) { in.Products = []dto.OrderItemDTO{{ID: "p-x", Quantity: 1}} }, domain.ErrProductNotFound},
		{"método de pago", func(in *dto.AddOrderRequest) { in.PaymentMethodID = "nope" }, domain.ErrPaymentMethodNotFound},
		{"vendedor que es cliente", func(in *dto.AddOrderRequest) { in.VendorID = "cli-1" }, domain.ErrUserNotFound},
		{"estado", func(in *dto.AddOrderRequest) { in.Status = "nope" }, domain.ErrStatusNotFound},
		{"valor negativo", func(in *dto.AddOrderRequest) { in.Value = decimal.NewFromInt(-1) }, domain.ErrInvalidInput},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := base
			tc.mutate(&in)
			_, err := f.orders.Add(context.Background(), "est-1", in)
			assert.ErrorIs(t, err, tc.want)
		})
	}
	assert.Empty(t, f.events.events)
}

func TestOrderAdd_FalloDePublicacionNoRevierte(t *testing.T) {
	f := newFixture(t)
	f.events.err = errors.New("broker caído")

	o := f.addOrder(t, dto.AddOrderRequest{
		Value:           decimal.NewFromInt(5),
		Products:        []dto.OrderItemDTO{{ID: "p-1", Quantity: 1}},
		PaymentMethodID: f.pix,
		UserID:          "cli-1",
	})

	stored, err := f.store.Orders.GetByID(context.Background(), o.ID)
	require.NoError(t, err)
	assert.NotNil(t, stored)
}

func TestOrderEditStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	o := f.addOrder(t, dto.AddOrderRequest{
		Value: decimal.NewFromInt(5), Products: []dto.OrderItemDTO{{ID: "p-1", Quantity: 1}},
		PaymentMethodID: f.pix, UserID: "cli-1",
	})
	statuses, _ := f.store.Statuses.List(ctx)
	delivered := statuses[3]

	updated, err := f.orders.EditStatus(ctx, "est-1", dto.EditStatusRequest{ID: o.ID, Status: delivered.ID})

	require.NoError(t, err)
	assert.Equal(t, delivered.ID, updated.Status)
	stored, _ := f.store.Orders.GetByID(ctx, o.ID)
	assert.Equal(t, delivered.ID, stored.Status)
	assert.Equal(t, ports.EventOrderStatusChanged, f.events.events[len(f.events.events)-1].Type)

	_, err = f.orders.EditStatus(ctx, "est-2", dto.EditStatusRequest{ID: o.ID, Status: delivered.ID})
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestOrderFilter_RangoYFormato(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.addOrder(t, dto.AddOrderRequest{
		Value: decimal.NewFromInt(10), OrderDate: at(1, 23), PaymentMethodID: f.pix, UserID: "cli-1",
		Products: []dto.OrderItemDTO{{ID: "p-1", Quantity: 2}},
	})
	f.addOrder(t, dto.AddOrderRequest{
		Value: decimal.NewFromInt(7), OrderDate: at(5, 10), PaymentMethodID: f.cash, UserID: "cli-1", VendorID: "vend-1",
		Products: []dto.OrderItemDTO{{ID: "p-2", Quantity: 1}},
	})

	got, err := f.orders.Filter(ctx, "est-1", dto.FilterOrdersRequest{Date: []string{"2024-03-01", "2024-03-01"}})

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Pix", got[0].PaymentMethod)
	require.NotNil(t, got[0].Client)
	assert.Equal(t, "Cliente", got[0].Client.Name)
	assert.Empty(t, got[0].Client.ID)
	assert.Nil(t, got[0].Vendor)
	require.Len(t, got[0].Products, 1)
	assert.Equal(t, "Coxinha", got[0].Products[0].Name)
	assert.Equal(t, 2, got[0].Products[0].Quantity)

	byVendor, err := f.orders.Filter(ctx, "est-1", dto.FilterOrdersRequest{Vendor: "vend-1"})
	require.NoError(t, err)
	require.Len(t, byVendor, 1)
	require.NotNil(t, byVendor[0].Vendor)
	assert.Equal(t, "Vendedor", byVendor[0].Vendor.Name)
}

func TestOrderByEstablishment(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.orders.ByEstablishment(ctx, "est-1", "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.orders.ByEstablishment(ctx, "est-1", "est-2", "")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	got, err := f.orders.ByEstablishment(ctx, "est-1", "est-1", "")
	require.NoError(t, err)
	assert.Empty(t, got)
}

// ──── Usuarios ────

func TestUserList_FiltradoSinResultados(t *testing.T) {
	f := newFixture(t)
	uc := usecase.NewUserUseCase(f.store.Users)
	ctx := context.Background()

	all, err := uc.List(ctx, "est-1", dto.UserQuery{})
	require.NoError(t, err)
	assert.Equal(t, 3, all.Size)

	customers, err := uc.List(ctx, "est-1", dto.UserQuery{Customer: "true"})
	require.NoError(t, err)
	assert.Equal(t, 1, customers.Size)

	_, err = uc.List(ctx, "est-1", dto.UserQuery{Name: "Ninguém"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserOptions_VendedoresExcluyenAlLlamante(t *testing.T) {
	f := newFixture(t)
	uc := usecase.NewUserUseCase(f.store.Users)

	opts, err := uc.Options(context.Background(), "est-1", false, "vend-1")

	require.NoError(t, err)
	assert.Equal(t, []dto.OptionResponse{{Text: "Outro Vendedor", Value: "vend-2"}}, opts)
}

func TestUserEdit_EmailDuplicadoYPasswordDeCliente(t *testing.T) {
	f := newFixture(t)
	uc := usecase.NewUserUseCase(f.store.Users)
	ctx := context.Background()
	taken := "v2@x.com"
	pass := "nova-senha"

	_, err := uc.Edit(ctx, "est-1", false, dto.UpdateUserRequest{ID: "vend-1", Email: &taken})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)

	_, err = uc.Edit(ctx, "est-1", true, dto.UpdateUserRequest{ID: "cli-1", Password: &pass})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	name := "Cliente Novo"
	out, err := uc.Edit(ctx, "est-1", true, dto.UpdateUserRequest{ID: "cli-1", Name: &name})
	require.NoError(t, err)
	assert.Equal(t, name, out.Name)
}

func TestUserDeleteVendor(t *testing.T) {
	f := newFixture(t)
	uc := usecase.NewUserUseCase(f.store.Users)
	ctx := context.Background()

	assert.ErrorIs(t, uc.DeleteVendor(ctx, "est-1", "vend-1", "vend-1"), domain.ErrForbidden)
	assert.ErrorIs(t, uc.DeleteVendor(ctx, "est-1", "vend-1", "cli-1"), domain.ErrUserNotFound)
	require.NoError(t, uc.DeleteVendor(ctx, "est-1", "vend-1", "vend-2"))

	gone, err := f.store.Users.GetByID(ctx, "vend-2")
	require.NoError(t, err)
	assert.Nil(t, gone)
}

// ──── Establecimientos, productos, catálogos ────

func TestEstablishmentSignUp_DuplicadoPorNombreYTelefono(t *testing.T) {
	store := memory.NewStore()
	uc := usecase.NewEstablishmentUseCase(store.Establishments, nil, time.Second)
	ctx := context.Background()
	in := dto.EstablishmentSignUpRequest{
		Name:  "Padaria",
		Phone: dto.PhoneDTO{AreaCode: "21", Number: "999999999"},
	}

	out, err := uc.SignUp(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, usecase.MsgEstablishmentCreated, out.Message)
	assert.NotEmpty(t, out.Token)

	_, err = uc.SignUp(ctx, in)
	assert.ErrorIs(t, err, domain.ErrEstablishmentExists)

	in.Phone.Number = "888888888"
	_, err = uc.SignUp(ctx, in)
	assert.NoError(t, err)
}

func TestProductAdd_CodigoDuplicado(t *testing.T) {
	f := newFixture(t)
	uc := usecase.NewProductUseCase(f.store.Products)
	ctx := context.Background()

	_, err := uc.Add(ctx, "est-1", dto.ProductInput{Name: "Outra Coxinha", Code: "C1"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	p, err := uc.Add(ctx, "est-2", dto.ProductInput{Name: "Coxinha", Code: "C1", Value: decimal.NewFromInt(4)})
	require.NoError(t, err)
	assert.Equal(t, "est-2", p.EstablishmentID)

	list, err := uc.List(ctx, "est-2")
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestLookupSeed_Idempotente(t *testing.T) {
	store := memory.NewStore()
	uc := usecase.NewLookupUseCase(store.PaymentMethods, store.Statuses)
	ctx := context.Background()

	first, err := uc.Seed(ctx)
	require.NoError(t, err)
	assert.Equal(t, usecase.SeedResult{PaymentMethods: 4, Statuses: 5}, first)

	second, err := uc.Seed(ctx)
	require.NoError(t, err)
	assert.Equal(t, usecase.SeedResult{}, second)

	statuses, err := uc.Statuses(ctx)
	require.NoError(t, err)
	require.Len(t, statuses, 5)
	assert.Equal(t, "Pendente", statuses[0].Value)
}
