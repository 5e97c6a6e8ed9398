package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Vendas-api/internal/application/dto"
	"github.com/jhoicas/Vendas-api/internal/application/ports"
	"github.com/jhoicas/Vendas-api/internal/application/validation"
	"github.com/jhoicas/Vendas-api/internal/domain"
	"github.com/jhoicas/Vendas-api/internal/domain/entity"
	"github.com/jhoicas/Vendas-api/internal/domain/repository"
	"github.com/jhoicas/Vendas-api/pkg/logger"
)

// Mensajes de pedidos.
const (
	MsgOrderCreated       = "Venda cadastrada com sucesso"
	MsgOrderStatusChanged = "Status alterado com sucesso"
	MsgOrdersFound        = "Vendas encontradas"
)

// ErrEstablishmentRequired la consulta por establecimiento exige el parámetro.
var ErrEstablishmentRequired = fmt.Errorf("Estabelecimento deve ser informado na consulta de vendas: %w", domain.ErrInvalidInput)

// OrderUseCase alta, cambio de estado y consultas de pedidos.
type OrderUseCase struct {
	orders         repository.OrderRepository
	users          repository.UserRepository
	products       repository.ProductRepository
	paymentMethods repository.PaymentMethodRepository
	statuses       repository.StatusRepository
	formatter      *OrderFormatter
	events         ports.EventPublisher
	loc            *time.Location
	log            *logger.Logger
}

// NewOrderUseCase construye el caso de uso. events nil equivale a NoopPublisher.
func NewOrderUseCase(store repository.Store, events ports.EventPublisher, loc *time.Location, log *logger.Logger) *OrderUseCase {
	if events == nil {
		events = ports.NoopPublisher{}
	}
	if loc == nil {
		loc = time.UTC
	}
	if log == nil {
		log = logger.Nop()
	}
	return &OrderUseCase{
		orders:         store.Orders,
		users:          store.Users,
		products:       store.Products,
		paymentMethods: store.PaymentMethods,
		statuses:       store.Statuses,
		formatter:      NewOrderFormatter(store.Users, store.Products, store.PaymentMethods),
		events:         events,
		loc:            loc,
		log:            log.Named("orders"),
	}
}

// Add registra un pedido del establecimiento validando cliente, productos, método de pago y vendedor.
func (uc *OrderUseCase) Add(ctx context.Context, establishmentID string, in dto.AddOrderRequest) (*entity.Order, error) {
	if in.Value.IsNegative() {
		return nil, fmt.Errorf("value negativo: %w", domain.ErrInvalidInput)
	}
	if _, err := uc.member(ctx, establishmentID, in.UserID); err != nil {
		return nil, err
	}
	if in.VendorID != "" {
		vendor, err := uc.member(ctx, establishmentID, in.VendorID)
		if err != nil {
			return nil, err
		}
		if !vendor.IsVendor() {
			return nil, domain.ErrUserNotFound
		}
	}
	pm, err := uc.paymentMethods.GetByID(ctx, in.PaymentMethodID)
	if err != nil {
		return nil, err
	}
	if pm == nil {
		return nil, domain.ErrPaymentMethodNotFound
	}
	items := make([]entity.OrderItem, 0, len(in.Products))
	for _, it := range in.Products {
		p, err := uc.products.GetByID(ctx, it.ID)
		if err != nil {
			return nil, err
		}
		if p == nil || p.EstablishmentID != establishmentID {
			return nil, domain.ErrProductNotFound
		}
		items = append(items, entity.OrderItem{ProductID: p.ID, Quantity: it.Quantity})
	}
	status, err := uc.resolveStatus(ctx, in.Status)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	orderDate := now
	if in.OrderDate != nil && !in.OrderDate.IsZero() {
		orderDate = *in.OrderDate
	}
	order := &entity.Order{
		ID:              uuid.New().String(),
		EstablishmentID: establishmentID,
		Value:           in.Value,
		OrderDate:       orderDate,
		Products:        items,
		PaymentMethodID: pm.ID,
		UserID:          in.UserID,
		VendorID:        in.VendorID,
		Status:          status,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.orders.Create(ctx, order); err != nil {
		return nil, err
	}
	uc.publish(ctx, ports.OrderEvent{
		Type:            ports.EventOrderCreated,
		OrderID:         order.ID,
		EstablishmentID: establishmentID,
		Status:          order.Status,
		Value:           order.Value.StringFixed(2),
		OccurredAt:      now,
	})
	return order, nil
}

// EditStatus cambia el estado de un pedido del establecimiento; es la única mutación permitida.
func (uc *OrderUseCase) EditStatus(ctx context.Context, establishmentID string, in dto.EditStatusRequest) (*entity.Order, error) {
	order, err := uc.orders.GetByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	if order == nil || order.EstablishmentID != establishmentID {
		return nil, domain.ErrOrderNotFound
	}
	status, err := uc.statuses.GetByID(ctx, in.Status)
	if err != nil {
		return nil, err
	}
	if status == nil {
		return nil, domain.ErrStatusNotFound
	}
	if err := uc.orders.UpdateStatus(ctx, order.ID, status.ID); err != nil {
		return nil, err
	}
	order.Status = status.ID
	uc.publish(ctx, ports.OrderEvent{
		Type:            ports.EventOrderStatusChanged,
		OrderID:         order.ID,
		EstablishmentID: establishmentID,
		Status:          status.ID,
		OccurredAt:      time.Now(),
	})
	return order, nil
}

// FilterOrders criterios vacíos no filtran; la fecha cubre [inicio 00:00:00, fin 23:59:59].
func (uc *OrderUseCase) FilterOrders(ctx context.Context, establishmentID string, in dto.FilterOrdersRequest) ([]*entity.Order, error) {
	filter := repository.OrderFilter{
		EstablishmentID: establishmentID,
		UserID:          in.Customer,
		VendorID:        in.Vendor,
		Status:          in.Status,
	}
	if len(in.Date) == 2 {
		from, to, err := validation.ParseRange(dto.DateRange{StartDate: in.Date[0], EndDate: in.Date[1]}, uc.loc)
		if err != nil {
			return nil, fmt.Errorf("date: %w", domain.ErrInvalidInput)
		}
		filter.From, filter.To = &from, &to
	}
	return uc.orders.List(ctx, filter)
}

// Filter igual que FilterOrders pero con los pedidos formateados.
func (uc *OrderUseCase) Filter(ctx context.Context, establishmentID string, in dto.FilterOrdersRequest) ([]dto.OrderResponse, error) {
	orders, err := uc.FilterOrders(ctx, establishmentID, in)
	if err != nil {
		return nil, err
	}
	return uc.formatter.Format(ctx, orders)
}

// ByEstablishment pedidos formateados del establecimiento pedido, opcionalmente de un cliente.
// El establecimiento debe informarse y coincidir con el del llamante.
func (uc *OrderUseCase) ByEstablishment(ctx context.Context, callerEstablishmentID, establishmentID, customerID string) ([]dto.OrderResponse, error) {
	if establishmentID == "" {
		return nil, ErrEstablishmentRequired
	}
	if establishmentID != callerEstablishmentID {
		return nil, domain.ErrForbidden
	}
	orders, err := uc.orders.List(ctx, repository.OrderFilter{EstablishmentID: establishmentID, UserID: customerID})
	if err != nil {
		return nil, err
	}
	return uc.formatter.Format(ctx, orders)
}

// resolveStatus valida el estado informado o toma el primero del catálogo.
func (uc *OrderUseCase) resolveStatus(ctx context.Context, id string) (string, error) {
	if id != "" {
		s, err := uc.statuses.GetByID(ctx, id)
		if err != nil {
			return "", err
		}
		if s == nil {
			return "", domain.ErrStatusNotFound
		}
		return s.ID, nil
	}
	return DefaultStatus(ctx, uc.statuses)
}

func (uc *OrderUseCase) member(ctx context.Context, establishmentID, userID string) (*entity.User, error) {
	u, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil || u.EstablishmentID != establishmentID {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (uc *OrderUseCase) publish(ctx context.Context, events ...ports.OrderEvent) {
	if err := uc.events.Publish(ctx, events...); err != nil {
		uc.log.Warn().Err(err).Int("events", len(events)).Msg("no se pudo publicar evento de pedido")
	}
}

// DefaultStatus primer estado del catálogo; "" si el catálogo está vacío.
func DefaultStatus(ctx context.Context, statuses repository.StatusRepository) (string, error) {
	list, err := statuses.List(ctx)
	if err != nil {
		return "", err
	}
	if len(list) == 0 {
		return "", nil
	}
	return list[0].ID, nil
}
