// Package importer carga las exportaciones CSV del punto de venta (clientes,
// productos y ventas) y las concilia con los registros existentes.
package importer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Vendas-api/internal/application/dto"
	"github.com/jhoicas/Vendas-api/internal/application/ports"
	"github.com/jhoicas/Vendas-api/internal/application/usecase"
	"github.com/jhoicas/Vendas-api/internal/domain"
	"github.com/jhoicas/Vendas-api/internal/domain/entity"
	"github.com/jhoicas/Vendas-api/internal/domain/repository"
	"github.com/jhoicas/Vendas-api/pkg/logger"
)

// Kind tipo de exportación; también es el subdirectorio y el prefijo del archivo.
type Kind string

const (
	KindSales     Kind = "Sales"
	KindProducts  Kind = "Products"
	KindCustomers Kind = "Customers"
)

// KindForCategory traduce la categoría del pedido de importación (Customer|Product|Sale).
func KindForCategory(category string) (Kind, bool) {
	switch category {
	case "Customer":
		return KindCustomers, true
	case "Product":
		return KindProducts, true
	case "Sale":
		return KindSales, true
	}
	return "", false
}

// FileName "<Kind>_<inicio>_<fin>.csv".
func FileName(kind Kind, r dto.DateRange) string {
	return fmt.Sprintf("%s_%s_%s.csv", kind, r.StartDate, r.EndDate)
}

// Config parámetros del importador.
type Config struct {
	Dir      string
	Location *time.Location
	LockTTL  time.Duration
}

// Importer corre cada importación en un único recorrido secuencial. Una fila inválida
// se registra en el log y se cuenta como omitida; el recorrido continúa.
type Importer struct {
	store  repository.Store
	locker ports.Locker
	events ports.EventPublisher
	cfg    Config
	log    *logger.Logger
}

// New construye el importador. locker y events nil equivalen a sus versiones no-op.
func New(store repository.Store, locker ports.Locker, events ports.EventPublisher, cfg Config, log *logger.Logger) *Importer {
	if locker == nil {
		locker = ports.NoopLocker{}
	}
	if events == nil {
		events = ports.NoopPublisher{}
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.LockTTL <= 0 {
		cfg.LockTTL = 5 * time.Minute
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Importer{store: store, locker: locker, events: events, cfg: cfg, log: log.Named("importer")}
}

// Locate ruta del archivo para el tipo y rango. domain.ErrImportFileNotFound si no existe.
func (im *Importer) Locate(kind Kind, r dto.DateRange) (string, error) {
	name := FileName(kind, r)
	path := filepath.Join(im.cfg.Dir, string(kind), name)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", fmt.Errorf("%s: %w", name, domain.ErrImportFileNotFound)
	}
	return path, nil
}

// Import localiza el archivo, toma el lock del establecimiento y ejecuta la conciliación del tipo.
func (im *Importer) Import(ctx context.Context, establishmentID string, kind Kind, r dto.DateRange) (*dto.ImportSummary, error) {
	path, err := im.Locate(kind, r)
	if err != nil {
		return nil, err
	}
	release, err := im.locker.Acquire(ctx, "import:"+establishmentID, im.cfg.LockTTL)
	if err != nil {
		return nil, err
	}
	defer release()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	rows, err := ReadRows(f)
	if err != nil {
		return nil, err
	}

	var sum *dto.ImportSummary
	switch kind {
	case KindCustomers:
		sum, err = im.ImportCustomers(ctx, establishmentID, rows)
	case KindProducts:
		sum, err = im.ImportProducts(ctx, establishmentID, rows)
	case KindSales:
		sum, err = im.ImportOrders(ctx, establishmentID, rows)
	default:
		return nil, fmt.Errorf("kind %q: %w", kind, domain.ErrInvalidInput)
	}
	if err != nil {
		return nil, err
	}
	sum.File = filepath.Base(path)
	im.log.Info().
		Str("file", sum.File).
		Str("establishment_id", establishmentID).
		Int("rows", sum.Rows).
		Int("inserted", sum.Inserted).
		Int("updated", sum.Updated).
		Int("skipped", sum.Skipped).
		Int("duplicates", sum.Duplicates).
		Msg("importación terminada")
	return sum, nil
}

func (im *Importer) skip(sum *dto.ImportSummary, line int, err error) {
	sum.Skipped++
	im.log.Warn().Int("row", line).Err(err).Msg("fila omitida")
}

// rowLine número de línea en el archivo (encabezado = 1).
func rowLine(i int) int { return i + 2 }

// ImportCustomers concilia clientes por email: actualiza nombre, teléfono y dirección si cambiaron.
// Un email registrado en otro establecimiento no se toca.
func (im *Importer) ImportCustomers(ctx context.Context, establishmentID string, rows []Row) (*dto.ImportSummary, error) {
	sum := &dto.ImportSummary{Rows: len(rows)}
	for i, row := range rows {
		parsed, err := ParseUser(row)
		if err != nil {
			im.skip(sum, rowLine(i), err)
			continue
		}
		existing, err := im.store.Users.GetByEmail(ctx, parsed.Email)
		if err != nil {
			return nil, err
		}
		now := time.Now()
		if existing == nil {
			parsed.ID = uuid.New().String()
			parsed.EstablishmentID = establishmentID
			parsed.CreatedAt, parsed.UpdatedAt = now, now
			if err := im.store.Users.Create(ctx, parsed); err != nil {
				if errors.Is(err, domain.ErrEmailAlreadyExists) {
					im.skip(sum, rowLine(i), err)
					continue
				}
				return nil, err
			}
			sum.Inserted++
			continue
		}
		if existing.EstablishmentID != establishmentID {
			im.skip(sum, rowLine(i), fmt.Errorf("email de outro estabelecimento: %w", domain.ErrConflict))
			continue
		}
		if existing.SameProfile(parsed) {
			sum.Unchanged++
			continue
		}
		existing.Name = parsed.Name
		existing.Phone = parsed.Phone
		existing.Address = parsed.Address
		existing.Customer = true
		existing.UpdatedAt = now
		if err := im.store.Users.Update(ctx, existing); err != nil {
			return nil, err
		}
		sum.Updated++
	}
	return sum, nil
}

// ImportProducts concilia productos por código dentro del establecimiento.
func (im *Importer) ImportProducts(ctx context.Context, establishmentID string, rows []Row) (*dto.ImportSummary, error) {
	sum := &dto.ImportSummary{Rows: len(rows)}
	for i, row := range rows {
		parsed, err := ParseProduct(row)
		if err != nil {
			im.skip(sum, rowLine(i), err)
			continue
		}
		existing, err := im.store.Products.GetByCode(ctx, establishmentID, parsed.Code)
		if err != nil {
			return nil, err
		}
		now := time.Now()
		if existing == nil {
			parsed.ID = uuid.New().String()
			parsed.EstablishmentID = establishmentID
			parsed.CreatedAt, parsed.UpdatedAt = now, now
			if err := im.store.Products.Create(ctx, parsed); err != nil {
				return nil, err
			}
			sum.Inserted++
			continue
		}
		if existing.SameData(parsed) {
			sum.Unchanged++
			continue
		}
		existing.Name = parsed.Name
		existing.Value = parsed.Value
		existing.Cost = parsed.Cost
		existing.Category = parsed.Category
		existing.UpdatedAt = now
		if err := im.store.Products.Update(ctx, existing); err != nil {
			return nil, err
		}
		sum.Updated++
	}
	return sum, nil
}

// ImportOrders resuelve cliente, método de pago y productos por nombre. Sin cliente o método
// de pago el pedido se omite; las líneas con producto desconocido se descartan.
// Un pedido con la misma cesta y el mismo instante (al segundo) que uno existente es duplicado.
func (im *Importer) ImportOrders(ctx context.Context, establishmentID string, rows []Row) (*dto.ImportSummary, error) {
	sum := &dto.ImportSummary{Rows: len(rows)}
	idx, err := im.indexes(ctx, establishmentID)
	if err != nil {
		return nil, err
	}
	status, err := usecase.DefaultStatus(ctx, im.store.Statuses)
	if err != nil {
		return nil, err
	}

	var events []ports.OrderEvent
	for i, row := range rows {
		raw, err := ParseOrder(row, im.cfg.Location)
		if err != nil {
			im.skip(sum, rowLine(i), err)
			continue
		}
		pm, ok := idx.paymentMethods.lookup(raw.PaymentMethod)
		if !ok {
			im.skip(sum, rowLine(i), fmt.Errorf("meio de pagamento %q: %w", raw.PaymentMethod, domain.ErrPaymentMethodNotFound))
			continue
		}
		customer, ok := idx.customers.lookup(raw.Customer)
		if !ok {
			im.skip(sum, rowLine(i), fmt.Errorf("cliente %q: %w", raw.Customer, domain.ErrUserNotFound))
			continue
		}
		items := make([]entity.OrderItem, 0, len(raw.Items))
		for _, it := range raw.Items {
			p, ok := idx.products.lookup(it.Name)
			if !ok {
				im.log.Warn().Int("row", rowLine(i)).Str("product", it.Name).Msg("produto não encontrado; item descartado")
				continue
			}
			items = append(items, entity.OrderItem{ProductID: p.ID, Quantity: it.Quantity})
		}

		now := time.Now()
		order := &entity.Order{
			ID:              uuid.New().String(),
			EstablishmentID: establishmentID,
			Value:           raw.Value,
			OrderDate:       raw.OrderDate,
			Products:        items,
			PaymentMethodID: pm.ID,
			UserID:          customer.ID,
			Status:          status,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		dup, err := im.isDuplicate(ctx, order)
		if err != nil {
			return nil, err
		}
		if dup {
			sum.Duplicates++
			im.log.Debug().Int("row", rowLine(i)).Msg("pedido já contabilizado")
			continue
		}
		if err := im.store.Orders.Create(ctx, order); err != nil {
			return nil, err
		}
		sum.Inserted++
		events = append(events, ports.OrderEvent{
			Type:            ports.EventOrderImported,
			OrderID:         order.ID,
			EstablishmentID: establishmentID,
			Status:          order.Status,
			Value:           order.Value.StringFixed(2),
			OccurredAt:      now,
		})
	}
	if len(events) > 0 {
		if err := im.events.Publish(ctx, events...); err != nil {
			im.log.Warn().Err(err).Int("events", len(events)).Msg("no se pudieron publicar eventos de importación")
		}
	}
	return sum, nil
}

func (im *Importer) isDuplicate(ctx context.Context, order *entity.Order) (bool, error) {
	value := order.Value
	candidates, err := im.store.Orders.List(ctx, repository.OrderFilter{
		EstablishmentID: order.EstablishmentID,
		UserID:          order.UserID,
		PaymentMethodID: order.PaymentMethodID,
		Value:           &value,
	})
	if err != nil {
		return false, err
	}
	for _, c := range candidates {
		if c.SameBasket(order) && c.SameInstant(order) {
			return true, nil
		}
	}
	return false, nil
}

type orderIndexes struct {
	paymentMethods *nameIndex[*entity.PaymentMethod]
	customers      *nameIndex[*entity.User]
	products       *nameIndex[*entity.Product]
}

// indexes carga una vez los catálogos que la importación de ventas resuelve por nombre.
func (im *Importer) indexes(ctx context.Context, establishmentID string) (*orderIndexes, error) {
	idx := &orderIndexes{
		paymentMethods: newNameIndex[*entity.PaymentMethod](),
		customers:      newNameIndex[*entity.User](),
		products:       newNameIndex[*entity.Product](),
	}
	pms, err := im.store.PaymentMethods.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, pm := range pms {
		idx.paymentMethods.add(pm.Name, pm)
	}
	customer := true
	users, err := im.store.Users.List(ctx, repository.UserFilter{EstablishmentID: establishmentID, Customer: &customer})
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		idx.customers.add(u.Name, u)
	}
	products, err := im.store.Products.List(ctx, repository.ProductFilter{EstablishmentID: establishmentID})
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		idx.products.add(p.Name, p)
	}
	return idx, nil
}
