// Package report arma los reportes CSV y los indicadores JSON/PDF de un establecimiento
// uniendo pedidos, productos, usuarios y métodos de pago en memoria.
package report

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jhoicas/Vendas-api/internal/application/dto"
	"github.com/jhoicas/Vendas-api/internal/application/usecase"
	"github.com/jhoicas/Vendas-api/internal/domain/entity"
	"github.com/jhoicas/Vendas-api/internal/domain/repository"
	"github.com/jhoicas/Vendas-api/internal/domain/sales"
	"github.com/jhoicas/Vendas-api/pkg/money"
)

// Etiquetas de columnas por reporte.
var (
	OrdersHeader   = []string{"Valor", "Método de pagamento", "Cliente", "Data da venda", "Quantidade de produtos", "Produtos"}
	ProductsHeader = []string{"Nome", "Valor", "Custo", "Lucro", "Categoria", "Código", "Número de vendas"}
	UsersHeader    = []string{"Nome completo", "Endereço", "E-mail", "Celular", "Número de compras", "Número de produtos comprados", "Lucro total", "Valor total vendido"}
	ClientsHeader  = []string{"Nome completo", "Endereço", "E-mail", "Celular", "Número de compras", "Número de produtos comprados", "Valor total gasto", "Produto favorito", "Método de pagamento preferido"}
	SalesHeader    = []string{"Vendedor", "Número de vendas", "Número de produtos vendidos", "Valor total vendido", "Custo total", "Lucro total", "Produto mais vendido", "Método de pagamento preferido"}
)

// Columnas de conteo de cada reporte, escritas sin comillas.
var (
	ordersNumeric   = map[int]bool{4: true}
	productsNumeric = map[int]bool{6: true}
	usersNumeric    = map[int]bool{4: true, 5: true}
	salesNumeric    = map[int]bool{1: true, 2: true}
)

// DirectSaleLabel agrupa en el reporte de ventas los pedidos sin vendedor.
const DirectSaleLabel = "Venda direta"

// DateTimeLayout formato de "Data da venda".
const DateTimeLayout = "02/01/2006 15:04"

// Period rango inclusivo sobre la fecha del pedido. nil = todos los pedidos.
type Period struct {
	From time.Time
	To   time.Time
}

// Service reportes de un establecimiento.
type Service struct {
	store     repository.Store
	formatter *usecase.OrderFormatter
	renderer  SummaryRenderer
	loc       *time.Location
}

// NewService construye el servicio. loc es la zona usada para las fechas exhibidas.
func NewService(store repository.Store, loc *time.Location) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		store:     store,
		formatter: usecase.NewOrderFormatter(store.Users, store.Products, store.PaymentMethods),
		loc:       loc,
	}
}

// dataset datos cargados una vez por reporte.
type dataset struct {
	orders   []*entity.Order
	products []*entity.Product
	catalog  sales.Catalog
	methods  map[string]string
}

func (s *Service) load(ctx context.Context, establishmentID string, p *Period) (*dataset, error) {
	filter := repository.OrderFilter{EstablishmentID: establishmentID}
	if p != nil {
		from, to := p.From, p.To
		filter.From, filter.To = &from, &to
	}
	orders, err := s.store.Orders.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	products, err := s.store.Products.List(ctx, repository.ProductFilter{EstablishmentID: establishmentID})
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	pms, err := s.store.PaymentMethods.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list payment methods: %w", err)
	}
	methods := make(map[string]string, len(pms))
	for _, pm := range pms {
		methods[pm.ID] = pm.Name
	}
	return &dataset{orders: orders, products: products, catalog: sales.NewCatalog(products), methods: methods}, nil
}

func (d *dataset) productName(id string) string {
	if p, ok := d.catalog[id]; ok {
		return p.Name
	}
	return ""
}

// Orders un renglón por pedido, por fecha ascendente.
func (s *Service) Orders(ctx context.Context, establishmentID string, p *Period) (Table, error) {
	d, err := s.load(ctx, establishmentID, p)
	if err != nil {
		return Table{}, err
	}
	users, err := s.usersByID(ctx, establishmentID)
	if err != nil {
		return Table{}, err
	}
	t := Table{Header: OrdersHeader, Numeric: ordersNumeric}
	for _, o := range d.orders {
		client := ""
		if u, ok := users[o.UserID]; ok {
			client = fmt.Sprintf("%s (%s)", u.Name, u.Phone.String())
		}
		var items strings.Builder
		for _, it := range o.Products {
			prod, ok := d.catalog[it.ProductID]
			if !ok {
				continue
			}
			fmt.Fprintf(&items, "%s (%s X %d); ", prod.Name, money.FormatBRL(prod.Value), it.Quantity)
		}
		t.Rows = append(t.Rows, []string{
			money.FormatBRL(o.Value),
			d.methods[o.PaymentMethodID],
			client,
			o.OrderDate.In(s.loc).Format(DateTimeLayout),
			strconv.Itoa(sales.ProductCount(o.Products)),
			items.String(),
		})
	}
	return t, nil
}

// Products catálogo con lucro unitario y cantidad vendida en el período.
func (s *Service) Products(ctx context.Context, establishmentID string, p *Period) (Table, error) {
	d, err := s.load(ctx, establishmentID, p)
	if err != nil {
		return Table{}, err
	}
	t := Table{Header: ProductsHeader, Numeric: productsNumeric}
	for _, prod := range d.products {
		t.Rows = append(t.Rows, []string{
			prod.Name,
			money.FormatBRL(prod.Value),
			money.FormatBRL(prod.Cost),
			money.FormatBRL(prod.UnitProfit()),
			prod.Category,
			prod.Code,
			strconv.Itoa(sales.QuantitySold(d.orders, prod.ID)),
		})
	}
	return t, nil
}

// Users compras por usuario del establecimiento (vendedores y clientes).
func (s *Service) Users(ctx context.Context, establishmentID string, p *Period) (Table, error) {
	d, err := s.load(ctx, establishmentID, p)
	if err != nil {
		return Table{}, err
	}
	users, err := s.store.Users.List(ctx, repository.UserFilter{EstablishmentID: establishmentID})
	if err != nil {
		return Table{}, fmt.Errorf("list users: %w", err)
	}
	byUser := sales.GroupByUser(d.orders)
	t := Table{Header: UsersHeader, Numeric: usersNumeric}
	for _, u := range users {
		sum := sales.Summarize(byUser[u.ID], d.catalog)
		t.Rows = append(t.Rows, []string{
			u.Name,
			u.Address.String(),
			u.Email,
			u.Phone.String(),
			strconv.Itoa(sum.OrdersCount),
			strconv.Itoa(sum.ProductsSold),
			money.FormatBRL(sum.TotalProfit),
			money.FormatBRL(sum.TotalSales),
		})
	}
	return t, nil
}

// Clients solo clientes, con producto favorito y método de pago preferido.
func (s *Service) Clients(ctx context.Context, establishmentID string, p *Period) (Table, error) {
	d, err := s.load(ctx, establishmentID, p)
	if err != nil {
		return Table{}, err
	}
	customer := true
	users, err := s.store.Users.List(ctx, repository.UserFilter{EstablishmentID: establishmentID, Customer: &customer})
	if err != nil {
		return Table{}, fmt.Errorf("list customers: %w", err)
	}
	byUser := sales.GroupByUser(d.orders)
	t := Table{Header: ClientsHeader, Numeric: usersNumeric}
	for _, u := range users {
		sum := sales.Summarize(byUser[u.ID], d.catalog)
		t.Rows = append(t.Rows, []string{
			u.Name,
			u.Address.String(),
			u.Email,
			u.Phone.String(),
			strconv.Itoa(sum.OrdersCount),
			strconv.Itoa(sum.ProductsSold),
			money.FormatBRL(sum.TotalSales),
			d.productName(sum.FavoriteProductID),
			d.methods[sum.PreferredPaymentMethod],
		})
	}
	return t, nil
}

// Sales desempeño por vendedor; los pedidos sin vendedor vigente van en la fila DirectSaleLabel.
func (s *Service) Sales(ctx context.Context, establishmentID string, p *Period) (Table, error) {
	d, err := s.load(ctx, establishmentID, p)
	if err != nil {
		return Table{}, err
	}
	vendor := false
	vendors, err := s.store.Users.List(ctx, repository.UserFilter{EstablishmentID: establishmentID, Customer: &vendor})
	if err != nil {
		return Table{}, fmt.Errorf("list vendors: %w", err)
	}
	byVendor := sales.GroupByVendor(d.orders)
	t := Table{Header: SalesHeader, Numeric: salesNumeric}
	row := func(label string, orders []*entity.Order) []string {
		sum := sales.Summarize(orders, d.catalog)
		return []string{
			label,
			strconv.Itoa(sum.OrdersCount),
			strconv.Itoa(sum.ProductsSold),
			money.FormatBRL(sum.TotalSales),
			money.FormatBRL(sum.TotalCost),
			money.FormatBRL(sum.TotalProfit),
			d.productName(sum.FavoriteProductID),
			d.methods[sum.PreferredPaymentMethod],
		}
	}
	current := make(map[string]bool, len(vendors))
	for _, v := range vendors {
		current[v.ID] = true
		t.Rows = append(t.Rows, row(v.Name, byVendor[v.ID]))
	}
	// Pedidos sin vendedor o de vendedores ya eliminados cuentan como venta directa.
	var direct []*entity.Order
	for _, o := range d.orders {
		if !current[o.VendorID] {
			direct = append(direct, o)
		}
	}
	if len(direct) > 0 {
		t.Rows = append(t.Rows, row(DirectSaleLabel, direct))
	}
	return t, nil
}

// Info indicadores agregados del establecimiento en el período.
func (s *Service) Info(ctx context.Context, establishmentID string, p *Period) (*dto.OrdersInfoResponse, error) {
	d, err := s.load(ctx, establishmentID, p)
	if err != nil {
		return nil, err
	}
	return summaryResponse(d, sales.Summarize(d.orders, d.catalog)), nil
}

// FilterReport indicadores y pedidos formateados del filtro de pedidos.
func (s *Service) FilterReport(ctx context.Context, establishmentID string, orders []*entity.Order) (*dto.OrdersFilterReportResponse, error) {
	d, err := s.load(ctx, establishmentID, nil)
	if err != nil {
		return nil, err
	}
	d.orders = orders
	formatted, err := s.formatter.Format(ctx, orders)
	if err != nil {
		return nil, err
	}
	return &dto.OrdersFilterReportResponse{
		Summary: *summaryResponse(d, sales.Summarize(orders, d.catalog)),
		Orders:  formatted,
	}, nil
}

func summaryResponse(d *dataset, sum sales.Summary) *dto.OrdersInfoResponse {
	out := &dto.OrdersInfoResponse{
		OrdersCount:   sum.OrdersCount,
		ProductsCount: len(d.products),
		ProductsSold:  sum.ProductsSold,
		TotalSales:    sum.TotalSales,
		TotalCost:     sum.TotalCost,
		TotalProfit:   sum.TotalProfit,
	}
	if sum.FavoriteProductID != "" {
		out.HighestSellingProduct = &dto.NamedCount{
			ID:    sum.FavoriteProductID,
			Name:  d.productName(sum.FavoriteProductID),
			Count: sum.FavoriteProductCount,
		}
	}
	if sum.PreferredPaymentMethod != "" {
		out.PreferredPaymentMethod = &dto.NamedCount{
			ID:    sum.PreferredPaymentMethod,
			Name:  d.methods[sum.PreferredPaymentMethod],
			Count: sum.PreferredPaymentCount,
		}
	}
	return out
}

func (s *Service) usersByID(ctx context.Context, establishmentID string) (map[string]*entity.User, error) {
	users, err := s.store.Users.List(ctx, repository.UserFilter{EstablishmentID: establishmentID})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	out := make(map[string]*entity.User, len(users))
	for _, u := range users {
		out[u.ID] = u
	}
	return out, nil
}
