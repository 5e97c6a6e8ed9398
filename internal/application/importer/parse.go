package importer

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Vendas-api/internal/domain/entity"
	"github.com/jhoicas/Vendas-api/pkg/money"
)

// Columnas de las exportaciones del punto de venta.
const (
	ColName          = "Nome"
	ColEmail         = "Email"
	ColPhone         = "Telefone"
	ColAddress       = "Endereço"
	ColComplement    = "Complemento"
	ColSalePrice     = "Preço de Venda"
	ColCostPrice     = "Preço de Custo"
	ColCategory      = "Categoria"
	ColCode          = "Código"
	ColPaymentMethod = "Meios de Pagamento"
	ColCustomer      = "Cliente"
	ColItems         = "Descri. itens"
	ColTotal         = "Total"
	ColDateTime      = "Data/Hora"
)

// ErrInvalidRecord el registro no tiene el formato esperado y se descarta.
var ErrInvalidRecord = errors.New("registro com formato inválido")

var (
	phoneRe   = regexp.MustCompile(`^[0-9]{13}$`)
	addressRe = regexp.MustCompile(`^([^,]+?),\s*([0-9]+),\s*([^,]+?),\s*([^,]+?)\s+-\s+([A-Za-z]{2}),\s*([0-9]{5})-?([0-9]{3})(?:,\s*.*)?$`)
	itemRe    = regexp.MustCompile(`^([0-9]+)\s*x\s*(.+)$`)
)

// dateTimeLayouts formatos aceptados en "Data/Hora".
var dateTimeLayouts = []string{"02/01/2006 15:04", "02/01/2006 15:04:05"}

// ParsePhone "5521987654321" (país + DDD + número, 13 dígitos) → {21, 987654321}.
func ParsePhone(s string) (entity.Phone, error) {
	s = strings.TrimSpace(s)
	if !phoneRe.MatchString(s) {
		return entity.Phone{}, fmt.Errorf("telefone %q: %w", s, ErrInvalidRecord)
	}
	return entity.Phone{AreaCode: s[2:4], Number: s[4:]}, nil
}

// ParseAddress "rua, número, bairro, cidade - UF, 00000-000[, país]".
func ParseAddress(s, complement string) (entity.Address, error) {
	m := addressRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return entity.Address{}, fmt.Errorf("endereço %q: %w", s, ErrInvalidRecord)
	}
	number, err := strconv.Atoi(m[2])
	if err != nil {
		return entity.Address{}, fmt.Errorf("número %q: %w", m[2], ErrInvalidRecord)
	}
	return entity.Address{
		Street:     strings.TrimSpace(m[1]),
		Number:     number,
		District:   strings.TrimSpace(m[3]),
		City:       strings.TrimSpace(m[4]),
		State:      strings.ToUpper(m[5]),
		ZipCode:    m[6] + m[7],
		Complement: strings.TrimSpace(complement),
	}, nil
}

// ParseUser cliente a partir de la exportación de clientes. Teléfono o dirección inválidos descartan el registro.
func ParseUser(row Row) (*entity.User, error) {
	phone, err := ParsePhone(row.Get(ColPhone))
	if err != nil {
		return nil, err
	}
	address, err := ParseAddress(row.Get(ColAddress), row.Get(ColComplement))
	if err != nil {
		return nil, err
	}
	email := row.Get(ColEmail)
	if email == "" {
		return nil, fmt.Errorf("email vazio: %w", ErrInvalidRecord)
	}
	return &entity.User{
		Name:     row.Get(ColName),
		Email:    email,
		Phone:    phone,
		Address:  address,
		Customer: true,
	}, nil
}

// ParseProduct producto a partir de la exportación de productos.
func ParseProduct(row Row) (*entity.Product, error) {
	code := row.Get(ColCode)
	if code == "" {
		return nil, fmt.Errorf("código vazio: %w", ErrInvalidRecord)
	}
	value, err := money.ParseBRL(row.Get(ColSalePrice))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", err, ErrInvalidRecord)
	}
	cost := decimal.Zero
	if raw := row.Get(ColCostPrice); raw != "" {
		if cost, err = money.ParseBRL(raw); err != nil {
			return nil, fmt.Errorf("%s: %w", err, ErrInvalidRecord)
		}
	}
	return &entity.Product{
		Name:     row.Get(ColName),
		Value:    value.Round(2),
		Cost:     cost.Round(2),
		Category: row.Get(ColCategory),
		Code:     code,
	}, nil
}

// RawItem línea de pedido antes de resolver el producto por nombre.
type RawItem struct {
	Name     string
	Quantity int
}

// RawOrder pedido de la exportación de ventas con referencias por nombre.
type RawOrder struct {
	Value         decimal.Decimal
	PaymentMethod string
	Customer      string
	Items         []RawItem
	OrderDate     time.Time
}

// ParseItems "2x Coxinha, 1x Pastel" → [{Coxinha 2} {Pastel 1}]. Fragmentos sin formato se ignoran.
func ParseItems(s string) []RawItem {
	var out []RawItem
	for _, part := range strings.Split(s, ",") {
		m := itemRe.FindStringSubmatch(strings.TrimSpace(part))
		if m == nil {
			continue
		}
		qty, err := strconv.Atoi(m[1])
		if err != nil || qty <= 0 {
			continue
		}
		out = append(out, RawItem{Name: strings.TrimSpace(m[2]), Quantity: qty})
	}
	return out
}

// ParseDateTime "dd/mm/yyyy hh:mm" en la zona horaria del establecimiento.
func ParseDateTime(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("data %q: %w", s, ErrInvalidRecord)
}

// ParseOrder pedido sin resolver. Cliente y método de pago son obligatorios.
func ParseOrder(row Row, loc *time.Location) (*RawOrder, error) {
	pm := row.Get(ColPaymentMethod)
	customer := row.Get(ColCustomer)
	if pm == "" || customer == "" {
		return nil, fmt.Errorf("cliente ou meio de pagamento vazio: %w", ErrInvalidRecord)
	}
	value, err := money.ParseBRL(row.Get(ColTotal))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", err, ErrInvalidRecord)
	}
	date, err := ParseDateTime(row.Get(ColDateTime), loc)
	if err != nil {
		return nil, err
	}
	// Centavos: el valor guardado y el filtro de duplicados usan la misma precisión.
	return &RawOrder{
		Value:         value.Round(2),
		PaymentMethod: pm,
		Customer:      customer,
		Items:         ParseItems(row.Get(ColItems)),
		OrderDate:     date,
	}, nil
}
