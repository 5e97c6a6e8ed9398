package sales

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Vendas-api/internal/domain/entity"
)

// Catalog resuelve productos por ID. Los productos ausentes se ignoran en los cálculos.
type Catalog map[string]*entity.Product

// NewCatalog indexa una lista de productos por ID.
func NewCatalog(products []*entity.Product) Catalog {
	c := make(Catalog, len(products))
	for _, p := range products {
		c[p.ID] = p
	}
	return c
}

// ProductCount suma de cantidades de las líneas.
func ProductCount(items []entity.OrderItem) int {
	n := 0
	for _, it := range items {
		n += it.Quantity
	}
	return n
}

// ProfitFromProducts Σ cantidad × (valor - costo) sobre los productos que el catálogo resuelve.
func ProfitFromProducts(items []entity.OrderItem, catalog Catalog) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		p, ok := catalog[it.ProductID]
		if !ok || p == nil {
			continue
		}
		total = total.Add(p.UnitProfit().Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}

// CostFromProducts Σ cantidad × costo sobre los productos que el catálogo resuelve.
func CostFromProducts(items []entity.OrderItem, catalog Catalog) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		p, ok := catalog[it.ProductID]
		if !ok || p == nil {
			continue
		}
		total = total.Add(p.Cost.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}

// QuantitySold Σ cantidad del producto en todos los pedidos.
func QuantitySold(orders []*entity.Order, productID string) int {
	n := 0
	for _, o := range orders {
		for _, it := range o.Products {
			if it.ProductID == productID {
				n += it.Quantity
			}
		}
	}
	return n
}

// tally contador que conserva el orden de primera aparición de las claves.
type tally struct {
	keys   []string
	counts map[string]int
}

func newTally() *tally {
	return &tally{counts: make(map[string]int)}
}

func (t *tally) add(key string, n int) {
	if _, ok := t.counts[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.counts[key] += n
}

// winner recorre en orden de primera aparición; con empate gana la última clave que alcanza el máximo.
func (t *tally) winner() (string, int, bool) {
	if len(t.keys) == 0 {
		return "", 0, false
	}
	best, top := "", 0
	for _, k := range t.keys {
		if c := t.counts[k]; c >= top {
			best, top = k, c
		}
	}
	return best, top, true
}

// FavoriteProduct producto con mayor cantidad acumulada en los pedidos.
func FavoriteProduct(orders []*entity.Order) (string, int, bool) {
	t := newTally()
	for _, o := range orders {
		for _, it := range o.Products {
			t.add(it.ProductID, it.Quantity)
		}
	}
	return t.winner()
}

// PreferredPaymentMethod método de pago usado en más pedidos. Mismo desempate que FavoriteProduct.
func PreferredPaymentMethod(orders []*entity.Order) (string, int, bool) {
	t := newTally()
	for _, o := range orders {
		if o.PaymentMethodID == "" {
			continue
		}
		t.add(o.PaymentMethodID, 1)
	}
	return t.winner()
}
