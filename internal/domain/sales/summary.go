package sales

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Vendas-api/internal/domain/entity"
)

// Summary indicadores agregados de un conjunto de pedidos.
type Summary struct {
	OrdersCount            int
	ProductsSold           int
	TotalSales             decimal.Decimal
	TotalCost              decimal.Decimal
	TotalProfit            decimal.Decimal
	FavoriteProductID      string
	FavoriteProductCount   int
	PreferredPaymentMethod string
	PreferredPaymentCount  int
}

// Summarize calcula totales de venta, costo y lucro. TotalSales usa Order.Value; costo y lucro
// salen del catálogo actual.
func Summarize(orders []*entity.Order, catalog Catalog) Summary {
	s := Summary{
		OrdersCount: len(orders),
		TotalSales:  decimal.Zero,
		TotalCost:   decimal.Zero,
		TotalProfit: decimal.Zero,
	}
	for _, o := range orders {
		s.ProductsSold += ProductCount(o.Products)
		s.TotalSales = s.TotalSales.Add(o.Value)
		s.TotalCost = s.TotalCost.Add(CostFromProducts(o.Products, catalog))
		s.TotalProfit = s.TotalProfit.Add(ProfitFromProducts(o.Products, catalog))
	}
	if id, n, ok := FavoriteProduct(orders); ok {
		s.FavoriteProductID, s.FavoriteProductCount = id, n
	}
	if id, n, ok := PreferredPaymentMethod(orders); ok {
		s.PreferredPaymentMethod, s.PreferredPaymentCount = id, n
	}
	return s
}

// GroupByUser agrupa pedidos por cliente conservando el orden de entrada.
func GroupByUser(orders []*entity.Order) map[string][]*entity.Order {
	out := make(map[string][]*entity.Order)
	for _, o := range orders {
		out[o.UserID] = append(out[o.UserID], o)
	}
	return out
}

// GroupByVendor agrupa pedidos por vendedor; los pedidos sin vendedor quedan bajo la clave "".
func GroupByVendor(orders []*entity.Order) map[string][]*entity.Order {
	out := make(map[string][]*entity.Order)
	for _, o := range orders {
		out[o.VendorID] = append(out[o.VendorID], o)
	}
	return out
}
