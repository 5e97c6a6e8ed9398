package dto

import "github.com/shopspring/decimal"

// ReportRequest entrada de los endpoints /reports/*. Fechas opcionales; si vienen, se validan como rango.
type ReportRequest struct {
	FileName  string `json:"file_name"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// Range devuelve el rango de fechas del pedido de reporte.
func (r ReportRequest) Range() DateRange {
	return DateRange{StartDate: r.StartDate, EndDate: r.EndDate}
}

// NamedCount identificador con nombre y contador (producto más vendido, método preferido).
type NamedCount struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// OrdersInfoResponse indicadores del establecimiento (POST /reports/orders/info).
type OrdersInfoResponse struct {
	OrdersCount            int             `json:"ordersCount"`
	ProductsCount          int             `json:"productsCount"`
	ProductsSold           int             `json:"productsSold"`
	TotalSales             decimal.Decimal `json:"totalSales"`
	TotalCost              decimal.Decimal `json:"totalCost"`
	TotalProfit            decimal.Decimal `json:"totalProfit"`
	HighestSellingProduct  *NamedCount     `json:"highestSellingProduct,omitempty"`
	PreferredPaymentMethod *NamedCount     `json:"preferredPaymentMethod,omitempty"`
}

// OrdersFilterReportResponse indicadores + pedidos del filtro.
type OrdersFilterReportResponse struct {
	Summary OrdersInfoResponse `json:"summary"`
	Orders  []OrderResponse    `json:"orders"`
}

// PaymentMethodResponse elemento de /list/paymentMethods.
type PaymentMethodResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// StatusResponse elemento de /list/status.
type StatusResponse struct {
	ID    string `json:"id"`
	Value string `json:"value"`
}
