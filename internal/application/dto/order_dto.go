package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemDTO línea de pedido en la entrada.
type OrderItemDTO struct {
	ID       string `json:"id" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,min=1"`
}

// AddOrderRequest entrada de POST /orders/add. OrderDate vacío = ahora.
type AddOrderRequest struct {
	Value           decimal.Decimal `json:"value"`
	OrderDate       *time.Time      `json:"order_date"`
	Products        []OrderItemDTO  `json:"products" validate:"required,min=1,dive"`
	PaymentMethodID string          `json:"payment_method_id" validate:"required"`
	UserID          string          `json:"user_id" validate:"required"`
	VendorID        string          `json:"vendor_id"`
	Status          string          `json:"status"`
}

// EditStatusRequest entrada de POST /orders/editStatus.
type EditStatusRequest struct {
	ID     string `json:"id" validate:"required"`
	Status string `json:"status" validate:"required"`
}

// FilterOrdersRequest entrada de POST /orders/filter. Date = [inicio, fin] en YYYY-MM-DD.
type FilterOrdersRequest struct {
	Customer string   `json:"customer"`
	Vendor   string   `json:"vendor"`
	Date     []string `json:"date" validate:"omitempty,len=2,dive,isodate"`
	Status   string   `json:"status"`
}

// OrderProductDTO producto resuelto dentro de un pedido formateado.
type OrderProductDTO struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Value    decimal.Decimal `json:"value"`
	Cost     decimal.Decimal `json:"cost"`
	Category string          `json:"category"`
	Code     string          `json:"code"`
	Quantity int             `json:"quantity"`
}

// OrderResponse pedido formateado: cliente/vendedor saneados, nombre del método de pago y productos.
type OrderResponse struct {
	ID            string            `json:"id"`
	Value         decimal.Decimal   `json:"value"`
	OrderDate     time.Time         `json:"order_date"`
	Status        string            `json:"status"`
	Client        *UserResponse     `json:"client"`
	Vendor        *UserResponse     `json:"vendor,omitempty"`
	PaymentMethod string            `json:"payment_method"`
	Products      []OrderProductDTO `json:"products"`
}

// OrderListResponse listado de pedidos formateados.
type OrderListResponse struct {
	Orders  []OrderResponse `json:"orders"`
	Message string          `json:"message,omitempty"`
}

// OrderCreatedResponse salida de POST /orders/add.
type OrderCreatedResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}
