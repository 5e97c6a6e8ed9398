package dto

import "github.com/shopspring/decimal"

// ProductInput datos de un producto nuevo.
type ProductInput struct {
	Name     string          `json:"name" validate:"required"`
	Value    decimal.Decimal `json:"value"`
	Cost     decimal.Decimal `json:"cost"`
	Category string          `json:"category"`
	Code     string          `json:"code"`
}

// AddProductRequest entrada de POST /products/addProduct ({"product": {...}}).
type AddProductRequest struct {
	Product ProductInput `json:"product"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Value           decimal.Decimal `json:"value"`
	Cost            decimal.Decimal `json:"cost"`
	Category        string          `json:"category"`
	Code            string          `json:"code"`
	EstablishmentID string          `json:"establishment_id"`
}

// ProductListResponse listado de productos.
type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
	Message  string            `json:"message"`
}
