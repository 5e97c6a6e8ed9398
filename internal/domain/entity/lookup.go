package entity

// PaymentMethod catálogo de métodos de pago (ej. "Pix", "Dinheiro").
type PaymentMethod struct {
	ID   string
	Name string
}

// Status catálogo de estados de pedido (ej. "Pendente", "Entregue").
type Status struct {
	ID    string
	Value string
}
