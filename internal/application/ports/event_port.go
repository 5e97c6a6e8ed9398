package ports

import (
	"context"
	"time"
)

// Tipos de evento de pedido.
const (
	EventOrderCreated       = "order.created"
	EventOrderStatusChanged = "order.status_changed"
	EventOrderImported      = "order.imported"
)

// OrderEvent notificación emitida tras persistir un cambio de pedido.
type OrderEvent struct {
	Type            string    `json:"type"`
	OrderID         string    `json:"order_id"`
	EstablishmentID string    `json:"establishment_id"`
	Status          string    `json:"status,omitempty"`
	Value           string    `json:"value,omitempty"`
	OccurredAt      time.Time `json:"occurred_at"`
}

// EventPublisher puerto de salida para eventos de pedidos.
// Un fallo de publicación nunca debe revertir la operación que lo originó.
type EventPublisher interface {
	Publish(ctx context.Context, events ...OrderEvent) error
}

// NoopPublisher descarta los eventos.
type NoopPublisher struct{}

// Publish no hace nada.
func (NoopPublisher) Publish(context.Context, ...OrderEvent) error { return nil }
