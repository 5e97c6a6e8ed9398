// Package kafka publica eventos de pedidos en un tópico Kafka.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"

	"github.com/jhoicas/Vendas-api/internal/application/ports"
	"github.com/jhoicas/Vendas-api/pkg/config"
)

var _ ports.EventPublisher = (*Publisher)(nil)

// messageWriter subconjunto de *kafka.Writer (permite sustituirlo en tests).
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher implementa ports.EventPublisher. La clave del mensaje es el ID del pedido,
// así los eventos de un mismo pedido caen en la misma partición.
type Publisher struct {
	w messageWriter
}

// NewPublisher construye el writer para los brokers y tópico configurados.
func NewPublisher(cfg config.KafkaConfig) *Publisher {
	return &Publisher{w: &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}}
}

// Publish serializa y escribe los eventos en un solo lote.
func (p *Publisher) Publish(ctx context.Context, events ...ports.OrderEvent) error {
	if len(events) == 0 {
		return nil
	}
	msgs := make([]kafka.Message, 0, len(events))
	for _, ev := range events {
		body, err := json.Marshal(ev)
		if err != nil {
			return fmt.Errorf("kafka: serializar evento: %w", err)
		}
		msgs = append(msgs, kafka.Message{
			Key:     []byte(ev.OrderID),
			Value:   body,
			Headers: []kafka.Header{{Key: "type", Value: []byte(ev.Type)}},
		})
	}
	if err := p.w.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("kafka: escribir %d mensajes: %w", len(msgs), err)
	}
	return nil
}

// Close vacía y cierra el writer.
func (p *Publisher) Close() error {
	return p.w.Close()
}
