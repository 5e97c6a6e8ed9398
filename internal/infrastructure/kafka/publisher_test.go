package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Vendas-api/internal/application/ports"
)

type fakeWriter struct {
	msgs []kafka.Message
	err  error
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, msgs...)
	return nil
}

func (f *fakeWriter) Close() error { return nil }

func TestPublish_ClaveEsIDDelPedido(t *testing.T) {
	w := &fakeWriter{}
	p := &Publisher{w: w}
	ev := ports.OrderEvent{
		Type:            ports.EventOrderCreated,
		OrderID:         "o-1",
		EstablishmentID: "e-1",
		OccurredAt:      time.Date(2023, 5, 1, 10, 0, 0, 0, time.UTC),
	}

	require.NoError(t, p.Publish(context.Background(), ev))

	require.Len(t, w.msgs, 1)
	assert.Equal(t, "o-1", string(w.msgs[0].Key))
	assert.Equal(t, "type", w.msgs[0].Headers[0].Key)
	assert.Equal(t, ports.EventOrderCreated, string(w.msgs[0].Headers[0].Value))

	var got ports.OrderEvent
	require.NoError(t, json.Unmarshal(w.msgs[0].Value, &got))
	assert.Equal(t, ev, got)
}

func TestPublish_SinEventosNoEscribe(t *testing.T) {
	w := &fakeWriter{err: errors.New("no debería llamarse")}
	p := &Publisher{w: w}
	assert.NoError(t, p.Publish(context.Background()))
}

func TestPublish_PropagaError(t *testing.T) {
	p := &Publisher{w: &fakeWriter{err: errors.New("broker caído")}}
	err := p.Publish(context.Background(), ports.OrderEvent{OrderID: "o-1"})
	assert.ErrorContains(t, err, "broker caído")
}
