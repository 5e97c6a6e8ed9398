package ports

import (
	"context"
	"time"
)

// Locker exclusión mutua entre procesos para secuencias verificar-entonces-insertar.
// Acquire devuelve domain.ErrLocked si la clave ya está tomada; release es idempotente.
type Locker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (release func(), err error)
}

// NoopLocker no coordina nada: cada Acquire tiene éxito inmediatamente.
type NoopLocker struct{}

// Acquire siempre tiene éxito.
func (NoopLocker) Acquire(context.Context, string, time.Duration) (func(), error) {
	return func() {}, nil
}
