// Package redis implementa ports.Locker con SET NX + liberación verificada por token.
package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/jhoicas/Vendas-api/internal/application/ports"
	"github.com/jhoicas/Vendas-api/internal/domain"
	"github.com/jhoicas/Vendas-api/pkg/config"
	"github.com/jhoicas/Vendas-api/pkg/logger"
)

var _ ports.Locker = (*Locker)(nil)

const keyPrefix = "vendas:lock:"

// releaseScript borra la clave solo si el token coincide (no libera un lock ajeno tras expirar).
var releaseScript = goredis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0`)

// Locker lock distribuido sobre Redis.
type Locker struct {
	rdb *goredis.Client
	log *logger.Logger
}

// NewClient abre el cliente y verifica con Ping.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*goredis.Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return rdb, nil
}

// NewLocker construye el locker sobre un cliente ya abierto.
func NewLocker(rdb *goredis.Client, log *logger.Logger) *Locker {
	return &Locker{rdb: rdb, log: log}
}

// Acquire toma la clave por ttl. Devuelve domain.ErrLocked si otro proceso la tiene.
func (l *Locker) Acquire(ctx context.Context, key string, ttl time.Duration) (func(), error) {
	token := uuid.NewString()
	ok, err := l.rdb.SetNX(ctx, keyPrefix+key, token, ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("redis setnx: %w", err)
	}
	if !ok {
		return nil, domain.ErrLocked
	}
	released := false
	return func() {
		if released {
			return
		}
		released = true
		if err := releaseScript.Run(context.Background(), l.rdb, []string{keyPrefix + key}, token).Err(); err != nil {
			l.log.Warn().Err(err).Str("key", key).Msg("liberar lock")
		}
	}, nil
}
