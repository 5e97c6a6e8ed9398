// seed inserta los métodos de pago y estados de venta por defecto que falten.
//
// Uso: go run ./cmd/seed
// Usa la misma configuración que la API (DB_DRIVER, DATABASE_URL, MONGODB_URI, ...).
// Es idempotente: los valores existentes no se duplican.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jhoicas/Vendas-api/internal/application/usecase"
	"github.com/jhoicas/Vendas-api/internal/domain/repository"
	"github.com/jhoicas/Vendas-api/internal/infrastructure/mongodb"
	"github.com/jhoicas/Vendas-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Vendas-api/pkg/config"
	"github.com/jhoicas/Vendas-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel}).Named("seed")

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	store, err := open(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.DB.Driver).Msg("conexión al almacenamiento")
	}
	defer store.Close(ctx)

	res, err := usecase.NewLookupUseCase(store.PaymentMethods, store.Statuses).Seed(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("seed")
	}
	log.Info().
		Int("payment_methods", res.PaymentMethods).
		Int("statuses", res.Statuses).
		Msg("seed finalizado")
}

func open(ctx context.Context, cfg *config.Config) (repository.Store, error) {
	switch cfg.DB.Driver {
	case config.DriverMongo:
		client, db, err := mongodb.Connect(ctx, cfg.Mongo)
		if err != nil {
			return repository.Store{}, err
		}
		return mongodb.NewStore(client, db), nil
	case config.DriverPostgres:
		if err := postgres.Migrate(cfg.DB.ConnectionString()); err != nil {
			return repository.Store{}, fmt.Errorf("migraciones: %w", err)
		}
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return repository.Store{}, err
		}
		return postgres.NewStore(pool), nil
	default:
		return repository.Store{}, fmt.Errorf("seed no aplica al driver %q", cfg.DB.Driver)
	}
}
