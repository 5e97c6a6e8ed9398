package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Vendas-api/internal/application/auth"
	"github.com/jhoicas/Vendas-api/internal/application/importer"
	"github.com/jhoicas/Vendas-api/internal/application/ports"
	"github.com/jhoicas/Vendas-api/internal/application/report"
	"github.com/jhoicas/Vendas-api/internal/application/usecase"
	"github.com/jhoicas/Vendas-api/internal/application/validation"
	"github.com/jhoicas/Vendas-api/internal/domain/repository"
	infrakafka "github.com/jhoicas/Vendas-api/internal/infrastructure/kafka"
	"github.com/jhoicas/Vendas-api/internal/infrastructure/memory"
	"github.com/jhoicas/Vendas-api/internal/infrastructure/mongodb"
	infrapdf "github.com/jhoicas/Vendas-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Vendas-api/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/Vendas-api/internal/infrastructure/redis"
	httpRouter "github.com/jhoicas/Vendas-api/internal/interfaces/http"
	"github.com/jhoicas/Vendas-api/pkg/config"
	"github.com/jhoicas/Vendas-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("db", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	loc := cfg.App.Location()

	store, err := openStore(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.DB.Driver).Msg("conexión al almacenamiento")
	}

	// Lock distribuido: Redis si está configurado; si no, sin coordinación entre instancias.
	var locker ports.Locker = ports.NoopLocker{}
	if cfg.Redis.Enabled() {
		rdb, err := infraredis.NewClient(ctx, cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer rdb.Close()
		locker = infraredis.NewLocker(rdb, log.Named("redis"))
	}

	// Eventos de ventas: Kafka si hay brokers configurados.
	var events ports.EventPublisher = ports.NoopPublisher{}
	if cfg.Kafka.Enabled() {
		pub := infrakafka.NewPublisher(cfg.Kafka)
		defer pub.Close()
		events = pub
	}

	lookupUC := usecase.NewLookupUseCase(store.PaymentMethods, store.Statuses)
	if seeded, err := lookupUC.Seed(ctx); err != nil {
		log.Fatal().Err(err).Msg("valores por defecto")
	} else if seeded.PaymentMethods+seeded.Statuses > 0 {
		log.Info().Int("payment_methods", seeded.PaymentMethods).Int("statuses", seeded.Statuses).Msg("valores por defecto creados")
	}

	authUC := auth.NewAuthUseCase(store.Users, store.Establishments, locker, cfg.Redis.LockTTL, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	establishmentUC := usecase.NewEstablishmentUseCase(store.Establishments, locker, cfg.Redis.LockTTL)
	userUC := usecase.NewUserUseCase(store.Users)
	productUC := usecase.NewProductUseCase(store.Products)
	orderUC := usecase.NewOrderUseCase(store, events, loc, log)
	imp := importer.New(store, locker, events, importer.Config{
		Dir:      cfg.Import.Dir,
		Location: loc,
		LockTTL:  cfg.Redis.LockTTL,
	}, log)
	reports := report.NewService(store, loc).WithRenderer(infrapdf.NewMarotoPDFGenerator())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.HTTP.CORSOrigins}))
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.HTTP.SwaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.HTTP.SwaggerFile,
			Path:     "docs",
			Title:    "Vendas API",
		}))
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		ServiceName:     cfg.App.Name,
		AuthUC:          authUC,
		EstablishmentUC: establishmentUC,
		UserUC:          userUC,
		ProductUC:       productUC,
		OrderUC:         orderUC,
		LookupUC:        lookupUC,
		Importer:        imp,
		Reports:         reports,
		Validator:       validation.New(loc),
		Location:        loc,
		Ping:            store.Ping,
		Log:             log,
		SignInLimit:     cfg.HTTP.SignInLimit,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	if store.Close != nil {
		if err := store.Close(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("cierre del almacenamiento")
		}
	}

	log.Info().Msg("aplicación detenida")
}

// openStore abre el almacenamiento según DB_DRIVER.
func openStore(ctx context.Context, cfg *config.Config, log *logger.Logger) (repository.Store, error) {
	switch cfg.DB.Driver {
	case config.DriverMongo:
		client, db, err := mongodb.Connect(ctx, cfg.Mongo)
		if err != nil {
			return repository.Store{}, err
		}
		return mongodb.NewStore(client, db), nil
	case config.DriverMemory:
		log.Warn().Msg("almacenamiento en memoria: los datos se pierden al reiniciar")
		return memory.NewStore(), nil
	default:
		if cfg.DB.Migrate {
			if err := postgres.Migrate(cfg.DB.ConnectionString()); err != nil {
				return repository.Store{}, fmt.Errorf("migraciones: %w", err)
			}
		}
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return repository.Store{}, err
		}
		return postgres.NewStore(pool), nil
	}
}
