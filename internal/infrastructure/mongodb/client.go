// Package mongodb implementa los puertos de persistencia sobre MongoDB (DB_DRIVER=mongo),
// una colección por entidad.
package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/jhoicas/Vendas-api/internal/domain/repository"
	"github.com/jhoicas/Vendas-api/pkg/config"
)

// Nombres de colecciones.
const (
	CollectionEstablishments = "establishments"
	CollectionUsers          = "users"
	CollectionProducts       = "products"
	CollectionOrders         = "orders"
	CollectionPaymentMethods = "payment_methods"
	CollectionStatus         = "status"
)

// Connect abre el cliente, verifica con Ping y crea los índices.
func Connect(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, *mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	client, err := mongo.Connect(options.Client().ApplyURI(cfg.URI).SetTimeout(cfg.Timeout))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}
	db := client.Database(cfg.Database)
	if err := ensureIndexes(ctx, db); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, err
	}
	return client, db, nil
}

func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	for coll, models := range indexModels() {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("mongo indexes %s: %w", coll, err)
		}
	}
	return nil
}

// indexModels índices por colección. El código de producto es único por
// establecimiento cuando no está vacío, igual que en Postgres.
func indexModels() map[string][]mongo.IndexModel {
	return map[string][]mongo.IndexModel{
		CollectionUsers: {
			{
				Keys: bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetUnique(true).
					SetCollation(&options.Collation{Locale: "en", Strength: 2}).
					SetPartialFilterExpression(bson.D{{Key: "email", Value: bson.D{{Key: "$gt", Value: ""}}}}),
			},
			{Keys: bson.D{{Key: "establishment_id", Value: 1}, {Key: "customer", Value: 1}}},
		},
		CollectionProducts: {
			{
				Keys: bson.D{{Key: "establishment_id", Value: 1}, {Key: "code", Value: 1}},
				Options: options.Index().SetUnique(true).
					SetPartialFilterExpression(bson.D{{Key: "code", Value: bson.D{{Key: "$gt", Value: ""}}}}),
			},
		},
		CollectionOrders: {
			{Keys: bson.D{{Key: "establishment_id", Value: 1}, {Key: "order_date", Value: 1}}},
		},
		CollectionEstablishments: {
			{Keys: bson.D{{Key: "name", Value: 1}}},
		},
	}
}

// NewStore construye todos los repositorios sobre la base.
func NewStore(client *mongo.Client, db *mongo.Database) repository.Store {
	return repository.Store{
		Establishments: NewEstablishmentRepository(db),
		Users:          NewUserRepository(db),
		Products:       NewProductRepository(db),
		Orders:         NewOrderRepository(db),
		PaymentMethods: NewPaymentMethodRepository(db),
		Statuses:       NewStatusRepository(db),
		Ping: func(ctx context.Context) error {
			return client.Ping(ctx, readpref.Primary())
		},
		Close: client.Disconnect,
	}
}
