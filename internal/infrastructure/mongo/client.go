// Package mongo adaptador de persistencia sobre MongoDB. Requiere un replica
// set: los asientos y el saldo se escriben en transacciones multi-documento.
package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Pedidos-api/pkg/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Nombres de colecciones.
const (
	collProducts   = "products"
	collParties    = "parties"
	collOrders     = "orders"
	collMaterials  = "material_transactions"
	collFinancials = "financial_transactions"
)

// Connect abre el cliente, verifica con Ping y devuelve la base configurada.
func Connect(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, *mongo.Database, error) {
	opts := options.Client().
		ApplyURI(cfg.URL).
		SetConnectTimeout(10 * time.Second).
		SetServerSelectionTimeout(10 * time.Second)
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("conectar mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("ping mongo: %w", err)
	}
	return client, client.Database(cfg.Database), nil
}

// EnsureIndexes crea los índices que usan los listados y la unicidad del asiento por pedido.
func EnsureIndexes(ctx context.Context, db *mongo.Database) ([]string, error) {
	specs := map[string][]mongo.IndexModel{
		collParties: {
			{Keys: bsonD("name", 1)},
		},
		collProducts: {
			{Keys: bsonD("name", 1)},
		},
		collOrders: {
			{Keys: bsonD("party_id", 1, "status", 1, "priority", 1)},
			{Keys: bsonD("priority", 1, "created_at", 1)},
		},
		collMaterials: {
			{Keys: bsonD("order_id", 1), Options: options.Index().SetUnique(true)},
			{Keys: bsonD("party_id", 1, "created_at", -1)},
		},
		collFinancials: {
			{Keys: bsonD("party_id", 1, "created_at", -1)},
		},
	}
	var created []string
	for _, coll := range []string{collParties, collProducts, collOrders, collMaterials, collFinancials} {
		names, err := db.Collection(coll).Indexes().CreateMany(ctx, specs[coll])
		if err != nil {
			return created, fmt.Errorf("índices de %s: %w", coll, err)
		}
		for _, n := range names {
			created = append(created, coll+"."+n)
		}
	}
	return created, nil
}
