// Package bootstrap arma el almacén elegido por configuración (PostgreSQL,
// MongoDB o memoria) y expone sus repositorios a los binarios de cmd/.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/jhoicas/Pedidos-api/internal/application/ports"
	"github.com/jhoicas/Pedidos-api/internal/domain/repository"
	"github.com/jhoicas/Pedidos-api/internal/infrastructure/memory"
	infmongo "github.com/jhoicas/Pedidos-api/internal/infrastructure/mongo"
	"github.com/jhoicas/Pedidos-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Pedidos-api/pkg/config"
	"github.com/jhoicas/Pedidos-api/pkg/logger"
)

// Store repositorios y TxRunner de un mismo almacén.
type Store struct {
	Driver     string
	TxRunner   ports.TxRunner
	Products   repository.ProductRepository
	Parties    repository.PartyRepository
	Orders     repository.OrderRepository
	Materials  repository.MaterialTransactionRepository
	Financials repository.FinancialTransactionRepository

	// Prepare aplica migraciones (PostgreSQL) o crea índices (MongoDB) y
	// devuelve lo aplicado. En memoria no hace nada.
	Prepare func(ctx context.Context) ([]string, error)
	// Close libera conexiones.
	Close func(ctx context.Context)
}

// OpenStore conecta al almacén de cfg.Store.Driver. Si AutoMigrate está activo
// ejecuta Prepare antes de devolverlo.
func OpenStore(ctx context.Context, cfg *config.Config, log *logger.Logger) (*Store, error) {
	var (
		st  *Store
		err error
	)
	switch cfg.Store.Driver {
	case config.StorePostgres:
		st, err = openPostgres(ctx, cfg)
	case config.StoreMongo:
		st, err = openMongo(ctx, cfg)
	case config.StoreMemory:
		st = openMemory()
	default:
		return nil, fmt.Errorf("driver de almacén desconocido %q", cfg.Store.Driver)
	}
	if err != nil {
		return nil, err
	}
	st.Driver = cfg.Store.Driver
	log.Info().Str("driver", st.Driver).Msg("almacén conectado")

	if cfg.Store.AutoMigrate {
		applied, err := st.Prepare(ctx)
		if err != nil {
			st.Close(ctx)
			return nil, fmt.Errorf("preparar almacén: %w", err)
		}
		log.Info().Strs("applied", applied).Msg("esquema al día")
	}
	return st, nil
}

func openPostgres(ctx context.Context, cfg *config.Config) (*Store, error) {
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	return &Store{
		TxRunner:   postgres.NewTxRunner(pool),
		Products:   postgres.NewProductRepository(pool),
		Parties:    postgres.NewPartyRepository(pool),
		Orders:     postgres.NewOrderRepository(pool),
		Materials:  postgres.NewMaterialTransactionRepository(pool),
		Financials: postgres.NewFinancialTransactionRepository(pool),
		Prepare: func(ctx context.Context) ([]string, error) {
			return postgres.Migrate(ctx, pool)
		},
		Close: func(context.Context) { pool.Close() },
	}, nil
}

func openMongo(ctx context.Context, cfg *config.Config) (*Store, error) {
	client, db, err := infmongo.Connect(ctx, cfg.Mongo)
	if err != nil {
		return nil, err
	}
	return &Store{
		TxRunner:   infmongo.NewTxRunner(client, db),
		Products:   infmongo.NewProductRepository(db),
		Parties:    infmongo.NewPartyRepository(db),
		Orders:     infmongo.NewOrderRepository(db),
		Materials:  infmongo.NewMaterialTransactionRepository(db),
		Financials: infmongo.NewFinancialTransactionRepository(db),
		Prepare: func(ctx context.Context) ([]string, error) {
			return infmongo.EnsureIndexes(ctx, db)
		},
		Close: func(ctx context.Context) { _ = client.Disconnect(ctx) },
	}, nil
}

func openMemory() *Store {
	s := memory.NewStore()
	return &Store{
		TxRunner:   s,
		Products:   memory.NewProductRepository(s),
		Parties:    memory.NewPartyRepository(s),
		Orders:     memory.NewOrderRepository(s),
		Materials:  memory.NewMaterialTransactionRepository(s),
		Financials: memory.NewFinancialTransactionRepository(s),
		Prepare:    func(context.Context) ([]string, error) { return nil, nil },
		Close:      func(context.Context) {},
	}
}
