package mongo

import (
	"context"

	"github.com/jhoicas/Pedidos-api/internal/application/ports"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readconcern"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
)

var _ ports.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción multi-documento.
// Los repos son los mismos que fuera de la tx: la sesión viaja en el ctx.
type TxRunner struct {
	client *mongo.Client
	repos  ports.TxRepos
}

// NewTxRunner construye el runner sobre la base dada.
func NewTxRunner(client *mongo.Client, db *mongo.Database) *TxRunner {
	return &TxRunner{
		client: client,
		repos: ports.TxRepos{
			Parties:    NewPartyRepository(db),
			Orders:     NewOrderRepository(db),
			Materials:  NewMaterialTransactionRepository(db),
			Financials: NewFinancialTransactionRepository(db),
		},
	}
}

// Run abre una sesión y ejecuta fn con WithTransaction (reintenta ante errores transitorios,
// por ejemplo el conflicto de escritura sobre el tercero bloqueado).
func (r *TxRunner) Run(ctx context.Context, fn func(ctx context.Context, repos ports.TxRepos) error) error {
	session, err := r.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	txOpts := options.Transaction().
		SetReadConcern(readconcern.Snapshot()).
		SetWriteConcern(writeconcern.Majority())
	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (any, error) {
		return nil, fn(sc, r.repos)
	}, txOpts)
	return err
}
