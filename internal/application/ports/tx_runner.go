package ports

import (
	"context"

	"github.com/jhoicas/Pedidos-api/internal/domain/repository"
)

// TxRepos repositorios atados a una misma transacción.
type TxRepos struct {
	Parties    repository.PartyRepository
	Orders     repository.OrderRepository
	Materials  repository.MaterialTransactionRepository
	Financials repository.FinancialTransactionRepository
}

// TxRunner ejecuta fn dentro de una transacción del almacén. Si fn retorna
// error se hace rollback; el ctx recibido por fn es el que deben usar los repos
// (en MongoDB transporta la sesión).
type TxRunner interface {
	Run(ctx context.Context, fn func(ctx context.Context, repos TxRepos) error) error
}
