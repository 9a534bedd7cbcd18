package repository

import (
	"context"

	"github.com/jhoicas/Pedidos-api/internal/domain/entity"
)

// LedgerFilter filtros de los libros. Limit 0 = sin tope.
type LedgerFilter struct {
	PartyID string
	Limit   int
}

// MaterialTransactionRepository libro de materiales (solo inserción).
// List devuelve los asientos del más reciente al más antiguo.
type MaterialTransactionRepository interface {
	Create(ctx context.Context, tx *entity.MaterialTransaction) error
	List(ctx context.Context, filter LedgerFilter) ([]*entity.MaterialTransaction, error)
}

// FinancialTransactionRepository libro financiero (solo inserción).
// List devuelve los asientos del más reciente al más antiguo.
type FinancialTransactionRepository interface {
	Create(ctx context.Context, tx *entity.FinancialTransaction) error
	List(ctx context.Context, filter LedgerFilter) ([]*entity.FinancialTransaction, error)
}
