package memory

import (
	"context"

	"github.com/jhoicas/Pedidos-api/internal/domain"
	"github.com/jhoicas/Pedidos-api/internal/domain/entity"
	"github.com/jhoicas/Pedidos-api/internal/domain/repository"
)

var (
	_ repository.MaterialTransactionRepository  = (*MaterialTransactionRepo)(nil)
	_ repository.FinancialTransactionRepository = (*FinancialTransactionRepo)(nil)
)

// MaterialTransactionRepo libro de materiales en memoria (solo inserción).
type MaterialTransactionRepo struct {
	s    *Store
	inTx bool
}

// NewMaterialTransactionRepository construye el repositorio sobre el almacén.
func NewMaterialTransactionRepository(s *Store) *MaterialTransactionRepo {
	return &MaterialTransactionRepo{s: s}
}

// Create agrega el asiento; un pedido no puede tener dos.
func (r *MaterialTransactionRepo) Create(_ context.Context, tx *entity.MaterialTransaction) error {
	defer r.s.lock(r.inTx)()
	for _, m := range r.s.materials {
		if m.OrderID == tx.OrderID {
			return domain.ErrDuplicate
		}
	}
	r.s.materials = append(r.s.materials, *tx)
	return nil
}

// List recorre de atrás hacia adelante: el orden de inserción es cronológico.
func (r *MaterialTransactionRepo) List(_ context.Context, filter repository.LedgerFilter) ([]*entity.MaterialTransaction, error) {
	defer r.s.lock(r.inTx)()
	list := make([]*entity.MaterialTransaction, 0)
	for i := len(r.s.materials) - 1; i >= 0; i-- {
		m := r.s.materials[i]
		if filter.PartyID != "" && m.PartyID != filter.PartyID {
			continue
		}
		list = append(list, &m)
		if filter.Limit > 0 && len(list) == filter.Limit {
			break
		}
	}
	return list, nil
}

// FinancialTransactionRepo libro financiero en memoria (solo inserción).
type FinancialTransactionRepo struct {
	s    *Store
	inTx bool
}

// NewFinancialTransactionRepository construye el repositorio sobre el almacén.
func NewFinancialTransactionRepository(s *Store) *FinancialTransactionRepo {
	return &FinancialTransactionRepo{s: s}
}

func (r *FinancialTransactionRepo) Create(_ context.Context, tx *entity.FinancialTransaction) error {
	defer r.s.lock(r.inTx)()
	r.s.financials = append(r.s.financials, *tx)
	return nil
}

func (r *FinancialTransactionRepo) List(_ context.Context, filter repository.LedgerFilter) ([]*entity.FinancialTransaction, error) {
	defer r.s.lock(r.inTx)()
	list := make([]*entity.FinancialTransaction, 0)
	for i := len(r.s.financials) - 1; i >= 0; i-- {
		f := r.s.financials[i]
		if filter.PartyID != "" && f.PartyID != filter.PartyID {
			continue
		}
		list = append(list, &f)
		if filter.Limit > 0 && len(list) == filter.Limit {
			break
		}
	}
	return list, nil
}
