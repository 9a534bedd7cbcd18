package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Pedidos-api/internal/domain"
	"github.com/jhoicas/Pedidos-api/internal/domain/entity"
	"github.com/jhoicas/Pedidos-api/internal/domain/repository"
)

var (
	_ repository.MaterialTransactionRepository  = (*MaterialTransactionRepo)(nil)
	_ repository.FinancialTransactionRepository = (*FinancialTransactionRepo)(nil)
)

// ledgerWhere arma el filtro por tercero y el LIMIT comunes a ambos libros.
func ledgerWhere(filter repository.LedgerFilter) (string, []any) {
	if filter.PartyID != "" {
		return ` WHERE party_id = $1 ORDER BY created_at DESC, id DESC LIMIT $2`, []any{filter.PartyID, limitArg(filter.Limit)}
	}
	return ` ORDER BY created_at DESC, id DESC LIMIT $1`, []any{limitArg(filter.Limit)}
}

// MaterialTransactionRepo libro de materiales sobre PostgreSQL.
type MaterialTransactionRepo struct {
	q Querier
}

// NewMaterialTransactionRepository construye el repositorio. Pasar pool o tx.
func NewMaterialTransactionRepository(q Querier) *MaterialTransactionRepo {
	return &MaterialTransactionRepo{q: q}
}

const materialColumns = `id, party_id, party_name, order_id, order_type, amount, description, created_at`

// Create agrega un asiento. order_id es único: un pedido no genera dos asientos.
func (r *MaterialTransactionRepo) Create(ctx context.Context, t *entity.MaterialTransaction) error {
	query := `INSERT INTO material_transactions (` + materialColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		t.ID, t.PartyID, t.PartyName, t.OrderID, t.OrderType, t.Amount, t.Description, t.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert material transaction: %w", err)
	}
	return nil
}

// List asientos del más reciente al más antiguo.
func (r *MaterialTransactionRepo) List(ctx context.Context, filter repository.LedgerFilter) ([]*entity.MaterialTransaction, error) {
	tail, args := ledgerWhere(filter)
	rows, err := r.q.Query(ctx, `SELECT `+materialColumns+` FROM material_transactions`+tail, args...)
	if err != nil {
		return nil, fmt.Errorf("list material transactions: %w", err)
	}
	list, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*entity.MaterialTransaction, error) {
		var t entity.MaterialTransaction
		err := row.Scan(&t.ID, &t.PartyID, &t.PartyName, &t.OrderID, &t.OrderType, &t.Amount, &t.Description, &t.CreatedAt)
		return &t, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan material transaction: %w", err)
	}
	return list, nil
}

// FinancialTransactionRepo libro financiero sobre PostgreSQL.
type FinancialTransactionRepo struct {
	q Querier
}

// NewFinancialTransactionRepository construye el repositorio. Pasar pool o tx.
func NewFinancialTransactionRepository(q Querier) *FinancialTransactionRepo {
	return &FinancialTransactionRepo{q: q}
}

const financialColumns = `id, party_id, party_name, amount, payment_type, payment_method, description, created_at`

// Create agrega un asiento financiero.
func (r *FinancialTransactionRepo) Create(ctx context.Context, t *entity.FinancialTransaction) error {
	query := `INSERT INTO financial_transactions (` + financialColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		t.ID, t.PartyID, t.PartyName, t.Amount, t.PaymentType, t.PaymentMethod, t.Description, t.CreatedAt,
	)
	if err != nil {
		if isCheckViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert financial transaction: %w", err)
	}
	return nil
}

// List asientos del más reciente al más antiguo.
func (r *FinancialTransactionRepo) List(ctx context.Context, filter repository.LedgerFilter) ([]*entity.FinancialTransaction, error) {
	tail, args := ledgerWhere(filter)
	rows, err := r.q.Query(ctx, `SELECT `+financialColumns+` FROM financial_transactions`+tail, args...)
	if err != nil {
		return nil, fmt.Errorf("list financial transactions: %w", err)
	}
	list, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*entity.FinancialTransaction, error) {
		var t entity.FinancialTransaction
		err := row.Scan(&t.ID, &t.PartyID, &t.PartyName, &t.Amount, &t.PaymentType, &t.PaymentMethod, &t.Description, &t.CreatedAt)
		return &t, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan financial transaction: %w", err)
	}
	return list, nil
}
