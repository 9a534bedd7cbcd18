package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Pedidos-api/internal/domain"
	"github.com/jhoicas/Pedidos-api/internal/domain/entity"
	"github.com/jhoicas/Pedidos-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.PartyRepository = (*PartyRepo)(nil)

// PartyRepo implementación del puerto PartyRepository sobre PostgreSQL.
type PartyRepo struct {
	q Querier
}

// NewPartyRepository construye el adaptador de terceros. Pasar pool o tx.
func NewPartyRepository(q Querier) *PartyRepo {
	return &PartyRepo{q: q}
}

const partyColumns = `id, name, contact, balance, created_at`

// Create persiste un tercero con el saldo recibido (0 al crear).
func (r *PartyRepo) Create(ctx context.Context, party *entity.Party) error {
	query := `INSERT INTO parties (` + partyColumns + `) VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query, party.ID, party.Name, party.Contact, party.Balance, party.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert party: %w", err)
	}
	return nil
}

// GetByID obtiene un tercero por ID.
func (r *PartyRepo) GetByID(ctx context.Context, id string) (*entity.Party, error) {
	return r.get(ctx, `SELECT `+partyColumns+` FROM parties WHERE id = $1`, id)
}

// GetForUpdate obtiene el tercero con SELECT FOR UPDATE (debe llamarse dentro de una tx).
func (r *PartyRepo) GetForUpdate(ctx context.Context, id string) (*entity.Party, error) {
	return r.get(ctx, `SELECT `+partyColumns+` FROM parties WHERE id = $1 FOR UPDATE`, id)
}

func (r *PartyRepo) get(ctx context.Context, query, id string) (*entity.Party, error) {
	p, err := scanParty(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get party: %w", err)
	}
	return p, nil
}

// List lista terceros por nombre.
func (r *PartyRepo) List(ctx context.Context, limit int) ([]*entity.Party, error) {
	query := `SELECT ` + partyColumns + ` FROM parties ORDER BY name, created_at LIMIT $1`
	rows, err := r.q.Query(ctx, query, limitArg(limit))
	if err != nil {
		return nil, fmt.Errorf("list parties: %w", err)
	}
	defer rows.Close()
	var list []*entity.Party
	for rows.Next() {
		p, err := scanParty(rows)
		if err != nil {
			return nil, fmt.Errorf("scan party: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// AddBalance suma delta al saldo en la misma sentencia (sin leer-modificar-escribir en Go).
func (r *PartyRepo) AddBalance(ctx context.Context, id string, delta decimal.Decimal) error {
	tag, err := r.q.Exec(ctx, `UPDATE parties SET balance = balance + $2 WHERE id = $1`, id, delta)
	if err != nil {
		return fmt.Errorf("update party balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina el tercero. Pedidos y libros quedan como histórico.
func (r *PartyRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM parties WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete party: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanParty(row pgx.Row) (*entity.Party, error) {
	var p entity.Party
	if err := row.Scan(&p.ID, &p.Name, &p.Contact, &p.Balance, &p.CreatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}
