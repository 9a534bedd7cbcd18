package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Pedidos-api/internal/domain"
	"github.com/jhoicas/Pedidos-api/internal/domain/entity"
	"github.com/jhoicas/Pedidos-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL.
// Las líneas se guardan embebidas en la columna JSONB products.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador de pedidos. Pasar pool o tx.
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

const orderColumns = `id, party_id, party_name, order_type, products, total_price, total_weight,
	status, priority, reference_order_id, created_at, updated_at`

// lineRow forma JSON de una línea dentro de la columna products.
type lineRow struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Weight      decimal.Decimal `json:"weight"`
}

func encodeLines(lines []entity.OrderLine) ([]byte, error) {
	rows := make([]lineRow, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, lineRow(l))
	}
	return json.Marshal(rows)
}

func decodeLines(raw []byte) ([]entity.OrderLine, error) {
	var rows []lineRow
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &rows); err != nil {
			return nil, err
		}
	}
	lines := make([]entity.OrderLine, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, entity.OrderLine(r))
	}
	return lines, nil
}

// Create persiste el pedido con sus líneas.
func (r *OrderRepo) Create(ctx context.Context, o *entity.Order) error {
	products, err := encodeLines(o.Lines)
	if err != nil {
		return fmt.Errorf("encode order lines: %w", err)
	}
	query := `INSERT INTO orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err = r.q.Exec(ctx, query,
		o.ID, o.PartyID, o.PartyName, o.OrderType, products, o.TotalPrice, o.TotalWeight,
		o.Status, o.Priority, o.ReferenceOrderID, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isCheckViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByID obtiene un pedido por ID.
func (r *OrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	o, err := scanOrder(r.q.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return o, nil
}

// List lista pedidos por prioridad ascendente con filtros opcionales.
func (r *OrderRepo) List(ctx context.Context, filter repository.OrderFilter) ([]*entity.Order, error) {
	var (
		where []string
		args  []any
	)
	if filter.PartyID != "" {
		args = append(args, filter.PartyID)
		where = append(where, fmt.Sprintf("party_id = $%d", len(args)))
	}
	if filter.OrderType != "" {
		args = append(args, filter.OrderType)
		where = append(where, fmt.Sprintf("order_type = $%d", len(args)))
	}
	query := `SELECT ` + orderColumns + ` FROM orders`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	args = append(args, limitArg(filter.Limit))
	query += fmt.Sprintf(` ORDER BY priority, created_at, id LIMIT $%d`, len(args))
	return r.query(ctx, query, args...)
}

// ListActiveByParty pedidos start/inprocess del tercero por prioridad.
func (r *OrderRepo) ListActiveByParty(ctx context.Context, partyID string) ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders
		WHERE party_id = $1 AND status IN ('start', 'inprocess')
		ORDER BY priority, created_at, id`
	return r.query(ctx, query, partyID)
}

func (r *OrderRepo) query(ctx context.Context, query string, args ...any) ([]*entity.Order, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, o)
	}
	return list, rows.Err()
}

// Update sobrescribe los campos mutables del pedido.
func (r *OrderRepo) Update(ctx context.Context, o *entity.Order) error {
	products, err := encodeLines(o.Lines)
	if err != nil {
		return fmt.Errorf("encode order lines: %w", err)
	}
	query := `UPDATE orders SET products = $2, total_price = $3, total_weight = $4,
		status = $5, priority = $6, updated_at = $7 WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		o.ID, products, o.TotalPrice, o.TotalWeight, o.Status, o.Priority, o.UpdatedAt,
	)
	if err != nil {
		if isCheckViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("update order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdatePriority cambia solo la prioridad.
func (r *OrderRepo) UpdatePriority(ctx context.Context, id string, priority int, updatedAt time.Time) error {
	tag, err := r.q.Exec(ctx, `UPDATE orders SET priority = $2, updated_at = $3 WHERE id = $1`, id, priority, updatedAt)
	if err != nil {
		return fmt.Errorf("update order priority: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanOrder(row pgx.Row) (*entity.Order, error) {
	var (
		o        entity.Order
		products []byte
	)
	err := row.Scan(
		&o.ID, &o.PartyID, &o.PartyName, &o.OrderType, &products, &o.TotalPrice, &o.TotalWeight,
		&o.Status, &o.Priority, &o.ReferenceOrderID, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if o.Lines, err = decodeLines(products); err != nil {
		return nil, fmt.Errorf("decode order lines: %w", err)
	}
	return &o, nil
}
