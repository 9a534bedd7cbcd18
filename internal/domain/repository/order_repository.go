package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Pedidos-api/internal/domain/entity"
)

// OrderFilter filtros opcionales del listado de pedidos (vacío = sin filtro).
type OrderFilter struct {
	PartyID   string
	OrderType string
	Limit     int
}

// OrderRepository define el puerto de persistencia para pedidos.
// Los listados se devuelven por prioridad ascendente.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	List(ctx context.Context, filter OrderFilter) ([]*entity.Order, error)
	// ListActiveByParty pedidos del tercero en estado start o inprocess.
	ListActiveByParty(ctx context.Context, partyID string) ([]*entity.Order, error)
	// Update sobrescribe estado, prioridad, líneas, totales y updated_at.
	Update(ctx context.Context, order *entity.Order) error
	UpdatePriority(ctx context.Context, id string, priority int, updatedAt time.Time) error
}
