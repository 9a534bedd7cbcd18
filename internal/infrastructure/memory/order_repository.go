package memory

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/Pedidos-api/internal/domain"
	"github.com/jhoicas/Pedidos-api/internal/domain/entity"
	"github.com/jhoicas/Pedidos-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo pedidos en memoria.
type OrderRepo struct {
	s    *Store
	inTx bool
}

// NewOrderRepository construye el repositorio sobre el almacén.
func NewOrderRepository(s *Store) *OrderRepo {
	return &OrderRepo{s: s}
}

func (r *OrderRepo) Create(_ context.Context, order *entity.Order) error {
	defer r.s.lock(r.inTx)()
	if _, ok := r.s.orders[order.ID]; ok {
		return domain.ErrDuplicate
	}
	r.s.orders[order.ID] = cloneOrder(*order)
	return nil
}

func (r *OrderRepo) GetByID(_ context.Context, id string) (*entity.Order, error) {
	defer r.s.lock(r.inTx)()
	o, ok := r.s.orders[id]
	if !ok {
		return nil, nil
	}
	o = cloneOrder(o)
	return &o, nil
}

func (r *OrderRepo) List(_ context.Context, filter repository.OrderFilter) ([]*entity.Order, error) {
	defer r.s.lock(r.inTx)()
	list := r.collect(func(o *entity.Order) bool {
		if filter.PartyID != "" && o.PartyID != filter.PartyID {
			return false
		}
		return filter.OrderType == "" || o.OrderType == filter.OrderType
	})
	return list[:capLimit(len(list), filter.Limit)], nil
}

func (r *OrderRepo) ListActiveByParty(_ context.Context, partyID string) ([]*entity.Order, error) {
	defer r.s.lock(r.inTx)()
	return r.collect(func(o *entity.Order) bool {
		return o.PartyID == partyID && o.IsActive()
	}), nil
}

func (r *OrderRepo) Update(_ context.Context, order *entity.Order) error {
	defer r.s.lock(r.inTx)()
	if _, ok := r.s.orders[order.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.orders[order.ID] = cloneOrder(*order)
	return nil
}

func (r *OrderRepo) UpdatePriority(_ context.Context, id string, priority int, updatedAt time.Time) error {
	defer r.s.lock(r.inTx)()
	o, ok := r.s.orders[id]
	if !ok {
		return domain.ErrNotFound
	}
	o.Priority = priority
	o.UpdatedAt = updatedAt
	r.s.orders[id] = o
	return nil
}

// collect filtra y ordena por prioridad ascendente (desempate por creación).
func (r *OrderRepo) collect(keep func(o *entity.Order) bool) []*entity.Order {
	list := make([]*entity.Order, 0)
	for _, o := range r.s.orders {
		o := cloneOrder(o)
		if keep(&o) {
			list = append(list, &o)
		}
	}
	sort.Slice(list, func(i, j int) bool {
		a, b := list[i], list[j]
		if a.Priority != b.Priority {
			return a.Priority < b.Priority
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID < b.ID
	})
	return list
}
