package memory

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Pedidos-api/internal/domain"
	"github.com/jhoicas/Pedidos-api/internal/domain/entity"
	"github.com/jhoicas/Pedidos-api/internal/domain/repository"
)

var _ repository.PartyRepository = (*PartyRepo)(nil)

// PartyRepo terceros en memoria.
type PartyRepo struct {
	s    *Store
	inTx bool
}

// NewPartyRepository construye el repositorio sobre el almacén.
func NewPartyRepository(s *Store) *PartyRepo {
	return &PartyRepo{s: s}
}

func (r *PartyRepo) Create(_ context.Context, party *entity.Party) error {
	defer r.s.lock(r.inTx)()
	if _, ok := r.s.parties[party.ID]; ok {
		return domain.ErrDuplicate
	}
	r.s.parties[party.ID] = *party
	return nil
}

func (r *PartyRepo) GetByID(_ context.Context, id string) (*entity.Party, error) {
	defer r.s.lock(r.inTx)()
	p, ok := r.s.parties[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

// GetForUpdate equivale a GetByID: dentro de Run el mutex del almacén ya está tomado.
func (r *PartyRepo) GetForUpdate(ctx context.Context, id string) (*entity.Party, error) {
	return r.GetByID(ctx, id)
}

// List ordena por nombre.
func (r *PartyRepo) List(_ context.Context, limit int) ([]*entity.Party, error) {
	defer r.s.lock(r.inTx)()
	list := make([]*entity.Party, 0, len(r.s.parties))
	for _, p := range r.s.parties {
		p := p
		list = append(list, &p)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Name != list[j].Name {
			return list[i].Name < list[j].Name
		}
		return list[i].ID < list[j].ID
	})
	return list[:capLimit(len(list), limit)], nil
}

func (r *PartyRepo) AddBalance(_ context.Context, id string, delta decimal.Decimal) error {
	defer r.s.lock(r.inTx)()
	p, ok := r.s.parties[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Balance = p.Balance.Add(delta)
	r.s.parties[id] = p
	return nil
}

func (r *PartyRepo) Delete(_ context.Context, id string) error {
	defer r.s.lock(r.inTx)()
	if _, ok := r.s.parties[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.parties, id)
	return nil
}
