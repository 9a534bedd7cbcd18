package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/Pedidos-api/internal/domain"
	"github.com/jhoicas/Pedidos-api/internal/domain/entity"
	"github.com/jhoicas/Pedidos-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo productos en memoria.
type ProductRepo struct {
	s    *Store
	inTx bool
}

// NewProductRepository construye el repositorio sobre el almacén.
func NewProductRepository(s *Store) *ProductRepo {
	return &ProductRepo{s: s}
}

func (r *ProductRepo) Create(_ context.Context, product *entity.Product) error {
	defer r.s.lock(r.inTx)()
	if _, ok := r.s.products[product.ID]; ok {
		return domain.ErrDuplicate
	}
	r.s.products[product.ID] = *product
	return nil
}

func (r *ProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	defer r.s.lock(r.inTx)()
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

// List ordena por nombre.
func (r *ProductRepo) List(_ context.Context, limit int) ([]*entity.Product, error) {
	defer r.s.lock(r.inTx)()
	list := make([]*entity.Product, 0, len(r.s.products))
	for _, p := range r.s.products {
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

func (r *ProductRepo) Delete(_ context.Context, id string) error {
	defer r.s.lock(r.inTx)()
	if _, ok := r.s.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.products, id)
	return nil
}
