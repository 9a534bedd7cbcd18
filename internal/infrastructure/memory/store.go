// Package memory implementa los repositorios en memoria (STORE_DRIVER=memory).
// Pensado para desarrollo local y pruebas: los datos se pierden al reiniciar.
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/Pedidos-api/internal/application/ports"
	"github.com/jhoicas/Pedidos-api/internal/domain/entity"
)

var _ ports.TxRunner = (*Store)(nil)

// Store guarda todas las colecciones bajo un único mutex. Una transacción
// retiene el mutex completo, lo que serializa también las escrituras por tercero.
type Store struct {
	mu         sync.Mutex
	products   map[string]entity.Product
	parties    map[string]entity.Party
	orders     map[string]entity.Order
	materials  []entity.MaterialTransaction
	financials []entity.FinancialTransaction
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		products: make(map[string]entity.Product),
		parties:  make(map[string]entity.Party),
		orders:   make(map[string]entity.Order),
	}
}

// Run ejecuta fn con repos que operan bajo el mutex ya tomado. Si fn falla,
// el estado vuelve a la foto tomada al inicio.
func (s *Store) Run(ctx context.Context, fn func(ctx context.Context, repos ports.TxRepos) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.snapshot()
	repos := ports.TxRepos{
		Parties:    &PartyRepo{s: s, inTx: true},
		Orders:     &OrderRepo{s: s, inTx: true},
		Materials:  &MaterialTransactionRepo{s: s, inTx: true},
		Financials: &FinancialTransactionRepo{s: s, inTx: true},
	}
	if err := fn(ctx, repos); err != nil {
		s.restore(snap)
		return err
	}
	return nil
}

// lock toma el mutex salvo que el llamador ya esté dentro de Run.
func (s *Store) lock(inTx bool) func() {
	if inTx {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

type snapshot struct {
	products   map[string]entity.Product
	parties    map[string]entity.Party
	orders     map[string]entity.Order
	materials  []entity.MaterialTransaction
	financials []entity.FinancialTransaction
}

func (s *Store) snapshot() snapshot {
	snap := snapshot{
		products:   make(map[string]entity.Product, len(s.products)),
		parties:    make(map[string]entity.Party, len(s.parties)),
		orders:     make(map[string]entity.Order, len(s.orders)),
		materials:  append([]entity.MaterialTransaction(nil), s.materials...),
		financials: append([]entity.FinancialTransaction(nil), s.financials...),
	}
	for k, v := range s.products {
		snap.products[k] = v
	}
	for k, v := range s.parties {
		snap.parties[k] = v
	}
	for k, v := range s.orders {
		snap.orders[k] = cloneOrder(v)
	}
	return snap
}

func (s *Store) restore(snap snapshot) {
	s.products = snap.products
	s.parties = snap.parties
	s.orders = snap.orders
	s.materials = snap.materials
	s.financials = snap.financials
}

func cloneOrder(o entity.Order) entity.Order {
	o.Lines = append([]entity.OrderLine(nil), o.Lines...)
	if o.ReferenceOrderID != nil {
		ref := *o.ReferenceOrderID
		o.ReferenceOrderID = &ref
	}
	return o
}

func capLimit(n, limit int) int {
	if limit > 0 && n > limit {
		return limit
	}
	return n
}
