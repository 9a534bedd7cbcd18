package ordering

import (
	"github.com/jhoicas/Pedidos-api/internal/domain"
	"github.com/jhoicas/Pedidos-api/internal/domain/entity"
)

var statusRank = map[string]int{
	entity.OrderStatusStart:     0,
	entity.OrderStatusInProcess: 1,
	entity.OrderStatusCompleted: 2,
}

// ValidStatus indica si s es un estado conocido.
func ValidStatus(s string) bool {
	_, ok := statusRank[s]
	return ok
}

// CheckTransition valida el paso de from a to.
// Un pedido completado no admite cambios y el estado nunca retrocede.
func CheckTransition(from, to string) error {
	if from == entity.OrderStatusCompleted {
		return domain.ErrInvalidState
	}
	toRank, ok := statusRank[to]
	if !ok {
		return domain.ErrInvalidInput
	}
	if fromRank, known := statusRank[from]; known && toRank < fromRank {
		return domain.ErrInvalidState
	}
	return nil
}
