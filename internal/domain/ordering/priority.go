package ordering

import (
	"sort"

	"github.com/jhoicas/Pedidos-api/internal/domain/entity"
)

// PriorityAssignment nueva prioridad para un pedido.
type PriorityAssignment struct {
	OrderID  string
	Priority int
}

// NextPriority prioridad para un pedido nuevo: máxima activa + 1, o 0 si el
// tercero no tiene pedidos activos. Los nuevos van al final de la cola.
func NextPriority(active []*entity.Order) int {
	if len(active) == 0 {
		return 0
	}
	highest := active[0].Priority
	for _, o := range active[1:] {
		if o.Priority > highest {
			highest = o.Priority
		}
	}
	return highest + 1
}

// Renumber cierra el hueco que deja el pedido completingID: ordena los demás
// pedidos activos por prioridad ascendente (desempate por creación e ID) y
// les asigna 0..N-1 conservando el orden relativo.
func Renumber(active []*entity.Order, completingID string) []PriorityAssignment {
	rest := make([]*entity.Order, 0, len(active))
	for _, o := range active {
		if o.ID == completingID || !o.IsActive() {
			continue
		}
		rest = append(rest, o)
	}
	sort.SliceStable(rest, func(i, j int) bool {
		a, b := rest[i], rest[j]
		if a.Priority != b.Priority {
			return a.Priority < b.Priority
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID < b.ID
	})
	out := make([]PriorityAssignment, len(rest))
	for i, o := range rest {
		out[i] = PriorityAssignment{OrderID: o.ID, Priority: i}
	}
	return out
}

// Reorder asigna prioridad = posición en la lista recibida.
func Reorder(orderIDs []string) []PriorityAssignment {
	out := make([]PriorityAssignment, len(orderIDs))
	for i, id := range orderIDs {
		out[i] = PriorityAssignment{OrderID: id, Priority: i}
	}
	return out
}
