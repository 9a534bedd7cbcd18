package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de pedido.
const (
	OrderTypePurchase = "purchase" // compra al tercero
	OrderTypeSale     = "sale"     // venta al tercero
)

// Estados del pedido (progresión monótona start -> inprocess -> completed).
const (
	OrderStatusStart     = "start"
	OrderStatusInProcess = "inprocess"
	OrderStatusCompleted = "completed"
)

// CompletedPriority es la prioridad fija de un pedido completado: lo manda al
// final de cualquier vista ordenada por prioridad ascendente.
const CompletedPriority = 9999

// OrderLine es una línea del pedido con los valores del producto copiados.
type OrderLine struct {
	ProductID   string
	ProductName string
	Quantity    decimal.Decimal
	Price       decimal.Decimal
	Weight      decimal.Decimal
}

// Order representa un pedido de compra o venta de un tercero.
type Order struct {
	ID               string
	PartyID          string
	PartyName        string
	OrderType        string
	Lines            []OrderLine
	TotalPrice       decimal.Decimal
	TotalWeight      decimal.Decimal
	Status           string
	Priority         int
	ReferenceOrderID *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// IsActive indica si el pedido participa en la cola de prioridades del tercero.
func (o *Order) IsActive() bool {
	return o.Status == OrderStatusStart || o.Status == OrderStatusInProcess
}

// IsCompleted indica si el pedido llegó a su estado terminal.
func (o *Order) IsCompleted() bool {
	return o.Status == OrderStatusCompleted
}

// ActiveStatuses estados que forman la cola de prioridades.
var ActiveStatuses = []string{OrderStatusStart, OrderStatusInProcess}
