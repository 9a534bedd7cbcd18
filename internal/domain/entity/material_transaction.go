package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaterialTransaction asiento del libro de materiales. Se crea exactamente una
// vez por pedido y no se modifica. Amount es positivo en ventas y negativo en compras.
type MaterialTransaction struct {
	ID          string
	PartyID     string
	PartyName   string
	OrderID     string
	OrderType   string
	Amount      decimal.Decimal
	Description string
	CreatedAt   time.Time
}
