package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Party representa un cliente o proveedor con saldo corriente.
// Balance es un caché materializado de los libros: solo lo modifican la
// creación de pedidos y de transacciones financieras.
type Party struct {
	ID        string
	Name      string
	Contact   string
	Balance   decimal.Decimal
	CreatedAt time.Time
}
