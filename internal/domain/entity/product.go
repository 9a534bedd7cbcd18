package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo. Las líneas de pedido copian
// nombre, precio y peso al crearse, así que borrar o cambiar el producto no
// altera pedidos históricos.
type Product struct {
	ID          string
	Name        string
	Price       decimal.Decimal // precio unitario
	Weight      decimal.Decimal // peso unitario
	Description string
	CreatedAt   time.Time
}
