// Package ordering contiene las reglas puras del ciclo de vida de pedidos:
// totales, validación de tipo y estado, y la cola de prioridades por tercero.
package ordering

import (
	"github.com/shopspring/decimal"
	"github.com/jhoicas/Pedidos-api/internal/domain"
	"github.com/jhoicas/Pedidos-api/internal/domain/entity"
)

// Totals calcula total_price = Σ(cantidad × precio) y total_weight = Σ(cantidad × peso).
func Totals(lines []entity.OrderLine) (totalPrice, totalWeight decimal.Decimal) {
	totalPrice, totalWeight = decimal.Zero, decimal.Zero
	for _, l := range lines {
		totalPrice = totalPrice.Add(l.Quantity.Mul(l.Price))
		totalWeight = totalWeight.Add(l.Quantity.Mul(l.Weight))
	}
	return totalPrice, totalWeight
}

// ValidateLines rechaza líneas sin producto o con valores negativos.
func ValidateLines(lines []entity.OrderLine) error {
	if len(lines) == 0 {
		return domain.ErrInvalidInput
	}
	for _, l := range lines {
		if l.ProductID == "" {
			return domain.ErrInvalidInput
		}
		if l.Quantity.IsNegative() || l.Price.IsNegative() || l.Weight.IsNegative() {
			return domain.ErrInvalidInput
		}
	}
	return nil
}

// ValidOrderType indica si t es purchase o sale.
func ValidOrderType(t string) bool {
	return t == entity.OrderTypePurchase || t == entity.OrderTypeSale
}
