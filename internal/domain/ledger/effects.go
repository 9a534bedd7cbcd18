// Package ledger define la convención de signos de los dos libros
// (materiales y financiero) y cómo se reflejan en el saldo del tercero.
package ledger

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jhoicas/Pedidos-api/internal/domain"
	"github.com/jhoicas/Pedidos-api/internal/domain/entity"
)

// MaterialAmount monto firmado del asiento de materiales: +total en ventas, -total en compras.
func MaterialAmount(orderType string, totalPrice decimal.Decimal) decimal.Decimal {
	if orderType == entity.OrderTypeSale {
		return totalPrice
	}
	return totalPrice.Neg()
}

// MaterialDescription texto del asiento creado con el pedido, ej. "Sale order created".
func MaterialDescription(orderType string) string {
	return cases.Title(language.Und).String(orderType) + " order created"
}

// ValidPaymentType indica si t es payment o receipt.
func ValidPaymentType(t string) bool {
	return t == entity.PaymentTypePayment || t == entity.PaymentTypeReceipt
}

// FinancialDelta efecto sobre el saldo: payment resta, receipt suma.
func FinancialDelta(paymentType string, amount decimal.Decimal) (decimal.Decimal, error) {
	switch paymentType {
	case entity.PaymentTypePayment:
		return amount.Neg(), nil
	case entity.PaymentTypeReceipt:
		return amount, nil
	default:
		return decimal.Zero, domain.ErrInvalidInput
	}
}
