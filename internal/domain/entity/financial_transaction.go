package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transacción financiera.
const (
	PaymentTypePayment = "payment" // el tercero nos paga: el saldo baja
	PaymentTypeReceipt = "receipt" // le pagamos al tercero: el saldo sube
)

// DefaultPaymentMethod método de pago cuando el cliente no lo indica.
const DefaultPaymentMethod = "cash"

// FinancialTransaction asiento del libro financiero (pago o recibo).
// Amount siempre se guarda como magnitud positiva; el signo sobre el saldo
// lo determina PaymentType.
type FinancialTransaction struct {
	ID            string
	PartyID       string
	PartyName     string
	Amount        decimal.Decimal
	PaymentType   string
	PaymentMethod string
	Description   string
	CreatedAt     time.Time
}
