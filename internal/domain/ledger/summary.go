package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Pedidos-api/internal/domain/entity"
)

// Summary resultado de recalcular el saldo desde los libros.
type Summary struct {
	MaterialTotal  decimal.Decimal
	FinancialTotal decimal.Decimal
	LedgerTotal    decimal.Decimal
	Balance        decimal.Decimal
	Consistent     bool
}

// Summarize suma ambos libros y compara contra el saldo en caché del tercero.
// Los asientos financieros con tipo desconocido no aportan (no deberían existir).
func Summarize(balance decimal.Decimal, materials []*entity.MaterialTransaction, financials []*entity.FinancialTransaction) Summary {
	s := Summary{MaterialTotal: decimal.Zero, FinancialTotal: decimal.Zero, Balance: balance}
	for _, m := range materials {
		s.MaterialTotal = s.MaterialTotal.Add(m.Amount)
	}
	for _, f := range financials {
		delta, err := FinancialDelta(f.PaymentType, f.Amount)
		if err != nil {
			continue
		}
		s.FinancialTotal = s.FinancialTotal.Add(delta)
	}
	s.LedgerTotal = s.MaterialTotal.Add(s.FinancialTotal)
	s.Consistent = s.LedgerTotal.Equal(balance)
	return s
}
