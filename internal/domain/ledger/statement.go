package ledger

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Pedidos-api/internal/domain/entity"
)

// Orígenes de una línea del estado de cuenta.
const (
	SourceMaterial  = "material"
	SourceFinancial = "financial"
)

// StatementEntry línea del estado de cuenta con saldo acumulado.
type StatementEntry struct {
	Date        time.Time
	Source      string
	Reference   string // ID del pedido o de la transacción financiera
	Description string
	Effect      decimal.Decimal // efecto firmado sobre el saldo
	Running     decimal.Decimal
}

// Statement mezcla ambos libros en orden cronológico ascendente y calcula el
// saldo acumulado partiendo de cero.
func Statement(materials []*entity.MaterialTransaction, financials []*entity.FinancialTransaction) []StatementEntry {
	entries := make([]StatementEntry, 0, len(materials)+len(financials))
	for _, m := range materials {
		entries = append(entries, StatementEntry{
			Date:        m.CreatedAt,
			Source:      SourceMaterial,
			Reference:   m.OrderID,
			Description: m.Description,
			Effect:      m.Amount,
		})
	}
	for _, f := range financials {
		delta, err := FinancialDelta(f.PaymentType, f.Amount)
		if err != nil {
			continue
		}
		desc := f.Description
		if desc == "" {
			desc = f.PaymentType + " (" + f.PaymentMethod + ")"
		}
		entries = append(entries, StatementEntry{
			Date:        f.CreatedAt,
			Source:      SourceFinancial,
			Reference:   f.ID,
			Description: desc,
			Effect:      delta,
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date)
	})
	running := decimal.Zero
	for i := range entries {
		running = running.Add(entries[i].Effect)
		entries[i].Running = running
	}
	return entries
}
