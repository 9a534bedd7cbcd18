package ledger_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Pedidos-api/internal/domain"
	"github.com/jhoicas/Pedidos-api/internal/domain/entity"
	"github.com/jhoicas/Pedidos-api/internal/domain/ledger"
)

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestMaterialAmount_SignoPorTipo(t *testing.T) {
	assert.True(t, ledger.MaterialAmount(entity.OrderTypeSale, dec(350)).Equal(dec(350)))
	assert.True(t, ledger.MaterialAmount(entity.OrderTypePurchase, dec(240)).Equal(dec(-240)))
}

func TestMaterialDescription(t *testing.T) {
	assert.Equal(t, "Sale order created", ledger.MaterialDescription(entity.OrderTypeSale))
	assert.Equal(t, "Purchase order created", ledger.MaterialDescription(entity.OrderTypePurchase))
}

func TestFinancialDelta(t *testing.T) {
	d, err := ledger.FinancialDelta(entity.PaymentTypePayment, dec(100))
	require.NoError(t, err)
	assert.True(t, d.Equal(dec(-100)), "payment reduce el saldo")

	d, err = ledger.FinancialDelta(entity.PaymentTypeReceipt, dec(50))
	require.NoError(t, err)
	assert.True(t, d.Equal(dec(50)), "receipt aumenta el saldo")

	_, err = ledger.FinancialDelta("refund", dec(10))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Ejemplo completo: venta 350, compra 240, pago 100, recibo 50 => saldo 60.
func TestSummarize_EjemploDeReferencia(t *testing.T) {
	materials := []*entity.MaterialTransaction{
		{Amount: dec(350)},
		{Amount: dec(-240)},
	}
	financials := []*entity.FinancialTransaction{
		{Amount: dec(100), PaymentType: entity.PaymentTypePayment},
		{Amount: dec(50), PaymentType: entity.PaymentTypeReceipt},
	}

	s := ledger.Summarize(dec(60), materials, financials)

	assert.True(t, s.MaterialTotal.Equal(dec(110)))
	assert.True(t, s.FinancialTotal.Equal(dec(-50)))
	assert.True(t, s.LedgerTotal.Equal(dec(60)))
	assert.True(t, s.Consistent)

	assert.False(t, ledger.Summarize(dec(61), materials, financials).Consistent)
}

func TestStatement_OrdenCronologicoYSaldoAcumulado(t *testing.T) {
	base := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	materials := []*entity.MaterialTransaction{
		{OrderID: "o2", Amount: dec(-240), CreatedAt: base.Add(2 * time.Hour), Description: "Purchase order created"},
		{OrderID: "o1", Amount: dec(350), CreatedAt: base, Description: "Sale order created"},
	}
	financials := []*entity.FinancialTransaction{
		{ID: "f1", Amount: dec(100), PaymentType: entity.PaymentTypePayment, PaymentMethod: "cash", CreatedAt: base.Add(3 * time.Hour)},
	}

	entries := ledger.Statement(materials, financials)

	require.Len(t, entries, 3)
	assert.Equal(t, "o1", entries[0].Reference)
	assert.Equal(t, "o2", entries[1].Reference)
	assert.Equal(t, ledger.SourceFinancial, entries[2].Source)
	assert.Equal(t, "payment (cash)", entries[2].Description)
	assert.True(t, entries[0].Running.Equal(dec(350)))
	assert.True(t, entries[1].Running.Equal(dec(110)))
	assert.True(t, entries[2].Running.Equal(dec(10)))
}
