package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Pedidos-api/internal/domain/entity"
	"github.com/jhoicas/Pedidos-api/internal/domain/ledger"
)

func TestGenerateStatementPDF_ProduceDocumento(t *testing.T) {
	g := NewMarotoPDFGenerator()
	party := &entity.Party{ID: "p1", Name: "Ferretería Central", Balance: decimal.NewFromInt(60)}
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	materials := []*entity.MaterialTransaction{
		{ID: "m1", OrderID: "o1", Amount: decimal.NewFromInt(350), Description: "Sale order created", CreatedAt: base},
		{ID: "m2", OrderID: "o2", Amount: decimal.NewFromInt(-240), Description: "Purchase order created", CreatedAt: base.Add(time.Hour)},
	}
	financials := []*entity.FinancialTransaction{
		{ID: "f1", Amount: decimal.NewFromInt(100), PaymentType: entity.PaymentTypePayment, PaymentMethod: "cash", CreatedAt: base.Add(2 * time.Hour)},
		{ID: "f2", Amount: decimal.NewFromInt(50), PaymentType: entity.PaymentTypeReceipt, PaymentMethod: "cash", CreatedAt: base.Add(3 * time.Hour)},
	}

	out, err := g.GenerateStatementPDF(context.Background(), party,
		ledger.Statement(materials, financials),
		ledger.Summarize(party.Balance, materials, financials))

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerateStatementPDF_SinMovimientos(t *testing.T) {
	g := NewMarotoPDFGenerator()
	party := &entity.Party{ID: "p2", Name: "Sin movimientos"}

	out, err := g.GenerateStatementPDF(context.Background(), party, nil, ledger.Summarize(decimal.Zero, nil, nil))

	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestMoney_FormatoMoneda(t *testing.T) {
	g := NewMarotoPDFGenerator()

	assert.Contains(t, g.money(decimal.NewFromInt(-240)), "240")
	assert.Contains(t, g.money(decimal.RequireFromString("12.5")), "$")
}
