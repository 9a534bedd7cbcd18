package accounting_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Pedidos-api/internal/application/accounting"
	"github.com/jhoicas/Pedidos-api/internal/application/dto"
	"github.com/jhoicas/Pedidos-api/internal/application/ports"
	"github.com/jhoicas/Pedidos-api/internal/domain"
	"github.com/jhoicas/Pedidos-api/internal/domain/entity"
	"github.com/jhoicas/Pedidos-api/internal/domain/ledger"
	"github.com/jhoicas/Pedidos-api/internal/infrastructure/memory"
)

func newBooks(t *testing.T) (*accounting.LedgerUseCase, *memory.Store, *entity.Party) {
	t.Helper()
	store := memory.NewStore()
	parties := memory.NewPartyRepository(store)
	party := &entity.Party{ID: domain.NewID(), Name: "Taller Sur", CreatedAt: time.Now().UTC()}
	require.NoError(t, parties.Create(context.Background(), party))
	uc := accounting.NewLedgerUseCase(store, parties,
		memory.NewMaterialTransactionRepository(store),
		memory.NewFinancialTransactionRepository(store), 1000, zerolog.Nop())
	return uc, store, party
}

func pay(paymentType string, partyID string, amount int64) dto.CreateFinancialTransactionRequest {
	return dto.CreateFinancialTransactionRequest{PartyID: partyID, Amount: decimal.NewFromInt(amount), PaymentType: paymentType}
}

func TestCreateFinancialTransaction_Signos(t *testing.T) {
	uc, _, party := newBooks(t)
	ctx := context.Background()

	_, err := uc.CreateFinancialTransaction(ctx, pay(entity.PaymentTypeReceipt, party.ID, 80))
	require.NoError(t, err)
	out, err := uc.CreateFinancialTransaction(ctx, pay(entity.PaymentTypePayment, party.ID, 30))
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultPaymentMethod, out.PaymentMethod)
	assert.Equal(t, party.Name, out.PartyName)

	audit, err := uc.PartyLedger(ctx, party.ID)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(50).Equal(audit.Balance))
	assert.True(t, decimal.NewFromInt(50).Equal(audit.FinancialTotal))
	assert.True(t, audit.MaterialTotal.IsZero())
	assert.True(t, audit.Consistent)
}

func TestCreateFinancialTransaction_Rechazos(t *testing.T) {
	uc, _, party := newBooks(t)
	ctx := context.Background()

	_, err := uc.CreateFinancialTransaction(ctx, pay("refund", party.ID, 10))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.CreateFinancialTransaction(ctx, pay(entity.PaymentTypePayment, party.ID, 0))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.CreateFinancialTransaction(ctx, pay(entity.PaymentTypePayment, domain.NewID(), 10))
	assert.ErrorIs(t, err, domain.ErrNotFound)

	list, err := uc.ListFinancial(ctx, party.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestRecordMaterialEffectInTx_VentaYCompra(t *testing.T) {
	uc, store, party := newBooks(t)
	ctx := context.Background()

	for _, o := range []*entity.Order{
		{ID: domain.NewID(), OrderType: entity.OrderTypeSale, TotalPrice: decimal.NewFromInt(350)},
		{ID: domain.NewID(), OrderType: entity.OrderTypePurchase, TotalPrice: decimal.NewFromInt(240)},
	} {
		err := store.Run(ctx, func(ctx context.Context, repos ports.TxRepos) error {
			_, err := uc.RecordMaterialEffectInTx(ctx, repos, party, o)
			return err
		})
		require.NoError(t, err)
	}

	list, err := uc.ListMaterial(ctx, party.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.True(t, decimal.NewFromInt(-240).Equal(list[0].Amount))
	assert.Equal(t, "Purchase order created", list[0].Description)
	assert.True(t, decimal.NewFromInt(350).Equal(list[1].Amount))

	audit, err := uc.PartyLedger(ctx, party.ID)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(110).Equal(audit.Balance))
	assert.True(t, audit.Consistent)
}

func TestRecordMaterialEffectInTx_RollbackConjunto(t *testing.T) {
	uc, store, party := newBooks(t)
	ctx := context.Background()
	boom := errors.New("fallo posterior")

	err := store.Run(ctx, func(ctx context.Context, repos ports.TxRepos) error {
		if _, err := uc.RecordMaterialEffectInTx(ctx, repos, party, &entity.Order{
			ID: domain.NewID(), OrderType: entity.OrderTypeSale, TotalPrice: decimal.NewFromInt(99),
		}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	audit, err := uc.PartyLedger(ctx, party.ID)
	require.NoError(t, err)
	assert.True(t, audit.Balance.IsZero())
	assert.True(t, audit.MaterialTotal.IsZero())
}

func TestPartyLedger_DetectaDescuadre(t *testing.T) {
	uc, store, party := newBooks(t)
	ctx := context.Background()
	// Saldo alterado sin asiento.
	require.NoError(t, memory.NewPartyRepository(store).AddBalance(ctx, party.ID, decimal.NewFromInt(5)))

	audit, err := uc.PartyLedger(ctx, party.ID)

	require.NoError(t, err)
	assert.False(t, audit.Consistent)
	assert.True(t, audit.LedgerTotal.IsZero())
}

// fakePDF captura lo que recibe el generador.
type fakePDF struct {
	entries []ledger.StatementEntry
	summary ledger.Summary
}

func (f *fakePDF) GenerateStatementPDF(_ context.Context, _ *entity.Party, entries []ledger.StatementEntry, summary ledger.Summary) ([]byte, error) {
	f.entries, f.summary = entries, summary
	return []byte("%PDF-fake"), nil
}

func TestDownloadStatementPDF(t *testing.T) {
	uc, _, party := newBooks(t)
	ctx := context.Background()
	_, err := uc.CreateFinancialTransaction(ctx, pay(entity.PaymentTypeReceipt, party.ID, 40))
	require.NoError(t, err)
	_, err = uc.CreateFinancialTransaction(ctx, pay(entity.PaymentTypePayment, party.ID, 15))
	require.NoError(t, err)

	gen := &fakePDF{}
	out, name, err := accounting.NewStatementUseCase(uc, gen).DownloadStatementPDF(ctx, party.ID)

	require.NoError(t, err)
	assert.Equal(t, "%PDF-fake", string(out))
	assert.Equal(t, "estado-cuenta-"+party.ID+".pdf", name)
	require.Len(t, gen.entries, 2)
	assert.True(t, decimal.NewFromInt(25).Equal(gen.entries[1].Running))
	assert.True(t, gen.summary.Consistent)

	_, _, err = accounting.NewStatementUseCase(uc, gen).DownloadStatementPDF(ctx, domain.NewID())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
