package accounting

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Pedidos-api/internal/application/dto"
	"github.com/jhoicas/Pedidos-api/internal/application/ports"
	"github.com/jhoicas/Pedidos-api/internal/domain"
	"github.com/jhoicas/Pedidos-api/internal/domain/entity"
	"github.com/jhoicas/Pedidos-api/internal/domain/ledger"
	"github.com/jhoicas/Pedidos-api/internal/domain/repository"
)

// LedgerUseCase mantiene el invariante saldo = Σ libro de materiales + Σ efectos
// financieros. Toda escritura de asiento va junto con el ajuste del saldo en la
// misma transacción.
type LedgerUseCase struct {
	txRunner      ports.TxRunner
	partyRepo     repository.PartyRepository
	materialRepo  repository.MaterialTransactionRepository
	financialRepo repository.FinancialTransactionRepository
	listLimit     int
	log           zerolog.Logger
	now           func() time.Time
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(
	txRunner ports.TxRunner,
	partyRepo repository.PartyRepository,
	materialRepo repository.MaterialTransactionRepository,
	financialRepo repository.FinancialTransactionRepository,
	listLimit int,
	log zerolog.Logger,
) *LedgerUseCase {
	return &LedgerUseCase{
		txRunner:      txRunner,
		partyRepo:     partyRepo,
		materialRepo:  materialRepo,
		financialRepo: financialRepo,
		listLimit:     listLimit,
		log:           log.With().Str("component", "ledger").Logger(),
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// RecordMaterialEffectInTx agrega el asiento de materiales del pedido y aplica
// el mismo monto al saldo. Debe llamarse dentro de la transacción que crea el
// pedido, con el tercero ya bloqueado.
func (uc *LedgerUseCase) RecordMaterialEffectInTx(
	ctx context.Context,
	repos ports.TxRepos,
	party *entity.Party,
	order *entity.Order,
) (*entity.MaterialTransaction, error) {
	amount := ledger.MaterialAmount(order.OrderType, order.TotalPrice)
	mt := &entity.MaterialTransaction{
		ID:          domain.NewID(),
		PartyID:     party.ID,
		PartyName:   party.Name,
		OrderID:     order.ID,
		OrderType:   order.OrderType,
		Amount:      amount,
		Description: ledger.MaterialDescription(order.OrderType),
		CreatedAt:   uc.now(),
	}
	if err := repos.Materials.Create(ctx, mt); err != nil {
		return nil, err
	}
	if err := repos.Parties.AddBalance(ctx, party.ID, amount); err != nil {
		return nil, err
	}
	uc.log.Debug().
		Str("party_id", party.ID).
		Str("order_id", order.ID).
		Str("amount", amount.String()).
		Msg("asiento de materiales registrado")
	return mt, nil
}

// CreateFinancialTransaction registra un pago (saldo -amount) o un recibo
// (saldo +amount). El monto debe ser positivo.
func (uc *LedgerUseCase) CreateFinancialTransaction(ctx context.Context, in dto.CreateFinancialTransactionRequest) (*dto.FinancialTransactionResponse, error) {
	if !domain.ValidID(in.PartyID) {
		return nil, domain.ErrInvalidInput
	}
	if !in.Amount.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	delta, err := ledger.FinancialDelta(in.PaymentType, in.Amount)
	if err != nil {
		return nil, err
	}
	method := in.PaymentMethod
	if method == "" {
		method = entity.DefaultPaymentMethod
	}

	var ft *entity.FinancialTransaction
	err = uc.txRunner.Run(ctx, func(ctx context.Context, repos ports.TxRepos) error {
		party, err := repos.Parties.GetForUpdate(ctx, in.PartyID)
		if err != nil {
			return err
		}
		if party == nil {
			return domain.ErrNotFound
		}
		ft = &entity.FinancialTransaction{
			ID:            domain.NewID(),
			PartyID:       party.ID,
			PartyName:     party.Name,
			Amount:        in.Amount,
			PaymentType:   in.PaymentType,
			PaymentMethod: method,
			Description:   in.Description,
			CreatedAt:     uc.now(),
		}
		if err := repos.Financials.Create(ctx, ft); err != nil {
			return err
		}
		return repos.Parties.AddBalance(ctx, party.ID, delta)
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("party_id", ft.PartyID).
		Str("payment_type", ft.PaymentType).
		Str("amount", ft.Amount.String()).
		Msg("transacción financiera registrada")
	return toFinancialResponse(ft), nil
}

// ListMaterial libro de materiales, del más reciente al más antiguo.
func (uc *LedgerUseCase) ListMaterial(ctx context.Context, partyID string) ([]dto.MaterialTransactionResponse, error) {
	if partyID != "" && !domain.ValidID(partyID) {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.materialRepo.List(ctx, repository.LedgerFilter{PartyID: partyID, Limit: uc.listLimit})
	if err != nil {
		return nil, err
	}
	items := make([]dto.MaterialTransactionResponse, 0, len(list))
	for _, m := range list {
		items = append(items, dto.MaterialTransactionResponse{
			ID:          m.ID,
			PartyID:     m.PartyID,
			PartyName:   m.PartyName,
			OrderID:     m.OrderID,
			OrderType:   m.OrderType,
			Amount:      m.Amount,
			Description: m.Description,
			CreatedAt:   m.CreatedAt,
		})
	}
	return items, nil
}

// ListFinancial libro financiero, del más reciente al más antiguo.
func (uc *LedgerUseCase) ListFinancial(ctx context.Context, partyID string) ([]dto.FinancialTransactionResponse, error) {
	if partyID != "" && !domain.ValidID(partyID) {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.financialRepo.List(ctx, repository.LedgerFilter{PartyID: partyID, Limit: uc.listLimit})
	if err != nil {
		return nil, err
	}
	items := make([]dto.FinancialTransactionResponse, 0, len(list))
	for _, f := range list {
		items = append(items, *toFinancialResponse(f))
	}
	return items, nil
}

// PartyLedger recalcula el saldo del tercero desde ambos libros y lo compara
// con el saldo en caché.
func (uc *LedgerUseCase) PartyLedger(ctx context.Context, partyID string) (*dto.PartyLedgerResponse, error) {
	party, materials, financials, err := uc.loadBooks(ctx, partyID)
	if err != nil {
		return nil, err
	}
	s := ledger.Summarize(party.Balance, materials, financials)
	if !s.Consistent {
		uc.log.Warn().
			Str("party_id", party.ID).
			Str("balance", s.Balance.String()).
			Str("ledger_total", s.LedgerTotal.String()).
			Msg("saldo en caché no coincide con los libros")
	}
	return &dto.PartyLedgerResponse{
		PartyID:        party.ID,
		Balance:        s.Balance,
		MaterialTotal:  s.MaterialTotal,
		FinancialTotal: s.FinancialTotal,
		LedgerTotal:    s.LedgerTotal,
		Consistent:     s.Consistent,
	}, nil
}

// loadBooks obtiene el tercero y todos sus asientos (sin tope).
func (uc *LedgerUseCase) loadBooks(ctx context.Context, partyID string) (*entity.Party, []*entity.MaterialTransaction, []*entity.FinancialTransaction, error) {
	if !domain.ValidID(partyID) {
		return nil, nil, nil, domain.ErrInvalidInput
	}
	party, err := uc.partyRepo.GetByID(ctx, partyID)
	if err != nil {
		return nil, nil, nil, err
	}
	if party == nil {
		return nil, nil, nil, domain.ErrNotFound
	}
	materials, err := uc.materialRepo.List(ctx, repository.LedgerFilter{PartyID: partyID})
	if err != nil {
		return nil, nil, nil, err
	}
	financials, err := uc.financialRepo.List(ctx, repository.LedgerFilter{PartyID: partyID})
	if err != nil {
		return nil, nil, nil, err
	}
	return party, materials, financials, nil
}

func toFinancialResponse(f *entity.FinancialTransaction) *dto.FinancialTransactionResponse {
	return &dto.FinancialTransactionResponse{
		ID:            f.ID,
		PartyID:       f.PartyID,
		PartyName:     f.PartyName,
		Amount:        f.Amount,
		PaymentType:   f.PaymentType,
		PaymentMethod: f.PaymentMethod,
		Description:   f.Description,
		CreatedAt:     f.CreatedAt,
	}
}
