package orders

import (
	"context"

	"github.com/jhoicas/Pedidos-api/internal/application/ports"
	"github.com/jhoicas/Pedidos-api/internal/domain/entity"
)

// MaterialRecorder registra el efecto de un pedido recién creado en el libro de
// materiales y en el saldo del tercero, dentro de la transacción del pedido.
// Lo implementa accounting.LedgerUseCase.
type MaterialRecorder interface {
	RecordMaterialEffectInTx(ctx context.Context, repos ports.TxRepos, party *entity.Party, order *entity.Order) (*entity.MaterialTransaction, error)
}
