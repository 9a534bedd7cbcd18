package accounting

import (
	"context"

	"github.com/jhoicas/Pedidos-api/internal/domain/entity"
	"github.com/jhoicas/Pedidos-api/internal/domain/ledger"
)

// StatementPDFGenerator puerto de salida para el estado de cuenta en PDF.
type StatementPDFGenerator interface {
	GenerateStatementPDF(
		ctx context.Context,
		party *entity.Party,
		entries []ledger.StatementEntry,
		summary ledger.Summary,
	) ([]byte, error)
}
