package accounting

import (
	"context"
	"fmt"

	"github.com/jhoicas/Pedidos-api/internal/domain/ledger"
)

// StatementUseCase genera el estado de cuenta en PDF de un tercero.
type StatementUseCase struct {
	books     *LedgerUseCase
	generator StatementPDFGenerator
}

// NewStatementUseCase construye el caso de uso.
func NewStatementUseCase(books *LedgerUseCase, generator StatementPDFGenerator) *StatementUseCase {
	return &StatementUseCase{books: books, generator: generator}
}

// DownloadStatementPDF devuelve los bytes del PDF y el nombre de archivo sugerido.
//
// Retorna domain.ErrNotFound si el tercero no existe y domain.ErrInvalidInput
// si el ID no tiene formato válido.
func (uc *StatementUseCase) DownloadStatementPDF(ctx context.Context, partyID string) (pdfBytes []byte, filename string, err error) {
	party, materials, financials, err := uc.books.loadBooks(ctx, partyID)
	if err != nil {
		return nil, "", err
	}
	entries := ledger.Statement(materials, financials)
	summary := ledger.Summarize(party.Balance, materials, financials)

	pdfBytes, err = uc.generator.GenerateStatementPDF(ctx, party, entries, summary)
	if err != nil {
		return nil, "", fmt.Errorf("statement: generar PDF: %w", err)
	}
	return pdfBytes, fmt.Sprintf("estado-cuenta-%s.pdf", party.ID), nil
}
