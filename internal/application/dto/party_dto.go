package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePartyRequest entrada para crear un tercero. El saldo no se recibe: inicia en 0.
type CreatePartyRequest struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
}

// PartyResponse salida de un tercero.
type PartyResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Contact   string          `json:"contact"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
}

// PartyLedgerResponse saldo en caché contra saldo recalculado desde los libros.
type PartyLedgerResponse struct {
	PartyID        string          `json:"party_id"`
	Balance        decimal.Decimal `json:"balance"`
	MaterialTotal  decimal.Decimal `json:"material_total"`
	FinancialTotal decimal.Decimal `json:"financial_total"`
	LedgerTotal    decimal.Decimal `json:"ledger_total"`
	Consistent     bool            `json:"consistent"`
}
