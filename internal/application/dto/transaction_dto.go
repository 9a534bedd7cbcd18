package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaterialTransactionResponse asiento del libro de materiales.
type MaterialTransactionResponse struct {
	ID          string          `json:"id"`
	PartyID     string          `json:"party_id"`
	PartyName   string          `json:"party_name"`
	OrderID     string          `json:"order_id"`
	OrderType   string          `json:"order_type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
}

// CreateFinancialTransactionRequest body para POST /api/financial-transactions.
type CreateFinancialTransactionRequest struct {
	PartyID       string          `json:"party_id"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentType   string          `json:"payment_type"`
	PaymentMethod string          `json:"payment_method"`
	Description   string          `json:"description"`
}

// FinancialTransactionResponse asiento del libro financiero.
type FinancialTransactionResponse struct {
	ID            string          `json:"id"`
	PartyID       string          `json:"party_id"`
	PartyName     string          `json:"party_name"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentType   string          `json:"payment_type"`
	PaymentMethod string          `json:"payment_method"`
	Description   string          `json:"description"`
	CreatedAt     time.Time       `json:"created_at"`
}
