package dto

import "github.com/shopspring/decimal"

func init() {
	// Montos y pesos viajan como números JSON, no como strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse confirmación simple (borrados, reordenamiento).
type MessageResponse struct {
	Message string `json:"message"`
}
