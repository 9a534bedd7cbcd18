package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderLineDTO línea de pedido (valores del producto copiados por el cliente).
type OrderLineDTO struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Weight      decimal.Decimal `json:"weight"`
}

// CreateOrderRequest body para POST /api/orders.
type CreateOrderRequest struct {
	PartyID          string         `json:"party_id"`
	OrderType        string         `json:"order_type"`
	Products         []OrderLineDTO `json:"products"`
	ReferenceOrderID *string        `json:"reference_order_id,omitempty"`
}

// UpdateOrderRequest body para PATCH /api/orders/:id. Campos vacíos no se tocan.
type UpdateOrderRequest struct {
	Status   string         `json:"status,omitempty"`
	Priority *int           `json:"priority,omitempty"`
	Products []OrderLineDTO `json:"products,omitempty"`
}

// OrderResponse salida de un pedido.
type OrderResponse struct {
	ID               string          `json:"id"`
	PartyID          string          `json:"party_id"`
	PartyName        string          `json:"party_name"`
	OrderType        string          `json:"order_type"`
	Products         []OrderLineDTO  `json:"products"`
	TotalPrice       decimal.Decimal `json:"total_price"`
	TotalWeight      decimal.Decimal `json:"total_weight"`
	Status           string          `json:"status"`
	Priority         int             `json:"priority"`
	ReferenceOrderID *string         `json:"reference_order_id"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}
