package dto

import "github.com/shopspring/decimal"

// CreatePaymentRequest body para POST /api/orders/:orderId/payments.
// Type ausente => "cash"; un "" explícito se reenvía tal cual.
type CreatePaymentRequest struct {
	Amount  decimal.NullDecimal `json:"amount"`
	Type    *string             `json:"type,omitempty"`
	Comment string              `json:"comment,omitempty"`
}
