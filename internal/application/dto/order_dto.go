package dto

import "github.com/shopspring/decimal"

// CreateOrderRequest body para POST /api/orders.
// Se usa customer_id (cliente existente) o customer (cliente nuevo); customer_id tiene prioridad.
type CreateOrderRequest struct {
	Number     string                 `json:"number" validate:"required"`
	CustomerID string                 `json:"customer_id,omitempty"`
	Customer   *CreateCustomerRequest `json:"customer,omitempty"`
	Items      []OrderItemRequest     `json:"items" validate:"required,min=1,dive"`
}

// OrderItemRequest línea del pedido. Price es obligatorio y no negativo.
type OrderItemRequest struct {
	ProductName string              `json:"product_name" validate:"required"`
	Quantity    Quantity            `json:"quantity" validate:"required,gt=0"`
	Price       decimal.NullDecimal `json:"price"`
}
