package entity

import "github.com/shopspring/decimal"

// DefaultPaymentType tipo de pago usado cuando el cliente no indica ninguno.
const DefaultPaymentType = "cash"

// Payment pago asociado a un pedido. El id del pedido llega por la ruta, no en el cuerpo.
type Payment struct {
	Amount  decimal.Decimal
	Type    string
	Comment string
}
