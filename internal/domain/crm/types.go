// Package crm contiene el formato de cable de la API de RetailCRM y las funciones puras
// que traducen las entidades simplificadas del gateway a ese formato.
//
// Los campos opcionales usan omitempty: el CRM trata distinto un campo ausente
// que un null explícito, así que nunca se emiten nulls.
package crm

import "encoding/json"

// Nombres de los campos de formulario en los que el CRM espera el objeto como JSON string.
const (
	FieldCustomer = "customer"
	FieldOrder    = "order"
	FieldPayment  = "payment"
)

// Phone teléfono de un cliente en el CRM.
type Phone struct {
	Number string `json:"number"`
}

// Customer cliente en formato CRM.
type Customer struct {
	FirstName string  `json:"firstName"`
	Email     string  `json:"email"`
	LastName  string  `json:"lastName,omitempty"`
	Phones    []Phone `json:"phones,omitempty"`
}

// CustomerRef referencia a un cliente ya existente en el CRM.
type CustomerRef struct {
	ID string `json:"id"`
}

// OrderCustomer vínculo del pedido con su cliente: CustomerRef o Customer embebido.
type OrderCustomer interface {
	orderCustomer()
}

func (Customer) orderCustomer()    {}
func (CustomerRef) orderCustomer() {}

// Offer oferta referenciada por nombre; el CRM la resuelve o la rechaza.
type Offer struct {
	Name string `json:"name"`
}

// Item línea de pedido en formato CRM.
type Item struct {
	Offer        Offer       `json:"offer"`
	Quantity     int         `json:"quantity"`
	InitialPrice json.Number `json:"initialPrice"`
}

// Order pedido en formato CRM. Customer nil => el campo no se envía.
type Order struct {
	Number   string        `json:"number"`
	Site     string        `json:"site"`
	Customer OrderCustomer `json:"customer,omitempty"`
	Items    []Item        `json:"items"`
}

// OrderRef referencia a un pedido del CRM.
type OrderRef struct {
	ID string `json:"id"`
}

// Payment pago en formato CRM.
type Payment struct {
	Amount  json.Number `json:"amount"`
	Type    string      `json:"type"`
	Order   OrderRef    `json:"order"`
	Comment string      `json:"comment,omitempty"`
}
