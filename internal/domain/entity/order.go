package entity

import "github.com/shopspring/decimal"

// Order pedido simplificado. El cliente se vincula por CustomerID (cliente existente en el CRM)
// o por Customer (datos embebidos); si ambos vienen, CustomerID tiene prioridad.
type Order struct {
	Number     string
	CustomerID string
	Customer   *Customer
	Items      []OrderItem
}

// OrderItem línea del pedido. Solo existe dentro de un Order.
type OrderItem struct {
	ProductName string
	Quantity    int
	Price       decimal.Decimal
}
