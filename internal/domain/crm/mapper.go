package crm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/crm-gateway/internal/domain"
	"github.com/jhoicas/crm-gateway/internal/domain/entity"
)

// MapCustomer traduce un cliente al formato CRM.
// Solo se admite un teléfono.
func MapCustomer(c entity.Customer) Customer {
	out := Customer{
		FirstName: c.FirstName,
		Email:     c.Email,
		LastName:  c.LastName,
	}
	if c.Phone != "" {
		out.Phones = []Phone{{Number: c.Phone}}
	}
	return out
}

// MapOrder traduce un pedido al formato CRM para el site indicado.
// Vinculación del cliente: CustomerID > Customer embebido > sin cliente.
func MapOrder(o entity.Order, site string) (Order, error) {
	if site == "" {
		return Order{}, domain.ErrSiteNotConfigured
	}
	out := Order{
		Number: o.Number,
		Site:   site,
		Items:  make([]Item, 0, len(o.Items)),
	}
	switch {
	case o.CustomerID != "":
		out.Customer = CustomerRef{ID: o.CustomerID}
	case o.Customer != nil:
		out.Customer = MapCustomer(*o.Customer)
	}
	for _, it := range o.Items {
		out.Items = append(out.Items, MapOrderItem(it))
	}
	return out, nil
}

// MapOrderItem traduce una línea de pedido. No se valida el producto contra ningún catálogo.
func MapOrderItem(it entity.OrderItem) Item {
	return Item{
		Offer:        Offer{Name: it.ProductName},
		Quantity:     it.Quantity,
		InitialPrice: number(it.Price),
	}
}

// MapPayment traduce un pago del pedido orderID. type se copia siempre, incluso vacío.
func MapPayment(p entity.Payment, orderID string) Payment {
	return Payment{
		Amount:  number(p.Amount),
		Type:    p.Type,
		Order:   OrderRef{ID: orderID},
		Comment: p.Comment,
	}
}

// EncodeForm serializa v como JSON y lo coloca en el campo de formulario field,
// que es como el CRM espera los cuerpos de creación.
func EncodeForm(field string, v any) (url.Values, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("crm: serializar %s: %w", field, err)
	}
	form := url.Values{}
	form.Set(field, string(bytes.TrimRight(buf.Bytes(), "\n")))
	return form, nil
}

func number(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}
