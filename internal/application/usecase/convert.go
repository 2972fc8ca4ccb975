package usecase

import (
	"fmt"

	"github.com/jhoicas/crm-gateway/internal/application/dto"
	"github.com/jhoicas/crm-gateway/internal/application/validation"
	"github.com/jhoicas/crm-gateway/internal/domain/entity"
)

func toCustomer(in dto.CreateCustomerRequest) entity.Customer {
	return entity.Customer{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Phone:     in.Phone,
	}
}

// toOrder convierte el DTO ya validado. Las líneas se copian: la entidad no comparte memoria con el request.
func toOrder(in dto.CreateOrderRequest) entity.Order {
	order := entity.Order{
		Number:     in.Number,
		CustomerID: in.CustomerID,
		Items:      make([]entity.OrderItem, 0, len(in.Items)),
	}
	if in.Customer != nil {
		c := toCustomer(*in.Customer)
		order.Customer = &c
	}
	for _, it := range in.Items {
		order.Items = append(order.Items, entity.OrderItem{
			ProductName: it.ProductName,
			Quantity:    int(it.Quantity),
			Price:       it.Price.Decimal,
		})
	}
	return order
}

func toPayment(in dto.CreatePaymentRequest) entity.Payment {
	typ := entity.DefaultPaymentType
	if in.Type != nil {
		typ = *in.Type
	}
	return entity.Payment{
		Amount:  in.Amount.Decimal,
		Type:    typ,
		Comment: in.Comment,
	}
}

// validateItemPrices completa la validación de precios (decimales fuera del alcance de los tags).
func validateItemPrices(items []dto.OrderItemRequest, errs *validation.Errors) {
	for i, it := range items {
		field := fmt.Sprintf("items[%d].price", i)
		switch {
		case !it.Price.Valid:
			errs.Add(field, "campo obligatorio")
		case it.Price.Decimal.IsNegative():
			errs.Add(field, "debe ser mayor o igual que 0")
		}
	}
}
