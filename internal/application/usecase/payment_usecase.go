package usecase

import (
	"context"

	"github.com/jhoicas/crm-gateway/internal/application/dto"
	"github.com/jhoicas/crm-gateway/internal/application/ports"
	"github.com/jhoicas/crm-gateway/internal/application/validation"
	"github.com/jhoicas/crm-gateway/internal/domain/crm"
)

// PaymentUseCase casos de uso de pagos de pedidos.
type PaymentUseCase struct {
	crm       ports.CRMClient
	validator *validation.Validator
}

// NewPaymentUseCase construye el caso de uso.
func NewPaymentUseCase(client ports.CRMClient, v *validation.Validator) *PaymentUseCase {
	if v == nil {
		v = validation.New()
	}
	return &PaymentUseCase{crm: client, validator: v}
}

// CreateForOrder registra un pago para el pedido orderID (id interno del CRM, llega por la ruta).
func (uc *PaymentUseCase) CreateForOrder(ctx context.Context, orderID string, in dto.CreatePaymentRequest) (any, error) {
	errs := uc.validator.Struct(in)
	if orderID == "" {
		errs.Add("order_id", "campo obligatorio")
	}
	if !in.Amount.Valid {
		errs.Add("amount", "campo obligatorio")
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}

	form, err := crm.EncodeForm(crm.FieldPayment, crm.MapPayment(toPayment(in), orderID))
	if err != nil {
		return nil, err
	}
	return uc.crm.PostForm(ctx, crm.PathPaymentsCreate, form)
}
