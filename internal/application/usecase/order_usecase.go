package usecase

import (
	"context"
	"fmt"
	"net/url"

	"github.com/jhoicas/crm-gateway/internal/application/dto"
	"github.com/jhoicas/crm-gateway/internal/application/ports"
	"github.com/jhoicas/crm-gateway/internal/application/validation"
	"github.com/jhoicas/crm-gateway/internal/domain"
	"github.com/jhoicas/crm-gateway/internal/domain/crm"
)

// OrderUseCase casos de uso de pedidos. site es el código de tienda que se asigna a todo pedido.
type OrderUseCase struct {
	crm       ports.CRMClient
	validator *validation.Validator
	site      string
}

// NewOrderUseCase construye el caso de uso. site vacío es un error de configuración.
func NewOrderUseCase(client ports.CRMClient, v *validation.Validator, site string) (*OrderUseCase, error) {
	if site == "" {
		return nil, domain.ErrSiteNotConfigured
	}
	if v == nil {
		v = validation.New()
	}
	return &OrderUseCase{crm: client, validator: v, site: site}, nil
}

// ListForCustomer lista los pedidos de un cliente del CRM.
func (uc *OrderUseCase) ListForCustomer(ctx context.Context, customerID string) (any, error) {
	if customerID == "" {
		return nil, validation.Errors{{Field: "customer_id", Message: "campo obligatorio"}}
	}
	params := url.Values{}
	params.Set(crm.ParamFilterCustomerID, customerID)
	return uc.crm.Get(ctx, crm.PathOrders, params)
}

// Create valida el pedido y lo crea en el CRM.
func (uc *OrderUseCase) Create(ctx context.Context, in dto.CreateOrderRequest) (any, error) {
	errs := uc.validator.Struct(in)
	validateItemPrices(in.Items, &errs)
	if err := errs.Err(); err != nil {
		return nil, err
	}

	order, err := crm.MapOrder(toOrder(in), uc.site)
	if err != nil {
		return nil, fmt.Errorf("mapear pedido %s: %w", in.Number, err)
	}
	form, err := crm.EncodeForm(crm.FieldOrder, order)
	if err != nil {
		return nil, err
	}
	return uc.crm.PostForm(ctx, crm.PathOrdersCreate, form)
}
