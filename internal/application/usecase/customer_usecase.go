package usecase

import (
	"context"
	"net/url"

	"github.com/jhoicas/crm-gateway/internal/application/dto"
	"github.com/jhoicas/crm-gateway/internal/application/ports"
	"github.com/jhoicas/crm-gateway/internal/application/validation"
	"github.com/jhoicas/crm-gateway/internal/domain/crm"
)

// CustomerUseCase casos de uso de clientes contra el CRM.
type CustomerUseCase struct {
	crm       ports.CRMClient
	validator *validation.Validator
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(client ports.CRMClient, v *validation.Validator) *CustomerUseCase {
	if v == nil {
		v = validation.New()
	}
	return &CustomerUseCase{crm: client, validator: v}
}

// List lista clientes del CRM. Solo se envían los filtros informados;
// registered_from viaja como createdAtFrom.
func (uc *CustomerUseCase) List(ctx context.Context, q dto.ListCustomersQuery) (any, error) {
	params := url.Values{}
	if q.Name != "" {
		params.Set(crm.ParamName, q.Name)
	}
	if q.Email != "" {
		params.Set(crm.ParamEmail, q.Email)
	}
	if q.RegisteredFrom != "" {
		params.Set(crm.ParamCreatedAtFrom, q.RegisteredFrom)
	}
	return uc.crm.Get(ctx, crm.PathCustomers, params)
}

// Create valida el cliente y lo crea en el CRM.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CreateCustomerRequest) (any, error) {
	if err := uc.validator.Struct(in).Err(); err != nil {
		return nil, err
	}
	form, err := crm.EncodeForm(crm.FieldCustomer, crm.MapCustomer(toCustomer(in)))
	if err != nil {
		return nil, err
	}
	return uc.crm.PostForm(ctx, crm.PathCustomersCreate, form)
}
