package dto

// CreateCustomerRequest body para POST /api/customers.
type CreateCustomerRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone,omitempty"`
}

// ListCustomersQuery filtros de GET /api/customers. Todos opcionales.
// RegisteredFrom se envía al CRM como createdAtFrom.
type ListCustomersQuery struct {
	Name           string `query:"name"`
	Email          string `query:"email"`
	RegisteredFrom string `query:"registered_from"`
}
