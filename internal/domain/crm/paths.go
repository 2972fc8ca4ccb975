package crm

// Rutas de la API del CRM, relativas a la URL base (que ya incluye /api/v5).
const (
	PathCustomers       = "/customers"
	PathCustomersCreate = "/customers/create"
	PathOrders          = "/orders"
	PathOrdersCreate    = "/orders/create"
	PathPaymentsCreate  = "/orders/payments/create"
)

// Parámetros de query de los listados.
const (
	ParamName             = "name"
	ParamEmail            = "email"
	ParamCreatedAtFrom    = "createdAtFrom"
	ParamFilterCustomerID = "filter[customerId]"
)
