package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/crm-gateway/internal/application/dto"
	"github.com/jhoicas/crm-gateway/internal/application/usecase"
)

// OrderHandler maneja las peticiones HTTP de pedidos y pagos.
type OrderHandler struct {
	orders   *usecase.OrderUseCase
	payments *usecase.PaymentUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(orders *usecase.OrderUseCase, payments *usecase.PaymentUseCase) *OrderHandler {
	return &OrderHandler{orders: orders, payments: payments}
}

// ListForCustomer godoc
// @Summary      Pedidos de un cliente
// @Tags         orders
// @Produce      json
// @Param        customerId  path  string  true  "ID del cliente en el CRM"
// @Success      200  {object}  map[string]interface{}  "Respuesta del CRM sin modificar"
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/customers/{customerId}/orders [get]
func (h *OrderHandler) ListForCustomer(c *fiber.Ctx) error {
	customerID, err := pathParam(c, "customerId", "customer_id")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.orders.ListForCustomer(c.UserContext(), customerID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear pedido en el CRM
// @Description  customer_id (cliente existente) tiene prioridad sobre customer (cliente nuevo embebido).
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "Pedido"
// @Success      200   {object}  map[string]interface{}  "Respuesta del CRM sin modificar"
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.orders.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreatePayment godoc
// @Summary      Registrar pago de un pedido
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        orderId  path  string                    true  "ID del pedido en el CRM"
// @Param        body     body  dto.CreatePaymentRequest  true  "Pago (type por defecto: cash)"
// @Success      200      {object}  map[string]interface{}  "Respuesta del CRM sin modificar"
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      502      {object}  dto.ErrorResponse
// @Router       /api/orders/{orderId}/payments [post]
func (h *OrderHandler) CreatePayment(c *fiber.Ctx) error {
	orderID, err := pathParam(c, "orderId", "order_id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.CreatePaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.payments.CreateForOrder(c.UserContext(), orderID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
