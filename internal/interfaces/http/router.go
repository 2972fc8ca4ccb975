package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/crm-gateway/internal/application/usecase"
	"github.com/jhoicas/crm-gateway/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CustomerUC *usecase.CustomerUseCase
	OrderUC    *usecase.OrderUseCase
	PaymentUC  *usecase.PaymentUseCase
	Log        *logger.Logger
}

// Router registra las rutas de la API. Sin autenticación: el gateway es interno.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	api := app.Group("/api", RequestID(), RequestLogger(log.With("http")))

	customerHandler := NewCustomerHandler(deps.CustomerUC)
	orderHandler := NewOrderHandler(deps.OrderUC, deps.PaymentUC)

	customers := api.Group("/customers")
	customers.Get("/", customerHandler.List)
	customers.Post("/", customerHandler.Create)
	customers.Get("/:customerId/orders", orderHandler.ListForCustomer)

	orders := api.Group("/orders")
	orders.Post("/", orderHandler.Create)
	orders.Post("/:orderId/payments", orderHandler.CreatePayment)
}
