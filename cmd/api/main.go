package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/crm-gateway/internal/application/usecase"
	"github.com/jhoicas/crm-gateway/internal/application/validation"
	"github.com/jhoicas/crm-gateway/internal/infrastructure/metrics"
	"github.com/jhoicas/crm-gateway/internal/infrastructure/retailcrm"
	httpRouter "github.com/jhoicas/crm-gateway/internal/interfaces/http"
	"github.com/jhoicas/crm-gateway/pkg/config"
	"github.com/jhoicas/crm-gateway/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("crm_url", cfg.CRM.APIURL).
		Str("site", cfg.CRM.Site).
		Msg("iniciando aplicación")

	crmClient, err := retailcrm.NewClient(cfg.CRM.APIURL, cfg.CRM.APIKey, log,
		retailcrm.WithMetrics(metrics.NewCRMMetrics()),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("cliente RetailCRM")
	}

	v := validation.New()
	customerUC := usecase.NewCustomerUseCase(crmClient, v)
	paymentUC := usecase.NewPaymentUseCase(crmClient, v)
	orderUC, err := usecase.NewOrderUseCase(crmClient, v, cfg.CRM.Site)
	if err != nil {
		log.Fatal().Err(err).Msg("caso de uso de pedidos")
	}

	// Sin timeouts de escritura: la llamada al CRM no tiene límite propio y
	// solo se corta cuando el cliente cancela la petición.
	app := fiber.New(fiber.Config{
		AppName:     cfg.App.Name,
		ReadTimeout: time.Second * 10,
		IdleTimeout: time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "CRM Gateway API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		CustomerUC: customerUC,
		OrderUC:    orderUC,
		PaymentUC:  paymentUC,
		Log:        log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
