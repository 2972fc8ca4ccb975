package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/jhoicas/crm-gateway/pkg/logger"
)

// HeaderRequestID cabecera con el id de la petición (se respeta si el cliente la envía).
const HeaderRequestID = "X-Request-ID"

// RequestID asigna un UUID a cada petición y lo deja en la respuesta.
func RequestID() fiber.Handler {
	return requestid.New(requestid.Config{
		Header:    HeaderRequestID,
		Generator: uuid.NewString,
	})
}

// GetRequestID devuelve el id asignado por RequestID.
func GetRequestID(c *fiber.Ctx) string {
	s, _ := c.Locals("requestid").(string)
	return s
}

// RequestLogger registra método, ruta, status y duración de cada petición.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		ev := log.Info()
		if err != nil {
			ev = log.Error().Err(err)
		}
		ev.Str("request_id", GetRequestID(c)).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("elapsed", time.Since(start)).
			Msg("http request")
		return err
	}
}
