package http

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/crm-gateway/internal/application/validation"
)

// pathParam devuelve el parámetro de ruta name ya decodificado (fiber lo entrega tal cual
// llega en la URL). field es el nombre con el que se reporta si el escape es inválido.
func pathParam(c *fiber.Ctx, name, field string) (string, error) {
	raw := c.Params(name)
	v, err := url.PathUnescape(raw)
	if err != nil {
		return "", validation.Errors{{Field: field, Message: "codificación inválida"}}
	}
	return v, nil
}
