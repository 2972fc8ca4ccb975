package ports

import (
	"context"
	"net/url"
)

// CRMClient puerto de salida hacia la API HTTP del CRM.
// Las respuestas se devuelven decodificadas y sin interpretar, sea cual sea el status HTTP:
// los errores de aplicación del CRM viajan en el cuerpo hasta el cliente del gateway.
// Solo los fallos de red o un cuerpo que no es JSON se reportan como error (domain.ErrTransport).
type CRMClient interface {
	// Get hace GET a path con los parámetros de query indicados.
	Get(ctx context.Context, path string, params url.Values) (any, error)
	// PostForm hace POST a path con form como cuerpo x-www-form-urlencoded.
	PostForm(ctx context.Context, path string, form url.Values) (any, error)
}
