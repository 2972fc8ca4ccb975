package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrTransport         = errors.New("fallo de transporte con el CRM")
	ErrCRMNotConfigured  = errors.New("cliente CRM no configurado")
	ErrSiteNotConfigured = errors.New("site del CRM no configurado")
)
