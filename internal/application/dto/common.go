package dto

import "github.com/jhoicas/crm-gateway/internal/application/validation"

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details validation.Errors `json:"details,omitempty"`
}
