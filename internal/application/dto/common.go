package dto

import "github.com/jhoicas/StockScan-api/internal/domain/inventory"

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationErrorResponse error de validación con el mapa campo → error,
// para que el formulario muestre todas las violaciones de una vez.
type ValidationErrorResponse struct {
	Code   string                     `json:"code"` // siempre VALIDATION_FAILED
	Errors inventory.ValidationResult `json:"errors"`
}
