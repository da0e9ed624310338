package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Ninguno es fatal: los handlers los traducen a respuestas estructuradas.
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInvalidAmount     = errors.New("cantidad de ajuste inválida")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrAuthMismatch      = errors.New("ningún almacenista coincide con el código")
	ErrVersionConflict   = errors.New("el producto fue modificado por otro dispositivo")
)
