package inventory

import "github.com/shopspring/decimal"

// Códigos de error de validación por campo.
const (
	CodeRequired = "REQUIRED"
	CodeFormat   = "FORMAT"
	CodeRange    = "RANGE"
)

// Submission candidato a producto antes de persistir. Los numéricos son punteros:
// nil significa que el campo no vino en el formulario.
type Submission struct {
	Name     string
	Type     string // intencionalmente sin validar
	Barcode  string
	Price    *decimal.Decimal
	Solde    *decimal.Decimal
	Supplier string
	Image    string
	Quantity *decimal.Decimal
}

// FieldError error de un campo: código estable + mensaje para el formulario.
type FieldError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationResult mapa campo → error. Vacío significa submission aceptable.
// Se conserva un solo error por campo: la última regla evaluada gana.
type ValidationResult map[string]FieldError

// Valid indica si la submission pasó todas las reglas.
func (r ValidationResult) Valid() bool { return len(r) == 0 }

// Validate evalúa todas las reglas sin cortocircuito, de modo que el formulario
// reciba de una vez todas las violaciones. Determinista, sin I/O.
//
// Huecos heredados del diseño original que se conservan a propósito: Type no se
// valida y Solde no se acota contra Price (puede superarlo).
func Validate(s Submission) ValidationResult {
	errs := ValidationResult{}

	if isBlank(s.Name) {
		errs["name"] = FieldError{CodeRequired, "Name is required."}
	}
	if isBlank(s.Barcode) {
		errs["barcode"] = FieldError{CodeRequired, "Barcode is required."}
	}
	if s.Price == nil {
		errs["price"] = FieldError{CodeRequired, "Price is required."}
	}
	if s.Solde == nil {
		errs["solde"] = FieldError{CodeRequired, "Solde is required."}
	}
	if isBlank(s.Supplier) {
		errs["supplier"] = FieldError{CodeRequired, "Supplier is required."}
	}
	if isBlank(s.Image) {
		errs["image"] = FieldError{CodeRequired, "Image is required."}
	}
	if s.Quantity == nil {
		errs["quantity"] = FieldError{CodeRequired, "Quantity is required."}
	}

	if s.Price != nil && !s.Price.IsPositive() {
		errs["price"] = FieldError{CodeRange, "Price must be a positive number."}
	}
	if s.Solde != nil && s.Solde.IsNegative() {
		errs["solde"] = FieldError{CodeRange, "Solde must be a non-negative number."}
	}
	if s.Quantity != nil && (s.Quantity.IsNegative() || !s.Quantity.IsInteger()) {
		errs["quantity"] = FieldError{CodeRange, "Quantity must be a non-negative integer."}
	}

	if !isBlank(s.Barcode) && !isAllDigits(s.Barcode) {
		errs["barcode"] = FieldError{CodeFormat, "Barcode must contain only numbers."}
	}

	return errs
}

func isBlank(s string) bool {
	for _, r := range s {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return false
		}
	}
	return true
}

func isAllDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
