package inventory

import (
	"time"

	"github.com/jhoicas/StockScan-api/internal/domain"
	"github.com/jhoicas/StockScan-api/internal/domain/entity"
)

// Operation tipo de ajuste del ledger. Los ajustes son deltas, no valores
// absolutos: aplicar dos veces el mismo ajuste produce dos deltas, que es la
// semántica correcta de restock/unload.
type Operation string

const (
	OperationRestock Operation = "restock"
	OperationUnload  Operation = "unload"
)

// LowStockThreshold política fija: por debajo de 10 unidades el stock es "bajo".
const LowStockThreshold = 10

// StockStatus estado derivado para mostrar; no se persiste.
type StockStatus string

const (
	StatusExhausted StockStatus = "exhausted"
	StatusLow       StockStatus = "low"
	StatusInStock   StockStatus = "in stock"
)

// Adjust aplica un restock o unload sobre el producto y devuelve un reemplazo
// con la cantidad nueva y un EditRecord del actor; el producto de entrada queda
// intacto (el caller es responsable de comprometer el reemplazo en la fuente de
// verdad, con verificación de versión).
//
// Precondiciones: amount debe ser un entero positivo (ErrInvalidAmount antes de
// tocar cantidad). Unload con resultado negativo falla con ErrInsufficientStock
// sin aplicación parcial.
func Adjust(p entity.Product, op Operation, amount int64, actorID int64, now time.Time) (entity.Product, error) {
	if amount <= 0 {
		return entity.Product{}, domain.ErrInvalidAmount
	}

	var newQuantity int64
	switch op {
	case OperationRestock:
		newQuantity = p.Quantity + amount
	case OperationUnload:
		newQuantity = p.Quantity - amount
		if newQuantity < 0 {
			return entity.Product{}, domain.ErrInsufficientStock
		}
	default:
		return entity.Product{}, domain.ErrInvalidAmount
	}

	out := p.Clone()
	out.Quantity = newQuantity
	out.EditedBy = append(out.EditedBy, entity.EditRecord{WarehousemanID: actorID, At: now})
	out.UpdatedAt = now
	return out, nil
}

// Status deriva el estado de stock para la ficha del producto.
func Status(quantity int64) StockStatus {
	switch {
	case quantity == 0:
		return StatusExhausted
	case quantity < LowStockThreshold:
		return StatusLow
	default:
		return StatusInStock
	}
}
