package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo identificado por su código de barras.
// Quantity es el agregado por producto; Stocks detalla en qué almacén se guardó al
// crearlo. Version soporta concurrencia optimista: cada reemplazo la incrementa.
type Product struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Type     string          `json:"type"`
	Barcode  string          `json:"barcode"` // solo dígitos, único en el catálogo
	Price    decimal.Decimal `json:"price"`   // precio regular
	Solde    decimal.Decimal `json:"solde"`   // precio rebajado (0 ≤ solde)
	Supplier string          `json:"supplier"`
	Image    string          `json:"image"`
	Quantity int64           `json:"quantity"`
	Stocks   []StockEntry    `json:"stocks"`
	EditedBy []EditRecord    `json:"editedBy"`
	Version  int64           `json:"version"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// StockEntry cantidad guardada en un almacén con nombre propio.
// Invariante: Quantity ≥ 0.
type StockEntry struct {
	Name         string       `json:"name"`
	Quantity     int64        `json:"quantity"`
	Localisation Localisation `json:"localisation"`
}

// Localisation ciudad donde se ubica el almacén de un StockEntry.
type Localisation struct {
	City string `json:"city"`
}

// EditRecord entrada de auditoría append-only: quién tocó el producto y cuándo.
type EditRecord struct {
	WarehousemanID int64     `json:"warehousemanId"`
	At             time.Time `json:"at"`
}

// LastEditedAt devuelve la fecha del último EditRecord y false si nunca fue editado.
// Los registros llegan ordenados por fecha, pero se recorre completo por si acaso
// una importación externa los dejó fuera de orden.
func (p Product) LastEditedAt() (time.Time, bool) {
	if len(p.EditedBy) == 0 {
		return time.Time{}, false
	}
	latest := p.EditedBy[0].At
	for _, e := range p.EditedBy[1:] {
		if e.At.After(latest) {
			latest = e.At
		}
	}
	return latest, true
}

// Clone devuelve una copia profunda; el ledger opera sobre copias y nunca muta
// el producto de entrada.
func (p Product) Clone() Product {
	out := p
	out.Stocks = append([]StockEntry(nil), p.Stocks...)
	out.EditedBy = append([]EditRecord(nil), p.EditedBy...)
	return out
}
