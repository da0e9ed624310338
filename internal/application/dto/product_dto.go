package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/StockScan-api/internal/domain/entity"
	"github.com/jhoicas/StockScan-api/internal/domain/inventory"
)

// Las claves JSON de este módulo son camelCase (warehousemanId, localisation,
// solde…) para mantener compatibilidad con el cliente móvil existente.

// CreateProductRequest submission de producto desde el formulario de creación.
// Los numéricos son punteros: nil = campo ausente, que Validate reporta como
// REQUIRED. stockName y city describen el almacén inicial del único StockEntry
// que se crea con el producto.
type CreateProductRequest struct {
	Name      string           `json:"name"`
	Type      string           `json:"type"`
	Barcode   string           `json:"barcode"`
	Price     *decimal.Decimal `json:"price"`
	Solde     *decimal.Decimal `json:"solde"`
	Supplier  string           `json:"supplier"`
	Image     string           `json:"image"`
	Quantity  *decimal.Decimal `json:"quantity"`
	StockName string           `json:"stockName"`
	City      string           `json:"city"`
}

// Submission convierte el request al candidato que evalúa el motor de validación.
func (r CreateProductRequest) Submission() inventory.Submission {
	return inventory.Submission{
		Name:     r.Name,
		Type:     r.Type,
		Barcode:  r.Barcode,
		Price:    r.Price,
		Solde:    r.Solde,
		Supplier: r.Supplier,
		Image:    r.Image,
		Quantity: r.Quantity,
	}
}

// StockEntryDTO {name, quantity, localisation:{city}}.
type StockEntryDTO struct {
	Name         string          `json:"name"`
	Quantity     int64           `json:"quantity"`
	Localisation LocalisationDTO `json:"localisation"`
}

// LocalisationDTO ciudad del almacén.
type LocalisationDTO struct {
	City string `json:"city"`
}

// EditRecordDTO {warehousemanId, at}; at es fecha calendario YYYY-MM-DD.
type EditRecordDTO struct {
	WarehousemanID int64  `json:"warehousemanId"`
	At             string `json:"at"`
}

// ProductResponse producto como lo consume el cliente, con el estado de stock
// derivado (no persistido) y la versión para concurrencia optimista.
type ProductResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Type        string          `json:"type"`
	Barcode     string          `json:"barcode"`
	Price       decimal.Decimal `json:"price"`
	Solde       decimal.Decimal `json:"solde"`
	Supplier    string          `json:"supplier"`
	Image       string          `json:"image"`
	Quantity    int64           `json:"quantity"`
	Stocks      []StockEntryDTO `json:"stocks"`
	EditedBy    []EditRecordDTO `json:"editedBy"`
	Version     int64           `json:"version"`
	StockStatus string          `json:"stockStatus"`
}

// ToProductResponse arma la respuesta a partir de la entidad.
func ToProductResponse(p *entity.Product) *ProductResponse {
	if p == nil {
		return nil
	}
	stocks := make([]StockEntryDTO, 0, len(p.Stocks))
	for _, s := range p.Stocks {
		stocks = append(stocks, StockEntryDTO{
			Name:         s.Name,
			Quantity:     s.Quantity,
			Localisation: LocalisationDTO{City: s.Localisation.City},
		})
	}
	edits := make([]EditRecordDTO, 0, len(p.EditedBy))
	for _, e := range p.EditedBy {
		edits = append(edits, EditRecordDTO{
			WarehousemanID: e.WarehousemanID,
			At:             e.At.Format(time.DateOnly),
		})
	}
	return &ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Type:        p.Type,
		Barcode:     p.Barcode,
		Price:       p.Price,
		Solde:       p.Solde,
		Supplier:    p.Supplier,
		Image:       p.Image,
		Quantity:    p.Quantity,
		Stocks:      stocks,
		EditedBy:    edits,
		Version:     p.Version,
		StockStatus: string(inventory.Status(p.Quantity)),
	}
}

// ResolveResponse decisión de enrutamiento tras un escaneo: con found=true el
// cliente navega al detalle; con found=false navega a creación con el barcode
// precargado.
type ResolveResponse struct {
	Found   bool             `json:"found"`
	Product *ProductResponse `json:"product,omitempty"`
	Barcode string           `json:"barcode,omitempty"`
}

// AdjustRequest petición de ajuste del ledger: {productId, operation, amount}.
type AdjustRequest struct {
	ProductID int64  `json:"productId"`
	Operation string `json:"operation"` // "restock" | "unload"
	Amount    int64  `json:"amount"`
}
