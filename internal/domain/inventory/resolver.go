package inventory

import "github.com/jhoicas/StockScan-api/internal/domain/entity"

// Resolution decisión de enrutamiento tras escanear un código: producto existente
// (detalle) o producto nuevo (formulario de creación con el código precargado).
type Resolution struct {
	Found     bool
	ProductID int64
}

// Resolve busca el primer producto del snapshot cuyo código de barras sea
// exactamente igual al código escaneado. Sin normalización: la igualdad es
// estricta y sensible a mayúsculas. Un código vacío o malformado simplemente
// no coincide con nada; validar el formato es trabajo del Validate de creación.
//
// Escaneo lineal O(n), suficiente para catálogos de cientos a pocos miles de
// SKUs; si crece, cambiar por un índice sin tocar el contrato.
func Resolve(code string, catalog entity.CatalogSnapshot) Resolution {
	for _, p := range catalog {
		if p.Barcode == code {
			return Resolution{Found: true, ProductID: p.ID}
		}
	}
	return Resolution{}
}
