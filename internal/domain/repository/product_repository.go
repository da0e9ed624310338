package repository

import (
	"context"

	"github.com/jhoicas/StockScan-api/internal/domain/entity"
)

// ProductRepository puerto de persistencia del catálogo (DIP). El catálogo es
// estado compartido entre muchos dispositivos: el core solo lo lee como snapshot
// y escribe reemplazos; Replace verifica la versión esperada para cerrar la
// carrera de lost-update (devuelve domain.ErrVersionConflict si otro dispositivo
// escribió primero).
type ProductRepository interface {
	// Snapshot devuelve el catálogo completo en orden estable.
	Snapshot(ctx context.Context) (entity.CatalogSnapshot, error)
	// GetByID devuelve (nil, nil) si no existe.
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	// Create asigna ID y Version inicial; domain.ErrDuplicate si el barcode ya existe.
	Create(ctx context.Context, product *entity.Product) error
	// Replace sustituye el producto solo si su versión actual es expectedVersion.
	Replace(ctx context.Context, product *entity.Product, expectedVersion int64) error
}
