package repository

import (
	"context"

	"github.com/jhoicas/StockScan-api/internal/domain/entity"
)

// WarehousemanRepository puerto de lectura del registro de almacenistas.
// Solo lectura para este core; el alta se hace vía seed o administración externa.
type WarehousemanRepository interface {
	// List devuelve el registro completo (decenas de filas, no se pagina).
	List(ctx context.Context) ([]*entity.Warehouseman, error)
	// GetByID devuelve (nil, nil) si no existe.
	GetByID(ctx context.Context, id int64) (*entity.Warehouseman, error)
}
