package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/StockScan-api/internal/domain/entity"
	"github.com/jhoicas/StockScan-api/internal/domain/repository"
)

var _ repository.WarehousemanRepository = (*WarehousemanRepo)(nil)

// WarehousemanRepo registro de almacenistas en memoria (tests y desarrollo).
type WarehousemanRepo struct {
	mu     sync.RWMutex
	rows   []entity.Warehouseman
	nextID int64
}

// NewWarehousemanRepository construye el registro vacío.
func NewWarehousemanRepository() *WarehousemanRepo {
	return &WarehousemanRepo{nextID: 1}
}

// Add registra un almacenista (solo para seed/tests; el puerto es de lectura).
// Respeta el ID si viene asignado, para poder sembrar los IDs conocidos.
func (r *WarehousemanRepo) Add(w entity.Warehouseman) entity.Warehouseman {
	r.mu.Lock()
	defer r.mu.Unlock()
	if w.ID == 0 {
		w.ID = r.nextID
	}
	if w.ID >= r.nextID {
		r.nextID = w.ID + 1
	}
	r.rows = append(r.rows, w)
	return w
}

// List devuelve el registro completo.
func (r *WarehousemanRepo) List(ctx context.Context) ([]*entity.Warehouseman, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Warehouseman, 0, len(r.rows))
	for i := range r.rows {
		w := r.rows[i]
		out = append(out, &w)
	}
	return out, nil
}

// GetByID devuelve (nil, nil) si no existe.
func (r *WarehousemanRepo) GetByID(ctx context.Context, id int64) (*entity.Warehouseman, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.rows {
		if r.rows[i].ID == id {
			w := r.rows[i]
			return &w, nil
		}
	}
	return nil, nil
}
