package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/StockScan-api/internal/domain"
	"github.com/jhoicas/StockScan-api/internal/domain/entity"
	"github.com/jhoicas/StockScan-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación en memoria del catálogo, para tests y desarrollo
// local sin base de datos. Conserva el orden de inserción, que es el orden de
// catálogo que ven el resolver y el dashboard.
type ProductRepo struct {
	mu       sync.RWMutex
	products []entity.Product
	nextID   int64
}

// NewProductRepository construye el repositorio vacío.
func NewProductRepository() *ProductRepo {
	return &ProductRepo{nextID: 1}
}

// Snapshot devuelve una copia profunda del catálogo en orden de inserción.
func (r *ProductRepo) Snapshot(ctx context.Context) (entity.CatalogSnapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(entity.CatalogSnapshot, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p.Clone())
	}
	return out, nil
}

// GetByID devuelve (nil, nil) si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.products {
		if p.ID == id {
			c := p.Clone()
			return &c, nil
		}
	}
	return nil, nil
}

// Create asigna ID y versión inicial 1. Barcode repetido → domain.ErrDuplicate.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.products {
		if p.Barcode == product.Barcode {
			return domain.ErrDuplicate
		}
	}
	product.ID = r.nextID
	r.nextID++
	product.Version = 1
	r.products = append(r.products, product.Clone())
	return nil
}

// Replace sustituye el producto solo si su versión actual es expectedVersion;
// si otro escritor ganó, devuelve domain.ErrVersionConflict y no toca nada.
func (r *ProductRepo) Replace(ctx context.Context, product *entity.Product, expectedVersion int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.products {
		if p.ID != product.ID {
			continue
		}
		if p.Version != expectedVersion {
			return domain.ErrVersionConflict
		}
		product.Version = expectedVersion + 1
		r.products[i] = product.Clone()
		return nil
	}
	return domain.ErrNotFound
}
