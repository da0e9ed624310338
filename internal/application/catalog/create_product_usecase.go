package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/StockScan-api/internal/application/dto"
	"github.com/jhoicas/StockScan-api/internal/domain"
	"github.com/jhoicas/StockScan-api/internal/domain/entity"
	"github.com/jhoicas/StockScan-api/internal/domain/inventory"
	"github.com/jhoicas/StockScan-api/internal/domain/repository"
)

// CreateProductUseCase valida una submission y la añade al catálogo con el
// EditRecord del creador.
type CreateProductUseCase struct {
	productRepo repository.ProductRepository
	now         func() time.Time
}

// NewCreateProductUseCase construye el caso de uso; now se inyecta para fechar
// el EditRecord inicial (time.Now en producción).
func NewCreateProductUseCase(productRepo repository.ProductRepository, now func() time.Time) *CreateProductUseCase {
	if now == nil {
		now = time.Now
	}
	return &CreateProductUseCase{productRepo: productRepo, now: now}
}

// Create pasa la submission por el motor de validación y, si es aceptable,
// persiste el producto con un único StockEntry inicial.
//
// Devuelve el mapa de violaciones cuando la validación falla (err == nil en ese
// caso: el caller distingue por verr). Barcode repetido → domain.ErrDuplicate.
func (uc *CreateProductUseCase) Create(ctx context.Context, actorID int64, in dto.CreateProductRequest) (*dto.ProductResponse, inventory.ValidationResult, error) {
	verr := inventory.Validate(in.Submission())
	if !verr.Valid() {
		return nil, verr, nil
	}

	snapshot, err := uc.productRepo.Snapshot(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("create: snapshot del catálogo: %w", err)
	}
	if res := inventory.Resolve(in.Barcode, snapshot); res.Found {
		return nil, nil, domain.ErrDuplicate
	}

	now := uc.now()
	quantity := in.Quantity.IntPart() // Validate ya garantizó entero no negativo
	product := &entity.Product{
		Name:     in.Name,
		Type:     in.Type,
		Barcode:  in.Barcode,
		Price:    *in.Price,
		Solde:    *in.Solde,
		Supplier: in.Supplier,
		Image:    in.Image,
		Quantity: quantity,
		Stocks: []entity.StockEntry{{
			Name:         in.StockName,
			Quantity:     quantity,
			Localisation: entity.Localisation{City: in.City},
		}},
		EditedBy:  []entity.EditRecord{{WarehousemanID: actorID, At: now}},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, nil, err
	}
	return dto.ToProductResponse(product), nil, nil
}
