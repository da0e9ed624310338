package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/StockScan-api/internal/application/dto"
	"github.com/jhoicas/StockScan-api/internal/domain"
	"github.com/jhoicas/StockScan-api/internal/domain/inventory"
	"github.com/jhoicas/StockScan-api/internal/domain/repository"
)

// AdjustUseCase aplica un ajuste del ledger (restock/unload) sobre un producto
// y compromete el reemplazo con verificación de versión.
//
// Dos dispositivos pueden leer el mismo producto y ajustar en paralelo; el
// segundo Replace pierde y recibe domain.ErrVersionConflict en lugar de pisar
// silenciosamente la escritura del primero (lost update).
type AdjustUseCase struct {
	productRepo repository.ProductRepository
	now         func() time.Time
}

// NewAdjustUseCase construye el caso de uso; now se inyecta para fechar los
// EditRecord (time.Now en producción).
func NewAdjustUseCase(productRepo repository.ProductRepository, now func() time.Time) *AdjustUseCase {
	if now == nil {
		now = time.Now
	}
	return &AdjustUseCase{productRepo: productRepo, now: now}
}

// Adjust carga el producto, calcula el reemplazo en el dominio y lo compromete.
// Errores posibles: ErrNotFound, ErrInvalidAmount, ErrInsufficientStock,
// ErrVersionConflict. En todos los casos el producto original queda intacto.
func (uc *AdjustUseCase) Adjust(ctx context.Context, actorID int64, in dto.AdjustRequest) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, fmt.Errorf("adjust: producto %d: %w", in.ProductID, err)
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	updated, err := inventory.Adjust(*product, inventory.Operation(in.Operation), in.Amount, actorID, uc.now())
	if err != nil {
		return nil, err
	}

	if err := uc.productRepo.Replace(ctx, &updated, product.Version); err != nil {
		return nil, err
	}
	return dto.ToProductResponse(&updated), nil
}
