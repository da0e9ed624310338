package catalog

import (
	"context"
	"fmt"

	"github.com/jhoicas/StockScan-api/internal/application/dto"
	"github.com/jhoicas/StockScan-api/internal/domain"
	"github.com/jhoicas/StockScan-api/internal/domain/inventory"
	"github.com/jhoicas/StockScan-api/internal/domain/repository"
)

// ScanUseCase resuelve un código de barras escaneado contra el catálogo y
// decide la ruta: detalle de producto existente o formulario de creación con
// el código precargado.
type ScanUseCase struct {
	productRepo repository.ProductRepository
}

// NewScanUseCase construye el caso de uso.
func NewScanUseCase(productRepo repository.ProductRepository) *ScanUseCase {
	return &ScanUseCase{productRepo: productRepo}
}

// Resolve toma un snapshot y busca la primera coincidencia exacta del código.
// "No encontrado" no es un error sino una señal de enrutamiento: el cliente
// pasa al flujo de creación.
func (uc *ScanUseCase) Resolve(ctx context.Context, code string) (*dto.ResolveResponse, error) {
	snapshot, err := uc.productRepo.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("scan: snapshot del catálogo: %w", err)
	}
	res := inventory.Resolve(code, snapshot)
	if !res.Found {
		return &dto.ResolveResponse{Found: false, Barcode: code}, nil
	}
	product, err := uc.productRepo.GetByID(ctx, res.ProductID)
	if err != nil {
		return nil, fmt.Errorf("scan: producto %d: %w", res.ProductID, err)
	}
	if product == nil {
		// el snapshot y la fila pueden divergir si otro dispositivo escribió en medio
		return nil, domain.ErrNotFound
	}
	return &dto.ResolveResponse{Found: true, Product: dto.ToProductResponse(product)}, nil
}
