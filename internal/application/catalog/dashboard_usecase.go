package catalog

import (
	"context"
	"fmt"

	"github.com/jhoicas/StockScan-api/internal/application/dto"
	"github.com/jhoicas/StockScan-api/internal/domain/entity"
	"github.com/jhoicas/StockScan-api/internal/domain/inventory"
	"github.com/jhoicas/StockScan-api/internal/domain/repository"
)

// DashboardUseCase deriva las estadísticas del dashboard desde un snapshot del
// catálogo. Toda la lógica vive en inventory.Summarize; aquí solo se adapta a DTO.
type DashboardUseCase struct {
	productRepo repository.ProductRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(productRepo repository.ProductRepository) *DashboardUseCase {
	return &DashboardUseCase{productRepo: productRepo}
}

// GetStats construye el DashboardStatsDTO. Catálogo vacío produce contadores en
// cero y listas vacías.
func (uc *DashboardUseCase) GetStats(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	snapshot, err := uc.productRepo.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: snapshot del catálogo: %w", err)
	}
	stats := inventory.Summarize(snapshot)
	return &dto.DashboardStatsDTO{
		TotalProducts:          stats.TotalProducts,
		TotalWarehouses:        stats.TotalWarehouses,
		OutOfStockProducts:     toResponses(stats.OutOfStock),
		TotalStockValue:        stats.TotalStockValue.Round(2),
		RecentActivityProducts: toResponses(stats.RecentActivity),
	}, nil
}

func toResponses(products []entity.Product) []dto.ProductResponse {
	out := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, *dto.ToProductResponse(&products[i]))
	}
	return out
}
