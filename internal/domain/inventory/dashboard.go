package inventory

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/StockScan-api/internal/domain/entity"
)

const recentActivityLimit = 5 // productos en el widget de actividad reciente

// Stats resumen agregado del catálogo para el dashboard.
type Stats struct {
	TotalProducts   int
	TotalWarehouses int
	OutOfStock      []entity.Product
	TotalStockValue decimal.Decimal
	RecentActivity  []entity.Product
}

// Summarize deriva las estadísticas del dashboard a partir de un snapshot.
// Pura, O(n log n) dominada por el orden de recencia. Catálogo vacío produce
// contadores en cero y listas vacías, no un error.
//
// La valuación usa el precio regular, no el solde.
func Summarize(catalog entity.CatalogSnapshot) Stats {
	stats := Stats{
		TotalProducts:   len(catalog),
		OutOfStock:      []entity.Product{},
		TotalStockValue: decimal.Zero,
		RecentActivity:  []entity.Product{},
	}

	warehouses := make(map[string]struct{})
	for _, p := range catalog {
		for _, s := range p.Stocks {
			warehouses[s.Name] = struct{}{}
		}
		if p.Quantity == 0 {
			// en orden de catálogo
			stats.OutOfStock = append(stats.OutOfStock, p)
		}
		stats.TotalStockValue = stats.TotalStockValue.Add(
			p.Price.Mul(decimal.NewFromInt(p.Quantity)))
	}
	stats.TotalWarehouses = len(warehouses)

	// Top 5 por último EditRecord descendente; sin ediciones al final.
	// Orden estable: a igual fecha se conserva el orden relativo del catálogo.
	ranked := append([]entity.Product(nil), catalog...)
	sort.SliceStable(ranked, func(i, j int) bool {
		ti, oki := ranked[i].LastEditedAt()
		tj, okj := ranked[j].LastEditedAt()
		if oki != okj {
			return oki
		}
		if !oki {
			return false
		}
		return ti.After(tj)
	})
	if len(ranked) > recentActivityLimit {
		ranked = ranked[:recentActivityLimit]
	}
	stats.RecentActivity = ranked

	return stats
}
