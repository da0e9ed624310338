package dto

import "github.com/shopspring/decimal"

// DashboardStatsDTO respuesta de GET /api/dashboard/summary.
// totalStockValue se calcula con el precio regular (no el solde) y se
// redondea a 2 decimales.
type DashboardStatsDTO struct {
	TotalProducts          int               `json:"totalProducts"`
	TotalWarehouses        int               `json:"totalWarehouses"`
	OutOfStockProducts     []ProductResponse `json:"outOfStockProducts"`
	TotalStockValue        decimal.Decimal   `json:"totalStockValue"`
	RecentActivityProducts []ProductResponse `json:"recentActivityProducts"`
}
