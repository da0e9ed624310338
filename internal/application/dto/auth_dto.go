package dto

// LoginRequest código secreto presentado por el almacenista.
type LoginRequest struct {
	SecretCode string `json:"secretCode"`
}

// WarehousemanResponse datos públicos del almacenista autenticado
// (nunca incluye el hash del código).
type WarehousemanResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	City        string `json:"city"`
	WarehouseID int64  `json:"warehouseId"`
}

// LoginResponse token de sesión + almacenista.
type LoginResponse struct {
	Token        string               `json:"token"`
	Warehouseman WarehousemanResponse `json:"warehouseman"`
}
