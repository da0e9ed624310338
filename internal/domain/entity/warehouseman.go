package entity

import "time"

// Warehouseman almacenista que opera la aplicación móvil. Datos de referencia:
// se crean vía seed o administración externa, nunca desde este servicio.
// SecretHash es el hash bcrypt del código secreto; el código plano no se persiste.
type Warehouseman struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	DOB         string `json:"dob"` // fecha de nacimiento YYYY-MM-DD
	City        string `json:"city"`
	SecretHash  string `json:"-"`
	WarehouseID int64  `json:"warehouseId"`

	CreatedAt time.Time `json:"createdAt"`
}
