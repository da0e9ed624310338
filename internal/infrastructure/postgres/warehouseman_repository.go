package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/StockScan-api/internal/domain/entity"
	"github.com/jhoicas/StockScan-api/internal/domain/repository"
)

var _ repository.WarehousemanRepository = (*WarehousemanRepo)(nil)

// WarehousemanRepo lectura del registro de almacenistas sobre PostgreSQL.
type WarehousemanRepo struct {
	q Querier
}

// NewWarehousemanRepository construye el adaptador.
func NewWarehousemanRepository(q Querier) *WarehousemanRepo {
	return &WarehousemanRepo{q: q}
}

// List devuelve el registro completo (el registro es pequeño, no se pagina).
func (r *WarehousemanRepo) List(ctx context.Context) ([]*entity.Warehouseman, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, name, dob, city, secret_hash, warehouse_id, created_at
		FROM warehousemen ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list warehousemen: %w", err)
	}
	defer rows.Close()

	var list []*entity.Warehouseman
	for rows.Next() {
		var w entity.Warehouseman
		if err := rows.Scan(&w.ID, &w.Name, &w.DOB, &w.City, &w.SecretHash, &w.WarehouseID, &w.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan warehouseman: %w", err)
		}
		list = append(list, &w)
	}
	return list, rows.Err()
}

// GetByID devuelve (nil, nil) si no existe.
func (r *WarehousemanRepo) GetByID(ctx context.Context, id int64) (*entity.Warehouseman, error) {
	var w entity.Warehouseman
	err := r.q.QueryRow(ctx, `
		SELECT id, name, dob, city, secret_hash, warehouse_id, created_at
		FROM warehousemen WHERE id = $1`, id).
		Scan(&w.ID, &w.Name, &w.DOB, &w.City, &w.SecretHash, &w.WarehouseID, &w.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get warehouseman: %w", err)
	}
	return &w, nil
}
