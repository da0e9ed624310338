package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/StockScan-api/internal/domain"
	"github.com/jhoicas/StockScan-api/internal/domain/entity"
	"github.com/jhoicas/StockScan-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
// Stocks y EditedBy se guardan como JSONB; version implementa la concurrencia
// optimista que serializa los ajustes concurrentes por producto.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia del catálogo.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, name, type, barcode, price, solde, supplier, image, quantity, stocks, edited_by, version, created_at, updated_at`

// Snapshot devuelve el catálogo completo en orden de creación (orden estable de
// catálogo para resolver y dashboard).
func (r *ProductRepo) Snapshot(ctx context.Context) (entity.CatalogSnapshot, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+productColumns+` FROM products ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("snapshot products: %w", err)
	}
	defer rows.Close()

	snapshot := entity.CatalogSnapshot{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		snapshot = append(snapshot, *p)
	}
	return snapshot, rows.Err()
}

// GetByID obtiene un producto por ID; (nil, nil) si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	row := r.q.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// Create persiste un producto nuevo con versión inicial 1 y asigna el ID.
// Barcode repetido → domain.ErrDuplicate (constraint único).
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	stocks, editedBy, err := marshalJSONB(product)
	if err != nil {
		return err
	}
	err = r.q.QueryRow(ctx, `
		INSERT INTO products (name, type, barcode, price, solde, supplier, image, quantity, stocks, edited_by, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, 1, $11, $12)
		RETURNING id`,
		product.Name, product.Type, product.Barcode, product.Price, product.Solde,
		product.Supplier, product.Image, product.Quantity, stocks, editedBy,
		product.CreatedAt, product.UpdatedAt,
	).Scan(&product.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	product.Version = 1
	return nil
}

// Replace sustituye el producto solo si la fila sigue en expectedVersion; la
// versión se incrementa en la misma sentencia. Cero filas afectadas significa
// que no existe o que otro dispositivo escribió primero.
func (r *ProductRepo) Replace(ctx context.Context, product *entity.Product, expectedVersion int64) error {
	stocks, editedBy, err := marshalJSONB(product)
	if err != nil {
		return err
	}
	cmd, err := r.q.Exec(ctx, `
		UPDATE products
		SET name = $3, type = $4, barcode = $5, price = $6, solde = $7, supplier = $8,
		    image = $9, quantity = $10, stocks = $11, edited_by = $12,
		    version = version + 1, updated_at = $13
		WHERE id = $1 AND version = $2`,
		product.ID, expectedVersion,
		product.Name, product.Type, product.Barcode, product.Price, product.Solde,
		product.Supplier, product.Image, product.Quantity, stocks, editedBy,
		product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("replace product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		// distinguir producto inexistente de escritura perdida
		existing, err := r.GetByID(ctx, product.ID)
		if err != nil {
			return err
		}
		if existing == nil {
			return domain.ErrNotFound
		}
		return domain.ErrVersionConflict
	}
	product.Version = expectedVersion + 1
	return nil
}

func marshalJSONB(p *entity.Product) (stocks, editedBy []byte, err error) {
	if stocks, err = json.Marshal(p.Stocks); err != nil {
		return nil, nil, fmt.Errorf("marshal stocks: %w", err)
	}
	if editedBy, err = json.Marshal(p.EditedBy); err != nil {
		return nil, nil, fmt.Errorf("marshal edited_by: %w", err)
	}
	return stocks, editedBy, nil
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	var stocks, editedBy []byte
	err := row.Scan(
		&p.ID, &p.Name, &p.Type, &p.Barcode, &p.Price, &p.Solde, &p.Supplier,
		&p.Image, &p.Quantity, &stocks, &editedBy, &p.Version, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(stocks, &p.Stocks); err != nil {
		return nil, fmt.Errorf("unmarshal stocks: %w", err)
	}
	if err := json.Unmarshal(editedBy, &p.EditedBy); err != nil {
		return nil, fmt.Errorf("unmarshal edited_by: %w", err)
	}
	return &p, nil
}
