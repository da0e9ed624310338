// seed puebla la base con los almacenistas del registro inicial y un catálogo
// de demostración. Los códigos secretos se hashean con bcrypt antes de insertar;
// el código en claro nunca toca la base.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/StockScan-api/internal/domain/entity"
	"github.com/jhoicas/StockScan-api/internal/infrastructure/postgres"
	"github.com/jhoicas/StockScan-api/pkg/config"
)

type seedWarehouseman struct {
	id          int64
	name        string
	dob         string
	city        string
	secretCode  string
	warehouseID int64
}

var warehousemen = []seedWarehouseman{
	{id: 1333, name: "Amine Boutaleb", dob: "1998-07-01", city: "Oujda", secretCode: "AH90907J", warehouseID: 1999},
	{id: 1444, name: "Karim El Mansouri", dob: "1995-12-11", city: "Marrakesh", secretCode: "RK189987A", warehouseID: 2991},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	for _, w := range warehousemen {
		hash, err := bcrypt.GenerateFromPassword([]byte(w.secretCode), bcrypt.DefaultCost)
		if err != nil {
			fmt.Fprintf(os.Stderr, "hashear código de %s: %v\n", w.name, err)
			os.Exit(1)
		}
		_, err = pool.Exec(ctx, `
			INSERT INTO warehousemen (id, name, dob, city, secret_hash, warehouse_id)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (id) DO NOTHING`,
			w.id, w.name, w.dob, w.city, string(hash), w.warehouseID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "insertar almacenista %s: %v\n", w.name, err)
			os.Exit(1)
		}
	}
	fmt.Printf("Almacenistas: %d\n", len(warehousemen))

	products := demoProducts()
	inserted := 0
	for i := range products {
		p := &products[i]
		stocks, _ := json.Marshal(p.Stocks)
		editedBy, _ := json.Marshal(p.EditedBy)
		tag, err := pool.Exec(ctx, `
			INSERT INTO products (name, type, barcode, price, solde, supplier, image, quantity, stocks, edited_by)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			ON CONFLICT (barcode) DO NOTHING`,
			p.Name, p.Type, p.Barcode, p.Price, p.Solde, p.Supplier, p.Image, p.Quantity, stocks, editedBy)
		if err != nil {
			fmt.Fprintf(os.Stderr, "insertar producto %s: %v\n", p.Name, err)
			os.Exit(1)
		}
		inserted += int(tag.RowsAffected())
	}
	fmt.Printf("Productos de demostración: %d insertados\n", inserted)
}

func demoProducts() []entity.Product {
	now := time.Now()
	gueliz := entity.StockEntry{Name: "Gueliz B2", Localisation: entity.Localisation{City: "Marrakesh"}}
	lazari := entity.StockEntry{Name: "Lazari H2", Localisation: entity.Localisation{City: "Oujda"}}

	mk := func(name, typ, barcode, supplier string, price, solde float64, qty int64, stock entity.StockEntry, actorID int64) entity.Product {
		stock.Quantity = qty
		return entity.Product{
			Name:     name,
			Type:     typ,
			Barcode:  barcode,
			Price:    decimal.NewFromFloat(price),
			Solde:    decimal.NewFromFloat(solde),
			Supplier: supplier,
			Image:    "",
			Quantity: qty,
			Stocks:   []entity.StockEntry{stock},
			EditedBy: []entity.EditRecord{{WarehousemanID: actorID, At: now}},
		}
	}

	return []entity.Product{
		mk("Laptop HP Pavilion", "Informatique", "8690000456123", "HP Maroc", 8999.00, 7999.00, 12, gueliz, 1444),
		mk("Imprimante Epson L3250", "Informatique", "8715946690467", "Epson", 2199.00, 1999.00, 0, lazari, 1333),
		mk("Clavier Logitech K120", "Accessoires", "0097855066244", "Logitech", 199.00, 149.00, 45, gueliz, 1444),
		mk("Écran Samsung 24\"", "Informatique", "8806094727744", "Samsung", 1499.00, 1299.00, 7, lazari, 1333),
	}
}
