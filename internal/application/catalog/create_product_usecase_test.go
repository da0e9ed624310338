package catalog_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/StockScan-api/internal/application/catalog"
	"github.com/jhoicas/StockScan-api/internal/application/dto"
	"github.com/jhoicas/StockScan-api/internal/domain"
	"github.com/jhoicas/StockScan-api/internal/domain/inventory"
	"github.com/jhoicas/StockScan-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers compartidos del paquete
// ──────────────────────────────────────────────────────────────────────────────

var fixedNow = time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)

func nowFunc() time.Time { return fixedNow }

func dec(v float64) *decimal.Decimal {
	d := decimal.NewFromFloat(v)
	return &d
}

func buildCreateRequest(barcode string) dto.CreateProductRequest {
	return dto.CreateProductRequest{
		Name:      "Imprimante Epson L3250",
		Type:      "Informatique",
		Barcode:   barcode,
		Price:     dec(2199),
		Solde:     dec(1999),
		Supplier:  "Epson",
		Image:     "https://cdn.example.com/epson.png",
		Quantity:  dec(6),
		StockName: "Lazari H2",
		City:      "Oujda",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_SubmissionValida_PersisteProducto(t *testing.T) {
	repo := memory.NewProductRepository()
	uc := catalog.NewCreateProductUseCase(repo, nowFunc)

	out, verr, err := uc.Create(context.Background(), 1333, buildCreateRequest("8715946690467"))
	require.NoError(t, err)
	require.True(t, verr.Valid())
	require.NotNil(t, out)

	assert.NotZero(t, out.ID, "el repo asigna el ID")
	assert.Equal(t, int64(1), out.Version, "versión inicial 1")
	assert.Equal(t, int64(6), out.Quantity)

	// StockEntry inicial con la cantidad completa en el almacén indicado.
	require.Len(t, out.Stocks, 1)
	assert.Equal(t, "Lazari H2", out.Stocks[0].Name)
	assert.Equal(t, int64(6), out.Stocks[0].Quantity)
	assert.Equal(t, "Oujda", out.Stocks[0].Localisation.City)

	// EditRecord del creador con fecha calendario.
	require.Len(t, out.EditedBy, 1)
	assert.Equal(t, int64(1333), out.EditedBy[0].WarehousemanID)
	assert.Equal(t, "2025-03-14", out.EditedBy[0].At)

	// Quedó visible en el snapshot.
	snapshot, err := repo.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Len(t, snapshot, 1)
}

func TestCreate_SubmissionInvalida_DevuelveErroresSinPersistir(t *testing.T) {
	repo := memory.NewProductRepository()
	uc := catalog.NewCreateProductUseCase(repo, nowFunc)

	req := buildCreateRequest("12ab")
	req.Name = ""
	req.Price = nil

	out, verr, err := uc.Create(context.Background(), 1333, req)
	require.NoError(t, err, "validación fallida no es un error de infraestructura")
	assert.Nil(t, out)
	require.False(t, verr.Valid())

	assert.Equal(t, inventory.CodeRequired, verr["name"].Code)
	assert.Equal(t, inventory.CodeRequired, verr["price"].Code)
	assert.Equal(t, inventory.CodeFormat, verr["barcode"].Code)

	snapshot, _ := repo.Snapshot(context.Background())
	assert.Empty(t, snapshot, "nada se persiste cuando la validación falla")
}

func TestCreate_BarcodeDuplicado_ErrDuplicate(t *testing.T) {
	repo := memory.NewProductRepository()
	uc := catalog.NewCreateProductUseCase(repo, nowFunc)

	_, verr, err := uc.Create(context.Background(), 1333, buildCreateRequest("8715946690467"))
	require.NoError(t, err)
	require.True(t, verr.Valid())

	_, _, err = uc.Create(context.Background(), 1444, buildCreateRequest("8715946690467"))
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	snapshot, _ := repo.Snapshot(context.Background())
	assert.Len(t, snapshot, 1, "el duplicado no debe insertarse")
}

// Cantidad cero crea el producto directamente agotado.
func TestCreate_CantidadCero_ProductoAgotado(t *testing.T) {
	repo := memory.NewProductRepository()
	uc := catalog.NewCreateProductUseCase(repo, nowFunc)

	req := buildCreateRequest("5555555555555")
	req.Quantity = dec(0)

	out, verr, err := uc.Create(context.Background(), 1444, req)
	require.NoError(t, err)
	require.True(t, verr.Valid())
	assert.Equal(t, int64(0), out.Quantity)
	assert.Equal(t, string(inventory.StatusExhausted), out.StockStatus)
}
