package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/StockScan-api/internal/application/auth"
	"github.com/jhoicas/StockScan-api/internal/application/catalog"
	"github.com/jhoicas/StockScan-api/internal/application/dto"
	"github.com/jhoicas/StockScan-api/internal/domain/entity"
	"github.com/jhoicas/StockScan-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/StockScan-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// App de integración: router completo sobre repos en memoria
// ──────────────────────────────────────────────────────────────────────────────

func buildAPIApp(t *testing.T) *fiber.App {
	t.Helper()

	productRepo := memory.NewProductRepository()
	registry := memory.NewWarehousemanRepository()
	hash, err := bcrypt.GenerateFromPassword([]byte("AH90907J"), bcrypt.MinCost)
	require.NoError(t, err)
	registry.Add(entity.Warehouseman{
		ID: 1333, Name: "Amine Boutaleb", City: "Oujda",
		SecretHash: string(hash), WarehouseID: 1999,
	})

	now := func() time.Time { return time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC) }

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		ProductRepo: productRepo,
		ScanUC:      catalog.NewScanUseCase(productRepo),
		CreateUC:    catalog.NewCreateProductUseCase(productRepo, now),
		AdjustUC:    catalog.NewAdjustUseCase(productRepo, now),
		DashboardUC: catalog.NewDashboardUseCase(productRepo),
		AuthUC: auth.NewAuthUseCase(registry, auth.JWTConfig{
			Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer,
		}),
		JWTSecret: testJWTSecret,
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func login(t *testing.T, app *fiber.App, code string) (string, *http.Response) {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{SecretCode: code})
	if resp.StatusCode != http.StatusOK {
		return "", resp
	}
	var out dto.LoginResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	resp.Body.Close()
	return out.Token, resp
}

func sampleProduct(barcode string, quantity float64) map[string]interface{} {
	return map[string]interface{}{
		"name":      "Écran Samsung 24",
		"type":      "Informatique",
		"barcode":   barcode,
		"price":     1499,
		"solde":     1299,
		"supplier":  "Samsung",
		"image":     "https://cdn.example.com/samsung.png",
		"quantity":  quantity,
		"stockName": "Gueliz B2",
		"city":      "Marrakesh",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de flujo completo
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_Login_CodigoValido(t *testing.T) {
	app := buildAPIApp(t)

	token, _ := login(t, app, "AH90907J")
	assert.NotEmpty(t, token)
}

func TestAPI_Login_CodigoDesconocido_401(t *testing.T) {
	app := buildAPIApp(t)

	_, resp := login(t, app, "wrong")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAPI_RutasProtegidas_SinToken_401(t *testing.T) {
	app := buildAPIApp(t)

	for _, path := range []string{"/api/products", "/api/dashboard/summary", "/api/products/resolve/123"} {
		resp := doJSON(t, app, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "GET %s sin token debe dar 401", path)
		resp.Body.Close()
	}
}

func TestAPI_CrearProducto_FlujoCompleto(t *testing.T) {
	app := buildAPIApp(t)
	token, _ := login(t, app, "AH90907J")

	resp := doJSON(t, app, http.MethodPost, "/api/products", token, sampleProduct("8806094727744", 7))
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created dto.ProductResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.NotZero(t, created.ID)
	assert.Equal(t, "low", created.StockStatus)
	require.Len(t, created.EditedBy, 1)
	assert.Equal(t, int64(1333), created.EditedBy[0].WarehousemanID, "el creador sale del token, no del body")
	assert.Equal(t, "2025-03-14", created.EditedBy[0].At)

	// Resolver el código recién creado navega al detalle.
	resp2 := doJSON(t, app, http.MethodGet, "/api/products/resolve/8806094727744", token, nil)
	defer resp2.Body.Close()
	require.Equal(t, http.StatusOK, resp2.StatusCode)

	var resolved dto.ResolveResponse
	require.NoError(t, json.NewDecoder(resp2.Body).Decode(&resolved))
	assert.True(t, resolved.Found)
	assert.Equal(t, created.ID, resolved.Product.ID)
}

func TestAPI_CrearProducto_Invalido_400ConErrores(t *testing.T) {
	app := buildAPIApp(t)
	token, _ := login(t, app, "AH90907J")

	body := sampleProduct("12ab", 5)
	body["name"] = ""

	resp := doJSON(t, app, http.MethodPost, "/api/products", token, body)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var out dto.ValidationErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "VALIDATION_FAILED", out.Code)
	assert.Equal(t, "REQUIRED", out.Errors["name"].Code)
	assert.Equal(t, "FORMAT", out.Errors["barcode"].Code)
}

func TestAPI_CrearProducto_BarcodeDuplicado_409(t *testing.T) {
	app := buildAPIApp(t)
	token, _ := login(t, app, "AH90907J")

	resp := doJSON(t, app, http.MethodPost, "/api/products", token, sampleProduct("111", 5))
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp2 := doJSON(t, app, http.MethodPost, "/api/products", token, sampleProduct("111", 5))
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusConflict, resp2.StatusCode)
}

func TestAPI_ResolverCodigoDesconocido_DevuelveBarcode(t *testing.T) {
	app := buildAPIApp(t)
	token, _ := login(t, app, "AH90907J")

	resp := doJSON(t, app, http.MethodGet, "/api/products/resolve/404404", token, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.ResolveResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.False(t, out.Found)
	assert.Equal(t, "404404", out.Barcode)
}

func TestAPI_Ajustes_RestockYUnload(t *testing.T) {
	app := buildAPIApp(t)
	token, _ := login(t, app, "AH90907J")

	resp := doJSON(t, app, http.MethodPost, "/api/products", token, sampleProduct("222", 10))
	var created dto.ProductResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	resp.Body.Close()

	// Restock +5
	resp2 := doJSON(t, app, http.MethodPost, "/api/inventory/adjustments", token, dto.AdjustRequest{
		ProductID: created.ID, Operation: "restock", Amount: 5,
	})
	defer resp2.Body.Close()
	require.Equal(t, http.StatusOK, resp2.StatusCode)

	var adjusted dto.ProductResponse
	require.NoError(t, json.NewDecoder(resp2.Body).Decode(&adjusted))
	assert.Equal(t, int64(15), adjusted.Quantity)
	assert.Equal(t, int64(2), adjusted.Version)

	// Unload por encima del stock → 409 INSUFFICIENT_STOCK
	resp3 := doJSON(t, app, http.MethodPost, "/api/inventory/adjustments", token, dto.AdjustRequest{
		ProductID: created.ID, Operation: "unload", Amount: 100,
	})
	defer resp3.Body.Close()
	assert.Equal(t, http.StatusConflict, resp3.StatusCode)
}

func TestAPI_Ajuste_CantidadCero_400(t *testing.T) {
	app := buildAPIApp(t)
	token, _ := login(t, app, "AH90907J")

	resp := doJSON(t, app, http.MethodPost, "/api/products", token, sampleProduct("333", 10))
	var created dto.ProductResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	resp.Body.Close()

	resp2 := doJSON(t, app, http.MethodPost, "/api/inventory/adjustments", token, dto.AdjustRequest{
		ProductID: created.ID, Operation: "restock", Amount: 0,
	})
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp2.StatusCode)
}

func TestAPI_Ajuste_ProductoInexistente_404(t *testing.T) {
	app := buildAPIApp(t)
	token, _ := login(t, app, "AH90907J")

	resp := doJSON(t, app, http.MethodPost, "/api/inventory/adjustments", token, dto.AdjustRequest{
		ProductID: 999, Operation: "restock", Amount: 1,
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAPI_Dashboard_Resumen(t *testing.T) {
	app := buildAPIApp(t)
	token, _ := login(t, app, "AH90907J")

	resp := doJSON(t, app, http.MethodPost, "/api/products", token, sampleProduct("444", 0))
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp2 := doJSON(t, app, http.MethodGet, "/api/dashboard/summary", token, nil)
	defer resp2.Body.Close()
	require.Equal(t, http.StatusOK, resp2.StatusCode)

	var out dto.DashboardStatsDTO
	require.NoError(t, json.NewDecoder(resp2.Body).Decode(&out))
	assert.Equal(t, 1, out.TotalProducts)
	assert.Equal(t, 1, out.TotalWarehouses)
	assert.Len(t, out.OutOfStockProducts, 1)
	assert.True(t, out.TotalStockValue.IsZero(), "producto agotado no aporta valor")
}

func TestAPI_ProductoPorID_Inexistente_404(t *testing.T) {
	app := buildAPIApp(t)
	token, _ := login(t, app, "AH90907J")

	resp := doJSON(t, app, http.MethodGet, "/api/products/999", token, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
