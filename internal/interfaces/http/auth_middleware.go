package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/StockScan-api/internal/application/dto"
	"github.com/jhoicas/StockScan-api/pkg/jwt"
)

// Locals keys para el almacenista autenticado en Fiber.
const (
	LocalWarehousemanID = "warehouseman_id"
	LocalWarehouseID    = "warehouse_id"
)

// AuthMiddleware valida el Bearer Token JWT y extrae el almacenista a c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		warehousemanID, warehouseID, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalWarehousemanID, warehousemanID)
		c.Locals(LocalWarehouseID, warehouseID)
		return c.Next()
	}
}

// GetWarehousemanID devuelve el ID del almacenista del contexto (después del middleware de auth).
func GetWarehousemanID(c *fiber.Ctx) int64 {
	v := c.Locals(LocalWarehousemanID)
	if v == nil {
		return 0
	}
	id, _ := v.(int64)
	return id
}

// GetWarehouseID devuelve el almacén asignado del contexto.
func GetWarehouseID(c *fiber.Ctx) int64 {
	v := c.Locals(LocalWarehouseID)
	if v == nil {
		return 0
	}
	id, _ := v.(int64)
	return id
}
