package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Pinger verifica la conexión con el almacenamiento (pgxpool.Pool, memory.Store).
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler expone / y /health.
type HealthHandler struct {
	db Pinger
}

// NewHealthHandler construye el handler.
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// Home GET /
func (h *HealthHandler) Home(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"mensaje":   "API Tienda de Mascotas - Funcionando",
		"status":    "OK",
		"timestamp": time.Now(),
	})
}

// Health GET /health. Responde 503 si la base de datos no contesta el ping.
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()
	if h.db == nil || h.db.Ping(ctx) != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "DOWN", "database": "Disconnected"})
	}
	return c.JSON(fiber.Map{"status": "UP", "database": "Connected"})
}
