package http

import (
	"slices"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/mascotas-api/pkg/logger"
)

// ServerConfig parámetros del servidor Fiber.
type ServerConfig struct {
	AppName        string
	AllowedOrigins []string // "*" acepta cualquier origen
}

// NewApp construye la app Fiber con el manejador global de errores y los middlewares
// comunes (recover, CORS, log de peticiones y métricas si metrics != nil).
func NewApp(cfg ServerConfig, log *logger.Logger, metrics *Metrics) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: ErrorHandler(log),
	})
	app.Use(recover.New())
	app.Use(cors.New(corsConfig(cfg.AllowedOrigins)))
	app.Use(RequestLogger(log))
	if metrics != nil {
		app.Use(metrics.Middleware())
	}
	return app
}

// corsConfig con credenciales habilitadas Fiber no admite AllowOrigins "*", así que
// tanto el comodín como la lista explícita se resuelven en AllowOriginsFunc.
func corsConfig(origins []string) cors.Config {
	wildcard := len(origins) == 0 || slices.Contains(origins, "*")
	return cors.Config{
		AllowOriginsFunc: func(origin string) bool {
			if wildcard {
				return true
			}
			return slices.ContainsFunc(origins, func(o string) bool {
				return strings.EqualFold(strings.TrimRight(o, "/"), origin)
			})
		},
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS,PATCH",
		// AllowHeaders vacío refleja Access-Control-Request-Headers: se aceptan todos.
		ExposeHeaders:    "Authorization,Content-Type",
		AllowCredentials: true,
		MaxAge:           3600,
	}
}
