package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/mascotas-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	UserUC     *usecase.UserUseCase
	ProductUC  *usecase.ProductUseCase
	CategoryUC *usecase.CategoryUseCase
	OrderUC    *usecase.OrderUseCase
	DB         Pinger
	Metrics    *Metrics // opcional: expone /metrics
}

// Router registra las rutas de la API. Las rutas fijas van antes de /:id.
func Router(app *fiber.App, deps RouterDeps) {
	healthHandler := NewHealthHandler(deps.DB)
	app.Get("/", healthHandler.Home)
	app.Get("/health", healthHandler.Health)
	if deps.Metrics != nil {
		app.Get("/metrics", deps.Metrics.Handler())
	}

	api := app.Group("/api")

	// Usuarios
	users := api.Group("/usuarios")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Get("/activos", userHandler.ListActive)
	users.Get("/buscar", userHandler.Search)
	users.Get("/email/:email", userHandler.GetByEmail)
	users.Post("/login", userHandler.Login)
	users.Post("/", userHandler.Create)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id/role", userHandler.ChangeRole)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Deactivate)

	// Productos
	products := api.Group("/productos")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/activos", productHandler.ListActive)
	products.Get("/destacados", productHandler.ListFeatured)
	products.Get("/disponibles", productHandler.ListAvailable)
	products.Get("/recientes", productHandler.ListRecent)
	products.Get("/buscar", productHandler.Search)
	products.Get("/categoria/:categoriaId", productHandler.ListByCategory)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id/destacado", productHandler.SetFeatured)
	products.Put("/:id/stock", productHandler.SetStock)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Deactivate)

	// Categorías
	categories := api.Group("/categorias")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Get("/activas", categoryHandler.ListActive)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Deactivate)

	// Pedidos
	orders := api.Group("/pedidos")
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Get("/", orderHandler.List)
	orders.Get("/fechas", orderHandler.ListByDateRange)
	orders.Get("/usuario/:usuarioId", orderHandler.ListByUser)
	orders.Get("/estado/:estado", orderHandler.ListByStatus)
	orders.Get("/estadisticas/estado/:estado", orderHandler.CountByStatus)
	orders.Post("/", orderHandler.Create)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Get("/:id/comprobante", orderHandler.Receipt)
	orders.Put("/:id/estado", orderHandler.SetStatus)
	orders.Put("/:id/cancelar", orderHandler.Cancel)
}
