package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/mascotas-api/internal/application/dto"
	"github.com/jhoicas/mascotas-api/internal/application/usecase"
)

// ProductHandler maneja las peticiones HTTP de /api/productos.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List GET /api/productos
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	return h.respondList(c, out, err)
}

// ListActive GET /api/productos/activos
func (h *ProductHandler) ListActive(c *fiber.Ctx) error {
	out, err := h.uc.ListActive(c.UserContext())
	return h.respondList(c, out, err)
}

// ListFeatured GET /api/productos/destacados
func (h *ProductHandler) ListFeatured(c *fiber.Ctx) error {
	out, err := h.uc.ListFeatured(c.UserContext())
	return h.respondList(c, out, err)
}

// ListAvailable GET /api/productos/disponibles
func (h *ProductHandler) ListAvailable(c *fiber.Ctx) error {
	out, err := h.uc.ListAvailable(c.UserContext())
	return h.respondList(c, out, err)
}

// ListRecent GET /api/productos/recientes[?dias=]
func (h *ProductHandler) ListRecent(c *fiber.Ctx) error {
	days := 0
	if c.Query("dias") != "" {
		n, err := queryInt(c, "dias")
		if err != nil {
			return respondError(c, err)
		}
		days = n
	}
	out, err := h.uc.ListRecent(c.UserContext(), days)
	return h.respondList(c, out, err)
}

// ListByCategory GET /api/productos/categoria/:categoriaId
func (h *ProductHandler) ListByCategory(c *fiber.Ctx) error {
	out, err := h.uc.ListByCategory(c.UserContext(), c.Params("categoriaId"))
	return h.respondList(c, out, err)
}

// Search GET /api/productos/buscar?nombre=
func (h *ProductHandler) Search(c *fiber.Ctx) error {
	out, err := h.uc.SearchByName(c.UserContext(), c.Query("nombre"))
	return h.respondList(c, out, err)
}

func (h *ProductHandler) respondList(c *fiber.Ctx, out []dto.ProductResponse, err error) error {
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID GET /api/productos/:id
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "producto no encontrado")
	}
	return c.JSON(out)
}

// Create POST /api/productos
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.ProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update PUT /api/productos/:id
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.ProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Deactivate DELETE /api/productos/:id (baja lógica)
func (h *ProductHandler) Deactivate(c *fiber.Ctx) error {
	if err := h.uc.Deactivate(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Mensaje: "Producto desactivado correctamente"})
}

// SetFeatured PUT /api/productos/:id/destacado?destacado=
func (h *ProductHandler) SetFeatured(c *fiber.Ctx) error {
	featured, err := queryBool(c, "destacado")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.SetFeatured(c.UserContext(), c.Params("id"), featured)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SetStock PUT /api/productos/:id/stock?stock=
func (h *ProductHandler) SetStock(c *fiber.Ctx) error {
	stock, err := queryInt(c, "stock")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.SetStock(c.UserContext(), c.Params("id"), stock)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
