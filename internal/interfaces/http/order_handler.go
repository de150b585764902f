package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/mascotas-api/internal/application/dto"
	"github.com/jhoicas/mascotas-api/internal/application/usecase"
)

// OrderHandler maneja las peticiones HTTP de /api/pedidos.
type OrderHandler struct {
	uc *usecase.OrderUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// List GET /api/pedidos
func (h *OrderHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	return respondOrders(c, out, err)
}

// GetByID GET /api/pedidos/:id
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "pedido no encontrado")
	}
	return c.JSON(out)
}

// ListByUser GET /api/pedidos/usuario/:usuarioId
func (h *OrderHandler) ListByUser(c *fiber.Ctx) error {
	out, err := h.uc.ListByUser(c.UserContext(), c.Params("usuarioId"))
	return respondOrders(c, out, err)
}

// ListByStatus GET /api/pedidos/estado/:estado
func (h *OrderHandler) ListByStatus(c *fiber.Ctx) error {
	out, err := h.uc.ListByStatus(c.UserContext(), c.Params("estado"))
	return respondOrders(c, out, err)
}

// ListByDateRange GET /api/pedidos/fechas?inicio=&fin= (ambos extremos inclusive)
func (h *OrderHandler) ListByDateRange(c *fiber.Ctx) error {
	from, err := parseDateTime("inicio", c.Query("inicio"))
	if err != nil {
		return respondError(c, err)
	}
	to, err := parseDateTime("fin", c.Query("fin"))
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.ListByDateRange(c.UserContext(), from, to)
	return respondOrders(c, out, err)
}

// CountByStatus GET /api/pedidos/estadisticas/estado/:estado
func (h *OrderHandler) CountByStatus(c *fiber.Ctx) error {
	n, err := h.uc.CountByStatus(c.UserContext(), c.Params("estado"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(n)
}

// Create POST /api/pedidos
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// SetStatus PUT /api/pedidos/:id/estado?estado=
func (h *OrderHandler) SetStatus(c *fiber.Ctx) error {
	out, err := h.uc.SetStatus(c.UserContext(), c.Params("id"), c.Query("estado"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Cancel PUT /api/pedidos/:id/cancelar
func (h *OrderHandler) Cancel(c *fiber.Ctx) error {
	if _, err := h.uc.Cancel(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Mensaje: "Pedido cancelado correctamente"})
}

// Receipt GET /api/pedidos/:id/comprobante (PDF)
func (h *OrderHandler) Receipt(c *fiber.Ctx) error {
	pdf, err := h.uc.Receipt(c.UserContext(), c.Params("id"))
	if errors.Is(err, usecase.ErrReceiptUnavailable) {
		return fiber.NewError(fiber.StatusNotImplemented, err.Error())
	}
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("inline; filename=pedido-%s.pdf", c.Params("id")))
	return c.Send(pdf)
}

func respondOrders(c *fiber.Ctx, out []dto.OrderResponse, err error) error {
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
