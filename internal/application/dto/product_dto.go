package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductRequest entrada para crear o reemplazar un producto.
type ProductRequest struct {
	Nombre      string          `json:"nombre" validate:"required,max=150"`
	Descripcion string          `json:"descripcion" validate:"max=1000"`
	Precio      decimal.Decimal `json:"precio"`
	Stock       int             `json:"stock" validate:"gte=0"`
	Destacado   bool            `json:"destacado"`
	Activo      *bool           `json:"activo"`
	CategoriaID string          `json:"categoriaId" validate:"required,uuid"`
}

// ProductResponse salida de un producto con su categoría.
type ProductResponse struct {
	ID            string           `json:"id"`
	Nombre        string           `json:"nombre"`
	Descripcion   string           `json:"descripcion"`
	Precio        decimal.Decimal  `json:"precio"`
	Stock         int              `json:"stock"`
	Destacado     bool             `json:"destacado"`
	Activo        bool             `json:"activo"`
	Disponible    bool             `json:"disponible"` // activo y con stock
	FechaCreacion time.Time        `json:"fechaCreacion"`
	CategoriaID   string           `json:"categoriaId"`
	Categoria     *CategorySummary `json:"categoria,omitempty"`
}
