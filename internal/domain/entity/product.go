package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un artículo del catálogo. Pertenece a una Category.
type Product struct {
	ID          string
	CategoryID  string
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int // nunca negativo
	Featured    bool
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Category se llena en las lecturas (JOIN); nil si la categoría no existe.
	Category *Category
}

// Available indica si el producto puede venderse (activo y con existencias).
func (p *Product) Available() bool {
	return p.Active && p.Stock > 0
}
