package entity

import "time"

// Category representa una categoría de productos (Alimentos, Accesorios, ...).
// Nunca se elimina físicamente; se desactiva.
type Category struct {
	ID          string
	Name        string
	Description string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
