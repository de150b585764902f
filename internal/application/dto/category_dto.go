package dto

import "time"

// CategoryRequest entrada para crear o reemplazar una categoría.
type CategoryRequest struct {
	Nombre      string `json:"nombre" validate:"required,max=100"`
	Descripcion string `json:"descripcion" validate:"max=255"`
	Activo      *bool  `json:"activo"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID            string    `json:"id"`
	Nombre        string    `json:"nombre"`
	Descripcion   string    `json:"descripcion"`
	Activo        bool      `json:"activo"`
	FechaCreacion time.Time `json:"fechaCreacion"`
}

// CategorySummary categoría embebida en la respuesta de un producto.
type CategorySummary struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
	Activo bool   `json:"activo"`
}
