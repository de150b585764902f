package dto

import "time"

// CreateOrderRequest entrada para crear un pedido. El estado inicial siempre es PENDIENTE.
type CreateOrderRequest struct {
	UsuarioID     string `json:"usuarioId" validate:"required,uuid"`
	Observaciones string `json:"observaciones" validate:"max=500"`
}

// OrderResponse salida de un pedido.
type OrderResponse struct {
	ID            string    `json:"id"`
	UsuarioID     string    `json:"usuarioId"`
	FechaPedido   time.Time `json:"fechaPedido"`
	Estado        string    `json:"estado"`
	Observaciones string    `json:"observaciones"`
}
