package dto

import "time"

// ErrorResponse cuerpo de error HTTP para errores controlados (4xx).
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse confirmación simple (desactivar, cancelar).
type MessageResponse struct {
	Mensaje string `json:"mensaje"`
}

// APIError cuerpo del manejador global para fallos no controlados.
type APIError struct {
	Timestamp time.Time `json:"timestamp"`
	Mensaje   string    `json:"mensaje"`
	Status    int       `json:"status"`
	Path      string    `json:"path"`
}
