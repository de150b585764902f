package entity

import (
	"strings"
	"time"

	"github.com/jhoicas/mascotas-api/internal/domain"
)

// OrderStatus etapa del ciclo de vida de un pedido.
type OrderStatus string

// Estados de pedido. PENDIENTE es el inicial; ENTREGADO y CANCELADO son finales
// pero no se bloquea ninguna transición.
const (
	OrderPending    OrderStatus = "PENDIENTE"
	OrderInProgress OrderStatus = "EN_PROCESO"
	OrderDelivered  OrderStatus = "ENTREGADO"
	OrderCancelled  OrderStatus = "CANCELADO"
)

// OrderStatuses lista los estados en orden del ciclo de vida.
var OrderStatuses = []OrderStatus{OrderPending, OrderInProgress, OrderDelivered, OrderCancelled}

// ParseOrderStatus valida el estado recibido por path/query (no distingue mayúsculas).
func ParseOrderStatus(s string) (OrderStatus, error) {
	v := OrderStatus(strings.ToUpper(strings.TrimSpace(s)))
	for _, st := range OrderStatuses {
		if v == st {
			return st, nil
		}
	}
	return "", domain.Invalid("estado inválido: %q (valores permitidos: PENDIENTE, EN_PROCESO, ENTREGADO, CANCELADO)", s)
}

// IsFinal indica si el estado cierra el ciclo del pedido.
func (s OrderStatus) IsFinal() bool {
	return s == OrderDelivered || s == OrderCancelled
}

// Order representa un pedido realizado por un User.
type Order struct {
	ID        string
	UserID    string
	Status    OrderStatus
	Notes     string
	CreatedAt time.Time // fecha del pedido
	UpdatedAt time.Time
}
