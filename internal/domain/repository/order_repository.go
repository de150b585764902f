package repository

import (
	"context"
	"time"

	"github.com/jhoicas/mascotas-api/internal/domain/entity"
)

// OrderFilter criterios de listado de pedidos. Los campos vacíos no filtran.
// From/To son inclusivos.
type OrderFilter struct {
	UserID string
	Status entity.OrderStatus
	From   *time.Time
	To     *time.Time
}

// OrderRepository define el puerto de persistencia para Order (DIP).
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	UpdateStatus(ctx context.Context, id string, status entity.OrderStatus, updatedAt time.Time) error
	List(ctx context.Context, filter OrderFilter) ([]*entity.Order, error)
	CountByStatus(ctx context.Context, status entity.OrderStatus) (int64, error)
}
