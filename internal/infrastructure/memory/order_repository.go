package memory

import (
	"context"
	"time"

	"github.com/jhoicas/mascotas-api/internal/domain"
	"github.com/jhoicas/mascotas-api/internal/domain/entity"
	"github.com/jhoicas/mascotas-api/internal/domain/repository"
)

// OrderRepo implementa repository.OrderRepository sobre Store.
type OrderRepo struct {
	s *Store
}

var _ repository.OrderRepository = (*OrderRepo)(nil)

func (r *OrderRepo) Create(ctx context.Context, order *entity.Order) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.orders[order.ID]; ok {
		return domain.Conflict("el pedido %s ya existe", order.ID)
	}
	if _, ok := r.s.users[order.UserID]; !ok {
		return domain.Invalid("el usuario %s no existe", order.UserID)
	}
	r.s.orders[order.ID] = *order
	return nil
}

func (r *OrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	o, ok := r.s.orders[id]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

func (r *OrderRepo) UpdateStatus(ctx context.Context, id string, status entity.OrderStatus, updatedAt time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	o, ok := r.s.orders[id]
	if !ok {
		return domain.NotFound("pedido %s no encontrado", id)
	}
	o.Status = status
	o.UpdatedAt = updatedAt
	r.s.orders[id] = o
	return nil
}

func (r *OrderRepo) List(ctx context.Context, f repository.OrderFilter) ([]*entity.Order, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Order, 0, len(r.s.orders))
	for _, o := range r.s.orders {
		if matchOrder(&o, f) {
			out = append(out, &o)
		}
	}
	sortNewestFirst(out,
		func(o *entity.Order) int64 { return o.CreatedAt.UnixNano() },
		func(o *entity.Order) string { return o.ID })
	return out, nil
}

func (r *OrderRepo) CountByStatus(ctx context.Context, status entity.OrderStatus) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var n int64
	for _, o := range r.s.orders {
		if o.Status == status {
			n++
		}
	}
	return n, nil
}

// matchOrder aplica el filtro; From/To inclusivos.
func matchOrder(o *entity.Order, f repository.OrderFilter) bool {
	switch {
	case f.UserID != "" && o.UserID != f.UserID,
		f.Status != "" && o.Status != f.Status,
		f.From != nil && o.CreatedAt.Before(*f.From),
		f.To != nil && o.CreatedAt.After(*f.To):
		return false
	}
	return true
}
