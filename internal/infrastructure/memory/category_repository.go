package memory

import (
	"context"

	"github.com/jhoicas/mascotas-api/internal/domain"
	"github.com/jhoicas/mascotas-api/internal/domain/entity"
	"github.com/jhoicas/mascotas-api/internal/domain/repository"
)

// CategoryRepo implementa repository.CategoryRepository sobre Store.
type CategoryRepo struct {
	s *Store
}

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

func (r *CategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.categories[category.ID]; ok {
		return domain.Conflict("la categoría %s ya existe", category.ID)
	}
	r.s.categories[category.ID] = *category
	return nil
}

func (r *CategoryRepo) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.categories[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *CategoryRepo) Update(ctx context.Context, category *entity.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.categories[category.ID]; !ok {
		return domain.NotFound("categoría %s no encontrada", category.ID)
	}
	r.s.categories[category.ID] = *category
	return nil
}

func (r *CategoryRepo) List(ctx context.Context) ([]*entity.Category, error) {
	return r.filter(false), nil
}

func (r *CategoryRepo) ListActive(ctx context.Context) ([]*entity.Category, error) {
	return r.filter(true), nil
}

func (r *CategoryRepo) filter(onlyActive bool) []*entity.Category {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Category, 0, len(r.s.categories))
	for _, c := range r.s.categories {
		if onlyActive && !c.Active {
			continue
		}
		out = append(out, &c)
	}
	sortNewestFirst(out,
		func(c *entity.Category) int64 { return c.CreatedAt.UnixNano() },
		func(c *entity.Category) string { return c.ID })
	return out
}
