package memory

import (
	"context"
	"strings"

	"github.com/jhoicas/mascotas-api/internal/domain"
	"github.com/jhoicas/mascotas-api/internal/domain/entity"
	"github.com/jhoicas/mascotas-api/internal/domain/repository"
)

// ProductRepo implementa repository.ProductRepository sobre Store.
// Las lecturas adjuntan la categoría vigente, como el JOIN del repositorio PostgreSQL.
type ProductRepo struct {
	s *Store
}

var _ repository.ProductRepository = (*ProductRepo)(nil)

func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[product.ID]; ok {
		return domain.Conflict("el producto %s ya existe", product.ID)
	}
	if err := r.check(product); err != nil {
		return err
	}
	r.s.products[product.ID] = r.stored(product)
	return nil
}

func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	return r.withCategory(p), nil
}

func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[product.ID]; !ok {
		return domain.NotFound("producto %s no encontrado", product.ID)
	}
	if err := r.check(product); err != nil {
		return err
	}
	r.s.products[product.ID] = r.stored(product)
	return nil
}

func (r *ProductRepo) List(ctx context.Context, f repository.ProductFilter) ([]*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	term := strings.ToLower(f.NameContains)
	out := make([]*entity.Product, 0, len(r.s.products))
	for _, p := range r.s.products {
		switch {
		case f.OnlyActive && !p.Active,
			f.Featured != nil && p.Featured != *f.Featured,
			f.InStock && p.Stock <= 0,
			f.CategoryID != "" && p.CategoryID != f.CategoryID,
			term != "" && !strings.Contains(strings.ToLower(p.Name), term),
			f.CreatedSince != nil && p.CreatedAt.Before(*f.CreatedSince):
			continue
		}
		out = append(out, r.withCategory(p))
	}
	sortNewestFirst(out,
		func(p *entity.Product) int64 { return p.CreatedAt.UnixNano() },
		func(p *entity.Product) string { return p.ID })
	return out, nil
}

// check aplica las mismas restricciones que el esquema SQL (FK y CHECK de stock/precio).
func (r *ProductRepo) check(p *entity.Product) error {
	if _, ok := r.s.categories[p.CategoryID]; !ok {
		return domain.Invalid("la categoría %s no existe", p.CategoryID)
	}
	if p.Stock < 0 {
		return domain.Invalid("el stock no puede ser negativo: %d", p.Stock)
	}
	if p.Price.IsNegative() {
		return domain.Invalid("el precio no puede ser negativo")
	}
	return nil
}

func (r *ProductRepo) stored(p *entity.Product) entity.Product {
	cp := *p
	cp.Category = nil
	return cp
}

func (r *ProductRepo) withCategory(p entity.Product) *entity.Product {
	if c, ok := r.s.categories[p.CategoryID]; ok {
		p.Category = &c
	}
	return &p
}
