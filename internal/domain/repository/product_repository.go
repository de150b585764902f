package repository

import (
	"context"
	"time"

	"github.com/jhoicas/mascotas-api/internal/domain/entity"
)

// ProductFilter criterios de listado de productos. Los campos vacíos no filtran.
type ProductFilter struct {
	OnlyActive   bool
	Featured     *bool
	InStock      bool   // stock > 0
	CategoryID   string
	NameContains string
	CreatedSince *time.Time
}

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)
}
