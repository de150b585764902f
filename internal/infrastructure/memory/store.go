// Package memory implementa los repositorios en memoria. Se usa con
// STORAGE_DRIVER=memory (demos, desarrollo local) y en los tests de la capa HTTP.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/mascotas-api/internal/domain/entity"
)

// Store guarda todas las entidades detrás de un único RWMutex, así las
// validaciones cruzadas (producto → categoría, pedido → usuario) ven un estado consistente.
type Store struct {
	mu         sync.RWMutex
	users      map[string]entity.User
	categories map[string]entity.Category
	products   map[string]entity.Product
	orders     map[string]entity.Order
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{
		users:      make(map[string]entity.User),
		categories: make(map[string]entity.Category),
		products:   make(map[string]entity.Product),
		orders:     make(map[string]entity.Order),
	}
}

// Ping siempre responde; existe para el health check.
func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

// Users devuelve el repositorio de usuarios respaldado por este store.
func (s *Store) Users() *UserRepo { return &UserRepo{s: s} }

// Categories devuelve el repositorio de categorías respaldado por este store.
func (s *Store) Categories() *CategoryRepo { return &CategoryRepo{s: s} }

// Products devuelve el repositorio de productos respaldado por este store.
func (s *Store) Products() *ProductRepo { return &ProductRepo{s: s} }

// Orders devuelve el repositorio de pedidos respaldado por este store.
func (s *Store) Orders() *OrderRepo { return &OrderRepo{s: s} }

// sortNewestFirst ordena por fecha de creación descendente; a igual fecha, por ID.
func sortNewestFirst[T any](list []*T, createdAt func(*T) int64, id func(*T) string) {
	sort.SliceStable(list, func(i, j int) bool {
		ci, cj := createdAt(list[i]), createdAt(list[j])
		if ci != cj {
			return ci > cj
		}
		return id(list[i]) < id(list[j])
	})
}
