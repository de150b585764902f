package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mascotas-api/internal/domain"
	"github.com/jhoicas/mascotas-api/internal/domain/entity"
	"github.com/jhoicas/mascotas-api/internal/domain/repository"
	"github.com/jhoicas/mascotas-api/internal/infrastructure/memory"
)

var base = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

func newUser(email string, at time.Time) *entity.User {
	return &entity.User{ID: uuid.NewString(), Name: "Ana", LastName: "Pérez", Email: email, Role: entity.RoleUser, Active: true, CreatedAt: at, UpdatedAt: at}
}

// ──────────────────────────────────────────────────────────────────────────────
// Usuarios
// ──────────────────────────────────────────────────────────────────────────────

func TestUserRepo_EmailDuplicado(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStore().Users()

	require.NoError(t, repo.Create(ctx, newUser("ana@example.com", base)))
	err := repo.Create(ctx, newUser("ANA@example.com", base))
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestUserRepo_ListActiveYBusqueda(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStore().Users()

	a := newUser("a@example.com", base)
	b := newUser("b@example.com", base.Add(time.Hour))
	b.LastName = "Gómez"
	b.Active = false
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, b.ID, all[0].ID, "más reciente primero")

	active, err := repo.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, a.ID, active[0].ID)

	found, err := repo.SearchByName(ctx, "góm")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, b.ID, found[0].ID)
}

func TestUserRepo_GetInexistente(t *testing.T) {
	repo := memory.NewStore().Users()
	u, err := repo.GetByID(context.Background(), uuid.NewString())
	require.NoError(t, err)
	assert.Nil(t, u)
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos
// ──────────────────────────────────────────────────────────────────────────────

func TestProductRepo_FiltrosYCategoria(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	cat := &entity.Category{ID: uuid.NewString(), Name: "Alimentos", Active: true, CreatedAt: base}
	toys := &entity.Category{ID: uuid.NewString(), Name: "Juguetes", Active: true, CreatedAt: base}
	require.NoError(t, store.Categories().Create(ctx, cat))
	require.NoError(t, store.Categories().Create(ctx, toys))

	mk := func(name string, categoryID string, stock int, featured, active bool, at time.Time) *entity.Product {
		p := &entity.Product{ID: uuid.NewString(), CategoryID: categoryID, Name: name, Price: decimal.NewFromInt(10),
			Stock: stock, Featured: featured, Active: active, CreatedAt: at, UpdatedAt: at}
		require.NoError(t, store.Products().Create(ctx, p))
		return p
	}
	croquetas := mk("Croquetas", cat.ID, 5, true, true, base)
	mk("Pelota", toys.ID, 0, false, true, base.Add(time.Hour))
	mk("Hueso", toys.ID, 3, true, false, base.Add(2*time.Hour))

	featured := true
	cases := []struct {
		name   string
		filter repository.ProductFilter
		want   int
	}{
		{"todos", repository.ProductFilter{}, 3},
		{"activos", repository.ProductFilter{OnlyActive: true}, 2},
		{"destacados activos", repository.ProductFilter{OnlyActive: true, Featured: &featured}, 1},
		{"con stock", repository.ProductFilter{InStock: true}, 2},
		{"por categoría", repository.ProductFilter{CategoryID: toys.ID}, 2},
		{"por nombre", repository.ProductFilter{NameContains: "CROQ"}, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			list, err := store.Products().List(ctx, tc.filter)
			require.NoError(t, err)
			assert.Len(t, list, tc.want)
		})
	}

	got, err := store.Products().GetByID(ctx, croquetas.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Category)
	assert.Equal(t, "Alimentos", got.Category.Name)
}

func TestProductRepo_CategoriaInexistente(t *testing.T) {
	store := memory.NewStore()
	p := &entity.Product{ID: uuid.NewString(), CategoryID: uuid.NewString(), Name: "X", CreatedAt: base}
	err := store.Products().Create(context.Background(), p)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Pedidos
// ──────────────────────────────────────────────────────────────────────────────

func TestOrderRepo_RangoInclusivoYConteo(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	u := newUser("c@example.com", base)
	require.NoError(t, store.Users().Create(ctx, u))

	for i, st := range []entity.OrderStatus{entity.OrderPending, entity.OrderPending, entity.OrderDelivered} {
		at := base.Add(time.Duration(i) * 24 * time.Hour)
		require.NoError(t, store.Orders().Create(ctx, &entity.Order{ID: uuid.NewString(), UserID: u.ID, Status: st, CreatedAt: at, UpdatedAt: at}))
	}

	from, to := base, base.Add(24*time.Hour)
	list, err := store.Orders().List(ctx, repository.OrderFilter{From: &from, To: &to})
	require.NoError(t, err)
	assert.Len(t, list, 2, "ambos extremos del rango se incluyen")

	n, err := store.Orders().CountByStatus(ctx, entity.OrderPending)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	err = store.Orders().UpdateStatus(ctx, uuid.NewString(), entity.OrderCancelled, base)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOrderRepo_UsuarioInexistente(t *testing.T) {
	store := memory.NewStore()
	err := store.Orders().Create(context.Background(), &entity.Order{ID: uuid.NewString(), UserID: uuid.NewString(), Status: entity.OrderPending})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
