package postgres

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mascotas-api/internal/domain"
	"github.com/jhoicas/mascotas-api/internal/domain/entity"
	"github.com/jhoicas/mascotas-api/internal/domain/repository"
)

const (
	testUserID     = "00000000-0000-0000-0000-000000000001"
	testCategoryID = "00000000-0000-0000-0000-000000000002"
	testOrderID    = "00000000-0000-0000-0000-000000000003"
)

var testTime = time.Date(2024, 6, 1, 10, 30, 0, 0, time.UTC)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})
	return mock
}

// anyArgs un matcher por placeholder, para los Exec cuyo interés es el error devuelto.
func anyArgs(n int) []any {
	args := make([]any, n)
	for i := range args {
		args[i] = pgxmock.AnyArg()
	}
	return args
}

// ──────────────────────────────────────────────────────────────────────────────
// Usuarios
// ──────────────────────────────────────────────────────────────────────────────

func userRow(mock pgxmock.PgxPoolIface) *pgxmock.Rows {
	return mock.NewRows([]string{"id", "nombre", "apellido", "email", "password_hash", "telefono", "direccion", "role", "activo", "fecha_registro", "updated_at"}).
		AddRow(testUserID, "Ana", "Pérez", "ana@example.com", "$2a$10$hash", "300", "Calle 1", "ADMIN", true, testTime, testTime)
}

func TestUserRepo_GetByEmail(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(`FROM usuarios WHERE lower\(email\) = lower\(\$1\)`).
		WithArgs("ana@example.com").
		WillReturnRows(userRow(mock))

	u, err := NewUserRepository(mock).GetByEmail(context.Background(), "ana@example.com")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, testUserID, u.ID)
	assert.Equal(t, entity.RoleAdmin, u.Role)
	assert.True(t, u.Active)
}

func TestUserRepo_GetByID_NoExiste(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(`FROM usuarios WHERE id = \$1`).
		WithArgs(testUserID).
		WillReturnRows(mock.NewRows([]string{"id"}))

	u, err := NewUserRepository(mock).GetByID(context.Background(), testUserID)
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestUserRepo_Create_EmailDuplicado(t *testing.T) {
	mock := newMock(t)
	mock.ExpectExec(`INSERT INTO usuarios`).
		WithArgs(anyArgs(11)...).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "usuarios_email_key"})

	err := NewUserRepository(mock).Create(context.Background(), &entity.User{
		ID: testUserID, Email: "ana@example.com", Role: entity.RoleUser, CreatedAt: testTime, UpdatedAt: testTime,
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestUserRepo_Update_NoExiste(t *testing.T) {
	mock := newMock(t)
	mock.ExpectExec(`UPDATE usuarios SET`).
		WithArgs(anyArgs(10)...).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := NewUserRepository(mock).Update(context.Background(), &entity.User{ID: testUserID, Role: entity.RoleUser})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserRepo_SearchByName_EscapaComodines(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(`nombre ILIKE \$1 OR apellido ILIKE \$1`).
		WithArgs(`%50\%%`).
		WillReturnRows(userRow(mock))

	list, err := NewUserRepository(mock).SearchByName(context.Background(), "50%")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// Categorías
// ──────────────────────────────────────────────────────────────────────────────

func TestCategoryRepo_ListActive(t *testing.T) {
	mock := newMock(t)
	rows := mock.NewRows([]string{"id", "nombre", "descripcion", "activo", "fecha_creacion", "updated_at"}).
		AddRow(testCategoryID, "Alimentos", "", true, testTime, testTime)
	mock.ExpectQuery(`FROM categorias WHERE activo`).WillReturnRows(rows)

	list, err := NewCategoryRepository(mock).ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Alimentos", list[0].Name)
}

func TestCategoryRepo_Update(t *testing.T) {
	mock := newMock(t)
	mock.ExpectExec(`UPDATE categorias SET`).
		WithArgs(testCategoryID, "Juguetes", "para perros", false, testTime).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := NewCategoryRepository(mock).Update(context.Background(), &entity.Category{
		ID: testCategoryID, Name: "Juguetes", Description: "para perros", Active: false, UpdatedAt: testTime,
	})
	assert.NoError(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos
// ──────────────────────────────────────────────────────────────────────────────

func TestProductRepo_Create_CategoriaInexistente(t *testing.T) {
	mock := newMock(t)
	mock.ExpectExec(`INSERT INTO productos`).
		WithArgs(anyArgs(10)...).
		WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "productos_categoria_id_fkey"})

	err := NewProductRepository(mock).Create(context.Background(), &entity.Product{
		ID: testOrderID, CategoryID: testCategoryID, Name: "Croquetas", Price: decimal.NewFromInt(10),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductRepo_Update_StockNegativo(t *testing.T) {
	mock := newMock(t)
	mock.ExpectExec(`UPDATE productos SET`).
		WithArgs(anyArgs(9)...).
		WillReturnError(&pgconn.PgError{Code: "23514", ConstraintName: "productos_stock_check"})

	err := NewProductRepository(mock).Update(context.Background(), &entity.Product{ID: testOrderID, Stock: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestBuildProductQuery(t *testing.T) {
	featured := true
	since := testTime

	query, args := buildProductQuery(repository.ProductFilter{})
	assert.NotContains(t, query, "WHERE")
	assert.Empty(t, args)
	assert.True(t, strings.HasSuffix(query, "ORDER BY p.fecha_creacion DESC, p.id"))

	query, args = buildProductQuery(repository.ProductFilter{
		OnlyActive:   true,
		Featured:     &featured,
		InStock:      true,
		CategoryID:   testCategoryID,
		NameContains: "croq",
		CreatedSince: &since,
	})
	assert.Contains(t, query, "WHERE p.activo AND p.destacado = $1 AND p.stock > 0 AND p.categoria_id = $2 AND p.nombre ILIKE $3 AND p.fecha_creacion >= $4")
	assert.Equal(t, []any{true, testCategoryID, "%croq%", testTime}, args)
}

// ──────────────────────────────────────────────────────────────────────────────
// Pedidos
// ──────────────────────────────────────────────────────────────────────────────

func TestOrderRepo_List_RangoDeFechas(t *testing.T) {
	mock := newMock(t)
	from, to := testTime, testTime.Add(24*time.Hour)
	rows := mock.NewRows([]string{"id", "usuario_id", "estado", "observaciones", "fecha_pedido", "updated_at"}).
		AddRow(testOrderID, testUserID, "EN_PROCESO", "", testTime, testTime)
	mock.ExpectQuery(`FROM pedidos WHERE fecha_pedido >= \$1 AND fecha_pedido <= \$2 ORDER BY fecha_pedido DESC`).
		WithArgs(from, to).
		WillReturnRows(rows)

	list, err := NewOrderRepository(mock).List(context.Background(), repository.OrderFilter{From: &from, To: &to})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, entity.OrderInProgress, list[0].Status)
}

func TestOrderRepo_UpdateStatus(t *testing.T) {
	mock := newMock(t)
	mock.ExpectExec(`UPDATE pedidos SET estado = \$2`).
		WithArgs(testOrderID, "CANCELADO", testTime).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(`UPDATE pedidos SET estado = \$2`).
		WithArgs(testUserID, "CANCELADO", testTime).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	repo := NewOrderRepository(mock)
	require.NoError(t, repo.UpdateStatus(context.Background(), testOrderID, entity.OrderCancelled, testTime))
	err := repo.UpdateStatus(context.Background(), testUserID, entity.OrderCancelled, testTime)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOrderRepo_CountByStatus(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(`SELECT count\(\*\) FROM pedidos WHERE estado = \$1`).
		WithArgs("PENDIENTE").
		WillReturnRows(mock.NewRows([]string{"count"}).AddRow(int64(4)))

	n, err := NewOrderRepository(mock).CountByStatus(context.Background(), entity.OrderPending)
	require.NoError(t, err)
	assert.EqualValues(t, 4, n)
}

func TestOrderRepo_Create_UsuarioInexistente(t *testing.T) {
	mock := newMock(t)
	mock.ExpectExec(`INSERT INTO pedidos`).
		WithArgs(testOrderID, testUserID, "PENDIENTE", "", pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23503"})

	err := NewOrderRepository(mock).Create(context.Background(), &entity.Order{ID: testOrderID, UserID: testUserID, Status: entity.OrderPending})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
