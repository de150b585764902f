package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mascotas-api/internal/application/dto"
	"github.com/jhoicas/mascotas-api/internal/application/usecase"
	"github.com/jhoicas/mascotas-api/internal/domain"
	"github.com/jhoicas/mascotas-api/internal/domain/entity"
	"github.com/jhoicas/mascotas-api/internal/infrastructure/memory"
)

// fakeReceipts registra la última llamada y devuelve un PDF mínimo.
type fakeReceipts struct {
	order    *entity.Order
	customer *entity.User
}

func (f *fakeReceipts) GenerateOrderReceipt(_ context.Context, o *entity.Order, u *entity.User) ([]byte, error) {
	f.order, f.customer = o, u
	return []byte("%PDF-1.3 fake"), nil
}

type orderFixture struct {
	store    *memory.Store
	users    *usecase.UserUseCase
	orders   *usecase.OrderUseCase
	receipts *fakeReceipts
}

func newOrderFixture() orderFixture {
	store := memory.NewStore()
	receipts := &fakeReceipts{}
	return orderFixture{
		store:    store,
		users:    newUserUseCase(store),
		orders:   usecase.NewOrderUseCase(store.Orders(), store.Users(), receipts),
		receipts: receipts,
	}
}

func (f orderFixture) order(t *testing.T, userID string) *dto.OrderResponse {
	t.Helper()
	out, err := f.orders.Create(context.Background(), dto.CreateOrderRequest{UsuarioID: userID, Observaciones: "entregar en portería"})
	require.NoError(t, err)
	return out
}

func TestOrderUseCase_CreatePendiente(t *testing.T) {
	f := newOrderFixture()
	u := createUser(t, f.users, "cliente@example.com")

	o := f.order(t, u.ID)
	assert.Equal(t, "PENDIENTE", o.Estado)
	assert.Equal(t, u.ID, o.UsuarioID)
	assert.WithinDuration(t, time.Now(), o.FechaPedido, 5*time.Second)
}

func TestOrderUseCase_CreateUsuarioInvalido(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture()

	_, err := f.orders.Create(ctx, dto.CreateOrderRequest{UsuarioID: "6f1c2a8e-0000-4000-8000-000000000001"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "usuario inexistente")

	u := createUser(t, f.users, "inactivo@example.com")
	require.NoError(t, f.users.Deactivate(ctx, u.ID))
	_, err = f.orders.Create(ctx, dto.CreateOrderRequest{UsuarioID: u.ID})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "usuario inactivo")
}

func TestOrderUseCase_CancelSinImportarEstado(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture()
	u := createUser(t, f.users, "cancel@example.com")

	for _, prev := range entity.OrderStatuses {
		o := f.order(t, u.ID)
		_, err := f.orders.SetStatus(ctx, o.ID, string(prev))
		require.NoError(t, err)

		out, err := f.orders.Cancel(ctx, o.ID)
		require.NoError(t, err)
		assert.Equal(t, "CANCELADO", out.Estado, "desde %s", prev)

		got, err := f.orders.GetByID(ctx, o.ID)
		require.NoError(t, err)
		assert.Equal(t, "CANCELADO", got.Estado)
	}
}

func TestOrderUseCase_SetStatusPermisivo(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture()
	u := createUser(t, f.users, "estado@example.com")
	o := f.order(t, u.ID)

	_, err := f.orders.SetStatus(ctx, o.ID, "entregado")
	require.NoError(t, err)
	out, err := f.orders.SetStatus(ctx, o.ID, "PENDIENTE")
	require.NoError(t, err)
	assert.Equal(t, "PENDIENTE", out.Estado, "no se bloquean transiciones desde estados finales")

	_, err = f.orders.SetStatus(ctx, o.ID, "PERDIDO")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.orders.SetStatus(ctx, "00000000-0000-0000-0000-000000000000", "PENDIENTE")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOrderUseCase_ListadosYConteo(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture()
	a := createUser(t, f.users, "a@example.com")
	b := createUser(t, f.users, "b@example.com")

	f.order(t, a.ID)
	o2 := f.order(t, a.ID)
	f.order(t, b.ID)
	_, err := f.orders.SetStatus(ctx, o2.ID, "EN_PROCESO")
	require.NoError(t, err)

	all, err := f.orders.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	byUser, err := f.orders.ListByUser(ctx, a.ID)
	require.NoError(t, err)
	assert.Len(t, byUser, 2)

	pending, err := f.orders.ListByStatus(ctx, "pendiente")
	require.NoError(t, err)
	assert.Len(t, pending, 2)

	n, err := f.orders.CountByStatus(ctx, "EN_PROCESO")
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	_, err = f.orders.ListByStatus(ctx, "DESCONOCIDO")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestOrderUseCase_RangoDeFechas(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture()
	u := createUser(t, f.users, "fechas@example.com")
	o := f.order(t, u.ID)

	exact, err := f.orders.ListByDateRange(ctx, o.FechaPedido, o.FechaPedido)
	require.NoError(t, err)
	assert.Len(t, exact, 1, "el rango es inclusivo en ambos extremos")

	past := o.FechaPedido.Add(-48 * time.Hour)
	none, err := f.orders.ListByDateRange(ctx, past, past.Add(time.Hour))
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = f.orders.ListByDateRange(ctx, o.FechaPedido, past)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestOrderUseCase_Receipt(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture()
	u := createUser(t, f.users, "pdf@example.com")
	o := f.order(t, u.ID)

	doc, err := f.orders.Receipt(ctx, o.ID)
	require.NoError(t, err)
	assert.Contains(t, string(doc), "%PDF")
	require.NotNil(t, f.receipts.order)
	assert.Equal(t, o.ID, f.receipts.order.ID)
	assert.Equal(t, "pdf@example.com", f.receipts.customer.Email)

	_, err = f.orders.Receipt(ctx, "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	sinGenerador := usecase.NewOrderUseCase(f.store.Orders(), f.store.Users(), nil)
	_, err = sinGenerador.Receipt(ctx, o.ID)
	assert.ErrorIs(t, err, usecase.ErrReceiptUnavailable)
}
