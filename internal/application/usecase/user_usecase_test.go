package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mascotas-api/internal/application/dto"
	"github.com/jhoicas/mascotas-api/internal/application/usecase"
	"github.com/jhoicas/mascotas-api/internal/domain"
	"github.com/jhoicas/mascotas-api/internal/infrastructure/memory"
	pkgjwt "github.com/jhoicas/mascotas-api/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

func newUserUseCase(store *memory.Store) *usecase.UserUseCase {
	return usecase.NewUserUseCase(store.Users(), usecase.JWTConfig{Secret: testSecret, ExpMinutes: 60, Issuer: "tienda-test"})
}

func createUser(t *testing.T, uc *usecase.UserUseCase, email string) *dto.UserResponse {
	t.Helper()
	u, err := uc.Create(context.Background(), dto.CreateUserRequest{
		Nombre:   "Laura",
		Apellido: "Martínez",
		Email:    email,
		Password: "secreto123",
	})
	require.NoError(t, err)
	return u
}

func TestUserUseCase_CreateYConsulta(t *testing.T) {
	ctx := context.Background()
	uc := newUserUseCase(memory.NewStore())

	u := createUser(t, uc, "Laura@Example.com")
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "laura@example.com", u.Email)
	assert.Equal(t, "USER", u.Role)
	assert.True(t, u.Activo)

	byID, err := uc.GetByID(ctx, u.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, u.Email, byID.Email)

	byEmail, err := uc.GetByEmail(ctx, "LAURA@example.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, u.ID, byEmail.ID)
}

func TestUserUseCase_EmailDuplicado(t *testing.T) {
	uc := newUserUseCase(memory.NewStore())
	createUser(t, uc, "dup@example.com")

	_, err := uc.Create(context.Background(), dto.CreateUserRequest{
		Nombre: "Otro", Apellido: "Usuario", Email: "DUP@example.com", Password: "secreto123",
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestUserUseCase_EmailDuplicadoConUsuarioInactivo(t *testing.T) {
	ctx := context.Background()
	uc := newUserUseCase(memory.NewStore())
	u := createUser(t, uc, "baja@example.com")
	require.NoError(t, uc.Deactivate(ctx, u.ID))

	_, err := uc.Create(ctx, dto.CreateUserRequest{
		Nombre: "Otro", Apellido: "Usuario", Email: "baja@example.com", Password: "secreto123",
	})
	assert.ErrorIs(t, err, domain.ErrConflict, "el email sigue reservado aunque el usuario esté inactivo")
}

func TestUserUseCase_RoleInvalido(t *testing.T) {
	_, err := newUserUseCase(memory.NewStore()).Create(context.Background(), dto.CreateUserRequest{
		Nombre: "A", Apellido: "B", Email: "r@example.com", Password: "secreto123", Role: "SUPERUSER",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUserUseCase_DeactivateSoloAfectaListaActivos(t *testing.T) {
	ctx := context.Background()
	uc := newUserUseCase(memory.NewStore())
	u := createUser(t, uc, "x@example.com")
	createUser(t, uc, "y@example.com")

	require.NoError(t, uc.Deactivate(ctx, u.ID))

	all, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	active, err := uc.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.NotEqual(t, u.ID, active[0].ID)

	err = uc.Deactivate(ctx, "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserUseCase_UpdateConservaPassword(t *testing.T) {
	ctx := context.Background()
	uc := newUserUseCase(memory.NewStore())
	u := createUser(t, uc, "upd@example.com")

	updated, err := uc.Update(ctx, u.ID, dto.UpdateUserRequest{
		Nombre: "Laura María", Apellido: "Martínez", Email: "upd@example.com", Telefono: "3001234567",
	})
	require.NoError(t, err)
	assert.Equal(t, "Laura María", updated.Nombre)
	assert.Equal(t, "3001234567", updated.Telefono)

	_, ok, err := uc.ValidateCredentials(ctx, "upd@example.com", "secreto123")
	require.NoError(t, err)
	assert.True(t, ok, "password vacío en la actualización conserva el anterior")
}

func TestUserUseCase_UpdateEmailTomado(t *testing.T) {
	ctx := context.Background()
	uc := newUserUseCase(memory.NewStore())
	createUser(t, uc, "uno@example.com")
	dos := createUser(t, uc, "dos@example.com")

	_, err := uc.Update(ctx, dos.ID, dto.UpdateUserRequest{Nombre: "Dos", Apellido: "B", Email: "uno@example.com"})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestUserUseCase_ChangeRole(t *testing.T) {
	ctx := context.Background()
	uc := newUserUseCase(memory.NewStore())
	u := createUser(t, uc, "rol@example.com")

	out, err := uc.ChangeRole(ctx, u.ID, "admin")
	require.NoError(t, err)
	assert.Equal(t, "ADMIN", out.Role)

	_, err = uc.ChangeRole(ctx, u.ID, "ROOT")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUserUseCase_SearchByName(t *testing.T) {
	ctx := context.Background()
	uc := newUserUseCase(memory.NewStore())
	createUser(t, uc, "s@example.com")

	list, err := uc.SearchByName(ctx, "martí")
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = uc.SearchByName(ctx, "   ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUserUseCase_Login(t *testing.T) {
	ctx := context.Background()
	uc := newUserUseCase(memory.NewStore())
	u := createUser(t, uc, "login@example.com")

	res, err := uc.Login(ctx, dto.LoginRequest{Email: "login@example.com", Password: "secreto123"})
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, u.ID, res.User.ID)

	claims, err := pkgjwt.Parse(testSecret, res.Token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID)
	assert.Equal(t, "USER", claims.Role)

	res, err = uc.Login(ctx, dto.LoginRequest{Email: "login@example.com", Password: "incorrecta"})
	require.NoError(t, err)
	assert.Nil(t, res, "credenciales incorrectas no devuelven usuario")

	require.NoError(t, uc.Deactivate(ctx, u.ID))
	res, err = uc.Login(ctx, dto.LoginRequest{Email: "login@example.com", Password: "secreto123"})
	require.NoError(t, err)
	assert.Nil(t, res, "un usuario inactivo no puede iniciar sesión")
}

func TestUserUseCase_Login_CuerpoMalFormadoEsCredencialInvalida(t *testing.T) {
	ctx := context.Background()
	uc := newUserUseCase(memory.NewStore())
	createUser(t, uc, "login@example.com")

	for _, in := range []dto.LoginRequest{
		{Email: "noexiste", Password: "x"},
		{Email: "login@example.com", Password: ""},
		{},
	} {
		res, err := uc.Login(ctx, in)
		require.NoError(t, err)
		assert.Nil(t, res)
	}
}
