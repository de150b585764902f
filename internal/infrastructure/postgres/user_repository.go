package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/mascotas-api/internal/domain"
	"github.com/jhoicas/mascotas-api/internal/domain/entity"
	"github.com/jhoicas/mascotas-api/internal/domain/repository"
	"github.com/jhoicas/mascotas-api/pkg/textnorm"
)

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `id, nombre, apellido, email, password_hash, telefono, direccion, role, activo, fecha_registro, updated_at`

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste un nuevo usuario. El índice único sobre lower(email) garantiza la unicidad.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO usuarios (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		user.ID, user.Name, user.LastName, user.Email, user.PasswordHash, user.Phone, user.Address,
		string(user.Role), user.Active, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Conflict("el email %s ya está registrado", user.Email)
		}
		return translate("insert user", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.getOne(ctx, "get user by id", `SELECT `+userColumns+` FROM usuarios WHERE id = $1`, id)
}

// GetByEmail obtiene un usuario por email (sin distinguir mayúsculas).
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.getOne(ctx, "get user by email", `SELECT `+userColumns+` FROM usuarios WHERE lower(email) = lower($1) LIMIT 1`, email)
}

// Update reemplaza todas las columnas editables del usuario.
func (r *UserRepo) Update(ctx context.Context, user *entity.User) error {
	query := `
		UPDATE usuarios SET nombre = $2, apellido = $3, email = $4, password_hash = $5, telefono = $6,
			direccion = $7, role = $8, activo = $9, updated_at = $10
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		user.ID, user.Name, user.LastName, user.Email, user.PasswordHash, user.Phone, user.Address,
		string(user.Role), user.Active, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Conflict("el email %s ya está registrado", user.Email)
		}
		return translate("update user", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.NotFound("usuario %s no encontrado", user.ID)
	}
	return nil
}

// List lista todos los usuarios, más recientes primero.
func (r *UserRepo) List(ctx context.Context) ([]*entity.User, error) {
	return r.list(ctx, "list users", `SELECT `+userColumns+` FROM usuarios ORDER BY fecha_registro DESC, id`)
}

// ListActive lista los usuarios con activo = true.
func (r *UserRepo) ListActive(ctx context.Context) ([]*entity.User, error) {
	return r.list(ctx, "list active users", `SELECT `+userColumns+` FROM usuarios WHERE activo ORDER BY fecha_registro DESC, id`)
}

// SearchByName busca por subcadena en nombre o apellido.
func (r *UserRepo) SearchByName(ctx context.Context, name string) ([]*entity.User, error) {
	return r.list(ctx, "search users",
		`SELECT `+userColumns+` FROM usuarios WHERE nombre ILIKE $1 OR apellido ILIKE $1 ORDER BY fecha_registro DESC, id`,
		textnorm.LikePattern(name))
}

func (r *UserRepo) getOne(ctx context.Context, op, query string, args ...any) (*entity.User, error) {
	u, err := scanUser(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

func (r *UserRepo) list(ctx context.Context, op, query string, args ...any) ([]*entity.User, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()
	list := make([]*entity.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	var role string
	err := row.Scan(
		&u.ID, &u.Name, &u.LastName, &u.Email, &u.PasswordHash, &u.Phone, &u.Address,
		&role, &u.Active, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	u.Role = entity.Role(role)
	return &u, nil
}
