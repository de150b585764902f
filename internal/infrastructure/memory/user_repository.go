package memory

import (
	"context"
	"strings"

	"github.com/jhoicas/mascotas-api/internal/domain"
	"github.com/jhoicas/mascotas-api/internal/domain/entity"
	"github.com/jhoicas/mascotas-api/internal/domain/repository"
)

// UserRepo implementa repository.UserRepository sobre Store.
type UserRepo struct {
	s *Store
}

var _ repository.UserRepository = (*UserRepo)(nil)

func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[user.ID]; ok {
		return domain.Conflict("el usuario %s ya existe", user.ID)
	}
	if r.emailTaken(user.Email, user.ID) {
		return domain.Conflict("el email %s ya está registrado", user.Email)
	}
	r.s.users[user.ID] = *user
	return nil
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users {
		if strings.EqualFold(u.Email, email) {
			return &u, nil
		}
	}
	return nil, nil
}

func (r *UserRepo) Update(ctx context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[user.ID]; !ok {
		return domain.NotFound("usuario %s no encontrado", user.ID)
	}
	if r.emailTaken(user.Email, user.ID) {
		return domain.Conflict("el email %s ya está registrado", user.Email)
	}
	r.s.users[user.ID] = *user
	return nil
}

func (r *UserRepo) List(ctx context.Context) ([]*entity.User, error) {
	return r.filter(func(*entity.User) bool { return true }), nil
}

func (r *UserRepo) ListActive(ctx context.Context) ([]*entity.User, error) {
	return r.filter(func(u *entity.User) bool { return u.Active }), nil
}

// SearchByName coincide por subcadena en nombre o apellido, sin distinguir mayúsculas.
func (r *UserRepo) SearchByName(ctx context.Context, name string) ([]*entity.User, error) {
	term := strings.ToLower(name)
	return r.filter(func(u *entity.User) bool {
		return strings.Contains(strings.ToLower(u.Name), term) ||
			strings.Contains(strings.ToLower(u.LastName), term)
	}), nil
}

// emailTaken requiere el lock tomado.
func (r *UserRepo) emailTaken(email, exceptID string) bool {
	for id, u := range r.s.users {
		if id != exceptID && strings.EqualFold(u.Email, email) {
			return true
		}
	}
	return false
}

func (r *UserRepo) filter(keep func(*entity.User) bool) []*entity.User {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		if keep(&u) {
			out = append(out, &u)
		}
	}
	sortNewestFirst(out,
		func(u *entity.User) int64 { return u.CreatedAt.UnixNano() },
		func(u *entity.User) string { return u.ID })
	return out
}
