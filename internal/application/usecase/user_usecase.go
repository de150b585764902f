package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/mascotas-api/internal/application/dto"
	"github.com/jhoicas/mascotas-api/internal/domain"
	"github.com/jhoicas/mascotas-api/internal/domain/entity"
	"github.com/jhoicas/mascotas-api/internal/domain/repository"
	"github.com/jhoicas/mascotas-api/pkg/jwt"
	"github.com/jhoicas/mascotas-api/pkg/textnorm"
	"github.com/jhoicas/mascotas-api/pkg/validate"
)

// JWTConfig configuración para el token que acompaña al login. Secret vacío = sin token.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// LoginResult usuario autenticado y, si hay secret configurado, su token.
type LoginResult struct {
	User  dto.UserResponse
	Token string
}

// UserUseCase aplica reglas de negocio para usuarios: email único, baja lógica y credenciales.
type UserUseCase struct {
	repo   repository.UserRepository
	jwtCfg JWTConfig
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository, jwtCfg JWTConfig) *UserUseCase {
	return &UserUseCase{repo: repo, jwtCfg: jwtCfg}
}

// List devuelve todos los usuarios (activos e inactivos).
func (uc *UserUseCase) List(ctx context.Context) ([]dto.UserResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toUserResponses(list), nil
}

// ListActive devuelve solo los usuarios activos.
func (uc *UserUseCase) ListActive(ctx context.Context) ([]dto.UserResponse, error) {
	list, err := uc.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	return toUserResponses(list), nil
}

// SearchByName busca por subcadena en nombre o apellido (sin distinguir mayúsculas).
func (uc *UserUseCase) SearchByName(ctx context.Context, name string) ([]dto.UserResponse, error) {
	name = textnorm.Clean(name)
	if name == "" {
		return nil, domain.Invalid("el parámetro nombre es requerido")
	}
	list, err := uc.repo.SearchByName(ctx, name)
	if err != nil {
		return nil, err
	}
	return toUserResponses(list), nil
}

// GetByID obtiene un usuario por ID. Devuelve (nil, nil) si no existe.
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	if !validID(id) {
		return nil, nil
	}
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return toUserResponse(user), nil
}

// GetByEmail obtiene un usuario por email. Devuelve (nil, nil) si no existe.
func (uc *UserUseCase) GetByEmail(ctx context.Context, email string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByEmail(ctx, textnorm.Email(email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return toUserResponse(user), nil
}

// Create registra un usuario: valida, rechaza emails repetidos y hashea el password con bcrypt.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	role := entity.RoleUser
	if in.Role != "" {
		r, err := entity.ParseRole(in.Role)
		if err != nil {
			return nil, err
		}
		role = r
	}
	email := textnorm.Email(in.Email)
	existing, err := uc.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.Conflict("el email %s ya está registrado", email)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         textnorm.Clean(in.Nombre),
		LastName:     textnorm.Clean(in.Apellido),
		Email:        email,
		PasswordHash: string(hash),
		Phone:        textnorm.Clean(in.Telefono),
		Address:      textnorm.Clean(in.Direccion),
		Role:         role,
		Active:       boolOr(in.Activo, true),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Update reemplaza los datos de perfil. Password vacío conserva el hash actual.
func (uc *UserUseCase) Update(ctx context.Context, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	user, err := uc.mustGet(ctx, id)
	if err != nil {
		return nil, err
	}
	email := textnorm.Email(in.Email)
	if email != user.Email {
		other, err := uc.repo.GetByEmail(ctx, email)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != user.ID {
			return nil, domain.Conflict("el email %s ya está registrado", email)
		}
	}
	if in.Role != nil {
		r, err := entity.ParseRole(*in.Role)
		if err != nil {
			return nil, err
		}
		user.Role = r
	}
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	user.Name = textnorm.Clean(in.Nombre)
	user.LastName = textnorm.Clean(in.Apellido)
	user.Email = email
	user.Phone = textnorm.Clean(in.Telefono)
	user.Address = textnorm.Clean(in.Direccion)
	user.Active = boolOr(in.Activo, user.Active)
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Deactivate baja lógica: el usuario sigue existiendo pero con activo=false.
func (uc *UserUseCase) Deactivate(ctx context.Context, id string) error {
	user, err := uc.mustGet(ctx, id)
	if err != nil {
		return err
	}
	user.Active = false
	user.UpdatedAt = time.Now()
	return uc.repo.Update(ctx, user)
}

// ChangeRole asigna USER o ADMIN.
func (uc *UserUseCase) ChangeRole(ctx context.Context, id, role string) (*dto.UserResponse, error) {
	r, err := entity.ParseRole(role)
	if err != nil {
		return nil, err
	}
	user, err := uc.mustGet(ctx, id)
	if err != nil {
		return nil, err
	}
	user.Role = r
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// ValidateCredentials verifica email/password contra el hash bcrypt. Usuarios inactivos no validan.
func (uc *UserUseCase) ValidateCredentials(ctx context.Context, email, password string) (*entity.User, bool, error) {
	user, err := uc.repo.GetByEmail(ctx, textnorm.Email(email))
	if err != nil {
		return nil, false, err
	}
	if user == nil || !user.Active {
		return nil, false, nil
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, false, nil
	}
	return user, true, nil
}

// Login valida credenciales y devuelve el usuario (y token si aplica). nil = credenciales inválidas,
// incluido un email mal formado o un password vacío.
func (uc *UserUseCase) Login(ctx context.Context, in dto.LoginRequest) (*LoginResult, error) {
	if err := validate.Struct(in); err != nil {
		return nil, nil
	}
	user, ok, err := uc.ValidateCredentials(ctx, in.Email, in.Password)
	if err != nil || !ok {
		return nil, err
	}
	out := &LoginResult{User: *toUserResponse(user)}
	if uc.jwtCfg.Secret != "" {
		token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, string(user.Role), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
		if err != nil {
			return nil, err
		}
		out.Token = token
	}
	return out, nil
}

func (uc *UserUseCase) mustGet(ctx context.Context, id string) (*entity.User, error) {
	if !validID(id) {
		return nil, domain.NotFound("usuario %s no encontrado", id)
	}
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NotFound("usuario %s no encontrado", id)
	}
	return user, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:            u.ID,
		Nombre:        u.Name,
		Apellido:      u.LastName,
		Email:         u.Email,
		Telefono:      u.Phone,
		Direccion:     u.Address,
		Role:          string(u.Role),
		Activo:        u.Active,
		FechaRegistro: u.CreatedAt,
	}
}

func toUserResponses(list []*entity.User) []dto.UserResponse {
	out := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, *toUserResponse(u))
	}
	return out
}
