package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/mascotas-api/internal/application/dto"
	"github.com/jhoicas/mascotas-api/internal/domain"
	"github.com/jhoicas/mascotas-api/internal/domain/entity"
	"github.com/jhoicas/mascotas-api/internal/domain/repository"
	"github.com/jhoicas/mascotas-api/pkg/textnorm"
	"github.com/jhoicas/mascotas-api/pkg/validate"
)

// CategoryUseCase casos de uso CRUD para categorías (baja lógica).
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

func (uc *CategoryUseCase) List(ctx context.Context) ([]dto.CategoryResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toCategoryResponses(list), nil
}

func (uc *CategoryUseCase) ListActive(ctx context.Context) ([]dto.CategoryResponse, error) {
	list, err := uc.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	return toCategoryResponses(list), nil
}

// GetByID obtiene una categoría por ID. Devuelve (nil, nil) si no existe.
func (uc *CategoryUseCase) GetByID(ctx context.Context, id string) (*dto.CategoryResponse, error) {
	if !validID(id) {
		return nil, nil
	}
	category, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}
	return toCategoryResponse(category), nil
}

// Create crea una categoría; por defecto activa.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	name := textnorm.Clean(in.Nombre)
	if name == "" {
		return nil, domain.Invalid("nombre es requerido")
	}
	now := time.Now()
	category := &entity.Category{
		ID:          uuid.New().String(),
		Name:        name,
		Description: textnorm.Clean(in.Descripcion),
		Active:      boolOr(in.Activo, true),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// Update reemplaza nombre y descripción; Activo nil conserva el estado actual.
func (uc *CategoryUseCase) Update(ctx context.Context, id string, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	category, err := uc.mustGet(ctx, id)
	if err != nil {
		return nil, err
	}
	name := textnorm.Clean(in.Nombre)
	if name == "" {
		return nil, domain.Invalid("nombre es requerido")
	}
	category.Name = name
	category.Description = textnorm.Clean(in.Descripcion)
	category.Active = boolOr(in.Activo, category.Active)
	category.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// Deactivate baja lógica de la categoría. Sus productos no se modifican.
func (uc *CategoryUseCase) Deactivate(ctx context.Context, id string) error {
	category, err := uc.mustGet(ctx, id)
	if err != nil {
		return err
	}
	category.Active = false
	category.UpdatedAt = time.Now()
	return uc.repo.Update(ctx, category)
}

func (uc *CategoryUseCase) mustGet(ctx context.Context, id string) (*entity.Category, error) {
	if !validID(id) {
		return nil, domain.NotFound("categoría %s no encontrada", id)
	}
	category, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.NotFound("categoría %s no encontrada", id)
	}
	return category, nil
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		ID:            c.ID,
		Nombre:        c.Name,
		Descripcion:   c.Description,
		Activo:        c.Active,
		FechaCreacion: c.CreatedAt,
	}
}

func toCategoryResponses(list []*entity.Category) []dto.CategoryResponse {
	out := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toCategoryResponse(c))
	}
	return out
}
