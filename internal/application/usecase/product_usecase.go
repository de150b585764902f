package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/mascotas-api/internal/application/dto"
	"github.com/jhoicas/mascotas-api/internal/domain"
	"github.com/jhoicas/mascotas-api/internal/domain/entity"
	"github.com/jhoicas/mascotas-api/internal/domain/repository"
	"github.com/jhoicas/mascotas-api/pkg/textnorm"
	"github.com/jhoicas/mascotas-api/pkg/validate"
)

// DefaultRecentWindow ventana de "productos recientes" cuando no se configura otra.
const DefaultRecentWindow = 30 * 24 * time.Hour

// MaxRecentDays tope de ?dias=; valores mayores desbordan time.Duration.
const MaxRecentDays = 36500

// ProductUseCase casos de uso del catálogo. Todo producto pertenece a una categoría existente.
type ProductUseCase struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
	recentWindow time.Duration
}

// NewProductUseCase construye el caso de uso. recentWindow <= 0 usa DefaultRecentWindow.
func NewProductUseCase(repo repository.ProductRepository, categoryRepo repository.CategoryRepository, recentWindow time.Duration) *ProductUseCase {
	if recentWindow <= 0 {
		recentWindow = DefaultRecentWindow
	}
	return &ProductUseCase{repo: repo, categoryRepo: categoryRepo, recentWindow: recentWindow}
}

func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	return uc.list(ctx, repository.ProductFilter{})
}

func (uc *ProductUseCase) ListActive(ctx context.Context) ([]dto.ProductResponse, error) {
	return uc.list(ctx, repository.ProductFilter{OnlyActive: true})
}

// ListFeatured productos activos marcados como destacados.
func (uc *ProductUseCase) ListFeatured(ctx context.Context) ([]dto.ProductResponse, error) {
	featured := true
	return uc.list(ctx, repository.ProductFilter{OnlyActive: true, Featured: &featured})
}

// ListAvailable productos activos con stock > 0.
func (uc *ProductUseCase) ListAvailable(ctx context.Context) ([]dto.ProductResponse, error) {
	return uc.list(ctx, repository.ProductFilter{OnlyActive: true, InStock: true})
}

// ListRecent productos activos creados dentro de la ventana. days > 0 reemplaza la ventana configurada.
func (uc *ProductUseCase) ListRecent(ctx context.Context, days int) ([]dto.ProductResponse, error) {
	if days > MaxRecentDays {
		return nil, domain.Invalid("el parámetro dias no puede superar %d: %d", MaxRecentDays, days)
	}
	window := uc.recentWindow
	if days > 0 {
		window = time.Duration(days) * 24 * time.Hour
	}
	since := time.Now().Add(-window)
	return uc.list(ctx, repository.ProductFilter{OnlyActive: true, CreatedSince: &since})
}

// ListByCategory todos los productos cuya categoría es categoryID.
func (uc *ProductUseCase) ListByCategory(ctx context.Context, categoryID string) ([]dto.ProductResponse, error) {
	if !validID(categoryID) {
		return []dto.ProductResponse{}, nil
	}
	return uc.list(ctx, repository.ProductFilter{CategoryID: categoryID})
}

// SearchByName busca por subcadena del nombre (sin distinguir mayúsculas).
func (uc *ProductUseCase) SearchByName(ctx context.Context, name string) ([]dto.ProductResponse, error) {
	name = textnorm.Clean(name)
	if name == "" {
		return nil, domain.Invalid("el parámetro nombre es requerido")
	}
	return uc.list(ctx, repository.ProductFilter{NameContains: name})
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	if !validID(id) {
		return nil, nil
	}
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Create crea un producto; la categoría debe existir y precio/stock no pueden ser negativos.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.ProductRequest) (*dto.ProductResponse, error) {
	category, err := uc.checkRequest(ctx, in)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		CategoryID:  category.ID,
		Name:        textnorm.Clean(in.Nombre),
		Description: textnorm.Clean(in.Descripcion),
		Price:       in.Precio,
		Stock:       in.Stock,
		Featured:    in.Destacado,
		Active:      boolOr(in.Activo, true),
		CreatedAt:   now,
		UpdatedAt:   now,
		Category:    category,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update reemplaza los datos del producto; Activo nil conserva el estado actual.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.ProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.mustGet(ctx, id)
	if err != nil {
		return nil, err
	}
	category, err := uc.checkRequest(ctx, in)
	if err != nil {
		return nil, err
	}
	product.CategoryID = category.ID
	product.Category = category
	product.Name = textnorm.Clean(in.Nombre)
	product.Description = textnorm.Clean(in.Descripcion)
	product.Price = in.Precio
	product.Stock = in.Stock
	product.Featured = in.Destacado
	product.Active = boolOr(in.Activo, product.Active)
	return uc.save(ctx, product)
}

// Deactivate baja lógica del producto.
func (uc *ProductUseCase) Deactivate(ctx context.Context, id string) error {
	product, err := uc.mustGet(ctx, id)
	if err != nil {
		return err
	}
	product.Active = false
	_, err = uc.save(ctx, product)
	return err
}

// SetFeatured marca o desmarca el producto como destacado.
func (uc *ProductUseCase) SetFeatured(ctx context.Context, id string, featured bool) (*dto.ProductResponse, error) {
	product, err := uc.mustGet(ctx, id)
	if err != nil {
		return nil, err
	}
	product.Featured = featured
	return uc.save(ctx, product)
}

// SetStock fija la cantidad disponible. No se aceptan valores negativos.
func (uc *ProductUseCase) SetStock(ctx context.Context, id string, stock int) (*dto.ProductResponse, error) {
	if stock < 0 {
		return nil, domain.Invalid("el stock no puede ser negativo: %d", stock)
	}
	product, err := uc.mustGet(ctx, id)
	if err != nil {
		return nil, err
	}
	product.Stock = stock
	return uc.save(ctx, product)
}

func (uc *ProductUseCase) list(ctx context.Context, f repository.ProductFilter) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *toProductResponse(p))
	}
	return out, nil
}

func (uc *ProductUseCase) save(ctx context.Context, p *entity.Product) (*dto.ProductResponse, error) {
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

func (uc *ProductUseCase) checkRequest(ctx context.Context, in dto.ProductRequest) (*entity.Category, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	if textnorm.Clean(in.Nombre) == "" {
		return nil, domain.Invalid("nombre es requerido")
	}
	if in.Precio.LessThan(decimal.Zero) {
		return nil, domain.Invalid("el precio no puede ser negativo")
	}
	category, err := uc.categoryRepo.GetByID(ctx, in.CategoriaID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.Invalid("la categoría %s no existe", in.CategoriaID)
	}
	return category, nil
}

func (uc *ProductUseCase) mustGet(ctx context.Context, id string) (*entity.Product, error) {
	if !validID(id) {
		return nil, domain.NotFound("producto %s no encontrado", id)
	}
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.NotFound("producto %s no encontrado", id)
	}
	return product, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	out := &dto.ProductResponse{
		ID:            p.ID,
		Nombre:        p.Name,
		Descripcion:   p.Description,
		Precio:        p.Price,
		Stock:         p.Stock,
		Destacado:     p.Featured,
		Activo:        p.Active,
		Disponible:    p.Available(),
		FechaCreacion: p.CreatedAt,
		CategoriaID:   p.CategoryID,
	}
	if p.Category != nil {
		out.Categoria = &dto.CategorySummary{
			ID:     p.Category.ID,
			Nombre: p.Category.Name,
			Activo: p.Category.Active,
		}
	}
	return out
}
