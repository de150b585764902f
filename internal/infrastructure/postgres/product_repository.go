package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/mascotas-api/internal/domain"
	"github.com/jhoicas/mascotas-api/internal/domain/entity"
	"github.com/jhoicas/mascotas-api/internal/domain/repository"
	"github.com/jhoicas/mascotas-api/pkg/textnorm"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// categoria_id es NOT NULL con FK, así que el JOIN siempre encuentra la categoría.
const productSelect = `
	SELECT p.id, p.categoria_id, p.nombre, p.descripcion, p.precio, p.stock, p.destacado, p.activo,
		p.fecha_creacion, p.updated_at,
		c.id, c.nombre, c.descripcion, c.activo, c.fecha_creacion, c.updated_at
	FROM productos p
	JOIN categorias c ON c.id = p.categoria_id`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto. FK y CHECK del esquema se traducen a domain.Invalid.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	query := `
		INSERT INTO productos (id, categoria_id, nombre, descripcion, precio, stock, destacado, activo, fecha_creacion, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.CategoryID, p.Name, p.Description, p.Price, p.Stock, p.Featured, p.Active,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return translate("insert product", err)
	}
	return nil
}

// GetByID obtiene un producto por ID junto con su categoría.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, productSelect+` WHERE p.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// Update reemplaza las columnas editables del producto.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	query := `
		UPDATE productos SET categoria_id = $2, nombre = $3, descripcion = $4, precio = $5, stock = $6,
			destacado = $7, activo = $8, updated_at = $9
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		p.ID, p.CategoryID, p.Name, p.Description, p.Price, p.Stock, p.Featured, p.Active, p.UpdatedAt,
	)
	if err != nil {
		return translate("update product", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.NotFound("producto %s no encontrado", p.ID)
	}
	return nil
}

// List lista productos según el filtro, más recientes primero.
func (r *ProductRepo) List(ctx context.Context, f repository.ProductFilter) ([]*entity.Product, error) {
	query, args := buildProductQuery(f)
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// buildProductQuery arma el WHERE con placeholders numerados; solo los campos no vacíos filtran.
func buildProductQuery(f repository.ProductFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if f.OnlyActive {
		conds = append(conds, "p.activo")
	}
	if f.Featured != nil {
		add("p.destacado = $%d", *f.Featured)
	}
	if f.InStock {
		conds = append(conds, "p.stock > 0")
	}
	if f.CategoryID != "" {
		add("p.categoria_id = $%d", f.CategoryID)
	}
	if f.NameContains != "" {
		add("p.nombre ILIKE $%d", textnorm.LikePattern(f.NameContains))
	}
	if f.CreatedSince != nil {
		add("p.fecha_creacion >= $%d", *f.CreatedSince)
	}

	var sb strings.Builder
	sb.WriteString(productSelect)
	if len(conds) > 0 {
		sb.WriteString("\n\tWHERE ")
		sb.WriteString(strings.Join(conds, " AND "))
	}
	sb.WriteString("\n\tORDER BY p.fecha_creacion DESC, p.id")
	return sb.String(), args
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	var c entity.Category
	err := row.Scan(
		&p.ID, &p.CategoryID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.Featured, &p.Active,
		&p.CreatedAt, &p.UpdatedAt,
		&c.ID, &c.Name, &c.Description, &c.Active, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.Category = &c
	return &p, nil
}
