package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/mascotas-api/internal/domain"
)

// Códigos SQLSTATE que se traducen a errores de dominio.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	return pgCode(err) == codeUniqueViolation
}

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// translate convierte violaciones de constraints en errores de dominio; el resto se envuelve con op.
func translate(op string, err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return fmt.Errorf("%s: %w", op, err)
	}
	switch pgErr.Code {
	case codeUniqueViolation:
		return domain.Conflict("registro duplicado (%s)", pgErr.ConstraintName)
	case codeForeignKeyViolation:
		return domain.Invalid("referencia inexistente (%s)", pgErr.ConstraintName)
	case codeCheckViolation:
		return domain.Invalid("valor fuera de rango (%s)", pgErr.ConstraintName)
	}
	return fmt.Errorf("%s: %w", op, err)
}
