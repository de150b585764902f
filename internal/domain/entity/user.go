package entity

import (
	"strings"
	"time"

	"github.com/jhoicas/mascotas-api/internal/domain"
)

// Role nivel de autorización de un usuario.
type Role string

// Roles válidos para User.
const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// ParseRole valida el valor recibido por query/body (no distingue mayúsculas).
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToUpper(strings.TrimSpace(s))) {
	case RoleUser:
		return RoleUser, nil
	case RoleAdmin:
		return RoleAdmin, nil
	}
	return "", domain.Invalid("role inválido: %q (valores permitidos: USER, ADMIN)", s)
}

// User representa un cliente o administrador de la tienda.
type User struct {
	ID           string
	Name         string
	LastName     string
	Email        string // único, se guarda en minúsculas
	PasswordHash string // bcrypt, nunca se serializa
	Phone        string
	Address      string
	Role         Role
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
