package dto

import "time"

// CreateUserRequest entrada para crear un usuario (password en texto, se hashea en el use case).
type CreateUserRequest struct {
	Nombre    string `json:"nombre" validate:"required,max=100"`
	Apellido  string `json:"apellido" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email,max=150"`
	Password  string `json:"password" validate:"required,min=6,max=72"`
	Telefono  string `json:"telefono" validate:"max=30"`
	Direccion string `json:"direccion" validate:"max=255"`
	Role      string `json:"role"`
	Activo    *bool  `json:"activo"`
}

// UpdateUserRequest entrada para actualizar un usuario. Password vacío conserva el actual;
// Role y Activo nil conservan el valor actual.
type UpdateUserRequest struct {
	Nombre    string  `json:"nombre" validate:"required,max=100"`
	Apellido  string  `json:"apellido" validate:"required,max=100"`
	Email     string  `json:"email" validate:"required,email,max=150"`
	Password  string  `json:"password" validate:"omitempty,min=6,max=72"`
	Telefono  string  `json:"telefono" validate:"max=30"`
	Direccion string  `json:"direccion" validate:"max=255"`
	Role      *string `json:"role"`
	Activo    *bool   `json:"activo"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID            string    `json:"id"`
	Nombre        string    `json:"nombre"`
	Apellido      string    `json:"apellido"`
	Email         string    `json:"email"`
	Telefono      string    `json:"telefono"`
	Direccion     string    `json:"direccion"`
	Role          string    `json:"role"`
	Activo        bool      `json:"activo"`
	FechaRegistro time.Time `json:"fechaRegistro"`
}

// LoginRequest credenciales para /api/usuarios/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
