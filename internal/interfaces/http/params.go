package http

import (
	"net/url"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/mascotas-api/internal/domain"
)

// dateTimeLayouts formatos aceptados en ?inicio= y ?fin=. Sin zona horaria se
// interpreta en la hora local del servidor.
var dateTimeLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// parseDateTime acepta fecha-hora ISO-8601 local o RFC 3339 con zona.
func parseDateTime(name, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, domain.Invalid("el parámetro %s es requerido", name)
	}
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t, nil
	}
	for _, layout := range dateTimeLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, domain.Invalid("el parámetro %s debe tener formato ISO-8601 (2024-09-10T10:15:00): %q", name, value)
}

// queryBool lee un booleano requerido de la query string.
func queryBool(c *fiber.Ctx, name string) (bool, error) {
	v := c.Query(name)
	if v == "" {
		return false, domain.Invalid("el parámetro %s es requerido", name)
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, domain.Invalid("el parámetro %s debe ser true o false: %q", name, v)
	}
	return b, nil
}

// queryInt lee un entero requerido de la query string.
func queryInt(c *fiber.Ctx, name string) (int, error) {
	v := c.Query(name)
	if v == "" {
		return 0, domain.Invalid("el parámetro %s es requerido", name)
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, domain.Invalid("el parámetro %s debe ser un entero: %q", name, v)
	}
	return n, nil
}

// pathParam devuelve el parámetro de ruta decodificado (emails con %40, etc.).
func pathParam(c *fiber.Ctx, name string) string {
	v := c.Params(name)
	if s, err := url.PathUnescape(v); err == nil {
		return s
	}
	return v
}
