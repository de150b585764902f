// Package textnorm normaliza texto libre (nombres, términos de búsqueda) antes de
// persistirlo o compararlo en la base de datos.
package textnorm

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Clean recorta espacios, colapsa espacios internos y lleva el texto a NFC, de modo
// que "Perro" escrito con tilde combinada y con tilde precompuesta se guarden igual.
func Clean(s string) string {
	return norm.NFC.String(strings.Join(strings.Fields(s), " "))
}

// Email normaliza un correo: NFC, sin espacios y en minúsculas.
func Email(s string) string {
	return strings.ToLower(norm.NFC.String(strings.TrimSpace(s)))
}

// LikePattern construye un patrón ILIKE de subcadena escapando los comodines de SQL.
func LikePattern(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(Clean(term)) + "%"
}
