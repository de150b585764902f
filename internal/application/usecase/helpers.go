package usecase

import "github.com/google/uuid"

// validID evita consultar la base con IDs que no son UUID (PostgreSQL respondería 22P02).
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
