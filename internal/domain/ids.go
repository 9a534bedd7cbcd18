package domain

import "github.com/google/uuid"

// NewID genera un identificador opaco para una entidad nueva.
func NewID() string {
	return uuid.New().String()
}

// ValidID indica si id tiene el formato que generamos (UUID).
func ValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
