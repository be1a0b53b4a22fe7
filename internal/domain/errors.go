package domain

import "errors"

// Errores de almacenamiento compartidos por todos los repositorios.
var (
	ErrNotFound = errors.New("row not found")
	ErrConflict = errors.New("duplicate key")
)
