package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrUnsupportedFormat = errors.New("formato de archivo no soportado")
	ErrSyncFailure       = errors.New("fallo al sincronizar el libro de resultados")
	ErrLoadFailure       = errors.New("fallo al cargar el inventario")
)
