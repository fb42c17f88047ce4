// Package storage guarda los libros subidos en el sistema de archivos local.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LocalStore guarda streams subidos bajo una carpeta fija.
type LocalStore struct {
	dir string
}

// NewLocalStore crea la carpeta de subidas si no existe.
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear carpeta de subidas: %w", err)
	}
	return &LocalStore{dir: dir}, nil
}

// Save copia el stream a <dir>/<name> y devuelve la ruta resultante. Si la
// copia falla, el archivo parcial se elimina.
func (s *LocalStore) Save(name string, r io.Reader) (string, error) {
	path := filepath.Join(s.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("crear %s: %w", path, err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("escribir %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("cerrar %s: %w", path, err)
	}
	return path, nil
}

// Remove elimina una ruta guardada previamente.
func (s *LocalStore) Remove(path string) error {
	return os.Remove(path)
}
