// Package excel implementa las capacidades de libro tabular (leer filas,
// upsert de resultados) sobre xuri/excelize.
package excel

import (
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Reader decodifica la primera hoja de un libro .xlsx en filas crudas.
type Reader struct{}

// NewReader construye el lector.
func NewReader() *Reader { return &Reader{} }

// ReadRows devuelve las filas de la primera hoja como celdas de texto, sin
// interpretar encabezados. Las celdas finales vacías pueden venir recortadas;
// el cargador las trata como nulas.
func (r *Reader) ReadRows(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("abrir libro: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("el libro no tiene hojas")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("leer filas de %q: %w", sheets[0], err)
	}
	return rows, nil
}
