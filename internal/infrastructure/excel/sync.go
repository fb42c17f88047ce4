package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/recuento-api/internal/domain/entity"
	"github.com/jhoicas/recuento-api/internal/domain/recuento"
)

// resultHeader encabezado fijo de la hoja de resultados (siete columnas).
var resultHeader = []interface{}{
	"Scanned Product ID",
	"Product Name",
	"Expected Quantity",
	"Scanned Quantity",
	"Variance",
	"Total Price",
	"Expected Total Price",
}

// ResultWriter mantiene la hoja de resultados de un libro consistente con el
// estado en memoria, fila por identificador.
type ResultWriter struct {
	sheet string
}

// NewResultWriter construye el escritor para la hoja de resultados dada.
func NewResultWriter(sheet string) *ResultWriter {
	return &ResultWriter{sheet: sheet}
}

// Upsert asegura que la hoja de resultados refleje el registro: crea la hoja
// con su encabezado si no existe, actualiza en sitio la fila cuyo primer valor
// normalizado coincide con el identificador, o agrega una fila nueva al final.
// Nunca produce más de una fila por identificador. Guarda el libro en la misma
// ruta; las demás hojas y filas quedan intactas.
func (w *ResultWriter) Upsert(path string, rec *entity.InventoryRecord) error {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return fmt.Errorf("abrir libro: %w", err)
	}
	defer f.Close()

	idx, err := f.GetSheetIndex(w.sheet)
	if err != nil {
		return fmt.Errorf("buscar hoja %q: %w", w.sheet, err)
	}
	if idx == -1 {
		if _, err := f.NewSheet(w.sheet); err != nil {
			return fmt.Errorf("crear hoja %q: %w", w.sheet, err)
		}
		if err := f.SetSheetRow(w.sheet, "A1", &resultHeader); err != nil {
			return fmt.Errorf("escribir encabezado: %w", err)
		}
	}

	rows, err := f.GetRows(w.sheet)
	if err != nil {
		return fmt.Errorf("leer hoja %q: %w", w.sheet, err)
	}

	// Buscar la fila del identificador, saltando el encabezado.
	target := 0
	for i := 1; i < len(rows); i++ {
		if len(rows[i]) > 0 && recuento.NormalizeID(rows[i][0]) == rec.ItemID {
			target = i + 1
			break
		}
	}

	if target > 0 {
		// Actualización en sitio de las cinco columnas de cantidades y
		// derivados (C..G); identificador y nombre no se tocan.
		vals := []interface{}{
			rec.ExpectedQty,
			rec.ScannedQty,
			rec.Variance,
			rec.TotalPrice.InexactFloat64(),
			rec.ExpectedTotalPrice.InexactFloat64(),
		}
		for j, v := range vals {
			cell, err := excelize.CoordinatesToCellName(3+j, target)
			if err != nil {
				return fmt.Errorf("celda de resultados: %w", err)
			}
			if err := f.SetCellValue(w.sheet, cell, v); err != nil {
				return fmt.Errorf("actualizar fila %d: %w", target, err)
			}
		}
	} else {
		cell, err := excelize.CoordinatesToCellName(1, len(rows)+1)
		if err != nil {
			return fmt.Errorf("celda de resultados: %w", err)
		}
		row := []interface{}{
			rec.ItemID,
			rec.ProductName,
			rec.ExpectedQty,
			rec.ScannedQty,
			rec.Variance,
			rec.TotalPrice.InexactFloat64(),
			rec.ExpectedTotalPrice.InexactFloat64(),
		}
		if err := f.SetSheetRow(w.sheet, cell, &row); err != nil {
			return fmt.Errorf("agregar fila: %w", err)
		}
	}

	if err := f.Save(); err != nil {
		return fmt.Errorf("guardar libro: %w", err)
	}
	return nil
}
