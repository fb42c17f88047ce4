package recuento

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/recuento-api/internal/domain/entity"
)

// ColumnMap índices de columna (base 0) de las celdas relevantes del libro.
type ColumnMap struct {
	ItemID      int
	ProductName int
	ExpectedQty int
	ItemPrice   int
}

// SkipReason motivo por el que una fila fue descartada durante la carga.
type SkipReason string

const (
	SkipInvalidID SkipReason = "invalid-id" // identificador vacío o "0"
	SkipBadQty    SkipReason = "bad-qty"    // cantidad esperada no numérica
	SkipBadPrice  SkipReason = "bad-price"  // costo unitario no numérico
)

// RowSkip una fila descartada, con su número (base 1) y el motivo.
type RowSkip struct {
	Row    int        `json:"row"`
	Reason SkipReason `json:"reason"`
}

// LoadReport resultado de una carga best-effort: cuántos registros quedaron en
// el store y qué filas se descartaron. Las filas malformadas no abortan la
// carga, pero tampoco se pierden en silencio.
type LoadReport struct {
	Loaded  int       `json:"items_loaded"`
	Skipped int       `json:"rows_skipped"`
	Skips   []RowSkip `json:"skips,omitempty"`
}

// BuildStore transforma las filas crudas del libro (sin encabezado) en un store
// de reemplazo. Reglas por fila:
//
//   - celdas ausentes o en blanco se normalizan a "0" antes de extraer;
//   - identificador normalizado vacío o igual a "0" descarta la fila;
//   - la cantidad esperada se trunca hacia cero a entero;
//   - cualquier fallo de conversión descarta solo esa fila y la carga continúa.
func BuildStore(rows [][]string, cols ColumnMap, now time.Time) (*Store, LoadReport) {
	store := NewStore()
	report := LoadReport{}

	for i, row := range rows {
		rowNum := i + 1

		itemID := NormalizeID(cellAt(row, cols.ItemID))
		if itemID == "" || itemID == "0" {
			report.Skips = append(report.Skips, RowSkip{Row: rowNum, Reason: SkipInvalidID})
			continue
		}

		qty, err := decimal.NewFromString(strings.TrimSpace(cellAt(row, cols.ExpectedQty)))
		if err != nil {
			report.Skips = append(report.Skips, RowSkip{Row: rowNum, Reason: SkipBadQty})
			continue
		}

		price, err := decimal.NewFromString(strings.TrimSpace(cellAt(row, cols.ItemPrice)))
		if err != nil {
			report.Skips = append(report.Skips, RowSkip{Row: rowNum, Reason: SkipBadPrice})
			continue
		}

		store.Put(&entity.InventoryRecord{
			ItemID:      itemID,
			ProductName: cellAt(row, cols.ProductName),
			ExpectedQty: int(qty.IntPart()), // truncamiento hacia cero
			ScannedQty:  0,
			ItemPrice:   price,
			LastUpdated: now,
		})
	}

	report.Loaded = store.Len()
	report.Skipped = len(report.Skips)
	return store, report
}

// cellAt devuelve la celda en la posición idx, normalizando celdas ausentes o
// en blanco a "0" (equivalente a rellenar nulos con cero antes de extraer).
func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return "0"
	}
	if strings.TrimSpace(row[idx]) == "" {
		return "0"
	}
	return row[idx]
}

func decimalFromInt(n int) decimal.Decimal {
	return decimal.NewFromInt(int64(n))
}
