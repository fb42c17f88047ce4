package recuento_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/recuento-api/internal/domain/recuento"
)

var testCols = recuento.ColumnMap{
	ItemID:      11,
	ProductName: 0,
	ExpectedQty: 9,
	ItemPrice:   2,
}

// sourceRow arma una fila de 12 celdas con el layout del libro de inventario:
// nombre en la columna 0, costo en la 2, cantidad esperada en la 9, id en la 11.
func sourceRow(name, price, qty, id string) []string {
	row := make([]string, 12)
	row[testCols.ProductName] = name
	row[testCols.ItemPrice] = price
	row[testCols.ExpectedQty] = qty
	row[testCols.ItemID] = id
	return row
}

// ──────────────────────────────────────────────────────────────────────────────
// BuildStore
// ──────────────────────────────────────────────────────────────────────────────

func TestBuildStore_CargaFilasValidas(t *testing.T) {
	rows := [][]string{
		sourceRow("Widget A", "2.5", "10", " x1 "),
		sourceRow("Widget B", "1.25", "4", "X2"),
	}

	store, report := recuento.BuildStore(rows, testCols, testBase)

	assert.Equal(t, 2, report.Loaded)
	assert.Equal(t, 0, report.Skipped)

	rec, ok := store.Get("X1")
	require.True(t, ok, "el identificador se normaliza con trim + mayúsculas")
	assert.Equal(t, "Widget A", rec.ProductName)
	assert.Equal(t, 10, rec.ExpectedQty)
	assert.Equal(t, 0, rec.ScannedQty)
	assert.True(t, rec.ItemPrice.Equal(decimal.RequireFromString("2.5")))
	assert.Equal(t, testBase, rec.LastUpdated)
}

// TestBuildStore_DescartaIdentificadoresInvalidos verifica que filas con
// identificador vacío o "0" se descartan sin abortar la carga.
func TestBuildStore_DescartaIdentificadoresInvalidos(t *testing.T) {
	rows := [][]string{
		sourceRow("Sin ID", "1", "1", ""),
		sourceRow("ID cero", "1", "1", "0"),
		sourceRow("ID espacios", "1", "1", "   "),
		sourceRow("Válida", "1", "1", "X1"),
	}

	store, report := recuento.BuildStore(rows, testCols, testBase)

	assert.Equal(t, 1, report.Loaded)
	assert.Equal(t, 3, report.Skipped)
	require.Len(t, report.Skips, 3)
	for _, s := range report.Skips {
		assert.Equal(t, recuento.SkipInvalidID, s.Reason)
	}
	assert.Equal(t, 1, store.Len())
}

// TestBuildStore_DescartaConversionesFallidas verifica la política best-effort:
// una celda numérica malformada descarta solo su fila, con motivo inspeccionable.
func TestBuildStore_DescartaConversionesFallidas(t *testing.T) {
	rows := [][]string{
		sourceRow("Cantidad mala", "1", "abc", "X1"),
		sourceRow("Costo malo", "n/a", "1", "X2"),
		sourceRow("Válida", "1", "1", "X3"),
	}

	store, report := recuento.BuildStore(rows, testCols, testBase)

	assert.Equal(t, 1, report.Loaded)
	assert.Equal(t, 2, report.Skipped)
	require.Len(t, report.Skips, 2)
	assert.Equal(t, recuento.RowSkip{Row: 1, Reason: recuento.SkipBadQty}, report.Skips[0])
	assert.Equal(t, recuento.RowSkip{Row: 2, Reason: recuento.SkipBadPrice}, report.Skips[1])

	_, ok := store.Get("X3")
	assert.True(t, ok)
}

// TestBuildStore_TruncaCantidadHaciaCero verifica int(float(x)) del origen:
// la cantidad decimal se trunca hacia cero, también para negativos.
func TestBuildStore_TruncaCantidadHaciaCero(t *testing.T) {
	rows := [][]string{
		sourceRow("A", "1", "7.9", "X1"),
		sourceRow("B", "1", "-3.7", "X2"),
	}

	store, _ := recuento.BuildStore(rows, testCols, testBase)

	recA, _ := store.Get("X1")
	recB, _ := store.Get("X2")
	assert.Equal(t, 7, recA.ExpectedQty)
	assert.Equal(t, -3, recB.ExpectedQty)
}

// TestBuildStore_CeldasNulasValenCero verifica que celdas ausentes o en blanco
// se normalizan a cero antes de extraer (filas cortas incluidas).
func TestBuildStore_CeldasNulasValenCero(t *testing.T) {
	corta := []string{"Solo nombre"} // sin celdas de costo, cantidad ni id
	sinNumeros := sourceRow("Sin números", "", "", "X1")

	store, report := recuento.BuildStore([][]string{corta, sinNumeros}, testCols, testBase)

	// La fila corta pierde su identificador (nulo -> "0") y se descarta.
	assert.Equal(t, 1, report.Loaded)
	require.Len(t, report.Skips, 1)
	assert.Equal(t, recuento.SkipInvalidID, report.Skips[0].Reason)

	rec, ok := store.Get("X1")
	require.True(t, ok)
	assert.Equal(t, 0, rec.ExpectedQty)
	assert.True(t, rec.ItemPrice.IsZero())
}

// TestBuildStore_DuplicadoGanaUltimaFila verifica que identificadores repetidos
// en el origen producen un único registro con los valores de la última fila.
func TestBuildStore_DuplicadoGanaUltimaFila(t *testing.T) {
	rows := [][]string{
		sourceRow("Primera", "1", "1", "X1"),
		sourceRow("Última", "2", "5", "x1"),
	}

	store, report := recuento.BuildStore(rows, testCols, testBase)

	assert.Equal(t, 1, report.Loaded)
	assert.Equal(t, 0, report.Skipped, "la fila duplicada no cuenta como descartada")

	rec, _ := store.Get("X1")
	assert.Equal(t, "Última", rec.ProductName)
	assert.Equal(t, 5, rec.ExpectedQty)
}
