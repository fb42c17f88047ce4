package excel_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/recuento-api/internal/domain/entity"
	"github.com/jhoicas/recuento-api/internal/infrastructure/excel"
)

const testSheet = "Scan Results"

// writeTestWorkbook crea un libro .xlsx con filas de inventario en la primera
// hoja y devuelve su ruta.
func writeTestWorkbook(t *testing.T, rows [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}

	path := filepath.Join(t.TempDir(), "inventario.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func testRecord(id string, scanned int) *entity.InventoryRecord {
	price := decimal.RequireFromString("2.5")
	return &entity.InventoryRecord{
		ItemID:             id,
		ProductName:        "Widget A",
		ExpectedQty:        10,
		ScannedQty:         scanned,
		ItemPrice:          price,
		Variance:           scanned - 10,
		TotalPrice:         decimal.NewFromInt(int64(scanned)).Mul(price),
		ExpectedTotalPrice: decimal.NewFromInt(10).Mul(price),
		LastUpdated:        time.Now(),
	}
}

func resultRows(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(testSheet)
	require.NoError(t, err)
	return rows
}

// ──────────────────────────────────────────────────────────────────────────────
// ResultWriter.Upsert
// ──────────────────────────────────────────────────────────────────────────────

// TestUpsert_CreaHojaConEncabezado verifica que el primer sync crea la hoja de
// resultados con sus siete columnas y agrega la fila del artículo.
func TestUpsert_CreaHojaConEncabezado(t *testing.T) {
	path := writeTestWorkbook(t, [][]interface{}{{"dato original"}})
	w := excel.NewResultWriter(testSheet)

	require.NoError(t, w.Upsert(path, testRecord("X1", 3)))

	rows := resultRows(t, path)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{
		"Scanned Product ID", "Product Name", "Expected Quantity",
		"Scanned Quantity", "Variance", "Total Price", "Expected Total Price",
	}, rows[0])
	assert.Equal(t, []string{"X1", "Widget A", "10", "3", "-7", "7.5", "25"}, rows[1])
}

// TestUpsert_EsIdempotentePorIdentificador verifica el upsert: dos syncs del
// mismo identificador dejan exactamente una fila, con los valores finales.
func TestUpsert_EsIdempotentePorIdentificador(t *testing.T) {
	path := writeTestWorkbook(t, [][]interface{}{{"dato original"}})
	w := excel.NewResultWriter(testSheet)

	require.NoError(t, w.Upsert(path, testRecord("X1", 3)))
	require.NoError(t, w.Upsert(path, testRecord("X1", 8)))

	rows := resultRows(t, path)
	require.Len(t, rows, 2, "re-escanear actualiza la fila, no agrega otra")
	assert.Equal(t, []string{"X1", "Widget A", "10", "8", "-2", "20", "25"}, rows[1])
}

// TestUpsert_AgregaFilasNuevasAlFinal verifica que identificadores distintos
// se agregan como filas nuevas y que la coincidencia normaliza el primer valor.
func TestUpsert_AgregaFilasNuevasAlFinal(t *testing.T) {
	path := writeTestWorkbook(t, [][]interface{}{{"dato original"}})
	w := excel.NewResultWriter(testSheet)

	require.NoError(t, w.Upsert(path, testRecord("X1", 1)))
	require.NoError(t, w.Upsert(path, testRecord("X2", 2)))
	require.NoError(t, w.Upsert(path, testRecord("X1", 4)))

	rows := resultRows(t, path)
	require.Len(t, rows, 3)
	assert.Equal(t, "X1", rows[1][0])
	assert.Equal(t, "4", rows[1][3], "X1 se actualizó en sitio")
	assert.Equal(t, "X2", rows[2][0])
}

// TestUpsert_NoTocaOtrasHojas verifica que la hoja de origen queda intacta.
func TestUpsert_NoTocaOtrasHojas(t *testing.T) {
	path := writeTestWorkbook(t, [][]interface{}{
		{"Widget A", nil, 2.5},
		{"Widget B", nil, 1.25},
	})
	w := excel.NewResultWriter(testSheet)

	require.NoError(t, w.Upsert(path, testRecord("X1", 3)))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Sheet1")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Widget A", rows[0][0])
}

func TestUpsert_LibroInexistente(t *testing.T) {
	w := excel.NewResultWriter(testSheet)
	err := w.Upsert(filepath.Join(t.TempDir(), "no-existe.xlsx"), testRecord("X1", 1))
	assert.Error(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reader.ReadRows
// ──────────────────────────────────────────────────────────────────────────────

func TestReadRows_DevuelveCeldasCrudas(t *testing.T) {
	path := writeTestWorkbook(t, [][]interface{}{
		{"Widget A", nil, 2.5},
		{"Widget B", nil, 1.25},
	})

	rows, err := excel.NewReader().ReadRows(path)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Widget A", rows[0][0])
	assert.Equal(t, "2.5", rows[0][2])
}

func TestReadRows_ArchivoIlegible(t *testing.T) {
	_, err := excel.NewReader().ReadRows(filepath.Join(t.TempDir(), "no-existe.xlsx"))
	assert.Error(t, err)
}
