package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryRecord estado de conciliación de un artículo: cantidad esperada según
// el libro subido vs. cantidad escaneada acumulada, con métricas derivadas.
type InventoryRecord struct {
	ItemID      string // clave normalizada (trim + mayúsculas), única en el store
	ProductName string // nombre tal como viene del libro, sin normalizar
	ExpectedQty int
	ScannedQty  int
	ItemPrice   decimal.Decimal

	// Derivados: recalculados en cada escaneo, cero hasta el primero.
	Variance           int             // ScannedQty - ExpectedQty
	TotalPrice         decimal.Decimal // ScannedQty * ItemPrice
	ExpectedTotalPrice decimal.Decimal // ExpectedQty * ItemPrice

	LastUpdated time.Time // creación o último escaneo; ordena el resumen
}
