package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// ScanRequest entrada para escanear por identificador.
// Quantity viaja como json.Number: el caso de uso valida que sea un entero
// (los deltas negativos son válidos, corrigen sobre-escaneos previos).
type ScanRequest struct {
	ItemID   string      `json:"item_id" validate:"required"`
	Quantity json.Number `json:"quantity" validate:"required"`
}

// ScanByNameRequest entrada para escanear por nombre exacto de producto.
// Lleva los mismos campos de cantidad que ScanRequest: la resolución por nombre
// solo confirma existencia y delega en la misma rutina de actualización.
type ScanByNameRequest struct {
	ProductName string      `json:"product_name" validate:"required"`
	Quantity    json.Number `json:"quantity" validate:"required"`
}

// ScannedItem un registro del resumen de conciliación.
type ScannedItem struct {
	ItemID             string          `json:"item_id"`
	ProductName        string          `json:"product_name"`
	ExpectedQty        int             `json:"expected_qty"`
	ScannedQty         int             `json:"scanned_qty"`
	Variance           int             `json:"variance"`
	ItemPrice          decimal.Decimal `json:"item_price"`
	TotalPrice         decimal.Decimal `json:"total_price"`
	ExpectedTotalPrice decimal.Decimal `json:"expected_total_price"`
	Date               time.Time       `json:"date"`
}

// ScanResponse registro actualizado más el resumen completo.
type ScanResponse struct {
	Message        string        `json:"message"`
	ItemID         string        `json:"item_id"`
	ExpectedQty    int           `json:"expected_qty"`
	ScannedQty     int           `json:"scanned_qty"`
	Variance       int           `json:"variance"`
	AllScannedData []ScannedItem `json:"all_scanned_data"`
}

// SummaryResponse proyección completa del estado actual.
type SummaryResponse struct {
	AllScannedData []ScannedItem `json:"all_scanned_data"`
}

// SkippedRow fila descartada durante la carga (número base 1 y motivo).
type SkippedRow struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

// UploadResponse resultado de la carga de un libro de inventario.
type UploadResponse struct {
	Message     string       `json:"message"`
	ItemsLoaded int          `json:"items_loaded"`
	RowsSkipped int          `json:"rows_skipped"`
	Skips       []SkippedRow `json:"skips,omitempty"`
}

// SearchResult coincidencia de búsqueda por nombre de producto.
type SearchResult struct {
	ItemID      string `json:"item_id"`
	ProductName string `json:"product_name"`
}
