package recuento

import (
	"io"
	"time"

	"github.com/jhoicas/recuento-api/internal/application/dto"
	"github.com/jhoicas/recuento-api/internal/domain/entity"
)

// WorkbookReader decodifica un libro persistido en filas crudas de celdas
// (primera hoja, sin interpretación de encabezados).
type WorkbookReader interface {
	ReadRows(path string) ([][]string, error)
}

// ResultSyncer proyecta un registro actualizado en la hoja de resultados del
// libro persistido (upsert por identificador) y lo guarda en la misma ruta.
type ResultSyncer interface {
	Upsert(path string, rec *entity.InventoryRecord) error
}

// FileStore guarda un stream subido bajo un nombre dado y permite descartar
// rutas que no llegaron a cargarse.
type FileStore interface {
	Save(name string, r io.Reader) (string, error)
	Remove(path string) error
}

// ReportRenderer genera el PDF del resumen de conciliación.
type ReportRenderer interface {
	RenderSummary(items []dto.ScannedItem, generatedAt time.Time) ([]byte, error)
}
