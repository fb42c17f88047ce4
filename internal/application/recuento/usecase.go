// Package recuento orquesta el ciclo de conciliación: carga del libro,
// escaneos incrementales, búsqueda, resumen y reporte.
package recuento

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/jhoicas/recuento-api/internal/application/dto"
	"github.com/jhoicas/recuento-api/internal/domain"
	"github.com/jhoicas/recuento-api/internal/domain/entity"
	"github.com/jhoicas/recuento-api/internal/domain/recuento"
	"github.com/jhoicas/recuento-api/pkg/config"
	"github.com/jhoicas/recuento-api/pkg/logger"
)

// UseCase servicio de conciliación de inventario. Posee el store en memoria y
// la ruta del libro actual; el mutex serializa resolver -> actualizar ->
// sincronizar, porque la mutación en memoria y la escritura del libro son dos
// pasos no atómicos.
type UseCase struct {
	mu           sync.Mutex
	store        *recuento.Store
	workbookPath string // último libro subido; vacío hasta la primera carga

	cfg    config.InventoryConfig
	log    *logger.Logger
	files  FileStore
	reader WorkbookReader
	syncer ResultSyncer
	report ReportRenderer

	now func() time.Time
}

// NewUseCase construye el servicio con un store vacío.
func NewUseCase(
	cfg config.InventoryConfig,
	log *logger.Logger,
	files FileStore,
	reader WorkbookReader,
	syncer ResultSyncer,
	report ReportRenderer,
) *UseCase {
	return &UseCase{
		store:  recuento.NewStore(),
		cfg:    cfg,
		log:    log,
		files:  files,
		reader: reader,
		syncer: syncer,
		report: report,
		now:    time.Now,
	}
}

// Upload guarda el archivo subido bajo un nombre con marca de tiempo, lo
// decodifica y reemplaza el store completo. El progreso de escaneo contra la
// carga anterior se descarta. Devuelve el reporte de carga best-effort.
func (uc *UseCase) Upload(originalName string, file io.Reader) (*dto.UploadResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if !strings.HasSuffix(strings.ToLower(originalName), ".xlsx") {
		return nil, fmt.Errorf("%w: solo se aceptan libros .xlsx", domain.ErrUnsupportedFormat)
	}

	name := "inventory_" + uc.now().Format("2006-01-02_15-04-05") + ".xlsx"
	path, err := uc.files.Save(name, file)
	if err != nil {
		return nil, fmt.Errorf("%w: guardar archivo: %s", domain.ErrLoadFailure, err)
	}

	rows, err := uc.reader.ReadRows(path)
	if err != nil {
		// El archivo no sirve como libro actual: descartarlo.
		if rmErr := uc.files.Remove(path); rmErr != nil {
			uc.log.Warn().Err(rmErr).Str("path", path).Msg("no se pudo descartar el archivo subido")
		}
		return nil, fmt.Errorf("%w: %s", domain.ErrLoadFailure, err)
	}

	store, report := recuento.BuildStore(rows, recuento.ColumnMap{
		ItemID:      uc.cfg.Columns.ItemID,
		ProductName: uc.cfg.Columns.ProductName,
		ExpectedQty: uc.cfg.Columns.ExpectedQty,
		ItemPrice:   uc.cfg.Columns.ItemPrice,
	}, uc.now())

	uc.store = store
	uc.workbookPath = path

	uc.log.Info().
		Str("path", path).
		Int("items_loaded", report.Loaded).
		Int("rows_skipped", report.Skipped).
		Msg("inventario cargado")

	out := &dto.UploadResponse{
		Message:     "libro de inventario cargado y procesado correctamente",
		ItemsLoaded: report.Loaded,
		RowsSkipped: report.Skipped,
	}
	for _, s := range report.Skips {
		out.Skips = append(out.Skips, dto.SkippedRow{Row: s.Row, Reason: string(s.Reason)})
	}
	return out, nil
}

// ScanByID aplica un escaneo al identificador dado (normalizado) y sincroniza
// el libro de resultados.
func (uc *UseCase) ScanByID(in dto.ScanRequest) (*dto.ScanResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	return uc.scan(recuento.NormalizeID(in.ItemID), in.Quantity)
}

// ScanByName resuelve el primer registro cuyo nombre coincide exactamente con
// el dado (recortado) y delega en la misma rutina de escaneo; la cantidad se
// revalida allí, igual que en un escaneo por identificador.
func (uc *UseCase) ScanByName(in dto.ScanByNameRequest) (*dto.ScanResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	name := strings.TrimSpace(in.ProductName)
	id, ok := uc.store.ResolveByName(name)
	if !ok {
		return nil, fmt.Errorf("%w: producto %q no está en el inventario", domain.ErrNotFound, name)
	}
	return uc.scan(id, in.Quantity)
}

// scan rutina compartida de actualización: valida, acumula, recalcula y
// sincroniza. Requiere uc.mu tomado. Un fallo de sincronización NO revierte la
// mutación en memoria: la ventana de inconsistencia se cierra en el próximo
// sync exitoso del mismo identificador.
func (uc *UseCase) scan(id string, quantity json.Number) (*dto.ScanResponse, error) {
	if _, ok := uc.store.Get(id); !ok {
		return nil, fmt.Errorf("%w: artículo %q no está en el inventario", domain.ErrNotFound, id)
	}

	delta, err := strconv.ParseInt(quantity.String(), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: la cantidad debe ser un entero", domain.ErrInvalidInput)
	}

	rec, err := uc.store.ApplyScan(id, int(delta), uc.now())
	if err != nil {
		return nil, err
	}

	if err := uc.syncResult(rec); err != nil {
		uc.log.Warn().Err(err).Str("item_id", id).Msg("escaneo aplicado en memoria pero sin sincronizar")
		return nil, err
	}

	return &dto.ScanResponse{
		Message:        "artículo escaneado correctamente",
		ItemID:         rec.ItemID,
		ExpectedQty:    rec.ExpectedQty,
		ScannedQty:     rec.ScannedQty,
		Variance:       rec.Variance,
		AllScannedData: uc.summaryLocked(),
	}, nil
}

// syncResult proyecta el registro en la hoja de resultados del libro actual.
func (uc *UseCase) syncResult(rec *entity.InventoryRecord) error {
	if !strings.HasSuffix(strings.ToLower(uc.workbookPath), ".xlsx") {
		return fmt.Errorf("%w: solo se pueden actualizar libros .xlsx", domain.ErrUnsupportedFormat)
	}
	if err := uc.syncer.Upsert(uc.workbookPath, rec); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrSyncFailure, err)
	}
	return nil
}

// Search busca artículos por subcadena del nombre (insensible a mayúsculas).
// Una consulta vacía devuelve una lista vacía, no un error.
func (uc *UseCase) Search(query string) []dto.SearchResult {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	out := []dto.SearchResult{}
	for _, rec := range uc.store.Search(query) {
		out = append(out, dto.SearchResult{ItemID: rec.ItemID, ProductName: rec.ProductName})
	}
	return out
}

// Summary devuelve la proyección completa ordenada por última actualización.
func (uc *UseCase) Summary() *dto.SummaryResponse {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	return &dto.SummaryResponse{AllScannedData: uc.summaryLocked()}
}

// Clear vacía el store en memoria. No toca el libro persistido ni su ruta.
func (uc *UseCase) Clear() *dto.MessageResponse {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.store.Clear()
	uc.log.Info().Msg("inventario en memoria eliminado")
	return &dto.MessageResponse{Message: "datos de inventario cargados eliminados correctamente"}
}

// Report genera el PDF del resumen actual.
func (uc *UseCase) Report() ([]byte, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	out, err := uc.report.RenderSummary(uc.summaryLocked(), uc.now())
	if err != nil {
		return nil, fmt.Errorf("generar reporte: %w", err)
	}
	return out, nil
}

// summaryLocked proyecta todos los registros, más reciente primero. Empates
// conservan el orden de inserción (ordenamiento estable). La varianza se
// recalcula fresca; los totales quedan en cero hasta el primer escaneo.
// Requiere uc.mu tomado.
func (uc *UseCase) summaryLocked() []dto.ScannedItem {
	recs := uc.store.All()
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].LastUpdated.After(recs[j].LastUpdated)
	})

	items := make([]dto.ScannedItem, 0, len(recs))
	for _, rec := range recs {
		items = append(items, dto.ScannedItem{
			ItemID:             rec.ItemID,
			ProductName:        rec.ProductName,
			ExpectedQty:        rec.ExpectedQty,
			ScannedQty:         rec.ScannedQty,
			Variance:           rec.ScannedQty - rec.ExpectedQty,
			ItemPrice:          rec.ItemPrice,
			TotalPrice:         rec.TotalPrice,
			ExpectedTotalPrice: rec.ExpectedTotalPrice,
			Date:               rec.LastUpdated,
		})
	}
	return items
}
