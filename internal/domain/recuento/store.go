// Package recuento contiene el motor de conciliación de inventario: el store
// en memoria con sus reglas de mutación y el cargador de filas del libro.
package recuento

import (
	"strings"
	"time"

	"github.com/jhoicas/recuento-api/internal/domain"
	"github.com/jhoicas/recuento-api/internal/domain/entity"
)

// NormalizeID normaliza un identificador de artículo: trim + mayúsculas.
func NormalizeID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}

// Store mapa identificador -> registro, con orden de inserción explícito.
// La iteración de mapas en Go no es determinista, y tanto la resolución por
// nombre como el desempate del resumen dependen del "orden actual" del store.
//
// El Store no es seguro para uso concurrente: el caso de uso que lo posee
// serializa resolver -> actualizar -> sincronizar bajo un único lock.
type Store struct {
	records map[string]*entity.InventoryRecord
	order   []string
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{records: make(map[string]*entity.InventoryRecord)}
}

// Put inserta o reemplaza un registro. Un identificador repetido conserva su
// posición de inserción original (gana la última fila, como en un mapa).
func (s *Store) Put(rec *entity.InventoryRecord) {
	if _, ok := s.records[rec.ItemID]; !ok {
		s.order = append(s.order, rec.ItemID)
	}
	s.records[rec.ItemID] = rec
}

// Get devuelve el registro del identificador, si existe.
func (s *Store) Get(id string) (*entity.InventoryRecord, bool) {
	rec, ok := s.records[id]
	return rec, ok
}

// Len cantidad de registros cargados.
func (s *Store) Len() int {
	return len(s.records)
}

// Clear vacía el store por completo.
func (s *Store) Clear() {
	s.records = make(map[string]*entity.InventoryRecord)
	s.order = nil
}

// All devuelve los registros en orden de inserción.
func (s *Store) All() []*entity.InventoryRecord {
	out := make([]*entity.InventoryRecord, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.records[id])
	}
	return out
}

// ResolveByName devuelve el identificador del primer registro (en orden de
// inserción) cuyo nombre coincide exactamente con el dado. Sin trim ni
// insensibilidad a mayúsculas: la coincidencia es literal.
func (s *Store) ResolveByName(name string) (string, bool) {
	for _, id := range s.order {
		if s.records[id].ProductName == name {
			return id, true
		}
	}
	return "", false
}

// Search busca por subcadena (insensible a mayúsculas) sobre el nombre del
// producto. Una consulta vacía o en blanco devuelve un resultado vacío.
func (s *Store) Search(query string) []*entity.InventoryRecord {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var out []*entity.InventoryRecord
	for _, id := range s.order {
		if strings.Contains(strings.ToLower(s.records[id].ProductName), q) {
			out = append(out, s.records[id])
		}
	}
	return out
}

// ApplyScan acumula delta sobre la cantidad escaneada del identificador
// (escaneos repetidos suman, no sobrescriben; delta puede ser negativo para
// corregir sobre-escaneos) y recalcula varianza y totales. Devuelve
// domain.ErrNotFound si el identificador no existe.
func (s *Store) ApplyScan(id string, delta int, now time.Time) (*entity.InventoryRecord, error) {
	rec, ok := s.records[id]
	if !ok {
		return nil, domain.ErrNotFound
	}

	rec.ScannedQty += delta
	rec.Variance = rec.ScannedQty - rec.ExpectedQty
	rec.TotalPrice = decimalFromInt(rec.ScannedQty).Mul(rec.ItemPrice)
	rec.ExpectedTotalPrice = decimalFromInt(rec.ExpectedQty).Mul(rec.ItemPrice)
	rec.LastUpdated = now

	return rec, nil
}
