// Package memory implementa los repositorios del libro de inventario sobre
// estructuras en memoria. No hay sincronización interna: todo acceso ocurre
// bajo el mutex único del servicio de inventario, que es quien confina el
// estado (no hay almacenamiento durable en este subsistema).
package memory

import (
	"github.com/tu-usuario/warehouse-ops/internal/domain/entity"
	"github.com/tu-usuario/warehouse-ops/internal/domain/repository"
)

type stockKey struct {
	warehouseID string
	productID   string
}

// StockRepository almacena las entradas de stock en orden de inserción,
// con un índice por (bodega, producto) para la consulta caliente.
type StockRepository struct {
	entries []*entity.StockEntry
	index   map[stockKey]*entity.StockEntry
}

// NewStockRepository construye el repositorio vacío.
func NewStockRepository() *StockRepository {
	return &StockRepository{
		entries: []*entity.StockEntry{},
		index:   make(map[stockKey]*entity.StockEntry),
	}
}

var _ repository.StockRepository = (*StockRepository)(nil)

// Get devuelve la entrada del par (bodega, producto), o nil si no existe.
func (r *StockRepository) Get(warehouseID, productID string) *entity.StockEntry {
	return r.index[stockKey{warehouseID, productID}]
}

// Upsert inserta la entrada si el par no existe; si existe, la reemplaza
// conservando su posición de inserción.
func (r *StockRepository) Upsert(entry *entity.StockEntry) {
	key := stockKey{entry.WarehouseID, entry.ProductID}
	if existing, ok := r.index[key]; ok {
		*existing = *entry
		return
	}
	r.entries = append(r.entries, entry)
	r.index[key] = entry
}

// All devuelve las entradas en orden de inserción.
func (r *StockRepository) All() []*entity.StockEntry {
	return r.entries
}

// ByWarehouse filtra las entradas de una bodega.
func (r *StockRepository) ByWarehouse(warehouseID string) []*entity.StockEntry {
	var out []*entity.StockEntry
	for _, e := range r.entries {
		if e.WarehouseID == warehouseID {
			out = append(out, e)
		}
	}
	return out
}

// ByProduct filtra las entradas de un producto a través de todas las bodegas.
func (r *StockRepository) ByProduct(productID string) []*entity.StockEntry {
	var out []*entity.StockEntry
	for _, e := range r.entries {
		if e.ProductID == productID {
			out = append(out, e)
		}
	}
	return out
}
