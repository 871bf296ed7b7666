package repository

import "github.com/tu-usuario/warehouse-ops/internal/domain/entity"

// StockRepository define el puerto para consultar/actualizar stock por
// par (bodega, producto). El libro es el único dueño de estas entradas.
type StockRepository interface {
	Get(warehouseID, productID string) *entity.StockEntry
	Upsert(entry *entity.StockEntry)
	// All devuelve las entradas en orden de inserción.
	All() []*entity.StockEntry
	ByWarehouse(warehouseID string) []*entity.StockEntry
	ByProduct(productID string) []*entity.StockEntry
}
