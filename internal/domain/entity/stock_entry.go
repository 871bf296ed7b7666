package entity

import "time"

// StockEntry representa la cantidad disponible de un producto en una bodega.
// Existe a lo sumo una entrada por par (bodega, producto); la cantidad nunca
// es negativa y las entradas no se eliminan (la cantidad puede llegar a cero).
//
// ReorderLevel es nil cuando la entrada no tiene punto de reorden asignado:
// las entradas sembradas reciben el valor por defecto del sistema, pero las
// creadas al completar un traslado hacia una bodega sin entrada previa quedan
// sin umbral hasta que un operador lo fije explícitamente. Una entrada sin
// umbral nunca genera alertas.
type StockEntry struct {
	WarehouseID  string
	ProductID    string
	Quantity     int64
	ReorderLevel *int64
	UpdatedAt    time.Time
}

// BelowReorderLevel indica si la entrada está en o por debajo de su punto
// de reorden. Siempre falso si la entrada no tiene umbral asignado.
func (s *StockEntry) BelowReorderLevel() bool {
	return s.ReorderLevel != nil && s.Quantity <= *s.ReorderLevel
}
