package entity

// Estados de una bodega en el registro de sucursales.
const (
	WarehouseStatusActive   = "active"
	WarehouseStatusInactive = "inactive"
)

// Warehouse representa una bodega o sucursal donde se almacena inventario
// (colaborador externo: el registro de sucursales es dueño de estos datos).
type Warehouse struct {
	ID     string
	Name   string
	Status string // active | inactive
}

// IsActive indica si la bodega participa en el sembrado inicial de stock.
func (w Warehouse) IsActive() bool {
	return w.Status == WarehouseStatusActive
}
