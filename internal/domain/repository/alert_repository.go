package repository

import "github.com/tu-usuario/warehouse-ops/internal/domain/entity"

// AlertRepository define el puerto para las alertas de reposición.
type AlertRepository interface {
	Append(alert *entity.ReorderAlert)
	GetByID(id string) *entity.ReorderAlert
	All() []*entity.ReorderAlert
	// ActiveFor devuelve la alerta active del par (bodega, producto), o nil.
	// El monitor garantiza que exista a lo sumo una.
	ActiveFor(warehouseID, productID string) *entity.ReorderAlert
}
