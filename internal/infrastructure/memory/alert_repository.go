package memory

import (
	"github.com/tu-usuario/warehouse-ops/internal/domain/entity"
	"github.com/tu-usuario/warehouse-ops/internal/domain/repository"
)

// AlertRepository almacena las alertas de reposición en orden de creación.
// Las alertas resueltas se conservan como historial.
type AlertRepository struct {
	alerts []*entity.ReorderAlert
	byID   map[string]*entity.ReorderAlert
}

// NewAlertRepository construye el repositorio vacío.
func NewAlertRepository() *AlertRepository {
	return &AlertRepository{
		alerts: []*entity.ReorderAlert{},
		byID:   make(map[string]*entity.ReorderAlert),
	}
}

var _ repository.AlertRepository = (*AlertRepository)(nil)

// Append agrega una alerta nueva.
func (r *AlertRepository) Append(alert *entity.ReorderAlert) {
	r.alerts = append(r.alerts, alert)
	r.byID[alert.ID] = alert
}

// GetByID devuelve la alerta con ese id, o nil si no existe.
func (r *AlertRepository) GetByID(id string) *entity.ReorderAlert {
	return r.byID[id]
}

// All devuelve las alertas en orden de creación.
func (r *AlertRepository) All() []*entity.ReorderAlert {
	return r.alerts
}

// ActiveFor devuelve la alerta active del par (bodega, producto), o nil.
func (r *AlertRepository) ActiveFor(warehouseID, productID string) *entity.ReorderAlert {
	for _, a := range r.alerts {
		if a.Status == entity.AlertStatusActive && a.WarehouseID == warehouseID && a.ProductID == productID {
			return a
		}
	}
	return nil
}
