package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de una alerta de reposición.
//
// active -> acknowledged | resolved
// acknowledged -> resolved (solo resolución manual)
//
// El recálculo automático únicamente resuelve alertas active: una alerta
// acknowledged queda "pausada" fuera de la gestión automática y solo se
// cierra con ResolveAlert.
const (
	AlertStatusActive       = "active"
	AlertStatusAcknowledged = "acknowledged"
	AlertStatusResolved     = "resolved"
)

// ReorderAlert es una entidad derivada del estado del libro: señala que la
// entrada (bodega, producto) está en o por debajo de su punto de reorden.
// A lo sumo existe una alerta active por par en un momento dado.
type ReorderAlert struct {
	ID           string
	WarehouseID  string
	ProductID    string
	CurrentStock int64 // snapshot; se refresca mientras la condición persista
	ReorderLevel int64 // snapshot al momento de crear la alerta
	SuggestedQty int64
	// EstimatedOrderCost = SuggestedQty * costo unitario del producto,
	// calculado al crear la alerta (no se refresca).
	EstimatedOrderCost decimal.Decimal
	Status             string
	CreatedAt          time.Time
}
