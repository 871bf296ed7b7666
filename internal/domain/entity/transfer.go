package entity

import "time"

// Estados del ciclo de vida de un traslado.
// La creación debita la bodega origen de inmediato y deja el traslado en
// in_transit (la creación es a la vez la "reserva"); pending existe en el
// modelo pero ningún flujo actual lo produce. completed y cancelled son
// terminales: un traslado solo puede salir de in_transit una vez.
const (
	TransferStatusPending   = "pending"
	TransferStatusInTransit = "in_transit"
	TransferStatusCompleted = "completed"
	TransferStatusCancelled = "cancelled"
)

// Transfer representa el movimiento de una cantidad fija de un producto
// entre dos bodegas. Identidad, extremos, producto, cantidad y notas son
// inmutables tras la creación; solo el estado (y CompletedAt) mutan.
type Transfer struct {
	ID              string
	BatchID         string // agrupa traslados hermanos creados en un mismo lote; vacío si fue individual
	FromWarehouseID string
	ToWarehouseID   string
	ProductID       string
	Quantity        int64
	Notes           string
	Status          string
	CreatedAt       time.Time
	CompletedAt     *time.Time
}

// InTransit indica si el traslado aún puede completarse o cancelarse.
func (t *Transfer) InTransit() bool {
	return t.Status == TransferStatusInTransit
}
