package repository

import "github.com/tu-usuario/warehouse-ops/internal/domain/entity"

// TransferRepository define el puerto para el registro de traslados.
// Los traslados nunca se eliminan; Count crece de forma monótona y sirve
// de base para los IDs secuenciales.
type TransferRepository interface {
	Append(transfer *entity.Transfer)
	GetByID(id string) *entity.Transfer
	All() []*entity.Transfer
	ByBatch(batchID string) []*entity.Transfer
	Count() int
}
