package memory

import (
	"github.com/tu-usuario/warehouse-ops/internal/domain/entity"
	"github.com/tu-usuario/warehouse-ops/internal/domain/repository"
)

// TransferRepository almacena los traslados en orden de creación.
type TransferRepository struct {
	transfers []*entity.Transfer
	byID      map[string]*entity.Transfer
}

// NewTransferRepository construye el repositorio vacío.
func NewTransferRepository() *TransferRepository {
	return &TransferRepository{
		transfers: []*entity.Transfer{},
		byID:      make(map[string]*entity.Transfer),
	}
}

var _ repository.TransferRepository = (*TransferRepository)(nil)

// Append agrega un traslado nuevo al registro.
func (r *TransferRepository) Append(transfer *entity.Transfer) {
	r.transfers = append(r.transfers, transfer)
	r.byID[transfer.ID] = transfer
}

// GetByID devuelve el traslado con ese id, o nil si no existe.
func (r *TransferRepository) GetByID(id string) *entity.Transfer {
	return r.byID[id]
}

// All devuelve los traslados en orden de creación.
func (r *TransferRepository) All() []*entity.Transfer {
	return r.transfers
}

// ByBatch devuelve los traslados hermanos de un lote.
func (r *TransferRepository) ByBatch(batchID string) []*entity.Transfer {
	var out []*entity.Transfer
	if batchID == "" {
		return out
	}
	for _, t := range r.transfers {
		if t.BatchID == batchID {
			out = append(out, t)
		}
	}
	return out
}

// Count devuelve el total de traslados registrados.
func (r *TransferRepository) Count() int {
	return len(r.transfers)
}
