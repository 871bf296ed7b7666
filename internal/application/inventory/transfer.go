package inventory

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/warehouse-ops/internal/domain/entity"
	"github.com/tu-usuario/warehouse-ops/internal/infrastructure/events"
)

// TransferInput entrada para crear un traslado individual.
type TransferInput struct {
	From      string
	To        string
	ProductID string
	Quantity  int64
	Notes     string
}

// BatchItem producto y cantidad dentro de un traslado por lote.
type BatchItem struct {
	ProductID string
	Quantity  int64
}

// BatchTransferInput entrada para crear un lote de traslados entre las
// mismas dos bodegas.
type BatchTransferInput struct {
	From  string
	To    string
	Items []BatchItem
	Notes string
}

// CreateTransfer crea un traslado en estado in_transit, debitando la bodega
// origen de inmediato (la creación es la reserva; no hay fase pending).
//
// La única condición de admisión es que exista entrada de stock para
// (origen, producto) con cantidad suficiente; no se verifica que origen y
// destino difieran ni que las bodegas estén activas. Si la admisión falla
// devuelve nil sin mutar nada: ese nil es la señal de error completa.
func (s *Service) CreateTransfer(input TransferInput) *entity.Transfer {
	s.mu.Lock()
	transfer, evs := s.createTransferLocked(input, "")
	s.mu.Unlock()
	s.publish(evs)
	return transfer
}

// CreateBatchTransfer crea un traslado por ítem bajo un batchId compartido.
// La admisión de cada ítem es independiente: un ítem sin stock suficiente se
// omite en silencio, sin revertir los hermanos ya creados. Devuelve solo el
// subconjunto que tuvo éxito.
func (s *Service) CreateBatchTransfer(input BatchTransferInput) []*entity.Transfer {
	batchID := uuid.New().String()

	s.mu.Lock()
	var created []*entity.Transfer
	var evs []events.ChangeEvent
	for _, item := range input.Items {
		transfer, itemEvs := s.createTransferLocked(TransferInput{
			From:      input.From,
			To:        input.To,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Notes:     input.Notes,
		}, batchID)
		if transfer == nil {
			continue
		}
		created = append(created, transfer)
		evs = append(evs, itemEvs...)
	}
	s.mu.Unlock()

	s.publish(evs)
	return created
}

// createTransferLocked aplica la admisión y la mutación bajo el mutex del
// servicio; devuelve el traslado creado (o nil) y los eventos a publicar.
func (s *Service) createTransferLocked(input TransferInput, batchID string) (*entity.Transfer, []events.ChangeEvent) {
	source := s.stocks.Get(input.From, input.ProductID)
	if source == nil || source.Quantity < input.Quantity {
		s.log.Warn().
			Str("from", input.From).
			Str("product_id", input.ProductID).
			Int64("quantity", input.Quantity).
			Msg("traslado rechazado: stock insuficiente en origen")
		return nil, nil
	}

	// Debita el origen ya mismo: la creación hace de reserva.
	s.adjustLocked(source, -input.Quantity)

	transfer := &entity.Transfer{
		ID:              fmt.Sprintf("TR-%04d", s.transfers.Count()+1),
		BatchID:         batchID,
		FromWarehouseID: input.From,
		ToWarehouseID:   input.To,
		ProductID:       input.ProductID,
		Quantity:        input.Quantity,
		Notes:           input.Notes,
		Status:          entity.TransferStatusInTransit,
		CreatedAt:       time.Now(),
	}
	s.transfers.Append(transfer)

	s.log.Info().
		Str("transfer_id", transfer.ID).
		Str("from", input.From).
		Str("to", input.To).
		Str("product_id", input.ProductID).
		Int64("quantity", input.Quantity).
		Msg("traslado creado")

	evs := []events.ChangeEvent{{
		Kind:        events.KindTransferCreated,
		WarehouseID: input.From,
		ProductID:   input.ProductID,
		TransferID:  transfer.ID,
	}}
	return transfer, append(evs, s.recomputeAlertsLocked()...)
}

// CompleteTransfer acredita la bodega destino y marca el traslado como
// completed (terminal). No-op (false) si el traslado no existe o ya salió
// de in_transit; repetir la llamada nunca acredita dos veces.
//
// Si el destino no tiene entrada para el producto, se crea con la cantidad
// trasladada y sin punto de reorden: el valor por defecto solo aplica en el
// sembrado, así que la entrada nueva no genera alertas hasta que un operador
// fije su umbral.
func (s *Service) CompleteTransfer(id string) bool {
	s.mu.Lock()
	transfer := s.transfers.GetByID(id)
	if transfer == nil || !transfer.InTransit() {
		s.mu.Unlock()
		s.log.Warn().Str("transfer_id", id).Msg("completar traslado: no existe o no está in_transit")
		return false
	}

	now := time.Now()
	dest := s.stocks.Get(transfer.ToWarehouseID, transfer.ProductID)
	if dest == nil {
		s.stocks.Upsert(&entity.StockEntry{
			WarehouseID: transfer.ToWarehouseID,
			ProductID:   transfer.ProductID,
			Quantity:    transfer.Quantity,
			UpdatedAt:   now,
		})
	} else {
		s.adjustLocked(dest, transfer.Quantity)
	}

	transfer.Status = entity.TransferStatusCompleted
	transfer.CompletedAt = &now

	evs := []events.ChangeEvent{{
		Kind:        events.KindTransferCompleted,
		WarehouseID: transfer.ToWarehouseID,
		ProductID:   transfer.ProductID,
		TransferID:  transfer.ID,
	}}
	evs = append(evs, s.recomputeAlertsLocked()...)
	s.mu.Unlock()

	s.log.Info().
		Str("transfer_id", id).
		Str("to", transfer.ToWarehouseID).
		Int64("quantity", transfer.Quantity).
		Msg("traslado completado")
	s.publish(evs)
	return true
}

// CancelTransfer restaura la cantidad en la bodega origen y marca el
// traslado como cancelled (terminal). No-op (false) si el traslado no
// existe o ya salió de in_transit.
func (s *Service) CancelTransfer(id string) bool {
	s.mu.Lock()
	transfer := s.transfers.GetByID(id)
	if transfer == nil || !transfer.InTransit() {
		s.mu.Unlock()
		s.log.Warn().Str("transfer_id", id).Msg("cancelar traslado: no existe o no está in_transit")
		return false
	}

	// La entrada origen existe desde la admisión; las entradas no se eliminan.
	source := s.stocks.Get(transfer.FromWarehouseID, transfer.ProductID)
	s.adjustLocked(source, transfer.Quantity)
	transfer.Status = entity.TransferStatusCancelled

	evs := []events.ChangeEvent{{
		Kind:        events.KindTransferCancelled,
		WarehouseID: transfer.FromWarehouseID,
		ProductID:   transfer.ProductID,
		TransferID:  transfer.ID,
	}}
	evs = append(evs, s.recomputeAlertsLocked()...)
	s.mu.Unlock()

	s.log.Info().
		Str("transfer_id", id).
		Str("from", transfer.FromWarehouseID).
		Int64("quantity", transfer.Quantity).
		Msg("traslado cancelado")
	s.publish(evs)
	return true
}
