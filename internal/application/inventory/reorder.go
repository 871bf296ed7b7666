package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/warehouse-ops/internal/domain/entity"
	domaininv "github.com/tu-usuario/warehouse-ops/internal/domain/inventory"
	"github.com/tu-usuario/warehouse-ops/internal/infrastructure/events"
)

// recomputeAlertsLocked recorre todas las entradas de stock después de cada
// mutación del libro y ajusta las alertas de reposición:
//
//   - cantidad <= umbral y sin alerta active para el par: crea una alerta
//     active con SuggestedQty = max(umbral*3, 10).
//   - cantidad <= umbral con alerta active: refresca el snapshot
//     CurrentStock en sitio (id, estado, fecha y cantidad sugerida intactos).
//   - cantidad > umbral con alerta active: la resuelve automáticamente.
//
// Solo las alertas active participan: una alerta acknowledged no se resuelve
// automáticamente aunque el stock se recupere; únicamente ResolveAlert la
// cierra. Las entradas sin umbral (ReorderLevel nil) se ignoran.
func (s *Service) recomputeAlertsLocked() []events.ChangeEvent {
	var evs []events.ChangeEvent

	for _, entry := range s.stocks.All() {
		if entry.ReorderLevel == nil {
			continue
		}
		active := s.alerts.ActiveFor(entry.WarehouseID, entry.ProductID)

		if entry.BelowReorderLevel() {
			if active == nil {
				alert := s.newAlertLocked(entry)
				s.alerts.Append(alert)
				evs = append(evs, events.ChangeEvent{
					Kind:        events.KindAlertCreated,
					WarehouseID: entry.WarehouseID,
					ProductID:   entry.ProductID,
					AlertID:     alert.ID,
				})
				s.log.Info().
					Str("alert_id", alert.ID).
					Str("warehouse_id", entry.WarehouseID).
					Str("product_id", entry.ProductID).
					Int64("current_stock", entry.Quantity).
					Int64("suggested_qty", alert.SuggestedQty).
					Msg("alerta de reposición creada")
			} else if active.CurrentStock != entry.Quantity {
				active.CurrentStock = entry.Quantity
				evs = append(evs, events.ChangeEvent{
					Kind:        events.KindAlertUpdated,
					WarehouseID: entry.WarehouseID,
					ProductID:   entry.ProductID,
					AlertID:     active.ID,
				})
			}
			continue
		}

		if active != nil {
			active.Status = entity.AlertStatusResolved
			evs = append(evs, events.ChangeEvent{
				Kind:        events.KindAlertResolved,
				WarehouseID: entry.WarehouseID,
				ProductID:   entry.ProductID,
				AlertID:     active.ID,
			})
			s.log.Info().
				Str("alert_id", active.ID).
				Str("warehouse_id", entry.WarehouseID).
				Str("product_id", entry.ProductID).
				Msg("alerta resuelta automáticamente: stock recuperado")
		}
	}

	return evs
}

// newAlertLocked construye la alerta con los snapshots del momento.
func (s *Service) newAlertLocked(entry *entity.StockEntry) *entity.ReorderAlert {
	level := *entry.ReorderLevel
	suggested := domaininv.SuggestedOrderQty(level)
	product := s.products[entry.ProductID]

	return &entity.ReorderAlert{
		ID:                 uuid.New().String(),
		WarehouseID:        entry.WarehouseID,
		ProductID:          entry.ProductID,
		CurrentStock:       entry.Quantity,
		ReorderLevel:       level,
		SuggestedQty:       suggested,
		EstimatedOrderCost: domaininv.EstimatedOrderCost(suggested, product.UnitCost),
		Status:             entity.AlertStatusActive,
		CreatedAt:          time.Now(),
	}
}

// AcknowledgeAlert marca una alerta active como acknowledged: queda fuera de
// la gestión automática (el recálculo ya no la resuelve) hasta que un
// operador la cierre con ResolveAlert. No-op (false) si la alerta no existe
// o no está active. No dispara recálculo: las alertas no son mutaciones del libro.
func (s *Service) AcknowledgeAlert(id string) bool {
	s.mu.Lock()
	alert := s.alerts.GetByID(id)
	if alert == nil || alert.Status != entity.AlertStatusActive {
		s.mu.Unlock()
		return false
	}
	alert.Status = entity.AlertStatusAcknowledged
	ev := events.ChangeEvent{
		Kind:        events.KindAlertAcknowledged,
		WarehouseID: alert.WarehouseID,
		ProductID:   alert.ProductID,
		AlertID:     alert.ID,
	}
	s.mu.Unlock()

	s.log.Info().Str("alert_id", id).Msg("alerta reconocida por operador")
	s.bus.Publish(ev)
	return true
}

// ResolveAlert cierra manualmente una alerta active o acknowledged sin
// esperar a que el stock se recupere. No-op (false) si la alerta no existe
// o ya está resolved (estado terminal).
func (s *Service) ResolveAlert(id string) bool {
	s.mu.Lock()
	alert := s.alerts.GetByID(id)
	if alert == nil || alert.Status == entity.AlertStatusResolved {
		s.mu.Unlock()
		return false
	}
	alert.Status = entity.AlertStatusResolved
	ev := events.ChangeEvent{
		Kind:        events.KindAlertResolved,
		WarehouseID: alert.WarehouseID,
		ProductID:   alert.ProductID,
		AlertID:     alert.ID,
	}
	s.mu.Unlock()

	s.log.Info().Str("alert_id", id).Msg("alerta resuelta por operador")
	s.bus.Publish(ev)
	return true
}
