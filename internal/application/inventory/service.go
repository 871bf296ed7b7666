// Package inventory implementa el libro de inventario multi-bodega:
// stock por (bodega, producto), traslados entre bodegas con ciclo de vida
// y alertas de reposición derivadas del estado del libro.
//
// Todo el estado vive en memoria dentro de una instancia de Service
// construida con un snapshot inicial de catálogo y bodegas. Un único mutex
// cubre cada operación compuesta (debitar origen + registrar traslado +
// recalcular alertas) para preservar la conservación de stock; las
// notificaciones de cambio se publican después de soltar el mutex, así los
// observadores pueden re-leer el estado sin bloquearse.
package inventory

import (
	"sync"
	"time"

	"github.com/tu-usuario/warehouse-ops/internal/domain/entity"
	domaininv "github.com/tu-usuario/warehouse-ops/internal/domain/inventory"
	"github.com/tu-usuario/warehouse-ops/internal/domain/repository"
	"github.com/tu-usuario/warehouse-ops/internal/infrastructure/events"
	"github.com/tu-usuario/warehouse-ops/pkg/logger"
)

// Config parámetros del servicio de inventario.
type Config struct {
	// DefaultReorderLevel punto de reorden asignado a cada entrada sembrada.
	DefaultReorderLevel int64
}

// Service es el dueño exclusivo de las entradas de stock, los traslados y
// las alertas de reposición. Construcción explícita con snapshot inyectado;
// no hay estado global.
type Service struct {
	mu sync.Mutex

	cfg Config
	log *logger.Logger
	bus *events.Bus

	stocks    repository.StockRepository
	transfers repository.TransferRepository
	alerts    repository.AlertRepository

	// catálogo inyectado; solo se usa para costos unitarios en alertas
	products map[string]entity.Product
}

// Deps repositorios del servicio.
type Deps struct {
	Stocks    repository.StockRepository
	Transfers repository.TransferRepository
	Alerts    repository.AlertRepository
}

// New construye el servicio y siembra el libro: el stock total de cada
// producto se reparte entre las bodegas activas con división entera,
// dejando el residuo en la última bodega activa. Cada entrada sembrada
// recibe el punto de reorden por defecto. El sembrado ocurre exactamente
// una vez; no hay re-sembrado.
func New(
	cfg Config,
	log *logger.Logger,
	bus *events.Bus,
	deps Deps,
	products []entity.Product,
	warehouses []entity.Warehouse,
) *Service {
	s := &Service{
		cfg:       cfg,
		log:       log,
		bus:       bus,
		stocks:    deps.Stocks,
		transfers: deps.Transfers,
		alerts:    deps.Alerts,
		products:  make(map[string]entity.Product, len(products)),
	}

	var actives []entity.Warehouse
	for _, w := range warehouses {
		if w.IsActive() {
			actives = append(actives, w)
		}
	}

	now := time.Now()
	for _, p := range products {
		s.products[p.ID] = p
		if len(actives) == 0 {
			continue
		}
		parts := domaininv.SplitEvenly(p.TotalStock, len(actives))
		for i, w := range actives {
			level := cfg.DefaultReorderLevel
			s.stocks.Upsert(&entity.StockEntry{
				WarehouseID:  w.ID,
				ProductID:    p.ID,
				Quantity:     parts[i],
				ReorderLevel: &level,
				UpdatedAt:    now,
			})
		}
	}

	s.log.Info().
		Int("products", len(products)).
		Int("active_warehouses", len(actives)).
		Int("stock_entries", len(s.stocks.All())).
		Msg("libro de inventario sembrado")

	evs := append([]events.ChangeEvent{{Kind: events.KindSeeded}}, s.recomputeAlertsLocked()...)
	s.publish(evs)
	return s
}

// Subscribe registra un observador de cambios; devuelve la función para
// desuscribirlo. Los eventos llegan de forma síncrona, en orden de registro.
func (s *Service) Subscribe(fn events.Handler) func() {
	return s.bus.Subscribe(fn)
}

// QuantityOf devuelve la cantidad disponible del producto en la bodega,
// o 0 si el par no tiene entrada.
func (s *Service) QuantityOf(warehouseID, productID string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry := s.stocks.Get(warehouseID, productID)
	if entry == nil {
		return 0
	}
	return entry.Quantity
}

// SetReorderLevel fija el punto de reorden de la entrada (bodega, producto).
// No-op (false) si el par no tiene entrada. El nivel no se valida: es
// responsabilidad del caller pasar un valor >= 0.
func (s *Service) SetReorderLevel(warehouseID, productID string, level int64) bool {
	s.mu.Lock()
	entry := s.stocks.Get(warehouseID, productID)
	if entry == nil {
		s.mu.Unlock()
		return false
	}
	entry.ReorderLevel = &level
	entry.UpdatedAt = time.Now()

	evs := []events.ChangeEvent{{
		Kind:        events.KindReorderLevelSet,
		WarehouseID: warehouseID,
		ProductID:   productID,
	}}
	evs = append(evs, s.recomputeAlertsLocked()...)
	s.mu.Unlock()

	s.log.Info().
		Str("warehouse_id", warehouseID).
		Str("product_id", productID).
		Int64("level", level).
		Msg("punto de reorden actualizado")
	s.publish(evs)
	return true
}

// WarehouseStock devuelve una copia de todas las entradas de stock.
func (s *Service) WarehouseStock() []entity.StockEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyEntries(s.stocks.All())
}

// StockForWarehouse devuelve una copia de las entradas de una bodega.
func (s *Service) StockForWarehouse(warehouseID string) []entity.StockEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyEntries(s.stocks.ByWarehouse(warehouseID))
}

// StockForProduct devuelve una copia de las entradas de un producto
// a través de todas las bodegas.
func (s *Service) StockForProduct(productID string) []entity.StockEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyEntries(s.stocks.ByProduct(productID))
}

// Transfers devuelve una copia de todos los traslados, en orden de creación.
func (s *Service) Transfers() []entity.Transfer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyTransfers(s.transfers.All())
}

// TransfersInBatch devuelve una copia de los traslados hermanos de un lote.
func (s *Service) TransfersInBatch(batchID string) []entity.Transfer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyTransfers(s.transfers.ByBatch(batchID))
}

// ReorderAlerts devuelve una copia de todas las alertas, en orden de creación.
func (s *Service) ReorderAlerts() []entity.ReorderAlert {
	s.mu.Lock()
	defer s.mu.Unlock()
	all := s.alerts.All()
	out := make([]entity.ReorderAlert, len(all))
	for i, a := range all {
		out[i] = *a
	}
	return out
}

// adjustLocked aplica delta a la cantidad de la entrada, con piso en 0.
// Solo el motor de traslados muta cantidades después del sembrado.
func (s *Service) adjustLocked(entry *entity.StockEntry, delta int64) {
	entry.Quantity += delta
	if entry.Quantity < 0 {
		entry.Quantity = 0
	}
	entry.UpdatedAt = time.Now()
}

// publish entrega los eventos acumulados por una operación. Se invoca
// fuera del mutex del servicio.
func (s *Service) publish(evs []events.ChangeEvent) {
	for _, ev := range evs {
		s.bus.Publish(ev)
	}
}

// copyEntries devuelve copias desacopladas: mutar el resultado no toca el libro.
func copyEntries(entries []*entity.StockEntry) []entity.StockEntry {
	out := make([]entity.StockEntry, len(entries))
	for i, e := range entries {
		out[i] = *e
		if e.ReorderLevel != nil {
			level := *e.ReorderLevel
			out[i].ReorderLevel = &level
		}
	}
	return out
}

func copyTransfers(transfers []*entity.Transfer) []entity.Transfer {
	out := make([]entity.Transfer, len(transfers))
	for i, t := range transfers {
		out[i] = *t
		if t.CompletedAt != nil {
			at := *t.CompletedAt
			out[i].CompletedAt = &at
		}
	}
	return out
}
