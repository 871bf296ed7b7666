package main

import (
	appinventory "github.com/tu-usuario/warehouse-ops/internal/application/inventory"
	"github.com/tu-usuario/warehouse-ops/internal/domain/entity"
	"github.com/tu-usuario/warehouse-ops/internal/infrastructure/events"
	"github.com/tu-usuario/warehouse-ops/internal/infrastructure/memory"
	"github.com/tu-usuario/warehouse-ops/internal/infrastructure/seed"
	"github.com/tu-usuario/warehouse-ops/pkg/config"
	"github.com/tu-usuario/warehouse-ops/pkg/logger"
)

// Demo del subsistema de inventario: siembra el libro desde el snapshot
// JSON, ejecuta un escenario corto de traslados y deja en el log el estado
// resultante. El subsistema no expone servidor ni CLI; este binario solo
// muestra el cableado completo.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando demo de inventario")

	products, warehouses, err := seed.Load(cfg.Ledger.SeedFile)
	if err != nil {
		log.Fatal().Err(err).Msg("cargar snapshot inicial")
	}

	bus := events.NewBus()
	svc := appinventory.New(
		appinventory.Config{DefaultReorderLevel: cfg.Ledger.DefaultReorderLevel},
		log,
		bus,
		appinventory.Deps{
			Stocks:    memory.NewStockRepository(),
			Transfers: memory.NewTransferRepository(),
			Alerts:    memory.NewAlertRepository(),
		},
		products,
		warehouses,
	)

	// Observador: re-lee el estado derivado tras cada mutación, igual que
	// lo haría la UI del dashboard.
	unsubscribe := svc.Subscribe(func(ev events.ChangeEvent) {
		log.Debug().
			Str("kind", ev.Kind).
			Str("warehouse_id", ev.WarehouseID).
			Str("product_id", ev.ProductID).
			Msg("cambio observado")
	})
	defer unsubscribe()

	runScenario(svc, products, warehouses, log)

	for _, entry := range svc.WarehouseStock() {
		log.Info().
			Str("warehouse_id", entry.WarehouseID).
			Str("product_id", entry.ProductID).
			Int64("quantity", entry.Quantity).
			Msg("stock final")
	}
	for _, alert := range svc.ReorderAlerts() {
		log.Info().
			Str("alert_id", alert.ID).
			Str("status", alert.Status).
			Int64("current_stock", alert.CurrentStock).
			Int64("suggested_qty", alert.SuggestedQty).
			Str("estimated_cost", alert.EstimatedOrderCost.StringFixed(2)).
			Msg("alerta de reposición")
	}
}

// runScenario mueve stock entre las dos primeras bodegas activas del
// snapshot: un traslado individual completado, un lote con resultado
// parcial y una cancelación que restaura la bodega origen.
func runScenario(
	svc *appinventory.Service,
	products []entity.Product,
	warehouses []entity.Warehouse,
	log *logger.Logger,
) {
	var actives []entity.Warehouse
	for _, w := range warehouses {
		if w.IsActive() {
			actives = append(actives, w)
		}
	}
	if len(actives) < 2 || len(products) == 0 {
		log.Warn().Msg("snapshot sin bodegas activas o productos suficientes para el escenario")
		return
	}
	from, to := actives[0].ID, actives[1].ID
	productID := products[0].ID

	transfer := svc.CreateTransfer(appinventory.TransferInput{
		From:      from,
		To:        to,
		ProductID: productID,
		Quantity:  5,
		Notes:     "reabastecimiento de vitrina",
	})
	if transfer != nil {
		svc.CompleteTransfer(transfer.ID)
	}

	// Lote con un ítem inadmisible: se crea solo el subconjunto con stock.
	items := []appinventory.BatchItem{{ProductID: productID, Quantity: 3}}
	if len(products) > 1 {
		items = append(items, appinventory.BatchItem{ProductID: products[1].ID, Quantity: 1_000_000})
	}
	batch := svc.CreateBatchTransfer(appinventory.BatchTransferInput{
		From:  from,
		To:    to,
		Items: items,
		Notes: "lote semanal",
	})
	log.Info().Int("created", len(batch)).Int("requested", len(items)).Msg("lote procesado")
	for _, t := range batch {
		svc.CancelTransfer(t.ID)
	}
}
