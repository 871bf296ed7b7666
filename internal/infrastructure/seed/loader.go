// Package seed carga el snapshot inicial de colaboradores externos
// (catálogo de productos y registro de sucursales) desde un archivo JSON.
// El subsistema no persiste nada: el snapshot solo alimenta el sembrado.
package seed

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/warehouse-ops/internal/domain/entity"
)

// Snapshot es el documento JSON esperado.
type Snapshot struct {
	Products   []ProductRecord   `json:"products"`
	Warehouses []WarehouseRecord `json:"warehouses"`
}

// ProductRecord registro de producto del catálogo.
type ProductRecord struct {
	ID         string          `json:"id"`
	SKU        string          `json:"sku"`
	Name       string          `json:"name"`
	TotalStock int64           `json:"total_stock"`
	UnitCost   decimal.Decimal `json:"unit_cost"`
}

// WarehouseRecord registro de bodega/sucursal.
type WarehouseRecord struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

// Load lee y decodifica el snapshot, devolviendo los colaboradores listos
// para inyectar en el servicio de inventario.
func Load(path string) ([]entity.Product, []entity.Warehouse, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("leer snapshot %s: %w", path, err)
	}

	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, nil, fmt.Errorf("decodificar snapshot %s: %w", path, err)
	}

	products := make([]entity.Product, 0, len(snap.Products))
	for _, p := range snap.Products {
		products = append(products, entity.Product{
			ID:         p.ID,
			SKU:        p.SKU,
			Name:       p.Name,
			TotalStock: p.TotalStock,
			UnitCost:   p.UnitCost,
		})
	}

	warehouses := make([]entity.Warehouse, 0, len(snap.Warehouses))
	for _, w := range snap.Warehouses {
		warehouses = append(warehouses, entity.Warehouse{
			ID:     w.ID,
			Name:   w.Name,
			Status: w.Status,
		})
	}

	return products, warehouses, nil
}
