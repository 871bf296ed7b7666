package inventory

import "github.com/shopspring/decimal"

// SplitEvenly reparte total entre n bodegas con división entera, dejando el
// residuo en la última posición. Devuelve nil si n <= 0.
// Ejemplo: SplitEvenly(31, 2) -> [15, 16].
func SplitEvenly(total int64, n int) []int64 {
	if n <= 0 {
		return nil
	}
	base := total / int64(n)
	parts := make([]int64, n)
	for i := range parts {
		parts[i] = base
	}
	parts[n-1] += total - base*int64(n)
	return parts
}

// SuggestedOrderQty calcula la cantidad sugerida de pedido cuando una entrada
// cae a su punto de reorden: el triple del umbral, con piso de 10 unidades.
func SuggestedOrderQty(reorderLevel int64) int64 {
	qty := reorderLevel * 3
	if qty < 10 {
		qty = 10
	}
	return qty
}

// EstimatedOrderCost calcula el costo estimado del pedido sugerido.
func EstimatedOrderCost(suggestedQty int64, unitCost decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(suggestedQty).Mul(unitCost)
}
