package entity

import "github.com/shopspring/decimal"

// Product representa un producto del catálogo (colaborador externo).
// El subsistema solo consume su identidad, el stock total con el que se
// siembra el libro y el costo unitario para estimar pedidos de reposición.
type Product struct {
	ID         string
	SKU        string
	Name       string
	TotalStock int64           // stock agregado del catálogo; usado únicamente en el sembrado
	UnitCost   decimal.Decimal // costo unitario para estimar el pedido sugerido
}
