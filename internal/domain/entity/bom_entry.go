package entity

import "github.com/shopspring/decimal"

// BOMEntry es una línea de la ficha técnica (BOM de un solo nivel): cuánto material consume una unidad del producto.
type BOMEntry struct {
	ProductID       string
	MaterialID      string
	QuantityPerUnit decimal.Decimal
}
