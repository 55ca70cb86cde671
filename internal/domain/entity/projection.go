package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Period identifica un mes de referencia de la proyección de ventas.
type Period struct {
	Year  int
	Month int
}

// Key devuelve el período en formato "YYYY-MM".
func (p Period) Key() string {
	return fmt.Sprintf("%04d-%02d", p.Year, p.Month)
}

// Projection es una proyección de ventas de un mes; la carga el planificador y es de solo lectura para el cálculo.
type Projection struct {
	ID        string
	CompanyID string
	Period    Period
	Items     []ProjectionItem
	CreatedAt time.Time
}

// ProjectionItem cantidad proyectada de un producto.
type ProjectionItem struct {
	ProductID string
	Quantity  decimal.Decimal
}
