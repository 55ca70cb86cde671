package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto terminado (prenda) de la empresa.
// FinishedStock es el stock de producto terminado disponible; se usa como crédito en el cálculo de necesidades.
type Product struct {
	ID            string
	CompanyID     string
	Reference     string // referencia interna de la confección
	Name          string
	FinishedStock decimal.Decimal // unidades terminadas en stock (nulo en BD = 0)
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
