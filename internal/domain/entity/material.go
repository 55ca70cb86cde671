package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Material representa una materia prima (tejido, hilo, tinta, avío) con stock por ubicación física.
type Material struct {
	ID              string
	CompanyID       string
	Name            string
	Code            string
	UnitMeasure     string          // m, kg, un, ...
	StockEstamparia decimal.Decimal // stock en estamparia
	StockTingimento decimal.Decimal // stock en tingimento (tintorería)
	StockFabrica    decimal.Decimal // stock en la fábrica
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TotalStock suma el stock de las tres ubicaciones.
func (m Material) TotalStock() decimal.Decimal {
	return m.StockEstamparia.Add(m.StockTingimento).Add(m.StockFabrica)
}
