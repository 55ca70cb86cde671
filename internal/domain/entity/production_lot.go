package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductionLot representa un lote de producción (WIP). Mientras Finished sea false,
// su cantidad planeada ya tiene el material reservado.
type ProductionLot struct {
	ID              string
	CompanyID       string
	ProductID       string
	PlannedQuantity decimal.Decimal
	Finished        bool
	CreatedAt       time.Time
}
