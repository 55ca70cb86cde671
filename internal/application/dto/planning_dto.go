package dto

import "github.com/shopspring/decimal"

// MaterialRequirementsRequest body para POST /api/planning/material-requirements.
type MaterialRequirementsRequest struct {
	Periods []string `json:"periods"` // "YYYY-MM"
}

// MaterialRequirementDTO necesidad neta de un material (2 decimales de presentación).
type MaterialRequirementDTO struct {
	MaterialID            string          `json:"material_id"`
	Name                  string          `json:"name"`
	Code                  string          `json:"code"`
	Unit                  string          `json:"unit"`
	GrossRequirement      decimal.Decimal `json:"gross_requirement"`
	StockEstamparia       decimal.Decimal `json:"stock_estamparia"`
	StockTingimento       decimal.Decimal `json:"stock_tingimento"`
	StockFabrica          decimal.Decimal `json:"stock_fabrica"`
	FinishedProductCredit decimal.Decimal `json:"finished_product_credit"` // stock terminado × consumo por unidad
	WIPCredit             decimal.Decimal `json:"wip_credit"`              // lotes abiertos × consumo por unidad
	TotalAvailable        decimal.Decimal `json:"total_available"`
	QuantityToPurchase    decimal.Decimal `json:"quantity_to_purchase"` // max(0, bruto - disponible)
}

// MaterialRequirementsResponse respuesta del cálculo de necesidades.
type MaterialRequirementsResponse struct {
	RunID                string                   `json:"run_id"`
	Periods              []string                 `json:"periods"`
	Total                int                      `json:"total"`
	Requirements         []MaterialRequirementDTO `json:"requirements"`
	UnconfiguredProducts []string                 `json:"unconfigured_products"`
}

// PeriodListResponse períodos con proyección disponibles para seleccionar.
type PeriodListResponse struct {
	Periods []string `json:"periods"`
}
