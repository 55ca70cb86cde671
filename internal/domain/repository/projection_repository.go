package repository

import (
	"context"

	"github.com/jhoicas/Producao-api/internal/domain/entity"
)

// ProjectionRepository puerto de lectura de proyecciones de ventas (DIP).
type ProjectionRepository interface {
	// ListByPeriods devuelve las proyecciones de la empresa para los períodos indicados, con sus ítems.
	ListByPeriods(ctx context.Context, companyID string, periods []entity.Period) ([]entity.Projection, error)
	// ListPeriods devuelve los períodos que tienen al menos una proyección, en orden cronológico.
	ListPeriods(ctx context.Context, companyID string) ([]entity.Period, error)
}
