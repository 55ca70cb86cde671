package repository

import (
	"context"

	"github.com/jhoicas/Producao-api/internal/domain/entity"
)

// MaterialRepository puerto de lectura de materias primas con su stock por ubicación.
type MaterialRepository interface {
	ListByIDs(ctx context.Context, companyID string, ids []string) ([]entity.Material, error)
}
