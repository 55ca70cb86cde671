package repository

import (
	"context"

	"github.com/jhoicas/Producao-api/internal/domain/entity"
)

// BOMRepository puerto de lectura de fichas técnicas (producto → materiales).
type BOMRepository interface {
	ListByProducts(ctx context.Context, companyID string, productIDs []string) ([]entity.BOMEntry, error)
}
