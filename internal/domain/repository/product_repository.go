package repository

import (
	"context"

	"github.com/jhoicas/Producao-api/internal/domain/entity"
)

// ProductRepository puerto de lectura de productos terminados (DIP).
type ProductRepository interface {
	ListByIDs(ctx context.Context, companyID string, ids []string) ([]entity.Product, error)
}
