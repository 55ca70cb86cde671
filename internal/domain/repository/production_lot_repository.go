package repository

import (
	"context"

	"github.com/jhoicas/Producao-api/internal/domain/entity"
)

// ProductionLotRepository puerto de lectura de lotes de producción.
type ProductionLotRepository interface {
	// ListOpenByProducts devuelve solo los lotes no finalizados de los productos indicados.
	ListOpenByProducts(ctx context.Context, companyID string, productIDs []string) ([]entity.ProductionLot, error)
}
