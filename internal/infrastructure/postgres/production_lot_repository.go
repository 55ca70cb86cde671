package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Producao-api/internal/domain/entity"
	"github.com/jhoicas/Producao-api/internal/domain/repository"
)

var _ repository.ProductionLotRepository = (*ProductionLotRepo)(nil)

// ProductionLotRepo lee los lotes de producción (WIP).
type ProductionLotRepo struct {
	q Querier
}

// NewProductionLotRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductionLotRepository(q Querier) *ProductionLotRepo {
	return &ProductionLotRepo{q: q}
}

// ListOpenByProducts devuelve los lotes no finalizados. finished NULL cuenta como abierto.
func (r *ProductionLotRepo) ListOpenByProducts(ctx context.Context, companyID string, productIDs []string) ([]entity.ProductionLot, error) {
	if len(productIDs) == 0 {
		return nil, nil
	}
	query := `
		SELECT id::text, company_id::text, product_id::text, planned_quantity, created_at
		FROM production_lots
		WHERE company_id = $1 AND product_id = ANY($2::uuid[]) AND finished IS NOT TRUE
		ORDER BY created_at, id`
	rows, err := r.q.Query(ctx, query, companyID, productIDs)
	if err != nil {
		return nil, fmt.Errorf("list production lots: %w", err)
	}
	defer rows.Close()
	var list []entity.ProductionLot
	for rows.Next() {
		var (
			l       entity.ProductionLot
			planned decimal.NullDecimal
		)
		if err := rows.Scan(&l.ID, &l.CompanyID, &l.ProductID, &planned, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan production lot: %w", err)
		}
		l.PlannedQuantity = orZero(planned)
		list = append(list, l)
	}
	return list, rows.Err()
}
