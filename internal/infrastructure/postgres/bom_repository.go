package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Producao-api/internal/domain/entity"
	"github.com/jhoicas/Producao-api/internal/domain/repository"
)

var _ repository.BOMRepository = (*BOMRepo)(nil)

// BOMRepo lee las fichas técnicas (tabla product_materials).
type BOMRepo struct {
	q Querier
}

// NewBOMRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBOMRepository(q Querier) *BOMRepo {
	return &BOMRepo{q: q}
}

// ListByProducts devuelve las líneas de ficha técnica de los productos de la empresa.
// La empresa se valida por el producto; quantity_per_unit NULL se lee como 0.
func (r *BOMRepo) ListByProducts(ctx context.Context, companyID string, productIDs []string) ([]entity.BOMEntry, error) {
	if len(productIDs) == 0 {
		return nil, nil
	}
	query := `
		SELECT pm.product_id::text, pm.material_id::text, pm.quantity_per_unit
		FROM product_materials pm
		JOIN products p ON p.id = pm.product_id
		WHERE p.company_id = $1 AND pm.product_id = ANY($2::uuid[])
		ORDER BY pm.product_id, pm.material_id`
	rows, err := r.q.Query(ctx, query, companyID, productIDs)
	if err != nil {
		return nil, fmt.Errorf("list product materials: %w", err)
	}
	defer rows.Close()
	var list []entity.BOMEntry
	for rows.Next() {
		var (
			e   entity.BOMEntry
			qty decimal.NullDecimal
		)
		if err := rows.Scan(&e.ProductID, &e.MaterialID, &qty); err != nil {
			return nil, fmt.Errorf("scan product material: %w", err)
		}
		e.QuantityPerUnit = orZero(qty)
		list = append(list, e)
	}
	return list, rows.Err()
}
