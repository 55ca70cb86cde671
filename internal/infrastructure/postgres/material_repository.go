package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Producao-api/internal/domain/entity"
	"github.com/jhoicas/Producao-api/internal/domain/repository"
)

var _ repository.MaterialRepository = (*MaterialRepo)(nil)

// MaterialRepo implementación de MaterialRepository sobre PostgreSQL.
type MaterialRepo struct {
	q Querier
}

// NewMaterialRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMaterialRepository(q Querier) *MaterialRepo {
	return &MaterialRepo{q: q}
}

// ListByIDs obtiene las materias primas con su stock por ubicación. Stocks NULL se leen como 0.
func (r *MaterialRepo) ListByIDs(ctx context.Context, companyID string, ids []string) ([]entity.Material, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `
		SELECT id::text, company_id::text, name, code, unit_measure,
		       stock_estamparia, stock_tingimento, stock_fabrica, created_at, updated_at
		FROM materials
		WHERE company_id = $1 AND id = ANY($2::uuid[])`
	rows, err := r.q.Query(ctx, query, companyID, ids)
	if err != nil {
		return nil, fmt.Errorf("list materials: %w", err)
	}
	defer rows.Close()
	var list []entity.Material
	for rows.Next() {
		var (
			mat        entity.Material
			code, unit *string
			m, t, f    decimal.NullDecimal
		)
		if err := rows.Scan(&mat.ID, &mat.CompanyID, &mat.Name, &code, &unit, &m, &t, &f, &mat.CreatedAt, &mat.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan material: %w", err)
		}
		mat.Code = orEmpty(code)
		mat.UnitMeasure = orEmpty(unit)
		mat.StockEstamparia = orZero(m)
		mat.StockTingimento = orZero(t)
		mat.StockFabrica = orZero(f)
		list = append(list, mat)
	}
	return list, rows.Err()
}
