package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Producao-api/internal/domain/entity"
	"github.com/jhoicas/Producao-api/internal/domain/repository"
)

var _ repository.ProjectionRepository = (*ProjectionRepo)(nil)

// ProjectionRepo implementación de ProjectionRepository sobre PostgreSQL.
type ProjectionRepo struct {
	q Querier
}

// NewProjectionRepository construye el adaptador. Acepta pool o tx (Querier).
func NewProjectionRepository(q Querier) *ProjectionRepo {
	return &ProjectionRepo{q: q}
}

// ListByPeriods trae proyecciones e ítems en una sola consulta (LEFT JOIN) y los agrupa por proyección.
func (r *ProjectionRepo) ListByPeriods(ctx context.Context, companyID string, periods []entity.Period) ([]entity.Projection, error) {
	if len(periods) == 0 {
		return nil, nil
	}
	query := `
		SELECT p.id::text, p.company_id::text, p.ref_year, p.ref_month, p.created_at, i.product_id::text, i.quantity
		FROM sales_projections p
		LEFT JOIN sales_projection_items i ON i.projection_id = p.id
		WHERE p.company_id = $1
		  AND (p.ref_year * 100 + p.ref_month) = ANY($2)
		ORDER BY p.ref_year, p.ref_month, p.id`
	rows, err := r.q.Query(ctx, query, companyID, periodKeys(periods))
	if err != nil {
		return nil, fmt.Errorf("list projections: %w", err)
	}
	defer rows.Close()

	var list []entity.Projection
	pos := make(map[string]int)
	for rows.Next() {
		var (
			p         entity.Projection
			productID *string
			quantity  decimal.NullDecimal
		)
		if err := rows.Scan(&p.ID, &p.CompanyID, &p.Period.Year, &p.Period.Month, &p.CreatedAt, &productID, &quantity); err != nil {
			return nil, fmt.Errorf("scan projection: %w", err)
		}
		i, ok := pos[p.ID]
		if !ok {
			i = len(list)
			pos[p.ID] = i
			list = append(list, p)
		}
		if productID != nil {
			list[i].Items = append(list[i].Items, entity.ProjectionItem{
				ProductID: *productID,
				Quantity:  orZero(quantity),
			})
		}
	}
	return list, rows.Err()
}

// ListPeriods devuelve los meses con proyección de la empresa en orden cronológico.
func (r *ProjectionRepo) ListPeriods(ctx context.Context, companyID string) ([]entity.Period, error) {
	query := `
		SELECT DISTINCT ref_year, ref_month
		FROM sales_projections
		WHERE company_id = $1
		ORDER BY ref_year, ref_month`
	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list projection periods: %w", err)
	}
	defer rows.Close()
	var periods []entity.Period
	for rows.Next() {
		var p entity.Period
		if err := rows.Scan(&p.Year, &p.Month); err != nil {
			return nil, fmt.Errorf("scan projection period: %w", err)
		}
		periods = append(periods, p)
	}
	return periods, rows.Err()
}
