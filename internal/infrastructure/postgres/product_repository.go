package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Producao-api/internal/domain/entity"
	"github.com/jhoicas/Producao-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// ListByIDs obtiene los productos indicados de la empresa. finished_stock NULL se lee como 0.
func (r *ProductRepo) ListByIDs(ctx context.Context, companyID string, ids []string) ([]entity.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `
		SELECT id::text, company_id::text, reference, name, finished_stock, created_at, updated_at
		FROM products
		WHERE company_id = $1 AND id = ANY($2::uuid[])
		ORDER BY name, id`
	rows, err := r.q.Query(ctx, query, companyID, ids)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []entity.Product
	for rows.Next() {
		var (
			p         entity.Product
			reference *string
			finished  decimal.NullDecimal
		)
		if err := rows.Scan(&p.ID, &p.CompanyID, &reference, &p.Name, &finished, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		p.Reference = orEmpty(reference)
		p.FinishedStock = orZero(finished)
		list = append(list, p)
	}
	return list, rows.Err()
}
