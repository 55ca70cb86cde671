package planning

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Producao-api/internal/domain/entity"
)

// Demand demanda agregada por producto (solo valores positivos).
type Demand map[string]decimal.Decimal

// AggregateDemand suma las cantidades proyectadas por producto, considerando solo
// las proyecciones cuyo período está en selected.
func AggregateDemand(projections []entity.Projection, selected PeriodSet) Demand {
	demand := make(Demand)
	if len(selected) == 0 {
		return demand
	}
	for _, proj := range projections {
		if !selected.Contains(proj.Period) {
			continue
		}
		for _, item := range proj.Items {
			if item.ProductID == "" {
				continue
			}
			demand[item.ProductID] = demand[item.ProductID].Add(item.Quantity)
		}
	}
	for pid, qty := range demand {
		if !qty.IsPositive() {
			delete(demand, pid)
		}
	}
	return demand
}

// ProductIDs devuelve los productos con demanda, ordenados.
func (d Demand) ProductIDs() []string {
	ids := make([]string, 0, len(d))
	for pid := range d {
		ids = append(ids, pid)
	}
	sort.Strings(ids)
	return ids
}
