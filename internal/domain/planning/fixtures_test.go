package planning_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Producao-api/internal/domain/entity"
	"github.com/jhoicas/Producao-api/internal/domain/planning"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

var may2024 = entity.Period{Year: 2024, Month: 5}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// assertDec compara decimales por valor (200 == 200.00).
func assertDec(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), append([]interface{}{"esperado %s, obtenido %s", want, got.String()}, msgAndArgs...)...)
}

func projection(id string, p entity.Period, items ...entity.ProjectionItem) entity.Projection {
	return entity.Projection{ID: id, CompanyID: "c1", Period: p, Items: items}
}

func item(productID, qty string) entity.ProjectionItem {
	return entity.ProjectionItem{ProductID: productID, Quantity: dec(qty)}
}

func bom(productID, materialID, qty string) entity.BOMEntry {
	return entity.BOMEntry{ProductID: productID, MaterialID: materialID, QuantityPerUnit: dec(qty)}
}

// scenario agrupa las entradas del motor para armar casos de prueba.
type scenario struct {
	projections []entity.Projection
	periods     []entity.Period
	bom         []entity.BOMEntry
	materials   []entity.Material
	products    []entity.Product
	lots        []entity.ProductionLot
}

// scenarioA: P demanda 100 en 2024-05, P consume 2 de M, M sin stock.
func scenarioA() scenario {
	return scenario{
		projections: []entity.Projection{projection("pr1", may2024, item("P", "100"))},
		periods:     []entity.Period{may2024},
		bom:         []entity.BOMEntry{bom("P", "M", "2")},
		materials:   []entity.Material{{ID: "M", Name: "Malha", Code: "MAL-01", UnitMeasure: "m"}},
		products:    []entity.Product{{ID: "P", Name: "Camiseta"}},
	}
}

func (s scenario) run() planning.Result {
	demand := planning.AggregateDemand(s.projections, planning.NewPeriodSet(s.periods))
	index := planning.NewBOMIndex(s.bom)
	snap := planning.BuildSnapshot(index, demand.ProductIDs(), s.materials, s.products, s.lots)
	return planning.ComputeRequirements(demand, index, snap)
}

func find(t *testing.T, res planning.Result, materialID string) planning.MaterialRequirement {
	t.Helper()
	for _, r := range res.Requirements {
		if r.MaterialID == materialID {
			return r
		}
	}
	t.Fatalf("material %s no está en el resultado", materialID)
	return planning.MaterialRequirement{}
}
