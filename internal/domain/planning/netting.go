package planning

import (
	"sort"

	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// MaterialRequirement necesidad neta de un material. Se calcula en cada consulta y no se persiste.
type MaterialRequirement struct {
	MaterialID            string
	Name                  string
	Code                  string
	Unit                  string
	GrossRequirement      decimal.Decimal
	StockEstamparia       decimal.Decimal
	StockTingimento       decimal.Decimal
	StockFabrica          decimal.Decimal
	FinishedProductCredit decimal.Decimal
	WIPCredit             decimal.Decimal
	TotalAvailable        decimal.Decimal
	QuantityToPurchase    decimal.Decimal
}

// Result salida del cálculo de necesidades.
type Result struct {
	Requirements []MaterialRequirement
	// UnconfiguredProducts productos con demanda pero sin ficha técnica; no aportan necesidad.
	UnconfiguredProducts []string
}

// GrossRequirements explota la demanda por la ficha técnica: por cada línea suma demanda × qty_por_unidad.
// Devuelve también los productos con demanda sin ficha técnica.
func GrossRequirements(demand Demand, index *BOMIndex) (map[string]decimal.Decimal, []string) {
	gross := make(map[string]decimal.Decimal)
	var unconfigured []string
	for _, pid := range demand.ProductIDs() {
		entries := index.Entries(pid)
		if len(entries) == 0 {
			unconfigured = append(unconfigured, pid)
			continue
		}
		qty := demand[pid]
		for _, e := range entries {
			gross[e.MaterialID] = gross[e.MaterialID].Add(qty.Mul(e.QuantityPerUnit))
		}
	}
	return gross, unconfigured
}

// NetQuantity = max(0, bruto − disponible). La sobreoferta no se reporta como compra negativa.
func NetQuantity(gross, available decimal.Decimal) decimal.Decimal {
	net := gross.Sub(available)
	if net.IsNegative() {
		return decimal.Zero
	}
	return net
}

// ComputeRequirements cruza la necesidad bruta con la oferta y devuelve una fila por material
// consumido por la demanda, ordenada por nombre (colación portuguesa), código e ID.
func ComputeRequirements(demand Demand, index *BOMIndex, snapshot Snapshot) Result {
	gross, unconfigured := GrossRequirements(demand, index)
	materialIDs := index.MaterialIDs(demand.ProductIDs())

	reqs := make([]MaterialRequirement, 0, len(materialIDs))
	for _, mid := range materialIDs {
		ms := snapshot.Get(mid)
		available := ms.TotalAvailable()
		reqs = append(reqs, MaterialRequirement{
			MaterialID:            mid,
			Name:                  ms.Material.Name,
			Code:                  ms.Material.Code,
			Unit:                  ms.Material.UnitMeasure,
			GrossRequirement:      gross[mid],
			StockEstamparia:       ms.Material.StockEstamparia,
			StockTingimento:       ms.Material.StockTingimento,
			StockFabrica:          ms.Material.StockFabrica,
			FinishedProductCredit: ms.FinishedProductCredit,
			WIPCredit:             ms.WIPCredit,
			TotalAvailable:        available,
			QuantityToPurchase:    NetQuantity(gross[mid], available),
		})
	}
	sortRequirements(reqs)

	return Result{Requirements: reqs, UnconfiguredProducts: unconfigured}
}

func sortRequirements(reqs []MaterialRequirement) {
	// collate.Collator no es seguro para uso concurrente: uno por llamada.
	col := collate.New(language.BrazilianPortuguese)
	sort.SliceStable(reqs, func(i, j int) bool {
		a, b := reqs[i], reqs[j]
		if c := col.CompareString(a.Name, b.Name); c != 0 {
			return c < 0
		}
		if a.Code != b.Code {
			return a.Code < b.Code
		}
		return a.MaterialID < b.MaterialID
	})
}
