package planning

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Producao-api/internal/domain/entity"
)

// MaterialSnapshot fotografía de la oferta disponible para un material.
type MaterialSnapshot struct {
	Material              entity.Material // ceros si el material no existe en el almacén de datos
	Found                 bool
	FinishedProductCredit decimal.Decimal
	WIPCredit             decimal.Decimal
}

// TotalAvailable = estamparia + tingimento + fábrica + crédito producto terminado + crédito WIP.
func (s MaterialSnapshot) TotalAvailable() decimal.Decimal {
	return s.Material.TotalStock().Add(s.FinishedProductCredit).Add(s.WIPCredit)
}

// Snapshot oferta por material.
type Snapshot map[string]MaterialSnapshot

// Get devuelve la fotografía del material; un material ausente tiene stock y créditos en cero.
func (s Snapshot) Get(materialID string) MaterialSnapshot {
	if ms, ok := s[materialID]; ok {
		return ms
	}
	return MaterialSnapshot{Material: entity.Material{ID: materialID}}
}

// FinishedProductCredit convierte el stock de producto terminado en material equivalente:
// por cada línea (producto, material, qty) suma stock_terminado × qty al material.
func FinishedProductCredit(index *BOMIndex, products []entity.Product) map[string]decimal.Decimal {
	credit := make(map[string]decimal.Decimal)
	seen := make(map[string]struct{}, len(products))
	for _, p := range products {
		if _, dup := seen[p.ID]; dup {
			continue
		}
		seen[p.ID] = struct{}{}
		if p.FinishedStock.IsZero() {
			continue
		}
		for _, e := range index.Entries(p.ID) {
			credit[e.MaterialID] = credit[e.MaterialID].Add(p.FinishedStock.Mul(e.QuantityPerUnit))
		}
	}
	return credit
}

// WIPCredit convierte los lotes no finalizados en material equivalente: la cantidad planeada
// completa de cada lote abierto cuenta, sin importar su avance.
func WIPCredit(index *BOMIndex, lots []entity.ProductionLot) map[string]decimal.Decimal {
	planned := make(map[string]decimal.Decimal)
	seen := make(map[string]struct{}, len(lots))
	for _, lot := range lots {
		if lot.Finished || lot.ProductID == "" {
			continue
		}
		if lot.ID != "" {
			if _, dup := seen[lot.ID]; dup {
				continue
			}
			seen[lot.ID] = struct{}{}
		}
		planned[lot.ProductID] = planned[lot.ProductID].Add(lot.PlannedQuantity)
	}

	credit := make(map[string]decimal.Decimal)
	for pid, qty := range planned {
		if qty.IsZero() {
			continue
		}
		for _, e := range index.Entries(pid) {
			credit[e.MaterialID] = credit[e.MaterialID].Add(qty.Mul(e.QuantityPerUnit))
		}
	}
	return credit
}

// BuildSnapshot arma la oferta de cada material consumido por los productos indicados.
func BuildSnapshot(
	index *BOMIndex,
	productIDs []string,
	materials []entity.Material,
	products []entity.Product,
	lots []entity.ProductionLot,
) Snapshot {
	byID := make(map[string]entity.Material, len(materials))
	for _, m := range materials {
		byID[m.ID] = m
	}
	finished := FinishedProductCredit(index, products)
	wip := WIPCredit(index, lots)

	materialIDs := index.MaterialIDs(productIDs)
	snap := make(Snapshot, len(materialIDs))
	for _, mid := range materialIDs {
		m, found := byID[mid]
		if !found {
			m = entity.Material{ID: mid}
		}
		snap[mid] = MaterialSnapshot{
			Material:              m,
			Found:                 found,
			FinishedProductCredit: finished[mid],
			WIPCredit:             wip[mid],
		}
	}
	return snap
}

// MissingMaterials devuelve los materiales referenciados en la ficha técnica que no se encontraron.
func (s Snapshot) MissingMaterials() []string {
	var ids []string
	for mid, ms := range s {
		if !ms.Found {
			ids = append(ids, mid)
		}
	}
	sort.Strings(ids)
	return ids
}
