package planning

import (
	"sort"

	"github.com/jhoicas/Producao-api/internal/domain/entity"
)

// BOMIndex índice producto → líneas de la ficha técnica. Solo lectura una vez construido.
type BOMIndex struct {
	byProduct map[string][]entity.BOMEntry
}

// NewBOMIndex indexa las líneas por producto. Líneas sin producto o sin material se descartan.
func NewBOMIndex(entries []entity.BOMEntry) *BOMIndex {
	idx := &BOMIndex{byProduct: make(map[string][]entity.BOMEntry)}
	for _, e := range entries {
		if e.ProductID == "" || e.MaterialID == "" {
			continue
		}
		idx.byProduct[e.ProductID] = append(idx.byProduct[e.ProductID], e)
	}
	return idx
}

// Entries devuelve las líneas del producto (nil si no tiene ficha técnica).
func (i *BOMIndex) Entries(productID string) []entity.BOMEntry {
	return i.byProduct[productID]
}

// HasBOM indica si el producto tiene al menos una línea.
func (i *BOMIndex) HasBOM(productID string) bool {
	return len(i.byProduct[productID]) > 0
}

// MaterialIDs devuelve, ordenados y sin repetir, los materiales consumidos por los productos indicados.
func (i *BOMIndex) MaterialIDs(productIDs []string) []string {
	seen := make(map[string]struct{})
	var ids []string
	for _, pid := range productIDs {
		for _, e := range i.byProduct[pid] {
			if _, ok := seen[e.MaterialID]; ok {
				continue
			}
			seen[e.MaterialID] = struct{}{}
			ids = append(ids, e.MaterialID)
		}
	}
	sort.Strings(ids)
	return ids
}
