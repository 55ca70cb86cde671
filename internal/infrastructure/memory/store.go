// Package memory implementa los puertos de lectura en memoria. Se usa en tests y en
// ejecuciones locales sin PostgreSQL.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/Producao-api/internal/domain/entity"
	"github.com/jhoicas/Producao-api/internal/domain/repository"
)

// Verify interface compliance
var (
	_ repository.ProjectionRepository    = (*ProjectionRepo)(nil)
	_ repository.ProductRepository       = (*ProductRepo)(nil)
	_ repository.BOMRepository           = (*BOMRepo)(nil)
	_ repository.MaterialRepository      = (*MaterialRepo)(nil)
	_ repository.ProductionLotRepository = (*ProductionLotRepo)(nil)
)

// Store guarda todas las entidades por empresa. Seguro para uso concurrente.
type Store struct {
	mu          sync.RWMutex
	projections []entity.Projection
	products    map[string]entity.Product
	materials   map[string]entity.Material
	bom         []bomRow
	lots        []entity.ProductionLot
}

type bomRow struct {
	companyID string
	entry     entity.BOMEntry
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		products:  make(map[string]entity.Product),
		materials: make(map[string]entity.Material),
	}
}

// AddProjection agrega una proyección (los ítems se copian).
func (s *Store) AddProjection(p entity.Projection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.Items = append([]entity.ProjectionItem(nil), p.Items...)
	s.projections = append(s.projections, p)
}

// AddProduct agrega o reemplaza un producto.
func (s *Store) AddProduct(p entity.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products[p.ID] = p
}

// AddMaterial agrega o reemplaza un material.
func (s *Store) AddMaterial(m entity.Material) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.materials[m.ID] = m
}

// AddBOMEntry agrega una línea de ficha técnica para la empresa.
func (s *Store) AddBOMEntry(companyID string, e entity.BOMEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bom = append(s.bom, bomRow{companyID: companyID, entry: e})
}

// AddLot agrega un lote de producción.
func (s *Store) AddLot(l entity.ProductionLot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lots = append(s.lots, l)
}

// ProjectionRepo vista de proyecciones del Store.
type ProjectionRepo struct{ s *Store }

// ProductRepo vista de productos del Store.
type ProductRepo struct{ s *Store }

// BOMRepo vista de fichas técnicas del Store.
type BOMRepo struct{ s *Store }

// MaterialRepo vista de materiales del Store.
type MaterialRepo struct{ s *Store }

// ProductionLotRepo vista de lotes del Store.
type ProductionLotRepo struct{ s *Store }

func (s *Store) Projections() *ProjectionRepo       { return &ProjectionRepo{s: s} }
func (s *Store) Products() *ProductRepo             { return &ProductRepo{s: s} }
func (s *Store) BOM() *BOMRepo                      { return &BOMRepo{s: s} }
func (s *Store) Materials() *MaterialRepo           { return &MaterialRepo{s: s} }
func (s *Store) ProductionLots() *ProductionLotRepo { return &ProductionLotRepo{s: s} }

func (r *ProjectionRepo) ListByPeriods(ctx context.Context, companyID string, periods []entity.Period) ([]entity.Projection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	want := make(map[entity.Period]struct{}, len(periods))
	for _, p := range periods {
		want[p] = struct{}{}
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var list []entity.Projection
	for _, p := range r.s.projections {
		if p.CompanyID != companyID {
			continue
		}
		if _, ok := want[p.Period]; ok {
			list = append(list, p)
		}
	}
	return list, nil
}

func (r *ProjectionRepo) ListPeriods(ctx context.Context, companyID string) ([]entity.Period, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	seen := make(map[entity.Period]struct{})
	var periods []entity.Period
	for _, p := range r.s.projections {
		if p.CompanyID != companyID {
			continue
		}
		if _, ok := seen[p.Period]; ok {
			continue
		}
		seen[p.Period] = struct{}{}
		periods = append(periods, p.Period)
	}
	sort.Slice(periods, func(i, j int) bool {
		return periods[i].Key() < periods[j].Key()
	})
	return periods, nil
}

func (r *ProductRepo) ListByIDs(ctx context.Context, companyID string, ids []string) ([]entity.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var list []entity.Product
	for _, id := range ids {
		if p, ok := r.s.products[id]; ok && p.CompanyID == companyID {
			list = append(list, p)
		}
	}
	return list, nil
}

func (r *MaterialRepo) ListByIDs(ctx context.Context, companyID string, ids []string) ([]entity.Material, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var list []entity.Material
	for _, id := range ids {
		if m, ok := r.s.materials[id]; ok && m.CompanyID == companyID {
			list = append(list, m)
		}
	}
	return list, nil
}

func (r *BOMRepo) ListByProducts(ctx context.Context, companyID string, productIDs []string) ([]entity.BOMEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	want := toSet(productIDs)
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var list []entity.BOMEntry
	for _, row := range r.s.bom {
		if row.companyID != companyID {
			continue
		}
		if _, ok := want[row.entry.ProductID]; ok {
			list = append(list, row.entry)
		}
	}
	return list, nil
}

func (r *ProductionLotRepo) ListOpenByProducts(ctx context.Context, companyID string, productIDs []string) ([]entity.ProductionLot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	want := toSet(productIDs)
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var list []entity.ProductionLot
	for _, l := range r.s.lots {
		if l.CompanyID != companyID || l.Finished {
			continue
		}
		if _, ok := want[l.ProductID]; ok {
			list = append(list, l)
		}
	}
	return list, nil
}

func toSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
