package requirements

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/Producao-api/internal/application/dto"
	"github.com/jhoicas/Producao-api/internal/domain"
	"github.com/jhoicas/Producao-api/internal/domain/entity"
	"github.com/jhoicas/Producao-api/internal/domain/planning"
	"github.com/jhoicas/Producao-api/internal/domain/repository"
	"github.com/jhoicas/Producao-api/internal/infrastructure/metrics"
	"github.com/jhoicas/Producao-api/pkg/logger"
)

const (
	defaultLoadTimeout = 15 * time.Second
	displayPlaces      = 2
)

// MaterialRequirementsUseCase calcula la lista de compra de materias primas para los períodos
// seleccionados: demanda proyectada → ficha técnica → neteo contra stock, producto terminado y WIP.
// No guarda estado entre llamadas.
type MaterialRequirementsUseCase struct {
	projections repository.ProjectionRepository
	products    repository.ProductRepository
	boms        repository.BOMRepository
	materials   repository.MaterialRepository
	lots        repository.ProductionLotRepository
	loadTimeout time.Duration
	log         *logger.Logger
}

// NewMaterialRequirementsUseCase construye el caso de uso. loadTimeout <= 0 usa 15s.
func NewMaterialRequirementsUseCase(
	projections repository.ProjectionRepository,
	products repository.ProductRepository,
	boms repository.BOMRepository,
	materials repository.MaterialRepository,
	lots repository.ProductionLotRepository,
	loadTimeout time.Duration,
	log *logger.Logger,
) *MaterialRequirementsUseCase {
	if loadTimeout <= 0 {
		loadTimeout = defaultLoadTimeout
	}
	if log == nil {
		log = logger.Nop()
	}
	return &MaterialRequirementsUseCase{
		projections: projections,
		products:    products,
		boms:        boms,
		materials:   materials,
		lots:        lots,
		loadTimeout: loadTimeout,
		log:         log.Component("material_requirements"),
	}
}

// inputs entradas ya cargadas e indexadas del cálculo.
type inputs struct {
	demand   planning.Demand
	index    *planning.BOMIndex
	snapshot planning.Snapshot
}

// Compute ejecuta el cálculo para los períodos "YYYY-MM" seleccionados.
// Selección vacía o sin proyecciones devuelve una lista vacía; un fallo de carga falla todo el cálculo.
func (uc *MaterialRequirementsUseCase) Compute(
	ctx context.Context,
	companyID string,
	selectedPeriods []string,
) (*dto.MaterialRequirementsResponse, error) {
	start := time.Now()
	if companyID == "" {
		return nil, domain.ErrUnauthorized
	}

	periods, err := planning.ParsePeriods(selectedPeriods)
	if err != nil {
		metrics.ObserveComputation(metrics.StatusInvalid, 0, start)
		return nil, err
	}

	resp := &dto.MaterialRequirementsResponse{
		RunID:                uuid.NewString(),
		Periods:              planning.PeriodKeys(periods),
		Requirements:         []dto.MaterialRequirementDTO{},
		UnconfiguredProducts: []string{},
	}
	if len(periods) == 0 {
		metrics.ObserveComputation(metrics.StatusEmpty, 0, start)
		return resp, nil
	}

	in, err := uc.load(ctx, companyID, periods)
	if err != nil {
		metrics.ObserveComputation(metrics.StatusError, 0, start)
		uc.log.Error().Err(err).
			Str("run_id", resp.RunID).
			Str("company_id", companyID).
			Strs("periods", resp.Periods).
			Msg("carga de datos para necesidades de materiales")
		return nil, err
	}

	result := planning.ComputeRequirements(in.demand, in.index, in.snapshot)

	for _, mid := range in.snapshot.MissingMaterials() {
		uc.log.Warn().Str("run_id", resp.RunID).Str("material_id", mid).
			Msg("material de la ficha técnica no encontrado; stock tratado como cero")
	}
	if len(result.UnconfiguredProducts) > 0 {
		uc.log.Info().Str("run_id", resp.RunID).Strs("product_ids", result.UnconfiguredProducts).
			Msg("productos con demanda sin ficha técnica")
		resp.UnconfiguredProducts = result.UnconfiguredProducts
	}

	for _, r := range result.Requirements {
		resp.Requirements = append(resp.Requirements, toRequirementDTO(r))
	}
	resp.Total = len(resp.Requirements)

	status := metrics.StatusOK
	if resp.Total == 0 {
		status = metrics.StatusEmpty
	}
	metrics.ObserveComputation(status, resp.Total, start)

	uc.log.Info().
		Str("run_id", resp.RunID).
		Str("company_id", companyID).
		Strs("periods", resp.Periods).
		Int("products", len(in.demand)).
		Int("materials", resp.Total).
		Dur("elapsed", time.Since(start)).
		Msg("necesidades de materiales calculadas")

	return resp, nil
}

// load trae las cinco colecciones de entrada. Proyecciones y fichas técnicas van en secuencia
// (cada una acota la siguiente); materiales, productos y lotes se cargan en paralelo.
func (uc *MaterialRequirementsUseCase) load(ctx context.Context, companyID string, periods []entity.Period) (*inputs, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.loadTimeout)
	defer cancel()

	t := time.Now()
	projections, err := uc.projections.ListByPeriods(ctx, companyID, periods)
	if err != nil {
		return nil, fmt.Errorf("cargar proyecciones: %w", err)
	}
	metrics.ObserveLoad("projections", t)

	demand := planning.AggregateDemand(projections, planning.NewPeriodSet(periods))
	if len(demand) == 0 {
		return &inputs{demand: demand, index: planning.NewBOMIndex(nil), snapshot: planning.Snapshot{}}, nil
	}
	productIDs := demand.ProductIDs()

	t = time.Now()
	entries, err := uc.boms.ListByProducts(ctx, companyID, productIDs)
	if err != nil {
		return nil, fmt.Errorf("cargar fichas técnicas: %w", err)
	}
	metrics.ObserveLoad("bom", t)

	index := planning.NewBOMIndex(entries)
	configured := make([]string, 0, len(productIDs))
	for _, pid := range productIDs {
		if index.HasBOM(pid) {
			configured = append(configured, pid)
		}
	}
	if len(configured) == 0 {
		return &inputs{demand: demand, index: index, snapshot: planning.Snapshot{}}, nil
	}
	materialIDs := index.MaterialIDs(configured)

	var (
		materials []entity.Material
		products  []entity.Product
		lots      []entity.ProductionLot
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		t := time.Now()
		list, err := uc.materials.ListByIDs(gctx, companyID, materialIDs)
		if err != nil {
			return fmt.Errorf("cargar materiales: %w", err)
		}
		metrics.ObserveLoad("materials", t)
		materials = list
		return nil
	})
	g.Go(func() error {
		t := time.Now()
		list, err := uc.products.ListByIDs(gctx, companyID, configured)
		if err != nil {
			return fmt.Errorf("cargar productos: %w", err)
		}
		metrics.ObserveLoad("products", t)
		products = list
		return nil
	})
	g.Go(func() error {
		t := time.Now()
		list, err := uc.lots.ListOpenByProducts(gctx, companyID, configured)
		if err != nil {
			return fmt.Errorf("cargar lotes de producción: %w", err)
		}
		metrics.ObserveLoad("production_lots", t)
		lots = list
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &inputs{
		demand:   demand,
		index:    index,
		snapshot: planning.BuildSnapshot(index, configured, materials, products, lots),
	}, nil
}

// ListPeriods devuelve los períodos "YYYY-MM" con proyección cargada para la empresa.
func (uc *MaterialRequirementsUseCase) ListPeriods(ctx context.Context, companyID string) (*dto.PeriodListResponse, error) {
	if companyID == "" {
		return nil, domain.ErrUnauthorized
	}
	ctx, cancel := context.WithTimeout(ctx, uc.loadTimeout)
	defer cancel()

	periods, err := uc.projections.ListPeriods(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("listar períodos: %w", err)
	}
	return &dto.PeriodListResponse{Periods: planning.PeriodKeys(periods)}, nil
}

func toRequirementDTO(r planning.MaterialRequirement) dto.MaterialRequirementDTO {
	return dto.MaterialRequirementDTO{
		MaterialID:            r.MaterialID,
		Name:                  r.Name,
		Code:                  r.Code,
		Unit:                  r.Unit,
		GrossRequirement:      r.GrossRequirement.Round(displayPlaces),
		StockEstamparia:       r.StockEstamparia.Round(displayPlaces),
		StockTingimento:       r.StockTingimento.Round(displayPlaces),
		StockFabrica:          r.StockFabrica.Round(displayPlaces),
		FinishedProductCredit: r.FinishedProductCredit.Round(displayPlaces),
		WIPCredit:             r.WIPCredit.Round(displayPlaces),
		TotalAvailable:        r.TotalAvailable.Round(displayPlaces),
		QuantityToPurchase:    r.QuantityToPurchase.Round(displayPlaces),
	}
}
