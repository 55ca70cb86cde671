package memory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Producao-api/internal/domain/entity"
	"github.com/jhoicas/Producao-api/internal/infrastructure/memory"
)

func TestStore_FiltraPorEmpresa(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	may := entity.Period{Year: 2024, Month: 5}
	s.AddProjection(entity.Projection{ID: "a", CompanyID: "c1", Period: may})
	s.AddProjection(entity.Projection{ID: "b", CompanyID: "c2", Period: may})
	s.AddMaterial(entity.Material{ID: "m1", CompanyID: "c2"})
	s.AddBOMEntry("c2", entity.BOMEntry{ProductID: "p1", MaterialID: "m1", QuantityPerUnit: decimal.NewFromInt(1)})

	list, err := s.Projections().ListByPeriods(ctx, "c1", []entity.Period{may})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "a", list[0].ID)

	mats, err := s.Materials().ListByIDs(ctx, "c1", []string{"m1"})
	require.NoError(t, err)
	assert.Empty(t, mats)

	bom, err := s.BOM().ListByProducts(ctx, "c1", []string{"p1"})
	require.NoError(t, err)
	assert.Empty(t, bom)
}

func TestStore_ListOpenByProducts_ExcluyeFinalizados(t *testing.T) {
	s := memory.NewStore()
	s.AddLot(entity.ProductionLot{ID: "l1", CompanyID: "c1", ProductID: "p1"})
	s.AddLot(entity.ProductionLot{ID: "l2", CompanyID: "c1", ProductID: "p1", Finished: true})
	s.AddLot(entity.ProductionLot{ID: "l3", CompanyID: "c1", ProductID: "p2"})

	lots, err := s.ProductionLots().ListOpenByProducts(context.Background(), "c1", []string{"p1"})
	require.NoError(t, err)
	require.Len(t, lots, 1)
	assert.Equal(t, "l1", lots[0].ID)
}

func TestStore_ListPeriods_OrdenCronologico(t *testing.T) {
	s := memory.NewStore()
	s.AddProjection(entity.Projection{CompanyID: "c1", Period: entity.Period{Year: 2024, Month: 11}})
	s.AddProjection(entity.Projection{CompanyID: "c1", Period: entity.Period{Year: 2024, Month: 2}})
	s.AddProjection(entity.Projection{CompanyID: "c1", Period: entity.Period{Year: 2024, Month: 11}})

	periods, err := s.Projections().ListPeriods(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, []entity.Period{{Year: 2024, Month: 2}, {Year: 2024, Month: 11}}, periods)
}

func TestStore_ContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := memory.NewStore().Products().ListByIDs(ctx, "c1", []string{"p1"})
	assert.ErrorIs(t, err, context.Canceled)
}
