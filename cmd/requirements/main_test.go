package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Producao-api/internal/application/dto"
)

func TestWriteTable_UnaFilaPorMaterial(t *testing.T) {
	resp := &dto.MaterialRequirementsResponse{
		Periods: []string{"2024-05"},
		Total:   2,
		Requirements: []dto.MaterialRequirementDTO{
			{Code: "MAL", Name: "Malha", Unit: "m", GrossRequirement: decimal.NewFromInt(200), StockFabrica: decimal.NewFromInt(50),
				TotalAvailable: decimal.NewFromInt(50), QuantityToPurchase: decimal.NewFromInt(150)},
			{Code: "TIN", Name: "Tinta", Unit: "kg", GrossRequirement: decimal.RequireFromString("1.5"),
				TotalAvailable: decimal.NewFromInt(3)},
		},
		UnconfiguredProducts: []string{"bone"},
	}

	var buf bytes.Buffer
	require.NoError(t, writeTable(&buf, resp))
	out := buf.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")

	assert.Contains(t, lines[0], "COMPRAR")
	assert.Contains(t, lines[1], "Malha")
	assert.Contains(t, lines[1], "150.00")
	assert.Contains(t, lines[2], "Tinta")
	assert.Contains(t, lines[2], "1.50")
	assert.Contains(t, out, "materiales: 2")
	assert.Contains(t, out, "productos sin ficha técnica: [bone]")
}

func TestWriteTable_SinFilas(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeTable(&buf, &dto.MaterialRequirementsResponse{Periods: []string{}}))
	assert.Contains(t, buf.String(), "materiales: 0")
	assert.NotContains(t, buf.String(), "sin ficha técnica")
}
