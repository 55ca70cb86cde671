package postgres

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Producao-api/internal/domain/entity"
)

// Accesores con valor por defecto: los NULL de la base se convierten aquí y no llegan al cálculo.

// orZero devuelve 0 para NUMERIC NULL.
func orZero(d decimal.NullDecimal) decimal.Decimal {
	if !d.Valid {
		return decimal.Zero
	}
	return d.Decimal
}

// orEmpty devuelve "" para TEXT NULL.
func orEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// periodKeys codifica los períodos como año*100+mes para filtrar con = ANY($n).
func periodKeys(periods []entity.Period) []int32 {
	keys := make([]int32, len(periods))
	for i, p := range periods {
		keys[i] = int32(p.Year*100 + p.Month)
	}
	return keys
}
