package planning

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jhoicas/Producao-api/internal/domain"
	"github.com/jhoicas/Producao-api/internal/domain/entity"
)

const periodLayout = "2006-01"

// PeriodSet conjunto de períodos seleccionados, indexado por clave "YYYY-MM".
type PeriodSet map[string]struct{}

// NewPeriodSet construye el conjunto a partir de períodos ya validados.
func NewPeriodSet(periods []entity.Period) PeriodSet {
	set := make(PeriodSet, len(periods))
	for _, p := range periods {
		set[p.Key()] = struct{}{}
	}
	return set
}

// Contains indica si el período está seleccionado.
func (s PeriodSet) Contains(p entity.Period) bool {
	_, ok := s[p.Key()]
	return ok
}

// ParsePeriod valida un token "YYYY-MM".
func ParsePeriod(token string) (entity.Period, error) {
	t, err := time.Parse(periodLayout, strings.TrimSpace(token))
	if err != nil {
		return entity.Period{}, fmt.Errorf("%w: %q", domain.ErrInvalidPeriod, token)
	}
	return entity.Period{Year: t.Year(), Month: int(t.Month())}, nil
}

// ParsePeriods normaliza la selección: ignora tokens vacíos, elimina duplicados
// y ordena cronológicamente. Un token mal formado invalida toda la selección.
func ParsePeriods(tokens []string) ([]entity.Period, error) {
	seen := make(map[string]struct{}, len(tokens))
	periods := make([]entity.Period, 0, len(tokens))
	for _, tok := range tokens {
		if strings.TrimSpace(tok) == "" {
			continue
		}
		p, err := ParsePeriod(tok)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[p.Key()]; dup {
			continue
		}
		seen[p.Key()] = struct{}{}
		periods = append(periods, p)
	}
	sort.Slice(periods, func(i, j int) bool {
		if periods[i].Year != periods[j].Year {
			return periods[i].Year < periods[j].Year
		}
		return periods[i].Month < periods[j].Month
	})
	return periods, nil
}

// PeriodKeys devuelve las claves "YYYY-MM" en el mismo orden.
func PeriodKeys(periods []entity.Period) []string {
	keys := make([]string, len(periods))
	for i, p := range periods {
		keys[i] = p.Key()
	}
	return keys
}
