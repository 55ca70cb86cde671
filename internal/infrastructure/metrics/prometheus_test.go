package metrics_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Producao-api/internal/infrastructure/metrics"
)

func TestObserveComputation_IncrementaContador(t *testing.T) {
	before := testutil.ToFloat64(metrics.ComputationsTotal.WithLabelValues(metrics.StatusInvalid))

	metrics.ObserveComputation(metrics.StatusInvalid, 0, time.Now())

	after := testutil.ToFloat64(metrics.ComputationsTotal.WithLabelValues(metrics.StatusInvalid))
	assert.Equal(t, before+1, after)
}

func TestObserveLoad_RegistraPorFuente(t *testing.T) {
	metrics.ObserveLoad("materials", time.Now())
	assert.Equal(t, 1, testutil.CollectAndCount(metrics.LoadDuration))
}
