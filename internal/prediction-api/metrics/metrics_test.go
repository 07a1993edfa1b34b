package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/radieske/nba-predictor-api/internal/prediction-api/mlclient"
)

func TestMetrics_Observe(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveOutcome(OutcomeModel)
	m.ObserveOutcome(OutcomeFallback)
	m.ObserveOutcome(OutcomeFallback)
	m.ObserveFallback(mlclient.ReasonTimeout)
	m.ObserveMLCall(120 * time.Millisecond)
	m.ObservePublishError("kafka", errors.New("down"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Requests.WithLabelValues(OutcomeModel)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Requests.WithLabelValues(OutcomeFallback)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Fallbacks.WithLabelValues("timeout")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PublishErrors.WithLabelValues("kafka")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.MLCallDuration))
}

func TestNew_DoubleRegisterPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)
	assert.Panics(t, func() { New(reg) })
}
