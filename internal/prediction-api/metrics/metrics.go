package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/radieske/nba-predictor-api/internal/prediction-api/mlclient"
)

// Valores do label outcome
const (
	OutcomeModel    = "model"
	OutcomeFallback = "fallback"
	OutcomeError    = "error"
)

// Metrics agrupa os coletores da prediction-api
type Metrics struct {
	Requests       *prometheus.CounterVec
	Fallbacks      *prometheus.CounterVec
	MLCallDuration prometheus.Histogram
	PublishErrors  *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "prediction_requests_total",
			Help: "predições servidas por origem (model, fallback, error)",
		}, []string{"outcome"}),
		Fallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "prediction_fallbacks_total",
			Help: "fallbacks por motivo",
		}, []string{"reason"}),
		MLCallDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "prediction_ml_call_duration_seconds",
			Help:    "latência da chamada ao serviço de ML",
			Buckets: prometheus.DefBuckets,
		}),
		PublishErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "prediction_events_publish_errors_total",
			Help: "falhas ao publicar prediction_made por sink",
		}, []string{"sink"}),
	}
	reg.MustRegister(m.Requests, m.Fallbacks, m.MLCallDuration, m.PublishErrors)
	return m
}

func (m *Metrics) ObserveOutcome(outcome string) { m.Requests.WithLabelValues(outcome).Inc() }

func (m *Metrics) ObserveFallback(reason mlclient.Reason) {
	m.Fallbacks.WithLabelValues(string(reason)).Inc()
}

func (m *Metrics) ObserveMLCall(d time.Duration) { m.MLCallDuration.Observe(d.Seconds()) }

func (m *Metrics) ObservePublishError(sink string, _ error) {
	m.PublishErrors.WithLabelValues(sink).Inc()
}
