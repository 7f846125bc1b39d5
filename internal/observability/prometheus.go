package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"herdcore/pkg/domain"
)

// PrometheusRecorder counts validation outcomes and findings as Prometheus
// metrics.
type PrometheusRecorder struct {
	validations *prometheus.CounterVec
	findings    *prometheus.CounterVec
}

// NewPrometheusRecorder registers the validation counters with the supplied
// registerer. Pass prometheus.DefaultRegisterer for the process-global
// registry.
func NewPrometheusRecorder(reg prometheus.Registerer) *PrometheusRecorder {
	factory := promauto.With(reg)
	return &PrometheusRecorder{
		validations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "herdcore_validations_total",
			Help: "Validation passes by record kind and outcome.",
		}, []string{"kind", "outcome"}),
		findings: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "herdcore_findings_total",
			Help: "Individual validation findings by record kind and severity.",
		}, []string{"kind", "severity"}),
	}
}

// Record counts one validation pass.
func (r *PrometheusRecorder) Record(kind string, res domain.Result) {
	outcome := "invalid"
	if res.IsValid() {
		outcome = "valid"
	}
	r.validations.WithLabelValues(kind, outcome).Inc()
	r.findings.WithLabelValues(kind, "error").Add(float64(len(res.Errors)))
	r.findings.WithLabelValues(kind, "warning").Add(float64(len(res.Warnings)))
}
