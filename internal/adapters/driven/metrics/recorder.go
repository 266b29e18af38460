// Package metrics exposes evaluation counters through Prometheus.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/custodia-labs/hie/internal/core/domain"
	"github.com/custodia-labs/hie/internal/core/ports/driven"
)

// Ensure Recorder implements the interface.
var _ driven.EvaluationRecorder = (*Recorder)(nil)

const namespace = "hie"

// Recorder counts evaluations on its own registry so that several
// recorders can coexist in one process.
type Recorder struct {
	registry        *prometheus.Registry
	evaluations     *prometheus.CounterVec
	classifications *prometheus.CounterVec
	aboveLimit      *prometheus.CounterVec
}

// NewRecorder creates a Recorder with Go runtime and process collectors.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		evaluations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "evaluations_total",
			Help:      "Samples evaluated, by overall risk.",
		}, []string{"overall_risk"}),
		classifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "element_classifications_total",
			Help:      "Element classifications, by element and risk level.",
		}, []string{"element", "level"}),
		aboveLimit: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "elements_above_limit_total",
			Help:      "Elements found above their permissible limit in summarised evaluations.",
		}, []string{"element"}),
	}

	r.registry.MustRegister(
		r.evaluations,
		r.classifications,
		r.aboveLimit,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// RecordEvaluation counts one evaluation and its element classifications.
func (r *Recorder) RecordEvaluation(result *domain.EvaluationResult) {
	if result == nil {
		return
	}

	overall := result.OverallRisk
	if overall == "" {
		overall = domain.RiskNoData
	}
	r.evaluations.WithLabelValues(overall).Inc()

	for element, er := range result.Results {
		r.classifications.WithLabelValues(element, er.Level).Inc()
	}
}

// RecordSummary counts the limit exceedances of a summary pass.
func (r *Recorder) RecordSummary(summary domain.Summary) {
	for _, e := range summary.ElementsAboveLimit {
		r.aboveLimit.WithLabelValues(e.Element).Inc()
	}
}

// Registry returns the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
