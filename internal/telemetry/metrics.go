package telemetry

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MCH-512/crewsphere-sub000/internal/ftl"
)

// Metrics holds the calculator's collectors on their own registry.
type Metrics struct {
	registry *prometheus.Registry

	Calculations      *prometheus.CounterVec
	WOCLInfringements prometheus.Counter
	InfeasibleDuties  prometheus.Counter

	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

// NewMetrics builds and registers every collector.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Calculations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ftl_calculations_total",
			Help: "Duty limit calculations by acclimatisation state and outcome.",
		}, []string{"acclimatisation", "outcome"}),
		WOCLInfringements: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ftl_wocl_infringements_total",
			Help: "Calculated duties that overlap the window of circadian low.",
		}),
		InfeasibleDuties: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ftl_infeasible_duties_total",
			Help: "Proposed arrivals that exceed the final FDP.",
		}),
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ftl_http_requests_total",
			Help: "HTTP requests by method, route and status.",
		}, []string{"method", "endpoint", "status"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "ftl_http_request_duration_seconds",
			Help:    "HTTP request latency by method, route and status.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "endpoint", "status"}),
	}
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.Calculations,
		m.WOCLInfringements,
		m.InfeasibleDuties,
		m.RequestsTotal,
		m.RequestDuration,
	)
	return m
}

// ObserveCalculation records one engine call. state is empty when the
// request never got far enough to name one.
func (m *Metrics) ObserveCalculation(state string, res ftl.DutyResult, err error) {
	if state == "" {
		state = "unknown"
	}
	if err != nil {
		m.Calculations.WithLabelValues(state, "invalid").Inc()
		return
	}
	m.Calculations.WithLabelValues(state, "ok").Inc()
	if res.WOCLInfringed {
		m.WOCLInfringements.Inc()
	}
	if res.Feasibility != nil && !res.Feasibility.IsFeasible {
		m.InfeasibleDuties.Inc()
	}
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
