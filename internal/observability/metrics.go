package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "econ_pulse"

// Metrics holds the Prometheus collectors for upstream fetches, the response
// cache, dashboard assembly and background jobs. A nil *Metrics is valid and
// records nothing.
type Metrics struct {
	UpstreamRequests *prometheus.CounterVec   // labels: source={fred,eia,hud,fiscal_data,anthropic}, outcome={success,error,empty}
	UpstreamDuration *prometheus.HistogramVec // labels: source
	CacheLookups     *prometheus.CounterVec   // labels: scope=<dashboard name> or briefing, result={hit,miss,error}
	AssemblyDuration *prometheus.HistogramVec // labels: dashboard
	AssemblyFailures *prometheus.CounterVec   // labels: dashboard
	JobRuns          *prometheus.CounterVec   // labels: job, outcome={success,error}
}

func newCollectors() *Metrics {
	return &Metrics{
		UpstreamRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_requests_total",
			Help:      "Upstream data source requests by source and outcome.",
		}, []string{"source", "outcome"}),
		UpstreamDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_request_duration_seconds",
			Help:      "Upstream request duration in seconds.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"source"}),
		CacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_lookups_total",
			Help:      "Response cache lookups by scope and result.",
		}, []string{"scope", "result"}),
		AssemblyDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "dashboard_assembly_duration_seconds",
			Help:      "Time to collect and assemble a dashboard, cache misses only.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20},
		}, []string{"dashboard"}),
		AssemblyFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dashboard_assembly_failures_total",
			Help:      "Dashboard assemblies that failed as a whole.",
		}, []string{"dashboard"}),
		JobRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "job_runs_total",
			Help:      "Scheduled job executions by job and outcome.",
		}, []string{"job", "outcome"}),
	}
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newCollectors()

	prometheus.MustRegister(
		m.UpstreamRequests,
		m.UpstreamDuration,
		m.CacheLookups,
		m.AssemblyDuration,
		m.AssemblyFailures,
		m.JobRuns,
	)

	return m
}

// NewMetricsForTesting creates unregistered Metrics so tests can build as
// many as they like.
func NewMetricsForTesting() *Metrics {
	return newCollectors()
}

func (m *Metrics) ObserveUpstream(source, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.UpstreamRequests.WithLabelValues(source, outcome).Inc()
	m.UpstreamDuration.WithLabelValues(source).Observe(elapsed.Seconds())
}

func (m *Metrics) CacheLookup(scope, result string) {
	if m == nil {
		return
	}
	m.CacheLookups.WithLabelValues(scope, result).Inc()
}

func (m *Metrics) ObserveAssembly(dashboard string, elapsed time.Duration, err error) {
	if m == nil {
		return
	}
	m.AssemblyDuration.WithLabelValues(dashboard).Observe(elapsed.Seconds())
	if err != nil {
		m.AssemblyFailures.WithLabelValues(dashboard).Inc()
	}
}

func (m *Metrics) JobRun(job string, err error) {
	if m == nil {
		return
	}
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	m.JobRuns.WithLabelValues(job, outcome).Inc()
}
