// Package metrics provides Prometheus metrics for the tipoff slate service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Default metrics configuration constants.
const (
	defaultRefreshInterval = 10 * time.Second
)

// Manager manages all Prometheus metrics for the tipoff service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	refreshInterval  time.Duration
	customLabels     map[string]string
	metricPrefix     string
	registry         prometheus.Registerer

	// Upload Metrics - CSV ingestion by kind (players, teams, injuries, schedule)
	uploadsAccepted *prometheus.CounterVec
	uploadRows      *prometheus.CounterVec
	uploadWarnings  *prometheus.CounterVec
	uploadErrors    *prometheus.CounterVec

	// Snapshot Metrics - Persistence of the working day snapshot
	snapshotPersisted   prometheus.Counter
	snapshotSectionRows *prometheus.GaugeVec
	snapshotLastUnix    prometheus.Gauge

	// Slate Metrics - What really matters for a watchability ranking
	slateBuilds        prometheus.Counter
	slateBuildDuration prometheus.Histogram
	slateGamesRanked   prometheus.Gauge
	slateGamesSkipped  prometheus.Gauge
	slateTeamErrors    prometheus.Gauge
	slateBuildWarnings prometheus.Gauge
	slateMustWatch     prometheus.Gauge
	slateTopScore      prometheus.Gauge

	// HTTP Performance Metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Enhanced Error Metrics - Detailed error tracking
	errorRateByComponent *prometheus.CounterVec
	errorRateByType      *prometheus.CounterVec
	errorRateByEndpoint  *prometheus.CounterVec
	errorLatency         *prometheus.HistogramVec

	// System Performance Metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
	systemGCPauseTime    prometheus.Histogram
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "tipoff",
		subsystem:        "slate",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		refreshInterval:  defaultRefreshInterval,
		customLabels:     make(map[string]string),
		metricPrefix:     "",
		registry:         prometheus.DefaultRegisterer,
	}

	// Apply all options
	for _, opt := range opts {
		opt(m)
	}

	// Initialize metrics
	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() { //nolint:funlen // long function required for comprehensive metrics initialization
	// Ensure metrics are registered on the configured registry (custom by default)
	auto := promauto.With(m.registry)

	// Upload Metrics - Ingestion volume and quality per upload kind
	m.uploadsAccepted = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "uploads_accepted_total",
			Help:      "Total number of CSV uploads accepted by kind",
		},
		[]string{"kind"},
	)

	m.uploadRows = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "upload_rows_total",
			Help:      "Total number of CSV rows parsed by kind",
		},
		[]string{"kind"},
	)

	m.uploadWarnings = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "upload_warnings_total",
			Help:      "Total number of parse warnings by kind (indicates data quality)",
		},
		[]string{"kind"},
	)

	m.uploadErrors = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "upload_errors_total",
			Help:      "Total number of rejected uploads by kind",
		},
		[]string{"kind"},
	)

	// Snapshot Metrics - Persistence of the working day snapshot
	m.snapshotPersisted = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "snapshot_persisted_total",
		Help:      "Total number of snapshot documents written to disk",
	})

	m.snapshotSectionRows = auto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "snapshot_section_rows",
			Help:      "Rows currently held per snapshot section",
		},
		[]string{"section"},
	)

	m.snapshotLastUnix = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "snapshot_last_unix",
		Help:      "Unix timestamp of the last snapshot persist",
	})

	// Slate Metrics - Core business output
	m.slateBuilds = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "builds_total",
		Help:      "Total number of slate builds",
	})

	m.slateBuildDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "build_duration_milliseconds",
		Help:      "Histogram of slate build duration in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.slateGamesRanked = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "games_ranked",
		Help:      "Number of games ranked in the latest slate build",
	})

	m.slateGamesSkipped = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "games_skipped",
		Help:      "Number of games skipped in the latest slate build",
	})

	m.slateTeamErrors = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "team_errors",
		Help:      "Number of team data errors in the latest slate build",
	})

	m.slateBuildWarnings = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "build_warnings",
		Help:      "Number of warnings raised by the latest slate build",
	})

	m.slateMustWatch = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "must_watch_games",
		Help:      "Number of must-watch games in the latest slate build",
	})

	m.slateTopScore = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "top_score",
		Help:      "Watchability score of the top ranked game",
	})

	// HTTP Performance Metrics - User experience indicators
	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint and method",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds (user experience)",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	// Enhanced Error Metrics - Detailed error tracking
	m.errorRateByComponent = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "errors_by_component_total",
			Help:      "Total number of errors by component",
		},
		[]string{"component", "error_type"},
	)

	m.errorRateByType = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "errors_by_type_total",
			Help:      "Total number of errors by type",
		},
		[]string{"error_type", "severity"},
	)

	m.errorRateByEndpoint = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "errors_by_endpoint_total",
			Help:      "Total number of errors by endpoint",
		},
		[]string{"endpoint", "method", "error_type"},
	)

	m.errorLatency = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "error_latency_milliseconds",
			Help:      "Latency of operations that resulted in errors",
			Buckets:   m.histogramBuckets,
		},
		[]string{"component", "error_type"},
	)

	// System Performance Metrics
	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_memory_usage_bytes",
		Help:      "System memory usage in bytes",
	})

	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_goroutine_count",
		Help:      "Number of goroutines",
	})

	m.systemGCPauseTime = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_gc_pause_time_milliseconds",
		Help:      "GC pause time in milliseconds",
		Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 25, 50, 100, 250, 500, 1000},
	})
}

// Upload Metrics Functions.

// RecordUploadAccepted increments the accepted uploads counter for a kind.
func RecordUploadAccepted(kind string) {
	globalManager.uploadsAccepted.WithLabelValues(kind).Inc()
}

// RecordUploadRows adds the parsed row count for a kind.
func RecordUploadRows(kind string, rows int) {
	globalManager.uploadRows.WithLabelValues(kind).Add(float64(rows))
}

// RecordUploadWarnings adds the parse warning count for a kind.
func RecordUploadWarnings(kind string, count int) {
	globalManager.uploadWarnings.WithLabelValues(kind).Add(float64(count))
}

// RecordUploadError increments the rejected uploads counter for a kind.
func RecordUploadError(kind string) {
	globalManager.uploadErrors.WithLabelValues(kind).Inc()
}

// Snapshot Metrics Functions.

// RecordSnapshotPersisted increments the persisted snapshot counter and
// stamps the persist time.
func RecordSnapshotPersisted() {
	globalManager.snapshotPersisted.Inc()
	globalManager.snapshotLastUnix.Set(float64(time.Now().Unix()))
}

// UpdateSnapshotSizes sets the per-section row gauges.
func UpdateSnapshotSizes(players, teams, injuries, games int) {
	globalManager.snapshotSectionRows.WithLabelValues("players").Set(float64(players))
	globalManager.snapshotSectionRows.WithLabelValues("teams").Set(float64(teams))
	globalManager.snapshotSectionRows.WithLabelValues("injuries").Set(float64(injuries))
	globalManager.snapshotSectionRows.WithLabelValues("schedule").Set(float64(games))
}

// Slate Metrics Functions.

// RecordSlateBuild increments the slate builds counter.
func RecordSlateBuild() {
	globalManager.slateBuilds.Inc()
}

// RecordSlateBuildDuration records slate build duration in milliseconds.
func RecordSlateBuildDuration(latencyMs float64) {
	globalManager.slateBuildDuration.Observe(latencyMs)
}

// UpdateSlateGamesRanked sets the ranked game count for the latest build.
func UpdateSlateGamesRanked(count int) {
	globalManager.slateGamesRanked.Set(float64(count))
}

// UpdateSlateGamesSkipped sets the skipped game count for the latest build.
func UpdateSlateGamesSkipped(count int) {
	globalManager.slateGamesSkipped.Set(float64(count))
}

// UpdateSlateTeamErrors sets the team error count for the latest build.
func UpdateSlateTeamErrors(count int) {
	globalManager.slateTeamErrors.Set(float64(count))
}

// UpdateSlateBuildWarnings sets the warning count for the latest build.
func UpdateSlateBuildWarnings(count int) {
	globalManager.slateBuildWarnings.Set(float64(count))
}

// UpdateSlateMustWatch sets the must-watch game count for the latest build.
func UpdateSlateMustWatch(count int) {
	globalManager.slateMustWatch.Set(float64(count))
}

// UpdateSlateTopScore sets the top ranked game's score.
func UpdateSlateTopScore(score float64) {
	globalManager.slateTopScore.Set(score)
}

// HTTP Metrics Functions.

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// Enhanced Error Metrics Functions.

// RecordErrorByComponent records an error with component and type labels.
func RecordErrorByComponent(component, errorType string) {
	globalManager.errorRateByComponent.WithLabelValues(component, errorType).Inc()
}

// RecordErrorByType records an error with type and severity labels.
func RecordErrorByType(errorType, severity string) {
	globalManager.errorRateByType.WithLabelValues(errorType, severity).Inc()
}

// RecordErrorByEndpoint records an error with endpoint, method, and error type labels.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	globalManager.errorRateByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
}

// RecordErrorLatency records the latency of an operation that resulted in an error.
func RecordErrorLatency(component, errorType string, latencyMs float64) {
	globalManager.errorLatency.WithLabelValues(component, errorType).Observe(latencyMs)
}

// System Performance Metrics Functions.

// UpdateSystemMemoryUsage sets the system memory usage in bytes.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the number of goroutines.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// RecordSystemGCPauseTime records GC pause time in milliseconds.
func RecordSystemGCPauseTime(pauseMs float64) {
	globalManager.systemGCPauseTime.Observe(pauseMs)
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
