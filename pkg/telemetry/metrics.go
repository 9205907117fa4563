package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures the Prometheus metrics.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "trackable").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for render duration.
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus metrics.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "trackable",
		// Merges are pure in-memory work: 10µs to ~100ms.
		Buckets:  prometheus.ExponentialBuckets(0.00001, 4, 9),
		Registry: prometheus.DefaultRegisterer,
	}
}

// Metrics holds the engine's Prometheus collectors.
type Metrics struct {
	merges         *prometheus.CounterVec
	properties     *prometheus.CounterVec
	resolutions    *prometheus.CounterVec
	errors         *prometheus.CounterVec
	renderDuration prometheus.Histogram
}

// NewMetrics registers the collectors and returns them. Registering twice
// on the same registry panics, as with promauto.
//
// Metrics collected:
//   - trackable_merges_total: namespaces merged, by namespace
//   - trackable_properties_total: properties turned into attributes, by namespace
//   - trackable_resolutions_total: target resolutions, by mode and result
//   - trackable_errors_total: failed renders, by error code
//   - trackable_render_duration_seconds: merge plus resolution time
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Metrics{
		merges: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "merges_total",
			Help:        "Total number of namespace property bags merged",
			ConstLabels: config.ConstLabels,
		}, []string{"namespace"}),

		properties: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "properties_total",
			Help:        "Total number of tracking properties converted to attributes",
			ConstLabels: config.ConstLabels,
		}, []string{"namespace"}),

		resolutions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "resolutions_total",
			Help:        "Total number of target resolutions",
			ConstLabels: config.ConstLabels,
		}, []string{"mode", "result"}),

		errors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "errors_total",
			Help:        "Total number of failed renders",
			ConstLabels: config.ConstLabels,
		}, []string{"code"}),

		renderDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "render_duration_seconds",
			Help:        "Time spent merging attributes and resolving the target",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),
	}
}

// RecordMerge records one namespace bag of n properties.
func (m *Metrics) RecordMerge(namespace string, n int) {
	if m == nil {
		return
	}
	m.merges.WithLabelValues(namespace).Inc()
	m.properties.WithLabelValues(namespace).Add(float64(n))
}

// RecordResolution records a target resolution. rendered is false when the
// result was empty.
func (m *Metrics) RecordResolution(mode string, rendered bool) {
	if m == nil {
		return
	}
	result := "rendered"
	if !rendered {
		result = "empty"
	}
	m.resolutions.WithLabelValues(mode, result).Inc()
}

// RecordError records a failed render.
func (m *Metrics) RecordError(code string) {
	if m == nil {
		return
	}
	if code == "" {
		code = "unknown"
	}
	m.errors.WithLabelValues(code).Inc()
}

// ObserveRender records the duration of one render.
func (m *Metrics) ObserveRender(d time.Duration) {
	if m == nil {
		return
	}
	m.renderDuration.Observe(d.Seconds())
}
