// Package routemetrics exports router events as Prometheus metrics.
//
//	reg := prometheus.NewRegistry()
//	obs, err := routemetrics.New(routemetrics.WithRegisterer(reg))
//	r, err := router.New(router.Config[Screen]{..., Observer: obs})
//
// Metrics collected (with the default namespace):
//   - waypoint_navigations_total: navigations by route and result
//   - waypoint_backs_total: Back calls by result
//   - waypoint_releases_total: released entries by route and result
//   - waypoint_stack_depth: current stack depth
//   - waypoint_build_duration_seconds: time spent building components
package routemetrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/vitalvas/waypoint/alloc"
	"github.com/vitalvas/waypoint/router"
)

// Result label values.
const (
	ResultOK          = "ok"
	ResultReused      = "reused"
	ResultStackFull   = "stack_full"
	ResultNoRoute     = "no_route"
	ResultPathTooLong = "path_too_long"
	ResultOutOfMemory = "out_of_memory"
	ResultNoPrevious  = "no_previous"
	ResultError       = "error"
)

// Config configures the metrics observer.
type Config struct {
	// Namespace is the metrics namespace (default: "waypoint").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for build duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registerer receives the collectors.
	// Default: a fresh prometheus.Registry, see Observer.Gatherer.
	Registerer prometheus.Registerer
}

// Option configures the metrics observer.
type Option func(*Config)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) Option {
	return func(c *Config) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *Config) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) Option {
	return func(c *Config) {
		c.Buckets = buckets
	}
}

// WithRegisterer sets the Prometheus registerer.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(c *Config) {
		c.Registerer = reg
	}
}

func defaultConfig() Config {
	return Config{
		Namespace: "waypoint",
		Buckets:   prometheus.DefBuckets,
	}
}

// Observer implements router.Observer by updating Prometheus collectors.
type Observer struct {
	navigations   *prometheus.CounterVec
	backs         *prometheus.CounterVec
	releases      *prometheus.CounterVec
	depth         prometheus.Gauge
	buildDuration *prometheus.HistogramVec

	gatherer prometheus.Gatherer
}

// New creates the collectors and registers them.
func New(opts ...Option) (*Observer, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	o := &Observer{}

	if cfg.Registerer == nil {
		reg := prometheus.NewRegistry()
		cfg.Registerer = reg
		o.gatherer = reg
	} else if g, ok := cfg.Registerer.(prometheus.Gatherer); ok {
		o.gatherer = g
	}

	o.navigations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace:   cfg.Namespace,
		Subsystem:   cfg.Subsystem,
		Name:        "navigations_total",
		Help:        "Total number of Navigate calls by route and result",
		ConstLabels: cfg.ConstLabels,
	}, []string{"route", "result"})

	o.backs = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace:   cfg.Namespace,
		Subsystem:   cfg.Subsystem,
		Name:        "backs_total",
		Help:        "Total number of Back calls by result",
		ConstLabels: cfg.ConstLabels,
	}, []string{"result"})

	o.releases = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace:   cfg.Namespace,
		Subsystem:   cfg.Subsystem,
		Name:        "releases_total",
		Help:        "Total number of released stack entries by route and result",
		ConstLabels: cfg.ConstLabels,
	}, []string{"route", "result"})

	o.depth = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace:   cfg.Namespace,
		Subsystem:   cfg.Subsystem,
		Name:        "stack_depth",
		Help:        "Current navigation stack depth",
		ConstLabels: cfg.ConstLabels,
	})

	o.buildDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   cfg.Namespace,
		Subsystem:   cfg.Subsystem,
		Name:        "build_duration_seconds",
		Help:        "Component build duration in seconds",
		ConstLabels: cfg.ConstLabels,
		Buckets:     cfg.Buckets,
	}, []string{"route"})

	for _, c := range []prometheus.Collector{o.navigations, o.backs, o.releases, o.depth, o.buildDuration} {
		if err := cfg.Registerer.Register(c); err != nil {
			return nil, fmt.Errorf("routemetrics: register: %w", err)
		}
	}

	return o, nil
}

// Gatherer returns the registry the collectors were registered with, or nil
// when the configured Registerer cannot gather.
func (o *Observer) Gatherer() prometheus.Gatherer {
	return o.gatherer
}

// Observe implements router.Observer.
func (o *Observer) Observe(e router.Event) {
	o.depth.Set(float64(e.Depth))

	switch e.Op {
	case router.OpNavigate:
		result := navigationResult(e.Err)
		o.navigations.WithLabelValues(e.Route, result).Inc()

		if result == ResultOK || result == ResultError {
			o.buildDuration.WithLabelValues(e.Route).Observe(e.Duration.Seconds())
		}
	case router.OpReuse:
		o.navigations.WithLabelValues(e.Route, ResultReused).Inc()
	case router.OpBack:
		o.backs.WithLabelValues(backResult(e.Err)).Inc()
	case router.OpRelease:
		result := ResultOK
		if e.Err != nil {
			result = ResultError
		}
		o.releases.WithLabelValues(e.Route, result).Inc()
	}
}

func navigationResult(err error) string {
	switch {
	case err == nil:
		return ResultOK
	case errors.Is(err, router.ErrStackFull):
		return ResultStackFull
	case errors.Is(err, router.ErrNoRoute):
		return ResultNoRoute
	case errors.Is(err, router.ErrPathTooLong):
		return ResultPathTooLong
	case errors.Is(err, alloc.ErrOutOfMemory):
		return ResultOutOfMemory
	default:
		return ResultError
	}
}

func backResult(err error) string {
	switch {
	case err == nil:
		return ResultOK
	case errors.Is(err, router.ErrNoPrevious):
		return ResultNoPrevious
	default:
		return ResultError
	}
}
