package icacher

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

const (
	instrumentationName    = "github.com/rohankid1/icacher"
	instrumentationVersion = "0.3.1"
)

// Option configures a cacher at construction time.
type Option func(*config)

type config struct {
	capacity int
	logger   *zap.Logger
	metrics  bool
}

// WithCapacity reserves room for n distinct arguments up front. It is purely
// a sizing hint; the table still grows past n on demand.
func WithCapacity(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.capacity = n
		}
	}
}

// WithLogger enables debug-level hit/miss logging through the given logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithMetrics enables OpenTelemetry hit/miss counters, registered through
// the global meter provider.
func WithMetrics() Option {
	return func(c *config) {
		c.metrics = true
	}
}

func newConfig(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// observer carries the opt-in instrumentation of a cacher. A nil observer
// means instrumentation is disabled and every notification is a no-op.
type observer struct {
	logger *zap.Logger
	hits   metric.Int64Counter
	misses metric.Int64Counter
}

func (c config) observer() *observer {
	if c.logger == nil && !c.metrics {
		return nil
	}
	o := &observer{logger: c.logger}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	if c.metrics {
		meter := otel.Meter(instrumentationName, metric.WithInstrumentationVersion(instrumentationVersion))
		var err error
		o.hits, err = meter.Int64Counter(
			"cacher.hits",
			metric.WithDescription("Number of calls answered from the cache"),
		)
		if err != nil {
			otel.Handle(err)
		}
		o.misses, err = meter.Int64Counter(
			"cacher.misses",
			metric.WithDescription("Number of calls that invoked the wrapped function"),
		)
		if err != nil {
			otel.Handle(err)
		}
	}
	return o
}

func (o *observer) hit(arg any) {
	if o == nil {
		return
	}
	o.logger.Debug("cache hit", zap.Any("arg", arg))
	if o.hits != nil {
		o.hits.Add(context.Background(), 1)
	}
}

func (o *observer) miss(arg any) {
	if o == nil {
		return
	}
	o.logger.Debug("cache miss", zap.Any("arg", arg))
	if o.misses != nil {
		o.misses.Add(context.Background(), 1)
	}
}
