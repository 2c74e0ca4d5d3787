package ffind

import (
	"log/slog"

	"golang.org/x/time/rate"
)

type options struct {
	metricsCollector MetricsCollector
	logger           *Logger
	workers          int
	limiter          *rate.Limiter
}

// Option configures Search behavior beyond the declarative Config.
//
// Options cover operational concerns (logging, metrics, resource use)
// so they never influence which paths a search matches.
type Option func(*options)

// WithMetricsCollector configures a metrics collector for monitoring
// operations. Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &ffind.BasicMetricsCollector{}
//	paths, _ := ffind.Search(config, ffind.WithMetricsCollector(metrics))
//	stats := metrics.GetStats()
//	fmt.Printf("Searches: %d, Avg latency: %dns\n", stats.SearchCount, stats.SearchAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := ffind.NewJSONLogger(slog.LevelDebug)
//	paths, _ := ffind.Search(config, ffind.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithWorkers bounds the number of concurrent traversal units.
// Values <= 0 fall back to runtime.GOMAXPROCS(0).
func WithWorkers(workers int) Option {
	return func(o *options) {
		o.workers = workers
	}
}

// WithRateLimiter throttles directory reads during traversal.
// Pass nil to disable throttling.
//
// Useful when searching network filesystems or sharing IO with
// latency-sensitive workloads.
func WithRateLimiter(limiter *rate.Limiter) Option {
	return func(o *options) {
		o.limiter = limiter
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
