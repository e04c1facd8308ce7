package allocmadvise

import "log/slog"

type options struct {
	metricsCollector MetricsCollector
	logger           *Logger
	memoryLimit      int64
	allocRate        int64
	cleanup          bool
}

// Option configures an Allocator.
type Option func(*options)

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &allocmadvise.BasicMetricsCollector{}
//	a := allocmadvise.NewAllocator(allocmadvise.WithMetricsCollector(metrics))
//	// ... use a ...
//	stats := metrics.GetStats()
//	fmt.Printf("Allocations: %d, live: %d bytes\n", stats.AllocateCount, stats.LiveBytes)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := allocmadvise.NewJSONLogger(slog.LevelDebug)
//	a := allocmadvise.NewAllocator(allocmadvise.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
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

// WithMemoryLimit caps the bytes held by live Memory handles of the Allocator.
// Allocate fails with ErrMemoryLimitExceeded once the cap would be crossed;
// AllocateContext waits for releases instead. Zero means unlimited.
func WithMemoryLimit(bytes int64) Option {
	return func(o *options) {
		o.memoryLimit = bytes
	}
}

// WithAllocationRate caps how many bytes the Allocator hands out per second.
// Allocate fails with ErrRateLimitExceeded when the budget is spent;
// AllocateContext waits instead. Zero means unlimited.
func WithAllocationRate(bytesPerSec int64) Option {
	return func(o *options) {
		o.allocRate = bytesPerSec
	}
}

// WithCleanup releases a Memory that becomes unreachable without having been
// closed. Explicit release still works and cancels the cleanup.
//
// The handle must stay reachable while views or pointers obtained from it are
// in use; hold it until Close or use runtime.KeepAlive.
func WithCleanup() Option {
	return func(o *options) {
		o.cleanup = true
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
