// Package prommetrics exports allocmadvise metrics to Prometheus.
package prommetrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hupe1980/allocmadvise"
)

// Collector implements allocmadvise.MetricsCollector on top of Prometheus
// counters, a live-bytes gauge and latency histograms.
type Collector struct {
	latency   *prometheus.HistogramVec
	allocs    *prometheus.CounterVec
	bytes     *prometheus.CounterVec
	liveBytes prometheus.Gauge
}

var _ allocmadvise.MetricsCollector = (*Collector)(nil)

// NewCollector creates a Collector whose metrics are prefixed with namespace.
// The metrics are not registered; pass Collectors to a registry.
func NewCollector(namespace string) *Collector {
	return &Collector{
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_latency_seconds",
			Help:      "Latency of allocate and release operations",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
		}, []string{"op", "status"}),
		allocs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "allocations_total",
			Help:      "Total allocation attempts",
			// flags is one of "none", "sequential", "huge_pages", "huge_pages|sequential"
		}, []string{"status", "flags"}),
		bytes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bytes_total",
			Help:      "Total bytes allocated and released",
		}, []string{"op"}),
		liveBytes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "live_bytes",
			Help:      "Bytes held by allocations that were not released yet",
		}),
	}
}

// Collectors returns all prometheus metrics as collectors for registration.
func (c *Collector) Collectors() []prometheus.Collector {
	if c == nil {
		return nil
	}
	return []prometheus.Collector{
		c.latency,
		c.allocs,
		c.bytes,
		c.liveBytes,
	}
}

// MustRegister registers all metrics with reg and panics on conflicts.
func (c *Collector) MustRegister(reg prometheus.Registerer) {
	reg.MustRegister(c.Collectors()...)
}

// RecordAllocate implements allocmadvise.MetricsCollector.
func (c *Collector) RecordAllocate(numBytes int, flags allocmadvise.Flags, d time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	c.latency.WithLabelValues("allocate", status).Observe(d.Seconds())
	c.allocs.WithLabelValues(status, flags.String()).Inc()
	if err != nil {
		return
	}
	c.bytes.WithLabelValues("allocate").Add(float64(numBytes))
	c.liveBytes.Add(float64(numBytes))
}

// RecordRelease implements allocmadvise.MetricsCollector.
func (c *Collector) RecordRelease(numBytes int, _ allocmadvise.Flags, d time.Duration) {
	c.latency.WithLabelValues("release", "success").Observe(d.Seconds())
	c.bytes.WithLabelValues("release").Add(float64(numBytes))
	c.liveBytes.Sub(float64(numBytes))
}
