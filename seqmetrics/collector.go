package seqmetrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/liveseq/seq"
)

// Result label values of the requests counter.
const (
	ResultHit  = "hit"
	ResultMiss = "miss"
)

// CacheCollector counts cache view events.
type CacheCollector struct {
	requests      *prometheus.CounterVec
	invalidations prometheus.Counter
	writes        prometheus.Counter
}

var (
	_ seq.CacheObserver    = (*CacheCollector)(nil)
	_ prometheus.Collector = (*CacheCollector)(nil)
)

// NewCacheCollector builds an unregistered collector. namespace prefixes
// every metric name and may be empty.
func NewCacheCollector(namespace string) *CacheCollector {
	return &CacheCollector{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cache_requests_total",
				Help:      "Total number of cache view reads by result",
			},
			[]string{"result"},
		),
		invalidations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_invalidations_total",
			Help:      "Total number of cache entries dropped by the invalidator",
		}),
		writes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_writes_total",
			Help:      "Total number of writes through a cache view",
		}),
	}
}

// CacheHit records a read served from the cache.
func (c *CacheCollector) CacheHit(int) { c.requests.WithLabelValues(ResultHit).Inc() }

// CacheMiss records a read that went to the parent view.
func (c *CacheCollector) CacheMiss(int) { c.requests.WithLabelValues(ResultMiss).Inc() }

// CacheInvalidated records an entry rejected by the invalidator.
func (c *CacheCollector) CacheInvalidated(int) { c.invalidations.Inc() }

// CacheWrite records a write-through.
func (c *CacheCollector) CacheWrite(int) { c.writes.Inc() }

// Describe implements prometheus.Collector.
func (c *CacheCollector) Describe(ch chan<- *prometheus.Desc) {
	c.requests.Describe(ch)
	c.invalidations.Describe(ch)
	c.writes.Describe(ch)
}

// Collect implements prometheus.Collector.
func (c *CacheCollector) Collect(ch chan<- prometheus.Metric) {
	c.requests.Collect(ch)
	c.invalidations.Collect(ch)
	c.writes.Collect(ch)
}

// Requests returns the request counter for result (ResultHit or ResultMiss).
func (c *CacheCollector) Requests(result string) prometheus.Counter {
	return c.requests.WithLabelValues(result)
}

// Invalidations returns the invalidation counter.
func (c *CacheCollector) Invalidations() prometheus.Counter { return c.invalidations }

// Writes returns the write-through counter.
func (c *CacheCollector) Writes() prometheus.Counter { return c.writes }
