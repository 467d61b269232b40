package podcache

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/pod-protocol/podcache/lru"
)

// StatsSource is anything that can report engine statistics: a bare
// *lru.Cache, an AccountCache, or an AnalyticsCache.
type StatsSource interface {
	Stats() lru.Stats
}

// StatsSourceFunc adapts a plain function to StatsSource, e.g. a
// Loader's CacheStats method.
type StatsSourceFunc func() lru.Stats

// Stats implements StatsSource.
func (f StatsSourceFunc) Stats() lru.Stats { return f() }

// StatsCollector exposes cache statistics as prometheus metrics, one
// series per registered cache, labeled by name.
//
// Collect reads each source's Stats without further locking; register
// sources whose access is already serialized (a Loader's CacheStats,
// or caches guarded by the caller's own mutex).
type StatsCollector struct {
	mu      sync.Mutex
	sources map[string]StatsSource

	hits    *prometheus.Desc
	misses  *prometheus.Desc
	hitRate *prometheus.Desc
	entries *prometheus.Desc
}

// NewStatsCollector creates an empty collector.
func NewStatsCollector() *StatsCollector {
	labels := []string{"cache"}
	return &StatsCollector{
		sources: make(map[string]StatsSource),
		hits: prometheus.NewDesc(
			"podcache_hits_total",
			"Cumulative cache hits.",
			labels, nil,
		),
		misses: prometheus.NewDesc(
			"podcache_misses_total",
			"Cumulative cache misses.",
			labels, nil,
		),
		hitRate: prometheus.NewDesc(
			"podcache_hit_rate",
			"Hits over total lookups since construction.",
			labels, nil,
		),
		entries: prometheus.NewDesc(
			"podcache_entries",
			"Live entries currently cached.",
			labels, nil,
		),
	}
}

// Register adds src under name, replacing any source with the same
// name.
func (c *StatsCollector) Register(name string, src StatsSource) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sources[name] = src
}

// Describe implements prometheus.Collector.
func (c *StatsCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.hits
	ch <- c.misses
	ch <- c.hitRate
	ch <- c.entries
}

// Collect implements prometheus.Collector.
func (c *StatsCollector) Collect(ch chan<- prometheus.Metric) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for name, src := range c.sources {
		s := src.Stats()
		ch <- prometheus.MustNewConstMetric(c.hits, prometheus.CounterValue, float64(s.Hits), name)
		ch <- prometheus.MustNewConstMetric(c.misses, prometheus.CounterValue, float64(s.Misses), name)
		ch <- prometheus.MustNewConstMetric(c.hitRate, prometheus.GaugeValue, s.HitRate, name)
		ch <- prometheus.MustNewConstMetric(c.entries, prometheus.GaugeValue, float64(s.Size), name)
	}
}
