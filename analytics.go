package podcache

import (
	"fmt"
	"time"

	"github.com/pod-protocol/podcache/lru"
	"github.com/pod-protocol/podcache/types"
)

// DefaultAnalyticsTTL is how long analytics aggregates stay fresh.
// Aggregates change slowly, so they tolerate more staleness than live
// account state.
const DefaultAnalyticsTTL = 5 * time.Minute

// analyticsCapacity bounds each report-kind cache. The set of report
// kinds in use is small; parameterized reports (per-limit, per-agent)
// are the only source of key growth.
const analyticsCapacity = 64

// Key builders. Pure, deterministic, one key per distinct request.

// AgentAnalyticsKey is the cache key for the protocol-wide agent report.
func AgentAnalyticsKey() string { return "analytics:agents" }

// MessageAnalyticsKey is the cache key for the message report bounded
// to the most recent limit messages.
func MessageAnalyticsKey(limit int) string {
	return fmt.Sprintf("analytics:messages:%d", limit)
}

// ChannelAnalyticsKey is the cache key for the channel report bounded
// to the most recent limit channels.
func ChannelAnalyticsKey(limit int) string {
	return fmt.Sprintf("analytics:channels:%d", limit)
}

// AgentMetricsKey is the cache key for one agent's activity breakdown.
func AgentMetricsKey(agentID string) string {
	return "analytics:agent:" + agentID
}

// AnalyticsCache caches expensive-to-recompute analytics aggregates.
// Each report kind gets its own typed engine instance so values stay
// statically typed; all instances share one capacity and TTL.
//
// Like the underlying engine it is not safe for concurrent use
// without external locking.
type AnalyticsCache struct {
	ttl          time.Duration
	agents       *lru.Cache[string, types.AgentAnalytics]
	messages     *lru.Cache[string, types.MessageAnalytics]
	channels     *lru.Cache[string, types.ChannelAnalytics]
	agentMetrics *lru.Cache[string, types.AgentMetrics]
}

// AnalyticsOption configures an AnalyticsCache.
type AnalyticsOption func(*analyticsConfig)

type analyticsConfig struct {
	ttl      time.Duration
	capacity int
}

// WithAnalyticsTTL overrides the default 5 minute report TTL.
func WithAnalyticsTTL(d time.Duration) AnalyticsOption {
	return func(c *analyticsConfig) {
		if d > 0 {
			c.ttl = d
		}
	}
}

// WithAnalyticsConfig applies a Config preset's size and TTL.
func WithAnalyticsConfig(cfg Config) AnalyticsOption {
	return func(c *analyticsConfig) {
		if cfg.MaxSize > 0 {
			c.capacity = cfg.MaxSize
		}
		if cfg.DefaultTTL > 0 {
			c.ttl = cfg.DefaultTTL
		}
	}
}

// NewAnalyticsCache creates an analytics cache with the default TTL
// unless overridden.
func NewAnalyticsCache(opts ...AnalyticsOption) *AnalyticsCache {
	cfg := analyticsConfig{ttl: DefaultAnalyticsTTL, capacity: analyticsCapacity}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &AnalyticsCache{
		ttl:          cfg.ttl,
		agents:       lru.New[string, types.AgentAnalytics](cfg.capacity, lru.WithTTL[string, types.AgentAnalytics](cfg.ttl)),
		messages:     lru.New[string, types.MessageAnalytics](cfg.capacity, lru.WithTTL[string, types.MessageAnalytics](cfg.ttl)),
		channels:     lru.New[string, types.ChannelAnalytics](cfg.capacity, lru.WithTTL[string, types.ChannelAnalytics](cfg.ttl)),
		agentMetrics: lru.New[string, types.AgentMetrics](cfg.capacity, lru.WithTTL[string, types.AgentMetrics](cfg.ttl)),
	}
}

// SetAgentAnalytics stores the protocol-wide agent report.
func (c *AnalyticsCache) SetAgentAnalytics(v types.AgentAnalytics) {
	c.agents.Set(AgentAnalyticsKey(), v)
}

// GetAgentAnalytics returns the cached agent report, if fresh.
func (c *AnalyticsCache) GetAgentAnalytics() (types.AgentAnalytics, bool) {
	return c.agents.Get(AgentAnalyticsKey())
}

// HasAgentAnalytics peeks for a fresh agent report without disturbing
// recency or counters.
func (c *AnalyticsCache) HasAgentAnalytics() bool {
	return c.agents.Has(AgentAnalyticsKey())
}

// DeleteAgentAnalytics drops the agent report.
func (c *AnalyticsCache) DeleteAgentAnalytics() bool {
	return c.agents.Delete(AgentAnalyticsKey())
}

// SetMessageAnalytics stores the message report computed over limit
// messages. Distinct limits cache independently.
func (c *AnalyticsCache) SetMessageAnalytics(limit int, v types.MessageAnalytics) {
	c.messages.Set(MessageAnalyticsKey(limit), v)
}

// GetMessageAnalytics returns the cached message report for limit.
func (c *AnalyticsCache) GetMessageAnalytics(limit int) (types.MessageAnalytics, bool) {
	return c.messages.Get(MessageAnalyticsKey(limit))
}

// HasMessageAnalytics peeks for a fresh message report for limit.
func (c *AnalyticsCache) HasMessageAnalytics(limit int) bool {
	return c.messages.Has(MessageAnalyticsKey(limit))
}

// DeleteMessageAnalytics drops the message report for limit.
func (c *AnalyticsCache) DeleteMessageAnalytics(limit int) bool {
	return c.messages.Delete(MessageAnalyticsKey(limit))
}

// SetChannelAnalytics stores the channel report computed over limit
// channels.
func (c *AnalyticsCache) SetChannelAnalytics(limit int, v types.ChannelAnalytics) {
	c.channels.Set(ChannelAnalyticsKey(limit), v)
}

// GetChannelAnalytics returns the cached channel report for limit.
func (c *AnalyticsCache) GetChannelAnalytics(limit int) (types.ChannelAnalytics, bool) {
	return c.channels.Get(ChannelAnalyticsKey(limit))
}

// HasChannelAnalytics peeks for a fresh channel report for limit.
func (c *AnalyticsCache) HasChannelAnalytics(limit int) bool {
	return c.channels.Has(ChannelAnalyticsKey(limit))
}

// DeleteChannelAnalytics drops the channel report for limit.
func (c *AnalyticsCache) DeleteChannelAnalytics(limit int) bool {
	return c.channels.Delete(ChannelAnalyticsKey(limit))
}

// SetAgentMetrics stores one agent's activity breakdown.
func (c *AnalyticsCache) SetAgentMetrics(agentID string, v types.AgentMetrics) {
	c.agentMetrics.Set(AgentMetricsKey(agentID), v)
}

// GetAgentMetrics returns the cached breakdown for agentID.
func (c *AnalyticsCache) GetAgentMetrics(agentID string) (types.AgentMetrics, bool) {
	return c.agentMetrics.Get(AgentMetricsKey(agentID))
}

// HasAgentMetrics peeks for a fresh breakdown for agentID.
func (c *AnalyticsCache) HasAgentMetrics(agentID string) bool {
	return c.agentMetrics.Has(AgentMetricsKey(agentID))
}

// DeleteAgentMetrics drops the breakdown for agentID.
func (c *AnalyticsCache) DeleteAgentMetrics(agentID string) bool {
	return c.agentMetrics.Delete(AgentMetricsKey(agentID))
}

// TTL returns the report time-to-live.
func (c *AnalyticsCache) TTL() time.Duration { return c.ttl }

// Clear empties every report kind.
func (c *AnalyticsCache) Clear() {
	c.agents.Clear()
	c.messages.Clear()
	c.channels.Clear()
	c.agentMetrics.Clear()
}

// Stats sums the statistics of all report kinds into one view.
func (c *AnalyticsCache) Stats() lru.Stats {
	return sumStats(
		c.agents.Stats(),
		c.messages.Stats(),
		c.channels.Stats(),
		c.agentMetrics.Stats(),
	)
}

// sumStats folds several engine snapshots into one, recomputing the
// hit rate from the combined totals.
func sumStats(stats ...lru.Stats) lru.Stats {
	var out lru.Stats
	for _, s := range stats {
		out.Hits += s.Hits
		out.Misses += s.Misses
		out.Size += s.Size
	}
	if total := out.Hits + out.Misses; total > 0 {
		out.HitRate = float64(out.Hits) / float64(total)
	}
	return out
}
