package podcache

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pod-protocol/podcache/types"
)

func TestStatsCollector(t *testing.T) {
	accounts := NewAccountCache()
	accounts.SetAccount("addr1", types.AccountInfo{Address: "addr1"})
	accounts.GetAccount("addr1") // hit
	accounts.GetAccount("addr2") // miss

	collector := NewStatsCollector()
	collector.Register("accounts", accounts)

	reg := prometheus.NewPedanticRegistry()
	require.NoError(t, reg.Register(collector))

	expected := `# HELP podcache_entries Live entries currently cached.
# TYPE podcache_entries gauge
podcache_entries{cache="accounts"} 1
# HELP podcache_hit_rate Hits over total lookups since construction.
# TYPE podcache_hit_rate gauge
podcache_hit_rate{cache="accounts"} 0.5
# HELP podcache_hits_total Cumulative cache hits.
# TYPE podcache_hits_total counter
podcache_hits_total{cache="accounts"} 1
# HELP podcache_misses_total Cumulative cache misses.
# TYPE podcache_misses_total counter
podcache_misses_total{cache="accounts"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected)))
}

func TestStatsCollectorMultipleSources(t *testing.T) {
	collector := NewStatsCollector()
	collector.Register("accounts", NewAccountCache())
	collector.Register("analytics", NewAnalyticsCache())

	reg := prometheus.NewPedanticRegistry()
	require.NoError(t, reg.Register(collector))

	// Four metric families, two series each.
	n, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Equal(t, 8, n)
}

func TestStatsCollectorReplaceSource(t *testing.T) {
	collector := NewStatsCollector()
	collector.Register("accounts", NewAccountCache())
	collector.Register("accounts", NewAccountCache())

	reg := prometheus.NewPedanticRegistry()
	require.NoError(t, reg.Register(collector))

	n, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Equal(t, 4, n, "re-registering a name replaces, not duplicates")
}
