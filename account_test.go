package podcache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pod-protocol/podcache/types"
)

func TestAccountKeyBuilders(t *testing.T) {
	assert.Equal(t, "account:9xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin", AccountKey("9xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin"))
	assert.Equal(t, "account:agent:addr1", TypedAccountKey("agent", "addr1"))
	assert.Equal(t, "accounts:agent:[]", ProgramAccountsKey("agent", nil))
	assert.Equal(t,
		"accounts:message:[dataSize:165,memcmp:8:abc]",
		ProgramAccountsKey("message", []types.Filter{
			types.MemcmpAt(8, "abc"),
			types.WithDataSize(165),
		}),
	)
}

func TestAccountRoundTrip(t *testing.T) {
	c := NewAccountCache()

	_, ok := c.GetAccount("addr1")
	assert.False(t, ok)

	info := types.AccountInfo{Address: "addr1", Owner: "prog1", Lamports: 5000}
	c.SetAccount("addr1", info)

	got, ok := c.GetAccount("addr1")
	require.True(t, ok)
	assert.Equal(t, info, got)

	assert.True(t, c.HasAccount("addr1"))
	assert.True(t, c.DeleteAccount("addr1"))
	assert.False(t, c.HasAccount("addr1"))
}

func TestTypedAccountDistinctFromRaw(t *testing.T) {
	c := NewAccountCache()

	raw := types.AccountInfo{Address: "addr1", Lamports: 1}
	typed := types.AccountInfo{Address: "addr1", Lamports: 2}
	c.SetAccount("addr1", raw)
	c.SetTypedAccount("agent", "addr1", typed)

	got, ok := c.GetAccount("addr1")
	require.True(t, ok)
	assert.Equal(t, raw, got)

	got, ok = c.GetTypedAccount("agent", "addr1")
	require.True(t, ok)
	assert.Equal(t, typed, got)

	_, ok = c.GetTypedAccount("channel", "addr1")
	assert.False(t, ok, "type tag is part of the key")

	assert.True(t, c.DeleteTypedAccount("agent", "addr1"))
	assert.True(t, c.HasAccount("addr1"), "raw entry unaffected")
}

func TestProgramAccountsFilterDifferentiation(t *testing.T) {
	c := NewAccountCache()

	filtersA := []types.Filter{types.MemcmpAt(8, "abc")}
	filtersB := []types.Filter{types.MemcmpAt(8, "xyz")}
	resultA := []types.AccountInfo{{Address: "a1"}}
	resultB := []types.AccountInfo{{Address: "b1"}, {Address: "b2"}}

	c.SetProgramAccounts("agent", filtersA, resultA)
	c.SetProgramAccounts("agent", filtersB, resultB)

	got, ok := c.GetProgramAccounts("agent", filtersA)
	require.True(t, ok)
	assert.Equal(t, resultA, got)

	got, ok = c.GetProgramAccounts("agent", filtersB)
	require.True(t, ok)
	assert.Equal(t, resultB, got)
}

func TestProgramAccountsEquivalentFiltersCollide(t *testing.T) {
	c := NewAccountCache()

	ordered := []types.Filter{types.MemcmpAt(8, "abc"), types.WithDataSize(165)}
	reversed := []types.Filter{types.WithDataSize(165), types.MemcmpAt(8, "abc")}

	c.SetProgramAccounts("agent", ordered, []types.AccountInfo{{Address: "a1"}})
	c.SetProgramAccounts("agent", reversed, []types.AccountInfo{{Address: "a2"}})

	got, ok := c.GetProgramAccounts("agent", ordered)
	require.True(t, ok)
	assert.Equal(t, []types.AccountInfo{{Address: "a2"}}, got,
		"same filter content collides to one entry")
	assert.Equal(t, 1, c.Stats().Size)
}

func TestProgramAccountsEmptyFilters(t *testing.T) {
	c := NewAccountCache()

	all := []types.AccountInfo{{Address: "a1"}, {Address: "a2"}}
	c.SetProgramAccounts("agent", nil, all)

	got, ok := c.GetProgramAccounts("agent", []types.Filter{})
	require.True(t, ok, "nil and empty filter lists share a key")
	assert.Equal(t, all, got)

	assert.True(t, c.HasProgramAccounts("agent", nil))
	assert.True(t, c.DeleteProgramAccounts("agent", nil))
	assert.False(t, c.HasProgramAccounts("agent", nil))
}

func TestAccountTTLOption(t *testing.T) {
	assert.Equal(t, DefaultAccountTTL, NewAccountCache().TTL())
	assert.Equal(t, 5*time.Second, NewAccountCache(WithAccountTTL(5*time.Second)).TTL())
}

func TestAccountConfigPreset(t *testing.T) {
	cfg := ProductionConfig()
	c := NewAccountCache(WithAccountConfig(cfg))
	assert.Equal(t, cfg.DefaultTTL, c.TTL())
}

func TestAccountClearAndStats(t *testing.T) {
	c := NewAccountCache()

	c.SetAccount("addr1", types.AccountInfo{Address: "addr1"})
	c.SetProgramAccounts("agent", nil, []types.AccountInfo{{Address: "addr1"}})

	c.GetAccount("addr1")              // hit
	c.GetAccount("addr2")              // miss
	c.GetProgramAccounts("agent", nil) // hit

	s := c.Stats()
	assert.Equal(t, uint64(2), s.Hits)
	assert.Equal(t, uint64(1), s.Misses)
	assert.Equal(t, 2, s.Size)

	c.Clear()
	assert.Equal(t, 0, c.Stats().Size)
	assert.Equal(t, uint64(2), c.Stats().Hits)
}
