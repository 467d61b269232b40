package podcache

import (
	"time"

	"github.com/pod-protocol/podcache/lru"
	"github.com/pod-protocol/podcache/types"
)

// DefaultAccountTTL is how long cached account state stays fresh.
// Account state changes with every confirmed transaction, so it goes
// stale much faster than analytics aggregates.
const DefaultAccountTTL = 30 * time.Second

// accountCapacity bounds the single-account cache; scanCapacity
// bounds the program-scan cache, whose values are whole result sets.
const (
	accountCapacity = 512
	scanCapacity    = 64
)

// Key builders.

// AccountKey is the cache key for a raw account lookup.
func AccountKey(address string) string { return "account:" + address }

// TypedAccountKey is the cache key for an account lookup tagged with
// its logical type (agent, message, channel, escrow).
func TypedAccountKey(accountType, address string) string {
	return "account:" + accountType + ":" + address
}

// ProgramAccountsKey is the cache key for a program-wide scan. The
// filter list is canonicalized so equivalent filter sets collide.
func ProgramAccountsKey(accountType string, filters []types.Filter) string {
	return "accounts:" + accountType + ":" + types.CanonicalFilters(filters)
}

// AccountCache caches blockchain account reads and program-wide
// scans. Single accounts (raw and type-tagged) share one engine
// instance; scans get their own, since a scan value is a full result
// slice. Not safe for concurrent use without external locking.
type AccountCache struct {
	ttl      time.Duration
	accounts *lru.Cache[string, types.AccountInfo]
	scans    *lru.Cache[string, []types.AccountInfo]
}

// AccountOption configures an AccountCache.
type AccountOption func(*accountConfig)

type accountConfig struct {
	ttl          time.Duration
	capacity     int
	scanCapacity int
}

// WithAccountTTL overrides the default 30 second account TTL.
func WithAccountTTL(d time.Duration) AccountOption {
	return func(c *accountConfig) {
		if d > 0 {
			c.ttl = d
		}
	}
}

// WithAccountConfig applies a Config preset's size and TTL. The scan
// cache keeps its fixed capacity; scans are few but heavy.
func WithAccountConfig(cfg Config) AccountOption {
	return func(c *accountConfig) {
		if cfg.MaxSize > 0 {
			c.capacity = cfg.MaxSize
		}
		if cfg.DefaultTTL > 0 {
			c.ttl = cfg.DefaultTTL
		}
	}
}

// NewAccountCache creates an account cache with the default TTL
// unless overridden.
func NewAccountCache(opts ...AccountOption) *AccountCache {
	cfg := accountConfig{ttl: DefaultAccountTTL, capacity: accountCapacity, scanCapacity: scanCapacity}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &AccountCache{
		ttl:      cfg.ttl,
		accounts: lru.New[string, types.AccountInfo](cfg.capacity, lru.WithTTL[string, types.AccountInfo](cfg.ttl)),
		scans:    lru.New[string, []types.AccountInfo](cfg.scanCapacity, lru.WithTTL[string, []types.AccountInfo](cfg.ttl)),
	}
}

// SetAccount stores the state of a single account.
func (c *AccountCache) SetAccount(address string, info types.AccountInfo) {
	c.accounts.Set(AccountKey(address), info)
}

// GetAccount returns the cached state of address, if fresh.
func (c *AccountCache) GetAccount(address string) (types.AccountInfo, bool) {
	return c.accounts.Get(AccountKey(address))
}

// HasAccount peeks for fresh state without disturbing recency or
// counters.
func (c *AccountCache) HasAccount(address string) bool {
	return c.accounts.Has(AccountKey(address))
}

// DeleteAccount drops the cached state of address.
func (c *AccountCache) DeleteAccount(address string) bool {
	return c.accounts.Delete(AccountKey(address))
}

// SetTypedAccount stores account state under a type-tagged key. The
// same address cached raw and type-tagged are distinct entries.
func (c *AccountCache) SetTypedAccount(accountType, address string, info types.AccountInfo) {
	c.accounts.Set(TypedAccountKey(accountType, address), info)
}

// GetTypedAccount returns the cached type-tagged state, if fresh.
func (c *AccountCache) GetTypedAccount(accountType, address string) (types.AccountInfo, bool) {
	return c.accounts.Get(TypedAccountKey(accountType, address))
}

// HasTypedAccount peeks for fresh type-tagged state.
func (c *AccountCache) HasTypedAccount(accountType, address string) bool {
	return c.accounts.Has(TypedAccountKey(accountType, address))
}

// DeleteTypedAccount drops the type-tagged entry.
func (c *AccountCache) DeleteTypedAccount(accountType, address string) bool {
	return c.accounts.Delete(TypedAccountKey(accountType, address))
}

// SetProgramAccounts stores the result of a program-wide scan for
// accountType narrowed by filters.
func (c *AccountCache) SetProgramAccounts(accountType string, filters []types.Filter, accounts []types.AccountInfo) {
	c.scans.Set(ProgramAccountsKey(accountType, filters), accounts)
}

// GetProgramAccounts returns the cached scan result, if fresh. Filter
// lists with the same elements hit the same entry regardless of
// order.
func (c *AccountCache) GetProgramAccounts(accountType string, filters []types.Filter) ([]types.AccountInfo, bool) {
	return c.scans.Get(ProgramAccountsKey(accountType, filters))
}

// HasProgramAccounts peeks for a fresh scan result.
func (c *AccountCache) HasProgramAccounts(accountType string, filters []types.Filter) bool {
	return c.scans.Has(ProgramAccountsKey(accountType, filters))
}

// DeleteProgramAccounts drops the scan result.
func (c *AccountCache) DeleteProgramAccounts(accountType string, filters []types.Filter) bool {
	return c.scans.Delete(ProgramAccountsKey(accountType, filters))
}

// TTL returns the account time-to-live.
func (c *AccountCache) TTL() time.Duration { return c.ttl }

// Clear empties both the account and scan engines.
func (c *AccountCache) Clear() {
	c.accounts.Clear()
	c.scans.Clear()
}

// Stats sums account and scan statistics into one view.
func (c *AccountCache) Stats() lru.Stats {
	return sumStats(c.accounts.Stats(), c.scans.Stats())
}
