// Package podcache is the caching layer of the PoD Protocol Go SDK.
// It keeps expensive lookups - on-chain account reads and derived
// analytics aggregates - out of the hot path.
//
// Two specializations wrap the generic engine in package lru:
// AccountCache for account state (short TTL) and AnalyticsCache for
// slowly-changing aggregates (long TTL). Both build canonical string
// keys from semantic inputs and delegate the bounded-LRU and TTL
// mechanics to the engine. Neither fetches data itself; on a miss the
// caller computes the value and stores it, or uses a Loader to do
// both with miss deduplication.
package podcache
