package types

import (
	"sort"
	"strconv"
	"strings"
)

// Filter narrows a program-wide account scan. It mirrors the two RPC
// getProgramAccounts filter shapes: a memcmp match against account
// data, or an exact data size. At most one of the two fields is set.
type Filter struct {
	Memcmp   *MemcmpFilter
	DataSize *uint64
}

// MemcmpFilter matches accounts whose data contains Bytes at Offset.
type MemcmpFilter struct {
	Offset uint64
	Bytes  string // base58-encoded needle
}

// MemcmpAt builds a memcmp filter.
func MemcmpAt(offset uint64, bytes string) Filter {
	return Filter{Memcmp: &MemcmpFilter{Offset: offset, Bytes: bytes}}
}

// WithDataSize builds an exact data-size filter.
func WithDataSize(size uint64) Filter {
	return Filter{DataSize: &size}
}

// canonical renders one filter as a stable string.
func (f Filter) canonical() string {
	switch {
	case f.Memcmp != nil:
		return "memcmp:" + strconv.FormatUint(f.Memcmp.Offset, 10) + ":" + f.Memcmp.Bytes
	case f.DataSize != nil:
		return "dataSize:" + strconv.FormatUint(*f.DataSize, 10)
	default:
		return "empty"
	}
}

// CanonicalFilters serializes a filter list into a single
// deterministic string, so that semantically identical filter sets
// land on the same cache key. Filters are sorted by their rendered
// form, which makes the result insensitive to the order the caller
// assembled them in. An empty list renders as "[]".
func CanonicalFilters(filters []Filter) string {
	if len(filters) == 0 {
		return "[]"
	}
	parts := make([]string, len(filters))
	for i, f := range filters {
		parts[i] = f.canonical()
	}
	sort.Strings(parts)
	return "[" + strings.Join(parts, ",") + "]"
}
