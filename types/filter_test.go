package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalFiltersEmpty(t *testing.T) {
	assert.Equal(t, "[]", CanonicalFilters(nil))
	assert.Equal(t, "[]", CanonicalFilters([]Filter{}))
}

func TestCanonicalFiltersStable(t *testing.T) {
	filters := []Filter{
		MemcmpAt(8, "3yZe7d"),
		WithDataSize(165),
	}
	assert.Equal(t, CanonicalFilters(filters), CanonicalFilters(filters))
	assert.Equal(t, "[dataSize:165,memcmp:8:3yZe7d]", CanonicalFilters(filters))
}

func TestCanonicalFiltersOrderInsensitive(t *testing.T) {
	a := []Filter{MemcmpAt(8, "3yZe7d"), WithDataSize(165)}
	b := []Filter{WithDataSize(165), MemcmpAt(8, "3yZe7d")}
	assert.Equal(t, CanonicalFilters(a), CanonicalFilters(b))
}

func TestCanonicalFiltersContentSensitive(t *testing.T) {
	a := []Filter{MemcmpAt(8, "3yZe7d")}
	b := []Filter{MemcmpAt(9, "3yZe7d")}
	c := []Filter{MemcmpAt(8, "other")}
	d := []Filter{WithDataSize(8)}

	keys := map[string]bool{
		CanonicalFilters(a): true,
		CanonicalFilters(b): true,
		CanonicalFilters(c): true,
		CanonicalFilters(d): true,
	}
	assert.Len(t, keys, 4, "distinct filter content must yield distinct keys")
}

func TestCanonicalFiltersEmptyFilter(t *testing.T) {
	assert.Equal(t, "[empty]", CanonicalFilters([]Filter{{}}))
}
