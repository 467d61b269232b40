package lru

// Stats is a point-in-time view of a cache's effectiveness.
type Stats struct {
	Hits    uint64  // cumulative Get calls that returned a live entry
	Misses  uint64  // cumulative Get calls that found nothing usable
	HitRate float64 // Hits / (Hits + Misses); 0 before any Get
	Size    int     // live entries right now, as reported by Len
}

// Stats computes the current statistics snapshot.
func (c *Cache[K, V]) Stats() Stats {
	s := Stats{
		Hits:   c.hits,
		Misses: c.misses,
		Size:   c.Len(),
	}
	if total := s.Hits + s.Misses; total > 0 {
		s.HitRate = float64(s.Hits) / float64(total)
	}
	return s
}
