package metadata

import (
	"time"

	"github.com/movieflix/movieflix/internal/catalog"
)

// IsStale reports whether a cached record is older than the configured TTL
// at the given instant. A missing record or one that has never been fetched
// is always stale. A record exactly ttl old is still fresh.
func IsStale(m *catalog.Movie, ttl time.Duration, now time.Time) bool {
	if m == nil || m.LastFetchedAt.IsZero() {
		return true
	}
	return now.Sub(m.LastFetchedAt) > ttl
}
