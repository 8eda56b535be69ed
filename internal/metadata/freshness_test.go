package metadata

import (
	"testing"
	"time"

	"github.com/movieflix/movieflix/internal/catalog"
	"github.com/stretchr/testify/assert"
)

func TestIsStale_Boundary(t *testing.T) {
	ttl := 24 * time.Hour
	fetchedAt := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	m := &catalog.Movie{ID: "tt1", LastFetchedAt: fetchedAt}

	assert.False(t, IsStale(m, ttl, fetchedAt), "just fetched")
	assert.False(t, IsStale(m, ttl, fetchedAt.Add(ttl)), "exactly ttl old is still fresh")
	assert.True(t, IsStale(m, ttl, fetchedAt.Add(ttl+time.Nanosecond)), "past ttl is stale")
}

func TestIsStale_MissingRecord(t *testing.T) {
	assert.True(t, IsStale(nil, time.Hour, time.Now()))
}

func TestIsStale_NeverFetched(t *testing.T) {
	m := &catalog.Movie{ID: "tt1"}
	assert.True(t, IsStale(m, time.Hour, time.Now()))
}
