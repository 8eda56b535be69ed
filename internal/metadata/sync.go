package metadata

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/movieflix/movieflix/internal/catalog"
	"golang.org/x/sync/singleflight"
)

// Synchronizer guarantees callers a record that is either fresh-cached or
// freshly fetched, normalized, and persisted.
type Synchronizer struct {
	store    Store
	provider Provider
	ttl      time.Duration
	log      *slog.Logger

	// now is injectable for deterministic freshness tests.
	now func() time.Time

	// group collapses concurrent fetches for the same identifier.
	group singleflight.Group
}

// NewSynchronizer creates a synchronizer with the given staleness TTL.
func NewSynchronizer(store Store, provider Provider, ttl time.Duration, log *slog.Logger) *Synchronizer {
	return &Synchronizer{
		store:    store,
		provider: provider,
		ttl:      ttl,
		log:      log,
		now:      time.Now,
	}
}

// EnsureFresh returns the movie for id, fetching from the remote provider
// when the cached record is absent, stale, or force is set. A cache hit is
// returned unchanged; only remote fetches stamp a new last-fetched time.
func (s *Synchronizer) EnsureFresh(ctx context.Context, id string, force bool) (*catalog.Movie, error) {
	cached, err := s.store.GetMovie(ctx, id)
	if err != nil && !errors.Is(err, catalog.ErrNotFound) {
		return nil, err
	}

	if cached != nil && !force && !IsStale(cached, s.ttl, s.now()) {
		if s.log != nil {
			s.log.Debug("cache hit", "id", id)
		}
		return cached, nil
	}

	return s.refresh(ctx, id)
}

// refresh fetches, normalizes, and upserts one identifier. Nothing is written
// unless the full fetch+normalize succeeded. Concurrent refreshes for the
// same identifier share a single remote call.
func (s *Synchronizer) refresh(ctx context.Context, id string) (*catalog.Movie, error) {
	v, err, shared := s.group.Do(id, func() (any, error) {
		raw, err := s.provider.FetchByID(ctx, id)
		if err != nil {
			return nil, mapProviderErr(err)
		}

		movie := Normalize(raw, s.now())
		if err := s.store.UpsertMovie(ctx, movie); err != nil {
			return nil, err
		}
		return movie, nil
	})
	if err != nil {
		return nil, err
	}

	if shared && s.log != nil {
		s.log.Debug("deduplicated concurrent refresh", "id", id)
	}
	return v.(*catalog.Movie), nil
}

// GetMovie is the lookup entry point: ensure-fresh with the default policy.
func (s *Synchronizer) GetMovie(ctx context.Context, id string) (*catalog.Movie, error) {
	return s.EnsureFresh(ctx, id, false)
}

// RefreshAll force-refreshes every cached identifier sequentially and returns
// the number refreshed. An identifier whose remote fetch fails is skipped and
// logged; it does not abort the batch and does not count as refreshed.
func (s *Synchronizer) RefreshAll(ctx context.Context) (int, error) {
	ids, err := s.store.ListIDs(ctx)
	if err != nil {
		return 0, err
	}

	refreshed := 0
	for _, id := range ids {
		if _, err := s.EnsureFresh(ctx, id, true); err != nil {
			if s.log != nil {
				s.log.Warn("refresh failed, skipping", "id", id, "error", err)
			}
			continue
		}
		refreshed++
	}

	if s.log != nil {
		s.log.Info("cache refresh completed", "total", len(ids), "refreshed", refreshed)
	}
	return refreshed, nil
}

// Delete removes a movie from the cache. The remote provider is never
// consulted. Returns ErrNotFound when no record existed.
func (s *Synchronizer) Delete(ctx context.Context, id string) error {
	removed, err := s.store.DeleteMovie(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return ErrNotFound
	}
	return nil
}
