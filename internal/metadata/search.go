package metadata

import (
	"context"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/movieflix/movieflix/internal/catalog"
)

// Sortable fields for search results.
const (
	SortTitle   = "title"
	SortYear    = "year"
	SortRuntime = "runtimeMinutes"
	SortRating  = "imdbRating"
)

// Sort orders a filtered result set by one field.
type Sort struct {
	Field string
	Order string // "asc" or "desc"
}

// Filters restrict a result set. Kinds compose with AND; an absent filter is
// no constraint.
type Filters struct {
	Genres []string
	Years  []string
}

// Params describes one search request.
type Params struct {
	Query   string
	Page    int
	Limit   int
	Sort    *Sort
	Filters Filters
}

// Result is one page of resolved search results. Total counts the locally
// filtered records for this page; TotalPages and TotalResults describe the
// provider's global result set. The two totals intentionally serve different
// audiences.
type Result struct {
	Movies       []*catalog.Movie
	Page         int
	Limit        int
	Total        int
	TotalPages   int
	TotalResults int
}

// Searcher reconciles the provider's ranked results with the local cache.
type Searcher struct {
	provider Provider
	sync     *Synchronizer
	store    Store
	ttl      time.Duration
	log      *slog.Logger
	now      func() time.Time
}

// NewSearcher creates a search orchestrator.
func NewSearcher(provider Provider, sync *Synchronizer, store Store, ttl time.Duration, log *slog.Logger) *Searcher {
	return &Searcher{
		provider: provider,
		sync:     sync,
		store:    store,
		ttl:      ttl,
		log:      log,
		now:      time.Now,
	}
}

// Search runs a free-text query against the provider, ensures every returned
// identifier is fresh in the cache, and applies local filters and sorting.
// The provider's ranking order is preserved unless a sort is requested; an
// identifier that cannot be resolved is dropped, never fatal.
func (s *Searcher) Search(ctx context.Context, p Params) (*Result, error) {
	if strings.TrimSpace(p.Query) == "" {
		return nil, ErrEmptyQuery
	}

	page := p.Page
	if page < 1 {
		page = 1
	}
	limit := p.Limit
	if limit < 1 {
		limit = 10
	}

	remote, err := s.provider.Search(ctx, p.Query, page)
	if err != nil {
		return nil, mapProviderErr(err)
	}

	// The remote ranking defines both the identifier universe and the order.
	ids := make([]string, 0, len(remote.Items))
	for _, item := range remote.Items {
		ids = append(ids, item.IMDBID)
	}

	cached, err := s.store.GetMovies(ctx, ids)
	if err != nil {
		return nil, err
	}

	movies := make([]*catalog.Movie, 0, len(ids))
	for _, id := range ids {
		movie := cached[id]
		if movie == nil || IsStale(movie, s.ttl, s.now()) {
			fresh, err := s.sync.EnsureFresh(ctx, id, false)
			if err != nil {
				if s.log != nil {
					s.log.Warn("dropping unresolved result", "id", id, "error", err)
				}
				continue
			}
			movie = fresh
		}
		movies = append(movies, movie)
	}

	movies = applyFilters(movies, p.Filters)
	if p.Sort != nil {
		applySort(movies, *p.Sort)
	}

	total := len(movies)
	totalPages := (remote.TotalResults + limit - 1) / limit
	if totalPages < 1 {
		totalPages = 1
	}
	if len(movies) > limit {
		movies = movies[:limit]
	}

	return &Result{
		Movies:       movies,
		Page:         page,
		Limit:        limit,
		Total:        total,
		TotalPages:   totalPages,
		TotalResults: remote.TotalResults,
	}, nil
}

func applyFilters(movies []*catalog.Movie, f Filters) []*catalog.Movie {
	filtered := movies

	if len(f.Genres) > 0 {
		kept := filtered[:0:0]
		for _, m := range filtered {
			if hasAnyGenre(m, f.Genres) {
				kept = append(kept, m)
			}
		}
		filtered = kept
	}

	if len(f.Years) > 0 {
		kept := filtered[:0:0]
		for _, m := range filtered {
			if m.Year != nil && contains(f.Years, strconv.Itoa(*m.Year)) {
				kept = append(kept, m)
			}
		}
		filtered = kept
	}

	return filtered
}

// hasAnyGenre reports whether any of the movie's genres exactly matches any
// requested genre. Matching is case-sensitive.
func hasAnyGenre(m *catalog.Movie, genres []string) bool {
	for _, want := range genres {
		for _, have := range m.Genres {
			if have == want {
				return true
			}
		}
	}
	return false
}

func contains(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}

// applySort stable-sorts in place, so equal keys keep their ranking order.
// Absent values compare as zero.
func applySort(movies []*catalog.Movie, s Sort) {
	desc := s.Order != "asc"

	sort.SliceStable(movies, func(i, j int) bool {
		var less bool
		switch s.Field {
		case SortTitle:
			if movies[i].Title == movies[j].Title {
				return false
			}
			less = movies[i].Title < movies[j].Title
		default:
			a, b := numericField(movies[i], s.Field), numericField(movies[j], s.Field)
			if a == b {
				return false
			}
			less = a < b
		}
		if desc {
			return !less
		}
		return less
	})
}

func numericField(m *catalog.Movie, field string) float64 {
	switch field {
	case SortYear:
		if m.Year != nil {
			return float64(*m.Year)
		}
	case SortRuntime:
		if m.RuntimeMinutes != nil {
			return float64(*m.RuntimeMinutes)
		}
	case SortRating:
		if m.IMDBRating != nil {
			return *m.IMDBRating
		}
	}
	return 0
}
