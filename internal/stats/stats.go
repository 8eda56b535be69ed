// Package stats aggregates the cached catalog into summary figures.
package stats

import (
	"context"
	"sort"

	"github.com/movieflix/movieflix/internal/catalog"
	"github.com/samber/lo"
)

// Store is the catalog access the aggregator needs.
type Store interface {
	ListMovies(ctx context.Context) ([]*catalog.Movie, error)
}

// GenreStat summarizes one genre across the cache.
type GenreStat struct {
	Genre         string   `json:"genre"`
	Count         int      `json:"count"`
	AverageRating *float64 `json:"averageRating,omitempty"`
}

// YearStat summarizes one release year across the cache.
type YearStat struct {
	Year           int      `json:"year"`
	Count          int      `json:"count"`
	AverageRuntime *float64 `json:"averageRuntime,omitempty"`
}

// Overview is a full snapshot of the cached catalog.
type Overview struct {
	TotalMovies   int         `json:"totalMovies"`
	AverageRating *float64    `json:"averageRating,omitempty"`
	Genres        []GenreStat `json:"genres"`
	Years         []YearStat  `json:"years"`
}

// Service computes catalog statistics on demand. Aggregation happens in
// memory over the full cache, which stays small enough for that to be cheap.
type Service struct {
	store Store
}

// NewService creates a statistics service over the given store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Overview aggregates the whole cache. Records without a rating contribute to
// counts but not to averages.
func (s *Service) Overview(ctx context.Context) (*Overview, error) {
	movies, err := s.store.ListMovies(ctx)
	if err != nil {
		return nil, err
	}

	rated := lo.Filter(movies, func(m *catalog.Movie, _ int) bool { return m.IMDBRating != nil })

	return &Overview{
		TotalMovies:   len(movies),
		AverageRating: averageRating(rated),
		Genres:        genreStats(movies),
		Years:         yearStats(movies),
	}, nil
}

func averageRating(rated []*catalog.Movie) *float64 {
	if len(rated) == 0 {
		return nil
	}
	sum := lo.SumBy(rated, func(m *catalog.Movie) float64 { return *m.IMDBRating })
	avg := sum / float64(len(rated))
	return &avg
}

// genreStats groups by genre; a movie with several genres counts once per
// genre. Ordered by count descending, ties by name.
func genreStats(movies []*catalog.Movie) []GenreStat {
	byGenre := map[string][]*catalog.Movie{}
	for _, m := range movies {
		for _, g := range m.Genres {
			byGenre[g] = append(byGenre[g], m)
		}
	}

	out := make([]GenreStat, 0, len(byGenre))
	for genre, members := range byGenre {
		rated := lo.Filter(members, func(m *catalog.Movie, _ int) bool { return m.IMDBRating != nil })
		out = append(out, GenreStat{
			Genre:         genre,
			Count:         len(members),
			AverageRating: averageRating(rated),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Genre < out[j].Genre
	})
	return out
}

// yearStats groups by release year ascending. Movies without a year are left
// out entirely.
func yearStats(movies []*catalog.Movie) []YearStat {
	dated := lo.Filter(movies, func(m *catalog.Movie, _ int) bool { return m.Year != nil })
	byYear := lo.GroupBy(dated, func(m *catalog.Movie) int { return *m.Year })

	out := make([]YearStat, 0, len(byYear))
	for year, members := range byYear {
		stat := YearStat{Year: year, Count: len(members)}

		withRuntime := lo.Filter(members, func(m *catalog.Movie, _ int) bool { return m.RuntimeMinutes != nil })
		if len(withRuntime) > 0 {
			sum := lo.SumBy(withRuntime, func(m *catalog.Movie) float64 { return float64(*m.RuntimeMinutes) })
			avg := sum / float64(len(withRuntime))
			stat.AverageRuntime = &avg
		}

		out = append(out, stat)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}
