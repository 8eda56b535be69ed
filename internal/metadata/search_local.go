package metadata

import (
	"context"
	"sort"
	"strings"

	"github.com/hbollon/go-edlib"
	"github.com/movieflix/movieflix/internal/catalog"
)

// localMatchThreshold is the minimum Jaro-Winkler similarity between the
// normalized query and a cached title for the record to count as a match.
const localMatchThreshold = 0.75

// SearchCached runs a fuzzy title search over cached records only. It never
// contacts the remote provider and never mutates the cache, so it keeps
// working when the provider is down. Results are ordered by similarity,
// best first.
func (s *Searcher) SearchCached(ctx context.Context, query string, limit int) ([]*catalog.Movie, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}
	if limit < 1 {
		limit = 10
	}

	movies, err := s.store.ListMovies(ctx)
	if err != nil {
		return nil, err
	}

	normalizedQuery := normalizeTitle(query)

	type scored struct {
		movie *catalog.Movie
		score float64
	}
	var matches []scored
	for _, m := range movies {
		normalizedTitle := normalizeTitle(m.Title)

		score := float64(edlib.JaroWinklerSimilarity(normalizedQuery, normalizedTitle))
		if strings.Contains(normalizedTitle, normalizedQuery) && score < 1 {
			// A substring hit ("dune" in "dune part two") is always a match.
			score = 1
		}

		if score >= localMatchThreshold {
			matches = append(matches, scored{movie: m, score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}

	result := make([]*catalog.Movie, len(matches))
	for i, match := range matches {
		result[i] = match.movie
	}
	return result, nil
}
