package stats

import (
	"context"
	"errors"
	"testing"

	"github.com/movieflix/movieflix/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStore struct {
	movies []*catalog.Movie
	err    error
}

func (s *stubStore) ListMovies(_ context.Context) ([]*catalog.Movie, error) {
	return s.movies, s.err
}

func movie(id string, year int, runtime int, rating float64, genres ...string) *catalog.Movie {
	m := &catalog.Movie{ID: id, IMDBID: id, Title: id, Genres: genres}
	if year > 0 {
		m.Year = &year
	}
	if runtime > 0 {
		m.RuntimeMinutes = &runtime
	}
	if rating > 0 {
		m.IMDBRating = &rating
	}
	return m
}

func TestOverview(t *testing.T) {
	store := &stubStore{movies: []*catalog.Movie{
		movie("tt1", 2020, 120, 8.0, "Drama", "War"),
		movie("tt2", 2020, 100, 6.0, "Drama"),
		movie("tt3", 1999, 90, 0, "Comedy"),
	}}

	svc := NewService(store)
	ov, err := svc.Overview(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, ov.TotalMovies)

	// Only the two rated movies feed the overall average.
	require.NotNil(t, ov.AverageRating)
	assert.InDelta(t, 7.0, *ov.AverageRating, 1e-9)

	require.Len(t, ov.Genres, 3)
	assert.Equal(t, "Drama", ov.Genres[0].Genre)
	assert.Equal(t, 2, ov.Genres[0].Count)
	require.NotNil(t, ov.Genres[0].AverageRating)
	assert.InDelta(t, 7.0, *ov.Genres[0].AverageRating, 1e-9)

	// Count ties order by name.
	assert.Equal(t, "Comedy", ov.Genres[1].Genre)
	assert.Equal(t, "War", ov.Genres[2].Genre)
	assert.Nil(t, ov.Genres[1].AverageRating, "an unrated genre has no average")

	require.Len(t, ov.Years, 2)
	assert.Equal(t, 1999, ov.Years[0].Year)
	assert.Equal(t, 2020, ov.Years[1].Year)
	assert.Equal(t, 2, ov.Years[1].Count)
	require.NotNil(t, ov.Years[1].AverageRuntime)
	assert.InDelta(t, 110.0, *ov.Years[1].AverageRuntime, 1e-9)
}

func TestOverview_EmptyCache(t *testing.T) {
	svc := NewService(&stubStore{})

	ov, err := svc.Overview(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, ov.TotalMovies)
	assert.Nil(t, ov.AverageRating)
	assert.Empty(t, ov.Genres)
	assert.Empty(t, ov.Years)
}

func TestOverview_MoviesWithoutYearAreSkipped(t *testing.T) {
	store := &stubStore{movies: []*catalog.Movie{
		movie("tt1", 0, 100, 7.5, "Drama"),
	}}

	svc := NewService(store)
	ov, err := svc.Overview(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, ov.TotalMovies)
	assert.Empty(t, ov.Years)
}

func TestOverview_StoreFailure(t *testing.T) {
	dbErr := errors.New("database is locked")
	svc := NewService(&stubStore{err: dbErr})

	_, err := svc.Overview(context.Background())
	assert.ErrorIs(t, err, dbErr)
}
