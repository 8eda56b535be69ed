package metadata

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/movieflix/movieflix/internal/catalog"
	"github.com/movieflix/movieflix/internal/metadata/mocks"
	"github.com/movieflix/movieflix/pkg/omdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// testLogger returns a discard logger for tests.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestSynchronizer(store Store, provider Provider, ttl time.Duration) *Synchronizer {
	s := NewSynchronizer(store, provider, ttl, testLogger())
	s.now = func() time.Time { return testNow }
	return s
}

func freshMovie(id string) *catalog.Movie {
	return &catalog.Movie{ID: id, IMDBID: id, Title: "Cached", LastFetchedAt: testNow.Add(-time.Hour)}
}

func staleMovie(id string) *catalog.Movie {
	return &catalog.Movie{ID: id, IMDBID: id, Title: "Cached", LastFetchedAt: testNow.Add(-48 * time.Hour)}
}

func rawMovie(id, title string) *omdb.RawMovie {
	return &omdb.RawMovie{IMDBID: id, Title: title, Year: "2021", Type: "movie", Response: "True"}
}

func TestSynchronizer_EnsureFresh_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)

	store := mocks.NewMockStore(ctrl)
	provider := mocks.NewMockProvider(ctrl)
	// No provider expectations: a fresh hit must not touch the remote.

	cached := freshMovie("tt1")
	store.EXPECT().GetMovie(gomock.Any(), "tt1").Return(cached, nil)

	sync := newTestSynchronizer(store, provider, 24*time.Hour)
	got, err := sync.EnsureFresh(context.Background(), "tt1", false)

	require.NoError(t, err)
	assert.Same(t, cached, got, "cache hit must be returned unchanged")
	assert.Equal(t, testNow.Add(-time.Hour), got.LastFetchedAt, "cache hit must not advance last-fetched time")
}

func TestSynchronizer_EnsureFresh_CacheMissFetchesAndPersists(t *testing.T) {
	ctrl := gomock.NewController(t)

	store := mocks.NewMockStore(ctrl)
	provider := mocks.NewMockProvider(ctrl)

	store.EXPECT().GetMovie(gomock.Any(), "tt1").Return(nil, catalog.ErrNotFound)
	provider.EXPECT().FetchByID(gomock.Any(), "tt1").Return(rawMovie("tt1", "Dune"), nil)
	store.EXPECT().UpsertMovie(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, m *catalog.Movie) error {
			assert.Equal(t, "tt1", m.ID)
			assert.Equal(t, testNow, m.LastFetchedAt)
			return nil
		})

	sync := newTestSynchronizer(store, provider, 24*time.Hour)
	got, err := sync.EnsureFresh(context.Background(), "tt1", false)

	require.NoError(t, err)
	assert.Equal(t, "Dune", got.Title)
	assert.Equal(t, testNow, got.LastFetchedAt)
}

func TestSynchronizer_EnsureFresh_StaleRecordRefreshed(t *testing.T) {
	ctrl := gomock.NewController(t)

	store := mocks.NewMockStore(ctrl)
	provider := mocks.NewMockProvider(ctrl)

	store.EXPECT().GetMovie(gomock.Any(), "tt1").Return(staleMovie("tt1"), nil)
	provider.EXPECT().FetchByID(gomock.Any(), "tt1").Return(rawMovie("tt1", "Refetched"), nil)
	store.EXPECT().UpsertMovie(gomock.Any(), gomock.Any()).Return(nil)

	sync := newTestSynchronizer(store, provider, 24*time.Hour)
	got, err := sync.EnsureFresh(context.Background(), "tt1", false)

	require.NoError(t, err)
	assert.Equal(t, "Refetched", got.Title)
}

func TestSynchronizer_EnsureFresh_ForceBypassesFreshness(t *testing.T) {
	ctrl := gomock.NewController(t)

	store := mocks.NewMockStore(ctrl)
	provider := mocks.NewMockProvider(ctrl)

	store.EXPECT().GetMovie(gomock.Any(), "tt1").Return(freshMovie("tt1"), nil)
	provider.EXPECT().FetchByID(gomock.Any(), "tt1").Return(rawMovie("tt1", "Forced"), nil)
	store.EXPECT().UpsertMovie(gomock.Any(), gomock.Any()).Return(nil)

	sync := newTestSynchronizer(store, provider, 24*time.Hour)
	got, err := sync.EnsureFresh(context.Background(), "tt1", true)

	require.NoError(t, err)
	assert.Equal(t, "Forced", got.Title)
}

func TestSynchronizer_EnsureFresh_RemoteNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)

	store := mocks.NewMockStore(ctrl)
	provider := mocks.NewMockProvider(ctrl)

	// No UpsertMovie expectation: a failed fetch must not write anything.
	store.EXPECT().GetMovie(gomock.Any(), "tt404").Return(nil, catalog.ErrNotFound)
	provider.EXPECT().FetchByID(gomock.Any(), "tt404").Return(nil, omdb.ErrNotFound)

	sync := newTestSynchronizer(store, provider, 24*time.Hour)
	_, err := sync.EnsureFresh(context.Background(), "tt404", false)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSynchronizer_EnsureFresh_RemoteUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)

	store := mocks.NewMockStore(ctrl)
	provider := mocks.NewMockProvider(ctrl)

	store.EXPECT().GetMovie(gomock.Any(), "tt1").Return(nil, catalog.ErrNotFound)
	provider.EXPECT().FetchByID(gomock.Any(), "tt1").Return(nil, errors.New("connection timed out"))

	sync := newTestSynchronizer(store, provider, 24*time.Hour)
	_, err := sync.EnsureFresh(context.Background(), "tt1", false)

	assert.ErrorIs(t, err, ErrRemoteUnavailable)
	assert.NotErrorIs(t, err, ErrNotFound, "unavailable must stay distinguishable from absent")
}

func TestSynchronizer_EnsureFresh_StoreReadFailureIsFatal(t *testing.T) {
	ctrl := gomock.NewController(t)

	store := mocks.NewMockStore(ctrl)
	provider := mocks.NewMockProvider(ctrl)

	// A broken store must not be masked as a cache miss.
	dbErr := errors.New("database is locked")
	store.EXPECT().GetMovie(gomock.Any(), "tt1").Return(nil, dbErr)

	sync := newTestSynchronizer(store, provider, 24*time.Hour)
	_, err := sync.EnsureFresh(context.Background(), "tt1", false)

	assert.ErrorIs(t, err, dbErr)
}

func TestSynchronizer_EnsureFresh_UpsertFailurePropagates(t *testing.T) {
	ctrl := gomock.NewController(t)

	store := mocks.NewMockStore(ctrl)
	provider := mocks.NewMockProvider(ctrl)

	dbErr := errors.New("disk full")
	store.EXPECT().GetMovie(gomock.Any(), "tt1").Return(nil, catalog.ErrNotFound)
	provider.EXPECT().FetchByID(gomock.Any(), "tt1").Return(rawMovie("tt1", "Dune"), nil)
	store.EXPECT().UpsertMovie(gomock.Any(), gomock.Any()).Return(dbErr)

	sync := newTestSynchronizer(store, provider, 24*time.Hour)
	_, err := sync.EnsureFresh(context.Background(), "tt1", false)

	assert.ErrorIs(t, err, dbErr)
}

func TestSynchronizer_RefreshAll_SkipsFailures(t *testing.T) {
	ctrl := gomock.NewController(t)

	store := mocks.NewMockStore(ctrl)
	provider := mocks.NewMockProvider(ctrl)

	store.EXPECT().ListIDs(gomock.Any()).Return([]string{"tt1", "tt2", "tt3"}, nil)

	// Force refresh skips the freshness check but still reads the cache first.
	store.EXPECT().GetMovie(gomock.Any(), gomock.Any()).Return(nil, catalog.ErrNotFound).Times(3)
	provider.EXPECT().FetchByID(gomock.Any(), "tt1").Return(rawMovie("tt1", "One"), nil)
	provider.EXPECT().FetchByID(gomock.Any(), "tt2").Return(nil, errors.New("timeout"))
	provider.EXPECT().FetchByID(gomock.Any(), "tt3").Return(rawMovie("tt3", "Three"), nil)
	store.EXPECT().UpsertMovie(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	sync := newTestSynchronizer(store, provider, 24*time.Hour)
	refreshed, err := sync.RefreshAll(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, refreshed, "a skipped identifier must not count as refreshed")
}

func TestSynchronizer_RefreshAll_ListFailure(t *testing.T) {
	ctrl := gomock.NewController(t)

	store := mocks.NewMockStore(ctrl)
	provider := mocks.NewMockProvider(ctrl)

	dbErr := errors.New("database is locked")
	store.EXPECT().ListIDs(gomock.Any()).Return(nil, dbErr)

	sync := newTestSynchronizer(store, provider, 24*time.Hour)
	_, err := sync.RefreshAll(context.Background())

	assert.ErrorIs(t, err, dbErr)
}

func TestSynchronizer_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)

	store := mocks.NewMockStore(ctrl)
	provider := mocks.NewMockProvider(ctrl)

	store.EXPECT().DeleteMovie(gomock.Any(), "tt1").Return(true, nil)

	sync := newTestSynchronizer(store, provider, 24*time.Hour)
	assert.NoError(t, sync.Delete(context.Background(), "tt1"))
}

func TestSynchronizer_Delete_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)

	store := mocks.NewMockStore(ctrl)
	provider := mocks.NewMockProvider(ctrl)

	store.EXPECT().DeleteMovie(gomock.Any(), "tt1").Return(false, nil)

	sync := newTestSynchronizer(store, provider, 24*time.Hour)
	err := sync.Delete(context.Background(), "tt1")

	assert.ErrorIs(t, err, ErrNotFound)
}
