// Package metadata provides cache synchronization and search orchestration
// over the external movie metadata provider.
package metadata

import (
	"context"

	"github.com/movieflix/movieflix/internal/catalog"
	"github.com/movieflix/movieflix/pkg/omdb"
)

//go:generate mockgen -destination=mocks/metadata.go -package=mocks github.com/movieflix/movieflix/internal/metadata Provider,Store

// Provider fetches raw records and ranked search pages from the remote
// metadata service.
type Provider interface {
	FetchByID(ctx context.Context, id string) (*omdb.RawMovie, error)
	Search(ctx context.Context, query string, page int) (*omdb.SearchPage, error)
}

// Store is the persistent keyed cache of canonical movie records.
type Store interface {
	GetMovie(ctx context.Context, id string) (*catalog.Movie, error)
	GetMovies(ctx context.Context, ids []string) (map[string]*catalog.Movie, error)
	UpsertMovie(ctx context.Context, m *catalog.Movie) error
	DeleteMovie(ctx context.Context, id string) (bool, error)
	ListIDs(ctx context.Context) ([]string, error)
	ListMovies(ctx context.Context) ([]*catalog.Movie, error)
}
