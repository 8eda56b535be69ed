package metadata

import (
	"errors"
	"fmt"

	"github.com/movieflix/movieflix/pkg/omdb"
)

var (
	// ErrNotFound indicates the identifier or query has no corresponding
	// data, locally or remotely.
	ErrNotFound = errors.New("movie not found")

	// ErrEmptyQuery indicates a search was requested without a query.
	ErrEmptyQuery = errors.New("search query is required")

	// ErrRemoteUnavailable indicates the provider could not answer: timeout,
	// transport failure, malformed response, or missing credential. Distinct
	// from ErrNotFound so callers can tell "definitely absent" from "could
	// not determine".
	ErrRemoteUnavailable = errors.New("metadata provider unavailable")
)

// mapProviderErr converts provider failures into the package's error taxonomy.
func mapProviderErr(err error) error {
	if errors.Is(err, omdb.ErrNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("%w: %v", ErrRemoteUnavailable, err)
}
