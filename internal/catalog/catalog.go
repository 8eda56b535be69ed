// Package catalog manages the local cache of movie records.
package catalog

import (
	"time"
)

// Rating is a (source, value) pair as reported by the metadata provider.
type Rating struct {
	Source string `json:"source"`
	Value  string `json:"value"`
}

// Movie is the canonical cached movie record, keyed by its external identifier.
// Optional fields are pointers so that "unavailable" stays distinguishable from
// zero values.
type Movie struct {
	ID             string
	IMDBID         string
	Title          string
	Year           *int
	Rated          *string
	Released       *time.Time
	RuntimeMinutes *int
	Genres         []string
	Directors      []string
	Writers        []string
	Actors         []string
	Countries      []string
	Plot           *string
	Awards         *string
	Poster         *string
	Ratings        []Rating
	Metascore      *float64
	IMDBRating     *float64
	IMDBVotes      *int
	MediaType      string
	DVD            *time.Time
	BoxOffice      *string
	Production     *string
	Website        *string
	TotalSeasons   *int

	// LastFetchedAt is set every time the record is written from a remote
	// fetch, never by a cache read.
	LastFetchedAt time.Time
}
