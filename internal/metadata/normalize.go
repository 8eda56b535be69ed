package metadata

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/movieflix/movieflix/internal/catalog"
	"github.com/movieflix/movieflix/pkg/omdb"
)

// releasedLayout is the date format OMDB uses, e.g. "22 Oct 2021".
const releasedLayout = "02 Jan 2006"

var firstIntPattern = regexp.MustCompile(`\d+`)

// Normalize converts a raw provider record into the canonical movie shape.
// It is pure: no I/O, no error paths. Every optional field the provider marks
// "N/A" becomes an explicit absence, never a zero or empty string, and the
// record's last-fetched timestamp is stamped with the given now. Only the
// identifier is assumed present.
func Normalize(raw *omdb.RawMovie, now time.Time) *catalog.Movie {
	return &catalog.Movie{
		// The identifier is mirrored into both key fields for compatibility
		// with the two historical field names.
		ID:             raw.IMDBID,
		IMDBID:         raw.IMDBID,
		Title:          raw.Title,
		Year:           parseInt(raw.Year),
		Rated:          optString(raw.Rated),
		Released:       parseDate(raw.Released),
		RuntimeMinutes: parseRuntime(raw.Runtime),
		Genres:         splitList(raw.Genre),
		Directors:      splitList(raw.Director),
		Writers:        splitList(raw.Writer),
		Actors:         splitList(raw.Actors),
		Countries:      splitList(raw.Country),
		Plot:           optString(raw.Plot),
		Awards:         optString(raw.Awards),
		Poster:         optString(raw.Poster),
		Ratings:        normalizeRatings(raw.Ratings),
		Metascore:      parseFloat(raw.Metascore),
		IMDBRating:     parseFloat(raw.IMDBRating),
		IMDBVotes:      parseInt(raw.IMDBVotes),
		MediaType:      raw.Type,
		DVD:            parseDate(raw.DVD),
		BoxOffice:      optString(raw.BoxOffice),
		Production:     optString(raw.Production),
		Website:        optString(raw.Website),
		TotalSeasons:   parseInt(raw.TotalSeasons),
		LastFetchedAt:  now,
	}
}

// optString maps the provider's "N/A" sentinel (and emptiness) to absence.
func optString(value string) *string {
	if value == "" || value == omdb.NotAvailable {
		return nil
	}
	return &value
}

// splitList splits a comma-delimited provider list, trimming entries and
// dropping empty ones. Absent input yields an empty list.
func splitList(value string) []string {
	if value == "" || value == omdb.NotAvailable {
		return []string{}
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// parseRuntime extracts the first embedded integer from a runtime string
// like "155 min".
func parseRuntime(value string) *int {
	if value == "" || value == omdb.NotAvailable {
		return nil
	}
	match := firstIntPattern.FindString(value)
	if match == "" {
		return nil
	}
	minutes, err := strconv.Atoi(match)
	if err != nil {
		return nil
	}
	return &minutes
}

func parseDate(value string) *time.Time {
	if value == "" || value == omdb.NotAvailable {
		return nil
	}
	date, err := time.Parse(releasedLayout, value)
	if err != nil {
		return nil
	}
	return &date
}

// parseInt parses an integer after stripping thousands separators.
func parseInt(value string) *int {
	if value == "" || value == omdb.NotAvailable {
		return nil
	}
	n, err := strconv.Atoi(strings.ReplaceAll(value, ",", ""))
	if err != nil {
		return nil
	}
	return &n
}

// parseFloat parses a number after stripping thousands separators.
func parseFloat(value string) *float64 {
	if value == "" || value == omdb.NotAvailable {
		return nil
	}
	f, err := strconv.ParseFloat(strings.ReplaceAll(value, ",", ""), 64)
	if err != nil {
		return nil
	}
	return &f
}

func normalizeRatings(ratings []omdb.RawRating) []catalog.Rating {
	result := make([]catalog.Rating, 0, len(ratings))
	for _, r := range ratings {
		result = append(result, catalog.Rating{Source: r.Source, Value: r.Value})
	}
	return result
}
