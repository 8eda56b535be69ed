package catalog

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// rowScanner abstracts *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanMovie(row rowScanner) (*Movie, error) {
	var (
		m            Movie
		year         sql.NullInt64
		rated        sql.NullString
		released     sql.NullTime
		runtime      sql.NullInt64
		genres       string
		directors    string
		writers      string
		actors       string
		countries    string
		plot         sql.NullString
		awards       sql.NullString
		poster       sql.NullString
		ratings      string
		metascore    sql.NullFloat64
		imdbRating   sql.NullFloat64
		imdbVotes    sql.NullInt64
		dvd          sql.NullTime
		boxOffice    sql.NullString
		production   sql.NullString
		website      sql.NullString
		totalSeasons sql.NullInt64
	)

	err := row.Scan(&m.ID, &m.IMDBID, &m.Title, &year, &rated, &released, &runtime,
		&genres, &directors, &writers, &actors, &countries, &plot, &awards, &poster,
		&ratings, &metascore, &imdbRating, &imdbVotes, &m.MediaType, &dvd, &boxOffice,
		&production, &website, &totalSeasons, &m.LastFetchedAt)
	if err != nil {
		return nil, err
	}

	m.Year = nullInt(year)
	m.Rated = nullString(rated)
	m.Released = nullTime(released)
	m.RuntimeMinutes = nullInt(runtime)
	m.Plot = nullString(plot)
	m.Awards = nullString(awards)
	m.Poster = nullString(poster)
	m.Metascore = nullFloat(metascore)
	m.IMDBRating = nullFloat(imdbRating)
	m.IMDBVotes = nullInt(imdbVotes)
	m.DVD = nullTime(dvd)
	m.BoxOffice = nullString(boxOffice)
	m.Production = nullString(production)
	m.Website = nullString(website)
	m.TotalSeasons = nullInt(totalSeasons)

	if err := json.Unmarshal([]byte(genres), &m.Genres); err != nil {
		return nil, fmt.Errorf("decode genres: %w", err)
	}
	if err := json.Unmarshal([]byte(directors), &m.Directors); err != nil {
		return nil, fmt.Errorf("decode directors: %w", err)
	}
	if err := json.Unmarshal([]byte(writers), &m.Writers); err != nil {
		return nil, fmt.Errorf("decode writers: %w", err)
	}
	if err := json.Unmarshal([]byte(actors), &m.Actors); err != nil {
		return nil, fmt.Errorf("decode actors: %w", err)
	}
	if err := json.Unmarshal([]byte(countries), &m.Countries); err != nil {
		return nil, fmt.Errorf("decode countries: %w", err)
	}
	if err := json.Unmarshal([]byte(ratings), &m.Ratings); err != nil {
		return nil, fmt.Errorf("decode ratings: %w", err)
	}

	return &m, nil
}

func nullInt(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}

func nullFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	return &v.Float64
}

func nullString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	return &v.String
}

func nullTime(v sql.NullTime) *time.Time {
	if !v.Valid {
		return nil
	}
	return &v.Time
}
