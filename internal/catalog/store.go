package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
)

// Store provides SQLite-backed access to cached movie records.
// It is a dumb keyed map: staleness decisions live with the caller.
type Store struct {
	db *sql.DB
}

// NewStore creates a new catalog store.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

const movieColumns = `id, imdb_id, title, year, rated, released, runtime_minutes,
	genres, directors, writers, actors, countries, plot, awards, poster, ratings,
	metascore, imdb_rating, imdb_votes, media_type, dvd, box_office, production,
	website, total_seasons, last_fetched_at`

// GetMovie retrieves a movie by its external identifier.
// Returns ErrNotFound if the movie is not cached.
func (s *Store) GetMovie(ctx context.Context, id string) (*Movie, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+movieColumns+" FROM movies WHERE id = ?", id)

	m, err := scanMovie(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get movie %s: %w", id, err)
	}
	return m, nil
}

// GetMovies retrieves the subset of the given identifiers that exist,
// keyed by identifier.
func (s *Store) GetMovies(ctx context.Context, ids []string) (map[string]*Movie, error) {
	result := make(map[string]*Movie, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	placeholders := strings.Repeat("?,", len(ids)-1) + "?"
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT "+movieColumns+" FROM movies WHERE id IN ("+placeholders+")", args...)
	if err != nil {
		return nil, fmt.Errorf("get movies: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		m, err := scanMovie(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movie: %w", err)
		}
		result[m.ID] = m
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate movies: %w", err)
	}
	return result, nil
}

// UpsertMovie inserts the movie or replaces every field of an existing record
// with the same identifier.
func (s *Store) UpsertMovie(ctx context.Context, m *Movie) error {
	genres, err := marshalStrings(m.Genres)
	if err != nil {
		return fmt.Errorf("upsert movie %s: %w", m.ID, err)
	}
	directors, _ := marshalStrings(m.Directors)
	writers, _ := marshalStrings(m.Writers)
	actors, _ := marshalStrings(m.Actors)
	countries, _ := marshalStrings(m.Countries)

	ratings, err := json.Marshal(ratingsOrEmpty(m.Ratings))
	if err != nil {
		return fmt.Errorf("upsert movie %s: %w", m.ID, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO movies (id, imdb_id, title, year, rated, released, runtime_minutes,
			genres, directors, writers, actors, countries, plot, awards, poster, ratings,
			metascore, imdb_rating, imdb_votes, media_type, dvd, box_office, production,
			website, total_seasons, last_fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			imdb_id = excluded.imdb_id,
			title = excluded.title,
			year = excluded.year,
			rated = excluded.rated,
			released = excluded.released,
			runtime_minutes = excluded.runtime_minutes,
			genres = excluded.genres,
			directors = excluded.directors,
			writers = excluded.writers,
			actors = excluded.actors,
			countries = excluded.countries,
			plot = excluded.plot,
			awards = excluded.awards,
			poster = excluded.poster,
			ratings = excluded.ratings,
			metascore = excluded.metascore,
			imdb_rating = excluded.imdb_rating,
			imdb_votes = excluded.imdb_votes,
			media_type = excluded.media_type,
			dvd = excluded.dvd,
			box_office = excluded.box_office,
			production = excluded.production,
			website = excluded.website,
			total_seasons = excluded.total_seasons,
			last_fetched_at = excluded.last_fetched_at`,
		m.ID, m.IMDBID, m.Title, m.Year, m.Rated, m.Released, m.RuntimeMinutes,
		genres, directors, writers, actors, countries, m.Plot, m.Awards, m.Poster,
		string(ratings), m.Metascore, m.IMDBRating, m.IMDBVotes, m.MediaType,
		m.DVD, m.BoxOffice, m.Production, m.Website, m.TotalSeasons, m.LastFetchedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert movie %s: %w", m.ID, err)
	}
	return nil
}

// DeleteMovie removes a movie by identifier.
// Returns true if a record existed and was removed.
func (s *Store) DeleteMovie(ctx context.Context, id string) (bool, error) {
	result, err := s.db.ExecContext(ctx, "DELETE FROM movies WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("delete movie %s: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete movie %s: %w", id, err)
	}
	return affected > 0, nil
}

// ListIDs returns every cached identifier. Order carries no meaning; it is
// only used for bulk refresh.
func (s *Store) ListIDs(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id FROM movies ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("list ids: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ids: %w", err)
	}
	return ids, nil
}

// ListMovies returns every cached movie record.
func (s *Store) ListMovies(ctx context.Context) ([]*Movie, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+movieColumns+" FROM movies ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var movies []*Movie
	for rows.Next() {
		m, err := scanMovie(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movie: %w", err)
		}
		movies = append(movies, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate movies: %w", err)
	}
	return movies, nil
}

// Count returns the number of cached movies.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM movies").Scan(&n); err != nil {
		return 0, fmt.Errorf("count movies: %w", err)
	}
	return n, nil
}

func marshalStrings(values []string) (string, error) {
	if values == nil {
		values = []string{}
	}
	data, err := json.Marshal(values)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func ratingsOrEmpty(ratings []Rating) []Rating {
	if ratings == nil {
		return []Rating{}
	}
	return ratings
}
