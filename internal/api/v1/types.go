package v1

import (
	"time"

	"github.com/movieflix/movieflix/internal/catalog"
)

// Request bodies

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Response bodies

type loginResponse struct {
	Token string `json:"token"`
}

type meResponse struct {
	Email string `json:"email"`
	Admin bool   `json:"admin"`
}

type movieResponse struct {
	ID             string           `json:"id"`
	IMDBID         string           `json:"imdbId"`
	Title          string           `json:"title"`
	Year           *int             `json:"year,omitempty"`
	Rated          *string          `json:"rated,omitempty"`
	Released       *time.Time       `json:"released,omitempty"`
	RuntimeMinutes *int             `json:"runtimeMinutes,omitempty"`
	Genres         []string         `json:"genres"`
	Directors      []string         `json:"directors"`
	Writers        []string         `json:"writers"`
	Actors         []string         `json:"actors"`
	Countries      []string         `json:"countries"`
	Plot           *string          `json:"plot,omitempty"`
	Awards         *string          `json:"awards,omitempty"`
	Poster         *string          `json:"poster,omitempty"`
	Ratings        []catalog.Rating `json:"ratings"`
	Metascore      *float64         `json:"metascore,omitempty"`
	IMDBRating     *float64         `json:"imdbRating,omitempty"`
	IMDBVotes      *int             `json:"imdbVotes,omitempty"`
	MediaType      string           `json:"mediaType"`
	DVD            *time.Time       `json:"dvd,omitempty"`
	BoxOffice      *string          `json:"boxOffice,omitempty"`
	Production     *string          `json:"production,omitempty"`
	Website        *string          `json:"website,omitempty"`
	TotalSeasons   *int             `json:"totalSeasons,omitempty"`
	LastFetchedAt  time.Time        `json:"lastFetchedAt"`
}

type searchResponse struct {
	Items        []movieResponse `json:"items"`
	Page         int             `json:"page"`
	Limit        int             `json:"limit"`
	Total        int             `json:"total"`
	TotalPages   int             `json:"totalPages"`
	TotalResults int             `json:"totalResults"`
}

type cachedSearchResponse struct {
	Items []movieResponse `json:"items"`
	Total int             `json:"total"`
}

type refreshResponse struct {
	Refreshed int `json:"refreshed"`
}

type statusResponse struct {
	Status       string `json:"status"`
	Version      string `json:"version"`
	CachedMovies int    `json:"cachedMovies"`
}

func movieToResponse(m *catalog.Movie) movieResponse {
	return movieResponse{
		ID:             m.ID,
		IMDBID:         m.IMDBID,
		Title:          m.Title,
		Year:           m.Year,
		Rated:          m.Rated,
		Released:       m.Released,
		RuntimeMinutes: m.RuntimeMinutes,
		Genres:         emptyIfNil(m.Genres),
		Directors:      emptyIfNil(m.Directors),
		Writers:        emptyIfNil(m.Writers),
		Actors:         emptyIfNil(m.Actors),
		Countries:      emptyIfNil(m.Countries),
		Plot:           m.Plot,
		Awards:         m.Awards,
		Poster:         m.Poster,
		Ratings:        ratingsOrEmpty(m.Ratings),
		Metascore:      m.Metascore,
		IMDBRating:     m.IMDBRating,
		IMDBVotes:      m.IMDBVotes,
		MediaType:      m.MediaType,
		DVD:            m.DVD,
		BoxOffice:      m.BoxOffice,
		Production:     m.Production,
		Website:        m.Website,
		TotalSeasons:   m.TotalSeasons,
		LastFetchedAt:  m.LastFetchedAt,
	}
}

func moviesToResponses(movies []*catalog.Movie) []movieResponse {
	out := make([]movieResponse, len(movies))
	for i, m := range movies {
		out[i] = movieToResponse(m)
	}
	return out
}

// emptyIfNil keeps list fields as [] in JSON rather than null.
func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func ratingsOrEmpty(r []catalog.Rating) []catalog.Rating {
	if r == nil {
		return []catalog.Rating{}
	}
	return r
}
