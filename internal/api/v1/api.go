// Package v1 implements the native REST API.
package v1

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/movieflix/movieflix/internal/auth"
	"github.com/movieflix/movieflix/internal/metadata"
	"github.com/movieflix/movieflix/internal/stats"
)

// Server is the v1 API server.
type Server struct {
	searcher *metadata.Searcher
	sync     *metadata.Synchronizer
	stats    *stats.Service
	auth     *auth.Service
	version  string
	log      *slog.Logger
}

// New creates a new v1 API server.
func New(searcher *metadata.Searcher, sync *metadata.Synchronizer, statsSvc *stats.Service, authSvc *auth.Service, version string, log *slog.Logger) *Server {
	return &Server{
		searcher: searcher,
		sync:     sync,
		stats:    statsSvc,
		auth:     authSvc,
		version:  version,
		log:      log,
	}
}

// RegisterRoutes registers API routes on the given mux.
func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	// Auth
	mux.HandleFunc("POST /api/v1/auth/login", s.login)
	mux.HandleFunc("GET /api/v1/auth/me", s.requireAuth(s.me))

	// Movies
	mux.HandleFunc("GET /api/v1/movies", s.searchMovies)
	mux.HandleFunc("GET /api/v1/movies/cached", s.searchCached)
	mux.HandleFunc("GET /api/v1/movies/{id}", s.getMovie)

	// Stats
	mux.HandleFunc("GET /api/v1/stats", s.requireAuth(s.getStats))

	// Admin
	mux.HandleFunc("POST /api/v1/admin/cache/refresh", s.requireAdmin(s.refreshCache))
	mux.HandleFunc("DELETE /api/v1/admin/movies/{id}", s.requireAdmin(s.deleteMovie))

	// System
	mux.HandleFunc("GET /api/v1/status", s.getStatus)
}

// Error response
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(w http.ResponseWriter, code int, errCode, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: message, Code: errCode})
}

func writeJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(data)
}

// queryInt extracts an optional integer from query string.
func queryInt(r *http.Request, name string, defaultVal int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return i
}

// Handlers

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}

	token, err := s.auth.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password")
			return
		}
		writeError(w, http.StatusInternalServerError, "AUTH_ERROR", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{Token: token})
}

func (s *Server) me(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	writeJSON(w, http.StatusOK, meResponse{Email: claims.Email, Admin: claims.Admin})
}

func (s *Server) searchMovies(w http.ResponseWriter, r *http.Request) {
	params := metadata.Params{
		Query: r.URL.Query().Get("q"),
		Page:  queryInt(r, "page", 1),
		Limit: queryInt(r, "limit", 10),
	}
	params.Sort = parseSort(r.URL.Query().Get("sort"))
	params.Filters = parseFilters(r)

	res, err := s.searcher.Search(r.Context(), params)
	if err != nil {
		writeSearchError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, searchResponse{
		Items:        moviesToResponses(res.Movies),
		Page:         res.Page,
		Limit:        res.Limit,
		Total:        res.Total,
		TotalPages:   res.TotalPages,
		TotalResults: res.TotalResults,
	})
}

func (s *Server) searchCached(w http.ResponseWriter, r *http.Request) {
	movies, err := s.searcher.SearchCached(r.Context(), r.URL.Query().Get("q"), queryInt(r, "limit", 10))
	if err != nil {
		writeSearchError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, cachedSearchResponse{
		Items: moviesToResponses(movies),
		Total: len(movies),
	})
}

func (s *Server) getMovie(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	movie, err := s.sync.GetMovie(r.Context(), id)
	if err != nil {
		if errors.Is(err, metadata.ErrNotFound) {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Movie not found")
			return
		}
		if errors.Is(err, metadata.ErrRemoteUnavailable) {
			writeError(w, http.StatusBadGateway, "PROVIDER_UNAVAILABLE", "Metadata provider unavailable")
			return
		}
		writeError(w, http.StatusInternalServerError, "DB_ERROR", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, movieToResponse(movie))
}

func (s *Server) getStats(w http.ResponseWriter, r *http.Request) {
	overview, err := s.stats.Overview(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "DB_ERROR", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, overview)
}

func (s *Server) refreshCache(w http.ResponseWriter, r *http.Request) {
	refreshed, err := s.sync.RefreshAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "DB_ERROR", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, refreshResponse{Refreshed: refreshed})
}

func (s *Server) deleteMovie(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := s.sync.Delete(r.Context(), id); err != nil {
		if errors.Is(err, metadata.ErrNotFound) {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Movie not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "DB_ERROR", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) getStatus(w http.ResponseWriter, r *http.Request) {
	overview, err := s.stats.Overview(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "DB_ERROR", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, statusResponse{
		Status:       "ok",
		Version:      s.version,
		CachedMovies: overview.TotalMovies,
	})
}

func writeSearchError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, metadata.ErrEmptyQuery):
		writeError(w, http.StatusBadRequest, "EMPTY_QUERY", "Query parameter q is required")
	case errors.Is(err, metadata.ErrNotFound):
		writeError(w, http.StatusNotFound, "NOT_FOUND", "No movies matched the query")
	case errors.Is(err, metadata.ErrRemoteUnavailable):
		writeError(w, http.StatusBadGateway, "PROVIDER_UNAVAILABLE", "Metadata provider unavailable")
	default:
		writeError(w, http.StatusInternalServerError, "DB_ERROR", err.Error())
	}
}

// parseSort parses "field" or "field:order". Unknown fields are ignored.
func parseSort(raw string) *metadata.Sort {
	if raw == "" {
		return nil
	}

	field, order := raw, "desc"
	if i := strings.IndexByte(raw, ':'); i >= 0 {
		field, order = raw[:i], raw[i+1:]
	}

	switch field {
	case "title":
		field = metadata.SortTitle
	case "year":
		field = metadata.SortYear
	case "runtime", "runtimeMinutes":
		field = metadata.SortRuntime
	case "rating", "imdbRating":
		field = metadata.SortRating
	default:
		return nil
	}

	if order != "asc" {
		order = "desc"
	}
	return &metadata.Sort{Field: field, Order: order}
}

// parseFilters reads genre= and year= as comma-separated lists, plus the
// generic filter=key:v1,v2 form. Repeated parameters accumulate.
func parseFilters(r *http.Request) metadata.Filters {
	var f metadata.Filters
	q := r.URL.Query()

	for _, raw := range q["genre"] {
		f.Genres = append(f.Genres, splitCSV(raw)...)
	}
	for _, raw := range q["year"] {
		f.Years = append(f.Years, splitCSV(raw)...)
	}

	for _, raw := range q["filter"] {
		key, vals, ok := strings.Cut(raw, ":")
		if !ok {
			continue
		}
		switch key {
		case "genre":
			f.Genres = append(f.Genres, splitCSV(vals)...)
		case "year":
			f.Years = append(f.Years, splitCSV(vals)...)
		}
	}

	return f
}

func splitCSV(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
