package catalog

import (
	"context"
	"errors"
	"testing"
	"time"
)

func sampleMovie(id string) *Movie {
	return &Movie{
		ID:             id,
		IMDBID:         id,
		Title:          "Dune",
		Year:           ptr(2021),
		Rated:          ptr("PG-13"),
		Released:       ptr(time.Date(2021, 10, 22, 0, 0, 0, 0, time.UTC)),
		RuntimeMinutes: ptr(155),
		Genres:         []string{"Sci-Fi", "Adventure"},
		Directors:      []string{"Denis Villeneuve"},
		Writers:        []string{"Jon Spaihts", "Denis Villeneuve"},
		Actors:         []string{"Timothée Chalamet", "Rebecca Ferguson"},
		Countries:      []string{"United States", "Canada"},
		Plot:           ptr("A noble family becomes embroiled in a war."),
		Poster:         ptr("https://example.com/dune.jpg"),
		Ratings: []Rating{
			{Source: "Internet Movie Database", Value: "8.0/10"},
			{Source: "Metacritic", Value: "74/100"},
		},
		Metascore:     ptr(74.0),
		IMDBRating:    ptr(8.0),
		IMDBVotes:     ptr(700000),
		MediaType:     "movie",
		LastFetchedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestStore_UpsertAndGet(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)
	ctx := context.Background()

	want := sampleMovie("tt1160419")
	if err := store.UpsertMovie(ctx, want); err != nil {
		t.Fatalf("UpsertMovie: %v", err)
	}

	got, err := store.GetMovie(ctx, "tt1160419")
	if err != nil {
		t.Fatalf("GetMovie: %v", err)
	}

	if got.Title != want.Title {
		t.Errorf("Title = %q, want %q", got.Title, want.Title)
	}
	if got.Year == nil || *got.Year != 2021 {
		t.Errorf("Year = %v, want 2021", got.Year)
	}
	if len(got.Genres) != 2 || got.Genres[0] != "Sci-Fi" || got.Genres[1] != "Adventure" {
		t.Errorf("Genres = %v", got.Genres)
	}
	if len(got.Ratings) != 2 || got.Ratings[0].Source != "Internet Movie Database" {
		t.Errorf("Ratings = %v", got.Ratings)
	}
	if got.IMDBRating == nil || *got.IMDBRating != 8.0 {
		t.Errorf("IMDBRating = %v, want 8.0", got.IMDBRating)
	}
	if !got.LastFetchedAt.Equal(want.LastFetchedAt) {
		t.Errorf("LastFetchedAt = %v, want %v", got.LastFetchedAt, want.LastFetchedAt)
	}
}

func TestStore_Get_AbsentOptionalFields(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)
	ctx := context.Background()

	m := &Movie{
		ID:            "tt0000001",
		IMDBID:        "tt0000001",
		Title:         "Bare Minimum",
		MediaType:     "movie",
		LastFetchedAt: time.Now().UTC(),
	}
	if err := store.UpsertMovie(ctx, m); err != nil {
		t.Fatalf("UpsertMovie: %v", err)
	}

	got, err := store.GetMovie(ctx, "tt0000001")
	if err != nil {
		t.Fatalf("GetMovie: %v", err)
	}

	if got.Year != nil {
		t.Errorf("Year = %v, want nil", got.Year)
	}
	if got.RuntimeMinutes != nil {
		t.Errorf("RuntimeMinutes = %v, want nil", got.RuntimeMinutes)
	}
	if got.Released != nil {
		t.Errorf("Released = %v, want nil", got.Released)
	}
	if got.Plot != nil {
		t.Errorf("Plot = %v, want nil", got.Plot)
	}
	if len(got.Genres) != 0 {
		t.Errorf("Genres = %v, want empty", got.Genres)
	}
	if len(got.Ratings) != 0 {
		t.Errorf("Ratings = %v, want empty", got.Ratings)
	}
}

func TestStore_Upsert_ReplacesAllFields(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)
	ctx := context.Background()

	first := sampleMovie("tt1160419")
	if err := store.UpsertMovie(ctx, first); err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	second := sampleMovie("tt1160419")
	second.Title = "Dune: Part One"
	second.Genres = []string{"Drama"}
	second.Plot = nil
	second.LastFetchedAt = first.LastFetchedAt.Add(time.Hour)
	if err := store.UpsertMovie(ctx, second); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	ids, err := store.ListIDs(ctx)
	if err != nil {
		t.Fatalf("ListIDs: %v", err)
	}
	if len(ids) != 1 {
		t.Fatalf("want exactly one record after double upsert, got %d", len(ids))
	}

	got, err := store.GetMovie(ctx, "tt1160419")
	if err != nil {
		t.Fatalf("GetMovie: %v", err)
	}
	if got.Title != "Dune: Part One" {
		t.Errorf("Title = %q, want replaced title", got.Title)
	}
	if len(got.Genres) != 1 || got.Genres[0] != "Drama" {
		t.Errorf("Genres = %v, want [Drama]", got.Genres)
	}
	if got.Plot != nil {
		t.Errorf("Plot = %v, want nil after replacement", got.Plot)
	}
	if !got.LastFetchedAt.After(first.LastFetchedAt) {
		t.Errorf("LastFetchedAt = %v, want after %v", got.LastFetchedAt, first.LastFetchedAt)
	}
}

func TestStore_GetMovie_NotFound(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)

	_, err := store.GetMovie(context.Background(), "tt9999999")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestStore_GetMovies(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)
	ctx := context.Background()

	for _, id := range []string{"tt0000001", "tt0000002", "tt0000003"} {
		m := sampleMovie(id)
		if err := store.UpsertMovie(ctx, m); err != nil {
			t.Fatalf("UpsertMovie(%s): %v", id, err)
		}
	}

	got, err := store.GetMovies(ctx, []string{"tt0000002", "tt0000003", "tt7777777"})
	if err != nil {
		t.Fatalf("GetMovies: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if _, ok := got["tt0000002"]; !ok {
		t.Error("missing tt0000002")
	}
	if _, ok := got["tt7777777"]; ok {
		t.Error("tt7777777 should not be present")
	}
}

func TestStore_GetMovies_Empty(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)

	got, err := store.GetMovies(context.Background(), nil)
	if err != nil {
		t.Fatalf("GetMovies: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}

func TestStore_DeleteMovie(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)
	ctx := context.Background()

	if err := store.UpsertMovie(ctx, sampleMovie("tt0000001")); err != nil {
		t.Fatalf("UpsertMovie: %v", err)
	}

	removed, err := store.DeleteMovie(ctx, "tt0000001")
	if err != nil {
		t.Fatalf("DeleteMovie: %v", err)
	}
	if !removed {
		t.Error("removed = false, want true")
	}

	if _, err := store.GetMovie(ctx, "tt0000001"); !errors.Is(err, ErrNotFound) {
		t.Errorf("after delete, err = %v, want ErrNotFound", err)
	}

	removed, err = store.DeleteMovie(ctx, "tt0000001")
	if err != nil {
		t.Fatalf("DeleteMovie(again): %v", err)
	}
	if removed {
		t.Error("removed = true for absent record, want false")
	}
}

func TestStore_ListIDsAndCount(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)
	ctx := context.Background()

	ids, err := store.ListIDs(ctx)
	if err != nil {
		t.Fatalf("ListIDs: %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("ids = %v, want empty", ids)
	}

	for _, id := range []string{"tt0000002", "tt0000001"} {
		if err := store.UpsertMovie(ctx, sampleMovie(id)); err != nil {
			t.Fatalf("UpsertMovie(%s): %v", id, err)
		}
	}

	ids, err = store.ListIDs(ctx)
	if err != nil {
		t.Fatalf("ListIDs: %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("len(ids) = %d, want 2", len(ids))
	}

	n, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 2 {
		t.Errorf("Count = %d, want 2", n)
	}
}
