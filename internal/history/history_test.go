package history

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"aiss/internal/format"
	"aiss/internal/format/movies"
	"aiss/internal/services"
)

func openTestStore(t *testing.T, keep int) *Store {
	t.Helper()
	store, err := OpenPath(context.Background(), filepath.Join(t.TempDir(), "history.db"), keep)
	if err != nil {
		t.Fatalf("OpenPath: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

// tick makes created_at strictly increasing so ordering is deterministic.
func tick(store *Store) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	n := 0
	store.now = func() time.Time {
		n++
		return base.Add(time.Duration(n) * time.Second)
	}
}

func saveEntry(t *testing.T, store *Store, query string, id format.ID) *Entry {
	t.Helper()
	result := format.ClassificationResult{ID: id, FormattedName: query}
	entry, err := store.Save(context.Background(), query, result, "", map[string]any{"title": query})
	if err != nil {
		t.Fatalf("Save(%q): %v", query, err)
	}
	return entry
}

func TestSaveAndGetRoundTrip(t *testing.T) {
	store := openTestStore(t, 0)
	ctx := context.Background()

	record := &movies.Horror{
		Base: movies.Base{
			Title:          "Hollow Pines",
			ReleaseYear:    2019,
			RuntimeMinutes: 104,
			Genres:         []string{"Horror", "Mystery"},
		},
		Subgenre:       "Folk horror",
		ThreatEntities: []string{"The Antlered Man"},
		FearMoments: []movies.FearMoment{
			{MomentName: "Bell Tower", TypeOfFear: "Dread", Payoff: "The bell rings alone"},
		},
	}
	payload, err := format.ToMap(record)
	if err != nil {
		t.Fatalf("ToMap: %v", err)
	}
	result := format.ClassificationResult{
		ID:             format.HorrorMovie,
		FormattedName:  "Hollow Pines (2019)",
		Description:    "a folk horror film",
		AdditionalInfo: []string{"set in Maine"},
	}

	saved, err := store.Save(ctx, "  hollow pines  ", result, "Wikipedia: a 2019 film.", payload)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if saved.ID == "" || saved.CreatedAt.IsZero() {
		t.Fatalf("expected id and timestamp, got %+v", saved)
	}

	got, err := store.Get(ctx, saved.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Query != "hollow pines" {
		t.Fatalf("query = %q, want trimmed", got.Query)
	}
	if diff := cmp.Diff(result, got.Classification); diff != "" {
		t.Fatalf("classification mismatch (-want +got):\n%s", diff)
	}
	if got.ContextHint != "Wikipedia: a 2019 film." {
		t.Fatalf("context hint = %q", got.ContextHint)
	}
	if !got.CreatedAt.Equal(saved.CreatedAt) {
		t.Fatalf("created_at = %v, want %v", got.CreatedAt, saved.CreatedAt)
	}

	inst, err := format.FromMap(movies.HorrorDescriptor, got.Payload)
	if err != nil {
		t.Fatalf("FromMap: %v", err)
	}
	if diff := cmp.Diff(record, inst, cmp.AllowUnexported(movies.Base{})); diff != "" {
		t.Fatalf("payload mismatch (-want +got):\n%s", diff)
	}
}

func TestSaveRequiresFormatID(t *testing.T) {
	store := openTestStore(t, 0)
	_, err := store.Save(context.Background(), "q", format.ClassificationResult{}, "", nil)
	if !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestGetByPrefix(t *testing.T) {
	store := openTestStore(t, 0)
	ctx := context.Background()
	entry := saveEntry(t, store, "Severance", format.Drama)

	got, err := store.Get(ctx, entry.ID[:8])
	if err != nil {
		t.Fatalf("Get prefix: %v", err)
	}
	if got.ID != entry.ID {
		t.Fatalf("got %s, want %s", got.ID, entry.ID)
	}

	if _, err := store.Get(ctx, "zzzzzzzz"); !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := store.Get(ctx, " "); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error for blank id, got %v", err)
	}
	if _, err := store.Get(ctx, "%"); !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected wildcard to be literal, got %v", err)
	}
}

func TestListNewestFirstWithFilter(t *testing.T) {
	store := openTestStore(t, 0)
	tick(store)
	ctx := context.Background()
	saveEntry(t, store, "first", format.Drama)
	saveEntry(t, store, "second", format.HorrorMovie)
	saveEntry(t, store, "third", format.Drama)

	all, err := store.List(ctx, ListOptions{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	var queries []string
	for _, s := range all {
		queries = append(queries, s.Query)
	}
	if diff := cmp.Diff([]string{"third", "second", "first"}, queries); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}

	dramas, err := store.List(ctx, ListOptions{FormatID: format.Drama, Limit: 1})
	if err != nil {
		t.Fatalf("List filtered: %v", err)
	}
	if len(dramas) != 1 || dramas[0].Query != "third" || dramas[0].FormatID != format.Drama {
		t.Fatalf("unexpected filtered list: %+v", dramas)
	}
	if len(dramas[0].ShortID()) != 8 {
		t.Fatalf("short id = %q", dramas[0].ShortID())
	}

	latest, err := store.Latest(ctx)
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if latest.Query != "third" {
		t.Fatalf("latest = %q", latest.Query)
	}
}

func TestKeepPrunesOldest(t *testing.T) {
	store := openTestStore(t, 2)
	tick(store)
	ctx := context.Background()
	saveEntry(t, store, "one", format.Drama)
	saveEntry(t, store, "two", format.Drama)
	saveEntry(t, store, "three", format.Drama)

	list, err := store.List(ctx, ListOptions{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 || list[0].Query != "three" || list[1].Query != "two" {
		t.Fatalf("unexpected entries after prune: %+v", list)
	}
}

func TestDeleteAndClear(t *testing.T) {
	store := openTestStore(t, 0)
	ctx := context.Background()
	a := saveEntry(t, store, "a", format.Drama)
	saveEntry(t, store, "b", format.Drama)

	if err := store.Delete(ctx, a.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := store.Delete(ctx, a.ID); !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
	removed, err := store.Clear(ctx)
	if err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if removed != 1 {
		t.Fatalf("cleared %d, want 1", removed)
	}
	if n, _ := store.Count(ctx); n != 0 {
		t.Fatalf("count = %d after clear", n)
	}
	if _, err := store.Latest(ctx); !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected not found on empty history, got %v", err)
	}
}

func TestSchemaMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	ctx := context.Background()
	store, err := OpenPath(ctx, path, 0)
	if err != nil {
		t.Fatalf("OpenPath: %v", err)
	}
	if _, err := store.db.ExecContext(ctx, "UPDATE schema_version SET version = ?", schemaVersion+1); err != nil {
		t.Fatalf("bump version: %v", err)
	}
	_ = store.Close()

	if _, err := OpenPath(ctx, path, 0); !errors.Is(err, ErrSchemaMismatch) {
		t.Fatalf("expected ErrSchemaMismatch, got %v", err)
	}
}
