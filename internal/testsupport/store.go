package testsupport

import (
	"context"
	"testing"

	"aiss/internal/config"
	"aiss/internal/format"
	"aiss/internal/history"
)

// MustOpenHistory opens a history.Store for tests and registers cleanup.
func MustOpenHistory(t testing.TB, cfg *config.Config) *history.Store {
	t.Helper()

	store, err := history.Open(cfg)
	if err != nil {
		t.Fatalf("history.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

// SaveEntry stores a record for inst classified as id.
func SaveEntry(t testing.TB, store *history.Store, query string, id format.ID, inst format.Instance) *history.Entry {
	t.Helper()

	payload, err := format.ToMap(inst)
	if err != nil {
		t.Fatalf("format.ToMap: %v", err)
	}
	result := format.ClassificationResult{ID: id, FormattedName: query}
	entry, err := store.Save(context.Background(), query, result, "", payload)
	if err != nil {
		t.Fatalf("store.Save: %v", err)
	}
	return entry
}
