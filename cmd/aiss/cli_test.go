package main

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"aiss/internal/format"
	"aiss/internal/services"
	"aiss/internal/testsupport"
)

func TestQueryRendersAndSavesHistory(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"query", "hollow", "pines"}, "")
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	requireOrder(t, out, "Model Type: horror_movie", "Hollow Pines (2019)", "The woods remember.", "Fear Moments", "Bell Tower")
	if got := env.llm.callCount(); got != 2 {
		t.Fatalf("expected classify and fetch calls, got %d", got)
	}

	out, _, err = runCLI(t, []string{"history", "list"}, "")
	if err != nil {
		t.Fatalf("history list: %v", err)
	}
	requireContains(t, out, "Hollow Pines (2019)")
	requireContains(t, out, "horror_movie")

	shown, _, err := runCLI(t, []string{"history", "show"}, "")
	if err != nil {
		t.Fatalf("history show: %v", err)
	}
	requireOrder(t, shown, "Model Type: horror_movie", "The woods remember.", "Bell Tower")
	if env.llm.callCount() != 2 {
		t.Fatalf("history show must not contact the service")
	}
}

func TestQueryReadsStdinFromRootCommand(t *testing.T) {
	setupCLITestEnv(t)

	out, _, err := runCLI(t, nil, "that folk horror film with the bell\n")
	if err != nil {
		t.Fatalf("root query: %v", err)
	}
	requireContains(t, out, "Model Type: horror_movie")
}

func TestQueryJSONWithoutHistory(t *testing.T) {
	setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"query", "--json", "--no-history", "hollow pines"}, "")
	if err != nil {
		t.Fatalf("query --json: %v", err)
	}
	var doc queryDocument
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	if doc.ID != "" || doc.CreatedAt != nil {
		t.Fatalf("expected no history id, got %+v", doc)
	}
	if doc.Classification.ID != format.HorrorMovie || doc.Record["title"] != "Hollow Pines" {
		t.Fatalf("unexpected document %+v", doc)
	}

	out, _, err = runCLI(t, []string{"history", "list"}, "")
	if err != nil {
		t.Fatalf("history list: %v", err)
	}
	requireContains(t, out, "History is empty")
}

func TestQueryRequiresAPIKey(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithoutAPIKey())

	_, _, err := runCLI(t, []string{"query", "hollow pines"}, "")
	if err == nil {
		t.Fatal("expected missing key error")
	}
	if !errors.Is(err, services.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
	requireContains(t, err.Error(), "OPENROUTER_API_KEY")
	if env.llm.callCount() != 0 {
		t.Fatal("no request should be sent without a key")
	}
}

func TestBatchKeepsInputOrderAndReportsFailures(t *testing.T) {
	setupCLITestEnv(t)

	input := "# favourites\nhollow pines\n\nunanswerable thing\nhollow pines again\n"
	out, stderr, err := runCLI(t, []string{"batch", "--concurrency", "2"}, input)
	if err == nil || !strings.Contains(err.Error(), "1 of 3 queries failed") {
		t.Fatalf("expected one failure, got %v", err)
	}
	requireContains(t, out, "Processed 2 of 3 queries")
	requireContains(t, stderr, "Query 2 failed (unanswerable thing)")
	if strings.Count(out, "Model Type: horror_movie") != 2 {
		t.Fatalf("expected two rendered records:\n%s", out)
	}

	listed, _, err := runCLI(t, []string{"history", "list", "--json"}, "")
	if err != nil {
		t.Fatalf("history list: %v", err)
	}
	var summaries []historySummaryDoc
	if err := json.Unmarshal([]byte(listed), &summaries); err != nil {
		t.Fatalf("decode history: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("expected 2 saved entries, got %d", len(summaries))
	}
}

func TestBatchRejectsBadConcurrency(t *testing.T) {
	setupCLITestEnv(t)
	if _, _, err := runCLI(t, []string{"batch", "--concurrency", "0"}, "hollow pines\n"); err == nil {
		t.Fatal("expected concurrency error")
	}
}

func TestFormatsListAndDescribe(t *testing.T) {
	setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"formats"}, "")
	if err != nil {
		t.Fatalf("formats: %v", err)
	}
	requireContains(t, out, "horror_movie")
	requireContains(t, out, "Horror Movie")
	requireContains(t, out, "mmo_online_game")

	out, _, err = runCLI(t, []string{"formats", "--family", "games", "--json"}, "")
	if err != nil {
		t.Fatalf("formats --family: %v", err)
	}
	var summaries []formatSummary
	if err := json.Unmarshal([]byte(out), &summaries); err != nil {
		t.Fatalf("decode formats: %v", err)
	}
	if len(summaries) != 8 {
		t.Fatalf("expected 8 game formats, got %d", len(summaries))
	}
	for _, s := range summaries {
		if s.Family != format.FamilyGames {
			t.Fatalf("unexpected family in %+v", s)
		}
	}

	out, _, err = runCLI(t, []string{"formats", "Horror_Movie"}, "")
	if err != nil {
		t.Fatalf("formats horror_movie: %v", err)
	}
	requireContains(t, out, "Record shape:")
	requireContains(t, out, `"fear_moments"`)

	if _, _, err := runCLI(t, []string{"formats", "podcast"}, ""); !errors.Is(err, format.ErrUnknownFormat) {
		t.Fatalf("expected unknown format, got %v", err)
	}
	if _, _, err := runCLI(t, []string{"formats", "--family", "books"}, ""); err == nil {
		t.Fatal("expected unknown family error")
	}
}

func TestRenderDocumentsAndBareRecords(t *testing.T) {
	env := setupCLITestEnv(t)
	dir := t.TempDir()

	out, _, err := runCLI(t, []string{"query", "--json", "hollow pines"}, "")
	if err != nil {
		t.Fatalf("query --json: %v", err)
	}
	docPath := filepath.Join(dir, "doc.json")
	if err := os.WriteFile(docPath, []byte(out), 0o644); err != nil {
		t.Fatalf("write doc: %v", err)
	}
	calls := env.llm.callCount()

	rendered, _, err := runCLI(t, []string{"render", docPath}, "")
	if err != nil {
		t.Fatalf("render doc: %v", err)
	}
	requireOrder(t, rendered, "Model Type: horror_movie", "Hollow Pines (2019)", "Bell Tower")

	bare := "title: Hollow Pines\ntagline: The woods remember.\nfear_moments:\n  - moment_name: Bell Tower\n    type_of_fear: Dread\n"
	rendered, _, err = runCLI(t, []string{"render", "-", "--format", "horror_movie", "--hint", "A 2019 film."}, bare)
	if err != nil {
		t.Fatalf("render bare yaml: %v", err)
	}
	requireOrder(t, rendered, "Model Type: horror_movie", "The woods remember.", "Context", "A 2019 film.", "Bell Tower")

	if _, _, err := runCLI(t, []string{"render", "-"}, bare); err == nil || !strings.Contains(err.Error(), "--format") {
		t.Fatalf("expected missing format error, got %v", err)
	}
	if _, _, err := runCLI(t, []string{"render", "-"}, ""); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error for empty input, got %v", err)
	}
	if env.llm.callCount() != calls {
		t.Fatal("render must not contact the service")
	}
}

func TestHistoryDeleteAndClear(t *testing.T) {
	setupCLITestEnv(t)

	for range 2 {
		if _, _, err := runCLI(t, []string{"query", "--json", "hollow pines"}, ""); err != nil {
			t.Fatalf("query: %v", err)
		}
	}
	listed, _, err := runCLI(t, []string{"history", "list", "--json"}, "")
	if err != nil {
		t.Fatalf("history list: %v", err)
	}
	var summaries []historySummaryDoc
	if err := json.Unmarshal([]byte(listed), &summaries); err != nil {
		t.Fatalf("decode history: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(summaries))
	}

	out, _, err := runCLI(t, []string{"history", "delete", summaries[0].ID[:8]}, "")
	if err != nil {
		t.Fatalf("history delete: %v", err)
	}
	requireContains(t, out, "Deleted "+summaries[0].ID)

	if _, _, err := runCLI(t, []string{"history", "show", summaries[0].ID}, ""); !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected deleted entry to be gone, got %v", err)
	}

	if _, _, err := runCLI(t, []string{"history", "clear"}, ""); err == nil {
		t.Fatal("expected clear to refuse without --yes")
	}
	out, _, err = runCLI(t, []string{"history", "clear", "--yes"}, "")
	if err != nil {
		t.Fatalf("history clear: %v", err)
	}
	requireContains(t, out, "Removed 1 records")
}

func TestHistoryDisabled(t *testing.T) {
	setupCLITestEnv(t, testsupport.WithoutHistory())

	if _, _, err := runCLI(t, []string{"query", "hollow pines"}, ""); err != nil {
		t.Fatalf("query without history: %v", err)
	}
	_, _, err := runCLI(t, []string{"history", "list"}, "")
	if !errors.Is(err, services.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

func TestGlobalFlagValidation(t *testing.T) {
	setupCLITestEnv(t)

	if _, _, err := runCLI(t, []string{"--color", "sometimes", "formats"}, ""); err != nil {
		t.Fatalf("formats skips configuration, got %v", err)
	}
	if _, _, err := runCLI(t, []string{"--color", "sometimes", "history", "list"}, ""); !errors.Is(err, services.ErrConfiguration) {
		t.Fatalf("expected bad color to fail, got %v", err)
	}
	if _, _, err := runCLI(t, []string{"--log-level", "loud", "history", "list"}, ""); !errors.Is(err, services.ErrConfiguration) {
		t.Fatalf("expected bad log level to fail, got %v", err)
	}
}
