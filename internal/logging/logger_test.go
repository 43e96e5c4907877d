package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"aiss/internal/config"
	"aiss/internal/logging"
	"aiss/internal/services"
)

func TestConsoleLoggerWritesHeaderAndHighlights(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger = logging.NewComponentLogger(logger, "dispatch")
	ctx := services.WithStep(context.Background(), "fetch")
	logging.WithContext(ctx, logger).Info("record fetched",
		logging.String(logging.FieldFormatID, "horror_movie"),
		logging.Int("payload_bytes", 512),
	)

	out := buf.String()
	for _, want := range []string{"INFO [dispatch] fetch – record fetched", "- Format: horror_movie"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output, got %q", want, out)
		}
	}
	if strings.Contains(out, "payload_bytes") {
		t.Fatalf("non-highlight fields should be hidden at info level, got %q", out)
	}
	if strings.Contains(out, ".go:") {
		t.Fatalf("expected no caller information in info logs, got %q", out)
	}
}

func TestConsoleLoggerShowsAllFieldsAtDebug(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "debug", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Debug("prompt built", logging.Int("prompt_chars", 1200))

	out := buf.String()
	if !strings.Contains(out, "prompt_chars: 1200") {
		t.Fatalf("expected debug field, got %q", out)
	}
	if !strings.Contains(out, ".go:") {
		t.Fatalf("expected caller information at debug level, got %q", out)
	}
}

func TestLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "warn", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("hidden")
	logger.Warn("shown")
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestJSONLoggerKeys(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	ctx := services.WithRequestID(context.Background(), "req-1")
	logging.WithContext(ctx, logger).Info("classified")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decode json log: %v (%q)", err, buf.String())
	}
	if entry["msg"] != "classified" || entry["level"] != "info" {
		t.Fatalf("unexpected entry %v", entry)
	}
	if _, ok := entry["ts"]; !ok {
		t.Fatalf("expected ts key, got %v", entry)
	}
	if entry[logging.FieldCorrelationID] != "req-1" {
		t.Fatalf("expected correlation id, got %v", entry)
	}
}

func TestNewRejectsBadOptions(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
	if _, err := logging.New(logging.Options{Level: "loud"}); err == nil {
		t.Fatal("expected error for unsupported level")
	}
}

func TestWarnWithContextInjectsDefaults(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "warn", Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logging.WarnWithContext(logger, "context hint unavailable", "context_hint_failed",
		logging.Error(errors.New("boom")),
		logging.String(logging.FieldImpact, "record rendered without context"),
	)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decode json log: %v", err)
	}
	if entry[logging.FieldEventType] != "context_hint_failed" {
		t.Fatalf("missing event type: %v", entry)
	}
	if entry[logging.FieldErrorHint] != "check logs for details" {
		t.Fatalf("missing default hint: %v", entry)
	}
	if entry[logging.FieldImpact] != "record rendered without context" {
		t.Fatalf("impact overridden: %v", entry)
	}
}

func TestNewFromConfigTeesToFile(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.LogDir = filepath.Join(t.TempDir(), "logs")
	cfg.Logging.File = true
	cfg.Logging.Level = "error"

	var console bytes.Buffer
	logger, closeFn, err := logging.NewFromConfig(&cfg, &console)
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	logger.Info("file only")
	if err := closeFn(); err != nil {
		t.Fatalf("close: %v", err)
	}

	if console.Len() != 0 {
		t.Fatalf("info should not reach an error-level console, got %q", console.String())
	}
	content, err := os.ReadFile(cfg.LogFilePath())
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(content), `"msg":"file only"`) {
		t.Fatalf("expected record in log file, got %q", content)
	}
}

func TestNopLoggerDiscards(t *testing.T) {
	logger := logging.NewNop()
	if logger.Enabled(context.Background(), 12) {
		t.Fatal("nop logger should never be enabled")
	}
	logging.WarnWithContext(nil, "ignored", "noop")
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) { return 0, errors.New("terminal gone") }

func TestFileRecordsCarryRunID(t *testing.T) {
	var console, file bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Writer: &console, File: &file, Run: "run-42"})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("classified", logging.String("query", "Dune"))

	var entry map[string]any
	if err := json.Unmarshal(file.Bytes(), &entry); err != nil {
		t.Fatalf("decode file line %q: %v", file.String(), err)
	}
	if entry[logging.FieldRun] != "run-42" {
		t.Fatalf("expected run id on file record, got %v", entry)
	}
	if strings.Contains(console.String(), "run-42") {
		t.Fatalf("run id should stay out of the console, got %q", console.String())
	}
}

func TestFileTeeKeepsWritingWhenConsoleFails(t *testing.T) {
	var file bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Writer: brokenWriter{}, File: &file})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.With(logging.String(logging.FieldComponent, "dispatch")).Warn("provider slow")

	out := file.String()
	if !strings.Contains(out, `"msg":"provider slow"`) || !strings.Contains(out, `"component":"dispatch"`) {
		t.Fatalf("expected file copy despite console failure, got %q", out)
	}
	if !strings.Contains(out, `"run":"`) {
		t.Fatalf("expected a generated run id, got %q", out)
	}
}

func TestDebugFieldsUseConsoleClock(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "debug", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	at := time.Date(2026, 10, 17, 14, 5, 9, 0, time.Local)
	logger.Debug("raw response",
		logging.Any("received_at", at),
		logging.Duration("latency", 1234567*time.Microsecond),
		logging.String("payload", strings.Repeat("a", 400)),
	)

	out := buf.String()
	for _, want := range []string{"received_at: 14:05:09", "latency: 1.235s", "payload: " + strings.Repeat("a", 150)} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output, got %q", want, out)
		}
	}
	if strings.Contains(out, strings.Repeat("a", 200)) || !strings.Contains(out, "…") {
		t.Fatalf("expected truncated payload, got %q", out)
	}
}
