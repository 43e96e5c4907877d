package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"aiss/internal/config"
	"aiss/internal/format"
	"aiss/internal/services"
)

// Store manages history persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
	keep int
	now  func() time.Time
}

// Open initializes or connects to the history database configured in cfg.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}
	return OpenPath(context.Background(), cfg.HistoryPath(), cfg.History.Keep)
}

// OpenPath opens the database at path. keep bounds the number of stored
// entries after each save; 0 keeps everything.
func OpenPath(ctx context.Context, path string, keep int) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, services.Wrap(services.ErrConfiguration, "history", "open", "history path is empty", nil)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.ExecContext(ctx, pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path, keep: keep, now: time.Now}
	if err := store.initSchema(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path reports the database location.
func (s *Store) Path() string { return s.path }

// Save stores a new entry and returns it with its id and timestamp assigned.
func (s *Store) Save(ctx context.Context, query string, result format.ClassificationResult, hint string, payload map[string]any) (*Entry, error) {
	if result.ID == "" {
		return nil, services.Wrap(services.ErrValidation, "history", "save", "classification has no format id", nil)
	}
	blob, err := encodePayload(payload)
	if err != nil {
		return nil, err
	}
	notes, err := encodeNotes(result.AdditionalInfo)
	if err != nil {
		return nil, err
	}

	entry := &Entry{
		ID:             uuid.NewString(),
		CreatedAt:      s.now().UTC(),
		Query:          strings.TrimSpace(query),
		Classification: result,
		ContextHint:    strings.TrimSpace(hint),
		Payload:        payload,
	}
	_, err = s.db.ExecContext(
		ctx,
		`INSERT INTO entries (
            id, created_at, query, format_id, formatted_name, description,
            additional_info, context_hint, payload
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID,
		entry.CreatedAt.Format(time.RFC3339Nano),
		entry.Query,
		string(result.ID),
		nullableString(result.FormattedName),
		nullableString(result.Description),
		notes,
		nullableString(entry.ContextHint),
		blob,
	)
	if err != nil {
		return nil, fmt.Errorf("insert entry: %w", err)
	}
	if s.keep > 0 {
		if _, err := s.Prune(ctx, s.keep); err != nil {
			return entry, err
		}
	}
	return entry, nil
}

const entryColumns = "id, created_at, query, format_id, formatted_name, description, additional_info, context_hint, payload"

// Get fetches an entry by full id or by a unique id prefix.
func (s *Store) Get(ctx context.Context, idOrPrefix string) (*Entry, error) {
	idOrPrefix = strings.TrimSpace(idOrPrefix)
	if idOrPrefix == "" {
		return nil, services.Wrap(services.ErrValidation, "history", "get", "empty id", nil)
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+entryColumns+` FROM entries WHERE id = ? OR id LIKE ? ORDER BY created_at DESC LIMIT 2`,
		idOrPrefix, escapeLike(idOrPrefix)+"%",
	)
	if err != nil {
		return nil, fmt.Errorf("get entry: %w", err)
	}
	defer rows.Close()

	var found []*Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		if entry.ID == idOrPrefix {
			return entry, nil
		}
		found = append(found, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get entry: %w", err)
	}
	switch len(found) {
	case 0:
		return nil, services.Wrap(services.ErrNotFound, "history", "get", fmt.Sprintf("no entry %q", idOrPrefix), nil)
	case 1:
		return found[0], nil
	default:
		return nil, services.Wrap(services.ErrValidation, "history", "get", fmt.Sprintf("id prefix %q is ambiguous", idOrPrefix), nil)
	}
}

// Latest returns the most recent entry.
func (s *Store) Latest(ctx context.Context) (*Entry, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+entryColumns+` FROM entries ORDER BY created_at DESC LIMIT 1`)
	entry, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, services.Wrap(services.ErrNotFound, "history", "latest", "history is empty", nil)
	}
	if err != nil {
		return nil, fmt.Errorf("latest entry: %w", err)
	}
	return entry, nil
}

// List returns entry summaries, newest first.
func (s *Store) List(ctx context.Context, opts ListOptions) ([]Summary, error) {
	query := `SELECT id, created_at, query, format_id, formatted_name FROM entries`
	var args []any
	if opts.FormatID != "" {
		query += ` WHERE format_id = ?`
		args = append(args, string(opts.FormatID))
	}
	query += ` ORDER BY created_at DESC`
	if opts.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, opts.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var (
			summary    Summary
			createdRaw string
			formatID   string
			name       sql.NullString
		)
		if err := rows.Scan(&summary.ID, &createdRaw, &summary.Query, &formatID, &name); err != nil {
			return nil, fmt.Errorf("scan summary: %w", err)
		}
		summary.FormatID = format.ID(formatID)
		summary.FormattedName = name.String
		if created, err := time.Parse(time.RFC3339Nano, createdRaw); err == nil {
			summary.CreatedAt = created
		}
		out = append(out, summary)
	}
	return out, rows.Err()
}

// Delete removes one entry by id.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM entries WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return services.Wrap(services.ErrNotFound, "history", "delete", fmt.Sprintf("no entry %q", id), nil)
	}
	return nil
}

// Prune keeps the newest keep entries and returns how many were removed.
func (s *Store) Prune(ctx context.Context, keep int) (int64, error) {
	if keep < 0 {
		keep = 0
	}
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM entries WHERE id NOT IN (
            SELECT id FROM entries ORDER BY created_at DESC LIMIT ?
        )`, keep)
	if err != nil {
		return 0, fmt.Errorf("prune entries: %w", err)
	}
	return res.RowsAffected()
}

// Clear removes every entry.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM entries`)
	if err != nil {
		return 0, fmt.Errorf("clear entries: %w", err)
	}
	return res.RowsAffected()
}

// Count reports how many entries are stored.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM entries`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count entries: %w", err)
	}
	return n, nil
}

func scanEntry(scanner interface{ Scan(dest ...any) error }) (*Entry, error) {
	var (
		entry       Entry
		createdRaw  string
		formatID    string
		name        sql.NullString
		description sql.NullString
		notesBlob   []byte
		hint        sql.NullString
		payloadBlob []byte
	)
	if err := scanner.Scan(&entry.ID, &createdRaw, &entry.Query, &formatID, &name, &description, &notesBlob, &hint, &payloadBlob); err != nil {
		return nil, err
	}
	notes, err := decodeNotes(notesBlob)
	if err != nil {
		return nil, err
	}
	payload, err := decodePayload(payloadBlob)
	if err != nil {
		return nil, err
	}
	if created, err := time.Parse(time.RFC3339Nano, createdRaw); err == nil {
		entry.CreatedAt = created
	}
	entry.Classification = format.ClassificationResult{
		ID:             format.ID(formatID),
		FormattedName:  name.String,
		Description:    description.String,
		AdditionalInfo: notes,
	}
	entry.ContextHint = hint.String
	entry.Payload = payload
	return &entry, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func escapeLike(value string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(value)
}
