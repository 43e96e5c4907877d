package logging

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
)

// fileTee sends records to the console handler and to the JSON log file.
// The log file is appended to across invocations, so every file line carries
// a run id. A failing console write never costs the file its copy.
type fileTee struct {
	console slog.Handler
	file    slog.Handler
}

func newFileTee(console, file slog.Handler, run string) slog.Handler {
	if file == nil {
		return console
	}
	if run == "" {
		run = uuid.NewString()
	}
	file = file.WithAttrs([]slog.Attr{slog.String(FieldRun, run)})
	if console == nil {
		return file
	}
	return &fileTee{console: console, file: file}
}

func (t *fileTee) Enabled(ctx context.Context, level slog.Level) bool {
	return t.console.Enabled(ctx, level) || t.file.Enabled(ctx, level)
}

func (t *fileTee) Handle(ctx context.Context, record slog.Record) error {
	var errs []error
	if t.console.Enabled(ctx, record.Level) {
		if err := t.console.Handle(ctx, record.Clone()); err != nil {
			errs = append(errs, err)
		}
	}
	if t.file.Enabled(ctx, record.Level) {
		if err := t.file.Handle(ctx, record); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (t *fileTee) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &fileTee{console: t.console.WithAttrs(attrs), file: t.file.WithAttrs(attrs)}
}

func (t *fileTee) WithGroup(name string) slog.Handler {
	return &fileTee{console: t.console.WithGroup(name), file: t.file.WithGroup(name)}
}
