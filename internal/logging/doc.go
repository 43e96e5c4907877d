// Package logging assembles structured slog loggers for the aiss CLI.
//
// Diagnostics go to stderr through a console or JSON handler so they never
// mix with the rendered panels on stdout. When file logging is enabled the
// same records are teed as JSON into the log directory. Context helpers tag
// lines with the dispatch step and correlation id, and WarnWithContext keeps
// warnings in the cause, impact and next-step shape.
package logging
