// Package services defines shared utilities consumed by the dispatch layer and
// its external integrations (the completion service, Wikipedia, the history
// store).
//
// Key responsibilities:
//   - Structured error markers plus the Wrap helper so callers can classify a
//     failure with errors.Is and print a matching Hint.
//   - Context helpers that stamp request identifiers and pipeline steps for
//     logging.
package services
