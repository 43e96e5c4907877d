// Package history keeps a local SQLite record of classified and rendered
// queries so they can be listed and rendered again without contacting the
// completion service.
//
// Payloads are the plain nested maps produced by format.ToMap, stored as
// MessagePack. The context hint is stored separately because it is not part of
// the payload.
package history
