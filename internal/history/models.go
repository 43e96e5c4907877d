package history

import (
	"time"

	"aiss/internal/format"
)

// Entry is one stored query outcome.
type Entry struct {
	ID             string
	CreatedAt      time.Time
	Query          string
	Classification format.ClassificationResult
	ContextHint    string
	// Payload is the format.ToMap form of the fetched record.
	Payload map[string]any
}

// Summary is the listing view of an entry, without its payload.
type Summary struct {
	ID            string
	CreatedAt     time.Time
	Query         string
	FormatID      format.ID
	FormattedName string
}

// ShortID is the leading block of the entry id, enough to address it in the
// CLI.
func (s Summary) ShortID() string {
	if len(s.ID) > 8 {
		return s.ID[:8]
	}
	return s.ID
}

// ListOptions filters List.
type ListOptions struct {
	Limit    int
	FormatID format.ID
}
