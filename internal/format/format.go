// Package format defines the closed set of content formats, the descriptor
// each variant registers, and the conversions shared by all of them.
//
// Concrete variants live in the shows, movies and games subpackages. Each one
// is a plain struct whose json tags define its wire shape and whose methods
// implement render.Format.
package format

import (
	"reflect"
	"strings"

	"aiss/internal/render"
)

// Instance is a populated record of one format.
type Instance interface {
	render.Format
	// SetContextHint attaches display-only text that is not part of the
	// structured payload.
	SetContextHint(hint string)
}

// Descriptor carries everything needed to brief the completion service about
// one format and to construct empty instances of it.
type Descriptor struct {
	ID          ID
	Description string
	KeyTrait    string
	// Instructions is the system prompt used when fetching a record.
	Instructions string
	// PromptTemplate is the user prompt; "{title}" is replaced by the
	// formatted name of the work.
	PromptTemplate string
	New            func() Instance
}

// Family reports the descriptor's render family.
func (d Descriptor) Family() Family {
	return d.ID.Family()
}

// Type returns the concrete instance type used for reverse lookups.
func (d Descriptor) Type() reflect.Type {
	if d.New == nil {
		return nil
	}
	return reflect.TypeOf(d.New())
}

// ComposeInstructions appends additional context notes to the base
// instructions.
func (d Descriptor) ComposeInstructions(additional []string) string {
	return ComposeInstructions(d.Instructions, additional)
}

// UserPrompt renders the user prompt for the named work.
func (d Descriptor) UserPrompt(title string) string {
	title = strings.TrimSpace(title)
	if d.PromptTemplate == "" {
		return "Tell me about '" + title + "' in depth."
	}
	return strings.ReplaceAll(d.PromptTemplate, "{title}", title)
}

// ComposeInstructions returns base unchanged when no note is non-blank,
// otherwise base followed by an "Additional context" bullet list.
func ComposeInstructions(base string, additional []string) string {
	notes := make([]string, 0, len(additional))
	for _, note := range additional {
		if note = strings.TrimSpace(note); note != "" {
			notes = append(notes, "- "+note)
		}
	}
	if len(notes) == 0 {
		return base
	}
	return strings.TrimRight(base, " \t\r\n") + "\n\nAdditional context:\n" + strings.Join(notes, "\n")
}
