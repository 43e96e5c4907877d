package render

import (
	"strings"

	"aiss/internal/record"
)

// NoSummary is shown when a record has no usable summary text.
const NoSummary = "(no summary provided)"

// Summary is the opening panel of every render.
type Summary struct {
	Title      string
	Paragraphs []string
	Style      string
}

// Fact is one label/value pair in the facts panel.
type Fact struct {
	Label string
	Value string
}

// Section is one table: a title, its columns and the rows to show.
type Section struct {
	Title   string
	Columns []Column
	Records []record.Record
}

// Panel is a free-form text block rendered after all tables.
type Panel struct {
	Title string
	Body  string
	Style string
}

// Format is implemented by every renderable record. Hooks must be total over
// a zero-valued receiver.
type Format interface {
	Summary() Summary
	ContextHint() string
	FactPairs() []Fact
	TableSections() []Section
	ExtraPanels() []Panel
}

// FactsPresenter lets a family name and colour its facts panel.
type FactsPresenter interface {
	FactsPanel() (title, style string)
}

// SectionOf converts rows of any struct type into a Section.
func SectionOf[T any](title string, columns []Column, rows []T) Section {
	return Section{Title: title, Columns: columns, Records: record.List(rows)}
}

// Render writes f to sink in the fixed stage order: summary, context hint,
// facts, table sections and extra panels.
func Render(sink *Sink, f Format) error {
	summary := f.Summary()
	title := strings.TrimSpace(summary.Title)
	if title == "" {
		title = "(untitled)"
	}
	sink.Panel(title, summaryBody(summary.Paragraphs), styleOr(summary.Style, "green"))

	if hint := strings.TrimSpace(f.ContextHint()); hint != "" {
		sink.Panel("Context", hint, "yellow")
	}

	if facts := f.FactPairs(); len(facts) > 0 {
		factsTitle, factsStyle := "Facts", "blue"
		if p, ok := f.(FactsPresenter); ok {
			factsTitle, factsStyle = p.FactsPanel()
		}
		sink.Panel(factsTitle, factsBody(facts), factsStyle)
	}

	for _, section := range f.TableSections() {
		RenderTable(sink, section.Title, section.Columns, section.Records)
	}

	for _, panel := range f.ExtraPanels() {
		if strings.TrimSpace(panel.Body) == "" {
			continue
		}
		sink.Panel(panel.Title, panel.Body, styleOr(panel.Style, "cyan"))
	}
	return sink.Err()
}

func summaryBody(paragraphs []string) string {
	kept := make([]string, 0, len(paragraphs))
	for _, p := range paragraphs {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	if len(kept) == 0 {
		return NoSummary
	}
	return strings.Join(kept, "\n\n")
}

func factsBody(facts []Fact) string {
	lines := make([]string, 0, len(facts))
	for _, fact := range facts {
		value := strings.TrimSpace(fact.Value)
		if value == "" {
			value = "-"
		}
		lines = append(lines, fact.Label+": "+value)
	}
	return strings.Join(lines, "\n")
}

func styleOr(style, fallback string) string {
	if strings.TrimSpace(style) == "" {
		return fallback
	}
	return style
}

// Bullets renders items as a "- item" list, skipping blanks.
func Bullets(items []string) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			lines = append(lines, "- "+item)
		}
	}
	return strings.Join(lines, "\n")
}

// Labeled renders facts as "Label: value" lines, skipping blank values.
func Labeled(facts ...Fact) string {
	lines := make([]string, 0, len(facts))
	for _, fact := range facts {
		if v := strings.TrimSpace(fact.Value); v != "" {
			lines = append(lines, fact.Label+": "+v)
		}
	}
	return strings.Join(lines, "\n")
}

// Inline joins the non-blank items with ", ". Empty input gives "".
func Inline(items []string) string {
	kept := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			kept = append(kept, item)
		}
	}
	return strings.Join(kept, ", ")
}

// Join renders a list of strings for a fact value, or "-" when empty.
func Join(items []string) string {
	return Text(Inline(items))
}

// Text returns value trimmed, or "-" when blank.
func Text(value string) string {
	if value = strings.TrimSpace(value); value == "" {
		return "-"
	}
	return value
}
