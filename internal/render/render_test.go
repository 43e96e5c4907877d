package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"aiss/internal/record"
)

func newTestSink() (*Sink, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewSink(&buf, WithColor(false)), &buf
}

func TestRenderTableSkipsEmptyRecords(t *testing.T) {
	sink, buf := newTestSink()
	RenderTable(sink, "Cast", []Column{Col("name", "Name")}, nil)
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}

func TestRenderTableWritesTitleAndCells(t *testing.T) {
	sink, buf := newTestSink()
	rows := []record.Record{
		record.Of(map[string]any{"name": "Ada", "year": 1843}),
		record.Of(map[string]any{"name": "Grace"}),
	}
	cols := []Column{
		Col("name", "Name"),
		{Field: "year", Header: "Year", Justify: JustifyCenter, Format: FormatYear},
	}
	RenderTable(sink, "Pioneers", cols, rows)
	out := buf.String()
	for _, want := range []string{"Pioneers", "Name", "Year", "Ada", "1843", "Grace"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestCellTextAbsentFieldIsPlaceholder(t *testing.T) {
	rec := record.Of(map[string]any{"other": "x", "blank": "  ", "none": nil, "empty": []string{}})
	for _, field := range []string{"missing", "blank", "none", "empty"} {
		if got := CellText(Col(field, field), rec); got != "-" {
			t.Fatalf("CellText(%s) = %q, want -", field, got)
		}
	}
}

func TestCellTextJoinsSequences(t *testing.T) {
	rec := record.Of(map[string]any{"tags": []string{"noir", "drama"}})
	if got := CellText(Col("tags", "Tags"), rec); got != "noir, drama" {
		t.Fatalf("CellText = %q", got)
	}
}

func TestCellTextRecoversFormatterFailures(t *testing.T) {
	rec := record.Of(map[string]any{"score": "high"})
	panicking := Column{Field: "score", Format: func(any) (string, error) { panic("boom") }}
	if got := CellText(panicking, rec); got != "high" {
		t.Fatalf("panic fallback = %q", got)
	}
	failing := Column{Field: "score", Format: func(any) (string, error) { return "", errors.New("nope") }}
	if got := CellText(failing, rec); got != "high" {
		t.Fatalf("error fallback = %q", got)
	}
	spec := Column{Field: "score", Format: Spec("%.2f")}
	if got := CellText(spec, rec); got != "high" {
		t.Fatalf("spec fallback = %q", got)
	}
	numeric := Column{Field: "n", Format: Spec("%.2f")}
	if got := CellText(numeric, record.Of(map[string]any{"n": 2.5})); got != "2.50" {
		t.Fatalf("spec = %q", got)
	}
}

type stubFormat struct {
	hint     string
	sections []Section
	panels   []Panel
	summary  Summary
}

func (s stubFormat) Summary() Summary         { return s.summary }
func (s stubFormat) ContextHint() string      { return s.hint }
func (s stubFormat) TableSections() []Section { return s.sections }
func (s stubFormat) ExtraPanels() []Panel     { return s.panels }
func (s stubFormat) FactPairs() []Fact {
	return []Fact{{Label: "Seasons", Value: "3"}, {Label: "Rating", Value: ""}}
}

func TestRenderStageOrder(t *testing.T) {
	f := stubFormat{
		summary: Summary{Title: "Headline", Paragraphs: []string{"Body text"}},
		hint:    "Hint text",
		sections: []Section{
			{Title: "First Table", Columns: []Column{Col("a", "A")}, Records: []record.Record{record.Of(map[string]any{"a": 1})}},
			{Title: "Ghost Table", Columns: []Column{Col("a", "A")}},
			{Title: "Second Table", Columns: []Column{Col("a", "A")}, Records: []record.Record{record.Of(map[string]any{"a": 2})}},
		},
		panels: []Panel{{Title: "Notes", Body: "- one"}, {Title: "Empty Panel", Body: "  "}},
	}
	sink, buf := newTestSink()
	if err := Render(sink, f); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := buf.String()
	order := []string{"Headline", "Context", "Hint text", "Facts", "Seasons: 3", "Rating: -", "First Table", "Second Table", "Notes"}
	last := -1
	for _, marker := range order {
		idx := strings.Index(out, marker)
		if idx < 0 {
			t.Fatalf("missing %q in output:\n%s", marker, out)
		}
		if idx < last {
			t.Fatalf("%q out of order in output:\n%s", marker, out)
		}
		last = idx
	}
	for _, absent := range []string{"Ghost Table", "Empty Panel"} {
		if strings.Contains(out, absent) {
			t.Fatalf("%q should be omitted:\n%s", absent, out)
		}
	}
}

func TestRenderFallbacks(t *testing.T) {
	sink, buf := newTestSink()
	if err := Render(sink, stubFormat{summary: Summary{Paragraphs: []string{"", "  "}}}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, NoSummary) {
		t.Fatalf("missing summary fallback:\n%s", out)
	}
	if strings.Contains(out, "Context") {
		t.Fatalf("blank context hint rendered:\n%s", out)
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	f := stubFormat{
		summary:  Summary{Title: "Same", Paragraphs: []string{"text"}},
		sections: []Section{{Title: "T", Columns: []Column{Col("a", "A")}, Records: []record.Record{record.Of(map[string]any{"a": "x"})}}},
	}
	first, firstBuf := newTestSink()
	second, secondBuf := newTestSink()
	_ = Render(first, f)
	_ = Render(second, f)
	if firstBuf.String() != secondBuf.String() {
		t.Fatalf("renders differ:\n%s\n---\n%s", firstBuf.String(), secondBuf.String())
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestRenderReportsWriteError(t *testing.T) {
	sink := NewSink(failingWriter{})
	if err := Render(sink, stubFormat{}); err == nil {
		t.Fatal("expected write error")
	}
}

func TestPanelTruncatesLongTitle(t *testing.T) {
	var buf bytes.Buffer
	sink := NewSink(&buf, WithColor(false), WithWidth(30))
	sink.Panel(strings.Repeat("Very Long Title ", 10), "body", "green")
	first := strings.SplitN(buf.String(), "\n", 2)[0]
	if !strings.Contains(first, "…") {
		t.Fatalf("expected truncated title, got %q", first)
	}
}

func TestHelpers(t *testing.T) {
	if got := Bullets([]string{"a", " ", "b"}); got != "- a\n- b" {
		t.Fatalf("Bullets = %q", got)
	}
	if got := Join(nil); got != "-" {
		t.Fatalf("Join(nil) = %q", got)
	}
	if got := Labeled(Fact{"A", "1"}, Fact{"B", ""}); got != "A: 1" {
		t.Fatalf("Labeled = %q", got)
	}
}
