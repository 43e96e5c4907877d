package record

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type base struct {
	Title string `json:"title"`
}

type sample struct {
	base
	Year    int      `json:"release_year"`
	Tags    []string `json:"tags,omitempty"`
	Skipped string   `json:"-"`
	hidden  string
}

func TestOfStructFollowsJSONTags(t *testing.T) {
	r := Of(&sample{base: base{Title: "Dune"}, Year: 2021, Tags: []string{"sf"}, Skipped: "x", hidden: "y"})
	want := []string{"title", "release_year", "tags"}
	if diff := cmp.Diff(want, r.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
	if v, ok := r.Get("title"); !ok || v != "Dune" {
		t.Fatalf("title = %v, %v", v, ok)
	}
	if _, ok := r.Get("Skipped"); ok {
		t.Fatal("json:\"-\" field must be excluded")
	}
}

func TestOfMapIsDeterministic(t *testing.T) {
	r := Of(map[string]any{"b": 2, "a": 1})
	if diff := cmp.Diff([]string{"a", "b"}, r.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestOfNilAndScalar(t *testing.T) {
	var missing *sample
	if Of(missing).Len() != 0 {
		t.Fatal("nil pointer should yield empty record")
	}
	if Of(42).Len() != 0 {
		t.Fatal("scalar should yield empty record")
	}
}

func TestNewKeepsFirstPosition(t *testing.T) {
	r := New(Field{Name: "a", Value: 1}, Field{Name: "b", Value: 2}, Field{Name: "a", Value: 3})
	if diff := cmp.Diff([]string{"a", "b"}, r.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
	if v, _ := r.Get("a"); v != 3 {
		t.Fatalf("a = %v, want 3", v)
	}
}

func TestList(t *testing.T) {
	if List[sample](nil) != nil {
		t.Fatal("empty list should be nil")
	}
	rows := List([]sample{{Year: 1}, {Year: 2}})
	if len(rows) != 2 {
		t.Fatalf("len = %d", len(rows))
	}
	if v, _ := rows[1].Get("release_year"); v != 2 {
		t.Fatalf("release_year = %v", v)
	}
}
