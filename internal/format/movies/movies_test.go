package movies

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"aiss/internal/format"
	"aiss/internal/render"
)

var allDescriptors = []format.Descriptor{
	GeneralDescriptor,
	DramaDescriptor,
	ComedyDescriptor,
	ActionAdventureDescriptor,
	FantasyScienceFictionDescriptor,
	ThrillerDescriptor,
	RomanceDescriptor,
	HorrorDescriptor,
	DocumentaryDescriptor,
}

func renderInstance(t *testing.T, inst format.Instance) string {
	t.Helper()
	var buf bytes.Buffer
	if err := render.Render(render.NewSink(&buf, render.WithColor(false)), inst); err != nil {
		t.Fatalf("render: %v", err)
	}
	return buf.String()
}

func TestDescriptorsBelongToMovieFamily(t *testing.T) {
	for _, d := range allDescriptors {
		if d.Family() != format.FamilyMovies {
			t.Fatalf("%s family = %v", d.ID, d.Family())
		}
		if !strings.Contains(d.UserPrompt("Heat"), "'Heat'") {
			t.Fatalf("%s prompt = %q", d.ID, d.UserPrompt("Heat"))
		}
	}
}

func TestEmptyInstancesRender(t *testing.T) {
	for _, d := range allDescriptors {
		t.Run(string(d.ID), func(t *testing.T) {
			out := renderInstance(t, d.New())
			for _, want := range []string{"(untitled)", render.NoSummary, "Facts", "Release: -"} {
				if !strings.Contains(out, want) {
					t.Fatalf("output missing %q:\n%s", want, out)
				}
			}
			for _, absent := range []string{"Cast", "Box Office", "Keywords"} {
				if strings.Contains(out, absent) {
					t.Fatalf("output should omit %q:\n%s", absent, out)
				}
			}
		})
	}
}

func TestSummaryTitleIncludesYear(t *testing.T) {
	m := &Drama{}
	m.Title = "Heat"
	m.ReleaseYear = 1995
	m.Tagline = "A Los Angeles crime saga."
	summary := m.Summary()
	if summary.Title != "Heat (1995)" {
		t.Fatalf("title = %q", summary.Title)
	}
	if diff := cmp.Diff([]string{"A Los Angeles crime saga.", ""}, summary.Paragraphs); diff != "" {
		t.Fatalf("paragraphs (-want +got):\n%s", diff)
	}

	untitled := (&General{}).Summary()
	if untitled.Title != "(untitled)" {
		t.Fatalf("untitled = %q", untitled.Title)
	}
}

func TestVariantFactsSkipBlankExtras(t *testing.T) {
	m := &Horror{Subgenre: "Folk horror"}
	facts := m.FactPairs()
	var labels []string
	for _, f := range facts {
		labels = append(labels, f.Label)
	}
	want := []string{"Release", "Runtime", "Genres", "MPAA", "Directors", "Producers", "Writers", "Language", "Countries", "Rating", "Subgenre"}
	if diff := cmp.Diff(want, labels); diff != "" {
		t.Fatalf("labels (-want +got):\n%s", diff)
	}
}

func TestBoxOfficeRendersSingleRow(t *testing.T) {
	inst, err := format.FromMap(ActionAdventureDescriptor, map[string]any{
		"title":       "Skyfall",
		"box_office":  map[string]any{"budget": 200000000, "gross_worldwide": 1108561013},
		"set_pieces":  []any{map[string]any{"name": "Rooftop chase", "act": "I"}},
		"antagonists": []any{"Silva"},
	})
	if err != nil {
		t.Fatalf("FromMap: %v", err)
	}
	out := renderInstance(t, inst)
	for _, want := range []string{"Box Office", "$200,000,000", "$1,108,561,013", "Set Pieces", "Rooftop chase", "- Silva"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "Set Pieces") > strings.Index(out, "Antagonists") {
		t.Fatalf("tables should precede panels:\n%s", out)
	}
}
