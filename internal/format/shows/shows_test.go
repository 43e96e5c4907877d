package shows

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
	ThrillerDescriptor,
	ActionFantasyDescriptor,
	ScienceFictionDescriptor,
	RealityDescriptor,
	DocumentaryDescriptor,
	FamilyDescriptor,
	NewsDescriptor,
	SportsDescriptor,
}

func renderInstance(t *testing.T, inst format.Instance) string {
	t.Helper()
	var buf bytes.Buffer
	if err := render.Render(render.NewSink(&buf, render.WithColor(false)), inst); err != nil {
		t.Fatalf("render: %v", err)
	}
	return buf.String()
}

func TestDescriptorsBelongToShowFamily(t *testing.T) {
	seen := make(map[format.ID]bool)
	for _, d := range allDescriptors {
		if d.Family() != format.FamilyShows {
			t.Fatalf("%s family = %v", d.ID, d.Family())
		}
		if seen[d.ID] {
			t.Fatalf("duplicate id %s", d.ID)
		}
		seen[d.ID] = true
		if !strings.Contains(d.PromptTemplate, "{title}") {
			t.Fatalf("%s prompt template lacks a title placeholder", d.ID)
		}
		if strings.TrimSpace(d.Description) == "" || strings.TrimSpace(d.KeyTrait) == "" {
			t.Fatalf("%s is missing listing text", d.ID)
		}
	}
}

func TestEmptyInstancesRender(t *testing.T) {
	for _, d := range allDescriptors {
		t.Run(string(d.ID), func(t *testing.T) {
			out := renderInstance(t, d.New())
			if !strings.Contains(out, render.NoSummary) {
				t.Fatalf("expected summary placeholder:\n%s", out)
			}
			if !strings.Contains(out, "Quick Facts") {
				t.Fatalf("expected facts panel:\n%s", out)
			}
			if strings.Contains(out, "Critical Reception") {
				t.Fatalf("empty sections should be omitted:\n%s", out)
			}
			if strings.Contains(out, "Context") {
				t.Fatalf("context panel should be absent without a hint:\n%s", out)
			}
		})
	}
}

func TestDramaRendersPopulatedRecord(t *testing.T) {
	inst, err := format.FromMap(DramaDescriptor, map[string]any{
		"title":              "Northwind",
		"logline":            "A harbour town keeps its secrets.",
		"season_count":       3,
		"release_start_year": 2019,
		"tone":               "Brooding",
		"characters": []any{
			map[string]any{"name": "Ada Marsh", "actor": "Jo Reyes"},
		},
		"critical_reception": []any{
			map[string]any{"outlet": "Variety", "score": 7.5},
		},
	})
	if err != nil {
		t.Fatalf("FromMap: %v", err)
	}
	inst.SetContextHint("Wikipedia: a British drama.")
	out := renderInstance(t, inst)

	order := []string{"Northwind", "Context", "Quick Facts", "Characters", "Critical Reception"}
	last := -1
	for _, want := range order {
		idx := strings.Index(out, want)
		if idx < 0 {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
		if idx < last {
			t.Fatalf("%q out of order:\n%s", want, out)
		}
		last = idx
	}
	for _, want := range []string{"Seasons: 3", "Run: 2019 - Present", "Tone: Brooding", "Ada Marsh", "7.5"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunDisplay(t *testing.T) {
	cases := []struct {
		start, end int
		want       string
	}{
		{0, 0, "-"},
		{2010, 0, "2010 - Present"},
		{2010, 2014, "2010 - 2014"},
		{2012, 2012, "2012"},
		{0, 2015, "2015"},
	}
	for _, tc := range cases {
		if got := runDisplay(tc.start, tc.end); got != tc.want {
			t.Fatalf("runDisplay(%d, %d) = %q, want %q", tc.start, tc.end, got, tc.want)
		}
	}
}

func TestMapRoundTripKeepsFields(t *testing.T) {
	original := &Sports{}
	original.Title = "Match Night"
	original.Network = "ESPN"
	original.PremiereYear = 2001
	original.SportsCovered = []string{"Football", "Rugby"}
	original.Presenters = []Presenter{{Name: "Sam", Role: "Host", FormerAthlete: true}}

	m, err := format.ToMap(original)
	if err != nil {
		t.Fatalf("ToMap: %v", err)
	}
	back, err := format.FromMap(SportsDescriptor, m)
	if err != nil {
		t.Fatalf("FromMap: %v", err)
	}
	if diff := cmp.Diff(original, back, cmp.AllowUnexported(Core{})); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestContextHintIsNotSerialized(t *testing.T) {
	inst := NewsDescriptor.New()
	inst.SetContextHint("  hint  ")
	if got := inst.ContextHint(); got != "hint" {
		t.Fatalf("ContextHint = %q", got)
	}
	m, err := format.ToMap(inst)
	if err != nil {
		t.Fatalf("ToMap: %v", err)
	}
	for key := range m {
		if strings.Contains(key, "hint") {
			t.Fatalf("unexpected key %q in map", key)
		}
	}
}

func TestFromJSONCoercesQuotedAndFloatYears(t *testing.T) {
	payload := `{
		"title": "Harbour Lights",
		"release_start_year": "2019",
		"season_count": 3.0,
		"production_companies": [{"name": "North Pier", "founded_year": "1990"}]
	}`
	inst, err := format.FromJSON(GeneralDescriptor, []byte(payload))
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}
	show := inst.(*General)
	if show.ReleaseStartYear != 2019 || show.SeasonCount != 3 {
		t.Fatalf("unexpected run facts: start=%d seasons=%d", show.ReleaseStartYear, show.SeasonCount)
	}
	if len(show.ProductionCompanies) != 1 || show.ProductionCompanies[0].FoundedYear != 1990 {
		t.Fatalf("unexpected companies %+v", show.ProductionCompanies)
	}
	requireContains := func(text string) {
		t.Helper()
		if out := renderInstance(t, inst); !strings.Contains(out, text) {
			t.Fatalf("rendered output missing %q:\n%s", text, out)
		}
	}
	requireContains("2019")
	requireContains("1990")
}
