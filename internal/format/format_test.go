package format

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"aiss/internal/render"
	"aiss/internal/services"
)

type sample struct {
	Title  string       `json:"title"`
	Year   int          `json:"year"`
	Scores []float64    `json:"scores"`
	Cast   []sampleCast `json:"cast"`
	hint   string
}

type sampleCast struct {
	Name string `json:"name"`
	Lead bool   `json:"lead"`
}

func (s *sample) Summary() render.Summary         { return render.Summary{Title: s.Title} }
func (s *sample) ContextHint() string             { return s.hint }
func (s *sample) SetContextHint(h string)         { s.hint = h }
func (s *sample) FactPairs() []render.Fact        { return nil }
func (s *sample) TableSections() []render.Section { return nil }
func (s *sample) ExtraPanels() []render.Panel     { return nil }

var sampleDescriptor = Descriptor{
	ID:             Drama,
	Instructions:   "Describe the work.",
	PromptTemplate: "Tell me about '{title}'.",
	New:            func() Instance { return &sample{} },
}

func TestParse(t *testing.T) {
	got, err := Parse("  Drama_Movie ")
	if err != nil || got != DramaMovie {
		t.Fatalf("Parse = %q, %v", got, err)
	}
	_, err = Parse("podcast")
	if !errors.Is(err, ErrUnknownFormat) || !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected unknown format error, got %v", err)
	}
}

func TestDeclaredIsClosedSet(t *testing.T) {
	ids := Declared()
	if len(ids) != 28 {
		t.Fatalf("declared ids = %d, want 28", len(ids))
	}
	families := map[Family]int{}
	for _, id := range ids {
		families[id.Family()]++
	}
	want := map[Family]int{FamilyShows: 11, FamilyMovies: 9, FamilyGames: 8}
	if diff := cmp.Diff(want, families); diff != "" {
		t.Fatalf("family split mismatch (-want +got):\n%s", diff)
	}
	ids[0] = "mutated"
	if Declared()[0] != Show {
		t.Fatal("Declared must return a copy")
	}
}

func TestDisplayLabel(t *testing.T) {
	cases := map[ID]string{
		DramaMovie:                  "Drama Movie",
		RealityCompetitionLifestyle: "Reality Competition Lifestyle",
		Show:                        "Show",
	}
	for id, want := range cases {
		if got := id.DisplayLabel(); got != want {
			t.Fatalf("%s label = %q, want %q", id, got, want)
		}
	}
}

func TestComposeInstructions(t *testing.T) {
	if got := ComposeInstructions("Base.", []string{" ", ""}); got != "Base." {
		t.Fatalf("blank notes changed base: %q", got)
	}
	got := ComposeInstructions("Base.\n", []string{"Season two only", "  UK run "})
	want := "Base.\n\nAdditional context:\n- Season two only\n- UK run"
	if got != want {
		t.Fatalf("ComposeInstructions = %q, want %q", got, want)
	}
}

func TestUserPrompt(t *testing.T) {
	if got := sampleDescriptor.UserPrompt(" Heat "); got != "Tell me about 'Heat'." {
		t.Fatalf("UserPrompt = %q", got)
	}
	if got := (Descriptor{}).UserPrompt("Heat"); !strings.Contains(got, "'Heat'") {
		t.Fatalf("fallback prompt = %q", got)
	}
}

func TestMapRoundTrip(t *testing.T) {
	original := &sample{Title: "Heat", Year: 1995, Scores: []float64{8.3}, Cast: []sampleCast{{Name: "Al", Lead: true}}, hint: "not persisted"}
	m, err := ToMap(original)
	if err != nil {
		t.Fatalf("ToMap: %v", err)
	}
	if _, ok := m["hint"]; ok {
		t.Fatal("hint leaked into map")
	}
	back, err := FromMap(sampleDescriptor, m)
	if err != nil {
		t.Fatalf("FromMap: %v", err)
	}
	original.hint = ""
	if diff := cmp.Diff(original, back, cmp.AllowUnexported(sample{})); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestFromMapRejectsWrongShape(t *testing.T) {
	_, err := FromMap(sampleDescriptor, map[string]any{"year": "not a number"})
	if !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, err := FromMap(Descriptor{ID: Drama}, nil); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("expected unknown format for empty descriptor, got %v", err)
	}
}

func TestFromJSON(t *testing.T) {
	inst, err := FromJSON(sampleDescriptor, []byte(`{"title":"Heat","extra":true}`))
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}
	if inst.(*sample).Title != "Heat" {
		t.Fatalf("title = %q", inst.(*sample).Title)
	}
	if _, err := FromJSON(sampleDescriptor, []byte(`[1,2]`)); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestSkeleton(t *testing.T) {
	got := Skeleton(&sample{})
	want := map[string]any{
		"title":  "",
		"year":   0,
		"scores": []any{},
		"cast":   []any{map[string]any{"name": "", "lead": false}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("skeleton mismatch (-want +got):\n%s", diff)
	}
	if text := OutputInstructions(sampleDescriptor); !strings.Contains(text, `"cast"`) {
		t.Fatalf("output instructions missing keys:\n%s", text)
	}
}

func TestNewClassificationResult(t *testing.T) {
	res, err := NewClassificationResult(" HORROR_MOVIE", " Alien ", " 1979 film ", []string{"", " Director's cut "})
	if err != nil {
		t.Fatalf("NewClassificationResult: %v", err)
	}
	want := ClassificationResult{ID: HorrorMovie, FormattedName: "Alien", Description: "1979 film", AdditionalInfo: []string{"Director's cut"}}
	if diff := cmp.Diff(want, res); diff != "" {
		t.Fatalf("result mismatch (-want +got):\n%s", diff)
	}
	if res.Topic() != "Alien: 1979 film" || res.String() != "Alien [horror_movie]" {
		t.Fatalf("topic/string = %q / %q", res.Topic(), res.String())
	}
	if _, err := NewClassificationResult("podcast", "x", "", nil); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("expected unknown format, got %v", err)
	}
}

type looseSample struct {
	sample
	Seasons int           `json:"seasons"`
	Rating  float64       `json:"rating"`
	Budget  *int64        `json:"budget"`
	Code    string        `json:"code"`
	Live    bool          `json:"live"`
	Years   []int         `json:"years"`
	Credits []looseCredit `json:"credits"`
}

type looseCredit struct {
	Name    string `json:"name"`
	Founded int    `json:"founded"`
}

var looseDescriptor = Descriptor{
	ID:  Drama,
	New: func() Instance { return &looseSample{} },
}

func TestFromJSONAcceptsLooseNumbers(t *testing.T) {
	payload := `{
		"title": "Heat",
		"year": "1995",
		"seasons": 3.0,
		"rating": "8.25",
		"budget": "60,000,000",
		"code": 42,
		"live": "true",
		"years": ["1995", 1996.0],
		"credits": [{"name": "Forward Pass", "founded": "1990"}],
		"scores": [""]
	}`
	inst, err := FromJSON(looseDescriptor, []byte(payload))
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}
	budget := int64(60000000)
	want := &looseSample{
		sample:  sample{Title: "Heat", Year: 1995, Scores: []float64{0}},
		Seasons: 3,
		Rating:  8.25,
		Budget:  &budget,
		Code:    "42",
		Live:    true,
		Years:   []int{1995, 1996},
		Credits: []looseCredit{{Name: "Forward Pass", Founded: 1990}},
	}
	if diff := cmp.Diff(want, inst, cmp.AllowUnexported(sample{}, looseSample{})); diff != "" {
		t.Fatalf("decoded mismatch (-want +got):\n%s", diff)
	}
}

func TestLooseNumbersStillRejectGarbage(t *testing.T) {
	cases := []string{
		`{"seasons": 2.5}`,
		`{"seasons": "two"}`,
		`{"seasons": 1e30}`,
		`{"credits": [{"founded": "long ago"}]}`,
	}
	for _, payload := range cases {
		if _, err := FromJSON(looseDescriptor, []byte(payload)); !errors.Is(err, services.ErrValidation) {
			t.Fatalf("%s: expected validation error, got %v", payload, err)
		}
	}
}

func TestFromMapAcceptsLooseNumbers(t *testing.T) {
	inst, err := FromMap(looseDescriptor, map[string]any{
		"seasons": "4",
		"years":   []any{2001.0, "2002"},
		"rating":  "",
	})
	if err != nil {
		t.Fatalf("FromMap: %v", err)
	}
	got := inst.(*looseSample)
	if got.Seasons != 4 || !cmp.Equal(got.Years, []int{2001, 2002}) || got.Rating != 0 {
		t.Fatalf("unexpected instance %+v", got)
	}
}
