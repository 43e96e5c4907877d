package games

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"aiss/internal/format"
	"aiss/internal/render"
)

var allDescriptors = []format.Descriptor{
	ActionAdventureDescriptor,
	ShooterDescriptor,
	PuzzleStrategyDescriptor,
	RolePlayingDescriptor,
	SimulationSandboxDescriptor,
	SportsRacingDescriptor,
	HorrorSurvivalDescriptor,
	MMODescriptor,
}

func renderInstance(t *testing.T, inst format.Instance) string {
	t.Helper()
	var buf bytes.Buffer
	if err := render.Render(render.NewSink(&buf, render.WithColor(false)), inst); err != nil {
		t.Fatalf("render: %v", err)
	}
	return buf.String()
}

func TestDescriptorsBelongToGameFamily(t *testing.T) {
	seen := make(map[format.ID]bool)
	for _, d := range allDescriptors {
		if d.Family() != format.FamilyGames {
			t.Fatalf("%s family = %v", d.ID, d.Family())
		}
		if seen[d.ID] {
			t.Fatalf("duplicate id %s", d.ID)
		}
		seen[d.ID] = true
		if got := d.UserPrompt("Hollow Deep"); !strings.Contains(got, "'Hollow Deep'") {
			t.Fatalf("%s prompt = %q", d.ID, got)
		}
	}
}

func TestEmptyInstancesRender(t *testing.T) {
	for _, d := range allDescriptors {
		t.Run(string(d.ID), func(t *testing.T) {
			out := renderInstance(t, d.New())
			for _, want := range []string{render.NoSummary, "Game Snapshot", "Release Year: -", "Monetisation: -"} {
				if !strings.Contains(out, want) {
					t.Fatalf("output missing %q:\n%s", want, out)
				}
			}
			if strings.Contains(out, "Developers") || strings.Contains(out, "Platform Releases") {
				t.Fatalf("empty tables should be omitted:\n%s", out)
			}
		})
	}
}

func TestShooterFacts(t *testing.T) {
	g := &Shooter{MatchLengthMinutes: 25, CrossplaySupport: true, PlayerPerspective: "First-person"}
	g.ReleaseYear = 2023
	got := g.FactPairs()
	want := []render.Fact{
		{Label: "Release Year", Value: "2023"},
		{Label: "Perspective", Value: "First-person"},
		{Label: "Match Length", Value: "25 min"},
		{Label: "Crossplay", Value: "Enabled"},
		{Label: "Netcode", Value: "-"},
		{Label: "Anti-Cheat", Value: "-"},
		{Label: "Ranked", Value: "-"},
		{Label: "Monetisation", Value: "-"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("facts mismatch (-want +got):\n%s", diff)
	}
	g.CrossplaySupport = false
	if got := g.FactPairs()[3].Value; got != "Unavailable" {
		t.Fatalf("crossplay = %q", got)
	}
}

func TestRolePlayingRendersTablesAndPanels(t *testing.T) {
	inst, err := format.FromMap(RolePlayingDescriptor, map[string]any{
		"title":                    "Ashen Crown",
		"core_loop":                "Quest, loot, choose a side.",
		"estimated_campaign_hours": 60.5,
		"world_setting":            "A shattered empire",
		"developers": []any{
			map[string]any{"name": "Ember Works", "team_size": 1200},
		},
		"companions": []any{
			map[string]any{"name": "Vess", "origin": "Outcast", "romanceable": true},
		},
	})
	if err != nil {
		t.Fatalf("FromMap: %v", err)
	}
	out := renderInstance(t, inst)

	order := []string{"Ashen Crown", "Quest, loot, choose a side.", "Game Snapshot", "Developers", "Companions", "Worldbuilding"}
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
	for _, want := range []string{"Campaign Hours: 60.5", "1,200", "Yes", "World: A shattered empire"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Player Fantasy") {
		t.Fatalf("blank panel should be skipped:\n%s", out)
	}
}

func TestMMOPrefersMonetisationPillars(t *testing.T) {
	g := &MMO{MonetisationPillars: "Subscription, cosmetics", PeakConcurrencyTarget: 250000}
	g.MonetisationModel = "Free to play"
	facts := g.FactPairs()
	if facts[1].Value != "250,000" {
		t.Fatalf("peak = %q", facts[1].Value)
	}
	if facts[3].Value != "Subscription, cosmetics" {
		t.Fatalf("monetisation = %q", facts[3].Value)
	}
	g.MonetisationPillars = " "
	if got := g.FactPairs()[3].Value; got != "Free to play" {
		t.Fatalf("fallback monetisation = %q", got)
	}
}

func TestHelpers(t *testing.T) {
	if got := hours(0); got != "-" {
		t.Fatalf("hours(0) = %q", got)
	}
	if got := hours(12.5); got != "12.5" {
		t.Fatalf("hours(12.5) = %q", got)
	}
	if got := minutes(0); got != "-" {
		t.Fatalf("minutes(0) = %q", got)
	}
	if got := minutes(42.0); got != "42 min" {
		t.Fatalf("minutes(42) = %q", got)
	}
	if got, _ := yesNo(false); got != "No" {
		t.Fatalf("yesNo(false) = %q", got)
	}
}

func TestMapRoundTripKeepsFields(t *testing.T) {
	original := &PuzzleStrategy{
		RulesetOverview: "Match three, then route power.",
		PuzzleModules:   []PuzzleModule{{ModuleName: "Foundry", MechanicsIntroduced: []string{"conduits"}}},
	}
	original.Title = "Circuit Garden"
	original.Developers = []Studio{{Name: "Lowfield"}}

	m, err := format.ToMap(original)
	if err != nil {
		t.Fatalf("ToMap: %v", err)
	}
	back, err := format.FromMap(PuzzleStrategyDescriptor, m)
	if err != nil {
		t.Fatalf("FromMap: %v", err)
	}
	if diff := cmp.Diff(original, back, cmp.AllowUnexported(Base{})); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}
