// Package games holds the video game formats. Base carries the studio and
// platform tables every game shows; the variants add genre systems.
package games

import (
	"strings"

	"aiss/internal/formatting"
	"aiss/internal/render"
)

// Base is the shared half of every game format.
type Base struct {
	Title             string            `json:"title"`
	GameSummary       string            `json:"game_summary"`
	CoreLoop          string            `json:"core_loop"`
	ReleaseYear       int               `json:"release_year"`
	MonetisationModel string            `json:"monetisation_model"`
	Developers        []Studio          `json:"developers"`
	Publishers        []Studio          `json:"publishers"`
	PlatformReleases  []PlatformRelease `json:"platform_releases"`

	contextHint string
}

func (b *Base) ContextHint() string { return b.contextHint }

func (b *Base) SetContextHint(hint string) { b.contextHint = strings.TrimSpace(hint) }

// FactsPanel names the facts panel for every game.
func (b *Base) FactsPanel() (string, string) { return "Game Snapshot", "blue" }

// summary leads with any variant pitch, then the core loop and overview.
func (b *Base) summary(fallback string, lead ...string) render.Summary {
	title := strings.TrimSpace(b.Title)
	if title == "" {
		title = fallback
	}
	paragraphs := append(lead, b.CoreLoop, b.GameSummary)
	return render.Summary{Title: title, Paragraphs: paragraphs, Style: "green"}
}

func (b *Base) releaseFact() render.Fact {
	return render.Fact{Label: "Release Year", Value: formatting.Year(b.ReleaseYear)}
}

func (b *Base) monetisationFact() render.Fact {
	return render.Fact{Label: "Monetisation", Value: render.Text(b.MonetisationModel)}
}

// sections puts the studio and platform tables ahead of the variant's own.
func (b *Base) sections(extra ...render.Section) []render.Section {
	out := []render.Section{
		render.SectionOf("Developers", studioColumns, b.Developers),
		render.SectionOf("Publishers", studioColumns, b.Publishers),
		render.SectionOf("Platform Releases", platformColumns, b.PlatformReleases),
	}
	return append(out, extra...)
}

// hours shows a duration in hours, or "-" when unknown.
func hours(v float64) string {
	if v <= 0 {
		return formatting.Placeholder
	}
	return formatting.Number(v)
}

func minutes[T int | float64](v T) string {
	if v <= 0 {
		return formatting.Placeholder
	}
	return formatting.RuntimeMinutes(v)
}

// lines renders labelled lines for a free-form panel.
func lines(facts ...render.Fact) string {
	return render.Labeled(facts...)
}
