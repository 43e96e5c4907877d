package movies

import (
	"aiss/internal/format"
	"aiss/internal/render"
)

// ComedyDescriptor registers the comedy film format.
var ComedyDescriptor = format.Descriptor{
	ID:             format.ComedyMovie,
	Description:    "Cinematic intelligence model for comedy movies, balancing comedic voice, ensemble dynamics, and cultural resonance.",
	KeyTrait:       "Feature-length comedy storytelling driven by rhythmic humour beats and character chemistry.",
	Instructions:   "Serve as a comedy development executive producing a definitive profile of a comedy movie. Highlight the humour styles at play, ensemble dynamics, hallmark set pieces, improvisational flair, standout comedic beats, and audience appeal alongside release positioning.",
	PromptTemplate: "Develop a detailed comedy movie breakdown for '{title}', covering humour styles, standout moments, ensemble chemistry, and production context.",
	New:            func() format.Instance { return &Comedy{} },
}

// Comedy is a comedy film.
type Comedy struct {
	Base
	HumorStyles      []string    `json:"humor_styles"`
	ComedicBeats     []HumorBeat `json:"comedic_beats"`
	RunningGags      []string    `json:"running_gags"`
	ImprovNotes      string      `json:"improv_notes"`
	Tone             string      `json:"tone"`
	CameoAppearances []string    `json:"cameo_appearances"`
}

// HumorBeat is a signature comedic beat.
type HumorBeat struct {
	Situation          string   `json:"situation"`
	Punchline          string   `json:"punchline"`
	CharactersInvolved []string `json:"characters_involved"`
	ComedicStyle       string   `json:"comedic_style"`
}

var humorBeatColumns = []render.Column{
	{Field: "situation", Header: "Situation", Style: "magenta"},
	{Field: "punchline", Header: "Payoff", Style: "cyan"},
	{Field: "comedic_style", Header: "Style", Style: "yellow"},
}

func (m *Comedy) FactPairs() []render.Fact {
	return m.facts(
		render.Fact{Label: "Tone", Value: m.Tone},
		render.Fact{Label: "Improv", Value: m.ImprovNotes},
	)
}

func (m *Comedy) TableSections() []render.Section {
	return m.sections(render.SectionOf("Comedic Beats", humorBeatColumns, m.ComedicBeats))
}

func (m *Comedy) ExtraPanels() []render.Panel {
	return m.panels(
		bullets("Humor Styles", m.HumorStyles),
		bullets("Running Gags", m.RunningGags),
		bullets("Cameos", m.CameoAppearances),
	)
}
