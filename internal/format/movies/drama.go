package movies

import (
	"aiss/internal/format"
	"aiss/internal/render"
)

// DramaDescriptor registers the drama film format.
var DramaDescriptor = format.Descriptor{
	ID:             format.DramaMovie,
	Description:    "Cinematic intelligence model for drama movies that explore nuanced character journeys, social dilemmas, and emotional catharsis.",
	KeyTrait:       "Feature-length character storytelling grounded in emotional stakes.",
	Instructions:   "Serve as a prestige drama analyst compiling a character-driven profile of a drama movie. Illuminate the emotional stakes, moral conflicts, transformative performances, production context, awards trajectory, and cultural impact.",
	PromptTemplate: "Provide a layered breakdown of the drama movie '{title}', highlighting emotional arcs, character growth, and production insights.",
	New:            func() format.Instance { return &Drama{} },
}

// Drama is a character-driven film.
type Drama struct {
	Base
	Themes          []string       `json:"themes"`
	CentralConflict string         `json:"central_conflict"`
	CharacterArcs   []CharacterArc `json:"character_arcs"`
	Tone            string         `json:"tone"`
	PivotalMoments  []string       `json:"pivotal_moments"`
}

// CharacterArc is one character's journey.
type CharacterArc struct {
	Name             string   `json:"name"`
	PortrayedBy      string   `json:"portrayed_by"`
	ArcSummary       string   `json:"arc_summary"`
	Motivation       string   `json:"motivation"`
	TurningPoints    []string `json:"turning_points"`
	ResolutionStatus string   `json:"resolution_status"`
}

var characterArcColumns = []render.Column{
	{Field: "name", Header: "Character", Style: "magenta", NoWrap: true},
	{Field: "portrayed_by", Header: "Actor", Style: "cyan"},
	{Field: "motivation", Header: "Motivation", Style: "yellow"},
	{Field: "resolution_status", Header: "Resolution", Style: "green"},
}

func (m *Drama) FactPairs() []render.Fact {
	return m.facts(
		render.Fact{Label: "Conflict", Value: m.CentralConflict},
		render.Fact{Label: "Tone", Value: m.Tone},
	)
}

func (m *Drama) TableSections() []render.Section {
	return m.sections(render.SectionOf("Character Arcs", characterArcColumns, m.CharacterArcs))
}

func (m *Drama) ExtraPanels() []render.Panel {
	return m.panels(
		bullets("Themes", m.Themes),
		bullets("Pivotal Moments", m.PivotalMoments),
	)
}
