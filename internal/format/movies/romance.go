package movies

import (
	"aiss/internal/format"
	"aiss/internal/render"
)

// RomanceDescriptor registers the romance film format.
var RomanceDescriptor = format.Descriptor{
	ID:             format.RomanceMovie,
	Description:    "Cinematic intelligence model for romance movies centered on intimacy, emotional risk, and relational growth.",
	KeyTrait:       "Feature-length love stories built around relationship dynamics and vulnerability.",
	Instructions:   "Act as a romance development executive summarizing a romance movie. Detail the relationship arcs, emotional beats, conflicts, supporting ensemble, chemistry observations, and ultimate resolution.",
	PromptTemplate: "Describe the romance movie '{title}', focusing on relationship dynamics, key romantic beats, conflicts, and resolution.",
	New:            func() format.Instance { return &Romance{} },
}

// Romance is a relationship-driven film.
type Romance struct {
	Base
	RelationshipDynamics []string       `json:"relationship_dynamics"`
	MeetCuteDescription  string         `json:"meet_cute_description"`
	RomanticBeats        []RomanticBeat `json:"romantic_beats"`
	ConflictObstacles    []string       `json:"conflict_obstacles"`
	EndingType           string         `json:"ending_type"`
	ChemistryNotes       string         `json:"chemistry_notes"`
}

// RomanticBeat is a turning point in the relationship.
type RomanticBeat struct {
	BeatName       string `json:"beat_name"`
	Description    string `json:"description"`
	EmotionalShift string `json:"emotional_shift"`
	Setting        string `json:"setting"`
}

var romanticBeatColumns = []render.Column{
	{Field: "beat_name", Header: "Beat", Style: "magenta"},
	{Field: "emotional_shift", Header: "Emotional Shift", Style: "cyan"},
	{Field: "setting", Header: "Setting", Style: "yellow"},
}

func (m *Romance) FactPairs() []render.Fact {
	return m.facts(
		render.Fact{Label: "Meet-Cute", Value: m.MeetCuteDescription},
		render.Fact{Label: "Ending", Value: m.EndingType},
	)
}

func (m *Romance) TableSections() []render.Section {
	return m.sections(render.SectionOf("Romantic Beats", romanticBeatColumns, m.RomanticBeats))
}

func (m *Romance) ExtraPanels() []render.Panel {
	return m.panels(
		bullets("Relationship Dynamics", m.RelationshipDynamics),
		bullets("Conflicts", m.ConflictObstacles),
		render.Panel{Title: "Chemistry", Body: m.ChemistryNotes},
	)
}
