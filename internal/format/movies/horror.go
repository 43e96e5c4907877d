package movies

import (
	"aiss/internal/format"
	"aiss/internal/render"
)

// HorrorDescriptor registers the horror film format.
var HorrorDescriptor = format.Descriptor{
	ID:             format.HorrorMovie,
	Description:    "Cinematic intelligence model for horror movies engineered to provoke dread through atmosphere, threat design, and psychological unease.",
	KeyTrait:       "Feature-length horror storytelling orchestrating fear, tension, and survival stakes.",
	Instructions:   "Operate as a genre programming executive delivering a definitive horror movie dossier. Detail the subgenre, threat entities, scare construction, survival trajectories, thematic undercurrents, and production craft that amplify dread.",
	PromptTemplate: "Deliver an in-depth horror movie breakdown for '{title}', emphasizing threat design, scare tactics, survivors, and thematic commentary.",
	New:            func() format.Instance { return &Horror{} },
}

// Horror is a fear-driven film.
type Horror struct {
	Base
	Subgenre       string       `json:"subgenre"`
	ThreatEntities []string     `json:"threat_entities"`
	FearMoments    []FearMoment `json:"fear_moments"`
	GoreLevel      string       `json:"gore_level"`
	Atmosphere     string       `json:"atmosphere"`
	FinalSurvivors []string     `json:"final_survivors"`
	ThematicNotes  []string     `json:"thematic_notes"`
}

// FearMoment is a major scare or dread beat.
type FearMoment struct {
	MomentName        string   `json:"moment_name"`
	TypeOfFear        string   `json:"type_of_fear"`
	Setup             string   `json:"setup"`
	Payoff            string   `json:"payoff"`
	SurvivorsInvolved []string `json:"survivors_involved"`
}

var fearMomentColumns = []render.Column{
	{Field: "moment_name", Header: "Moment", Style: "magenta"},
	{Field: "type_of_fear", Header: "Fear Type", Style: "cyan"},
	{Field: "payoff", Header: "Payoff", Style: "yellow"},
}

func (m *Horror) FactPairs() []render.Fact {
	return m.facts(
		render.Fact{Label: "Subgenre", Value: m.Subgenre},
		render.Fact{Label: "Gore", Value: m.GoreLevel},
		render.Fact{Label: "Atmosphere", Value: m.Atmosphere},
	)
}

func (m *Horror) TableSections() []render.Section {
	return m.sections(render.SectionOf("Fear Moments", fearMomentColumns, m.FearMoments))
}

func (m *Horror) ExtraPanels() []render.Panel {
	return m.panels(
		bullets("Threat Entities", m.ThreatEntities),
		bullets("Final Survivors", m.FinalSurvivors),
		bullets("Themes", m.ThematicNotes),
	)
}
