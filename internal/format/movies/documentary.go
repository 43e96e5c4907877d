package movies

import (
	"aiss/internal/format"
	"aiss/internal/render"
)

// DocumentaryDescriptor registers the documentary and biographical film
// format.
var DocumentaryDescriptor = format.Descriptor{
	ID:             format.DocumentaryBiographicalFilm,
	Description:    "Cinematic intelligence model for documentary and biographical movies that illuminate real people, issues, and events.",
	KeyTrait:       "Fact-driven feature storytelling anchored in real-world insight.",
	Instructions:   "Operate as a documentary film strategist summarizing a documentary or biographical movie. Cover the primary subjects, narrative scope, research rigor, archival materials, interview perspectives, creative liberties, and broader cultural or societal impact.",
	PromptTemplate: "Describe the documentary or biographical movie '{title}', focusing on subjects, narrative framing, research depth, and impact.",
	New:            func() format.Instance { return &Documentary{} },
}

// Documentary is a non-fiction or biographical film.
type Documentary struct {
	Base
	Subjects                []SubjectFocus `json:"subjects"`
	NarrativeScope          string         `json:"narrative_scope"`
	PrimarySources          []string       `json:"primary_sources"`
	Interviewees            []string       `json:"interviewees"`
	HistoricalAccuracyNotes string         `json:"historical_accuracy_notes"`
	DistributionPlatforms   []string       `json:"distribution_platforms"`
	CallToAction            string         `json:"call_to_action"`
}

// SubjectFocus is a person or issue the film covers.
type SubjectFocus struct {
	Subject            string `json:"subject"`
	RoleOrSignificance string `json:"role_or_significance"`
	TimePeriod         string `json:"time_period"`
	Perspective        string `json:"perspective"`
}

var subjectColumns = []render.Column{
	{Field: "subject", Header: "Subject", Style: "magenta"},
	{Field: "role_or_significance", Header: "Significance", Style: "cyan"},
	{Field: "time_period", Header: "Time Period", Style: "yellow"},
	{Field: "perspective", Header: "Perspective", Style: "green"},
}

func (m *Documentary) FactPairs() []render.Fact {
	return m.facts(
		render.Fact{Label: "Scope", Value: m.NarrativeScope},
		render.Fact{Label: "Call to Action", Value: m.CallToAction},
		render.Fact{Label: "Accuracy", Value: m.HistoricalAccuracyNotes},
	)
}

func (m *Documentary) TableSections() []render.Section {
	return m.sections(render.SectionOf("Subjects", subjectColumns, m.Subjects))
}

func (m *Documentary) ExtraPanels() []render.Panel {
	return m.panels(
		bullets("Primary Sources", m.PrimarySources),
		bullets("Interviewees", m.Interviewees),
		bullets("Distribution", m.DistributionPlatforms),
	)
}
