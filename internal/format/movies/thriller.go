package movies

import (
	"aiss/internal/format"
	"aiss/internal/render"
)

// ThrillerDescriptor registers the thriller, mystery and crime film format.
var ThrillerDescriptor = format.Descriptor{
	ID:             format.ThrillerMysteryCrimeMovie,
	Description:    "Cinematic intelligence model for thriller, mystery, and crime movies driven by investigations, deception, and psychological stakes.",
	KeyTrait:       "Feature-length suspense narratives built on investigations, twists, and escalating tension.",
	Instructions:   "Adopt the vantage of a thriller acquisitions executive crafting a suspense brief on a thriller, mystery, or crime movie. Detail the central mystery, investigative threads, suspects, reveals, mood, production atmosphere choices, and audience payoff.",
	PromptTemplate: "Summarize the thriller, mystery, or crime movie '{title}', focusing on investigative structure, suspects, twists, and tonal mood.",
	New:            func() format.Instance { return &Thriller{} },
}

// Thriller is an investigation-driven suspense film.
type Thriller struct {
	Base
	NarrativeHook          string                `json:"narrative_hook"`
	InvestigationThreads   []InvestigationThread `json:"investigation_threads"`
	Twists                 []string              `json:"twists"`
	Suspects               []string              `json:"suspects"`
	LawEnforcementAgencies []string              `json:"law_enforcement_agencies"`
	TensionProfile         string                `json:"tension_profile"`
	EvidenceChain          []string              `json:"evidence_chain"`
}

// InvestigationThread tracks one line of inquiry.
type InvestigationThread struct {
	Thread         string   `json:"thread"`
	SuspectOrFocus string   `json:"suspect_or_focus"`
	Clues          []string `json:"clues"`
	Status         string   `json:"status"`
}

var investigationColumns = []render.Column{
	{Field: "thread", Header: "Thread", Style: "magenta"},
	{Field: "suspect_or_focus", Header: "Focus", Style: "cyan"},
	{Field: "status", Header: "Status", Style: "yellow"},
}

func (m *Thriller) FactPairs() []render.Fact {
	return m.facts(
		render.Fact{Label: "Hook", Value: m.NarrativeHook},
		render.Fact{Label: "Tension", Value: m.TensionProfile},
	)
}

func (m *Thriller) TableSections() []render.Section {
	return m.sections(render.SectionOf("Investigation Threads", investigationColumns, m.InvestigationThreads))
}

func (m *Thriller) ExtraPanels() []render.Panel {
	return m.panels(
		bullets("Twists", m.Twists),
		bullets("Suspects", m.Suspects),
		bullets("Evidence Chain", m.EvidenceChain),
		bullets("Agencies", m.LawEnforcementAgencies),
	)
}
