package movies

import (
	"aiss/internal/format"
	"aiss/internal/render"
)

const generalInstructions = `Provide a detailed summary of the movie along with the main cast,
their actors, key crew (director(s), producers), production companies, release year,
runtime, genres, and box-office/budget information.`

// GeneralDescriptor is the catch-all film format.
var GeneralDescriptor = format.Descriptor{
	ID:             format.Movie,
	Description:    "General feature film model covering synopsis, principal cast, key crew, production companies, and box office for any movie.",
	KeyTrait:       "Any feature film that no genre-specific format fits better",
	Instructions:   generalInstructions,
	PromptTemplate: "Tell me about the movie '{title}' in depth.",
	New:            func() format.Instance { return &General{} },
}

// General is a film without genre-specific fields.
type General struct {
	Base
}

func (m *General) FactPairs() []render.Fact { return m.facts() }

func (m *General) TableSections() []render.Section { return m.sections() }

func (m *General) ExtraPanels() []render.Panel { return m.panels() }
