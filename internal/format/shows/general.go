package shows

import (
	"aiss/internal/format"
	"aiss/internal/render"
)

const generalInstructions = `Provide a detailed summary of the show along with a list of main characters including their actor, relationship to other characters, description, and year joined.
Include information about what network the show was broadcast on, including the network name, country, start year, and end year.
Also include information about the production companies involved in the show, including their name, founded year, year started working on the show, year ended working on the show, and country.`

// GeneralDescriptor is the catch-all television format.
var GeneralDescriptor = format.Descriptor{
	ID:             format.Show,
	Description:    "General television series model covering the premise, principal cast, broadcast history, and production companies of any show.",
	KeyTrait:       "Any episodic television series that no genre-specific format fits better",
	Instructions:   generalInstructions,
	PromptTemplate: "Tell me about the show '{title}' in depth.",
	New:            func() format.Instance { return &General{} },
}

// General is a television series without genre-specific fields.
type General struct {
	Base
	Tagline    string      `json:"tagline"`
	Genres     []string    `json:"genres"`
	Networks   []string    `json:"networks"`
	Characters []Character `json:"characters"`
}

// Character is one principal role.
type Character struct {
	Character    string `json:"character"`
	Actor        string `json:"actor"`
	Relationship string `json:"relationship"`
	Description  string `json:"description"`
	YearJoined   int    `json:"year_joined"`
}

var characterColumns = []render.Column{
	{Field: "character", Header: "Name", Style: "magenta", NoWrap: true},
	{Field: "actor", Header: "Actor", Style: "cyan"},
	{Field: "relationship", Header: "Relationship", Style: "yellow"},
	{Field: "year_joined", Header: "Year Joined", Justify: render.JustifyCenter, Format: render.FormatYear},
	{Field: "description", Header: "Description"},
}

func (s *General) Summary() render.Summary {
	return s.summary(fallbackTitle, s.Tagline)
}

func (s *General) FactPairs() []render.Fact {
	return append(s.baselineFacts(),
		render.Fact{Label: "Genres", Value: render.Join(s.Genres)},
		render.Fact{Label: "Networks", Value: render.Join(s.Networks)},
	)
}

func (s *General) TableSections() []render.Section {
	return append([]render.Section{
		render.SectionOf("Characters", characterColumns, s.Characters),
	}, s.tailSections()...)
}

func (s *General) ExtraPanels() []render.Panel {
	return nil
}
