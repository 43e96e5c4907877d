package movies

import (
	"strings"

	"aiss/internal/format"
	"aiss/internal/render"
)

// ActionAdventureDescriptor registers the action and adventure film format.
var ActionAdventureDescriptor = format.Descriptor{
	ID:             format.ActionAdventureMovie,
	Description:    "Cinematic intelligence model for high-octane action and adventure movies, spotlighting spectacle, heroism, and global stakes.",
	KeyTrait:       "Feature-length action narratives built around escalating set pieces and dynamic locales.",
	Instructions:   "Act as a theatrical action analyst delivering a definitive breakdown of an action-adventure movie. Cover the hero's mission, antagonistic forces, marquee set pieces, stunt choreography, tactical gear, and global stakes alongside production scale and release positioning.",
	PromptTemplate: "Create an action-adventure movie breakdown for '{title}', highlighting hero motivation, villains, signature set pieces, stunt craftsmanship, and production scale.",
	New:            func() format.Instance { return &ActionAdventure{} },
}

// ActionAdventure is a set-piece driven action film.
type ActionAdventure struct {
	Base
	HeroMotivation string     `json:"hero_motivation"`
	PrimaryLocales []string   `json:"primary_locales"`
	Antagonists    []string   `json:"antagonists"`
	GearAndTech    []string   `json:"gear_and_tech"`
	StuntTeam      []string   `json:"stunt_team"`
	SetPieces      []SetPiece `json:"set_pieces"`
}

func (m *ActionAdventure) FactPairs() []render.Fact {
	return m.facts(
		render.Fact{Label: "Hero Motivation", Value: m.HeroMotivation},
		render.Fact{Label: "Locales", Value: strings.Join(m.PrimaryLocales, ", ")},
	)
}

func (m *ActionAdventure) TableSections() []render.Section {
	return m.sections(render.SectionOf("Set Pieces", setPieceColumns, m.SetPieces))
}

func (m *ActionAdventure) ExtraPanels() []render.Panel {
	return m.panels(
		bullets("Antagonists", m.Antagonists),
		bullets("Gear & Tech", m.GearAndTech),
		bullets("Stunt Team", m.StuntTeam),
	)
}
