package movies

import (
	"aiss/internal/format"
	"aiss/internal/render"
)

// FantasyScienceFictionDescriptor registers the speculative film format.
var FantasyScienceFictionDescriptor = format.Descriptor{
	ID:             format.FantasyScienceFictionMovie,
	Description:    "Cinematic intelligence model for fantasy and science fiction movies that construct imaginative worlds, technology frontiers, or supernatural systems.",
	KeyTrait:       "Feature-length speculative storytelling anchored in layered world-building.",
	Instructions:   "Adopt the voice of a speculative film curator delivering an in-depth brief on a fantasy or science-fiction movie. Cover world-building pillars, technology or magic systems, major factions, mythology, visual effects collaborators, allegorical themes, and spectacle moments.",
	PromptTemplate: "Outline the fantasy or science-fiction movie '{title}', emphasizing lore, technology or magic frameworks, key factions, and signature spectacle sequences.",
	New:            func() format.Instance { return &FantasyScienceFiction{} },
}

// FantasyScienceFiction is a world-building driven film.
type FantasyScienceFiction struct {
	Base
	WorldBuildingElements []string   `json:"world_building_elements"`
	TechnologyOrMagic     []string   `json:"technology_or_magic"`
	Factions              []string   `json:"factions"`
	MythologyNotes        string     `json:"mythology_notes"`
	Timeline              string     `json:"timeline"`
	VisualEffectsPartners []string   `json:"visual_effects_partners"`
	SignatureSetPieces    []SetPiece `json:"signature_set_pieces"`
}

func (m *FantasyScienceFiction) FactPairs() []render.Fact {
	return m.facts(
		render.Fact{Label: "Timeline", Value: m.Timeline},
		render.Fact{Label: "Mythology", Value: m.MythologyNotes},
	)
}

func (m *FantasyScienceFiction) TableSections() []render.Section {
	return m.sections(render.SectionOf("Signature Set Pieces", setPieceColumns, m.SignatureSetPieces))
}

func (m *FantasyScienceFiction) ExtraPanels() []render.Panel {
	return m.panels(
		bullets("World Building", m.WorldBuildingElements),
		bullets("Technology / Magic", m.TechnologyOrMagic),
		bullets("Factions", m.Factions),
		bullets("VFX Partners", m.VisualEffectsPartners),
	)
}
