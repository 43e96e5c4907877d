package shows

import (
	"aiss/internal/format"
	"aiss/internal/render"
)

// ActionFantasyDescriptor registers the action, adventure and fantasy series
// format.
var ActionFantasyDescriptor = format.Descriptor{
	ID:          format.ActionAdventureFantasy,
	Description: "High-energy television adventure model capturing world-building depth, serialized quest structure, and production ecosystem insights.",
	KeyTrait:    "Serialized action-fantasy television driven by quests and expansive settings",
	Instructions: "Adopt the voice of a premium television development analyst preparing a sweeping dossier on an action, adventure, or fantasy TV show. " +
		"Chart the world-building foundations, heroic parties, quest arcs, signature locations, artifacts, production scale, stunt and visual effects approach, and release cadence. " +
		"Surface thematic throughlines, tone evolution, creative leadership, and the television distribution footprint alongside critical reception and audience performance so the series feels cinematic yet distinctly serialized.",
	PromptTemplate: "Craft a richly detailed action, adventure, or fantasy TV show brief for '{title}', highlighting world-building, heroic ensembles, landmark quests, production scale, and reception.",
	New:            func() format.Instance { return &ActionFantasy{} },
}

// ActionFantasy is a quest-driven action, adventure or fantasy series.
type ActionFantasy struct {
	Base
	Tagline           string   `json:"tagline"`
	WorldSetting      string   `json:"world_setting"`
	GenreMix          []string `json:"genre_mix"`
	Tone              string   `json:"tone"`
	CoreThemes        []string `json:"core_themes"`
	VisualStyle       string   `json:"visual_style"`
	EffectsApproach   string   `json:"effects_approach"`
	Creators          []string `json:"creators"`
	Showrunners       []string `json:"showrunners"`
	StuntCoordinators []string `json:"stunt_coordinators"`

	Heroes         []Hero          `json:"heroes"`
	QuestArcs      []Quest         `json:"quest_arcs"`
	WorldLocations []WorldLocation `json:"world_locations"`
	Artifacts      []Artifact      `json:"artifacts"`
}

// Hero is a member of the heroic party.
type Hero struct {
	Name         string   `json:"name"`
	Actor        string   `json:"actor"`
	Role         string   `json:"role"`
	Abilities    []string `json:"abilities"`
	Affiliations []string `json:"affiliations"`
	NotableItems []string `json:"notable_items"`
	ArcSummary   string   `json:"arc_summary"`
}

// Quest is one major quest arc.
type Quest struct {
	QuestName   string   `json:"quest_name"`
	Season      int      `json:"season"`
	Objective   string   `json:"objective"`
	Antagonists []string `json:"antagonists"`
	Allies      []string `json:"allies"`
	Stakes      string   `json:"stakes"`
	Resolution  string   `json:"resolution"`
}

// WorldLocation is a key place in the setting.
type WorldLocation struct {
	Name                  string `json:"name"`
	LocaleType            string `json:"locale_type"`
	Description           string `json:"description"`
	ControllingFaction    string `json:"controlling_faction"`
	FirstAppearance       string `json:"first_appearance"`
	NarrativeSignificance string `json:"narrative_significance"`
}

// Artifact is an important object.
type Artifact struct {
	Name           string   `json:"name"`
	Classification string   `json:"classification"`
	Powers         []string `json:"powers"`
	Wielders       []string `json:"wielders"`
	Origin         string   `json:"origin"`
}

var (
	heroColumns = []render.Column{
		{Field: "name", Header: "Hero", Style: "magenta", NoWrap: true},
		{Field: "actor", Header: "Performer", Style: "cyan"},
		{Field: "role", Header: "Role", Style: "yellow"},
		{Field: "abilities", Header: "Abilities"},
		{Field: "arc_summary", Header: "Arc Summary"},
	}
	questColumns = []render.Column{
		{Field: "quest_name", Header: "Quest", Style: "magenta"},
		{Field: "season", Header: "Season", Justify: render.JustifyCenter, Format: render.FormatNumber},
		{Field: "objective", Header: "Objective", Style: "cyan"},
		{Field: "stakes", Header: "Stakes", Style: "yellow"},
		{Field: "resolution", Header: "Resolution"},
	}
	locationColumns = []render.Column{
		{Field: "name", Header: "Location", Style: "magenta"},
		{Field: "locale_type", Header: "Type", Style: "cyan"},
		{Field: "controlling_faction", Header: "Faction", Style: "yellow"},
		{Field: "narrative_significance", Header: "Significance"},
	}
	artifactColumns = []render.Column{
		{Field: "name", Header: "Artifact", Style: "magenta"},
		{Field: "classification", Header: "Type", Style: "cyan"},
		{Field: "powers", Header: "Powers"},
		{Field: "origin", Header: "Origin"},
	}
)

func (s *ActionFantasy) Summary() render.Summary {
	return s.summary("Action/Adventure/Fantasy", s.Tagline)
}

func (s *ActionFantasy) FactPairs() []render.Fact {
	return append(s.baselineFacts(),
		render.Fact{Label: "World", Value: render.Text(s.WorldSetting)},
		render.Fact{Label: "Genre Mix", Value: render.Join(s.GenreMix)},
		render.Fact{Label: "Tone", Value: render.Text(s.Tone)},
		render.Fact{Label: "Visual Style", Value: render.Text(s.VisualStyle)},
		render.Fact{Label: "Effects", Value: render.Text(s.EffectsApproach)},
	)
}

func (s *ActionFantasy) TableSections() []render.Section {
	return append([]render.Section{
		render.SectionOf("Heroes", heroColumns, s.Heroes),
		render.SectionOf("Quest Arcs", questColumns, s.QuestArcs),
		render.SectionOf("World Locations", locationColumns, s.WorldLocations),
		render.SectionOf("Artifacts", artifactColumns, s.Artifacts),
	}, s.tailSections()...)
}

func (s *ActionFantasy) ExtraPanels() []render.Panel {
	return []render.Panel{
		{Title: "Themes", Body: render.Bullets(s.CoreThemes)},
		{Title: "Creative Team", Body: render.Labeled(
			render.Fact{Label: "Creators", Value: render.Inline(s.Creators)},
			render.Fact{Label: "Showrunners", Value: render.Inline(s.Showrunners)},
			render.Fact{Label: "Stunt Coordinators", Value: render.Inline(s.StuntCoordinators)},
		)},
	}
}
