package shows

import (
	"aiss/internal/format"
	"aiss/internal/render"
)

const dramaInstructions = "Adopt the voice of a prestige television development executive compiling an in-depth dossier on a drama TV show. " +
	"Deliver a nuanced overview of the premise, tonal identity, primary themes, principal characters and their emotional arcs, " +
	"serialized storylines with conflict and resolution markers, awards trajectory, and international distribution strategy. " +
	"Weave in critical reception highlights and audience metrics so the television drama feels fully positioned in the market."

// DramaDescriptor registers the drama series format.
var DramaDescriptor = format.Descriptor{
	ID:             format.Drama,
	Description:    "Detailed television drama intelligence model capturing serialized storytelling, character evolution, and industry recognition.",
	KeyTrait:       "Emotionally charged serialized TV drama anchored by character arcs",
	Instructions:   dramaInstructions,
	PromptTemplate: "Deliver a richly layered drama TV show brief for '{title}', covering character journeys, serialized arcs, tonal themes, awards profile, and distribution reach.",
	New:            func() format.Instance { return &Drama{} },
}

// Drama is a serialized drama series.
type Drama struct {
	Base
	Logline        string   `json:"logline"`
	Tone           string   `json:"tone"`
	Themes         []string `json:"themes"`
	PrimarySetting string   `json:"primary_setting"`
	Showrunners    []string `json:"showrunners"`
	HeadWriters    []string `json:"head_writers"`
	Directors      []string `json:"directors"`
	Composers      []string `json:"composers"`

	Characters     []DramaCharacter `json:"characters"`
	MajorStoryArcs []DramaStoryArc  `json:"major_story_arcs"`
	Awards         []AwardRecord    `json:"awards"`
}

// DramaCharacter tracks a character's emotional arc.
type DramaCharacter struct {
	Name             string   `json:"name"`
	Actor            string   `json:"actor"`
	ArcSummary       string   `json:"arc_summary"`
	DrivingConflict  string   `json:"driving_conflict"`
	KeyRelationships []string `json:"key_relationships"`
	SeasonIntroduced int      `json:"season_introduced"`
	CurrentStatus    string   `json:"current_status"`
	NotableEpisodes  []string `json:"notable_episodes"`
}

// DramaStoryArc is one serialized storyline.
type DramaStoryArc struct {
	ArcTitle         string   `json:"arc_title"`
	SeasonFocus      int      `json:"season_focus"`
	EpisodeSpan      string   `json:"episode_span"`
	Synopsis         string   `json:"synopsis"`
	PrimaryThemes    []string `json:"primary_themes"`
	ResolutionStatus string   `json:"resolution_status"`
	KeyTurningPoint  string   `json:"key_turning_point"`
}

// AwardRecord is one nomination or win.
type AwardRecord struct {
	AwardBody string `json:"award_body"`
	Category  string `json:"category"`
	Year      int    `json:"year"`
	Recipient string `json:"recipient"`
	Result    string `json:"result"`
	Notes     string `json:"notes"`
}

var (
	dramaCharacterColumns = []render.Column{
		{Field: "name", Header: "Character", Style: "magenta", NoWrap: true},
		{Field: "actor", Header: "Actor", Style: "cyan"},
		{Field: "arc_summary", Header: "Arc Summary"},
		{Field: "driving_conflict", Header: "Conflict"},
		{Field: "season_introduced", Header: "Introduced", Justify: render.JustifyCenter, Format: render.FormatNumber},
		{Field: "current_status", Header: "Status", Style: "yellow"},
	}
	dramaArcColumns = []render.Column{
		{Field: "arc_title", Header: "Arc", Style: "magenta"},
		{Field: "season_focus", Header: "Season", Justify: render.JustifyCenter, Format: render.FormatNumber},
		{Field: "episode_span", Header: "Episodes", Style: "cyan"},
		{Field: "resolution_status", Header: "Status", Style: "yellow"},
		{Field: "key_turning_point", Header: "Turning Point"},
	}
	awardColumns = []render.Column{
		{Field: "year", Header: "Year", Justify: render.JustifyCenter, Format: render.FormatYear},
		{Field: "award_body", Header: "Award", Style: "magenta"},
		{Field: "category", Header: "Category", Style: "cyan"},
		{Field: "recipient", Header: "Recipient"},
		{Field: "result", Header: "Result", Style: "yellow"},
	}
)

func (s *Drama) Summary() render.Summary {
	return s.summary("Drama Series", s.Logline)
}

func (s *Drama) FactPairs() []render.Fact {
	return append(s.baselineFacts(),
		render.Fact{Label: "Tone", Value: render.Text(s.Tone)},
		render.Fact{Label: "Themes", Value: render.Join(s.Themes)},
		render.Fact{Label: "Setting", Value: render.Text(s.PrimarySetting)},
		render.Fact{Label: "Showrunners", Value: render.Join(s.Showrunners)},
	)
}

func (s *Drama) TableSections() []render.Section {
	return append([]render.Section{
		render.SectionOf("Characters", dramaCharacterColumns, s.Characters),
		render.SectionOf("Story Arcs", dramaArcColumns, s.MajorStoryArcs),
		render.SectionOf("Awards", awardColumns, s.Awards),
	}, s.tailSections()...)
}

func (s *Drama) ExtraPanels() []render.Panel {
	return []render.Panel{
		{Title: "Creative Team", Body: render.Labeled(
			render.Fact{Label: "Head Writers", Value: render.Inline(s.HeadWriters)},
			render.Fact{Label: "Directors", Value: render.Inline(s.Directors)},
			render.Fact{Label: "Composers", Value: render.Inline(s.Composers)},
		)},
	}
}
