package shows

import (
	"aiss/internal/format"
	"aiss/internal/render"
)

// ScienceFictionDescriptor registers the science fiction series format.
var ScienceFictionDescriptor = format.Descriptor{
	ID:          format.ScienceFiction,
	Description: "Speculative television intelligence model synthesizing world-building, scientific themes, and production context.",
	KeyTrait:    "Technology-driven TV storytelling exploring future-facing ideas",
	Instructions: "Write as a speculative television researcher compiling a high-impact briefing on a science fiction TV show. " +
		"Explain the premise, world-building, core ensemble, speculative technologies, timeline disruptions, scientific disciplines explored, and philosophical questions posed. " +
		"Outline production design choices, effects methodology, distribution footprint, critical reception, and audience response so the sci-fi television property feels visionary and distinct.",
	PromptTemplate: "Produce a comprehensive science fiction TV show briefing for '{title}', highlighting world-building, speculative technology, timeline events, and creative reception.",
	New:            func() format.Instance { return &ScienceFiction{} },
}

// ScienceFiction is a speculative series.
type ScienceFiction struct {
	Base
	Premise                string   `json:"premise"`
	WorldSetting           string   `json:"world_setting"`
	Subgenre               string   `json:"subgenre"`
	ScientificFocus        []string `json:"scientific_focus"`
	PhilosophicalQuestions []string `json:"philosophical_questions"`
	Tone                   string   `json:"tone"`
	Creators               []string `json:"creators"`
	Showrunners            []string `json:"showrunners"`
	ScientificConsultants  []string `json:"scientific_consultants"`

	Characters     []SciFiCharacter    `json:"characters"`
	Technologies   []TechnologyConcept `json:"technologies"`
	TimelineEvents []TimelineEvent     `json:"timeline_events"`
	Themes         []ScientificTheme   `json:"themes"`
}

// SciFiCharacter is a member of the crew or cast.
type SciFiCharacter struct {
	Name             string `json:"name"`
	Actor            string `json:"actor"`
	Role             string `json:"role"`
	SpeciesOrOrigin  string `json:"species_or_origin"`
	Specialization   string `json:"specialization"`
	EthicalAlignment string `json:"ethical_alignment"`
	ArcSummary       string `json:"arc_summary"`
}

// TechnologyConcept is a speculative technology.
type TechnologyConcept struct {
	Name                string `json:"name"`
	Category            string `json:"category"`
	Description         string `json:"description"`
	IntroducedIn        string `json:"introduced_in"`
	ScientificBasis     string `json:"scientific_basis"`
	EthicalImplications string `json:"ethical_implications"`
}

// TimelineEvent is an in-universe event.
type TimelineEvent struct {
	Year       int      `json:"year"`
	Event      string   `json:"event"`
	Location   string   `json:"location"`
	Impact     string   `json:"impact"`
	FeaturedIn []string `json:"featured_in"`
}

// ScientificTheme is a recurring idea the series explores.
type ScientificTheme struct {
	Theme                  string   `json:"theme"`
	Question               string   `json:"question"`
	RepresentativeEpisodes []string `json:"representative_episodes"`
	HumanImplication       string   `json:"human_implication"`
}

var (
	sciFiCharacterColumns = []render.Column{
		{Field: "name", Header: "Character", Style: "magenta", NoWrap: true},
		{Field: "actor", Header: "Performer", Style: "cyan"},
		{Field: "role", Header: "Role", Style: "yellow"},
		{Field: "specialization", Header: "Specialization"},
		{Field: "species_or_origin", Header: "Origin"},
	}
	technologyColumns = []render.Column{
		{Field: "name", Header: "Technology", Style: "magenta"},
		{Field: "category", Header: "Category", Style: "cyan"},
		{Field: "scientific_basis", Header: "Scientific Basis"},
		{Field: "ethical_implications", Header: "Ethical Implications"},
	}
	// In-universe years can sit far in the future, so they are shown as
	// plain numbers rather than through the calendar-year formatter.
	timelineColumns = []render.Column{
		{Field: "year", Header: "Year", Justify: render.JustifyCenter},
		{Field: "event", Header: "Event", Style: "magenta"},
		{Field: "location", Header: "Location", Style: "cyan"},
		{Field: "impact", Header: "Impact"},
	}
	scientificThemeColumns = []render.Column{
		{Field: "theme", Header: "Theme", Style: "magenta"},
		{Field: "question", Header: "Guiding Question", Style: "cyan"},
		{Field: "human_implication", Header: "Human Implication"},
	}
)

func (s *ScienceFiction) Summary() render.Summary {
	return s.summary("Science Fiction Series", s.Premise)
}

func (s *ScienceFiction) FactPairs() []render.Fact {
	return append(s.baselineFacts(),
		render.Fact{Label: "Setting", Value: render.Text(s.WorldSetting)},
		render.Fact{Label: "Subgenre", Value: render.Text(s.Subgenre)},
		render.Fact{Label: "Tone", Value: render.Text(s.Tone)},
		render.Fact{Label: "Science", Value: render.Join(s.ScientificFocus)},
	)
}

func (s *ScienceFiction) TableSections() []render.Section {
	return append([]render.Section{
		render.SectionOf("Characters", sciFiCharacterColumns, s.Characters),
		render.SectionOf("Technologies", technologyColumns, s.Technologies),
		render.SectionOf("Timeline", timelineColumns, s.TimelineEvents),
		render.SectionOf("Themes", scientificThemeColumns, s.Themes),
	}, s.tailSections()...)
}

func (s *ScienceFiction) ExtraPanels() []render.Panel {
	return []render.Panel{
		{Title: "Philosophical Questions", Body: render.Bullets(s.PhilosophicalQuestions)},
		{Title: "Creative Team", Body: render.Labeled(
			render.Fact{Label: "Creators", Value: render.Inline(s.Creators)},
			render.Fact{Label: "Showrunners", Value: render.Inline(s.Showrunners)},
			render.Fact{Label: "Scientific Consultants", Value: render.Inline(s.ScientificConsultants)},
		)},
	}
}
