package shows

import (
	"aiss/internal/format"
	"aiss/internal/render"
)

// ComedyDescriptor registers the comedy series format.
var ComedyDescriptor = format.Descriptor{
	ID:          format.Comedy,
	Description: "Comprehensive intelligence model for humour-driven television series, balancing creative, production, and market context.",
	KeyTrait:    "Television comedy storytelling anchored by recurring humour engines",
	Instructions: "Act as a senior television insights researcher compiling a definitive report on a comedy TV show. " +
		"Deliver an expansive overview of the premise, tonal pillars, comedic engines, ensemble dynamics, " +
		"signature running gags, representative episodes, production context, and the critical and audience response. " +
		"Surface broadcast and distribution footprint, any live audience or improvisational elements, and how the humour " +
		"evolved across seasons so the television comedy feels richly differentiated.",
	PromptTemplate: "Produce a richly detailed comedy TV show brief for '{title}', emphasizing tone, ensemble chemistry, standout comedic beats, and performance metrics.",
	New:            func() format.Instance { return &Comedy{} },
}

// Comedy is a sitcom, sketch show or similar humour-led series.
type Comedy struct {
	Base
	Premise        string   `json:"premise"`
	FormatType     string   `json:"format_type"`
	HumourStyles   []string `json:"humour_styles"`
	Tone           string   `json:"tone"`
	PrimarySetting string   `json:"primary_setting"`
	LiveAudience   bool     `json:"live_audience"`
	ImprovElements string   `json:"improv_elements"`
	WritersRoom    []string `json:"writers_room"`
	Directors      []string `json:"directors"`

	Characters   []ComedyCharacter `json:"characters"`
	EpisodeBeats []ComedyEpisode   `json:"episode_beats"`
	RunningGags  []RunningGag      `json:"running_gags"`
}

// ComedyCharacter is one member of the ensemble.
type ComedyCharacter struct {
	Name              string   `json:"name"`
	Actor             string   `json:"actor"`
	ComedicRole       string   `json:"comedic_role"`
	SignatureGag      string   `json:"signature_gag"`
	Relationships     []string `json:"relationships"`
	Catchphrases      []string `json:"catchphrases"`
	SpotlightEpisodes []string `json:"spotlight_episodes"`
}

// ComedyEpisode is a representative episode or sketch collection.
type ComedyEpisode struct {
	EpisodeTitle  string   `json:"episode_title"`
	Season        int      `json:"season"`
	ComedicEngine string   `json:"comedic_engine"`
	CoreConflict  string   `json:"core_conflict"`
	GuestStars    []string `json:"guest_stars"`
	Resolution    string   `json:"resolution"`
}

// RunningGag is a recurring joke.
type RunningGag struct {
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	FirstAppearance   string   `json:"first_appearance"`
	Frequency         string   `json:"frequency"`
	NotableVariations []string `json:"notable_variations"`
}

var (
	comedyCharacterColumns = []render.Column{
		{Field: "name", Header: "Character", Style: "magenta", NoWrap: true},
		{Field: "actor", Header: "Actor", Style: "cyan"},
		{Field: "comedic_role", Header: "Role", Style: "yellow"},
		{Field: "signature_gag", Header: "Signature Gag"},
	}
	comedyEpisodeColumns = []render.Column{
		{Field: "episode_title", Header: "Episode", Style: "magenta"},
		{Field: "season", Header: "Season", Justify: render.JustifyCenter, Format: render.FormatNumber},
		{Field: "comedic_engine", Header: "Comedic Engine", Style: "cyan"},
		{Field: "resolution", Header: "Resolution"},
	}
	runningGagColumns = []render.Column{
		{Field: "name", Header: "Running Gag", Style: "magenta"},
		{Field: "first_appearance", Header: "First Seen", Style: "cyan"},
		{Field: "frequency", Header: "Frequency", Style: "yellow"},
		{Field: "description", Header: "Description"},
	}
)

func (s *Comedy) Summary() render.Summary {
	return s.summary("Comedy Series", s.Premise)
}

func (s *Comedy) FactPairs() []render.Fact {
	audience := "Single-camera"
	if s.LiveAudience {
		audience = "Live / laugh track"
	}
	return append(s.baselineFacts(),
		render.Fact{Label: "Format", Value: render.Text(s.FormatType)},
		render.Fact{Label: "Tone", Value: render.Text(s.Tone)},
		render.Fact{Label: "Humour Styles", Value: render.Join(s.HumourStyles)},
		render.Fact{Label: "Setting", Value: render.Text(s.PrimarySetting)},
		render.Fact{Label: "Audience", Value: audience},
		render.Fact{Label: "Improv", Value: render.Text(s.ImprovElements)},
	)
}

func (s *Comedy) TableSections() []render.Section {
	return append([]render.Section{
		render.SectionOf("Characters", comedyCharacterColumns, s.Characters),
		render.SectionOf("Running Gags", runningGagColumns, s.RunningGags),
		render.SectionOf("Episode Beats", comedyEpisodeColumns, s.EpisodeBeats),
	}, s.tailSections()...)
}

func (s *Comedy) ExtraPanels() []render.Panel {
	return []render.Panel{
		{Title: "Creative Team", Body: render.Labeled(
			render.Fact{Label: "Writers' Room", Value: render.Inline(s.WritersRoom)},
			render.Fact{Label: "Directors", Value: render.Inline(s.Directors)},
		)},
	}
}
