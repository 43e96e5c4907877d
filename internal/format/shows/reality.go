package shows

import (
	"aiss/internal/format"
	"aiss/internal/render"
)

// RealityDescriptor registers the reality, competition and lifestyle format.
var RealityDescriptor = format.Descriptor{
	ID:          format.RealityCompetitionLifestyle,
	Description: "Unscripted television intelligence model emphasizing format structure, on-camera talent, and audience hooks.",
	KeyTrait:    "Competition or lifestyle TV storytelling powered by real participants",
	Instructions: "Assume the perspective of an unscripted television format analyst preparing a definitive brief on a reality, competition, or lifestyle TV show. " +
		"Break down the host and judge lineup, contestant archetypes, challenge architecture, episodic phases, prize mechanics, production design, and filming locations. " +
		"Highlight tone, audience participation pathways, critical reception, and engagement metrics so the unscripted television property stands apart in the market.",
	PromptTemplate: "Deliver a definitive reality, competition, or lifestyle TV show breakdown for '{title}', spotlighting talent, contestant archetypes, challenges, format phases, and reception.",
	New:            func() format.Instance { return &Reality{} },
}

// Reality is an unscripted competition or lifestyle series.
type Reality struct {
	Base
	FormatDescription string   `json:"format_description"`
	Subgenre          []string `json:"subgenre"`
	Tone              string   `json:"tone"`
	Prize             string   `json:"prize"`
	FilmingLocations  []string `json:"filming_locations"`
	Creators          []string `json:"creators"`
	Showrunners       []string `json:"showrunners"`

	HostsAndJudges []HostJudge   `json:"hosts_and_judges"`
	Participants   []Participant `json:"participants"`
	Challenges     []Challenge   `json:"challenges"`
	FormatPhases   []FormatPhase `json:"format_phases"`
}

// HostJudge is a host, judge or mentor.
type HostJudge struct {
	Name              string   `json:"name"`
	Role              string   `json:"role"`
	Expertise         string   `json:"expertise"`
	PersonalityTraits []string `json:"personality_traits"`
	SeasonsPresent    []int    `json:"seasons_present"`
}

// Participant is a contestant archetype.
type Participant struct {
	Name             string   `json:"name"`
	Archetype        string   `json:"archetype"`
	Background       string   `json:"background"`
	StandoutSkills   []string `json:"standout_skills"`
	SeasonAppearance int      `json:"season_appearance"`
	NotableMoments   []string `json:"notable_moments"`
	FinalOutcome     string   `json:"final_outcome"`
}

// Challenge is a recurring task.
type Challenge struct {
	Name          string `json:"name"`
	ChallengeType string `json:"challenge_type"`
	Description   string `json:"description"`
	Stakes        string `json:"stakes"`
	Reward        string `json:"reward"`
	Frequency     string `json:"frequency"`
}

// FormatPhase is a stage of an episode or season.
type FormatPhase struct {
	PhaseName             string   `json:"phase_name"`
	Description           string   `json:"description"`
	EliminationFormat     string   `json:"elimination_format"`
	AudienceParticipation string   `json:"audience_participation"`
	SignatureElements     []string `json:"signature_elements"`
}

var (
	hostJudgeColumns = []render.Column{
		{Field: "name", Header: "Name", Style: "magenta", NoWrap: true},
		{Field: "role", Header: "Role", Style: "yellow"},
		{Field: "expertise", Header: "Expertise", Style: "cyan"},
	}
	participantColumns = []render.Column{
		{Field: "name", Header: "Participant", Style: "magenta"},
		{Field: "archetype", Header: "Archetype", Style: "yellow"},
		{Field: "background", Header: "Background", Style: "cyan"},
		{Field: "final_outcome", Header: "Outcome"},
	}
	challengeColumns = []render.Column{
		{Field: "name", Header: "Challenge", Style: "magenta"},
		{Field: "challenge_type", Header: "Type", Style: "cyan"},
		{Field: "stakes", Header: "Stakes", Style: "yellow"},
		{Field: "reward", Header: "Reward"},
	}
	phaseColumns = []render.Column{
		{Field: "phase_name", Header: "Phase", Style: "magenta"},
		{Field: "elimination_format", Header: "Elimination", Style: "yellow"},
		{Field: "audience_participation", Header: "Audience Participation", Style: "cyan"},
		{Field: "description", Header: "Description"},
	}
)

func (s *Reality) Summary() render.Summary {
	return s.summary("Reality / Competition", s.FormatDescription)
}

// FactPairs leads with the format hooks before the run facts.
func (s *Reality) FactPairs() []render.Fact {
	facts := []render.Fact{
		{Label: "Subgenre", Value: render.Join(s.Subgenre)},
		{Label: "Tone", Value: render.Text(s.Tone)},
		{Label: "Prize", Value: render.Text(s.Prize)},
		{Label: "Locations", Value: render.Join(s.FilmingLocations)},
	}
	return append(facts, s.baselineFacts()...)
}

func (s *Reality) TableSections() []render.Section {
	return append([]render.Section{
		render.SectionOf("Hosts & Judges", hostJudgeColumns, s.HostsAndJudges),
		render.SectionOf("Participants", participantColumns, s.Participants),
		render.SectionOf("Challenges", challengeColumns, s.Challenges),
		render.SectionOf("Format Phases", phaseColumns, s.FormatPhases),
	}, s.tailSections()...)
}

func (s *Reality) ExtraPanels() []render.Panel {
	return []render.Panel{
		{Title: "Creative Team", Body: render.Labeled(
			render.Fact{Label: "Creators", Value: render.Inline(s.Creators)},
			render.Fact{Label: "Showrunners", Value: render.Inline(s.Showrunners)},
		)},
	}
}
