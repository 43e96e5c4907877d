package shows

import (
	"aiss/internal/format"
	"aiss/internal/render"
)

// ThrillerDescriptor registers the thriller, crime and mystery series format.
var ThrillerDescriptor = format.Descriptor{
	ID:          format.Thriller,
	Description: "Suspense television intelligence model spotlighting investigative craft, tension architecture, and market positioning.",
	KeyTrait:    "High-stakes crime or mystery TV engineered for sustained suspense",
	Instructions: "Operate as a scripted television analyst preparing a gripping briefing on a thriller, crime, or mystery TV show. " +
		"Lay out the investigative team, signature cases, antagonists, narrative structure, pacing devices, tonal palette, and thematic obsessions. " +
		"Discuss production context, subject-matter consultants, broadcast strategy, and critical versus audience response so the suspense-driven television property feels distinctive.",
	PromptTemplate: "Deliver a high-tension thriller TV show analysis for '{title}', covering investigators, signature cases, antagonists, structure, and reception.",
	New:            func() format.Instance { return &Thriller{} },
}

// Thriller is a suspense-driven crime or mystery series.
type Thriller struct {
	Base
	Tagline            string   `json:"tagline"`
	Subgenre           string   `json:"subgenre"`
	NarrativeStructure string   `json:"narrative_structure"`
	Tone               string   `json:"tone"`
	Themes             []string `json:"themes"`
	ViolenceLevel      string   `json:"violence_level"`
	Creators           []string `json:"creators"`
	Showrunners        []string `json:"showrunners"`
	Consultants        []string `json:"consultants"`

	Investigators []Investigator `json:"investigators"`
	MajorCases    []CaseFile     `json:"major_cases"`
	Antagonists   []Antagonist   `json:"antagonists"`
}

// Investigator is one member of the investigative team.
type Investigator struct {
	Name               string `json:"name"`
	Actor              string `json:"actor"`
	Role               string `json:"role"`
	Specialty          string `json:"specialty"`
	PersonalMotivation string `json:"personal_motivation"`
	MoralAlignment     string `json:"moral_alignment"`
	Status             string `json:"status"`
}

// CaseFile is a signature case or arc.
type CaseFile struct {
	CaseName            string   `json:"case_name"`
	Season              int      `json:"season"`
	Synopsis            string   `json:"synopsis"`
	Stakes              string   `json:"stakes"`
	KeyTwist            string   `json:"key_twist"`
	ResolutionStatus    string   `json:"resolution_status"`
	AntagonistsInvolved []string `json:"antagonists_involved"`
}

// Antagonist is a principal opponent.
type Antagonist struct {
	Name           string `json:"name"`
	Actor          string `json:"actor"`
	Motive         string `json:"motive"`
	Methodology    string `json:"methodology"`
	Affiliation    string `json:"affiliation"`
	SeasonPresence []int  `json:"season_presence"`
	Fate           string `json:"fate"`
}

var (
	investigatorColumns = []render.Column{
		{Field: "name", Header: "Investigator", Style: "magenta", NoWrap: true},
		{Field: "actor", Header: "Actor", Style: "cyan"},
		{Field: "role", Header: "Role", Style: "yellow"},
		{Field: "specialty", Header: "Specialty"},
		{Field: "moral_alignment", Header: "Alignment"},
	}
	caseColumns = []render.Column{
		{Field: "case_name", Header: "Case", Style: "magenta"},
		{Field: "season", Header: "Season", Justify: render.JustifyCenter, Format: render.FormatNumber},
		{Field: "stakes", Header: "Stakes", Style: "yellow"},
		{Field: "resolution_status", Header: "Status", Style: "cyan"},
		{Field: "key_twist", Header: "Key Twist"},
	}
	antagonistColumns = []render.Column{
		{Field: "name", Header: "Antagonist", Style: "magenta"},
		{Field: "motive", Header: "Motive", Style: "yellow"},
		{Field: "methodology", Header: "Method"},
		{Field: "affiliation", Header: "Affiliation", Style: "cyan"},
		{Field: "season_presence", Header: "Seasons", Justify: render.JustifyCenter},
		{Field: "fate", Header: "Fate"},
	}
)

func (s *Thriller) Summary() render.Summary {
	return s.summary("Thriller Series", s.Tagline)
}

func (s *Thriller) FactPairs() []render.Fact {
	return append(s.baselineFacts(),
		render.Fact{Label: "Subgenre", Value: render.Text(s.Subgenre)},
		render.Fact{Label: "Tone", Value: render.Text(s.Tone)},
		render.Fact{Label: "Structure", Value: render.Text(s.NarrativeStructure)},
		render.Fact{Label: "Violence", Value: render.Text(s.ViolenceLevel)},
		render.Fact{Label: "Themes", Value: render.Join(s.Themes)},
	)
}

func (s *Thriller) TableSections() []render.Section {
	return append([]render.Section{
		render.SectionOf("Investigators", investigatorColumns, s.Investigators),
		render.SectionOf("Major Cases", caseColumns, s.MajorCases),
		render.SectionOf("Antagonists", antagonistColumns, s.Antagonists),
	}, s.tailSections()...)
}

func (s *Thriller) ExtraPanels() []render.Panel {
	return []render.Panel{
		{Title: "Creative Team", Body: render.Labeled(
			render.Fact{Label: "Creators", Value: render.Inline(s.Creators)},
			render.Fact{Label: "Showrunners", Value: render.Inline(s.Showrunners)},
			render.Fact{Label: "Consultants", Value: render.Inline(s.Consultants)},
		)},
	}
}
