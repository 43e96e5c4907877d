package shows

import (
	"aiss/internal/format"
	"aiss/internal/render"
)

// DocumentaryDescriptor registers the documentary and factual series format.
var DocumentaryDescriptor = format.Descriptor{
	ID:          format.DocumentaryFactual,
	Description: "Comprehensive factual television model capturing investigative craft, storytelling design, and platform reach.",
	KeyTrait:    "Non-fiction television that informs through investigative or observational storytelling",
	Instructions: "Assume the role of a factual television commissioner assembling an authoritative report on a documentary or factual TV show. " +
		"Map the editorial scope, narrative methodology, signature episodes, interview subjects, archival resources, and production techniques. " +
		"Explain the series' educational or cultural impact, critical reception, awards journey, distribution footprint, and audience engagement so the television property feels thoroughly contextualized.",
	PromptTemplate: "Deliver a richly detailed documentary or factual TV show overview for '{title}', highlighting scope, storytelling approach, signature episodes, key contributors, and impact.",
	New:            func() format.Instance { return &Documentary{} },
}

// Documentary is a non-fiction series.
type Documentary struct {
	Base
	Scope            string   `json:"scope"`
	NarrativeStyle   string   `json:"narrative_style"`
	Tone             string   `json:"tone"`
	ProductionStyle  string   `json:"production_style"`
	Directors        []string `json:"directors"`
	Narrators        []string `json:"narrators"`
	Cinematographers []string `json:"cinematographers"`

	Episodes          []DocumentaryEpisode `json:"episodes"`
	InterviewSubjects []InterviewSubject   `json:"interview_subjects"`
	ArchiveMaterials  []ArchiveMaterial    `json:"archive_materials"`
	Insights          []Insight            `json:"insights"`
}

// DocumentaryEpisode is a key episode.
type DocumentaryEpisode struct {
	Title            string   `json:"title"`
	Focus            string   `json:"focus"`
	RuntimeMinutes   int      `json:"runtime_minutes"`
	KeySubjects      []string `json:"key_subjects"`
	NarrativeDevices []string `json:"narrative_devices"`
}

// InterviewSubject is a featured contributor.
type InterviewSubject struct {
	Name          string `json:"name"`
	Expertise     string `json:"expertise"`
	Affiliation   string `json:"affiliation"`
	RoleInStory   string `json:"role_in_story"`
	StandoutQuote string `json:"standout_quote"`
}

// ArchiveMaterial is sourced footage or documents.
type ArchiveMaterial struct {
	MaterialType string `json:"material_type"`
	Description  string `json:"description"`
	Source       string `json:"source"`
	Year         int    `json:"year"`
	Usage        string `json:"usage"`
}

// Insight is a conclusion the series delivers.
type Insight struct {
	Topic              string   `json:"topic"`
	Takeaway           string   `json:"takeaway"`
	SupportingEvidence []string `json:"supporting_evidence"`
	ImpactStatement    string   `json:"impact_statement"`
}

var (
	documentaryEpisodeColumns = []render.Column{
		{Field: "title", Header: "Episode", Style: "magenta"},
		{Field: "focus", Header: "Focus", Style: "cyan"},
		{Field: "runtime_minutes", Header: "Runtime", Justify: render.JustifyRight, Format: render.FormatRuntime},
	}
	interviewColumns = []render.Column{
		{Field: "name", Header: "Subject", Style: "magenta", NoWrap: true},
		{Field: "expertise", Header: "Expertise", Style: "cyan"},
		{Field: "affiliation", Header: "Affiliation"},
		{Field: "role_in_story", Header: "Story Role", Style: "yellow"},
	}
	archiveColumns = []render.Column{
		{Field: "material_type", Header: "Material", Style: "magenta"},
		{Field: "source", Header: "Source", Style: "cyan"},
		{Field: "year", Header: "Year", Justify: render.JustifyCenter, Format: render.FormatYear},
		{Field: "usage", Header: "Usage"},
	}
	insightColumns = []render.Column{
		{Field: "topic", Header: "Topic", Style: "magenta"},
		{Field: "takeaway", Header: "Takeaway", Style: "cyan"},
		{Field: "impact_statement", Header: "Impact"},
	}
)

func (s *Documentary) Summary() render.Summary {
	return s.summary("Documentary / Factual", s.Scope)
}

func (s *Documentary) FactPairs() []render.Fact {
	return append(s.baselineFacts(),
		render.Fact{Label: "Style", Value: render.Text(s.NarrativeStyle)},
		render.Fact{Label: "Tone", Value: render.Text(s.Tone)},
		render.Fact{Label: "Production Style", Value: render.Text(s.ProductionStyle)},
	)
}

func (s *Documentary) TableSections() []render.Section {
	return append([]render.Section{
		render.SectionOf("Episodes", documentaryEpisodeColumns, s.Episodes),
		render.SectionOf("Interview Subjects", interviewColumns, s.InterviewSubjects),
		render.SectionOf("Archive Materials", archiveColumns, s.ArchiveMaterials),
		render.SectionOf("Insights", insightColumns, s.Insights),
	}, s.tailSections()...)
}

func (s *Documentary) ExtraPanels() []render.Panel {
	return []render.Panel{
		{Title: "Crew", Body: render.Labeled(
			render.Fact{Label: "Directors", Value: render.Inline(s.Directors)},
			render.Fact{Label: "Narrators", Value: render.Inline(s.Narrators)},
			render.Fact{Label: "Cinematographers", Value: render.Inline(s.Cinematographers)},
		)},
	}
}
