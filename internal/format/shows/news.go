package shows

import (
	"aiss/internal/format"
	"aiss/internal/render"
)

// NewsDescriptor registers the news and informational programme format.
var NewsDescriptor = format.Descriptor{
	ID:          format.NewsInformational,
	Description: "Television news intelligence model capturing editorial architecture, on-air talent, and platform footprint.",
	KeyTrait:    "Timely, verified public-interest journalism delivered as a TV programme",
	Instructions: "Position yourself as a broadcast news strategist assembling a definitive dossier on a news or informational TV show. " +
		"Detail the anchor team, correspondents, recurring segments, editorial focus, verification standards, production operations, scheduling cadence, and digital extensions. " +
		"Summarize signature coverage moments, critical reception, awards, and audience metrics so the television programme's authority and reach are unmistakable.",
	PromptTemplate: "Deliver a comprehensive news or informational TV show overview for '{title}', covering talent lineup, segment structure, editorial standards, distribution, and audience performance.",
	New:            func() format.Instance { return &News{} },
}

// News is a news or current affairs programme.
type News struct {
	Programme
	ProductionLocation  string   `json:"production_location"`
	EditorialFocus      []string `json:"editorial_focus"`
	FactCheckPhilosophy string   `json:"fact_check_philosophy"`
	VerificationSources []string `json:"verification_sources"`
	DigitalPlatforms    []string `json:"digital_platforms"`

	Anchors              []Anchor              `json:"anchors"`
	SegmentBlueprints    []NewsSegment         `json:"segment_blueprints"`
	CorrespondentReports []CorrespondentReport `json:"correspondent_reports"`
	FactCheckProcess     []FactCheckStep       `json:"fact_check_process"`
}

// Anchor is an anchor or presenter.
type Anchor struct {
	Name        string `json:"name"`
	Role        string `json:"role"`
	Expertise   string `json:"expertise"`
	Tone        string `json:"tone"`
	TenureYears int    `json:"tenure_years"`
}

// NewsSegment is a recurring segment.
type NewsSegment struct {
	Name            string   `json:"name"`
	FormatType      string   `json:"format_type"`
	DurationMinutes int      `json:"duration_minutes"`
	Hosts           []string `json:"hosts"`
	Focus           string   `json:"focus"`
	Recurrence      string   `json:"recurrence"`
}

// CorrespondentReport summarises one field report.
type CorrespondentReport struct {
	Correspondent string `json:"correspondent"`
	Location      string `json:"location"`
	Topic         string `json:"topic"`
	Status        string `json:"status"`
	Date          string `json:"date"`
}

// FactCheckStep is one step of the verification workflow.
type FactCheckStep struct {
	Step            string `json:"step"`
	Description     string `json:"description"`
	ResponsibleTeam string `json:"responsible_team"`
}

var (
	anchorColumns = []render.Column{
		{Field: "name", Header: "Anchor", Style: "magenta", NoWrap: true},
		{Field: "role", Header: "Role", Style: "yellow"},
		{Field: "expertise", Header: "Expertise", Style: "cyan"},
		{Field: "tenure_years", Header: "Tenure", Justify: render.JustifyCenter, Format: render.FormatNumber},
	}
	newsSegmentColumns = []render.Column{
		{Field: "name", Header: "Segment", Style: "magenta"},
		{Field: "format_type", Header: "Format", Style: "cyan"},
		{Field: "duration_minutes", Header: "Duration", Justify: render.JustifyCenter, Format: render.FormatRuntime},
		{Field: "focus", Header: "Focus"},
	}
	reportColumns = []render.Column{
		{Field: "correspondent", Header: "Correspondent", Style: "magenta"},
		{Field: "location", Header: "Location", Style: "cyan"},
		{Field: "topic", Header: "Topic"},
		{Field: "status", Header: "Status", Style: "yellow"},
	}
	factCheckColumns = []render.Column{
		{Field: "step", Header: "Step", Style: "magenta"},
		{Field: "responsible_team", Header: "Team", Style: "cyan"},
		{Field: "description", Header: "Description"},
	}
)

func (s *News) Summary() render.Summary {
	return s.summary("News / Informational", "")
}

func (s *News) FactPairs() []render.Fact {
	return append(s.scheduleFacts(),
		render.Fact{Label: "Location", Value: render.Text(s.ProductionLocation)},
		render.Fact{Label: "Tone", Value: render.Text(s.Tone)},
		render.Fact{Label: "Editorial Focus", Value: render.Join(s.EditorialFocus)},
		render.Fact{Label: "Verification", Value: render.Text(s.FactCheckPhilosophy)},
		render.Fact{Label: "Digital", Value: render.Join(s.DigitalPlatforms)},
	)
}

func (s *News) TableSections() []render.Section {
	return append([]render.Section{
		render.SectionOf("Anchors", anchorColumns, s.Anchors),
		render.SectionOf("Segments", newsSegmentColumns, s.SegmentBlueprints),
		render.SectionOf("Correspondent Reports", reportColumns, s.CorrespondentReports),
		render.SectionOf("Fact-Check Process", factCheckColumns, s.FactCheckProcess),
	}, s.tailSections()...)
}

func (s *News) ExtraPanels() []render.Panel {
	return []render.Panel{
		{Title: "Verification Sources", Body: render.Bullets(s.VerificationSources)},
		s.producersPanel(),
	}
}
