package shows

import (
	"aiss/internal/format"
	"aiss/internal/render"
)

// SportsDescriptor registers the sports programme format.
var SportsDescriptor = format.Descriptor{
	ID:          format.Sports,
	Description: "Sports television intelligence model encapsulating live and studio coverage strategy, rights positioning, and audience impact.",
	KeyTrait:    "Rights-driven sports TV coverage blending live action and analysis",
	Instructions: "Step into the role of a sports television programming strategist preparing a comprehensive dossier on a sports TV show. " +
		"Detail the presenter and analyst bench, recurring coverage segments, featured teams or athletes, seasonal event calendar, rights landscape, production approach, digital extensions, and monetization tactics. " +
		"Capture distribution footprint, critical response, and audience performance so the sports television brand stands out.",
	PromptTemplate: "Deliver a full-spectrum sports TV show overview for '{title}', detailing presenters, coverage segments, seasonal plans, rights context, and performance metrics.",
	New:            func() format.Instance { return &Sports{} },
}

// Sports is a live or studio sports programme.
type Sports struct {
	Programme
	SportsCovered    []string `json:"sports_covered"`
	FlagshipElements []string `json:"flagship_elements"`
	ProductionStyle  string   `json:"production_style"`
	RightsOverview   string   `json:"rights_overview"`
	DigitalStrategy  []string `json:"digital_strategy"`
	Monetization     []string `json:"monetization"`

	Presenters       []Presenter       `json:"presenters"`
	CoverageSegments []CoverageSegment `json:"coverage_segments"`
	TeamFeatures     []TeamFeature     `json:"team_features"`
	SeasonalEvents   []SeasonEvent     `json:"seasonal_events"`
	StatHighlights   []StatHighlight   `json:"stat_highlights"`
}

// Presenter is a host, analyst or commentator.
type Presenter struct {
	Name          string `json:"name"`
	Role          string `json:"role"`
	Expertise     string `json:"expertise"`
	FormerAthlete bool   `json:"former_athlete"`
	Tone          string `json:"tone"`
}

// CoverageSegment is a recurring segment.
type CoverageSegment struct {
	Name            string   `json:"name"`
	Sport           string   `json:"sport"`
	Focus           string   `json:"focus"`
	ScheduleSlot    string   `json:"schedule_slot"`
	Hosts           []string `json:"hosts"`
	DurationMinutes int      `json:"duration_minutes"`
}

// TeamFeature is a story on a team or athlete.
type TeamFeature struct {
	Subject        string `json:"subject"`
	League         string `json:"league"`
	FeatureType    string `json:"feature_type"`
	Storyline      string `json:"storyline"`
	StatsHighlight string `json:"stats_highlight"`
}

// SeasonEvent is a block of event coverage.
type SeasonEvent struct {
	EventName    string `json:"event_name"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	CoveragePlan string `json:"coverage_plan"`
	RightsHolder string `json:"rights_holder"`
}

// StatHighlight is a statistic featured in coverage.
type StatHighlight struct {
	Metric    string `json:"metric"`
	Leader    string `json:"leader"`
	Timeframe string `json:"timeframe"`
	Context   string `json:"context"`
}

var (
	presenterColumns = []render.Column{
		{Field: "name", Header: "Presenter", Style: "magenta", NoWrap: true},
		{Field: "role", Header: "Role", Style: "yellow"},
		{Field: "expertise", Header: "Expertise", Style: "cyan"},
		{Field: "tone", Header: "Tone"},
	}
	coverageColumns = []render.Column{
		{Field: "name", Header: "Segment", Style: "magenta"},
		{Field: "sport", Header: "Sport", Style: "cyan"},
		{Field: "focus", Header: "Focus", Style: "yellow"},
		{Field: "duration_minutes", Header: "Duration", Justify: render.JustifyCenter, Format: render.FormatRuntime},
	}
	featureColumns = []render.Column{
		{Field: "subject", Header: "Subject", Style: "magenta"},
		{Field: "league", Header: "League", Style: "cyan"},
		{Field: "feature_type", Header: "Feature Type", Style: "yellow"},
		{Field: "stats_highlight", Header: "Highlight"},
	}
	seasonEventColumns = []render.Column{
		{Field: "event_name", Header: "Event", Style: "magenta"},
		{Field: "start_date", Header: "Start", Style: "cyan"},
		{Field: "end_date", Header: "End"},
		{Field: "coverage_plan", Header: "Coverage Plan"},
		{Field: "rights_holder", Header: "Rights Holder", Style: "yellow"},
	}
	statColumns = []render.Column{
		{Field: "metric", Header: "Metric", Style: "magenta"},
		{Field: "leader", Header: "Leader", Style: "cyan"},
		{Field: "timeframe", Header: "Timeframe", Style: "yellow"},
		{Field: "context", Header: "Context"},
	}
)

func (s *Sports) Summary() render.Summary {
	return s.summary("Sports Programme", "")
}

func (s *Sports) FactPairs() []render.Fact {
	return append(s.scheduleFacts(),
		render.Fact{Label: "Sports", Value: render.Join(s.SportsCovered)},
		render.Fact{Label: "Flagship", Value: render.Join(s.FlagshipElements)},
		render.Fact{Label: "Production", Value: render.Text(s.ProductionStyle)},
		render.Fact{Label: "Tone", Value: render.Text(s.Tone)},
		render.Fact{Label: "Rights", Value: render.Text(s.RightsOverview)},
		render.Fact{Label: "Digital", Value: render.Join(s.DigitalStrategy)},
		render.Fact{Label: "Monetization", Value: render.Join(s.Monetization)},
	)
}

func (s *Sports) TableSections() []render.Section {
	return append([]render.Section{
		render.SectionOf("Presenters", presenterColumns, s.Presenters),
		render.SectionOf("Coverage Segments", coverageColumns, s.CoverageSegments),
		render.SectionOf("Team/Athlete Features", featureColumns, s.TeamFeatures),
		render.SectionOf("Seasonal Events", seasonEventColumns, s.SeasonalEvents),
		render.SectionOf("Stat Highlights", statColumns, s.StatHighlights),
	}, s.tailSections()...)
}

func (s *Sports) ExtraPanels() []render.Panel {
	return []render.Panel{s.producersPanel()}
}
