package shows

import (
	"strings"

	"aiss/internal/formatting"
	"aiss/internal/render"
)

const fallbackTitle = "Television Series"

// Core holds what every television format carries, including programmes
// that are not organised into seasons.
type Core struct {
	Title       string `json:"title"`
	ShowSummary string `json:"show_summary"`

	CriticalReception   []CriticalResponse   `json:"critical_reception"`
	AudienceMetrics     []AudienceEngagement `json:"audience_metrics"`
	ProductionCompanies []ProductionCompany  `json:"production_companies"`
	BroadcastInfo       []Broadcast          `json:"broadcast_info"`
	DistributionInfo    []Distribution       `json:"distribution_info"`

	contextHint string
}

// Base extends Core with the run and size facts of a seasonal series.
type Base struct {
	Core
	SeasonCount           int     `json:"season_count"`
	EpisodeCount          int     `json:"episode_count"`
	AverageRuntimeMinutes float64 `json:"average_runtime_minutes"`
	AgeRating             string  `json:"age_rating"`
	ReleaseStartYear      int     `json:"release_start_year"`
	// ReleaseEndYear is zero while the series is still running.
	ReleaseEndYear int `json:"release_end_year"`
}

// ContextHint returns the display-only hint.
func (b *Core) ContextHint() string { return b.contextHint }

// SetContextHint attaches a display-only hint.
func (b *Core) SetContextHint(hint string) { b.contextHint = strings.TrimSpace(hint) }

// FactsPanel names the facts panel for every show.
func (b *Core) FactsPanel() (string, string) { return "Quick Facts", "blue" }

// summary shows the variant's hook line ahead of the shared synopsis.
func (b *Core) summary(fallback, hook string) render.Summary {
	title := strings.TrimSpace(b.Title)
	if title == "" {
		title = fallback
	}
	paragraphs := []string{hook, b.ShowSummary}
	return render.Summary{Title: title, Paragraphs: paragraphs, Style: "green"}
}

// baselineFacts covers run length, size and rating.
func (b *Base) baselineFacts() []render.Fact {
	return []render.Fact{
		{Label: "Seasons", Value: count(b.SeasonCount)},
		{Label: "Episodes", Value: count(b.EpisodeCount)},
		{Label: "Runtime", Value: formatting.RuntimeMinutes(b.AverageRuntimeMinutes)},
		{Label: "Run", Value: runDisplay(b.ReleaseStartYear, b.ReleaseEndYear)},
		{Label: "Rating", Value: render.Text(b.AgeRating)},
	}
}

func (b *Core) tailSections() []render.Section {
	return []render.Section{
		render.SectionOf("Critical Reception", criticalColumns, b.CriticalReception),
		render.SectionOf("Audience Metrics", audienceColumns, b.AudienceMetrics),
		render.SectionOf("Production Companies", companyColumns, b.ProductionCompanies),
		render.SectionOf("Broadcast", broadcastColumns, b.BroadcastInfo),
		render.SectionOf("Distribution", distributionColumns, b.DistributionInfo),
	}
}

func count(n int) string {
	if n <= 0 {
		return formatting.Placeholder
	}
	return formatting.Number(n)
}

func runDisplay(start, end int) string {
	if start <= 0 && end <= 0 {
		return formatting.Placeholder
	}
	first := formatting.Year(start)
	last := formatting.Present
	if end > 0 {
		last = formatting.Year(end)
	}
	if first == formatting.Placeholder || first == last {
		return last
	}
	return first + " - " + last
}

// CriticalResponse is one review snippet.
type CriticalResponse struct {
	Outlet          string   `json:"outlet"`
	Reviewer        string   `json:"reviewer"`
	Score           *float64 `json:"score"`
	Summary         string   `json:"summary"`
	Quote           string   `json:"quote"`
	PublicationDate string   `json:"publication_date"`
}

var criticalColumns = []render.Column{
	{Field: "outlet", Header: "Outlet", Style: "magenta"},
	{Field: "reviewer", Header: "Reviewer", Style: "cyan"},
	{Field: "score", Header: "Score", Justify: render.JustifyCenter, Format: render.FormatDecimal},
	{Field: "summary", Header: "Summary"},
}

// AudienceEngagement is one viewership statistic.
type AudienceEngagement struct {
	Region          string   `json:"region"`
	Demographic     string   `json:"demographic"`
	AverageViewers  *int64   `json:"average_viewers"`
	Share           *float64 `json:"share"`
	EngagementNotes string   `json:"engagement_notes"`
}

var audienceColumns = []render.Column{
	{Field: "region", Header: "Region", Style: "magenta"},
	{Field: "demographic", Header: "Demographic", Style: "cyan"},
	{Field: "average_viewers", Header: "Avg Viewers", Justify: render.JustifyRight, Format: render.FormatNumber},
	{Field: "share", Header: "Share %", Justify: render.JustifyRight, Format: render.FormatPercentage},
	{Field: "engagement_notes", Header: "Notes"},
}

// ProductionCompany is a studio attached to the series.
type ProductionCompany struct {
	Name        string `json:"name"`
	FoundedYear int    `json:"founded_year"`
	StartYear   int    `json:"start_year"`
	EndYear     int    `json:"end_year"`
	Country     string `json:"country"`
}

var companyColumns = []render.Column{
	{Field: "name", Header: "Name", Style: "magenta"},
	{Field: "founded_year", Header: "Founded Year", Justify: render.JustifyCenter, Format: render.FormatYear},
	{Field: "start_year", Header: "Start Year", Justify: render.JustifyCenter, Format: render.FormatYear},
	{Field: "end_year", Header: "End Year", Justify: render.JustifyCenter, Format: render.FormatYear},
	{Field: "country", Header: "Country", Style: "cyan"},
}

// Broadcast is one network run.
type Broadcast struct {
	Network   string `json:"network"`
	Country   string `json:"country"`
	StartYear int    `json:"start_year"`
	EndYear   int    `json:"end_year"`
}

var broadcastColumns = []render.Column{
	{Field: "network", Header: "Network", Style: "magenta"},
	{Field: "country", Header: "Country", Style: "cyan"},
	{Field: "start_year", Header: "Start Year", Justify: render.JustifyCenter, Format: render.FormatYear},
	{Field: "end_year", Header: "End Year", Justify: render.JustifyCenter, Format: render.FormatYear},
}

// Distribution is one territory deal.
type Distribution struct {
	Distributor string `json:"distributor"`
	Territory   string `json:"territory"`
	ReleaseType string `json:"release_type"`
	StartYear   int    `json:"start_year"`
	EndYear     int    `json:"end_year"`
	Revenue     *int64 `json:"revenue"`
}

var distributionColumns = []render.Column{
	{Field: "distributor", Header: "Distributor", Style: "magenta", NoWrap: true},
	{Field: "territory", Header: "Territory", Style: "cyan"},
	{Field: "release_type", Header: "Type", Style: "yellow"},
	{Field: "start_year", Header: "Start", Justify: render.JustifyCenter, Format: render.FormatYear},
	{Field: "end_year", Header: "End", Justify: render.JustifyCenter, Format: render.FormatYear},
	{Field: "revenue", Header: "Revenue", Justify: render.JustifyRight, Format: render.FormatMoney},
}
