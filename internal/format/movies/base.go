// Package movies holds the feature film formats. Every variant embeds Base,
// which supplies the release facts, the cast and business tables and the
// keyword, award and soundtrack panels.
package movies

import (
	"strings"

	"aiss/internal/formatting"
	"aiss/internal/render"
)

// Base is the shared half of every movie format.
type Base struct {
	Title                string              `json:"title"`
	Tagline              string              `json:"tagline"`
	Synopsis             string              `json:"synopsis"`
	ReleaseYear          int                 `json:"release_year"`
	RuntimeMinutes       int                 `json:"runtime_minutes"`
	Genres               []string            `json:"genres"`
	MPAARating           string              `json:"mpaa_rating"`
	Directors            []string            `json:"directors"`
	Writers              []string            `json:"writers"`
	Producers            []string            `json:"producers"`
	OriginalLanguage     string              `json:"original_language"`
	Countries            []string            `json:"countries"`
	Rating               *float64            `json:"rating"`
	Keywords             []string            `json:"keywords"`
	Cast                 []CastMember        `json:"cast"`
	NotableCrew          []CrewMember        `json:"notable_crew"`
	ProductionCompanies  []ProductionCompany `json:"production_companies"`
	BoxOffice            *BoxOffice          `json:"box_office"`
	DistributionInfo     []Distribution      `json:"distribution_info"`
	Awards               []string            `json:"awards"`
	SoundtrackHighlights []string            `json:"soundtrack_highlights"`

	contextHint string
}

func (b *Base) ContextHint() string { return b.contextHint }

func (b *Base) SetContextHint(hint string) { b.contextHint = strings.TrimSpace(hint) }

func (b *Base) FactsPanel() (string, string) { return "Facts", "magenta" }

// Summary titles the panel "Title (year)" and leads with the tagline.
func (b *Base) Summary() render.Summary {
	title := strings.TrimSpace(b.Title)
	if title == "" {
		title = "(untitled)"
	}
	if year := formatting.Year(b.ReleaseYear); year != formatting.Placeholder {
		title += " (" + year + ")"
	}
	return render.Summary{
		Title:      title,
		Paragraphs: []string{b.Tagline, b.Synopsis},
		Style:      "green",
	}
}

// facts returns the release facts followed by the non-blank extras.
func (b *Base) facts(extra ...render.Fact) []render.Fact {
	rating := formatting.Placeholder
	if b.Rating != nil {
		rating = formatting.Decimal(*b.Rating)
	}
	out := []render.Fact{
		{Label: "Release", Value: formatting.Year(b.ReleaseYear)},
		{Label: "Runtime", Value: formatting.RuntimeMinutes(b.RuntimeMinutes)},
		{Label: "Genres", Value: render.Join(b.Genres)},
		{Label: "MPAA", Value: render.Text(b.MPAARating)},
		{Label: "Directors", Value: render.Join(b.Directors)},
		{Label: "Producers", Value: render.Join(b.Producers)},
		{Label: "Writers", Value: render.Join(b.Writers)},
		{Label: "Language", Value: render.Text(b.OriginalLanguage)},
		{Label: "Countries", Value: render.Join(b.Countries)},
		{Label: "Rating", Value: rating},
	}
	for _, fact := range extra {
		if strings.TrimSpace(fact.Value) != "" {
			out = append(out, fact)
		}
	}
	return out
}

// sections returns the shared tables followed by the variant's own.
func (b *Base) sections(extra ...render.Section) []render.Section {
	var boxOffice []BoxOffice
	if b.BoxOffice != nil {
		boxOffice = []BoxOffice{*b.BoxOffice}
	}
	out := []render.Section{
		render.SectionOf("Cast", castColumns, b.Cast),
		render.SectionOf("Key Crew", crewColumns, b.NotableCrew),
		render.SectionOf("Production Companies", companyColumns, b.ProductionCompanies),
		render.SectionOf("Box Office", boxOfficeColumns, boxOffice),
		render.SectionOf("Distribution", distributionColumns, b.DistributionInfo),
	}
	return append(out, extra...)
}

// panels returns the shared list panels followed by the variant's own.
func (b *Base) panels(extra ...render.Panel) []render.Panel {
	out := []render.Panel{
		{Title: "Keywords", Body: render.Bullets(b.Keywords), Style: "blue"},
		{Title: "Awards", Body: render.Bullets(b.Awards), Style: "blue"},
		{Title: "Soundtrack", Body: render.Bullets(b.SoundtrackHighlights), Style: "blue"},
	}
	return append(out, extra...)
}

func bullets(title string, items []string) render.Panel {
	return render.Panel{Title: title, Body: render.Bullets(items)}
}

// CastMember is a principal role.
type CastMember struct {
	Character string `json:"character"`
	Actor     string `json:"actor"`
	Role      string `json:"role"`
}

// CrewMember is a notable crew credit beyond directors and producers.
type CrewMember struct {
	Name        string `json:"name"`
	Role        string `json:"role"`
	NotableWork string `json:"notable_work"`
}

// ProductionCompany is a studio attached to the film.
type ProductionCompany struct {
	Name        string `json:"name"`
	FoundedYear int    `json:"founded_year"`
	StartYear   int    `json:"start_year"`
	EndYear     int    `json:"end_year"`
	Country     string `json:"country"`
}

// BoxOffice carries budget and grosses in whole currency units.
type BoxOffice struct {
	Budget         *int64 `json:"budget"`
	GrossWorldwide *int64 `json:"gross_worldwide"`
	GrossDomestic  *int64 `json:"gross_domestic"`
}

// Distribution is one territory release.
type Distribution struct {
	Distributor string `json:"distributor"`
	Territory   string `json:"territory"`
	ReleaseType string `json:"release_type"`
	StartYear   int    `json:"start_year"`
	EndYear     int    `json:"end_year"`
	Revenue     *int64 `json:"revenue"`
}

// SetPiece is a spectacle sequence.
type SetPiece struct {
	Name             string `json:"name"`
	Act              string `json:"act"`
	Location         string `json:"location"`
	Stakes           string `json:"stakes"`
	PracticalEffects string `json:"practical_effects"`
}

var (
	castColumns = []render.Column{
		{Field: "character", Header: "Character", Style: "magenta", NoWrap: true},
		{Field: "actor", Header: "Actor", Style: "cyan"},
		{Field: "role", Header: "Role", Style: "yellow"},
	}
	crewColumns = []render.Column{
		{Field: "name", Header: "Name", Style: "magenta"},
		{Field: "role", Header: "Role", Style: "cyan"},
		{Field: "notable_work", Header: "Notable Work", Style: "yellow"},
	}
	companyColumns = []render.Column{
		{Field: "name", Header: "Name", Style: "magenta"},
		{Field: "founded_year", Header: "Founded", Justify: render.JustifyCenter, Format: render.FormatYear},
		{Field: "start_year", Header: "Start", Justify: render.JustifyCenter, Format: render.FormatYear},
		{Field: "end_year", Header: "End", Justify: render.JustifyCenter, Format: render.FormatYear},
		{Field: "country", Header: "Country", Style: "cyan"},
	}
	boxOfficeColumns = []render.Column{
		{Field: "budget", Header: "Budget", Style: "magenta", Justify: render.JustifyRight, Format: render.FormatMoney},
		{Field: "gross_worldwide", Header: "Gross (WW)", Style: "cyan", Justify: render.JustifyRight, Format: render.FormatMoney},
		{Field: "gross_domestic", Header: "Gross (Domestic)", Style: "yellow", Justify: render.JustifyRight, Format: render.FormatMoney},
	}
	distributionColumns = []render.Column{
		{Field: "distributor", Header: "Distributor", Style: "magenta", NoWrap: true},
		{Field: "territory", Header: "Territory", Style: "cyan"},
		{Field: "release_type", Header: "Type", Style: "yellow"},
		{Field: "start_year", Header: "Start", Justify: render.JustifyCenter, Format: render.FormatYear},
		{Field: "end_year", Header: "End", Justify: render.JustifyCenter, Format: render.FormatYear},
		{Field: "revenue", Header: "Revenue", Justify: render.JustifyRight, Format: render.FormatMoney},
	}
	setPieceColumns = []render.Column{
		{Field: "name", Header: "Set Piece", Style: "magenta", NoWrap: true},
		{Field: "act", Header: "Act", Justify: render.JustifyCenter},
		{Field: "location", Header: "Location", Style: "cyan"},
		{Field: "stakes", Header: "Stakes", Style: "yellow"},
		{Field: "practical_effects", Header: "Execution", Style: "green"},
	}
)
