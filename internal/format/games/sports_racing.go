package games

import (
	"aiss/internal/format"
	"aiss/internal/render"
)

// SportsRacingDescriptor registers the sports and racing game format.
var SportsRacingDescriptor = format.Descriptor{
	ID:             format.SportsRacingGame,
	Description:    "Sports and racing game model covering licences, rosters, physics, and live service cadence.",
	KeyTrait:       "Authentic competition blended with live content and monetisation programs",
	Instructions:   "Summarise a sports or racing game like a franchise executive. Detail league licences, athlete or vehicle rosters, season cadence, live competitions, and monetisation programs. Explain physics fidelity, skill gaps, accessibility, online infrastructure, and community broadcast hooks.",
	PromptTemplate: "Provide a sports or racing franchise overview for '{title}', covering licences, roster depth, modes, physics, monetisation, live seasons, and broadcast hooks.",
	New:            func() format.Instance { return &SportsRacing{} },
}

// SportsRacing is a licensed sports or racing game.
type SportsRacing struct {
	Base
	SportFocus          string  `json:"sport_focus"`
	LicenceStrategy     string  `json:"licence_strategy"`
	PhysicsFidelity     string  `json:"physics_fidelity"`
	SkillGapStatement   string  `json:"skill_gap_statement"`
	BroadcastHooks      string  `json:"broadcast_hooks"`
	LiveSeasonPlan      string  `json:"live_season_plan"`
	AverageMatchMinutes float64 `json:"average_match_minutes"`

	LeagueLicences        []LeagueLicence        `json:"league_licenses"`
	Roster                []RosterEntry          `json:"roster"`
	Modes                 []SportsMode           `json:"modes"`
	Mechanics             []Mechanic             `json:"mechanics"`
	ProgressionTracks     []ProgressionTrack     `json:"progression_tracks"`
	EconomyLoops          []EconomyLoop          `json:"economy_loops"`
	LiveEvents            []LiveEvent            `json:"live_events"`
	AccessibilityFeatures []AccessibilityFeature `json:"accessibility_features"`
	AudioDesign           []AudioCue             `json:"audio_design"`
}

// LeagueLicence is a licensed league or competition.
type LeagueLicence struct {
	Name           string `json:"name"`
	Scope          string `json:"scope"`
	FormatOverview string `json:"format_overview"`
	RenewalTerm    string `json:"renewal_term"`
}

// RosterEntry is an athlete, team or vehicle.
type RosterEntry struct {
	Name              string `json:"name"`
	Classification    string `json:"classification"`
	HeadlineRating    string `json:"headline_rating"`
	SignatureStrength string `json:"signature_strength"`
}

// SportsMode is a career, season or bracket mode.
type SportsMode struct {
	ModeName      string   `json:"mode_name"`
	Structure     string   `json:"structure"`
	KeyFeatures   []string `json:"key_features"`
	OnlineEnabled bool     `json:"online_enabled"`
}

var (
	licenceColumns = []render.Column{
		{Field: "name", Header: "League", Style: "magenta"},
		{Field: "scope", Header: "Scope", Style: "cyan"},
		{Field: "format_overview", Header: "Format", Style: "yellow"},
		{Field: "renewal_term", Header: "Renewal"},
	}
	rosterColumns = []render.Column{
		{Field: "name", Header: "Name", Style: "magenta"},
		{Field: "classification", Header: "Class", Style: "cyan"},
		{Field: "headline_rating", Header: "Rating", Style: "yellow"},
		{Field: "signature_strength", Header: "Signature"},
	}
	sportsModeColumns = []render.Column{
		{Field: "mode_name", Header: "Mode", Style: "magenta"},
		{Field: "structure", Header: "Structure", Style: "cyan"},
		{Field: "key_features", Header: "Features"},
		{Field: "online_enabled", Header: "Online", Format: yesNo},
	}
)

func (g *SportsRacing) Summary() render.Summary {
	return g.summary("Sports / Racing Game")
}

func (g *SportsRacing) FactPairs() []render.Fact {
	return []render.Fact{
		g.releaseFact(),
		{Label: "Match Length", Value: minutes(g.AverageMatchMinutes)},
		{Label: "Licence Strategy", Value: render.Text(g.LicenceStrategy)},
		{Label: "Physics", Value: render.Text(g.PhysicsFidelity)},
		g.monetisationFact(),
	}
}

func (g *SportsRacing) TableSections() []render.Section {
	return g.sections(
		render.SectionOf("Licences", licenceColumns, g.LeagueLicences),
		render.SectionOf("Roster", rosterColumns, g.Roster),
		render.SectionOf("Modes", sportsModeColumns, g.Modes),
		render.SectionOf("Mechanics", mechanicColumns, g.Mechanics),
		render.SectionOf("Progression", progressionColumns, g.ProgressionTracks),
		render.SectionOf("Economy", economyLoopColumns, g.EconomyLoops),
		render.SectionOf("Live Ops", liveEventColumns, g.LiveEvents),
		render.SectionOf("Accessibility", accessibilityColumns, g.AccessibilityFeatures),
		render.SectionOf("Audio Design", audioColumns, g.AudioDesign),
	)
}

func (g *SportsRacing) ExtraPanels() []render.Panel {
	return []render.Panel{
		{Title: "Competition", Style: "cyan", Body: lines(
			render.Fact{Label: "Sport Focus", Value: g.SportFocus},
			render.Fact{Label: "Live Season", Value: g.LiveSeasonPlan},
			render.Fact{Label: "Broadcast", Value: g.BroadcastHooks},
		)},
		{Title: "Skill & Physics", Style: "magenta", Body: lines(
			render.Fact{Label: "Skill Gap", Value: g.SkillGapStatement},
			render.Fact{Label: "Physics Fidelity", Value: g.PhysicsFidelity},
		)},
	}
}
