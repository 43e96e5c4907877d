package games

import (
	"aiss/internal/format"
	"aiss/internal/formatting"
	"aiss/internal/render"
)

// MMODescriptor registers the MMO and persistent online game format.
var MMODescriptor = format.Descriptor{
	ID:             format.MMOOnlineGame,
	Description:    "MMO and persistent online game model focusing on operations, social systems, and endgame activities.",
	KeyTrait:       "Always-on world with layered social, progression, and live operations",
	Instructions:   "Summarise an MMO or persistent online game as a live service director. Outline world structure, social systems, endgame loops, monetisation pillars, and operations cadence. Highlight server architecture, matchmaking, competitive ladders, community programs, and retention levers.",
	PromptTemplate: "Provide an MMO or persistent online service overview for '{title}', covering world structure, social systems, operations cadence, monetisation pillars, and endgame activities.",
	New:            func() format.Instance { return &MMO{} },
}

// MMO is a persistent online service game. Its monetisation is described as
// pillars rather than a single model.
type MMO struct {
	Base
	WorldStructure        string `json:"world_structure"`
	SocialVision          string `json:"social_vision"`
	OperationsCadence     string `json:"operations_cadence"`
	MonetisationPillars   string `json:"monetisation_pillars"`
	RetentionLevers       string `json:"retention_levers"`
	PeakConcurrencyTarget int    `json:"peak_concurrency_target"`

	ServerArchitecture    []ServerArchitecture   `json:"server_architecture"`
	SocialFeatures        []SocialFeature        `json:"social_features"`
	Mechanics             []Mechanic             `json:"mechanics"`
	ProgressionTracks     []ProgressionTrack     `json:"progression_tracks"`
	EconomyLoops          []EconomyLoop          `json:"economy_loops"`
	EndgameActivities     []EndgameActivity      `json:"endgame_activities"`
	LiveEvents            []LiveEvent            `json:"live_events"`
	CommunityPrograms     []CommunityProgram     `json:"community_programs"`
	NarrativeBeats        []NarrativeBeat        `json:"narrative_beats"`
	AccessibilityFeatures []AccessibilityFeature `json:"accessibility_features"`
	AudioDesign           []AudioCue             `json:"audio_design"`
}

// ServerArchitecture is a shard or server topology.
type ServerArchitecture struct {
	Name             string `json:"name"`
	Capacity         string `json:"capacity"`
	MatchmakingScope string `json:"matchmaking_scope"`
	RegionSupport    string `json:"region_support"`
}

// EndgameActivity is a raid, ladder or other endgame mode.
type EndgameActivity struct {
	ActivityName    string   `json:"activity_name"`
	Description     string   `json:"description"`
	RecommendedTeam string   `json:"recommended_team"`
	Rewards         []string `json:"rewards"`
}

// CommunityProgram is a creator, event or esports programme.
type CommunityProgram struct {
	ProgramName string   `json:"program_name"`
	Focus       string   `json:"focus"`
	Cadence     string   `json:"cadence"`
	Incentives  []string `json:"incentives"`
}

var (
	serverColumns = []render.Column{
		{Field: "name", Header: "Architecture", Style: "magenta"},
		{Field: "capacity", Header: "Capacity", Style: "cyan"},
		{Field: "matchmaking_scope", Header: "Matchmaking", Style: "yellow"},
		{Field: "region_support", Header: "Regions"},
	}
	endgameColumns = []render.Column{
		{Field: "activity_name", Header: "Activity", Style: "magenta"},
		{Field: "description", Header: "Description", Style: "cyan"},
		{Field: "recommended_team", Header: "Team", Style: "yellow"},
		{Field: "rewards", Header: "Rewards"},
	}
	communityColumns = []render.Column{
		{Field: "program_name", Header: "Program", Style: "magenta"},
		{Field: "focus", Header: "Focus", Style: "cyan"},
		{Field: "cadence", Header: "Cadence", Style: "yellow"},
		{Field: "incentives", Header: "Incentives"},
	}
)

func (g *MMO) Summary() render.Summary {
	return g.summary("MMO / Online Service Game")
}

func (g *MMO) FactPairs() []render.Fact {
	peak := formatting.Placeholder
	if g.PeakConcurrencyTarget > 0 {
		peak = formatting.Number(g.PeakConcurrencyTarget)
	}
	monetisation := g.monetisationFact()
	if pillars := render.Text(g.MonetisationPillars); pillars != formatting.Placeholder {
		monetisation.Value = pillars
	}
	return []render.Fact{
		g.releaseFact(),
		{Label: "Peak CCU", Value: peak},
		{Label: "Operations", Value: render.Text(g.OperationsCadence)},
		monetisation,
		{Label: "Retention", Value: render.Text(g.RetentionLevers)},
	}
}

func (g *MMO) TableSections() []render.Section {
	return g.sections(
		render.SectionOf("Server Architecture", serverColumns, g.ServerArchitecture),
		render.SectionOf("Social Systems", socialColumns, g.SocialFeatures),
		render.SectionOf("Mechanics", mechanicColumns, g.Mechanics),
		render.SectionOf("Progression", progressionColumns, g.ProgressionTracks),
		render.SectionOf("Economy", economyLoopColumns, g.EconomyLoops),
		render.SectionOf("Endgame", endgameColumns, g.EndgameActivities),
		render.SectionOf("Live Ops", liveEventColumns, g.LiveEvents),
		render.SectionOf("Community Programs", communityColumns, g.CommunityPrograms),
		render.SectionOf("Narrative", narrativeColumns, g.NarrativeBeats),
		render.SectionOf("Accessibility", accessibilityColumns, g.AccessibilityFeatures),
		render.SectionOf("Audio Design", audioColumns, g.AudioDesign),
	)
}

func (g *MMO) ExtraPanels() []render.Panel {
	return []render.Panel{
		{Title: "Operations", Style: "cyan", Body: lines(
			render.Fact{Label: "World Structure", Value: g.WorldStructure},
			render.Fact{Label: "Operations", Value: g.OperationsCadence},
		)},
		{Title: "Community", Style: "magenta", Body: lines(
			render.Fact{Label: "Social Vision", Value: g.SocialVision},
			render.Fact{Label: "Community", Value: g.RetentionLevers},
		)},
	}
}
