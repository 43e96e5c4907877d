package games

import (
	"aiss/internal/format"
	"aiss/internal/render"
)

// PuzzleStrategyDescriptor registers the puzzle and strategy game format.
var PuzzleStrategyDescriptor = format.Descriptor{
	ID:             format.PuzzleStrategyGame,
	Description:    "Cerebral puzzle and strategy game model emphasising rulesets, difficulty curves, and mastery analytics.",
	KeyTrait:       "Logic-first gameplay that rewards planning and optimisation",
	Instructions:   "Write as a systems designer summarising a puzzle or strategy title for stakeholders. Cover the core ruleset, puzzle escalation, AI sophistication, difficulty tuning, and how players are taught to master systems. Document platform releases, post-launch content, and analytics loops so the product roadmap is clear.",
	PromptTemplate: "Prepare a puzzle/strategy production brief for '{title}', outlining rulesets, difficulty escalation, AI behaviours, teaching beats, monetisation, and live support.",
	New:            func() format.Instance { return &PuzzleStrategy{} },
}

// PuzzleStrategy is a planning and logic game.
type PuzzleStrategy struct {
	Base
	RulesetOverview       string   `json:"ruleset_overview"`
	DifficultyPhilosophy  string   `json:"difficulty_philosophy"`
	AICapabilities        string   `json:"ai_capabilities"`
	AverageSessionMinutes int      `json:"average_session_minutes"`
	TargetAudience        string   `json:"target_audience"`
	ReplayabilityHooks    []string `json:"replayability_hooks"`

	PuzzleModules         []PuzzleModule         `json:"puzzle_modules"`
	StrategyScenarios     []StrategyScenario     `json:"strategy_scenarios"`
	GameplayLayers        []Mechanic             `json:"gameplay_layers"`
	TeachingMoments       []TeachingMoment       `json:"teaching_moments"`
	ProgressionTracks     []ProgressionTrack     `json:"progression_tracks"`
	LiveEvents            []LiveEvent            `json:"live_events"`
	AccessibilityFeatures []AccessibilityFeature `json:"accessibility_features"`
	SessionProfiles       []SessionProfile       `json:"session_profiles"`
}

// PuzzleModule is a level pack or region.
type PuzzleModule struct {
	ModuleName           string   `json:"module_name"`
	ChallengeTheme       string   `json:"challenge_theme"`
	MechanicsIntroduced  []string `json:"mechanics_introduced"`
	DifficultyRamp       string   `json:"difficulty_ramp"`
	CompletionRateTarget *float64 `json:"completion_rate_target"`
}

// StrategyScenario is a mission or scenario.
type StrategyScenario struct {
	ScenarioName     string `json:"scenario_name"`
	Objective        string `json:"objective"`
	MapType          string `json:"map_type"`
	AIBehaviourNotes string `json:"ai_behaviour_notes"`
	TurnLimit        *int   `json:"turn_limit"`
}

// TeachingMoment is a tutorial beat.
type TeachingMoment struct {
	BeatName        string `json:"beat_name"`
	LearningGoal    string `json:"learning_goal"`
	DeliveryMethod  string `json:"delivery_method"`
	AnalyticsSignal string `json:"analytics_signal"`
}

var (
	puzzleModuleColumns = []render.Column{
		{Field: "module_name", Header: "Module", Style: "magenta"},
		{Field: "challenge_theme", Header: "Theme", Style: "cyan"},
		{Field: "difficulty_ramp", Header: "Difficulty Ramp", Style: "yellow"},
		{Field: "completion_rate_target", Header: "Target %", Format: render.FormatPercentage},
	}
	scenarioColumns = []render.Column{
		{Field: "scenario_name", Header: "Scenario", Style: "magenta"},
		{Field: "objective", Header: "Objective", Style: "cyan"},
		{Field: "map_type", Header: "Map", Style: "yellow"},
		{Field: "turn_limit", Header: "Turn Limit", Justify: render.JustifyRight, Format: render.FormatNumber},
	}
	teachingColumns = []render.Column{
		{Field: "beat_name", Header: "Beat", Style: "magenta"},
		{Field: "learning_goal", Header: "Learning Goal", Style: "cyan"},
		{Field: "delivery_method", Header: "Delivery"},
		{Field: "analytics_signal", Header: "Signal"},
	}
)

func (g *PuzzleStrategy) Summary() render.Summary {
	return g.summary("Puzzle / Strategy Game")
}

func (g *PuzzleStrategy) FactPairs() []render.Fact {
	return []render.Fact{
		g.releaseFact(),
		{Label: "Session Length", Value: minutes(g.AverageSessionMinutes)},
		{Label: "Difficulty", Value: render.Text(g.DifficultyPhilosophy)},
		{Label: "AI", Value: render.Text(g.AICapabilities)},
		g.monetisationFact(),
		{Label: "Audience", Value: render.Text(g.TargetAudience)},
	}
}

func (g *PuzzleStrategy) TableSections() []render.Section {
	return g.sections(
		render.SectionOf("Puzzle Modules", puzzleModuleColumns, g.PuzzleModules),
		render.SectionOf("Scenarios", scenarioColumns, g.StrategyScenarios),
		render.SectionOf("Gameplay Layers", mechanicColumns, g.GameplayLayers),
		render.SectionOf("Teaching Moments", teachingColumns, g.TeachingMoments),
		render.SectionOf("Progression", progressionColumns, g.ProgressionTracks),
		render.SectionOf("Live Ops", liveEventColumns, g.LiveEvents),
		render.SectionOf("Accessibility", accessibilityColumns, g.AccessibilityFeatures),
		render.SectionOf("Session Profiles", sessionColumns, g.SessionProfiles),
	)
}

func (g *PuzzleStrategy) ExtraPanels() []render.Panel {
	return []render.Panel{
		{Title: "Systems Overview", Style: "cyan", Body: lines(
			render.Fact{Label: "Rules", Value: g.RulesetOverview},
			render.Fact{Label: "Replay Hooks", Value: render.Inline(g.ReplayabilityHooks)},
		)},
		{Title: "Difficulty Philosophy", Style: "magenta", Body: g.DifficultyPhilosophy},
	}
}
