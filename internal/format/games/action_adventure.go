package games

import (
	"aiss/internal/format"
	"aiss/internal/render"
)

// ActionAdventureDescriptor registers the action-adventure game format.
var ActionAdventureDescriptor = format.Descriptor{
	ID:          format.ActionAdventureGame,
	Description: "Hybrid combat, traversal, and exploration video game model focused on authored narratives and environmental discovery.",
	KeyTrait:    "Quest-driven adventure with tactile combat and world exploration",
	Instructions: "Act as a franchise creative director compiling an executive briefing for an action-adventure video game. " +
		"Detail the playable hero, world exploration structure, combat pillars, puzzle cadence, and how progression layers sustain player agency. " +
		"Highlight signature mechanics, quest arcs, platform release nuances, accessibility support, and technical performance notes so the project feels production-ready.",
	PromptTemplate: "Develop a full action-adventure executive brief for '{title}', covering world identity, hero journey, combat and exploration pillars, and how progression plus live content sustain players.",
	New:            func() format.Instance { return &ActionAdventure{} },
}

// ActionAdventure is an exploration and combat driven game.
type ActionAdventure struct {
	Base
	WorldSetting           string   `json:"world_setting"`
	HeroProfile            string   `json:"hero_profile"`
	CameraPerspective      string   `json:"camera_perspective"`
	AverageCompletionHours float64  `json:"average_completion_hours"`
	CompletionistHours     float64  `json:"completionist_hours"`
	ExplorationFocus       string   `json:"exploration_focus"`
	CombatIdentity         []string `json:"combat_identity"`
	PuzzleIntegrations     []string `json:"puzzle_integrations"`
	DifficultyModes        []string `json:"difficulty_modes"`
	EndgameStructure       string   `json:"endgame_structure"`
	PlayerAgencyFeatures   []string `json:"player_agency_features"`
	Platforms              []string `json:"platforms"`

	SignatureMechanics    []Mechanic             `json:"signature_mechanics"`
	ProgressionTracks     []ProgressionTrack     `json:"progression_tracks"`
	NarrativeBeats        []NarrativeBeat        `json:"narrative_beats"`
	LiveEvents            []LiveEvent            `json:"live_events"`
	AccessibilityFeatures []AccessibilityFeature `json:"accessibility_features"`
	TechnicalBenchmarks   []TechnicalBenchmark   `json:"technical_benchmarks"`
	AudioDesign           []AudioCue             `json:"audio_design"`
}

func (g *ActionAdventure) Summary() render.Summary {
	return g.summary("Action / Adventure Game")
}

func (g *ActionAdventure) FactPairs() []render.Fact {
	return []render.Fact{
		g.releaseFact(),
		{Label: "Completion (hrs)", Value: hours(g.AverageCompletionHours)},
		{Label: "Completionist", Value: hours(g.CompletionistHours)},
		{Label: "Exploration", Value: render.Text(g.ExplorationFocus)},
		{Label: "Combat", Value: render.Join(g.CombatIdentity)},
		{Label: "Difficulty", Value: render.Join(g.DifficultyModes)},
		{Label: "Platforms", Value: render.Join(g.Platforms)},
		g.monetisationFact(),
	}
}

func (g *ActionAdventure) TableSections() []render.Section {
	return g.sections(
		render.SectionOf("Signature Mechanics", mechanicColumns, g.SignatureMechanics),
		render.SectionOf("Progression Tracks", progressionColumns, g.ProgressionTracks),
		render.SectionOf("Narrative Beats", narrativeColumns, g.NarrativeBeats),
		render.SectionOf("Live Content", liveEventColumns, g.LiveEvents),
		render.SectionOf("Accessibility", accessibilityColumns, g.AccessibilityFeatures),
		render.SectionOf("Technical Benchmarks", benchmarkColumns, g.TechnicalBenchmarks),
		render.SectionOf("Audio Design", audioColumns, g.AudioDesign),
	)
}

func (g *ActionAdventure) ExtraPanels() []render.Panel {
	return []render.Panel{
		{Title: "World & Protagonist", Style: "cyan", Body: lines(
			render.Fact{Label: "Setting", Value: g.WorldSetting},
			render.Fact{Label: "Hero", Value: g.HeroProfile},
			render.Fact{Label: "Agency", Value: render.Inline(g.PlayerAgencyFeatures)},
			render.Fact{Label: "Puzzle Types", Value: render.Inline(g.PuzzleIntegrations)},
		)},
		{Title: "Endgame Loop", Style: "magenta", Body: g.EndgameStructure},
	}
}
