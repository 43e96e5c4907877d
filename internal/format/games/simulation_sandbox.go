package games

import (
	"aiss/internal/format"
	"aiss/internal/render"
)

// SimulationSandboxDescriptor registers the simulation and sandbox game format.
var SimulationSandboxDescriptor = format.Descriptor{
	ID:             format.SimulationSandboxGame,
	Description:    "Simulation and sandbox game model focusing on systemic depth, creation tools, and player-driven stories.",
	KeyTrait:       "Player-authored creativity layered on deep systemic simulation",
	Instructions:   "Summarise a simulation or sandbox game as a systems design director. Describe simulation depth, player authored creativity, systemic interactions, and technical constraints. Highlight progression, economy loops, creator tools, live updates, and how players share or monetise creations.",
	PromptTemplate: "Provide a simulation and sandbox overview for '{title}', detailing systemic depth, creation tools, progression, economies, sharing infrastructure, and live update plans.",
	New:            func() format.Instance { return &SimulationSandbox{} },
}

// SimulationSandbox is a systemic or creative sandbox game.
type SimulationSandbox struct {
	Base
	SimulationScope       string  `json:"simulation_scope"`
	PlayerAuthorship      string  `json:"player_authorship"`
	TechConstraints       string  `json:"tech_constraints"`
	AverageSessionMinutes float64 `json:"average_session_minutes"`
	SharingInfrastructure string  `json:"sharing_infrastructure"`
	LiveUpdateCadence     string  `json:"live_update_cadence"`

	SimulationSystems     []SimulationSystem     `json:"simulation_systems"`
	CreatorTools          []CreatorTool          `json:"creator_tools"`
	Mechanics             []Mechanic             `json:"mechanics"`
	ProgressionTracks     []ProgressionTrack     `json:"progression_tracks"`
	EconomyLoops          []EconomyLoop          `json:"economy_loops"`
	LiveEvents            []LiveEvent            `json:"live_events"`
	NarrativeBeats        []NarrativeBeat        `json:"narrative_beats"`
	AccessibilityFeatures []AccessibilityFeature `json:"accessibility_features"`
	AudioDesign           []AudioCue             `json:"audio_design"`
}

// SimulationSystem is one simulated system such as weather or physics.
type SimulationSystem struct {
	Name             string   `json:"name"`
	Scope            string   `json:"scope"`
	Fidelity         string   `json:"fidelity"`
	PlayerInfluence  string   `json:"player_influence"`
	EmergentOutcomes []string `json:"emergent_outcomes"`
}

// CreatorTool is an in-game editor or creation tool.
type CreatorTool struct {
	ToolName       string `json:"tool_name"`
	Capabilities   string `json:"capabilities"`
	AccessLevel    string `json:"access_level"`
	SharingChannel string `json:"sharing_channel"`
	Monetisation   string `json:"monetisation"`
}

var (
	simulationSystemColumns = []render.Column{
		{Field: "name", Header: "System", Style: "magenta"},
		{Field: "scope", Header: "Scope", Style: "cyan"},
		{Field: "fidelity", Header: "Fidelity", Style: "yellow"},
		{Field: "player_influence", Header: "Player Influence"},
	}
	creatorToolColumns = []render.Column{
		{Field: "tool_name", Header: "Tool", Style: "magenta"},
		{Field: "capabilities", Header: "Capabilities", Style: "cyan"},
		{Field: "access_level", Header: "Access", Style: "yellow"},
		{Field: "sharing_channel", Header: "Sharing"},
		{Field: "monetisation", Header: "Monetisation"},
	}
)

func (g *SimulationSandbox) Summary() render.Summary {
	return g.summary("Simulation / Sandbox Game")
}

func (g *SimulationSandbox) FactPairs() []render.Fact {
	return []render.Fact{
		g.releaseFact(),
		{Label: "Session Length", Value: minutes(g.AverageSessionMinutes)},
		{Label: "Player Authorship", Value: render.Text(g.PlayerAuthorship)},
		{Label: "Sharing", Value: render.Text(g.SharingInfrastructure)},
		g.monetisationFact(),
	}
}

func (g *SimulationSandbox) TableSections() []render.Section {
	return g.sections(
		render.SectionOf("Simulation Systems", simulationSystemColumns, g.SimulationSystems),
		render.SectionOf("Creator Tools", creatorToolColumns, g.CreatorTools),
		render.SectionOf("Mechanics", mechanicColumns, g.Mechanics),
		render.SectionOf("Progression", progressionColumns, g.ProgressionTracks),
		render.SectionOf("Economy Loops", economyLoopColumns, g.EconomyLoops),
		render.SectionOf("Live Ops", liveEventColumns, g.LiveEvents),
		render.SectionOf("Narrative Moments", narrativeColumns, g.NarrativeBeats),
		render.SectionOf("Accessibility", accessibilityColumns, g.AccessibilityFeatures),
		render.SectionOf("Audio Design", audioColumns, g.AudioDesign),
	)
}

func (g *SimulationSandbox) ExtraPanels() []render.Panel {
	return []render.Panel{
		{Title: "Systems", Style: "cyan", Body: lines(
			render.Fact{Label: "Simulation Scope", Value: g.SimulationScope},
			render.Fact{Label: "Tech Constraints", Value: g.TechConstraints},
			render.Fact{Label: "Live Cadence", Value: g.LiveUpdateCadence},
		)},
		{Title: "Player Creation", Style: "magenta", Body: lines(
			render.Fact{Label: "Authorship", Value: g.PlayerAuthorship},
			render.Fact{Label: "Sharing", Value: g.SharingInfrastructure},
		)},
	}
}
