package games

import (
	"aiss/internal/format"
	"aiss/internal/render"
)

// HorrorSurvivalDescriptor registers the horror and survival game format.
var HorrorSurvivalDescriptor = format.Descriptor{
	ID:             format.HorrorSurvivalGame,
	Description:    "Horror and survival game model emphasising tension, resource scarcity, and fear delivery systems.",
	KeyTrait:       "Sustained dread with deliberate vulnerability management",
	Instructions:   "Summarise a horror or survival game as a fear architect. Explain tone, threats, survival resource tension, pacing, and how players manage vulnerability. Include level or scenario structure, co-op support, live updates, monetisation, and accessibility for scares.",
	PromptTemplate: "Provide a horror or survival blueprint for '{title}', detailing threats, resource tension, scenarios, co-op, monetisation, and live update strategy.",
	New:            func() format.Instance { return &HorrorSurvival{} },
}

// HorrorSurvival is a tension and scarcity driven game.
type HorrorSurvival struct {
	Base
	HorrorSubgenre         string  `json:"horror_subgenre"`
	ThreatDesignPhilosophy string  `json:"threat_design_philosophy"`
	TensionDelivery        string  `json:"tension_delivery"`
	VulnerabilityModel     string  `json:"vulnerability_model"`
	LiveUpdateStrategy     string  `json:"live_update_strategy"`
	AverageSessionMinutes  float64 `json:"average_session_minutes"`

	Threats               []Threat               `json:"threats"`
	SurvivalResources     []SurvivalResource     `json:"survival_resources"`
	Scenarios             []HorrorScenario       `json:"scenarios"`
	Mechanics             []Mechanic             `json:"mechanics"`
	NarrativeBeats        []NarrativeBeat        `json:"narrative_beats"`
	ProgressionTracks     []ProgressionTrack     `json:"progression_tracks"`
	LiveEvents            []LiveEvent            `json:"live_events"`
	AccessibilityFeatures []AccessibilityFeature `json:"accessibility_features"`
	AudioDesign           []AudioCue             `json:"audio_design"`
}

// Threat is an enemy or hazard.
type Threat struct {
	Name        string `json:"name"`
	Behaviour   string `json:"behaviour"`
	Escalation  string `json:"escalation"`
	Counterplay string `json:"counterplay"`
}

// SurvivalResource is a scarce item the player manages.
type SurvivalResource struct {
	ResourceName      string `json:"resource_name"`
	ScarcityModel     string `json:"scarcity_model"`
	AcquisitionMethod string `json:"acquisition_method"`
	UsagePressure     string `json:"usage_pressure"`
}

// HorrorScenario is a level or scenario.
type HorrorScenario struct {
	ScenarioName string `json:"scenario_name"`
	Objective    string `json:"objective"`
	TensionCurve string `json:"tension_curve"`
	CoopSupport  string `json:"coop_support"`
}

var (
	threatColumns = []render.Column{
		{Field: "name", Header: "Threat", Style: "magenta"},
		{Field: "behaviour", Header: "Behaviour", Style: "cyan"},
		{Field: "escalation", Header: "Escalation", Style: "yellow"},
		{Field: "counterplay", Header: "Counterplay"},
	}
	resourceColumns = []render.Column{
		{Field: "resource_name", Header: "Resource", Style: "magenta"},
		{Field: "scarcity_model", Header: "Scarcity", Style: "cyan"},
		{Field: "acquisition_method", Header: "Acquisition", Style: "yellow"},
		{Field: "usage_pressure", Header: "Pressure"},
	}
	horrorScenarioColumns = []render.Column{
		{Field: "scenario_name", Header: "Scenario", Style: "magenta"},
		{Field: "objective", Header: "Objective", Style: "cyan"},
		{Field: "tension_curve", Header: "Tension", Style: "yellow"},
		{Field: "coop_support", Header: "Co-op"},
	}
)

func (g *HorrorSurvival) Summary() render.Summary {
	return g.summary("Horror / Survival Game")
}

func (g *HorrorSurvival) FactPairs() []render.Fact {
	return []render.Fact{
		g.releaseFact(),
		{Label: "Session Length", Value: minutes(g.AverageSessionMinutes)},
		{Label: "Subgenre", Value: render.Text(g.HorrorSubgenre)},
		{Label: "Tension Delivery", Value: render.Text(g.TensionDelivery)},
		g.monetisationFact(),
	}
}

func (g *HorrorSurvival) TableSections() []render.Section {
	return g.sections(
		render.SectionOf("Threats", threatColumns, g.Threats),
		render.SectionOf("Resources", resourceColumns, g.SurvivalResources),
		render.SectionOf("Scenarios", horrorScenarioColumns, g.Scenarios),
		render.SectionOf("Mechanics", mechanicColumns, g.Mechanics),
		render.SectionOf("Narrative", narrativeColumns, g.NarrativeBeats),
		render.SectionOf("Progression", progressionColumns, g.ProgressionTracks),
		render.SectionOf("Live Ops", liveEventColumns, g.LiveEvents),
		render.SectionOf("Accessibility", accessibilityColumns, g.AccessibilityFeatures),
		render.SectionOf("Audio Design", audioColumns, g.AudioDesign),
	)
}

func (g *HorrorSurvival) ExtraPanels() []render.Panel {
	return []render.Panel{
		{Title: "Fear Design", Style: "cyan", Body: lines(
			render.Fact{Label: "Threat Philosophy", Value: g.ThreatDesignPhilosophy},
			render.Fact{Label: "Vulnerability", Value: g.VulnerabilityModel},
		)},
		{Title: "Survival Plan", Style: "magenta", Body: lines(
			render.Fact{Label: "Subgenre", Value: g.HorrorSubgenre},
			render.Fact{Label: "Live Strategy", Value: g.LiveUpdateStrategy},
		)},
	}
}
