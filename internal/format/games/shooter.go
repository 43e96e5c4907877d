package games

import (
	"aiss/internal/format"
	"aiss/internal/render"
)

// ShooterDescriptor registers the shooter game format.
var ShooterDescriptor = format.Descriptor{
	ID:          format.ShooterGame,
	Description: "Shooter genre model articulating gunplay pillars, map rotation, competitive structure, and live service rhythm.",
	KeyTrait:    "Precision gunplay married with fast tactical decision-making",
	Instructions: "Adopt the lens of a competitive shooter product lead preparing a pitch deck. " +
		"Explain the gunplay vision, movement tech, map philosophy, competitive rules, and service roadmap. " +
		"Clarify platform releases, economy plans, anti-cheat posture, and esports aspirations so stakeholders grasp the shooter's lifecycle.",
	PromptTemplate: "Compile a shooter genre production brief for '{title}', detailing gunplay goals, movement tech, map rotation, multiplayer modes, monetisation, and competitive aspirations.",
	New:            func() format.Instance { return &Shooter{} },
}

// Shooter is a gunplay-centred game.
type Shooter struct {
	Base
	CombatPhilosophy   string `json:"combat_philosophy"`
	MovementSignature  string `json:"movement_signature"`
	PlayerPerspective  string `json:"player_perspective"`
	MatchLengthMinutes int    `json:"match_length_minutes"`
	NetcodeStrategy    string `json:"netcode_strategy"`
	AntiCheatApproach  string `json:"anti_cheat_approach"`
	CrossplaySupport   bool   `json:"crossplay_support"`
	RankedFocus        string `json:"ranked_focus"`

	WeaponArchetypes      []WeaponArchetype      `json:"weapon_archetypes"`
	GameplayPillars       []Mechanic             `json:"gameplay_pillars"`
	MapRotation           []GameMap              `json:"map_rotation"`
	MultiplayerModes      []MultiplayerMode      `json:"multiplayer_modes"`
	ProgressionTracks     []ProgressionTrack     `json:"progression_tracks"`
	LiveEvents            []LiveEvent            `json:"live_events"`
	AccessibilityFeatures []AccessibilityFeature `json:"accessibility_features"`
	EconomyModels         []EconomyModel         `json:"economy_models"`
	EsportsEvents         []EsportsEvent         `json:"esports_events"`
	TechnicalBenchmarks   []TechnicalBenchmark   `json:"technical_benchmarks"`
	SessionProfiles       []SessionProfile       `json:"session_profiles"`
}

// WeaponArchetype is a class of weapon and its handling.
type WeaponArchetype struct {
	Name            string `json:"name"`
	Role            string `json:"role"`
	FireRateProfile string `json:"fire_rate_profile"`
	OptimalRange    string `json:"optimal_range"`
	SkillCeiling    string `json:"skill_ceiling"`
}

// GameMap is a map in the rotation.
type GameMap struct {
	MapName        string   `json:"map_name"`
	Environment    string   `json:"environment"`
	LayoutIdentity string   `json:"layout_identity"`
	ModeAlignment  []string `json:"mode_alignment"`
	Callouts       []string `json:"callouts"`
}

var (
	weaponColumns = []render.Column{
		{Field: "name", Header: "Weapon", Style: "magenta"},
		{Field: "role", Header: "Role", Style: "cyan"},
		{Field: "optimal_range", Header: "Range", Style: "yellow"},
		{Field: "skill_ceiling", Header: "Skill Ceiling"},
	}
	mapColumns = []render.Column{
		{Field: "map_name", Header: "Map", Style: "magenta"},
		{Field: "environment", Header: "Environment", Style: "cyan"},
		{Field: "layout_identity", Header: "Layout", Style: "yellow"},
		{Field: "mode_alignment", Header: "Modes"},
	}
)

func (g *Shooter) Summary() render.Summary {
	return g.summary("Shooter Game")
}

func (g *Shooter) FactPairs() []render.Fact {
	crossplay := "Unavailable"
	if g.CrossplaySupport {
		crossplay = "Enabled"
	}
	return []render.Fact{
		g.releaseFact(),
		{Label: "Perspective", Value: render.Text(g.PlayerPerspective)},
		{Label: "Match Length", Value: minutes(g.MatchLengthMinutes)},
		{Label: "Crossplay", Value: crossplay},
		{Label: "Netcode", Value: render.Text(g.NetcodeStrategy)},
		{Label: "Anti-Cheat", Value: render.Text(g.AntiCheatApproach)},
		{Label: "Ranked", Value: render.Text(g.RankedFocus)},
		g.monetisationFact(),
	}
}

func (g *Shooter) TableSections() []render.Section {
	return g.sections(
		render.SectionOf("Weapon Archetypes", weaponColumns, g.WeaponArchetypes),
		render.SectionOf("Gameplay Pillars", mechanicColumns, g.GameplayPillars),
		render.SectionOf("Map Pool", mapColumns, g.MapRotation),
		render.SectionOf("Multiplayer Modes", multiplayerColumns, g.MultiplayerModes),
		render.SectionOf("Progression", progressionColumns, g.ProgressionTracks),
		render.SectionOf("Live Ops", liveEventColumns, g.LiveEvents),
		render.SectionOf("Accessibility", accessibilityColumns, g.AccessibilityFeatures),
		render.SectionOf("Economy", economyColumns, g.EconomyModels),
		render.SectionOf("Esports", esportsColumns, g.EsportsEvents),
		render.SectionOf("Tech Benchmarks", benchmarkColumns, g.TechnicalBenchmarks),
		render.SectionOf("Player Sessions", sessionColumns, g.SessionProfiles),
	)
}

func (g *Shooter) ExtraPanels() []render.Panel {
	return []render.Panel{
		{Title: "Combat & Movement", Style: "cyan", Body: lines(
			render.Fact{Label: "Gunplay", Value: g.CombatPhilosophy},
			render.Fact{Label: "Movement", Value: g.MovementSignature},
		)},
		{Title: "Service Overview", Style: "magenta", Body: lines(
			render.Fact{Label: "Ranked", Value: g.RankedFocus},
			render.Fact{Label: "Economy", Value: g.MonetisationModel},
		)},
	}
}
