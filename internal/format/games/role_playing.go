package games

import (
	"aiss/internal/format"
	"aiss/internal/render"
)

// RolePlayingDescriptor registers the role-playing game format.
var RolePlayingDescriptor = format.Descriptor{
	ID:             format.RolePlayingGame,
	Description:    "Role-playing game model highlighting worldbuilding, character progression, and branching narrative structure.",
	KeyTrait:       "Character-driven storytelling with deep progression layers",
	Instructions:   "Summarise an RPG as a worldbuilding director. Describe setting, factions, character classes, choice consequence systems, and how player builds evolve. Capture quest arcs, companion dynamics, monetisation, and post-launch narrative cadence so the RPG's scope is obvious.",
	PromptTemplate: "Provide an RPG leadership brief for '{title}', covering setting, factions, classes, companions, branching choices, monetisation, and post-launch narrative plans.",
	New:            func() format.Instance { return &RolePlaying{} },
}

// RolePlaying is a character-progression game.
type RolePlaying struct {
	Base
	WorldSetting           string  `json:"world_setting"`
	TimelineContext        string  `json:"timeline_context"`
	ProtagonistIdentity    string  `json:"protagonist_identity"`
	EstimatedCampaignHours float64 `json:"estimated_campaign_hours"`
	BuildFlexibility       string  `json:"build_flexibility"`
	ChoiceConsequenceMap   string  `json:"choice_consequence_map"`
	PostLaunchStoryPlan    string  `json:"post_launch_story_plan"`

	Factions              []Faction              `json:"factions"`
	CharacterClasses      []CharacterClass       `json:"character_classes"`
	Companions            []Companion            `json:"companions"`
	Systems               []Mechanic             `json:"systems"`
	NarrativeBeats        []NarrativeBeat        `json:"narrative_beats"`
	ProgressionTracks     []ProgressionTrack     `json:"progression_tracks"`
	LiveEvents            []LiveEvent            `json:"live_events"`
	AccessibilityFeatures []AccessibilityFeature `json:"accessibility_features"`
	AudioDesign           []AudioCue             `json:"audio_design"`
}

// CharacterClass is a playable archetype.
type CharacterClass struct {
	ClassName          string   `json:"class_name"`
	CombatRole         string   `json:"combat_role"`
	ResourceModel      string   `json:"resource_model"`
	SignatureAbilities []string `json:"signature_abilities"`
	ComplexityRating   string   `json:"complexity_rating"`
}

// Companion is a recruitable party member.
type Companion struct {
	Name          string `json:"name"`
	Origin        string `json:"origin"`
	CombatSynergy string `json:"combat_synergy"`
	LoyaltyArc    string `json:"loyalty_arc"`
	Romanceable   bool   `json:"romanceable"`
}

// Faction is an organisation in the world.
type Faction struct {
	FactionName       string   `json:"faction_name"`
	Ideology          string   `json:"ideology"`
	Territory         string   `json:"territory"`
	RelationshipState string   `json:"relationship_state"`
	Rewards           []string `json:"rewards"`
}

var (
	classColumns = []render.Column{
		{Field: "class_name", Header: "Class", Style: "magenta"},
		{Field: "combat_role", Header: "Role", Style: "cyan"},
		{Field: "resource_model", Header: "Resource", Style: "yellow"},
		{Field: "complexity_rating", Header: "Complexity"},
	}
	companionColumns = []render.Column{
		{Field: "name", Header: "Companion", Style: "magenta"},
		{Field: "origin", Header: "Origin", Style: "cyan"},
		{Field: "combat_synergy", Header: "Synergy", Style: "yellow"},
		{Field: "romanceable", Header: "Romance", Format: yesNo},
	}
	factionColumns = []render.Column{
		{Field: "faction_name", Header: "Faction", Style: "magenta"},
		{Field: "ideology", Header: "Ideology", Style: "cyan"},
		{Field: "territory", Header: "Territory", Style: "yellow"},
		{Field: "relationship_state", Header: "Relationship"},
	}
)

func (g *RolePlaying) Summary() render.Summary {
	return g.summary("Role-Playing Game")
}

func (g *RolePlaying) FactPairs() []render.Fact {
	return []render.Fact{
		g.releaseFact(),
		{Label: "Campaign Hours", Value: hours(g.EstimatedCampaignHours)},
		{Label: "Build Flexibility", Value: render.Text(g.BuildFlexibility)},
		{Label: "Choices", Value: render.Text(g.ChoiceConsequenceMap)},
		g.monetisationFact(),
	}
}

func (g *RolePlaying) TableSections() []render.Section {
	return g.sections(
		render.SectionOf("Factions", factionColumns, g.Factions),
		render.SectionOf("Character Classes", classColumns, g.CharacterClasses),
		render.SectionOf("Companions", companionColumns, g.Companions),
		render.SectionOf("Systems", mechanicColumns, g.Systems),
		render.SectionOf("Narrative Beats", narrativeColumns, g.NarrativeBeats),
		render.SectionOf("Progression", progressionColumns, g.ProgressionTracks),
		render.SectionOf("Live Ops", liveEventColumns, g.LiveEvents),
		render.SectionOf("Accessibility", accessibilityColumns, g.AccessibilityFeatures),
		render.SectionOf("Audio Design", audioColumns, g.AudioDesign),
	)
}

func (g *RolePlaying) ExtraPanels() []render.Panel {
	return []render.Panel{
		{Title: "Worldbuilding", Style: "cyan", Body: lines(
			render.Fact{Label: "World", Value: g.WorldSetting},
			render.Fact{Label: "Timeline", Value: g.TimelineContext},
			render.Fact{Label: "Post-Launch", Value: g.PostLaunchStoryPlan},
		)},
		{Title: "Player Fantasy", Style: "magenta", Body: lines(
			render.Fact{Label: "Protagonist", Value: g.ProtagonistIdentity},
			render.Fact{Label: "Build Freedom", Value: g.BuildFlexibility},
		)},
	}
}
