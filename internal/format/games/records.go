package games

import "aiss/internal/render"

// Studio is a developer or publisher credit.
type Studio struct {
	Name            string   `json:"name"`
	Role            string   `json:"role"`
	Headquarters    string   `json:"headquarters"`
	TeamSize        *int     `json:"team_size"`
	NotableCredits  []string `json:"notable_credits"`
	TechnologyStack []string `json:"technology_stack"`
}

// PlatformRelease describes one platform launch.
type PlatformRelease struct {
	Platform         string   `json:"platform"`
	ReleaseDate      string   `json:"release_date"`
	Edition          string   `json:"edition"`
	ResolutionTarget string   `json:"resolution_target"`
	FrameRateTarget  string   `json:"frame_rate_target"`
	PlatformFeatures []string `json:"platform_features"`
}

// Mechanic is a signature gameplay system.
type Mechanic struct {
	Mechanic     string `json:"mechanic"`
	Category     string `json:"category"`
	Description  string `json:"description"`
	PlayerImpact string `json:"player_impact"`
	MasteryCurve string `json:"mastery_curve"`
}

// MultiplayerMode is a playable mode.
type MultiplayerMode struct {
	ModeName    string `json:"mode_name"`
	ModeType    string `json:"mode_type"`
	MaxPlayers  *int   `json:"max_players"`
	IsRanked    bool   `json:"is_ranked"`
	CrossPlay   bool   `json:"cross_play"`
	Description string `json:"description"`
}

// LiveEvent is a live operations or seasonal beat.
type LiveEvent struct {
	EventName     string   `json:"event_name"`
	Cadence       string   `json:"cadence"`
	Focus         string   `json:"focus"`
	Rewards       []string `json:"rewards"`
	RetentionGoal string   `json:"retention_goal"`
}

// AccessibilityFeature is one accessibility option.
type AccessibilityFeature struct {
	Feature         string   `json:"feature"`
	Status          string   `json:"status"`
	Notes           string   `json:"notes"`
	PlatformSupport []string `json:"platform_support"`
}

// ProgressionTrack is an upgrade path.
type ProgressionTrack struct {
	TrackName string   `json:"track_name"`
	TrackType string   `json:"track_type"`
	Unlocks   []string `json:"unlocks"`
	Pacing    string   `json:"pacing"`
	HardCap   *int     `json:"hard_cap"`
}

// NarrativeBeat is a quest milestone.
type NarrativeBeat struct {
	BeatName        string `json:"beat_name"`
	Synopsis        string `json:"synopsis"`
	BranchingChoice string `json:"branching_choice"`
	EmotionalTone   string `json:"emotional_tone"`
}

// AudioCue is an audio design highlight.
type AudioCue struct {
	CueName         string `json:"cue_name"`
	Composer        string `json:"composer"`
	Style           string `json:"style"`
	GameplayTrigger string `json:"gameplay_trigger"`
}

// EconomyModel is a currency or monetisation layer. AverageSpend is in whole
// currency units.
type EconomyModel struct {
	Currency         string   `json:"currency"`
	Acquisition      []string `json:"acquisition"`
	Spending         []string `json:"spending"`
	MonetisationType string   `json:"monetisation_type"`
	AverageSpend     *int64   `json:"average_spend"`
}

// EconomyLoop is a resource flow.
type EconomyLoop struct {
	LoopName         string   `json:"loop_name"`
	LoopType         string   `json:"loop_type"`
	Inputs           []string `json:"inputs"`
	Outputs          []string `json:"outputs"`
	MonetisationHook string   `json:"monetisation_hook"`
	RetentionGoal    string   `json:"retention_goal"`
}

// TechnicalBenchmark is a performance target.
type TechnicalBenchmark struct {
	Scenario          string `json:"scenario"`
	HardwareProfile   string `json:"hardware_profile"`
	TargetMetrics     string `json:"target_metrics"`
	MeasuredMetrics   string `json:"measured_metrics"`
	OptimisationNotes string `json:"optimisation_notes"`
}

// EsportsEvent is an esports league or event.
type EsportsEvent struct {
	EventName         string   `json:"event_name"`
	Tier              string   `json:"tier"`
	Region            string   `json:"region"`
	PrizePool         *int64   `json:"prize_pool"`
	BroadcastPartners []string `json:"broadcast_partners"`
	FormatNotes       string   `json:"format_notes"`
}

// SessionProfile describes a typical play session.
type SessionProfile struct {
	Activity               string `json:"activity"`
	AverageDurationMinutes *int   `json:"average_duration_minutes"`
	PlayerGoal             string `json:"player_goal"`
	EngagementMetric       string `json:"engagement_metric"`
}

// SocialFeature is a social system in a persistent game.
type SocialFeature struct {
	FeatureName        string   `json:"feature_name"`
	SurfaceArea        string   `json:"surface_area"`
	CommunicationTools []string `json:"communication_tools"`
	SafetyTooling      string   `json:"safety_tooling"`
	RetentionRole      string   `json:"retention_role"`
}

// yesNo renders flags as Yes or No.
var yesNo = render.Using(func(v any) string {
	if b, ok := v.(bool); ok && b {
		return "Yes"
	}
	return "No"
})

var (
	studioColumns = []render.Column{
		{Field: "name", Header: "Studio", Style: "magenta", NoWrap: true},
		{Field: "role", Header: "Role", Style: "cyan"},
		{Field: "headquarters", Header: "Region", Style: "yellow"},
		{Field: "team_size", Header: "Team Size", Justify: render.JustifyRight, Format: render.FormatNumber},
		{Field: "notable_credits", Header: "Notable Credits"},
	}
	platformColumns = []render.Column{
		{Field: "platform", Header: "Platform", Style: "magenta", NoWrap: true},
		{Field: "release_date", Header: "Release", Style: "cyan"},
		{Field: "edition", Header: "Edition", Style: "yellow"},
		{Field: "resolution_target", Header: "Resolution"},
		{Field: "frame_rate_target", Header: "Frame Rate"},
	}
	mechanicColumns = []render.Column{
		{Field: "mechanic", Header: "Mechanic", Style: "magenta", NoWrap: true},
		{Field: "category", Header: "Category", Style: "cyan"},
		{Field: "player_impact", Header: "Impact", Style: "yellow"},
		{Field: "mastery_curve", Header: "Mastery"},
	}
	multiplayerColumns = []render.Column{
		{Field: "mode_name", Header: "Mode", Style: "magenta", NoWrap: true},
		{Field: "mode_type", Header: "Type", Style: "cyan"},
		{Field: "max_players", Header: "Players", Justify: render.JustifyRight, Format: render.FormatNumber},
		{Field: "is_ranked", Header: "Ranked", Format: yesNo},
		{Field: "cross_play", Header: "Cross-Play", Format: yesNo},
	}
	liveEventColumns = []render.Column{
		{Field: "event_name", Header: "Event", Style: "magenta"},
		{Field: "cadence", Header: "Cadence", Style: "cyan"},
		{Field: "focus", Header: "Focus", Style: "yellow"},
		{Field: "rewards", Header: "Rewards"},
	}
	accessibilityColumns = []render.Column{
		{Field: "feature", Header: "Feature", Style: "magenta"},
		{Field: "status", Header: "Status", Style: "cyan"},
		{Field: "platform_support", Header: "Platforms"},
	}
	progressionColumns = []render.Column{
		{Field: "track_name", Header: "Track", Style: "magenta"},
		{Field: "track_type", Header: "Type", Style: "cyan"},
		{Field: "hard_cap", Header: "Cap", Justify: render.JustifyRight, Format: render.FormatNumber},
		{Field: "pacing", Header: "Pacing"},
	}
	narrativeColumns = []render.Column{
		{Field: "beat_name", Header: "Beat", Style: "magenta"},
		{Field: "synopsis", Header: "Synopsis", Style: "cyan"},
		{Field: "branching_choice", Header: "Choice", Style: "yellow"},
		{Field: "emotional_tone", Header: "Tone"},
	}
	audioColumns = []render.Column{
		{Field: "cue_name", Header: "Cue", Style: "magenta"},
		{Field: "composer", Header: "Composer", Style: "cyan"},
		{Field: "style", Header: "Style", Style: "yellow"},
		{Field: "gameplay_trigger", Header: "Trigger"},
	}
	economyColumns = []render.Column{
		{Field: "currency", Header: "Currency", Style: "magenta"},
		{Field: "monetisation_type", Header: "Type", Style: "cyan"},
		{Field: "average_spend", Header: "Avg Spend", Justify: render.JustifyRight, Format: render.FormatMoney},
		{Field: "acquisition", Header: "Acquisition"},
	}
	economyLoopColumns = []render.Column{
		{Field: "loop_name", Header: "Loop", Style: "magenta"},
		{Field: "loop_type", Header: "Type", Style: "cyan"},
		{Field: "monetisation_hook", Header: "Monetisation", Style: "yellow"},
		{Field: "retention_goal", Header: "Retention"},
	}
	benchmarkColumns = []render.Column{
		{Field: "scenario", Header: "Scenario", Style: "magenta"},
		{Field: "hardware_profile", Header: "Hardware", Style: "cyan"},
		{Field: "target_metrics", Header: "Target"},
		{Field: "measured_metrics", Header: "Measured"},
	}
	esportsColumns = []render.Column{
		{Field: "event_name", Header: "Event", Style: "magenta"},
		{Field: "tier", Header: "Tier", Style: "cyan"},
		{Field: "region", Header: "Region", Style: "yellow"},
		{Field: "prize_pool", Header: "Prize Pool", Justify: render.JustifyRight, Format: render.FormatMoney},
	}
	sessionColumns = []render.Column{
		{Field: "activity", Header: "Activity", Style: "magenta"},
		{Field: "average_duration_minutes", Header: "Duration", Style: "cyan", Justify: render.JustifyRight, Format: render.FormatRuntime},
		{Field: "player_goal", Header: "Player Goal", Style: "yellow"},
		{Field: "engagement_metric", Header: "Metric"},
	}
	socialColumns = []render.Column{
		{Field: "feature_name", Header: "Feature", Style: "magenta"},
		{Field: "surface_area", Header: "Surface", Style: "cyan"},
		{Field: "safety_tooling", Header: "Safety", Style: "yellow"},
		{Field: "retention_role", Header: "Retention"},
	}
)
