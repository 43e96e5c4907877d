package shows

import (
	"aiss/internal/format"
	"aiss/internal/render"
)

// FamilyDescriptor registers the family, animation and kids series format.
var FamilyDescriptor = format.Descriptor{
	ID:          format.FamilyAnimationKids,
	Description: "Family and kids television intelligence model blending creative highlights, educational intent, and market positioning.",
	KeyTrait:    "Family-friendly TV storytelling that balances developmental goals with entertainment",
	Instructions: "Act as a children's television strategy lead compiling a definitive brief on a family, animation, or kids TV show. " +
		"Describe the target age range, developmental goals, educational focus, core values, character ensemble, recurring lessons, music integration, and parental guidance resources. " +
		"Explain the production approach, broadcast and distribution footprint, critical reception, and audience engagement so the series is clearly positioned for family co-viewing.",
	PromptTemplate: "Deliver a comprehensive family or kids TV show profile for '{title}', spotlighting educational aims, character ensemble, signature lessons, and reception.",
	New:            func() format.Instance { return &Family{} },
}

// Family is a children's or family co-viewing series.
type Family struct {
	Base
	Premise             string   `json:"premise"`
	FormatType          string   `json:"format_type"`
	TargetAgeRange      string   `json:"target_age_range"`
	EducationalFocus    []string `json:"educational_focus"`
	CoreValues          []string `json:"core_values"`
	Tone                string   `json:"tone"`
	Creators            []string `json:"creators"`
	Showrunners         []string `json:"showrunners"`
	EducationalAdvisors []string `json:"educational_advisors"`

	Characters          []FamilyCharacter    `json:"characters"`
	EducationalSegments []EducationalSegment `json:"educational_segments"`
	ParentGuides        []ParentGuide        `json:"parent_guides"`
	Music               []MusicMoment        `json:"music"`
}

// FamilyCharacter is a member of the ensemble.
type FamilyCharacter struct {
	Name              string   `json:"name"`
	VoiceActor        string   `json:"voice_actor"`
	Role              string   `json:"role"`
	SpeciesOrType     string   `json:"species_or_type"`
	PersonalityTraits []string `json:"personality_traits"`
	LessonFocus       string   `json:"lesson_focus"`
	Catchphrases      []string `json:"catchphrases"`
}

// EducationalSegment is an episode or segment with a learning goal.
type EducationalSegment struct {
	Episode          string   `json:"episode"`
	Topic            string   `json:"topic"`
	SkillsTargeted   []string `json:"skills_targeted"`
	TeachingApproach string   `json:"teaching_approach"`
	Takeaway         string   `json:"takeaway"`
}

// ParentGuide is a discussion aid for parents.
type ParentGuide struct {
	Topic                string   `json:"topic"`
	ConversationStarters []string `json:"conversation_starters"`
	EmotionalNotes       string   `json:"emotional_notes"`
	ReinforcementIdeas   []string `json:"reinforcement_ideas"`
}

// MusicMoment is a song or musical cue.
type MusicMoment struct {
	SongTitle string `json:"song_title"`
	Episode   string `json:"episode"`
	Style     string `json:"style"`
	Purpose   string `json:"purpose"`
}

var (
	familyCharacterColumns = []render.Column{
		{Field: "name", Header: "Character", Style: "magenta", NoWrap: true},
		{Field: "voice_actor", Header: "Voice Actor", Style: "cyan"},
		{Field: "role", Header: "Role", Style: "yellow"},
		{Field: "lesson_focus", Header: "Lesson Focus"},
	}
	segmentColumns = []render.Column{
		{Field: "episode", Header: "Episode", Style: "magenta"},
		{Field: "topic", Header: "Topic", Style: "cyan"},
		{Field: "teaching_approach", Header: "Approach", Style: "yellow"},
		{Field: "takeaway", Header: "Takeaway"},
	}
	parentGuideColumns = []render.Column{
		{Field: "topic", Header: "Topic", Style: "magenta"},
		{Field: "emotional_notes", Header: "Emotional Notes", Style: "cyan"},
		{Field: "conversation_starters", Header: "Conversation Starters"},
	}
	musicColumns = []render.Column{
		{Field: "song_title", Header: "Song", Style: "magenta"},
		{Field: "episode", Header: "Episode", Style: "cyan"},
		{Field: "style", Header: "Style"},
		{Field: "purpose", Header: "Purpose"},
	}
)

func (s *Family) Summary() render.Summary {
	return s.summary("Family / Kids Series", s.Premise)
}

func (s *Family) FactPairs() []render.Fact {
	return append(s.baselineFacts(),
		render.Fact{Label: "Format", Value: render.Text(s.FormatType)},
		render.Fact{Label: "Target Age", Value: render.Text(s.TargetAgeRange)},
		render.Fact{Label: "Educational Focus", Value: render.Join(s.EducationalFocus)},
		render.Fact{Label: "Core Values", Value: render.Join(s.CoreValues)},
		render.Fact{Label: "Tone", Value: render.Text(s.Tone)},
	)
}

func (s *Family) TableSections() []render.Section {
	return append([]render.Section{
		render.SectionOf("Characters", familyCharacterColumns, s.Characters),
		render.SectionOf("Educational Segments", segmentColumns, s.EducationalSegments),
		render.SectionOf("Parent Guides", parentGuideColumns, s.ParentGuides),
		render.SectionOf("Music Moments", musicColumns, s.Music),
	}, s.tailSections()...)
}

func (s *Family) ExtraPanels() []render.Panel {
	return []render.Panel{
		{Title: "Creative Team", Body: render.Labeled(
			render.Fact{Label: "Creators", Value: render.Inline(s.Creators)},
			render.Fact{Label: "Showrunners", Value: render.Inline(s.Showrunners)},
			render.Fact{Label: "Educational Advisors", Value: render.Inline(s.EducationalAdvisors)},
		)},
	}
}
