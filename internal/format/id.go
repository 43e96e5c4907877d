package format

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"aiss/internal/services"
)

// ID is the canonical identifier of a content format.
type ID string

// Generic formats.
const (
	Show  ID = "show"
	Movie ID = "movie"
)

// Television formats.
const (
	Drama                       ID = "drama"
	Comedy                      ID = "comedy"
	Thriller                    ID = "thriller"
	ActionAdventureFantasy      ID = "action_adventure_fantasy"
	ScienceFiction              ID = "science_fiction"
	RealityCompetitionLifestyle ID = "reality_competition_lifestyle"
	DocumentaryFactual          ID = "documentary_factual"
	FamilyAnimationKids         ID = "family_animation_kids"
	NewsInformational           ID = "news_informational"
	Sports                      ID = "sports"
)

// Film formats.
const (
	DramaMovie                  ID = "drama_movie"
	ComedyMovie                 ID = "comedy_movie"
	ActionAdventureMovie        ID = "action_adventure_movie"
	FantasyScienceFictionMovie  ID = "fantasy_science_fiction_movie"
	ThrillerMysteryCrimeMovie   ID = "thriller_mystery_crime_movie"
	RomanceMovie                ID = "romance_movie"
	HorrorMovie                 ID = "horror_movie"
	DocumentaryBiographicalFilm ID = "documentary_biographical_movie"
)

// Game formats.
const (
	ActionAdventureGame   ID = "action_adventure_game"
	ShooterGame           ID = "shooter_game"
	PuzzleStrategyGame    ID = "puzzle_strategy_game"
	RolePlayingGame       ID = "role_playing_game"
	SimulationSandboxGame ID = "simulation_sandbox_game"
	SportsRacingGame      ID = "sports_racing_game"
	HorrorSurvivalGame    ID = "horror_survival_game"
	MMOOnlineGame         ID = "mmo_online_game"
)

// DefaultID is returned when an instance cannot be matched to a format.
const DefaultID = Show

// Family groups formats that share a render base.
type Family string

const (
	FamilyShows  Family = "shows"
	FamilyMovies Family = "movies"
	FamilyGames  Family = "games"
)

// ErrUnknownFormat reports an id outside the declared set or missing from a
// registry.
var ErrUnknownFormat = fmt.Errorf("%w: unknown format", services.ErrNotFound)

var declared = []ID{
	Show, Movie,
	Drama, Comedy, Thriller, ActionAdventureFantasy, ScienceFiction,
	RealityCompetitionLifestyle, DocumentaryFactual, FamilyAnimationKids,
	NewsInformational, Sports,
	DramaMovie, ComedyMovie, ActionAdventureMovie, FantasyScienceFictionMovie,
	ThrillerMysteryCrimeMovie, RomanceMovie, HorrorMovie, DocumentaryBiographicalFilm,
	ActionAdventureGame, ShooterGame, PuzzleStrategyGame, RolePlayingGame,
	SimulationSandboxGame, SportsRacingGame, HorrorSurvivalGame, MMOOnlineGame,
}

// Declared lists every format id in declaration order.
func Declared() []ID {
	return append([]ID(nil), declared...)
}

// Parse normalises s and checks it against the declared ids.
func Parse(s string) (ID, error) {
	candidate := ID(strings.ToLower(strings.TrimSpace(s)))
	for _, id := range declared {
		if id == candidate {
			return id, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

func (id ID) String() string {
	return string(id)
}

var titleCaser = cases.Title(language.English)

// DisplayLabel turns drama_movie into "Drama Movie".
func (id ID) DisplayLabel() string {
	return titleCaser.String(strings.ReplaceAll(string(id), "_", " "))
}

// Family reports which render family the id belongs to.
func (id ID) Family() Family {
	switch id {
	case Movie, DramaMovie, ComedyMovie, ActionAdventureMovie, FantasyScienceFictionMovie,
		ThrillerMysteryCrimeMovie, RomanceMovie, HorrorMovie, DocumentaryBiographicalFilm:
		return FamilyMovies
	case ActionAdventureGame, ShooterGame, PuzzleStrategyGame, RolePlayingGame,
		SimulationSandboxGame, SportsRacingGame, HorrorSurvivalGame, MMOOnlineGame:
		return FamilyGames
	default:
		return FamilyShows
	}
}
