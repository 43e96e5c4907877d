// Package registry maps format ids to their descriptors. The table is built
// once from the closed id set and is read-only afterwards.
package registry

import (
	"fmt"
	"log/slog"
	"reflect"
	"strings"
	"sync"

	"aiss/internal/format"
	"aiss/internal/format/games"
	"aiss/internal/format/movies"
	"aiss/internal/format/shows"
	"aiss/internal/logging"
)

// Registry is an immutable id → descriptor table.
type Registry struct {
	ids         []format.ID
	descriptors map[format.ID]format.Descriptor
	types       map[reflect.Type]format.ID
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process-wide registry, building it on first use.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = Build(format.Declared(), logging.NewComponentLogger(slog.Default(), "registry"))
	})
	return defaultRegistry
}

// Build resolves every id through the closed variant table. Ids that do not
// resolve are omitted and reported on logger.
func Build(ids []format.ID, logger *slog.Logger) *Registry {
	if logger == nil {
		logger = logging.NewNop()
	}
	r := &Registry{
		descriptors: make(map[format.ID]format.Descriptor, len(ids)),
		types:       make(map[reflect.Type]format.ID, len(ids)),
	}
	for _, id := range ids {
		d, ok := variant(id)
		if !ok || d.New == nil {
			logging.WarnWithContext(logger, "format variant unavailable", "registry_unresolved",
				logging.String("format_id", string(id)),
				logging.String(logging.FieldErrorHint, "the id has no variant in this build"),
				logging.String(logging.FieldImpact, "format omitted from classification options"),
			)
			continue
		}
		if _, dup := r.descriptors[id]; dup {
			continue
		}
		r.ids = append(r.ids, id)
		r.descriptors[id] = d
		r.types[d.Type()] = id
	}
	return r
}

func variant(id format.ID) (format.Descriptor, bool) {
	switch id {
	case format.Show:
		return shows.GeneralDescriptor, true
	case format.Drama:
		return shows.DramaDescriptor, true
	case format.Comedy:
		return shows.ComedyDescriptor, true
	case format.Thriller:
		return shows.ThrillerDescriptor, true
	case format.ActionAdventureFantasy:
		return shows.ActionFantasyDescriptor, true
	case format.ScienceFiction:
		return shows.ScienceFictionDescriptor, true
	case format.RealityCompetitionLifestyle:
		return shows.RealityDescriptor, true
	case format.DocumentaryFactual:
		return shows.DocumentaryDescriptor, true
	case format.FamilyAnimationKids:
		return shows.FamilyDescriptor, true
	case format.NewsInformational:
		return shows.NewsDescriptor, true
	case format.Sports:
		return shows.SportsDescriptor, true

	case format.Movie:
		return movies.GeneralDescriptor, true
	case format.DramaMovie:
		return movies.DramaDescriptor, true
	case format.ComedyMovie:
		return movies.ComedyDescriptor, true
	case format.ActionAdventureMovie:
		return movies.ActionAdventureDescriptor, true
	case format.FantasyScienceFictionMovie:
		return movies.FantasyScienceFictionDescriptor, true
	case format.ThrillerMysteryCrimeMovie:
		return movies.ThrillerDescriptor, true
	case format.RomanceMovie:
		return movies.RomanceDescriptor, true
	case format.HorrorMovie:
		return movies.HorrorDescriptor, true
	case format.DocumentaryBiographicalFilm:
		return movies.DocumentaryDescriptor, true

	case format.ActionAdventureGame:
		return games.ActionAdventureDescriptor, true
	case format.ShooterGame:
		return games.ShooterDescriptor, true
	case format.PuzzleStrategyGame:
		return games.PuzzleStrategyDescriptor, true
	case format.RolePlayingGame:
		return games.RolePlayingDescriptor, true
	case format.SimulationSandboxGame:
		return games.SimulationSandboxDescriptor, true
	case format.SportsRacingGame:
		return games.SportsRacingDescriptor, true
	case format.HorrorSurvivalGame:
		return games.HorrorSurvivalDescriptor, true
	case format.MMOOnlineGame:
		return games.MMODescriptor, true
	default:
		return format.Descriptor{}, false
	}
}

// Resolve returns the descriptor registered for id.
func (r *Registry) Resolve(id format.ID) (format.Descriptor, error) {
	d, ok := r.descriptors[id]
	if !ok {
		return format.Descriptor{}, fmt.Errorf("%w: %q", format.ErrUnknownFormat, id)
	}
	return d, nil
}

// ReverseLookup finds the id whose variant produced inst. Unregistered types
// fall back to format.DefaultID.
func (r *Registry) ReverseLookup(inst format.Instance) format.ID {
	if inst == nil {
		return format.DefaultID
	}
	if id, ok := r.types[reflect.TypeOf(inst)]; ok {
		return id
	}
	return format.DefaultID
}

// IDs lists the registered ids in declaration order.
func (r *Registry) IDs() []format.ID {
	return append([]format.ID(nil), r.ids...)
}

// Len reports how many formats are registered.
func (r *Registry) Len() int { return len(r.ids) }

// Descriptors lists registered descriptors in declaration order.
func (r *Registry) Descriptors() []format.Descriptor {
	out := make([]format.Descriptor, 0, len(r.ids))
	for _, id := range r.ids {
		out = append(out, r.descriptors[id])
	}
	return out
}

// Families groups registered descriptors by render family, preserving
// declaration order inside each group.
func (r *Registry) Families() map[format.Family][]format.Descriptor {
	out := make(map[format.Family][]format.Descriptor, 3)
	for _, d := range r.Descriptors() {
		out[d.Family()] = append(out[d.Family()], d)
	}
	return out
}

// FormattedOptions lists ids as 'a', 'b' or 'c'.
func (r *Registry) FormattedOptions() string {
	return FormatOptions(r.ids)
}

// FormatOptions quotes ids and joins them with commas and a final "or".
func FormatOptions(ids []format.ID) string {
	quoted := make([]string, len(ids))
	for i, id := range ids {
		quoted[i] = "'" + string(id) + "'"
	}
	switch len(quoted) {
	case 0:
		return "''"
	case 1:
		return quoted[0]
	default:
		return strings.Join(quoted[:len(quoted)-1], ", ") + " or " + quoted[len(quoted)-1]
	}
}

// InstructionListing describes every registered format for the classifier.
func (r *Registry) InstructionListing() string {
	var b strings.Builder
	b.WriteString("Models available:\n")
	for _, id := range r.ids {
		d := r.descriptors[id]
		fmt.Fprintf(&b, "For model type '%s':\n", id)
		fmt.Fprintf(&b, "- Description: %s\n", strings.TrimSpace(d.Description))
		fmt.Fprintf(&b, "- Key Trait: %s\n", strings.TrimSpace(d.KeyTrait))
	}
	return strings.TrimRight(b.String(), "\n")
}
