package training

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mentorlabs/mentor/internal/skill"
)

// UnknownProfileError reports a profile lookup against a name that is not in
// the canonical registry. Available always lists every valid name.
type UnknownProfileError struct {
	Name      string
	Available []string
}

func (e *UnknownProfileError) Error() string {
	return fmt.Sprintf("unknown profile %q. Available profiles: %s", e.Name, strings.Join(e.Available, ", "))
}

// profiles is the fixed registry of canonical training configurations,
// constructed once and never mutated.
var profiles = map[string]Profile{
	"legendary_sage": {
		Name:              "Legendary Sage",
		Description:       "Master-level capabilities across all domains",
		SkillModules:      skill.Keys(),
		Intensity:         IntensityLegendary,
		Focus:             FocusComprehensive,
		EnhancedReasoning: true,
	},
	"analytical_master": {
		Name:              "Analytical Master",
		Description:       "Exceptional analytical and problem-solving abilities",
		SkillModules:      []string{"problem_solving", "meta_cognition", "domain_expertise"},
		Intensity:         IntensityLegendary,
		Focus:             FocusAnalytical,
		EnhancedReasoning: true,
	},
	"communication_expert": {
		Name:              "Communication Expert",
		Description:       "Master communicator and interpersonal specialist",
		SkillModules:      []string{"communication", "leadership", "ethical_reasoning"},
		Intensity:         IntensityLegendary,
		Focus:             FocusInterpersonal,
		EnhancedReasoning: true,
	},
	"innovation_genius": {
		Name:              "Innovation Genius",
		Description:       "Creative problem-solver and innovation catalyst",
		SkillModules:      []string{"creative_thinking", "problem_solving", "domain_expertise"},
		Intensity:         IntensityLegendary,
		Focus:             FocusCreative,
		EnhancedReasoning: true,
	},
	"ethical_leader": {
		Name:              "Ethical Leader",
		Description:       "Principled leader with strong moral reasoning",
		SkillModules:      []string{"ethical_reasoning", "leadership", "communication"},
		Intensity:         IntensityLegendary,
		Focus:             FocusEthical,
		EnhancedReasoning: true,
	},
	"balanced_expert": {
		Name:              "Balanced Expert",
		Description:       "Well-rounded expert with advanced capabilities",
		SkillModules:      []string{"problem_solving", "communication", "domain_expertise", "ethical_reasoning"},
		Intensity:         IntensityAdvanced,
		Focus:             FocusComprehensive,
		EnhancedReasoning: true,
	},
}

// Lookup returns the canonical profile registered under name. Unknown names
// yield an *UnknownProfileError enumerating every valid name.
func Lookup(name string) (Profile, error) {
	p, ok := profiles[name]
	if !ok {
		return Profile{}, &UnknownProfileError{Name: name, Available: Names()}
	}
	// Copy the slice so callers cannot reach back into the registry.
	mods := make([]string, len(p.SkillModules))
	copy(mods, p.SkillModules)
	p.SkillModules = mods
	return p, nil
}

// Names returns the canonical profile names in sorted order.
func Names() []string {
	names := make([]string, 0, len(profiles))
	for n := range profiles {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
