// Package training turns a named training profile into the instruction text
// and model settings that make an agent behave like a domain master.
package training

import (
	"fmt"
	"sort"

	"github.com/mentorlabs/mentor/internal/skill"
)

// Intensity is a training intensity level.
type Intensity string

const (
	IntensityBasic        Intensity = "basic"
	IntensityIntermediate Intensity = "intermediate"
	IntensityAdvanced     Intensity = "advanced"
	IntensityLegendary    Intensity = "legendary"
)

// Focus is a primary training focus area.
type Focus string

const (
	FocusAnalytical    Focus = "analytical"    // problem-solving, reasoning, analysis
	FocusInterpersonal Focus = "interpersonal" // communication, leadership, collaboration
	FocusCreative      Focus = "creative"      // innovation, creative thinking, design
	FocusEthical       Focus = "ethical"       // moral reasoning, ethics, values
	FocusComprehensive Focus = "comprehensive" // all domains balanced
)

// ParseIntensity validates and returns an intensity value.
func ParseIntensity(s string) (Intensity, error) {
	switch Intensity(s) {
	case IntensityBasic, IntensityIntermediate, IntensityAdvanced, IntensityLegendary:
		return Intensity(s), nil
	}
	return "", fmt.Errorf("unknown intensity %q (valid: basic, intermediate, advanced, legendary)", s)
}

// ParseFocus validates and returns a focus value.
func ParseFocus(s string) (Focus, error) {
	switch Focus(s) {
	case FocusAnalytical, FocusInterpersonal, FocusCreative, FocusEthical, FocusComprehensive:
		return Focus(s), nil
	}
	return "", fmt.Errorf("unknown focus %q (valid: analytical, interpersonal, creative, ethical, comprehensive)", s)
}

// Profile is a training configuration: which skill modules to include and at
// what intensity and focus. Treat values as immutable once built.
type Profile struct {
	Name               string
	Description        string
	SkillModules       []string // registry keys; unknown keys are dropped at resolution
	Intensity          Intensity
	Focus              Focus
	CustomInstructions string
	EnhancedReasoning  bool
}

// NewProfile builds an ad-hoc profile with the standard defaults: advanced
// intensity, comprehensive focus, enhanced reasoning on.
func NewProfile(name, description string, skillModules []string) Profile {
	return Profile{
		Name:              name,
		Description:       description,
		SkillModules:      skillModules,
		Intensity:         IntensityAdvanced,
		Focus:             FocusComprehensive,
		EnhancedReasoning: true,
	}
}

// SkillObjects resolves the profile's skill module keys against the registry.
// Unknown keys are silently dropped. Results are deduplicated and returned in
// sorted key order, the canonical module order used by instruction assembly.
func (p Profile) SkillObjects() []skill.Module {
	seen := make(map[string]bool, len(p.SkillModules))
	keys := make([]string, 0, len(p.SkillModules))
	for _, k := range p.SkillModules {
		if seen[k] {
			continue
		}
		seen[k] = true
		if _, ok := skill.Lookup(k); ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	out := make([]skill.Module, 0, len(keys))
	for _, k := range keys {
		m, _ := skill.Lookup(k)
		out = append(out, m)
	}
	return out
}
