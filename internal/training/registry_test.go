package training

import (
	"errors"
	"strings"
	"testing"
)

func TestNames_CanonicalSet(t *testing.T) {
	want := []string{
		"analytical_master",
		"balanced_expert",
		"communication_expert",
		"ethical_leader",
		"innovation_genius",
		"legendary_sage",
	}
	got := Names()
	if len(got) != len(want) {
		t.Fatalf("expected %d profiles, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestLookup_Unknown(t *testing.T) {
	_, err := Lookup("galactic_overlord")
	if err == nil {
		t.Fatal("expected an error")
	}

	var unknown *UnknownProfileError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected *UnknownProfileError, got %T", err)
	}
	if unknown.Name != "galactic_overlord" {
		t.Errorf("error carries wrong name: %q", unknown.Name)
	}
	if len(unknown.Available) != 6 {
		t.Errorf("expected 6 available names, got %d", len(unknown.Available))
	}
	msg := err.Error()
	for _, name := range Names() {
		if !strings.Contains(msg, name) {
			t.Errorf("error message missing %q: %s", name, msg)
		}
	}
}

func TestLookup_CopyIsolated(t *testing.T) {
	p, err := Lookup("balanced_expert")
	if err != nil {
		t.Fatal(err)
	}
	p.SkillModules[0] = "mutated"

	again, err := Lookup("balanced_expert")
	if err != nil {
		t.Fatal(err)
	}
	if again.SkillModules[0] == "mutated" {
		t.Error("Lookup leaked the registry's module slice")
	}
}

func TestRegistry_SageCoversAllModules(t *testing.T) {
	p, err := Lookup("legendary_sage")
	if err != nil {
		t.Fatal(err)
	}
	if len(p.SkillObjects()) != 7 {
		t.Errorf("legendary_sage should resolve all 7 modules, got %d", len(p.SkillObjects()))
	}
	if p.Intensity != IntensityLegendary {
		t.Errorf("unexpected intensity %q", p.Intensity)
	}
}

func TestRegistry_IntensityAndFocus(t *testing.T) {
	cases := map[string]struct {
		intensity Intensity
		focus     Focus
	}{
		"analytical_master":    {IntensityLegendary, FocusAnalytical},
		"communication_expert": {IntensityLegendary, FocusInterpersonal},
		"innovation_genius":    {IntensityLegendary, FocusCreative},
		"ethical_leader":       {IntensityLegendary, FocusEthical},
		"balanced_expert":      {IntensityAdvanced, FocusComprehensive},
	}
	for name, want := range cases {
		p, err := Lookup(name)
		if err != nil {
			t.Fatalf("lookup %q: %v", name, err)
		}
		if p.Intensity != want.intensity {
			t.Errorf("%s intensity = %q, want %q", name, p.Intensity, want.intensity)
		}
		if p.Focus != want.focus {
			t.Errorf("%s focus = %q, want %q", name, p.Focus, want.focus)
		}
	}
}

func TestParseIntensity(t *testing.T) {
	if _, err := ParseIntensity("legendary"); err != nil {
		t.Errorf("legendary rejected: %v", err)
	}
	if _, err := ParseIntensity("heroic"); err == nil {
		t.Error("heroic should be rejected")
	}
}

func TestParseFocus(t *testing.T) {
	if _, err := ParseFocus("interpersonal"); err != nil {
		t.Errorf("interpersonal rejected: %v", err)
	}
	if _, err := ParseFocus("athletic"); err == nil {
		t.Error("athletic should be rejected")
	}
}
