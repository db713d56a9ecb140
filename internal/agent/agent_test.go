package agent

import "testing"

func TestNew_DefaultModel(t *testing.T) {
	a := New("Helper", "", "be helpful")
	if a.Model != DefaultModel {
		t.Errorf("expected default model %q, got %q", DefaultModel, a.Model)
	}
	if a.Settings != nil {
		t.Error("new agent should carry no settings")
	}
}

func TestNew_ExplicitModel(t *testing.T) {
	a := New("Helper", "custom-model", "be helpful")
	if a.Model != "custom-model" {
		t.Errorf("explicit model lost: %q", a.Model)
	}
}

func TestNewReasoningSettings(t *testing.T) {
	for _, effort := range []string{"low", "medium", "high"} {
		s, err := NewReasoningSettings(effort)
		if err != nil {
			t.Errorf("effort %q rejected: %v", effort, err)
			continue
		}
		if s.ReasoningEffort != effort {
			t.Errorf("effort %q stored as %q", effort, s.ReasoningEffort)
		}
	}
}

func TestNewReasoningSettings_Invalid(t *testing.T) {
	for _, effort := range []string{"", "extreme", "HIGH"} {
		if _, err := NewReasoningSettings(effort); err == nil {
			t.Errorf("effort %q should be rejected", effort)
		}
	}
}
