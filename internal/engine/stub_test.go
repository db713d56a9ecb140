package engine

import (
	"context"
	"strings"
	"testing"

	"github.com/mentorlabs/mentor/internal/training"
)

func respond(t *testing.T, instructions, input string) Response {
	t.Helper()
	s := NewStub("test-model")
	resp, err := s.Respond(context.Background(), instructions, input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return resp
}

func TestRespond_Deterministic(t *testing.T) {
	first := respond(t, "You are a legendary sage mentor.", "hello")
	second := respond(t, "You are a legendary sage mentor.", "hello")

	if first.Text != second.Text {
		t.Error("same inputs produced different response text")
	}
	if first.ID == second.ID {
		t.Error("response IDs should be unique per call")
	}
}

func TestRespond_SignatureSelection(t *testing.T) {
	cases := []struct {
		name         string
		instructions string
		marker       string
	}{
		{"sage by name", "you are a legendary sage", "Multi-Domain Analysis"},
		{"sage by description", "an agent with master-level capabilities across all domains", "Multi-Domain Analysis"},
		{"analytical by name", "act as an analytical master", "Comprehensive Analysis Framework"},
		{"analytical by signature", "your strength is exceptional analytical excellence", "Comprehensive Analysis Framework"},
		{"communication by name", "you are a communication expert", "Audience-Adapted Explanations"},
		{"communication by signature", "you are a master communicator", "Audience-Adapted Explanations"},
		{"creative by name", "you are an innovation genius", "Reimagining the Problem"},
		{"creative by signature", "a creative problem-solver at heart", "Reimagining the Problem"},
		{"generic legendary", "shaped by legendary training", "legendary training capabilities"},
		{"unrecognized", "you are a helpful assistant", "systematic thinking"},
		{"empty instructions", "", "systematic thinking"},
		{"case insensitive", "YOU ARE A LEGENDARY SAGE", "Multi-Domain Analysis"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := respond(t, tc.instructions, "question")
			if !strings.Contains(resp.Text, tc.marker) {
				t.Errorf("instructions %q: expected marker %q in response", tc.instructions, tc.marker)
			}
		})
	}
}

func TestRespond_PriorityOrder(t *testing.T) {
	// Earlier rules win when several signatures are present.
	resp := respond(t, "a legendary sage who is also an analytical master and master communicator", "q")
	if !strings.Contains(resp.Text, "Multi-Domain Analysis") {
		t.Error("sage signature should outrank all later rules")
	}

	resp = respond(t, "an analytical master and master communicator", "q")
	if !strings.Contains(resp.Text, "Comprehensive Analysis Framework") {
		t.Error("analytical signature should outrank communication")
	}
}

func TestRespond_TokenAccounting(t *testing.T) {
	resp := respond(t, "", "one two three")

	if resp.Usage.Requests != 1 {
		t.Errorf("requests = %d, want 1", resp.Usage.Requests)
	}
	if resp.Usage.InputTokens != 3 {
		t.Errorf("input tokens = %d, want 3", resp.Usage.InputTokens)
	}
	wantOut := len(strings.Fields(cannedResponses[responseDefault]))
	if resp.Usage.OutputTokens != wantOut {
		t.Errorf("output tokens = %d, want %d", resp.Usage.OutputTokens, wantOut)
	}
	if resp.Usage.TotalTokens != resp.Usage.InputTokens+resp.Usage.OutputTokens {
		t.Errorf("total tokens = %d, want input+output", resp.Usage.TotalTokens)
	}
}

func TestStream_CumulativeEvents(t *testing.T) {
	s := NewStub("test-model")
	s.StreamDelay = -1 // no artificial pauses

	var events []Event
	for ev := range s.Stream(context.Background(), "", "hello there") {
		events = append(events, ev)
	}
	if len(events) < 2 {
		t.Fatalf("expected partial events plus a final one, got %d", len(events))
	}

	final := events[len(events)-1]
	if final.Type != EventFinal {
		t.Fatalf("last event type = %q, want %q", final.Type, EventFinal)
	}
	if final.Response == nil {
		t.Fatal("final event carries no response")
	}

	partials := events[:len(events)-1]
	wantPartials := len(strings.Fields(final.Response.Text))
	if len(partials) != wantPartials {
		t.Errorf("got %d partials, want one per word (%d)", len(partials), wantPartials)
	}

	prev := ""
	for i, ev := range partials {
		if ev.Type != EventPartial {
			t.Fatalf("event %d type = %q, want %q", i, ev.Type, EventPartial)
		}
		if !strings.HasPrefix(ev.Text, prev) || len(ev.Text) <= len(prev) {
			t.Fatalf("event %d text %q does not extend %q", i, ev.Text, prev)
		}
		prev = ev.Text
	}
	// Partials join words with single spaces, so compare word sequences.
	if prev != strings.Join(strings.Fields(final.Response.Text), " ") {
		t.Error("last partial should cover the complete response text")
	}

	// The embedded response matches what Respond would produce.
	direct := respond(t, "", "hello there")
	if final.Response.Text != direct.Text {
		t.Error("streamed response text diverges from Respond")
	}
	if final.Response.Usage != direct.Usage {
		t.Errorf("streamed usage %+v diverges from Respond %+v", final.Response.Usage, direct.Usage)
	}
}

func TestStream_Cancel(t *testing.T) {
	s := NewStub("test-model")
	s.StreamDelay = DefaultStreamDelay

	ctx, cancel := context.WithCancel(context.Background())
	ch := s.Stream(ctx, "", "a long enough message to stream")

	<-ch // at least one event arrives
	cancel()

	// The channel must close shortly after cancellation.
	for range ch {
	}
}

func TestRespond_AssembledProfiles(t *testing.T) {
	cases := map[string]string{
		"analytical_master":    "Comprehensive Analysis Framework",
		"communication_expert": "Audience-Adapted Explanations",
		"innovation_genius":    "Reimagining the Problem",
		"ethical_leader":       "legendary training capabilities",
		"balanced_expert":      "legendary training capabilities",
		"legendary_sage":       "legendary training capabilities",
	}

	for name, marker := range cases {
		p, err := training.Lookup(name)
		if err != nil {
			t.Fatalf("lookup %q: %v", name, err)
		}
		resp := respond(t, training.Assemble(p), "question")
		if !strings.Contains(resp.Text, marker) {
			t.Errorf("profile %q: expected marker %q in response", name, marker)
		}
	}
}
