package engine

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultStreamDelay is the artificial pause between streamed words,
// simulating incremental generation.
const DefaultStreamDelay = 20 * time.Millisecond

// Stub is a deterministic Engine that selects a canned response by matching
// profile signatures in the system instructions. It performs no I/O and
// never fails: unrecognized instructions degrade to the default response.
type Stub struct {
	ModelName   string
	StreamDelay time.Duration
}

// NewStub creates a stub engine. Empty modelName gets a descriptive default;
// a zero delay is replaced by DefaultStreamDelay (pass a negative delay to
// stream without pausing, as tests do).
func NewStub(modelName string) *Stub {
	if modelName == "" {
		modelName = "stub-legendary-model"
	}
	return &Stub{ModelName: modelName, StreamDelay: DefaultStreamDelay}
}

// Respond implements Engine. The classification never errors; the error
// return exists to satisfy the interface for real backends.
func (s *Stub) Respond(_ context.Context, systemInstructions, input string) (Response, error) {
	inputLower := strings.ToLower(input)
	text := classify(systemInstructions)

	inTokens := len(strings.Fields(inputLower))
	outTokens := len(strings.Fields(text))

	return Response{
		ID:   uuid.New().String(),
		Text: text,
		Usage: Usage{
			Requests:     1,
			InputTokens:  inTokens,
			OutputTokens: outTokens,
			TotalTokens:  inTokens + outTokens,
		},
	}, nil
}

// Stream implements Engine. The full response is computed up front and
// replayed word by word as cumulative prefixes.
func (s *Stub) Stream(ctx context.Context, systemInstructions, input string) <-chan Event {
	ch := make(chan Event)

	go func() {
		defer close(ch)

		resp, _ := s.Respond(ctx, systemInstructions, input)
		words := strings.Fields(resp.Text)

		delay := s.StreamDelay
		if delay == 0 {
			delay = DefaultStreamDelay
		}

		var prefix strings.Builder
		for i, word := range words {
			if i > 0 {
				prefix.WriteByte(' ')
			}
			prefix.WriteString(word)

			if delay > 0 {
				select {
				case <-time.After(delay):
				case <-ctx.Done():
					return
				}
			}

			select {
			case ch <- Event{Type: EventPartial, Text: prefix.String()}:
			case <-ctx.Done():
				return
			}
		}

		select {
		case ch <- Event{Type: EventFinal, Response: &resp}:
		case <-ctx.Done():
		}
	}()

	return ch
}

// classify maps system instructions to a canned response. Rules are tested
// in priority order and the first match wins; both sides of the comparison
// are lower-cased. Order matters: an instruction text matching several rules
// resolves to the earliest one.
func classify(systemInstructions string) string {
	if systemInstructions == "" {
		return cannedResponses[responseDefault]
	}

	lower := strings.ToLower(systemInstructions)

	switch {
	case strings.Contains(lower, "legendary sage") ||
		strings.Contains(lower, "master-level capabilities across all domains"):
		return cannedResponses[responseLegendarySage]

	case strings.Contains(lower, "analytical master") ||
		strings.Contains(lower, "exceptional analytical"):
		return cannedResponses[responseAnalyticalMaster]

	case strings.Contains(lower, "communication expert") ||
		strings.Contains(lower, "master communicator"):
		return cannedResponses[responseCommunicationExpert]

	case strings.Contains(lower, "innovation genius") ||
		strings.Contains(lower, "creative problem-solver"):
		return cannedResponses[responseInnovationGenius]

	case strings.Contains(lower, "legendary") && strings.Contains(lower, "training"):
		return cannedResponses[responseGenericLegendary]

	default:
		return cannedResponses[responseDefault]
	}
}
