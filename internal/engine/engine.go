// Package engine abstracts the inference backend behind the chat surfaces
// and provides the deterministic stub backend used when no real provider is
// wired in.
package engine

import "context"

// Response is the result of a single inference call.
type Response struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Usage Usage  `json:"usage"`
}

// Usage carries whitespace-token accounting for one call.
type Usage struct {
	Requests     int `json:"requests"`
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
	TotalTokens  int `json:"total_tokens"`
}

// Event is one element of a streamed response. Partial events carry the
// cumulative text prefix; the single terminal final event embeds the full
// response.
type Event struct {
	Type     string    `json:"type"` // "partial" or "final"
	Text     string    `json:"text,omitempty"`
	Response *Response `json:"response,omitempty"`
}

const (
	EventPartial = "partial"
	EventFinal   = "final"
)

// Engine is an inference backend. Implementations must be safe for
// concurrent use.
type Engine interface {
	// Respond generates a complete response for the given system
	// instructions and user input.
	Respond(ctx context.Context, systemInstructions, input string) (Response, error)

	// Stream generates the same response as Respond and replays it as a
	// finite event sequence: one partial event per word, then exactly one
	// final event, after which the channel is closed. Cancelling ctx stops
	// the producer; an abandoned stream holds no resources.
	Stream(ctx context.Context, systemInstructions, input string) <-chan Event
}
