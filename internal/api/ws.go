package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"golang.org/x/net/websocket"
	"golang.org/x/sync/errgroup"

	"github.com/mentorlabs/mentor/internal/engine"
	"github.com/mentorlabs/mentor/internal/training"
)

// relayInbound is a client→server WebSocket frame.
type relayInbound struct {
	Type    string `json:"type"` // "message"
	Text    string `json:"text,omitempty"`
	Profile string `json:"profile,omitempty"`
}

// relayEvent is a server→client WebSocket frame. Engine events pass through
// with their type; the relay adds session_started, agent_start, done, and
// error frames around them.
type relayEvent struct {
	Type     string           `json:"type"`
	Session  string           `json:"session,omitempty"`
	Agent    string           `json:"agent,omitempty"`
	Text     string           `json:"text,omitempty"`
	Response *engine.Response `json:"response,omitempty"`
	Error    string           `json:"error,omitempty"`
}

// relayHandler upgrades to a WebSocket and relays chat messages through the
// engine, streaming each response as JSON event frames. One goroutine reads
// inbound frames, another runs the engine and writes; either failing tears
// down the session.
func relayHandler(deps Deps) http.Handler {
	return websocket.Handler(func(conn *websocket.Conn) {
		defer conn.Close()

		r := conn.Request()
		session := chi.URLParam(r, "session")
		if session == "" {
			session = uuid.New().String()
		}

		g, ctx := errgroup.WithContext(r.Context())
		inbound := make(chan relayInbound)

		g.Go(func() error {
			defer close(inbound)
			for {
				var msg relayInbound
				if err := websocket.JSON.Receive(conn, &msg); err != nil {
					if errors.Is(err, io.EOF) {
						return nil
					}
					return fmt.Errorf("receiving frame: %w", err)
				}
				select {
				case inbound <- msg:
				case <-ctx.Done():
					return ctx.Err()
				}
			}
		})

		g.Go(func() error {
			if err := websocket.JSON.Send(conn, relayEvent{Type: "session_started", Session: session}); err != nil {
				return fmt.Errorf("sending session event: %w", err)
			}
			for msg := range inbound {
				if err := relayMessage(ctx, conn, deps, msg); err != nil {
					return err
				}
			}
			return nil
		})

		if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
			slog.Debug("relay session ended", "session", session, "error", err)
		}
	})
}

func relayMessage(ctx context.Context, conn *websocket.Conn, deps Deps, msg relayInbound) error {
	if msg.Type != "message" || msg.Text == "" {
		return websocket.JSON.Send(conn, relayEvent{
			Type:  "error",
			Error: fmt.Sprintf("expected frame {type: message, text: ...}, got type %q", msg.Type),
		})
	}

	profileKey := msg.Profile
	if profileKey == "" {
		profileKey = deps.DefaultProfile
	}
	p, err := training.Lookup(profileKey)
	if err != nil {
		return websocket.JSON.Send(conn, relayEvent{Type: "error", Error: err.Error()})
	}

	a := training.NewAgent("Legendary "+p.Name, p, "", deps.Model)
	if err := websocket.JSON.Send(conn, relayEvent{Type: "agent_start", Agent: a.Name}); err != nil {
		return fmt.Errorf("sending agent event: %w", err)
	}

	for ev := range deps.Engine.Stream(ctx, a.Instructions, msg.Text) {
		if err := websocket.JSON.Send(conn, relayEvent{Type: ev.Type, Text: ev.Text, Response: ev.Response}); err != nil {
			return fmt.Errorf("sending engine event: %w", err)
		}
	}

	return websocket.JSON.Send(conn, relayEvent{Type: "done", Agent: a.Name})
}
