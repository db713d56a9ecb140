// Package api exposes the training system over HTTP: profile and skill
// catalogs, chat against the response engine, a streaming chat variant, and
// a WebSocket relay.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mentorlabs/mentor/internal/engine"
	"github.com/mentorlabs/mentor/internal/skill"
	"github.com/mentorlabs/mentor/internal/training"
)

const maxRequestBodySize = 1 << 20 // 1MB

// Deps holds the handler's collaborators.
type Deps struct {
	Engine         engine.Engine
	Model          string // model identifier attached to created agents
	DefaultProfile string // profile used when a chat request names none
}

// NewHandler returns the HTTP handler serving the mentor API.
func NewHandler(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Get("/", handleRoot)
	r.Get("/health", handleHealth)
	r.Get("/profiles", handleListProfiles)
	r.Get("/profiles/{name}", handleGetProfile)
	r.Get("/skills", handleListSkills)
	r.Get("/skills/{name}", handleGetSkill)
	r.Post("/chat", handleChat(deps))
	r.Post("/chat/stream", handleChatStream(deps))
	r.Handle("/ws/{session}", relayHandler(deps))

	return r
}

func handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{
		"name":        "mentor",
		"description": "REST API for creating and interacting with legendary trained agents",
		"endpoints": map[string]string{
			"/profiles":        "List all available training profiles",
			"/profiles/{name}": "Get a specific training profile",
			"/skills":          "List all skill modules",
			"/skills/{name}":   "Get a specific skill module",
			"/chat":            "Chat with a trained agent",
			"/chat/stream":     "Stream chat with a trained agent",
			"/ws/{session}":    "WebSocket chat relay",
			"/health":          "Health check",
		},
	})
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

// ProfileInfo is the wire representation of a training profile.
type ProfileInfo struct {
	Key          string   `json:"key"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Intensity    string   `json:"intensity"`
	Focus        string   `json:"focus"`
	SkillModules []string `json:"skill_modules"`
}

func profileInfo(key string, p training.Profile) ProfileInfo {
	mods := p.SkillObjects()
	names := make([]string, 0, len(mods))
	for _, m := range mods {
		names = append(names, m.Name)
	}
	return ProfileInfo{
		Key:          key,
		Name:         p.Name,
		Description:  p.Description,
		Intensity:    string(p.Intensity),
		Focus:        string(p.Focus),
		SkillModules: names,
	}
}

func handleListProfiles(w http.ResponseWriter, r *http.Request) {
	var infos []ProfileInfo
	for _, name := range training.Names() {
		p, err := training.Lookup(name)
		if err != nil {
			continue
		}
		infos = append(infos, profileInfo(name, p))
	}
	writeJSON(w, map[string]any{"profiles": infos})
}

func handleGetProfile(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	p, err := training.Lookup(name)
	if err != nil {
		var unknown *training.UnknownProfileError
		if errors.As(err, &unknown) {
			httpError(w, http.StatusNotFound, "not_found", "%v", unknown)
			return
		}
		httpError(w, http.StatusInternalServerError, "api_error", "looking up profile: %v", err)
		return
	}
	writeJSON(w, profileInfo(name, p))
}

// SkillInfo is the wire representation of a skill module.
type SkillInfo struct {
	Key            string   `json:"key"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	CorePrinciples []string `json:"core_principles,omitempty"`
	Techniques     []string `json:"techniques,omitempty"`
	ExamplePrompts []string `json:"example_prompts,omitempty"`
}

func handleListSkills(w http.ResponseWriter, r *http.Request) {
	var infos []SkillInfo
	for _, key := range skill.Keys() {
		m, _ := skill.Lookup(key)
		infos = append(infos, SkillInfo{Key: key, Name: m.Name, Description: m.Description})
	}
	writeJSON(w, map[string]any{"skills": infos})
}

func handleGetSkill(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "name")
	m, ok := skill.Lookup(key)
	if !ok {
		httpError(w, http.StatusNotFound, "not_found", "unknown skill module %q", key)
		return
	}
	writeJSON(w, SkillInfo{
		Key:            key,
		Name:           m.Name,
		Description:    m.Description,
		CorePrinciples: m.CorePrinciples,
		Techniques:     m.Techniques,
		ExamplePrompts: m.ExamplePrompts(),
	})
}

// ChatRequest is the payload for /chat and /chat/stream.
type ChatRequest struct {
	Message string `json:"message"`
	Profile string `json:"profile"`
}

// ChatResponse is the non-streaming chat reply.
type ChatResponse struct {
	Response   string       `json:"response"`
	ProfileKey string       `json:"profile"`
	AgentName  string       `json:"agent_name"`
	ResponseID string       `json:"response_id"`
	Usage      engine.Usage `json:"usage"`
}

// resolveChat decodes and validates a chat request and resolves the trained
// agent's name and instructions. ok false means the error response has
// already been written.
func resolveChat(deps Deps, w http.ResponseWriter, r *http.Request) (req ChatRequest, agentName, instructions string, ok bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpError(w, http.StatusBadRequest, "invalid_request_error", "invalid request body: %v", err)
		return req, "", "", false
	}
	if req.Message == "" {
		httpError(w, http.StatusBadRequest, "invalid_request_error", "message is required")
		return req, "", "", false
	}
	if req.Profile == "" {
		req.Profile = deps.DefaultProfile
	}

	p, err := training.Lookup(req.Profile)
	if err != nil {
		var unknown *training.UnknownProfileError
		if errors.As(err, &unknown) {
			httpError(w, http.StatusBadRequest, "invalid_request_error", "invalid training profile: %v", unknown)
			return req, "", "", false
		}
		httpError(w, http.StatusInternalServerError, "api_error", "looking up profile: %v", err)
		return req, "", "", false
	}

	a := training.NewAgent("Legendary "+p.Name, p, "", deps.Model)
	return req, a.Name, a.Instructions, true
}

func handleChat(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, agentName, instructions, ok := resolveChat(deps, w, r)
		if !ok {
			return
		}

		resp, err := deps.Engine.Respond(r.Context(), instructions, req.Message)
		if err != nil {
			httpError(w, http.StatusBadGateway, "api_error", "engine error: %v", err)
			return
		}

		writeJSON(w, ChatResponse{
			Response:   resp.Text,
			ProfileKey: req.Profile,
			AgentName:  agentName,
			ResponseID: resp.ID,
			Usage:      resp.Usage,
		})
	}
}

func handleChatStream(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, _, instructions, ok := resolveChat(deps, w, r)
		if !ok {
			return
		}

		flusher, flushOK := w.(http.Flusher)
		if !flushOK {
			httpError(w, http.StatusInternalServerError, "api_error", "streaming not supported")
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")

		for ev := range deps.Engine.Stream(r.Context(), instructions, req.Message) {
			payload, err := json.Marshal(ev)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "data: %s\n\n", payload)
			flusher.Flush()
		}

		fmt.Fprint(w, "data: [DONE]\n\n")
		flusher.Flush()
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func httpError(w http.ResponseWriter, code int, errType string, format string, args ...any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	msg := fmt.Sprintf(format, args...)
	json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]any{
			"message": msg,
			"type":    errType,
		},
	})
}
