package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/yourusername/ringarena/pkg/arena"
)

// SSEEvent represents one Server-Sent Event.
type SSEEvent struct {
	Event string      `json:"event"` // "attempt", "result" or "error"
	Data  interface{} `json:"data"`
}

// SSEAttempt reports one iterative-deepening budget being explored.
type SSEAttempt struct {
	Turns       int  `json:"turns"`
	Solved      bool `json:"solved"`
	CacheStates int  `json:"cache_states"`
}

// SolveSSE handles GET /api/solve/stream?arena=<json>&fast=1&max=3,
// streaming one event per deepening budget so slow searches show
// progress. The arena query parameter is the JSON ArenaSpec.
func (h *Handlers) SolveSSE(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	query := r.URL.Query()
	specJSON := query.Get("arena")
	if specJSON == "" {
		writeSSEError(w, "arena is required")
		return
	}
	var spec ArenaSpec
	if err := json.Unmarshal([]byte(specJSON), &spec); err != nil {
		writeSSEError(w, "invalid arena: "+err.Error())
		return
	}
	a, err := buildArena(spec)
	if err != nil {
		writeSSEError(w, err.Error())
		return
	}

	fast := query.Get("fast") == "1" || query.Get("fast") == "true"
	maxTurns := parseIntParam(query.Get("max"), MaxSolveTurns)
	if maxTurns <= 0 || maxTurns > MaxSolveTurns {
		maxTurns = MaxSolveTurns
	}

	flusher, canFlush := w.(http.Flusher)
	cache := arena.NewSolveCache()
	for turns := 1; turns <= maxTurns; turns++ {
		moves, ok := arena.Solve(a, turns, fast, cache)
		writeSSEEvent(w, SSEEvent{Event: "attempt", Data: SSEAttempt{
			Turns:       turns,
			Solved:      ok,
			CacheStates: cache.Len(),
		}})
		if canFlush {
			flusher.Flush()
		}
		if !ok {
			continue
		}

		resp := SolveResponse{Solved: true, Turns: turns, Key: a.KeyID()}
		resp.Moves = make([]string, len(moves))
		for i, m := range moves {
			resp.Moves[i] = m.String()
		}
		writeSSEEvent(w, SSEEvent{Event: "result", Data: resp})
		if canFlush {
			flusher.Flush()
		}
		return
	}

	writeSSEEvent(w, SSEEvent{Event: "result", Data: SolveResponse{
		Solved: false,
		Key:    a.KeyID(),
	}})
	if canFlush {
		flusher.Flush()
	}
}

func writeSSEEvent(w http.ResponseWriter, event SSEEvent) {
	data, _ := json.Marshal(event.Data)
	fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Event, data)
}

func writeSSEError(w http.ResponseWriter, msg string) {
	writeSSEEvent(w, SSEEvent{Event: "error", Data: ErrorResponse{Error: msg}})
}

func parseIntParam(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
