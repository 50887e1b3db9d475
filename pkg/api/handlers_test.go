package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// scenarioA is a board solvable by rotating the third ring back one slot.
func scenarioA() ArenaSpec {
	return ArenaSpec{Enemies: []OccupantSpec{
		{Ring: 0, Slot: 1}, {Ring: 1, Slot: 1}, {Ring: 3, Slot: 1},
		{Ring: 2, Slot: 2},
	}}
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf []byte
	if s, ok := body.(string); ok {
		buf = []byte(s)
	} else {
		var err error
		buf, err = json.Marshal(body)
		if err != nil {
			t.Fatalf("Marshal error: %v", err)
		}
	}
	req := httptest.NewRequest("POST", path, bytes.NewReader(buf))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler(w, req)
	return w
}

// TestHealthHandler tests the health endpoint.
func TestHealthHandler(t *testing.T) {
	h := NewHandlers("test-version")

	req := httptest.NewRequest("GET", "/api/health", nil)
	w := httptest.NewRecorder()

	h.Health(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("Health status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	var health HealthResponse
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		t.Fatalf("Decode error: %v", err)
	}

	if health.Status != "ok" {
		t.Errorf("Status = %q, want %q", health.Status, "ok")
	}
	if health.Version != "test-version" {
		t.Errorf("Version = %q, want %q", health.Version, "test-version")
	}
	if health.Pool != nil {
		t.Error("Pool should be absent without a worker pool")
	}
}

func TestHealthHandlerPoolStats(t *testing.T) {
	h := NewHandlersWithPool("1.0.0", NewWorkerPool(DefaultPoolConfig()))

	w := httptest.NewRecorder()
	h.Health(w, httptest.NewRequest("GET", "/api/health", nil))

	var health HealthResponse
	json.NewDecoder(w.Result().Body).Decode(&health)

	if health.Pool == nil {
		t.Fatal("Expected pool stats when a worker pool is set")
	}
	if health.Pool.ActiveQueries != 0 || health.Pool.ActiveSearches != 0 {
		t.Errorf("idle pool reports activity: %+v", *health.Pool)
	}
}

func TestCoverageHandler(t *testing.T) {
	h := NewHandlers("1.0.0")

	tests := []struct {
		name         string
		body         interface{}
		wantStatus   int
		wantSolvable bool
	}{
		{
			name: "solvable board",
			body: CoverageRequest{Arena: ArenaSpec{Enemies: []OccupantSpec{
				{Ring: 0, Slot: 1}, {Ring: 1, Slot: 1}, {Ring: 2, Slot: 1}, {Ring: 3, Slot: 1},
			}}},
			wantStatus:   http.StatusOK,
			wantSolvable: true,
		},
		{
			name:       "unsolvable board",
			body:       CoverageRequest{Arena: scenarioA()},
			wantStatus: http.StatusOK,
		},
		{
			name: "enemy out of bounds",
			body: CoverageRequest{Arena: ArenaSpec{Enemies: []OccupantSpec{
				{Ring: 4, Slot: 0},
			}}},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "unknown attack code",
			body: CoverageRequest{Arena: ArenaSpec{Enemies: []OccupantSpec{
				{Ring: 0, Slot: 0, Attack: "X"},
			}}},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid json",
			body:       "not json",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := postJSON(t, h.Coverage, "/api/coverage", tc.body)
			resp := w.Result()
			if resp.StatusCode != tc.wantStatus {
				t.Fatalf("Status = %d, want %d", resp.StatusCode, tc.wantStatus)
			}
			if tc.wantStatus != http.StatusOK {
				return
			}

			var cov CoverageResponse
			if err := json.NewDecoder(resp.Body).Decode(&cov); err != nil {
				t.Fatalf("Decode error: %v", err)
			}
			if cov.Solvable != tc.wantSolvable {
				t.Errorf("Solvable = %v, want %v", cov.Solvable, tc.wantSolvable)
			}
			if cov.Key == "" {
				t.Error("Key should always be set")
			}
			if tc.wantSolvable && len(cov.Areas) == 0 {
				t.Error("solvable response should list the placed areas")
			}
		})
	}
}

func TestSolveHandler(t *testing.T) {
	h := NewHandlers("1.0.0")

	w := postJSON(t, h.Solve, "/api/solve", SolveRequest{Arena: scenarioA(), Turns: 1})
	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	var sol SolveResponse
	if err := json.NewDecoder(resp.Body).Decode(&sol); err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if !sol.Solved {
		t.Fatal("board should be solvable in one turn")
	}
	if len(sol.Moves) != 1 || sol.Moves[0] != "r3 -1" {
		t.Errorf("Moves = %v, want [r3 -1]", sol.Moves)
	}
	if sol.Turns != 1 {
		t.Errorf("Turns = %d, want 1", sol.Turns)
	}
}

func TestSolveHandlerAuto(t *testing.T) {
	h := NewHandlers("1.0.0")

	// Turns omitted: iterative deepening within the surface cap
	w := postJSON(t, h.Solve, "/api/solve", SolveRequest{Arena: scenarioA(), Fast: true})
	var sol SolveResponse
	if err := json.NewDecoder(w.Result().Body).Decode(&sol); err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if !sol.Solved || sol.Turns != 1 {
		t.Errorf("Solved = %v, Turns = %d, want solved in 1", sol.Solved, sol.Turns)
	}
}

func TestSolveHandlerTurnsCap(t *testing.T) {
	h := NewHandlers("1.0.0")

	w := postJSON(t, h.Solve, "/api/solve", SolveRequest{Arena: scenarioA(), Turns: MaxSolveTurns + 1})
	resp := w.Result()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("Status = %d, want %d", resp.StatusCode, http.StatusBadRequest)
	}
	var errResp ErrorResponse
	json.NewDecoder(resp.Body).Decode(&errResp)
	if errResp.Code != "bad_turns" {
		t.Errorf("Code = %q, want %q", errResp.Code, "bad_turns")
	}
}

func TestRenderHandler(t *testing.T) {
	h := NewHandlers("1.0.0")

	hammer := false
	w := postJSON(t, h.Render, "/api/render", RenderRequest{Arena: ArenaSpec{
		Enemies: []OccupantSpec{{Ring: 0, Slot: 1, Attack: "H"}},
		Hammer:  &hammer,
	}})
	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	var render RenderResponse
	if err := json.NewDecoder(resp.Body).Decode(&render); err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if render.Enemies != 1 {
		t.Errorf("Enemies = %d, want 1", render.Enemies)
	}
	if !strings.Contains(render.Board, "(1 enemies)") || !strings.Contains(render.Board, "H") {
		t.Errorf("Board rendering missing expected cells:\n%s", render.Board)
	}
}

func TestAnalyzeHandler(t *testing.T) {
	h := NewHandlers("1.0.0")

	w := postJSON(t, h.Analyze, "/api/analyze", AnalyzeRequest{
		Arena:  scenarioA(),
		Trials: 5,
		Depth:  1,
		Seed:   42,
		Fast:   true,
	})
	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	var an AnalyzeResponse
	if err := json.NewDecoder(resp.Body).Decode(&an); err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if an.Trials != 5 {
		t.Errorf("Trials = %d, want 5", an.Trials)
	}
	if an.Solved < 0 || an.Solved > an.Trials {
		t.Errorf("Solved = %d outside 0..%d", an.Solved, an.Trials)
	}
	if an.SolvedFraction < 0 || an.SolvedFraction > 1 {
		t.Errorf("SolvedFraction = %f outside [0, 1]", an.SolvedFraction)
	}
}

func TestAnalyzeHandlerTrialsCap(t *testing.T) {
	h := NewHandlers("1.0.0")

	w := postJSON(t, h.Analyze, "/api/analyze", AnalyzeRequest{
		Arena:  scenarioA(),
		Trials: MaxAnalyzeTrials + 1,
	})
	if w.Result().StatusCode != http.StatusBadRequest {
		t.Errorf("Status = %d, want %d", w.Result().StatusCode, http.StatusBadRequest)
	}
}
