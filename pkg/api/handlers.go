package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/yourusername/ringarena/pkg/analysis"
	"github.com/yourusername/ringarena/pkg/arena"
)

// MaxSolveTurns caps the budget HTTP callers may request: the search is
// exponential in the budget and the reference planner has no internal
// timeout, so the surface bounds latency instead.
const MaxSolveTurns = 5

// MaxAnalyzeTrials caps scramble sampling per request.
const MaxAnalyzeTrials = 1000

// Handlers holds the HTTP handlers.
type Handlers struct {
	version string
	pool    *WorkerPool
}

// NewHandlers creates a Handlers instance without a worker pool.
func NewHandlers(version string) *Handlers {
	return &Handlers{version: version}
}

// NewHandlersWithPool creates a Handlers instance with a worker pool.
func NewHandlersWithPool(version string, pool *WorkerPool) *Handlers {
	return &Handlers{version: version, pool: pool}
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, msg string, code string) {
	writeJSON(w, status, ErrorResponse{Error: msg, Code: code})
}

// parseAttack maps the request attack code to the core requirement.
func parseAttack(code string) (arena.RequiredAttack, error) {
	switch code {
	case "":
		return arena.AnyAttack, nil
	case "H":
		return arena.NeedsHammer, nil
	case "J":
		return arena.NeedsJump, nil
	case "P":
		return arena.BootsOrHammer, nil
	default:
		return 0, fmt.Errorf("unknown attack code %q (want H, J or P)", code)
	}
}

// buildArena validates an ArenaSpec and constructs the board.
func buildArena(spec ArenaSpec) (*arena.SolvableArena, error) {
	a := arena.NewSolvableArena()
	if spec.Groups < 0 || spec.Groups > 255 {
		return nil, fmt.Errorf("invalid group override %d", spec.Groups)
	}
	a.GroupOverride = arena.Num(spec.Groups)
	if spec.Hammer != nil {
		a.Equipment.Hammer = *spec.Hammer
	}
	if spec.Boots != nil {
		a.Equipment.IronBoots = *spec.Boots
	}
	for i, occ := range spec.Enemies {
		required, err := parseAttack(occ.Attack)
		if err != nil {
			return nil, fmt.Errorf("enemy %d: %w", i, err)
		}
		if err := a.AddEnemy(occ.Ring, occ.Slot, required); err != nil {
			return nil, fmt.Errorf("enemy %d: %w", i, err)
		}
	}
	return a, nil
}

// attackNames expands a whitelist bitmask for the response.
func attackNames(s arena.AttackSet) []string {
	var names []string
	if s.Contains(arena.Jump) {
		names = append(names, "jump")
	}
	if s.Contains(arena.Hammer) {
		names = append(names, "hammer")
	}
	if s.Contains(arena.IronBoots) {
		names = append(names, "iron_boots")
	}
	return names
}

// coverageToResponse converts a found coverage.
func coverageToResponse(a *arena.SolvableArena, c arena.Coverage) CoverageResponse {
	resp := CoverageResponse{
		Solvable: true,
		Groups:   int(a.NumGroups()),
		Key:      a.KeyID(),
	}
	for _, area := range c.Areas {
		ar := AreaResponse{Attacks: attackNames(area.Whitelist)}
		if area.Kind == arena.LongArea {
			ar.Kind = "long"
			ar.Slots = []int{int(area.Slot)}
		} else {
			ar.Kind = "wide"
			ar.Slots = []int{int(area.Slot), int(area.RightSlot())}
		}
		resp.Areas = append(resp.Areas, ar)
	}
	return resp
}

// Health handles GET /api/health.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{Status: "ok", Version: h.version}
	if h.pool != nil {
		stats := h.pool.Stats()
		resp.Pool = &stats
	}
	writeJSON(w, http.StatusOK, resp)
}

// Coverage handles POST /api/coverage: run the coverage solver once.
func (h *Handlers) Coverage(w http.ResponseWriter, r *http.Request) {
	var req CoverageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error(), "bad_request")
		return
	}
	a, err := buildArena(req.Arena)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "bad_arena")
		return
	}

	if h.pool != nil {
		if err := h.pool.AcquireQuery(r.Context()); err != nil {
			writeError(w, http.StatusServiceUnavailable, "server busy", "busy")
			return
		}
		defer h.pool.ReleaseQuery()
	}

	c, ok := arena.FindCoverage(a)
	if !ok {
		writeJSON(w, http.StatusOK, CoverageResponse{
			Solvable: false,
			Groups:   int(a.NumGroups()),
			Key:      a.KeyID(),
		})
		return
	}
	writeJSON(w, http.StatusOK, coverageToResponse(a, c))
}

// Solve handles POST /api/solve: run the move planner.
func (h *Handlers) Solve(w http.ResponseWriter, r *http.Request) {
	var req SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error(), "bad_request")
		return
	}
	a, err := buildArena(req.Arena)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "bad_arena")
		return
	}
	if req.Turns < 0 || req.Turns > MaxSolveTurns {
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("turns must be 0..%d", MaxSolveTurns), "bad_turns")
		return
	}
	maxTurns := req.MaxTurns
	if maxTurns <= 0 || maxTurns > MaxSolveTurns {
		maxTurns = MaxSolveTurns
	}

	if h.pool != nil {
		if err := h.pool.AcquireSearch(r.Context()); err != nil {
			writeError(w, http.StatusServiceUnavailable, "server busy", "busy")
			return
		}
		defer h.pool.ReleaseSearch()
	}

	var moves []arena.Move
	var turns int
	var ok bool
	if req.Turns > 0 {
		moves, ok = arena.Solve(a, req.Turns, req.Fast, nil)
		turns = req.Turns
	} else {
		moves, turns, ok = arena.SolveAuto(a, req.Fast, maxTurns)
	}

	resp := SolveResponse{Solved: ok, Key: a.KeyID()}
	if ok {
		resp.Turns = turns
		resp.Moves = make([]string, len(moves))
		for i, m := range moves {
			resp.Moves[i] = m.String()
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// Render handles POST /api/render: the ASCII board view.
func (h *Handlers) Render(w http.ResponseWriter, r *http.Request) {
	var req RenderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error(), "bad_request")
		return
	}
	a, err := buildArena(req.Arena)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "bad_arena")
		return
	}
	writeJSON(w, http.StatusOK, RenderResponse{
		Board:   a.String(),
		Enemies: a.Len(),
		Key:     a.KeyID(),
	})
}

// Analyze handles POST /api/analyze: scramble sampling.
func (h *Handlers) Analyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error(), "bad_request")
		return
	}
	a, err := buildArena(req.Arena)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "bad_arena")
		return
	}
	if req.Trials > MaxAnalyzeTrials {
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("trials must be <= %d", MaxAnalyzeTrials), "bad_trials")
		return
	}
	maxTurns := req.MaxTurns
	if maxTurns > MaxSolveTurns {
		maxTurns = MaxSolveTurns
	}

	if h.pool != nil {
		if err := h.pool.AcquireSearch(r.Context()); err != nil {
			writeError(w, http.StatusServiceUnavailable, "server busy", "busy")
			return
		}
		defer h.pool.ReleaseSearch()
	}

	result := analysis.Scramble(a, analysis.ScrambleOptions{
		Trials:   req.Trials,
		Depth:    req.Depth,
		MaxTurns: maxTurns,
		Seed:     req.Seed,
		Fast:     req.Fast,
	})
	writeJSON(w, http.StatusOK, AnalyzeResponse{
		Trials:         result.Trials,
		Solved:         result.Solved,
		SolvedFraction: result.SolvedFraction,
		MeanTurns:      result.MeanTurns,
		TurnsStdDev:    result.TurnsStdDev,
		MeanAmount:     result.MeanAmount,
		AmountStdDev:   result.AmountStdDev,
		CacheStates:    result.CacheStates,
	})
}
