// Package api provides the HTTP/JSON surface for the ring-arena solver.
// It is a consumer of the core: every handler drives the arena through its
// public mutators and queries only.
package api

// ============================================================================
// Request Types
// ============================================================================

// OccupantSpec describes one enemy in a request. Coordinates are 0-indexed
// (ring 0 = innermost, slot 0..11). Attack is "", "H", "J" or "P".
type OccupantSpec struct {
	Ring   int    `json:"ring"`
	Slot   int    `json:"slot"`
	Attack string `json:"attack,omitempty"`
}

// ArenaSpec describes a full solvable board. Absent equipment fields
// default to available.
type ArenaSpec struct {
	Enemies []OccupantSpec `json:"enemies"`
	Groups  int            `json:"groups,omitempty"` // manual override, 0 = automatic
	Hammer  *bool          `json:"hammer,omitempty"` // throwing hammer available
	Boots   *bool          `json:"boots,omitempty"`  // iron boots available
}

// CoverageRequest is the request body for coverage search.
type CoverageRequest struct {
	Arena ArenaSpec `json:"arena"`
}

// SolveRequest is the request body for move planning. Turns 0 means
// iterative deepening up to MaxTurns.
type SolveRequest struct {
	Arena    ArenaSpec `json:"arena"`
	Turns    int       `json:"turns,omitempty"`
	Fast     bool      `json:"fast,omitempty"`
	MaxTurns int       `json:"max_turns,omitempty"`
}

// RenderRequest is the request body for the ASCII board rendering.
type RenderRequest struct {
	Arena ArenaSpec `json:"arena"`
}

// AnalyzeRequest is the request body for scramble sampling.
type AnalyzeRequest struct {
	Arena    ArenaSpec `json:"arena"`
	Trials   int       `json:"trials,omitempty"`
	Depth    int       `json:"depth,omitempty"`
	MaxTurns int       `json:"max_turns,omitempty"`
	Seed     int64     `json:"seed,omitempty"`
	Fast     bool      `json:"fast,omitempty"`
}

// ============================================================================
// Response Types
// ============================================================================

// AreaResponse describes one placed attack area.
type AreaResponse struct {
	Kind    string   `json:"kind"`    // "long" or "wide"
	Slots   []int    `json:"slots"`   // covered slots, 0-indexed
	Attacks []string `json:"attacks"` // remaining whitelist tools
}

// CoverageResponse is the response for coverage search.
type CoverageResponse struct {
	Solvable bool           `json:"solvable"`
	Areas    []AreaResponse `json:"areas,omitempty"`
	Groups   int            `json:"groups"` // budget used for the search
	Key      string         `json:"key"`    // canonical state ID
}

// SolveResponse is the response for move planning.
type SolveResponse struct {
	Solved bool     `json:"solved"`
	Moves  []string `json:"moves"` // short textual form, normalized
	Turns  int      `json:"turns"` // budget that produced the solution
	Key    string   `json:"key"`
}

// RenderResponse is the response for board rendering.
type RenderResponse struct {
	Board   string `json:"board"`
	Enemies int    `json:"enemies"`
	Key     string `json:"key"`
}

// AnalyzeResponse is the response for scramble sampling.
type AnalyzeResponse struct {
	Trials         int     `json:"trials"`
	Solved         int     `json:"solved"`
	SolvedFraction float64 `json:"solved_fraction"`
	MeanTurns      float64 `json:"mean_turns"`
	TurnsStdDev    float64 `json:"turns_stddev"`
	MeanAmount     float64 `json:"mean_amount"`
	AmountStdDev   float64 `json:"amount_stddev"`
	CacheStates    int     `json:"cache_states"`
}

// HealthResponse is the health check response.
type HealthResponse struct {
	Status  string     `json:"status"`
	Version string     `json:"version"`
	Pool    *PoolStats `json:"pool,omitempty"`
}

// ErrorResponse is the standard error body.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}
