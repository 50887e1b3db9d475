package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/yourusername/ringarena/pkg/arena"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins - configure properly in production
	},
}

// WSMessage is a generic WebSocket message.
type WSMessage struct {
	Type    string          `json:"type"`    // "coverage", "solve", "render", "ping"
	ID      string          `json:"id"`      // Request ID for correlating responses
	Payload json.RawMessage `json:"payload"` // Type-specific payload
}

// WSResponse is a generic WebSocket response.
type WSResponse struct {
	Type    string      `json:"type"`              // "result", "error", "pong"
	ID      string      `json:"id,omitempty"`      // Request ID
	Payload interface{} `json:"payload,omitempty"` // Response data
	Error   string      `json:"error,omitempty"`   // Error message if any
}

// WSClient represents a connected WebSocket client.
type WSClient struct {
	conn     *websocket.Conn
	handlers *Handlers
	sendChan chan WSResponse
}

// WebSocket handles WebSocket connections for interactive board analysis.
func (h *Handlers) WebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade error: %v", err)
		return
	}
	client := &WSClient{conn: conn, handlers: h, sendChan: make(chan WSResponse, 256)}
	go client.writePump()
	client.readPump()
}

func (c *WSClient) writePump() {
	defer c.conn.Close()
	for msg := range c.sendChan {
		if err := c.conn.WriteJSON(msg); err != nil {
			return
		}
	}
}

func (c *WSClient) readPump() {
	defer func() { close(c.sendChan); c.conn.Close() }()
	for {
		var msg WSMessage
		if err := c.conn.ReadJSON(&msg); err != nil {
			return
		}
		c.handleMessage(msg)
	}
}

func (c *WSClient) handleMessage(msg WSMessage) {
	switch msg.Type {
	case "coverage":
		c.handleCoverage(msg)
	case "solve":
		c.handleSolve(msg)
	case "render":
		c.handleRender(msg)
	case "ping":
		c.sendChan <- WSResponse{Type: "pong", ID: msg.ID}
	default:
		c.sendChan <- WSResponse{Type: "error", ID: msg.ID, Error: "unknown message type"}
	}
}

func (c *WSClient) arenaFromPayload(msg WSMessage, spec ArenaSpec) (*arena.SolvableArena, bool) {
	a, err := buildArena(spec)
	if err != nil {
		c.sendChan <- WSResponse{Type: "error", ID: msg.ID, Error: err.Error()}
		return nil, false
	}
	return a, true
}

func (c *WSClient) handleCoverage(msg WSMessage) {
	var req CoverageRequest
	if err := json.Unmarshal(msg.Payload, &req); err != nil {
		c.sendChan <- WSResponse{Type: "error", ID: msg.ID, Error: "invalid payload"}
		return
	}
	a, ok := c.arenaFromPayload(msg, req.Arena)
	if !ok {
		return
	}
	cov, found := arena.FindCoverage(a)
	if !found {
		c.sendChan <- WSResponse{Type: "result", ID: msg.ID, Payload: CoverageResponse{
			Solvable: false, Groups: int(a.NumGroups()), Key: a.KeyID(),
		}}
		return
	}
	c.sendChan <- WSResponse{Type: "result", ID: msg.ID, Payload: coverageToResponse(a, cov)}
}

func (c *WSClient) handleSolve(msg WSMessage) {
	var req SolveRequest
	if err := json.Unmarshal(msg.Payload, &req); err != nil {
		c.sendChan <- WSResponse{Type: "error", ID: msg.ID, Error: "invalid payload"}
		return
	}
	if req.Turns < 0 || req.Turns > MaxSolveTurns {
		c.sendChan <- WSResponse{Type: "error", ID: msg.ID, Error: "invalid turns"}
		return
	}
	a, ok := c.arenaFromPayload(msg, req.Arena)
	if !ok {
		return
	}
	maxTurns := req.MaxTurns
	if maxTurns <= 0 || maxTurns > MaxSolveTurns {
		maxTurns = MaxSolveTurns
	}

	var moves []arena.Move
	var turns int
	var solved bool
	if req.Turns > 0 {
		moves, solved = arena.Solve(a, req.Turns, req.Fast, nil)
		turns = req.Turns
	} else {
		moves, turns, solved = arena.SolveAuto(a, req.Fast, maxTurns)
	}

	resp := SolveResponse{Solved: solved, Key: a.KeyID()}
	if solved {
		resp.Turns = turns
		resp.Moves = make([]string, len(moves))
		for i, m := range moves {
			resp.Moves[i] = m.String()
		}
	}
	c.sendChan <- WSResponse{Type: "result", ID: msg.ID, Payload: resp}
}

func (c *WSClient) handleRender(msg WSMessage) {
	var req RenderRequest
	if err := json.Unmarshal(msg.Payload, &req); err != nil {
		c.sendChan <- WSResponse{Type: "error", ID: msg.ID, Error: "invalid payload"}
		return
	}
	a, ok := c.arenaFromPayload(msg, req.Arena)
	if !ok {
		return
	}
	c.sendChan <- WSResponse{Type: "result", ID: msg.ID, Payload: RenderResponse{
		Board: a.String(), Enemies: a.Len(), Key: a.KeyID(),
	}}
}
