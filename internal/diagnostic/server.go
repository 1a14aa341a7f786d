package diagnostic

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/clydeger/a340-controller/internal/console"
	"github.com/clydeger/a340-controller/internal/transmission"
)

// Publisher is implemented by control.Loop: the subset of its API the
// diagnostic server needs to build a View and accept operator commands.
type Publisher interface {
	State() transmission.State
	console.Controller
}

// Server is the diagnostic HTTP/JSON surface. It formats and transports
// a read-only view of the core; it contains no control logic.
type Server struct {
	pub       Publisher
	hub       *Hub
	events    *EventLog
	startTime time.Time

	mu       sync.Mutex
	maxTempC float64
	lastSnap transmission.Snapshot
}

// NewServer builds a diagnostic Server around a control.Loop (via the
// narrow Publisher interface), a websocket Hub, and an EventLog.
func NewServer(pub Publisher, hub *Hub, events *EventLog) *Server {
	return &Server{
		pub:       pub,
		hub:       hub,
		events:    events,
		startTime: time.Now(),
	}
}

// OnTick is the control.Loop.OnTick callback: it records the latest
// snapshot and max temperature, then pushes a fresh View to every
// connected websocket client. Register it with loop.OnTick(server.OnTick).
func (s *Server) OnTick(state transmission.State, snap transmission.Snapshot) {
	s.mu.Lock()
	s.lastSnap = snap
	if snap.FluidTempC > s.maxTempC {
		s.maxTempC = snap.FluidTempC
	}
	view := BuildView(state, snap, s.startTime, s.maxTempC)
	s.mu.Unlock()

	s.hub.Publish(view)
}

func (s *Server) view() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return BuildView(s.pub.State(), s.lastSnap, s.startTime, s.maxTempC)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.view())
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.view().Stats)
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.events.All())
}

// commandRequest is the POST /command body: the same three verbs the
// serial operator console accepts, reachable over HTTP so a bench
// operator doesn't need a serial cable.
type commandRequest struct {
	Command string `json:"command"`
	Gear    int    `json:"gear,omitempty"`
	Limp    bool   `json:"limp,omitempty"`
}

func (s *Server) handleCommand(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "POST required", http.StatusMethodNotAllowed)
		return
	}

	var req commandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("bad request: %v", err), http.StatusBadRequest)
		return
	}

	switch req.Command {
	case "force_gear":
		if req.Gear < 1 || req.Gear > 4 {
			http.Error(w, "gear must be 1..4", http.StatusBadRequest)
			return
		}
		s.pub.ForceGear(req.Gear)
		s.events.Add("info", fmt.Sprintf("operator forced gear %d", req.Gear))
	case "reset_adaptive":
		s.pub.ResetAdaptive()
		s.events.Add("info", "operator reset adaptive trims")
	case "set_limp":
		s.pub.SetLimp(req.Limp)
		s.events.Add("warn", fmt.Sprintf("operator set limp mode to %v", req.Limp))
	default:
		http.Error(w, "unknown command", http.StatusBadRequest)
		return
	}

	writeJSON(w, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("diagnostic JSON encode failed", "error", err)
	}
}

// Mux builds the HTTP handler tree: /status, /stats, /events, /command,
// and /ws (the live websocket feed, see hub.go).
func (s *Server) Mux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/status", s.handleStatus)
	mux.HandleFunc("/stats", s.handleStats)
	mux.HandleFunc("/events", s.handleEvents)
	mux.HandleFunc("/command", s.handleCommand)
	mux.HandleFunc("/ws", s.hub.ServeWS)
	return mux
}

// ListenAndServe starts the diagnostic HTTP server on addr. It blocks
// until the server stops or errors.
func (s *Server) ListenAndServe(addr string) error {
	slog.Info("diagnostic server listening", "addr", addr)
	return http.ListenAndServe(addr, s.Mux())
}
