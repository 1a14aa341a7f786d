package diagnostic

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/clydeger/a340-controller/internal/transmission"
)

// fakePublisher is the Publisher stand-in for HTTP handler tests: it
// carries a fixed State and records every operator command it receives.
type fakePublisher struct {
	state       transmission.State
	forcedGear  int
	resetCalled bool
	limpCalls   []bool
}

func (f *fakePublisher) State() transmission.State { return f.state }
func (f *fakePublisher) ForceGear(gear int)        { f.forcedGear = gear }
func (f *fakePublisher) ResetAdaptive()            { f.resetCalled = true }
func (f *fakePublisher) SetLimp(limp bool)         { f.limpCalls = append(f.limpCalls, limp) }

func newTestServer() (*Server, *fakePublisher) {
	pub := &fakePublisher{state: *transmission.New()}
	events := NewEventLog()
	hub := NewHub()
	return NewServer(pub, hub, events), pub
}

func TestHandleStatusReturnsJSON(t *testing.T) {
	s, _ := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/status", nil)
	w := httptest.NewRecorder()

	s.Mux().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}
	if !strings.Contains(w.Body.String(), "currentGear") {
		t.Errorf("body missing currentGear field: %s", w.Body.String())
	}
}

func TestHandleCommandForceGear(t *testing.T) {
	s, pub := newTestServer()
	body := strings.NewReader(`{"command":"force_gear","gear":3}`)
	req := httptest.NewRequest(http.MethodPost, "/command", body)
	w := httptest.NewRecorder()

	s.Mux().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body=%s", w.Code, w.Body.String())
	}
	if pub.forcedGear != 3 {
		t.Errorf("ForceGear called with %d, want 3", pub.forcedGear)
	}
}

func TestHandleCommandRejectsGetMethod(t *testing.T) {
	s, _ := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/command", nil)
	w := httptest.NewRecorder()

	s.Mux().ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", w.Code)
	}
}

func TestHandleCommandRejectsInvalidGear(t *testing.T) {
	s, pub := newTestServer()
	body := strings.NewReader(`{"command":"force_gear","gear":9}`)
	req := httptest.NewRequest(http.MethodPost, "/command", body)
	w := httptest.NewRecorder()

	s.Mux().ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if pub.forcedGear != 0 {
		t.Errorf("ForceGear should not have been invoked for an invalid gear")
	}
}

func TestOnTickLatchesMaxTemp(t *testing.T) {
	s, _ := newTestServer()
	go s.hub.Run()

	s.OnTick(transmission.State{}, transmission.Snapshot{FluidTempC: 120})
	s.OnTick(transmission.State{}, transmission.Snapshot{FluidTempC: 80})

	view := s.view()
	if view.Stats.MaxTempC != 120 {
		t.Errorf("MaxTempC = %v, want it to latch at the highest seen (120)", view.Stats.MaxTempC)
	}
}
