// Package control implements the shift-control core: gear selection, the
// shift state machine, accumulator/lockup duty, adaptive trim learning,
// and the periodic tick loop that wires them together.
package control

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/clydeger/a340-controller/internal/actuation"
	"github.com/clydeger/a340-controller/internal/clock"
	"github.com/clydeger/a340-controller/internal/sensing"
	"github.com/clydeger/a340-controller/internal/transmission"
)

// TickPeriod is the nominal control loop period, 20ms (50Hz).
const TickPeriod = 20 * time.Millisecond

// TickCallback fires once per completed tick with the just-updated
// state and the snapshot that produced it.
type TickCallback func(state transmission.State, snap transmission.Snapshot)

// ShiftCallback fires once per executeShift.
type ShiftCallback func(fromGear, toGear int)

// Loop runs the periodic shift-control task: a single goroutine,
// run-to-completion per tick, owning the one mutable transmission.State
// exclusively.
type Loop struct {
	provider sensing.Provider
	actuator actuation.Actuator
	clk      clock.Clock

	mu        sync.Mutex
	state     *transmission.State
	learner   AdaptiveLearner
	kickdown  KickdownDetector
	running   bool
	cancel    context.CancelFunc

	tickCbs  []TickCallback
	shiftCbs []ShiftCallback
}

// NewLoop constructs a Loop around a sensor provider, an actuator, and a
// clock. state may be nil, in which case a fresh power-on default state
// is created.
func NewLoop(provider sensing.Provider, actuator actuation.Actuator, clk clock.Clock, state *transmission.State) *Loop {
	if state == nil {
		state = transmission.New()
	}
	return &Loop{
		provider: provider,
		actuator: actuator,
		clk:      clk,
		state:    state,
	}
}

// OnTick registers a callback fired after every tick (Stable or not).
func (l *Loop) OnTick(cb TickCallback) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.tickCbs = append(l.tickCbs, cb)
}

// OnShift registers a callback fired each time executeShift runs.
func (l *Loop) OnShift(cb ShiftCallback) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.shiftCbs = append(l.shiftCbs, cb)
}

// State returns a copy of the current transmission state, safe for a
// diagnostic reader to inspect without coordination.
func (l *Loop) State() transmission.State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return *l.state
}

// ForceGear implements the operator "force_gear" command: it bypasses
// the state machine, setting current and target directly and invoking
// executeShift. Bench use only.
func (l *Loop) ForceGear(gear int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if gear < 1 || gear > 4 {
		return
	}
	l.state.TargetGear = gear
	executeShift(l.state, l.actuator, gear)
	l.state.ShiftPhase = transmission.Stable
}

// ResetAdaptive implements the operator "reset_adaptive" command.
func (l *Loop) ResetAdaptive() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.state.ResetAdaptive()
}

// SetLimp implements the operator "set_limp" command.
func (l *Loop) SetLimp(v bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.state.LimpMode = v
}

// Start launches the tick loop in a goroutine.
func (l *Loop) Start() {
	l.mu.Lock()
	if l.running {
		l.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	l.cancel = cancel
	l.running = true
	l.mu.Unlock()

	go l.run(ctx)
	slog.Info("shift control loop started", "period_ms", TickPeriod.Milliseconds())
}

// Stop halts the tick loop.
func (l *Loop) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.running {
		return
	}
	l.cancel()
	l.running = false
	slog.Info("shift control loop stopped")
}

func (l *Loop) run(ctx context.Context) {
	ticker := time.NewTicker(TickPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.Tick(l.clk.NowMs())
		}
	}
}

// Tick runs exactly one control pass: sensor snapshot -> gear selection
// (inside the state machine) -> shift state machine -> accumulator duty
// -> lockup duty -> actuation. It is exported so tests can drive it
// directly against a clock.Fake without starting the goroutine loop.
func (l *Loop) Tick(nowMs uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	snap := l.provider.Snapshot()
	state := l.state

	if err := state.CheckInvariants(); err != nil {
		slog.Error("invariant violation, forcing limp mode", "error", err)
		state.LimpMode = true
	}

	preGear := state.CurrentGear
	prePhase := state.ShiftPhase

	AdvanceStateMachine(state, snap, &l.kickdown, l.actuator, nowMs, func(targetGear, preShiftGear int, durationMs uint64) {
		l.learner.Learn(state, snap.ThrottlePct, targetGear, preShiftGear, durationMs)
	})

	if prePhase == transmission.Stable && state.ShiftPhase == transmission.Requested {
		l.learner.Reset()
	}
	if state.ShiftPhase != transmission.Stable {
		l.learner.Observe(state)
	}

	if prePhase == transmission.Requested && state.ShiftPhase == transmission.InProgress {
		for _, cb := range l.shiftCbs {
			cb(preGear, state.CurrentGear)
		}
	}

	state.AccumulatorDutyPct = AccumulatorDuty(state, snap)
	l.actuator.SetAccumulatorDuty(state.AccumulatorDutyPct)

	engaged, lockupDuty := LockupDuty(state, snap)
	state.LockupEngaged = engaged
	state.LockupDutyPct = lockupDuty
	l.actuator.SetLockupDuty(lockupDuty)

	for _, cb := range l.tickCbs {
		cb(*state, snap)
	}
}
