package control

import (
	"log/slog"

	"github.com/clydeger/a340-controller/internal/actuation"
	"github.com/clydeger/a340-controller/internal/transmission"
)

// Timing gates for the shift episode machine. The inhibit window
// prevents rapid hunting after a shift; the delay window suppresses
// spurious requests from noisy throttle/speed; the settle window
// separates mechanical completion from the moment adaptive learning
// reads duration.
const (
	ShiftInhibitMs  = 800
	ShiftDelayMs    = 150
	ShiftCompleteMs = 500
	ShiftSettleMs   = 200
)

// gearSolenoids maps a target gear to the two binary gear-select
// solenoids.
func gearSolenoids(gear int) (s1, s2 bool) {
	switch gear {
	case 1:
		return false, false
	case 2:
		return true, false
	case 3:
		return false, true
	case 4:
		return true, true
	default:
		return false, false
	}
}

// AdvanceStateMachine runs one tick of the Stable -> Requested ->
// InProgress -> Completing -> Stable machine. It invokes executeShift
// (via act) at most once per episode, and invokes learn (the adaptive
// trim update) exactly once, at the Completing -> Stable edge.
func AdvanceStateMachine(state *transmission.State, snap transmission.Snapshot, kd *KickdownDetector, act actuation.Actuator, nowMs uint64, learn func(targetGear int, preShiftGear int, durationMs uint64)) {
	switch state.ShiftPhase {
	case transmission.Stable:
		target := Select(state, snap, kd, nowMs)
		if target != state.CurrentGear && nowMs-state.LastShiftCompletedMs > ShiftInhibitMs {
			state.TargetGear = target
			state.PreShiftGear = state.CurrentGear
			state.ShiftStartMs = nowMs
			state.ShiftPhase = transmission.Requested
		} else {
			// The demand either matched or fell inside the inhibit
			// window; TargetGear stays pinned to CurrentGear so the
			// Stable invariant holds across ticks.
			state.TargetGear = state.CurrentGear
		}

	case transmission.Requested:
		if nowMs-state.ShiftStartMs > ShiftDelayMs {
			confirmed := Select(state, snap, kd, nowMs)
			if confirmed == state.TargetGear {
				executeShift(state, act, state.TargetGear)
				state.LastShiftCompletedMs = nowMs
				state.ShiftPhase = transmission.InProgress
			} else {
				state.ShiftPhase = transmission.Stable
				state.TargetGear = state.CurrentGear
			}
		}

	case transmission.InProgress:
		if nowMs-state.ShiftStartMs > ShiftCompleteMs {
			state.ShiftPhase = transmission.Completing
		}

	case transmission.Completing:
		if nowMs-state.ShiftStartMs > ShiftCompleteMs+ShiftSettleMs {
			state.LastShiftDurationMs = nowMs - state.ShiftStartMs
			if learn != nil {
				learn(state.TargetGear, state.PreShiftGear, state.LastShiftDurationMs)
			}
			state.ShiftPhase = transmission.Stable
		}
	}
}

// executeShift is the single side effect that commands the physical gear
// change: it writes the binary solenoids, advances CurrentGear, and
// counts the shift. Invoked at most once per episode by the caller above.
func executeShift(state *transmission.State, act actuation.Actuator, targetGear int) {
	s1, s2 := gearSolenoids(targetGear)
	act.SetGearSolenoids(s1, s2)
	state.CurrentGear = targetGear
	state.TotalShifts++
	slog.Info("executeShift", "gear", targetGear, "s1", s1, "s2", s2)
}
