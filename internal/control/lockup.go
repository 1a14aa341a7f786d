package control

import "github.com/clydeger/a340-controller/internal/transmission"

// Lockup engagement envelope. Between the disable and enable thresholds
// (50-60km/h, or 70-80% throttle) lockup is released just as it is
// beyond them; LockupDuty keeps no memory of a prior engagement, so the
// effective engage/release boundary is 60km/h and 70% throttle.
const (
	LockupEnableGear   = 3
	LockupEnableSpeed  = 60
	LockupDisableSpeed = 50
	LockupThrottleMax  = 70
)

// LockupDuty computes the lockup clutch duty cycle and engagement flag
// for this tick.
func LockupDuty(state *transmission.State, snap transmission.Snapshot) (engaged bool, dutyPct int) {
	mustUnlock := snap.SpeedKmh < LockupDisableSpeed ||
		snap.ThrottlePct > LockupThrottleMax+10 ||
		state.ShiftPhase != transmission.Stable ||
		state.CurrentGear < LockupEnableGear

	canLockup := state.CurrentGear >= LockupEnableGear &&
		snap.SpeedKmh > LockupEnableSpeed &&
		snap.ThrottlePct < LockupThrottleMax &&
		state.ShiftPhase == transmission.Stable &&
		snap.FluidTempC > 50

	switch {
	case mustUnlock:
		return false, 0
	case canLockup:
		switch {
		case snap.ThrottlePct < 20:
			return true, 95
		case snap.ThrottlePct < 40:
			return true, 75
		default:
			return true, 50
		}
	default:
		return false, 0
	}
}
