package control

import "github.com/clydeger/a340-controller/internal/transmission"

// Accumulator duty bands, percent; lower duty = firmer shift (higher
// line pressure modulated by accumulator back-pressure).
const (
	AccSoft     = 70
	AccMedium   = 50
	AccFirm     = 30
	AccKickdown = 20

	AccDutyMin = 15
	AccDutyMax = 85
)

// AccumulatorDuty computes the accumulator solenoid duty for this tick.
func AccumulatorDuty(state *transmission.State, snap transmission.Snapshot) int {
	var base int

	if state.ShiftPhase == transmission.InProgress {
		switch {
		case state.KickdownActive:
			base = AccKickdown
		case snap.ThrottlePct > 60:
			base = AccFirm
		case snap.ThrottlePct < 25:
			base = AccSoft
		default:
			base = AccMedium
		}

		if state.TargetGear >= 2 && state.TargetGear <= 4 {
			base += state.ShiftQualityOffset[state.TargetGear-2]
		}
	} else {
		base = AccMedium
	}

	switch {
	case snap.FluidTempC < 40:
		base -= 20
	case snap.FluidTempC < 60:
		base -= 10
	case snap.FluidTempC > 100:
		base += 10
	}

	return clampInt(base, AccDutyMin, AccDutyMax)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
