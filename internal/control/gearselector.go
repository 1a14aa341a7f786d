package control

import (
	"github.com/clydeger/a340-controller/internal/transmission"
)

// Select computes the target gear for this tick: pure function of the
// current state, the conditioned sensor snapshot, and the kickdown
// detector's running history. It mutates state.KickdownActive as a side
// effect of observing kickdown this tick, but never touches CurrentGear,
// ShiftPhase, or timing fields.
func Select(state *transmission.State, snap transmission.Snapshot, kd *KickdownDetector, nowMs uint64) int {
	if state.LimpMode {
		return 3
	}

	// Every edge below conditions on the gear the box is actually in, so
	// at most one edge fires per tick; a later step overwrites an earlier
	// one rather than chaining off its result.
	cur := state.CurrentGear
	target := cur

	if !snap.OverdriveEnabled && target > 3 {
		target = 3
	}

	kickdown := kd.Update(snap.ThrottlePct, nowMs)
	state.KickdownActive = kickdown

	if kickdown {
		switch {
		case cur == 4 && snap.SpeedKmh < 120:
			target = 3
		case cur == 3 && snap.SpeedKmh < 90:
			target = 2
		case cur == 2 && snap.SpeedKmh < 50:
			target = 1
		}
		return target
	}

	upTable12, upTable23, upTable34 := upshift12Normal, upshift23Normal, upshift34Normal
	if snap.PowerMode {
		upTable12, upTable23, upTable34 = upshift12Power, upshift23Power, upshift34Power
	}

	switch {
	case cur == 1 && snap.SpeedKmh > interp(upTable12, snap.ThrottlePct):
		target = 2
	case cur == 2 && snap.SpeedKmh > interp(upTable23, snap.ThrottlePct):
		target = 3
	case cur == 3 && snap.OverdriveEnabled && snap.SpeedKmh > interp(upTable34, snap.ThrottlePct):
		target = 4
	}

	switch {
	case cur == 4 && snap.SpeedKmh < interp(downshift43, snap.ThrottlePct):
		target = 3
	case cur == 3 && snap.SpeedKmh < interp(downshift32, snap.ThrottlePct):
		target = 2
	case cur == 2 && snap.SpeedKmh < interp(downshift21, snap.ThrottlePct):
		target = 1
	}

	if snap.BrakePressed && snap.ThrottlePct < 5 {
		switch {
		case cur == 4 && snap.SpeedKmh < 70:
			target = 3
		case cur == 3 && snap.SpeedKmh < 45:
			target = 2
		}
	}

	return target
}
