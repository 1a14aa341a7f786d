package diagnostic

import (
	"testing"
	"time"

	"github.com/clydeger/a340-controller/internal/transmission"
)

func TestBuildViewCopiesStateAndSnapshotFields(t *testing.T) {
	state := transmission.New()
	state.CurrentGear = 3
	state.TargetGear = 3
	state.TotalShifts = 7
	snap := transmission.Snapshot{ThrottlePct: 40, SpeedKmh: 80, EngineRPM: 3000, OutputRPM: 2800, FluidTempC: 90}

	start := time.Now().Add(-10 * time.Second)
	view := BuildView(*state, snap, start, 95)

	if view.CurrentGear != 3 || view.TargetGear != 3 {
		t.Errorf("View gears = (%d,%d), want (3,3)", view.CurrentGear, view.TargetGear)
	}
	if view.ShiftPhase != "Stable" {
		t.Errorf("View.ShiftPhase = %q, want Stable", view.ShiftPhase)
	}
	if view.ThrottlePct != 40 || view.SpeedKmh != 80 {
		t.Errorf("View sensor fields not copied: %+v", view)
	}
	if view.Stats.TotalShifts != 7 {
		t.Errorf("View.Stats.TotalShifts = %d, want 7", view.Stats.TotalShifts)
	}
	if view.Stats.MaxTempC != 95 {
		t.Errorf("View.Stats.MaxTempC = %v, want 95", view.Stats.MaxTempC)
	}
	if view.Stats.UptimeSeconds < 9 {
		t.Errorf("View.Stats.UptimeSeconds = %v, want at least ~10", view.Stats.UptimeSeconds)
	}
}
