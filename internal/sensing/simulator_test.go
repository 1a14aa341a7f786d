package sensing

import "testing"

func TestSimulatorSnapshotStaysInClampedRanges(t *testing.T) {
	sim := NewSimulator()
	sim.SetOverdriveEnabled(true)
	sim.SetPowerMode(false)

	for i := 0; i < 3500; i++ { // a bit over one full 60s cycle at 20ms/tick
		snap := sim.Snapshot()
		if snap.ThrottlePct < 0 || snap.ThrottlePct > 100 {
			t.Fatalf("tick %d: ThrottlePct out of range: %v", i, snap.ThrottlePct)
		}
		if snap.SpeedKmh < 0 || snap.SpeedKmh > 250 {
			t.Fatalf("tick %d: SpeedKmh out of range: %v", i, snap.SpeedKmh)
		}
		if snap.FluidTempC < -40 || snap.FluidTempC > 150 {
			t.Fatalf("tick %d: FluidTempC out of range: %v", i, snap.FluidTempC)
		}
	}
}

func TestSimulatorReflectsSwitchSettings(t *testing.T) {
	sim := NewSimulator()
	sim.SetOverdriveEnabled(false)
	sim.SetPowerMode(true)
	sim.SetBrakePressed(true)

	snap := sim.Snapshot()
	if snap.OverdriveEnabled {
		t.Errorf("expected OverdriveEnabled=false to be reflected in the snapshot")
	}
	if !snap.PowerMode {
		t.Errorf("expected PowerMode=true to be reflected in the snapshot")
	}
	if !snap.BrakePressed {
		t.Errorf("expected BrakePressed=true to be reflected in the snapshot")
	}
}
