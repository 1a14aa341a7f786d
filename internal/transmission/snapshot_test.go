package transmission

import "testing"

func TestClampPinsFieldsToDocumentedRanges(t *testing.T) {
	s := Snapshot{
		ThrottlePct: 150,
		SpeedKmh:    -10,
		EngineRPM:   9000,
		OutputRPM:   -5,
		FluidTempC:  200,
	}
	s.Clamp()

	if s.ThrottlePct != 100 {
		t.Errorf("ThrottlePct = %v, want 100", s.ThrottlePct)
	}
	if s.SpeedKmh != 0 {
		t.Errorf("SpeedKmh = %v, want 0", s.SpeedKmh)
	}
	if s.EngineRPM != 8000 {
		t.Errorf("EngineRPM = %v, want 8000", s.EngineRPM)
	}
	if s.OutputRPM != 0 {
		t.Errorf("OutputRPM = %v, want 0 (negative clamped)", s.OutputRPM)
	}
	if s.FluidTempC != 150 {
		t.Errorf("FluidTempC = %v, want 150", s.FluidTempC)
	}
}

func TestClampLeavesInRangeValuesUntouched(t *testing.T) {
	s := Snapshot{ThrottlePct: 42, SpeedKmh: 80, EngineRPM: 3000, OutputRPM: 2500, FluidTempC: 90}
	want := s
	s.Clamp()
	if s != want {
		t.Errorf("Clamp() altered an already in-range Snapshot: got %+v, want %+v", s, want)
	}
}
