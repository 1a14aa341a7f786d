package transmission

import "testing"

func TestNewPowerOnDefaults(t *testing.T) {
	s := New()
	if s.CurrentGear != 1 || s.TargetGear != 1 {
		t.Errorf("New() gears = (%d,%d), want (1,1)", s.CurrentGear, s.TargetGear)
	}
	if s.ShiftPhase != Stable {
		t.Errorf("New() phase = %v, want Stable", s.ShiftPhase)
	}
	if s.AccumulatorDutyPct != 50 {
		t.Errorf("New() AccumulatorDutyPct = %d, want 50", s.AccumulatorDutyPct)
	}
	if err := s.CheckInvariants(); err != nil {
		t.Errorf("New() violates invariants: %v", err)
	}
}

func TestCheckInvariantsCatchesOutOfRangeGear(t *testing.T) {
	s := New()
	s.CurrentGear = 5
	if err := s.CheckInvariants(); err == nil {
		t.Errorf("expected an error for current_gear=5")
	}
}

func TestCheckInvariantsCatchesStableMismatch(t *testing.T) {
	s := New()
	s.TargetGear = 2
	s.ShiftPhase = Stable
	if err := s.CheckInvariants(); err == nil {
		t.Errorf("expected an error for Stable phase with mismatched gears")
	}
}

func TestCheckInvariantsCatchesAdaptiveOutOfRange(t *testing.T) {
	s := New()
	s.ShiftQualityOffset[1] = 21
	if err := s.CheckInvariants(); err == nil {
		t.Errorf("expected an error for shift_quality_offset out of [-20,20]")
	}
}

func TestClampAdaptiveBounds(t *testing.T) {
	if v := ClampAdaptive(25); v != 20 {
		t.Errorf("ClampAdaptive(25) = %d, want 20", v)
	}
	if v := ClampAdaptive(-25); v != -20 {
		t.Errorf("ClampAdaptive(-25) = %d, want -20", v)
	}
	if v := ClampAdaptive(5); v != 5 {
		t.Errorf("ClampAdaptive(5) = %d, want 5", v)
	}
}

func TestResetAdaptiveClearsOffsetsAndCounts(t *testing.T) {
	s := New()
	s.ShiftQualityOffset = [UpshiftCount]int{10, -5, 3}
	s.ShiftCount = [UpshiftCount]uint64{1, 2, 3}

	s.ResetAdaptive()

	if s.ShiftQualityOffset != ([UpshiftCount]int{0, 0, 0}) {
		t.Errorf("ResetAdaptive left offsets %v", s.ShiftQualityOffset)
	}
	if s.ShiftCount != ([UpshiftCount]uint64{0, 0, 0}) {
		t.Errorf("ResetAdaptive left counts %v", s.ShiftCount)
	}
	if s.LimpMode {
		t.Errorf("ResetAdaptive must not touch LimpMode")
	}
}

func TestPhaseString(t *testing.T) {
	cases := map[Phase]string{
		Stable:     "Stable",
		Requested:  "Requested",
		InProgress: "InProgress",
		Completing: "Completing",
	}
	for p, want := range cases {
		if got := p.String(); got != want {
			t.Errorf("Phase(%d).String() = %q, want %q", int(p), got, want)
		}
	}
}
