package control

import "testing"

func TestKickdownDetectorNoSpuriousTriggerAtStart(t *testing.T) {
	kd := &KickdownDetector{}
	// First sample ever, already above 85% throttle: must not report
	// kickdown since no sharp rise has been observed yet.
	if kd.Update(95, 0) {
		t.Errorf("kickdown reported true on the very first sample")
	}
}

func TestKickdownDetectorTriggersOnSharpRiseThenExpires(t *testing.T) {
	kd := &KickdownDetector{}
	kd.Update(10, 0)

	if !kd.Update(90, 10) {
		t.Errorf("expected kickdown active immediately after a sharp rise above 85%%")
	}
	if !kd.Update(90, 150) {
		t.Errorf("expected kickdown still active within the 200ms window")
	}
	if kd.Update(90, 300) {
		t.Errorf("expected kickdown to expire after the 200ms window")
	}
}

func TestKickdownDetectorRequiresSharpRiseNotJustHighThrottle(t *testing.T) {
	kd := &KickdownDetector{}
	kd.Update(88, 0)
	// Throttle stays high but never rose sharply.
	if kd.Update(90, 10) {
		t.Errorf("kickdown reported true without a >=20%% sharp rise")
	}
}
