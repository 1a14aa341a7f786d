package sensing

import "testing"

func TestPulseChannelNoPulseReadsZeroFrequency(t *testing.T) {
	p := &PulseChannel{}
	if got := p.FrequencyHz(1_000_000, SpeedOutputStaleUs); got != 0 {
		t.Errorf("FrequencyHz with no recorded pulse = %v, want 0", got)
	}
}

func TestPulseChannelFrequencyFromTwoPulses(t *testing.T) {
	p := &PulseChannel{}
	p.RecordPulse(0)
	p.RecordPulse(10_000) // 10ms period -> 100Hz

	got := p.FrequencyHz(10_000, SpeedOutputStaleUs)
	if !approxEqual(got, 100, 0.01) {
		t.Errorf("FrequencyHz after a 10ms period = %v, want ~100Hz", got)
	}
}

func TestPulseChannelStaleReadsZero(t *testing.T) {
	p := &PulseChannel{}
	p.RecordPulse(0)
	p.RecordPulse(10_000)

	got := p.FrequencyHz(10_000+SpeedOutputStaleUs+1, SpeedOutputStaleUs)
	if got != 0 {
		t.Errorf("FrequencyHz beyond the staleness bound = %v, want 0", got)
	}
}

func TestPulseChannelPeriodUsBeforeFirstPulse(t *testing.T) {
	p := &PulseChannel{}
	if _, ok := p.PeriodUs(); ok {
		t.Errorf("PeriodUs() ok=true before any pulse recorded")
	}
}
