// Package transmission holds the shared data model for the shift-control
// core: the conditioned sensor view and the single mutable transmission
// state, plus the invariants that must hold across every tick.
package transmission

// Snapshot is the immutable, per-tick view of conditioned sensor values
// produced by a sensing.Provider. The core never performs I/O; it only
// ever reads a Snapshot.
type Snapshot struct {
	ThrottlePct      float64 // 0..100, filtered
	SpeedKmh         float64 // 0..250, filtered
	EngineRPM        float64 // 0..8000
	OutputRPM        float64 // 0..+Inf
	FluidTempC       float64 // -40..150
	BrakePressed     bool
	OverdriveEnabled bool // driver's OD switch
	PowerMode        bool // normal vs sport shift map
}

// Clamp pins every field to its documented range in place.
func (s *Snapshot) Clamp() {
	s.ThrottlePct = clamp(s.ThrottlePct, 0, 100)
	s.SpeedKmh = clamp(s.SpeedKmh, 0, 250)
	s.EngineRPM = clamp(s.EngineRPM, 0, 8000)
	if s.OutputRPM < 0 {
		s.OutputRPM = 0
	}
	s.FluidTempC = clamp(s.FluidTempC, -40, 150)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
