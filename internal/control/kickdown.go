package control

// KickdownDetector holds the throttle history behind kickdown detection:
// the last sample and the time of the last sharp rise. An explicit value
// threaded through the tick rather than package-level state.
type KickdownDetector struct {
	lastThrottle  float64
	lastSharpRise uint64
	haveThrottle  bool
	haveSharpRise bool
}

// Update records the current throttle sample and reports whether
// kickdown is active this tick: throttle above 85% with a sharp rise
// (>= 20 points between samples) inside the last 200ms. Requiring both
// the absolute threshold and a recent rising edge filters out steady
// highway cruise at high throttle.
func (k *KickdownDetector) Update(throttlePct float64, nowMs uint64) bool {
	if k.haveThrottle && throttlePct-k.lastThrottle >= 20 {
		k.lastSharpRise = nowMs
		k.haveSharpRise = true
	}
	k.lastThrottle = throttlePct
	k.haveThrottle = true

	return k.haveSharpRise && throttlePct > 85 && nowMs-k.lastSharpRise < 200
}
