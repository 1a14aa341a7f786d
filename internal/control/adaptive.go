package control

import "github.com/clydeger/a340-controller/internal/transmission"

// The 350-450ms band is the target shift envelope; learned offsets act
// additively on accumulator duty.
const (
	adaptiveSlowMs = 450
	adaptiveFastMs = 350
	adaptiveStep   = 2
)

// AdaptiveLearner holds the episode flags observed between Requested and
// Completing, since kickdown anywhere during the episode disqualifies it
// from trim learning.
type AdaptiveLearner struct {
	kickdownSeen bool
}

// Observe records per-tick flags during an active shift episode. Call
// once per tick while ShiftPhase != Stable.
func (a *AdaptiveLearner) Observe(state *transmission.State) {
	if state.KickdownActive {
		a.kickdownSeen = true
	}
}

// Reset clears the episode's accumulated flags. Call at the
// Stable->Requested edge, before the new episode's first Observe.
func (a *AdaptiveLearner) Reset() {
	a.kickdownSeen = false
}

// Learn applies the adaptive trim update at a Completing->Stable edge.
// targetGear/preShiftGear are captured at episode boundaries so the
// upshift test does not depend on CurrentGear having already been
// mutated by executeShift. If limp mode is active, no adaptive update
// ever happens.
func (a *AdaptiveLearner) Learn(state *transmission.State, throttlePct float64, targetGear, preShiftGear int, durationMs uint64) {
	defer a.Reset()

	if state.LimpMode {
		return
	}
	if targetGear <= preShiftGear {
		return // not an upshift
	}
	if a.kickdownSeen {
		return
	}
	if throttlePct > 75 {
		return
	}

	i := targetGear - 2
	if i < 0 || i >= transmission.UpshiftCount {
		return
	}

	switch {
	case durationMs > adaptiveSlowMs:
		state.ShiftQualityOffset[i] = transmission.ClampAdaptive(state.ShiftQualityOffset[i] - adaptiveStep)
	case durationMs < adaptiveFastMs:
		state.ShiftQualityOffset[i] = transmission.ClampAdaptive(state.ShiftQualityOffset[i] + adaptiveStep)
	}

	state.ShiftCount[i]++
}
