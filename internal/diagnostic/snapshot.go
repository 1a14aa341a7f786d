// Package diagnostic implements the read-only diagnostic publisher: an
// HTTP/JSON surface plus a websocket push feed over the transmission
// state, last sensor snapshot, and aggregate stats. It formats and
// transports; the control core does neither.
package diagnostic

import (
	"time"

	"github.com/clydeger/a340-controller/internal/control"
	"github.com/clydeger/a340-controller/internal/transmission"
)

// View is the JSON-serializable read-only snapshot of system state
// exposed to external HTTP/websocket consumers.
type View struct {
	Time time.Time `json:"time"`

	CurrentGear int    `json:"currentGear"`
	TargetGear  int    `json:"targetGear"`
	ShiftPhase  string `json:"shiftPhase"`

	ThrottlePct      float64 `json:"throttlePct"`
	SpeedKmh         float64 `json:"speedKmh"`
	EngineRPM        float64 `json:"engineRpm"`
	OutputRPM        float64 `json:"outputRpm"`
	FluidTempC       float64 `json:"fluidTempC"`
	BrakePressed     bool    `json:"brakePressed"`
	OverdriveEnabled bool    `json:"overdriveEnabled"`
	PowerMode        bool    `json:"powerMode"`

	KickdownActive     bool      `json:"kickdownActive"`
	LockupEngaged      bool      `json:"lockupEngaged"`
	LockupDutyPct      int       `json:"lockupDutyPct"`
	AccumulatorDutyPct int       `json:"accumulatorDutyPct"`
	ShiftQualityOffset [3]int    `json:"shiftQualityOffset"`
	ShiftCount         [3]uint64 `json:"shiftCount"`
	LimpMode           bool      `json:"limpMode"`

	SlipPct float64 `json:"slipPct"`

	Stats Stats `json:"stats"`
}

// Stats holds aggregate diagnostic counters.
type Stats struct {
	TotalShifts   uint64  `json:"totalShifts"`
	UptimeSeconds float64 `json:"uptimeSeconds"`
	MaxTempC      float64 `json:"maxTempC"`
}

// BuildView assembles a View from a transmission.State and the
// Snapshot that produced it, plus externally tracked aggregates.
func BuildView(state transmission.State, snap transmission.Snapshot, startTime time.Time, maxTempC float64) View {
	return View{
		Time:               time.Now(),
		CurrentGear:        state.CurrentGear,
		TargetGear:         state.TargetGear,
		ShiftPhase:         state.ShiftPhase.String(),
		ThrottlePct:        snap.ThrottlePct,
		SpeedKmh:           snap.SpeedKmh,
		EngineRPM:          snap.EngineRPM,
		OutputRPM:          snap.OutputRPM,
		FluidTempC:         snap.FluidTempC,
		BrakePressed:       snap.BrakePressed,
		OverdriveEnabled:   snap.OverdriveEnabled,
		PowerMode:          snap.PowerMode,
		KickdownActive:     state.KickdownActive,
		LockupEngaged:      state.LockupEngaged,
		LockupDutyPct:      state.LockupDutyPct,
		AccumulatorDutyPct: state.AccumulatorDutyPct,
		ShiftQualityOffset: state.ShiftQualityOffset,
		ShiftCount:         state.ShiftCount,
		LimpMode:           state.LimpMode,
		SlipPct:            control.Slip(state.CurrentGear, snap.EngineRPM, snap.OutputRPM),
		Stats: Stats{
			TotalShifts:   state.TotalShifts,
			UptimeSeconds: time.Since(startTime).Seconds(),
			MaxTempC:      maxTempC,
		},
	}
}
