package sensing

import (
	"sync"

	"github.com/clydeger/a340-controller/internal/transmission"
)

// DigitalInputs is the GPIO-backed source of the three boolean switches
// the core reads each tick. Real GPIO access lives behind this seam; a
// bench or hardware adapter fills it in.
type DigitalInputs interface {
	BrakePressed() bool
	OverdriveEnabled() bool
	PowerMode() bool
}

// HardwareProvider assembles a Snapshot each tick from three
// interrupt-fed PulseChannels (speed, engine RPM, output RPM), an ADC
// reader for throttle position and fluid temperature, and a set of
// digital inputs. A thin conditioning adapter with no control decisions.
type HardwareProvider struct {
	mu sync.Mutex

	speedPulse  *PulseChannel
	enginePulse *PulseChannel
	outputPulse *PulseChannel

	speedPulsesPerKm   float64
	enginePulsesPerRev float64
	outputPulsesPerRev float64

	throttleEMA *EMA
	speedEMA    *EMA

	readThrottleVoltage func() float64
	readFluidVoltage    func() float64
	digital             DigitalInputs
}

// NewHardwareProvider wires the pulse channels, ADC readers, and digital
// input source into a Provider. The ADC reader funcs model the
// hardware-abstraction boundary: on real hardware they read a GPIO ADC
// pin, in tests they are stubbed.
func NewHardwareProvider(speedPulsesPerKm, enginePulsesPerRev, outputPulsesPerRev float64, readThrottleVoltage, readFluidVoltage func() float64, digital DigitalInputs) *HardwareProvider {
	return &HardwareProvider{
		speedPulse:          &PulseChannel{},
		enginePulse:         &PulseChannel{},
		outputPulse:         &PulseChannel{},
		speedPulsesPerKm:    speedPulsesPerKm,
		enginePulsesPerRev:  enginePulsesPerRev,
		outputPulsesPerRev:  outputPulsesPerRev,
		throttleEMA:         NewEMA(0.3),
		speedEMA:            NewEMA(0.3),
		readThrottleVoltage: readThrottleVoltage,
		readFluidVoltage:    readFluidVoltage,
		digital:             digital,
	}
}

// SpeedPulse, EnginePulse, and OutputPulse expose the raw pulse channels
// so an interrupt handler (or its simulated stand-in) can call
// RecordPulse on them.
func (h *HardwareProvider) SpeedPulse() *PulseChannel  { return h.speedPulse }
func (h *HardwareProvider) EnginePulse() *PulseChannel { return h.enginePulse }
func (h *HardwareProvider) OutputPulse() *PulseChannel { return h.outputPulse }

// Snapshot builds the conditioned view the core consumes this tick.
func (h *HardwareProvider) Snapshot() transmission.Snapshot {
	h.mu.Lock()
	defer h.mu.Unlock()

	now := nowUs()

	speedHz := h.speedPulse.FrequencyHz(now, SpeedOutputStaleUs)
	engineHz := h.enginePulse.FrequencyHz(now, EngineStaleUs)
	outputHz := h.outputPulse.FrequencyHz(now, SpeedOutputStaleUs)

	rawSpeed := SpeedFromFrequency(speedHz, h.speedPulsesPerKm)
	rawThrottle := ThrottleFromVoltage(h.readThrottleVoltage())

	snap := transmission.Snapshot{
		ThrottlePct: h.throttleEMA.Update(rawThrottle),
		SpeedKmh:    h.speedEMA.Update(rawSpeed),
		EngineRPM:   RPMFromFrequency(engineHz, h.enginePulsesPerRev),
		OutputRPM:   RPMFromFrequency(outputHz, h.outputPulsesPerRev),
		FluidTempC:  TempFromVoltage(h.readFluidVoltage()),
	}
	if h.digital != nil {
		snap.BrakePressed = h.digital.BrakePressed()
		snap.OverdriveEnabled = h.digital.OverdriveEnabled()
		snap.PowerMode = h.digital.PowerMode()
	}
	snap.Clamp()
	return snap
}
