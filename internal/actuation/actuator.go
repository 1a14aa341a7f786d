// Package actuation defines the Actuator output interface and the bench
// adapters that implement it. No control decisions live here; these are
// thin writers.
package actuation

import "log/slog"

// Actuator is the narrow output interface the control core writes to.
// Duty values are whole percent 0..100; the hardware layer maps them to
// 300Hz PWM.
type Actuator interface {
	SetGearSolenoids(s1, s2 bool)
	SetAccumulatorDuty(pct int)
	SetLockupDuty(pct int)
}

// LoggingActuator logs every commanded output via slog instead of
// driving real PWM/GPIO hardware. It is the bench/simulation stand-in
// for the hardware abstraction layer.
type LoggingActuator struct{}

// NewLoggingActuator returns an Actuator that only logs.
func NewLoggingActuator() *LoggingActuator {
	return &LoggingActuator{}
}

func (a *LoggingActuator) SetGearSolenoids(s1, s2 bool) {
	slog.Debug("actuator: gear solenoids", "s1", s1, "s2", s2)
}

func (a *LoggingActuator) SetAccumulatorDuty(pct int) {
	slog.Debug("actuator: accumulator duty", "pct", pct)
}

func (a *LoggingActuator) SetLockupDuty(pct int) {
	slog.Debug("actuator: lockup duty", "pct", pct)
}

// MultiActuator fans a single Actuator call out to several underlying
// actuators (e.g. a LoggingActuator plus a TraceWriter).
type MultiActuator struct {
	targets []Actuator
}

// NewMultiActuator combines zero or more actuators into one.
func NewMultiActuator(targets ...Actuator) *MultiActuator {
	return &MultiActuator{targets: targets}
}

func (m *MultiActuator) SetGearSolenoids(s1, s2 bool) {
	for _, t := range m.targets {
		t.SetGearSolenoids(s1, s2)
	}
}

func (m *MultiActuator) SetAccumulatorDuty(pct int) {
	for _, t := range m.targets {
		t.SetAccumulatorDuty(pct)
	}
}

func (m *MultiActuator) SetLockupDuty(pct int) {
	for _, t := range m.targets {
		t.SetLockupDuty(pct)
	}
}
