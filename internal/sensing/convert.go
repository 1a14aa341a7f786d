package sensing

// ADC/pulse conditioning: raw reading in, physical unit out. Throttle and
// speed are clamped to their documented ranges here; temperature and RPM
// are returned unclamped.

// TempFromVoltage converts a thermistor ADC reading to Celsius using the
// sensor's linear approximation, (v - 0.5) * 100.
func TempFromVoltage(v float64) float64 {
	return (v - 0.5) * 100
}

// ThrottleFromVoltage converts a 0-5V throttle-position-sensor reading to
// a 0..100 percentage, clamped to range.
func ThrottleFromVoltage(v float64) float64 {
	pct := v / 5.0 * 100.0
	return clamp(pct, 0, 100)
}

// SpeedFromFrequency converts a vehicle-speed pulse frequency (Hz) to
// km/h using the sensor's pulses-per-km constant.
func SpeedFromFrequency(hz, pulsesPerKm float64) float64 {
	if pulsesPerKm <= 0 {
		return 0
	}
	kmh := hz * 3600.0 / pulsesPerKm
	return clamp(kmh, 0, 250)
}

// RPMFromFrequency converts a crank/output-shaft pulse frequency (Hz) to
// revolutions per minute given pulses per revolution.
func RPMFromFrequency(hz, pulsesPerRev float64) float64 {
	if pulsesPerRev <= 0 {
		return 0
	}
	return hz * 60.0 / pulsesPerRev
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
