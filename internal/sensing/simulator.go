package sensing

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/clydeger/a340-controller/internal/transmission"
)

// Simulator generates a synthetic drive cycle for bench/demo use: an
// idle->accel->cruise->decel->idle loop over throttle, speed, and
// temperature, with a little sensor noise on top.
type Simulator struct {
	mu               sync.Mutex
	tick             float64 // simulated seconds
	rng              *rand.Rand
	overdriveEnabled bool
	powerMode        bool
	brakePressed     bool
}

// NewSimulator returns a Simulator starting in the idle phase of its
// 60-second drive cycle, OD on, normal shift map.
func NewSimulator() *Simulator {
	return &Simulator{
		rng:              rand.New(rand.NewSource(time.Now().UnixNano())),
		overdriveEnabled: true,
	}
}

// SetOverdriveEnabled models the driver's OD switch.
func (s *Simulator) SetOverdriveEnabled(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.overdriveEnabled = v
}

// SetPowerMode models the driver's normal/sport shift-map switch.
func (s *Simulator) SetPowerMode(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.powerMode = v
}

// SetBrakePressed models the brake pedal switch.
func (s *Simulator) SetBrakePressed(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.brakePressed = v
}

// Snapshot advances the drive cycle by one simulated tick (~20ms, 50Hz)
// and returns the resulting Snapshot.
//
// Cycle (60s loop): 0-10s idle, 10-20s acceleration, 20-40s cruise,
// 40-50s deceleration, 50-60s idle again.
func (s *Simulator) Snapshot() transmission.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tick += 0.02

	cyclePos := math.Mod(s.tick, 60.0)

	var speedTarget, throttleTarget, tempTarget float64

	switch {
	case cyclePos < 10:
		speedTarget, throttleTarget, tempTarget = 0, 0, 90
	case cyclePos < 20:
		progress := (cyclePos - 10) / 10.0
		speedTarget = progress * 45
		throttleTarget = 20 + progress*60
		tempTarget = 90
	case cyclePos < 40:
		speedTarget = 95
		throttleTarget = 25
		tempTarget = 90
	case cyclePos < 50:
		progress := (cyclePos - 40) / 10.0
		speedTarget = 95 * (1 - progress)
		throttleTarget = 25 * (1 - progress)
		tempTarget = 90
	default:
		speedTarget, throttleTarget, tempTarget = 0, 0, 90
	}

	noise := func(base, amplitude float64) float64 {
		return base + (s.rng.Float64()-0.5)*2*amplitude
	}

	snap := transmission.Snapshot{
		ThrottlePct:      noise(throttleTarget, 1),
		SpeedKmh:         noise(speedTarget, 1),
		EngineRPM:        noise(850+speedTarget*40, 50),
		OutputRPM:        noise(speedTarget*30, 20),
		FluidTempC:       noise(tempTarget, 1),
		BrakePressed:     s.brakePressed,
		OverdriveEnabled: s.overdriveEnabled,
		PowerMode:        s.powerMode,
	}
	snap.Clamp()
	return snap
}
