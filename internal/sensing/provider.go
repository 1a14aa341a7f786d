// Package sensing conditions raw sensor signals for the control core:
// pulse-period capture, EMA filtering, ADC-to-temperature conversion,
// and staleness detection. None of this is control logic; it only ever
// produces a transmission.Snapshot for the core to read.
package sensing

import "github.com/clydeger/a340-controller/internal/transmission"

// Provider is the narrow input interface the control core consumes.
// Snapshot must be pure from the core's perspective: no blocking, bounded
// time, monotonically updated.
type Provider interface {
	Snapshot() transmission.Snapshot
}
