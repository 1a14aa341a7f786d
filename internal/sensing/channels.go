package sensing

// Channel describes one conditioned sensor input consumed by the control
// core: a Snapshot field's slug, unit, and physical range after
// conditioning.
type Channel struct {
	Slug        string
	Description string
	Unit        string
	Min, Max    float64
}

// DefaultChannels returns the fixed table of conditioned channels, in
// Snapshot field order.
func DefaultChannels() []Channel {
	return []Channel{
		{Slug: "TPS", Description: "Throttle position", Unit: "%", Min: 0, Max: 100},
		{Slug: "VSS", Description: "Vehicle speed", Unit: "km/h", Min: 0, Max: 250},
		{Slug: "RPME", Description: "Engine speed", Unit: "rpm", Min: 0, Max: 8000},
		{Slug: "RPMO", Description: "Output shaft speed", Unit: "rpm", Min: 0, Max: 6000},
		{Slug: "TEMP", Description: "Transmission fluid temperature", Unit: "degC", Min: -40, Max: 150},
		{Slug: "BRK", Description: "Brake pedal switch", Unit: "bool", Min: 0, Max: 1},
		{Slug: "OD", Description: "Overdrive switch", Unit: "bool", Min: 0, Max: 1},
		{Slug: "PWR", Description: "Power (sport) mode switch", Unit: "bool", Min: 0, Max: 1},
	}
}
