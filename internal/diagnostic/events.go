package diagnostic

import (
	"sync"
	"time"
)

const maxEvents = 500

// Event is a single diagnostic log entry (e.g. a completed shift, a
// limp-mode latch).
type Event struct {
	Time    time.Time `json:"time"`
	Level   string    `json:"level"` // "info", "warn", "error"
	Message string    `json:"message"`
}

// EventLog is a bounded ring buffer of recent diagnostic events, read by
// the HTTP /events endpoint. Oldest entries drop first.
type EventLog struct {
	mu      sync.Mutex
	entries []Event
}

// NewEventLog returns an empty EventLog.
func NewEventLog() *EventLog {
	return &EventLog{entries: make([]Event, 0, maxEvents)}
}

// Add appends an event, dropping the oldest once the buffer is full.
func (l *EventLog) Add(level, message string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, Event{Time: time.Now(), Level: level, Message: message})
	if len(l.entries) > maxEvents {
		l.entries = l.entries[len(l.entries)-maxEvents:]
	}
}

// All returns a copy of all buffered events, oldest first.
func (l *EventLog) All() []Event {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Event, len(l.entries))
	copy(out, l.entries)
	return out
}
