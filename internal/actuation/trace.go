package actuation

import (
	"encoding/csv"
	"fmt"
	"os"
	"sync"
	"time"
)

// TraceWriter writes every commanded actuator output to a CSV file.
// Unlike a sensor logger it traces the core's *outputs*, one row per
// executed command rather than one row per tick, so a bench operator can
// see exactly when each solenoid/duty changed.
type TraceWriter struct {
	mu     sync.Mutex
	file   *os.File
	writer *csv.Writer
	count  int
}

// NewTraceWriter creates a new trace CSV file and writes its header row.
func NewTraceWriter(filename string) (*TraceWriter, error) {
	f, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create trace file %s: %w", filename, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write([]string{"Timestamp", "Field", "Value"}); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write trace header: %w", err)
	}
	w.Flush()

	return &TraceWriter{file: f, writer: w}, nil
}

func (t *TraceWriter) writeRow(field, value string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	row := []string{time.Now().Format("2006-01-02T15:04:05.000"), field, value}
	if err := t.writer.Write(row); err != nil {
		return
	}
	t.count++
	t.writer.Flush()
}

func (t *TraceWriter) SetGearSolenoids(s1, s2 bool) {
	t.writeRow("gear_solenoids", fmt.Sprintf("s1=%v s2=%v", s1, s2))
}

func (t *TraceWriter) SetAccumulatorDuty(pct int) {
	t.writeRow("accumulator_duty_pct", fmt.Sprintf("%d", pct))
}

func (t *TraceWriter) SetLockupDuty(pct int) {
	t.writeRow("lockup_duty_pct", fmt.Sprintf("%d", pct))
}

// Count returns the number of rows written so far.
func (t *TraceWriter) Count() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.count
}

// Close flushes and closes the trace file.
func (t *TraceWriter) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.writer.Flush()
	if err := t.writer.Error(); err != nil {
		t.file.Close()
		return fmt.Errorf("trace flush error: %w", err)
	}
	return t.file.Close()
}
