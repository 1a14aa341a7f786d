// Package console implements the operator command port: a narrow,
// bench-only command channel accepting force_gear, reset_adaptive, and
// set_limp. It bypasses the shift state machine entirely and is intended
// for bench use, never for in-vehicle operation.
package console

import (
	"bufio"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"go.bug.st/serial"
)

// DefaultBaudRate is the bench console's serial rate. The console is a
// plain ASCII line protocol, so a conventional rate serves.
const DefaultBaudRate = 9600

// SerialConn wraps a serial port carrying the operator command console:
// mutex-guarded open/close/read/write with read timeouts.
type SerialConn struct {
	mu       sync.Mutex
	port     serial.Port
	portName string
	baudRate int
	isOpen   bool
}

// NewSerialConn creates a new serial connection (not yet opened).
func NewSerialConn(portName string, baudRate int) *SerialConn {
	if baudRate <= 0 {
		baudRate = DefaultBaudRate
	}
	return &SerialConn{portName: portName, baudRate: baudRate}
}

// Open opens the serial port 8N1, no flow control.
func (sc *SerialConn) Open() error {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.isOpen {
		return nil
	}

	mode := &serial.Mode{
		BaudRate: sc.baudRate,
		DataBits: 8,
		StopBits: serial.OneStopBit,
		Parity:   serial.NoParity,
	}

	port, err := serial.Open(sc.portName, mode)
	if err != nil {
		return fmt.Errorf("failed to open console port %s: %w", sc.portName, err)
	}
	if err := port.SetReadTimeout(500 * time.Millisecond); err != nil {
		port.Close()
		return fmt.Errorf("failed to set read timeout: %w", err)
	}

	sc.port = port
	sc.isOpen = true
	slog.Info("operator console port opened", "port", sc.portName, "baud", sc.baudRate)
	return nil
}

// Close closes the serial port.
func (sc *SerialConn) Close() error {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if !sc.isOpen {
		return nil
	}
	err := sc.port.Close()
	sc.isOpen = false
	sc.port = nil
	return err
}

// Reader returns a buffered line reader over the open port.
func (sc *SerialConn) Reader() (*bufio.Reader, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	if !sc.isOpen {
		return nil, fmt.Errorf("console port not open")
	}
	return bufio.NewReader(sc.port), nil
}

// Write sends raw bytes to the serial port (e.g. a command reply).
func (sc *SerialConn) Write(data []byte) (int, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	if !sc.isOpen {
		return 0, fmt.Errorf("console port not open")
	}
	return sc.port.Write(data)
}

// ListPorts returns available serial ports on the system.
func ListPorts() ([]string, error) {
	ports, err := serial.GetPortsList()
	if err != nil {
		return nil, fmt.Errorf("failed to list serial ports: %w", err)
	}
	return ports, nil
}

// splitLine trims the trailing newline/carriage-return from a line read
// off the console port.
func splitLine(s string) string {
	return strings.TrimRight(s, "\r\n")
}
