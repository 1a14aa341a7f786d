package console

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
)

// Controller is the subset of control.Loop the operator console can
// drive. Kept as a narrow interface so tests don't need a real Loop.
type Controller interface {
	ForceGear(gear int)
	ResetAdaptive()
	SetLimp(limp bool)
}

// validCommands is the whitelist of accepted operator command verbs;
// unrecognized input is rejected rather than acted on.
var validCommands = map[string]bool{
	"force_gear":     true,
	"reset_adaptive": true,
	"set_limp":       true,
}

// Console reads newline-terminated operator commands from a line reader
// and dispatches them against a Controller. Bench use only.
type Console struct {
	ctrl Controller
}

// NewConsole returns a Console bound to the given Controller.
func NewConsole(ctrl Controller) *Console {
	return &Console{ctrl: ctrl}
}

// Dispatch parses and executes a single command line, returning the text
// reply to send back to the operator.
func (c *Console) Dispatch(line string) string {
	line = splitLine(strings.TrimSpace(line))
	if line == "" {
		return ""
	}
	fields := strings.Fields(line)
	verb := strings.ToLower(fields[0])

	if !validCommands[verb] {
		return fmt.Sprintf("ERR unknown command %q", fields[0])
	}

	switch verb {
	case "force_gear":
		if len(fields) != 2 {
			return "ERR force_gear requires one argument (1..4)"
		}
		gear, err := strconv.Atoi(fields[1])
		if err != nil || gear < 1 || gear > 4 {
			return "ERR force_gear argument must be 1..4"
		}
		c.ctrl.ForceGear(gear)
		return fmt.Sprintf("OK force_gear %d", gear)

	case "reset_adaptive":
		c.ctrl.ResetAdaptive()
		return "OK reset_adaptive"

	case "set_limp":
		if len(fields) != 2 {
			return "ERR set_limp requires one argument (on|off)"
		}
		var limp bool
		switch strings.ToLower(fields[1]) {
		case "on", "true", "1":
			limp = true
		case "off", "false", "0":
			limp = false
		default:
			return "ERR set_limp argument must be on|off"
		}
		c.ctrl.SetLimp(limp)
		return fmt.Sprintf("OK set_limp %v", limp)
	}

	return "ERR unhandled command"
}

// Serve reads commands line by line from r and writes replies to w until
// r returns io.EOF or an error.
func (c *Console) Serve(r *bufio.Reader, w io.Writer) error {
	for {
		line, err := r.ReadString('\n')
		if len(line) > 0 {
			reply := c.Dispatch(line)
			if reply != "" {
				if _, werr := fmt.Fprintf(w, "%s\n", reply); werr != nil {
					return fmt.Errorf("console write failed: %w", werr)
				}
			}
		}
		if err != nil {
			if err == io.EOF {
				return nil
			}
			slog.Debug("console read error", "error", err)
			return fmt.Errorf("console read failed: %w", err)
		}
	}
}
