package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

// benchCommands mirrors the verbs the operator console (internal/console)
// and the diagnostic HTTP surface (internal/diagnostic) both accept: a
// short name to argument-shape mapping, dispatched over the wire rather
// than executed in-process.
var benchCommands = map[string]struct {
	desc     string
	needsArg bool
}{
	"force-gear":     {"Force the transmission into a specific gear (1..4), bypassing the shift state machine", true},
	"reset-adaptive": {"Clear all learned adaptive trim offsets", false},
	"set-limp":       {"Set or clear limp mode (on|off)", true},
}

var (
	benchAddr string
	benchArg  string
)

var benchCmd = &cobra.Command{
	Use:   "bench <command>",
	Short: "Send an operator command to a running a340ctl instance",
	Long: `Sends a bench/operator command to a running a340ctl run instance over
its diagnostic HTTP surface (POST /command). Equivalent to typing the
same verb at the serial operator console; bench use only, never for
in-vehicle operation.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			fmt.Println("Available bench commands:")
			fmt.Println()
			for _, name := range []string{"force-gear", "reset-adaptive", "set-limp"} {
				c := benchCommands[name]
				fmt.Printf("  %-15s %s\n", name, c.desc)
			}
			fmt.Println()
			fmt.Println("Usage: a340ctl bench <command> [--arg VALUE]")
			return nil
		}

		name := args[0]
		bc, ok := benchCommands[name]
		if !ok {
			return fmt.Errorf("unknown bench command: %s", name)
		}
		if bc.needsArg && benchArg == "" {
			return fmt.Errorf("%s requires --arg", name)
		}

		body := map[string]any{}
		switch name {
		case "force-gear":
			gear, err := strconv.Atoi(benchArg)
			if err != nil || gear < 1 || gear > 4 {
				return fmt.Errorf("--arg must be an integer 1..4")
			}
			body["command"] = "force_gear"
			body["gear"] = gear
		case "reset-adaptive":
			body["command"] = "reset_adaptive"
		case "set-limp":
			switch benchArg {
			case "on", "true", "1":
				body["command"] = "set_limp"
				body["limp"] = true
			case "off", "false", "0":
				body["command"] = "set_limp"
				body["limp"] = false
			default:
				return fmt.Errorf("--arg must be on|off")
			}
		}

		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}

		url := fmt.Sprintf("http://%s/command", benchAddr)
		client := &http.Client{Timeout: 5 * time.Second}
		resp, err := client.Post(url, "application/json", bytes.NewReader(payload))
		if err != nil {
			return fmt.Errorf("bench command failed: %w", err)
		}
		defer resp.Body.Close()

		respBody, _ := io.ReadAll(resp.Body)
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("bench command rejected (%s): %s", resp.Status, respBody)
		}

		fmt.Printf("OK %s\n", respBody)
		return nil
	},
}

func init() {
	benchCmd.Flags().StringVar(&benchAddr, "addr", "localhost:8340", "Diagnostic HTTP address of the running instance")
	benchCmd.Flags().StringVar(&benchArg, "arg", "", "Argument for the command (gear number, on/off)")
	rootCmd.AddCommand(benchCmd)
}
