package cli

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/clydeger/a340-controller/internal/actuation"
	"github.com/clydeger/a340-controller/internal/clock"
	"github.com/clydeger/a340-controller/internal/console"
	"github.com/clydeger/a340-controller/internal/control"
	"github.com/clydeger/a340-controller/internal/diagnostic"
	"github.com/clydeger/a340-controller/internal/sensing"
	"github.com/clydeger/a340-controller/internal/transmission"
	"github.com/spf13/cobra"
)

var (
	runSim   bool
	runTrace string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the shift-control loop",
	Long: `Runs the 50Hz shift-control task against the synthetic drive-cycle
simulator, serving the diagnostic HTTP/WebSocket surface and, if
--console-port is set, the operator serial console. --sim is required:
live hardware sensing is not wired in this build.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !runSim {
			return fmt.Errorf("live hardware sensing is not wired in this build; pass --sim to run against the drive-cycle simulator")
		}

		sim := sensing.NewSimulator()
		sim.SetOverdriveEnabled(cfgOD)
		sim.SetPowerMode(cfgPowerMode)

		outputs := []actuation.Actuator{actuation.NewLoggingActuator()}

		var trace *actuation.TraceWriter
		if runTrace != "" {
			var err error
			trace, err = actuation.NewTraceWriter(runTrace)
			if err != nil {
				return fmt.Errorf("failed to open trace file: %w", err)
			}
			defer trace.Close()
			outputs = append(outputs, trace)
			fmt.Printf("Tracing actuator output to: %s\n", runTrace)
		}

		combined := actuation.NewMultiActuator(outputs...)

		clk := clock.NewSystem()
		loop := control.NewLoop(sim, combined, clk, transmission.New())

		events := diagnostic.NewEventLog()
		hub := diagnostic.NewHub()
		go hub.Run()

		server := diagnostic.NewServer(loop, hub, events)
		loop.OnTick(server.OnTick)
		loop.OnShift(func(from, to int) {
			events.Add("info", fmt.Sprintf("shift %d -> %d", from, to))
		})

		if cfgConsolePort != "" {
			conn := console.NewSerialConn(cfgConsolePort, cfgConsoleBaud)
			if err := conn.Open(); err != nil {
				return fmt.Errorf("failed to open console port: %w", err)
			}
			defer conn.Close()

			cons := console.NewConsole(loop)
			reader, err := conn.Reader()
			if err != nil {
				return err
			}
			go func() {
				if err := cons.Serve(reader, consoleWriter{conn}); err != nil {
					slog.Warn("operator console closed", "error", err)
				}
			}()
			fmt.Printf("Operator console listening on: %s @ %d baud\n", cfgConsolePort, cfgConsoleBaud)
		}

		go func() {
			if err := server.ListenAndServe(cfgDiagAddr); err != nil {
				slog.Error("diagnostic server stopped", "error", err)
			}
		}()

		fmt.Printf("Diagnostic surface: http://%s/status (and /ws)\n", cfgDiagAddr)
		loop.Start()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		fmt.Println("\nStopping...")
		loop.Stop()
		return nil
	},
}

// consoleWriter adapts console.SerialConn.Write to io.Writer for the
// operator console's reply channel.
type consoleWriter struct {
	conn *console.SerialConn
}

func (w consoleWriter) Write(p []byte) (int, error) {
	return w.conn.Write(p)
}

func init() {
	runCmd.Flags().BoolVar(&runSim, "sim", false, "Run against the synthetic drive-cycle simulator instead of live hardware")
	runCmd.Flags().StringVar(&runTrace, "trace", "", "Write every commanded actuator output to this CSV file")
	rootCmd.AddCommand(runCmd)
}
