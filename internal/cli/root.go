package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/clydeger/a340-controller/internal/version"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

var (
	cfgDiagAddr    string
	cfgConsolePort string
	cfgConsoleBaud int
	cfgVerbose     bool
	cfgLogFile     string
	cfgOD          bool
	cfgPowerMode   bool
)

// rootCmd is the base command when called without subcommands.
var rootCmd = &cobra.Command{
	Use:     "a340ctl",
	Short:   "a340ctl - A340E shift-control ECU",
	Version: version.FullVersion(),
	Long: fmt.Sprintf(`%s v%s
%s

Use subcommands for headless operation (run, bench, sensors, about).`,
		version.Name, version.Version, version.Description),
}

var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Show build and version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%s v%s\n", version.Name, version.FullVersion())
		fmt.Println()
		fmt.Println(version.Description)
		fmt.Printf("License:  %s\n", version.License)
		fmt.Println(version.Copyright)
		fmt.Printf("Source:   %s\n", version.URL)
		fmt.Printf("Git hash: %s\n", version.GitHash)
		fmt.Printf("Built:    %s\n", version.BuildTime)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgDiagAddr, "diag-addr", ":8340", "Diagnostic HTTP/WebSocket listen address")
	rootCmd.PersistentFlags().StringVar(&cfgConsolePort, "console-port", "", "Operator console serial port (e.g. /dev/ttyUSB0, COM3); empty disables the serial console")
	rootCmd.PersistentFlags().IntVar(&cfgConsoleBaud, "console-baud", 9600, "Operator console serial baud rate")
	rootCmd.PersistentFlags().BoolVarP(&cfgVerbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&cfgLogFile, "log-file", "", "Write log output to file")
	rootCmd.PersistentFlags().BoolVar(&cfgOD, "od-switch", true, "Initial state of the driver's overdrive switch")
	rootCmd.PersistentFlags().BoolVar(&cfgPowerMode, "power-mode", false, "Start in sport (power) shift map")
	rootCmd.AddCommand(aboutCmd)

	cobra.OnInitialize(initLogging)
}

// initLogging wires slog from --verbose and --log-file: a colorized
// tint handler for interactive terminal use, a plain text handler over
// stderr plus the file once a log file is configured.
func initLogging() {
	level := slog.LevelInfo
	if cfgVerbose {
		level = slog.LevelDebug
	}

	if cfgLogFile == "" {
		slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: level})))
		return
	}

	f, err := os.OpenFile(cfgLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file %s: %v\n", cfgLogFile, err)
		slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: level})))
		return
	}

	w := io.MultiWriter(os.Stderr, f)
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
