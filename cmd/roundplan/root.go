package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/roundplan/config"
	"github.com/katalvlaran/roundplan/metrics"
)

// app is the state shared by every subcommand of one invocation.
type app struct {
	stdout io.Writer
	stderr io.Writer

	logFormat   string
	logLevel    string
	metricsFile string

	runID    string
	logger   *slog.Logger
	recorder *metrics.Recorder
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{stdout: stdout, stderr: stderr}
}

// rootCmd wires the subcommands. Metrics are flushed by the caller so that
// failed and infeasible runs are recorded too.
func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "roundplan",
		Short:         "Schedule a double round-robin league into rounds",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.logFormat, "log-format", "text", "log format: text or json")
	pf.StringVar(&a.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	pf.StringVar(&a.metricsFile, "metrics-file", "", "write solver metrics in Prometheus text format to this file")

	root.AddCommand(newSolveCmd(a), newGraphCmd(a), newInitCmd(a))

	return root
}

// setup builds the logger and metrics recorder from the persistent flags.
func (a *app) setup() error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(a.logLevel)); err != nil {
		return fmt.Errorf("--log-level %q: %w", a.logLevel, err)
	}
	opts := &slog.HandlerOptions{Level: level}

	var h slog.Handler
	switch strings.ToLower(a.logFormat) {
	case "text":
		h = slog.NewTextHandler(a.stderr, opts)
	case "json":
		h = slog.NewJSONHandler(a.stderr, opts)
	default:
		return fmt.Errorf("--log-format %q: want text or json", a.logFormat)
	}

	a.runID = uuid.NewString()
	a.logger = slog.New(h).With("run_id", a.runID)
	a.recorder = metrics.NewRecorder()

	return nil
}

func (a *app) flushMetrics() error {
	if a.metricsFile == "" || a.recorder == nil {
		return nil
	}
	f, err := os.Create(a.metricsFile)
	if err != nil {
		return fmt.Errorf("failed to create the metrics file: %w", err)
	}
	if err = a.recorder.WriteText(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write the metrics file: %w", err)
	}

	return f.Close()
}

// loadLeague reads path, or returns the default league when path is empty.
func loadLeague(path string) (*config.League, error) {
	c := config.Default()
	if path != "" {
		var err error
		if c, err = config.Load(path); err != nil {
			return nil, err
		}
	}
	lg, err := c.Build()
	if err != nil {
		if path != "" {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return nil, err
	}

	return lg, nil
}
