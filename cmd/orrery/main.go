package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/orrery/internal/config"
	"github.com/san-kum/orrery/internal/export"
	"github.com/san-kum/orrery/internal/gui"
	"github.com/san-kum/orrery/internal/sim"
	"github.com/san-kum/orrery/internal/trace"
	"github.com/san-kum/orrery/internal/tui"
)

// globalFlags are the persistent flags shared by every command.
type globalFlags struct {
	configFile string
	preset     string
	verbose    bool
}

type traceFlags struct {
	frames int
	dt     float64
	speed  float64
	csv    bool
	axis   string
	height int
}

type snapshotFlags struct {
	frames int
	dt     float64
}

// main opens the window when no subcommand is given. Settings errors are
// printed and exit with status 1.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. Every command owns its flag
// values so defaults registered by one command never leak into another.
func newRootCmd() *cobra.Command {
	g := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:          "orrery",
		Short:        "animated solar system",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, logger, err := g.setup(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			gui.Run(s, logger)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&g.configFile, "config", "", "settings file (json or yaml)")
	rootCmd.PersistentFlags().StringVar(&g.preset, "preset", "", "use a built-in settings preset")
	rootCmd.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "log every interaction")

	rootCmd.AddCommand(
		newTUICmd(g),
		newBodiesCmd(g),
		newPresetsCmd(),
		newTraceCmd(g),
		newSnapshotCmd(g),
	)
	return rootCmd
}

func newTUICmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "run the simulation in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := g.loadSettings()
			if err != nil {
				return err
			}
			return tui.Run(sim.New(s, log.NewNopLogger()))
		},
	}
}

func newBodiesCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "bodies",
		Short: "list the configured bodies",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := g.loadSettings()
			if err != nil {
				return err
			}
			return listBodies(cmd.OutOrStdout(), sim.New(s, nil))
		},
	}
}

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "list built-in presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, n := range sortedPresets() {
				fmt.Fprintln(cmd.OutOrStdout(), n)
			}
		},
	}
}

func newTraceCmd(g *globalFlags) *cobra.Command {
	f := &traceFlags{}
	cmd := &cobra.Command{
		Use:   "trace [body]",
		Short: "run headless and plot one body's path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrace(cmd.OutOrStdout(), cmd.ErrOrStderr(), g, f, args[0])
		},
	}
	cmd.Flags().IntVar(&f.frames, "frames", 600, "frames to simulate")
	cmd.Flags().Float64Var(&f.dt, "dt", 1.0/60, "seconds per frame")
	cmd.Flags().Float64Var(&f.speed, "speed", 1, "time scale (one of the speed levels)")
	cmd.Flags().BoolVar(&f.csv, "csv", false, "write samples as csv instead of a plot")
	cmd.Flags().StringVar(&f.axis, "axis", "x", "series to plot: x, y or angle")
	cmd.Flags().IntVar(&f.height, "height", 15, "plot height")
	return cmd
}

func newSnapshotCmd(g *globalFlags) *cobra.Command {
	f := &snapshotFlags{}
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "write one frame as svg to stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := g.setup(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			for i := 0; i < f.frames; i++ {
				s.Update(f.dt, nil)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), export.Snapshot(s))
			return err
		},
	}
	cmd.Flags().IntVar(&f.frames, "frames", 0, "frames to simulate before the snapshot")
	cmd.Flags().Float64Var(&f.dt, "dt", 1.0/60, "seconds per frame")
	return cmd
}

func (g *globalFlags) newLogger(w io.Writer) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)
	if g.verbose {
		return level.NewFilter(logger, level.AllowDebug())
	}
	return level.NewFilter(logger, level.AllowInfo())
}

func sortedPresets() []string {
	names := config.ListPresets()
	sort.Strings(names)
	return names
}

func (g *globalFlags) loadSettings() (*config.Settings, error) {
	switch {
	case g.configFile != "" && g.preset != "":
		return nil, fmt.Errorf("--config and --preset are mutually exclusive")
	case g.configFile != "":
		return config.Load(g.configFile)
	case g.preset != "":
		s := config.GetPreset(g.preset)
		if s == nil {
			return nil, fmt.Errorf("unknown preset %q (available: %s)", g.preset, strings.Join(sortedPresets(), ", "))
		}
		return s, nil
	}
	return config.DefaultSettings(), nil
}

func (g *globalFlags) setup(logw io.Writer) (*sim.Simulation, log.Logger, error) {
	logger := g.newLogger(logw)
	s, err := g.loadSettings()
	if err != nil {
		level.Error(logger).Log("msg", "invalid settings", "err", err)
		return nil, nil, err
	}
	level.Info(logger).Log(
		"msg", "settings loaded",
		"bodies", len(s.Planets),
		"width", s.WindowWidth,
		"height", s.WindowHeight,
		"follow", s.Follow,
		"smoothing", s.Smoothing,
	)
	return sim.New(s, logger), logger, nil
}

func listBodies(out io.Writer, s *sim.Simulation) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tORBIT\tSIZE\tRAD/S\tPERIOD(s)\tCOLOR")
	for _, b := range s.System.Bodies {
		fmt.Fprintf(w, "%s\t%.0f\t%.0f\t%.4f\t%.1f\t%d,%d,%d\n",
			b.Name, b.OrbitRadius, b.Size, b.AngularSpeed, b.Period(1),
			b.Color.R, b.Color.G, b.Color.B)
	}
	return w.Flush()
}

func runTrace(out, logw io.Writer, g *globalFlags, f *traceFlags, body string) error {
	s, logger, err := g.setup(logw)
	if err != nil {
		return err
	}

	samples, err := trace.Run(s, trace.Options{Body: body, Frames: f.frames, Dt: f.dt, Speed: f.speed})
	if err != nil {
		return err
	}
	level.Info(logger).Log("msg", "trace complete", "body", body, "samples", len(samples), "time", s.Time)

	if f.csv {
		return trace.WriteCSV(out, samples)
	}

	var series []float64
	switch f.axis {
	case "x":
		series = trace.Column(samples, func(p trace.Sample) float64 { return p.X })
	case "y":
		series = trace.Column(samples, func(p trace.Sample) float64 { return p.Y })
	case "angle":
		series = trace.Column(samples, func(p trace.Sample) float64 { return p.Angle })
	default:
		return fmt.Errorf("unknown axis %q", f.axis)
	}

	graph := asciigraph.Plot(series,
		asciigraph.Height(f.height),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("%s %s over %d frames at %gx", body, f.axis, f.frames, f.speed)),
	)
	_, err = fmt.Fprintln(out, graph)
	return err
}
