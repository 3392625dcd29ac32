package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/san-kum/plexus/internal/config"
	"github.com/san-kum/plexus/internal/field"
	"github.com/san-kum/plexus/internal/gui"
	"github.com/san-kum/plexus/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	configFile string
	preset     string
	seed       int64
	count      int
	maxDist    float64

	theme string

	// headless run
	pointer string
	svgOut  string
	warmup  int

	exportOut string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd registers the plexus commands. Without a subcommand plexus
// opens the desktop window.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "plexus",
		Short:        "animated particle network field",
		SilenceUsage: true,
		RunE:         runGUI,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&dataDir, "data", ".plexus", "data directory")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.Int64Var(&seed, "seed", 0, "random seed (0 picks one)")
	pf.IntVar(&count, "count", field.DefaultCount, "particles per build")
	pf.Float64Var(&maxDist, "max-dist", field.DefaultMaxDist, "link distance")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "open the field in a desktop window",
		Args:  cobra.NoArgs,
		RunE:  runGUI,
	}
	for _, c := range []*cobra.Command{rootCmd, guiCmd} {
		c.Flags().String("backend", gui.DefaultBackend, "window backend ("+strings.Join(gui.Names(), "|")+")")
		c.Flags().Int("width", config.DefaultWidth, "window width")
		c.Flags().Int("height", config.DefaultHeight, "window height")
		c.Flags().Int("fps", config.DefaultFPS, "frame rate")
	}

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run the field in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runLive,
	}
	liveCmd.Flags().Int("fps", liveFPS, "frame rate (default: config file fps, else 30)")
	liveCmd.Flags().StringVar(&theme, "theme", "neural", "color theme ("+strings.Join(viz.ThemeNames(), "|")+")")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "step the field headless and record frame statistics",
		Args:  cobra.NoArgs,
		RunE:  runHeadless,
	}
	runCmd.Flags().Int("ticks", 600, "frames to run")
	runCmd.Flags().Int("width", config.DefaultWidth, "field width")
	runCmd.Flags().Int("height", config.DefaultHeight, "field height")
	runCmd.Flags().Int("fps", config.DefaultFPS, "simulated frame rate")
	runCmd.Flags().StringVar(&pointer, "pointer", "", "fixed pointer position x,y")
	runCmd.Flags().StringVar(&svgOut, "svg", "", "write the last frame as svg")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot link counts of a run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a run as json",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default stdout)")

	snapshotCmd := &cobra.Command{
		Use:   "snapshot [out.svg]",
		Short: "write one painted frame as svg",
		Args:  cobra.ExactArgs(1),
		RunE:  snapshot,
	}
	snapshotCmd.Flags().Int("width", config.DefaultWidth, "field width")
	snapshotCmd.Flags().Int("height", config.DefaultHeight, "field height")
	snapshotCmd.Flags().IntVar(&warmup, "warmup", 0, "ticks to step before painting")
	snapshotCmd.Flags().StringVar(&pointer, "pointer", "", "fixed pointer position x,y")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage config files",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the default config",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			if err := config.Save(args[0], cfg); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", args[0])
			return nil
		},
	}
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(guiCmd, liveCmd, runCmd, listCmd, plotCmd, exportCmd, snapshotCmd, presetsCmd, configCmd, newSweepCmd())
	return rootCmd
}

// resolveConfig layers the preset, the config file and explicit flags, in
// that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("%w: %s (available: %v)", config.ErrUnknownPreset, preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.LoadOver(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("count") {
		cfg.Field.Count = count
	}
	if flags.Changed("max-dist") {
		cfg.Field.MaxDist = maxDist
	}
	if flags.Changed("backend") {
		cfg.Window.Backend, _ = flags.GetString("backend")
	}
	if flags.Changed("width") {
		cfg.Window.Width, _ = flags.GetInt("width")
	}
	if flags.Changed("height") {
		cfg.Window.Height, _ = flags.GetInt("height")
	}
	if flags.Changed("fps") {
		cfg.Window.FPS, _ = flags.GetInt("fps")
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg, nil
}

func newSimulator(cfg *config.Config) (*field.Simulator, error) {
	fc, err := cfg.FieldConfig()
	if err != nil {
		return nil, err
	}
	return field.New(fc, field.WithSeed(cfg.Seed))
}

func parsePointer(s string) (field.Pointer, error) {
	if s == "" {
		return field.IdlePointer, nil
	}
	x, y, ok := strings.Cut(s, ",")
	if !ok {
		return field.Pointer{}, fmt.Errorf("pointer %q: want x,y", s)
	}
	px, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
	if err != nil {
		return field.Pointer{}, fmt.Errorf("pointer x: %w", err)
	}
	py, err := strconv.ParseFloat(strings.TrimSpace(y), 64)
	if err != nil {
		return field.Pointer{}, fmt.Errorf("pointer y: %w", err)
	}
	return field.Pointer{X: px, Y: py}, nil
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	sim, err := newSimulator(cfg)
	if err != nil {
		return err
	}
	return gui.Run(cfg.Window.Backend, sim, gui.Options{
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		FPS:    cfg.Window.FPS,
		Title:  cfg.Window.Title,
	})
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	sim, err := newSimulator(cfg)
	if err != nil {
		return err
	}
	return viz.Run(sim, liveOptions(cmd, cfg))
}

// liveFPS is the terminal frame rate when neither --fps nor a config file
// sets one.
const liveFPS = 30

func liveOptions(cmd *cobra.Command, cfg *config.Config) viz.Options {
	fps := liveFPS
	if cmd.Flags().Changed("fps") || configFile != "" {
		fps = cfg.Window.FPS
	}
	return viz.Options{FPS: fps, Theme: theme}
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
