package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/plexus/internal/config"
	"github.com/san-kum/plexus/internal/export"
	"github.com/san-kum/plexus/internal/field"
	"github.com/san-kum/plexus/internal/metrics"
	"github.com/san-kum/plexus/internal/storage"
	"github.com/spf13/cobra"
)

// runHeadless drives the field through a Loop with a synthetic frame clock
// and saves the per-frame statistics.
func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	sim, err := newSimulator(cfg)
	if err != nil {
		return err
	}
	ptr, err := parsePointer(pointer)
	if err != nil {
		return err
	}

	ticks, err := cmd.Flags().GetInt("ticks")
	if err != nil {
		return err
	}
	ticks = max(ticks, 0)

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	set := metrics.Standard()
	history := metrics.NewHistory(max(ticks, 1))
	sim.AddObserver(set)
	sim.AddObserver(history)

	sim.Resize(float64(cfg.Window.Width), float64(cfg.Window.Height), 1)
	sim.SetPointer(ptr.X, ptr.Y)

	var surface field.Surface = field.Discard
	var svg *export.SVG
	if svgOut != "" {
		svg = export.NewSVG(float64(cfg.Window.Width), float64(cfg.Window.Height))
		surface = svg
	}

	fps := cfg.Window.FPS
	if fps <= 0 {
		fps = config.DefaultFPS
	}
	frames := make(chan time.Time, ticks)
	start := time.Now()
	for i := 0; i < ticks; i++ {
		frames <- start.Add(time.Duration(i) * time.Second / time.Duration(fps))
	}
	close(frames)

	fmt.Printf("running %d ticks on a %dx%d field...\n", ticks, cfg.Window.Width, cfg.Window.Height)
	loop := field.Loop{Sim: sim, Surface: surface, Frames: frames}
	if err := loop.Run(cmd.Context()); err != nil {
		return err
	}
	elapsed := time.Since(start)

	meta := storage.RunMetadata{
		Preset:  preset,
		Seed:    cfg.Seed,
		Width:   float64(cfg.Window.Width),
		Height:  float64(cfg.Window.Height),
		Ticks:   int(sim.Ticks()),
		Count:   cfg.Field.Count,
		MaxDist: cfg.Field.MaxDist,
		Metrics: set.Values(),
	}
	if ptr != field.IdlePointer {
		meta.Pointer = &ptr
	}
	runID, err := st.Save(meta, history.Frames())
	if err != nil {
		return err
	}

	if svg != nil {
		if err := svg.Save(svgOut); err != nil {
			return err
		}
		fmt.Printf("svg: %s\n", svgOut)
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Println("\nmetrics:")
	for _, name := range sortedKeys(meta.Metrics) {
		fmt.Printf("  %s: %.6f\n", name, meta.Metrics[name])
	}
	return nil
}

func snapshot(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	sim, err := newSimulator(cfg)
	if err != nil {
		return err
	}
	ptr, err := parsePointer(pointer)
	if err != nil {
		return err
	}

	sim.Resize(float64(cfg.Window.Width), float64(cfg.Window.Height), 1)
	sim.SetPointer(ptr.X, ptr.Y)
	for i := 0; i < warmup; i++ {
		sim.Step()
	}

	svg := export.NewSVG(float64(cfg.Window.Width), float64(cfg.Window.Height))
	sim.Render(svg)
	if err := svg.Save(args[0]); err != nil {
		return err
	}
	fmt.Printf("wrote %s: %d particles, %d links\n", args[0], svg.Circles(), svg.Lines())
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPRESET\tTIME\tSIZE\tTICKS\tCOUNT\tLINKS")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.0fx%.0f\t%d\t%d\t%.1f\n",
			run.ID,
			orDash(run.Preset),
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Width, run.Height,
			run.Ticks,
			run.Count,
			run.Metrics["links_mean"],
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	frames, err := st.LoadFrames(runID)
	if err != nil {
		return err
	}
	if len(frames) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("field: %.0fx%.0f, %d particles, max_dist %.0f\n", meta.Width, meta.Height, meta.Count, meta.MaxDist)
	fmt.Printf("frames: %d\n\n", len(frames))

	links := make([]float64, len(frames))
	alpha := make([]float64, len(frames))
	for i, f := range frames {
		links[i] = float64(f.Links)
		alpha[i] = f.MeanAlpha
	}

	for _, series := range []struct {
		data    []float64
		caption string
	}{
		{links, "links per frame"},
		{alpha, "mean link opacity"},
	} {
		graph := asciigraph.Plot(series.data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(series.caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	if exportOut == "" {
		return st.ExportJSON(os.Stdout, args[0])
	}
	if err := st.ExportJSONFile(exportOut, args[0]); err != nil {
		return err
	}
	fmt.Printf("exported %s to %s\n", args[0], exportOut)
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tCOUNT\tMAX_DIST\tSPEED\tCOLOR")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%d\t%.0f\t%.2f\t%s\n", name, p.Field.Count, p.Field.MaxDist, p.Field.Speed, p.Field.Color)
	}
	return w.Flush()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
