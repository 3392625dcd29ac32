package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/san-kum/plexus/internal/config"
	"github.com/san-kum/plexus/internal/sweep"
	"github.com/spf13/cobra"
)

var (
	sweepCounts string
	sweepDists  string
	sweepRuns   int
	sweepTarget float64
)

func newSweepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "compare link density over a grid of counts and distances",
		Args:  cobra.NoArgs,
		RunE:  runSweep,
	}
	cmd.Flags().StringVar(&sweepCounts, "counts", "30,60,90", "particle counts")
	cmd.Flags().StringVar(&sweepDists, "dists", "120,180,240", "link distances")
	cmd.Flags().IntVar(&sweepRuns, "runs", 4, "seeds per grid point")
	cmd.Flags().Int("ticks", 300, "frames per run")
	cmd.Flags().Int("width", config.DefaultWidth, "field width")
	cmd.Flags().Int("height", config.DefaultHeight, "field height")
	cmd.Flags().StringVar(&pointer, "pointer", "", "fixed pointer position x,y")
	cmd.Flags().Float64Var(&sweepTarget, "target", 0, "mark the point closest to this mean link count")
	return cmd
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	fc, err := cfg.FieldConfig()
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
	counts, err := parseList(sweepCounts, strconv.Atoi)
	if err != nil {
		return fmt.Errorf("counts: %w", err)
	}
	dists, err := parseList(sweepDists, func(s string) (float64, error) { return strconv.ParseFloat(s, 64) })
	if err != nil {
		return fmt.Errorf("dists: %w", err)
	}

	job := sweep.Job{
		Config:  fc,
		Width:   float64(cfg.Window.Width),
		Height:  float64(cfg.Window.Height),
		Ticks:   ticks,
		Pointer: ptr,
	}
	fmt.Printf("sweeping %d points x %d seeds...\n", len(counts)*len(dists), sweepRuns)
	points, err := sweep.Grid{Counts: counts, MaxDists: dists}.Search(cmd.Context(), job, sweepRuns, cfg.Seed)
	if err != nil {
		return err
	}

	var best sweep.Point
	marked := false
	if cmd.Flags().Changed("target") {
		best, marked = sweep.Closest(points, "links_mean", sweepTarget)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "COUNT\tMAX_DIST\tLINKS\tLINKS_MAX\tALPHA\tREPEL\t")
	for _, p := range points {
		mark := ""
		if marked && p.Count == best.Count && p.MaxDist == best.MaxDist {
			mark = "*"
		}
		fmt.Fprintf(w, "%d\t%.0f\t%.1f\t%.0f\t%.3f\t%.3f\t%s\n",
			p.Count, p.MaxDist,
			p.Metrics["links_mean"],
			p.Metrics["links_max"],
			p.Metrics["link_alpha_mean"],
			p.Metrics["repel_rate"],
			mark,
		)
	}
	return w.Flush()
}

func parseList[T any](s string, parse func(string) (T, error)) ([]T, error) {
	var out []T
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := parse(part)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
