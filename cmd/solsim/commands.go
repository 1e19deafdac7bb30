package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/solsim/internal/config"
	"github.com/san-kum/solsim/internal/export"
	"github.com/san-kum/solsim/internal/sim"
	"github.com/san-kum/solsim/internal/solubility"
	"github.com/san-kum/solsim/internal/tui"
	"github.com/san-kum/solsim/internal/viz"
	"github.com/spf13/cobra"
)

var (
	jsonOut    bool
	draw       bool
	plotAll    bool
	outFile    string
	chartOnly  bool
	vesselOnly bool
	forceNew   bool
)

func tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "interactive solubility lab",
		RunE:  runTUI,
	}
}

// runTUI keeps logs off the terminal the program draws on.
func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	if verbose {
		f, err := os.OpenFile("solsim.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return err
		}
		defer f.Close()
		log = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	p, err := newPipeline(cfg, log)
	if err != nil {
		return err
	}
	if _, err := p.Table().Lookup(cfg.Substance); err != nil {
		return err
	}
	wd, _ := os.Getwd()
	return tui.Run(p, tui.Options{
		Initial:          cfg.State(),
		Theme:            cfg.Theme,
		ChartWidth:       cfg.Chart.Width,
		ChartHeight:      cfg.Chart.Height,
		VesselWidth:      cfg.Vessel.Width,
		VesselHeight:     cfg.Vessel.Height,
		PrecipitateScale: cfg.PrecipitateScale,
		ExportDir:        wd,
	})
}

type calcReport struct {
	Substance      string  `json:"substance"`
	Name           string  `json:"name"`
	Temperature    float64 `json:"temperature"`
	Water          float64 `json:"water"`
	Solute         float64 `json:"solute"`
	PerHundred     float64 `json:"solubility_per_100g"`
	MaxDissolvable float64 `json:"max_dissolvable"`
	Precipitate    float64 `json:"precipitate"`
	Saturation     string  `json:"saturation"`
	Status         string  `json:"status"`
}

func calcCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "evaluate one state",
		RunE:  runCalc,
	}
	cmd.Flags().BoolVar(&jsonOut, "json", false, "print JSON")
	cmd.Flags().BoolVar(&draw, "draw", false, "also print the chart and vessel")
	return cmd
}

func runCalc(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	p, err := newPipeline(cfg, slog.Default())
	if err != nil {
		return err
	}

	in := sim.FromState(cfg.State())
	res, sub, err := p.Evaluate(in)
	if err != nil {
		return err
	}
	st := res.State
	out := cmd.OutOrStdout()

	if jsonOut {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(calcReport{
			Substance:      sub.Key,
			Name:           sub.Name,
			Temperature:    st.Temperature,
			Water:          st.Solvent,
			Solute:         st.Solute,
			PerHundred:     res.PerHundred,
			MaxDissolvable: res.MaxDissolvable,
			Precipitate:    res.Precipitate,
			Saturation:     res.Saturation.String(),
			Status:         sim.StatusText(res),
		})
	}

	fmt.Fprintf(out, "substance:      %s (%s)\n", sub.Key, sub.Name)
	fmt.Fprintf(out, "curve:          %s\n", sub.Curve)
	fmt.Fprintf(out, "temperature:    %.1f °C\n", st.Temperature)
	fmt.Fprintf(out, "water:          %.1f g\n", st.Solvent)
	fmt.Fprintf(out, "solute:         %.1f g\n", st.Solute)
	fmt.Fprintf(out, "solubility:     %.2f g/100g\n", res.PerHundred)
	fmt.Fprintf(out, "max dissolvable %.2f g\n", res.MaxDissolvable)
	fmt.Fprintf(out, "precipitate:    %.2f g\n", res.Precipitate)
	fmt.Fprintf(out, "status:         %s\n", sim.StatusText(res))

	if draw {
		s := viz.NewSurfaces(cfg.Chart.Width, cfg.Chart.Height, cfg.Vessel.Width, cfg.Vessel.Height)
		if _, err := p.Update(in, s); err != nil {
			return err
		}
		th := viz.GetTheme(cfg.Theme)
		fmt.Fprintln(out)
		fmt.Fprintln(out, lipgloss.JoinHorizontal(lipgloss.Top,
			viz.Panel(th).Render(s.Chart.Render(th)),
			viz.Panel(th).Render(s.Vessel.Render(th)),
		))
	}
	return nil
}

func chartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chart",
		Short: "plot solubility curves",
		RunE:  runChart,
	}
	cmd.Flags().BoolVar(&plotAll, "all", false, "plot every substance")
	return cmd
}

var seriesColors = []asciigraph.AnsiColor{
	asciigraph.DodgerBlue, asciigraph.Red, asciigraph.Green, asciigraph.Goldenrod,
	asciigraph.Orchid, asciigraph.Cyan,
}

func curveSeries(c solubility.Curve) []float64 {
	data := make([]float64, int(solubility.MaxTemp)+1)
	for t := range data {
		data[t] = c.At(float64(t))
	}
	return data
}

func runChart(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	table, err := cfg.Table()
	if err != nil {
		return err
	}

	var (
		series  [][]float64
		colors  []asciigraph.AnsiColor
		caption string
	)
	if plotAll {
		for i, key := range table.Keys() {
			sub, _ := table.Lookup(key)
			series = append(series, curveSeries(sub.Curve))
			colors = append(colors, seriesColors[i%len(seriesColors)])
		}
		caption = fmt.Sprintf("solubility (g/100g water) vs temperature 0-100 °C: %v", table.Keys())
	} else {
		res, err := table.Evaluate(cfg.State())
		if err != nil {
			return err
		}
		sub, _ := table.Lookup(res.State.Substance)

		// the concentration line crosses the curve at the saturation temperature
		level := make([]float64, int(solubility.MaxTemp)+1)
		rel := res.Relative()
		if rel > viz.ChartSolMax {
			rel = viz.ChartSolMax
		}
		for i := range level {
			level[i] = rel
		}
		series = [][]float64{curveSeries(sub.Curve), level}
		colors = seriesColors[:2]
		caption = fmt.Sprintf("%s solubility (blue) and current %.1f g/100g (red), 0-100 °C", sub.Key, rel)
	}

	graph := asciigraph.PlotMany(series,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.LowerBound(0),
		asciigraph.SeriesColors(colors...),
		asciigraph.Caption(caption),
	)
	fmt.Fprintln(cmd.OutOrStdout(), graph)
	return nil
}

func tableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "table",
		Short: "solubility every 10 °C for every substance",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			table, err := cfg.Table()
			if err != nil {
				return err
			}
			keys := table.Keys()

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', tabwriter.AlignRight)
			fmt.Fprint(w, "°C\t")
			for _, k := range keys {
				fmt.Fprintf(w, "%s\t", k)
			}
			fmt.Fprintln(w)
			for t := solubility.MinTemp; t <= solubility.MaxTemp; t += 10 {
				fmt.Fprintf(w, "%.0f\t", t)
				for _, k := range keys {
					v, err := table.Solubility(k, t)
					if err != nil {
						return err
					}
					fmt.Fprintf(w, "%.1f\t", v)
				}
				fmt.Fprintln(w)
			}
			return w.Flush()
		},
	}
}

func substancesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "substances",
		Short: "list substances",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			table, err := cfg.Table()
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "KEY\tNAME\tCURVE (g/100g)\tTINT")
			for _, k := range table.Keys() {
				sub, _ := table.Lookup(k)
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", sub.Key, sub.Name, sub.Curve, sub.Tint)
			}
			return w.Flush()
		},
	}
}

func presetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets()
			sort.Strings(names)
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "PRESET\tSUBSTANCE\tTEMP\tWATER\tSOLUTE")
			for _, name := range names {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%s\t%.0f °C\t%.0f g\t%.1f g\n", name, p.Substance, p.Temperature, p.Water, p.Solute)
			}
			return w.Flush()
		},
	}
}

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "write the chart and vessel as SVG",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			p, err := newPipeline(cfg, slog.Default())
			if err != nil {
				return err
			}
			res, sub, err := p.Evaluate(sim.FromState(cfg.State()))
			if err != nil {
				return err
			}

			part := export.PartPage
			switch {
			case chartOnly:
				part = export.PartChart
			case vesselOnly:
				part = export.PartVessel
			}
			snap := export.Snapshot{Substance: sub, Result: res, Status: sim.StatusText(res), PrecipitateScale: cfg.PrecipitateScale}
			if err := export.WriteFile(outFile, snap, part); err != nil {
				return err
			}
			slog.Info("exported", "file", outFile, "substance", sub.Key)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outFile, "out", "o", "solsim.svg", "output file")
	cmd.Flags().BoolVar(&chartOnly, "chart-only", false, "write only the chart")
	cmd.Flags().BoolVar(&vesselOnly, "vessel-only", false, "write only the vessel")
	cmd.MarkFlagsMutuallyExclusive("chart-only", "vessel-only")
	return cmd
}

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "manage config files",
	}
	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write a default config file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "solsim.yaml"
			if len(args) > 0 {
				path = args[0]
			}
			if _, err := os.Stat(path); err == nil && !forceNew {
				return fmt.Errorf("%s already exists (use --force)", path)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return err
			}
			if err := config.Save(path, config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&forceNew, "force", false, "overwrite an existing file")
	cmd.AddCommand(initCmd)
	return cmd
}
