package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/san-kum/solsim/internal/config"
	"github.com/san-kum/solsim/internal/sim"
	"github.com/san-kum/solsim/internal/solubility"
	"github.com/san-kum/solsim/internal/viz"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
	preset  string
	// model inputs, overridable from SOLSIM_* env vars
	substance string
	temp      float64
	water     float64
	solute    float64
	theme     string
	scale     float64
)

// main loads .env and runs the root command. With no subcommand the
// interactive lab starts.
func main() {
	_ = godotenv.Load()

	rootCmd, err := newRootCmd()
	if err != nil {
		slog.Error("bind flags", "error", err)
		os.Exit(1)
	}
	if err := rootCmd.Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

// newRootCmd registers every command and binds the persistent flags and
// SOLSIM_* env vars into viper.
func newRootCmd() (*cobra.Command, error) {
	rootCmd := &cobra.Command{
		Use:   "solsim",
		Short: "solubility vs temperature lab",
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			setupLogging(os.Stderr)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runTUI,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file path (yaml)")
	pf.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.StringVar(&substance, "substance", config.DefaultSubstance, "substance key")
	pf.Float64Var(&temp, "temp", config.DefaultTemperature, "temperature (°C)")
	pf.Float64Var(&water, "water", config.DefaultWater, "water (g)")
	pf.Float64Var(&solute, "solute", config.DefaultSolute, "solute (g)")
	pf.StringVar(&theme, "theme", config.DefaultTheme, "color theme ("+strings.Join(viz.ThemeNames(), ", ")+")")
	pf.Float64Var(&scale, "precipitate-scale", config.DefaultPrecipitateScale, "precipitate layer height per 100 g")

	viper.SetEnvPrefix("SOLSIM")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	if err := viper.BindPFlags(pf); err != nil {
		return nil, err
	}

	rootCmd.AddCommand(tuiCmd(), calcCmd(), chartCmd(), tableCmd(), substancesCmd(), presetsCmd(), exportCmd(), configCmd())
	return rootCmd, nil
}

func setupLogging(w io.Writer) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

// loadConfig layers the config file, the preset, then env vars and
// explicitly set flags.
func loadConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if path := viper.GetString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
		slog.Debug("using config file", "file", path)
	}

	if name := viper.GetString("preset"); name != "" {
		p := config.GetPreset(name)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s", name)
		}
		cfg.ApplyPreset(p)
	}

	if viper.IsSet("substance") {
		cfg.Substance = viper.GetString("substance")
	}
	floats := []struct {
		key string
		dst *float64
	}{
		{"temp", &cfg.Temperature},
		{"water", &cfg.Water},
		{"solute", &cfg.Solute},
		{"precipitate-scale", &cfg.PrecipitateScale},
	}
	for _, f := range floats {
		if err := overrideFloat(f.key, f.dst); err != nil {
			return nil, err
		}
	}
	if viper.IsSet("theme") {
		cfg.Theme = viper.GetString("theme")
	}
	return cfg, cfg.Validate()
}

// overrideFloat sets dst from a flag or env var when one is set. Values
// that are not numbers are rejected instead of read as 0.
func overrideFloat(key string, dst *float64) error {
	if !viper.IsSet(key) {
		return nil
	}
	raw := viper.GetString(key)
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return &solubility.InputError{Field: key, Value: raw, Wrapped: solubility.ErrInvalidInput}
	}
	*dst = v
	return nil
}

func newPipeline(cfg *config.Config, log *slog.Logger) (*sim.Pipeline, error) {
	table, err := cfg.Table()
	if err != nil {
		return nil, err
	}
	return sim.New(table,
		sim.WithPrecipitateScale(cfg.PrecipitateScale),
		sim.WithSpeckleSeed(cfg.SpeckleSeed),
		sim.WithLogger(log),
	), nil
}
