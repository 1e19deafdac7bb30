package config

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/san-kum/solsim/internal/solubility"
	"github.com/san-kum/solsim/internal/viz"
	"gopkg.in/yaml.v3"
)

const (
	DefaultSubstance        = "KNO3"
	DefaultTemperature      = 20.0
	DefaultWater            = 100.0
	DefaultSolute           = 40.0
	DefaultTheme            = "lab"
	DefaultPrecipitateScale = 30.0
	DefaultChartWidth       = 52
	DefaultChartHeight      = 16
	DefaultVesselWidth      = 16
	DefaultVesselHeight     = 12
	DefaultSpeckleSeed      = 7
)

type Config struct {
	Substance        string            `yaml:"substance"`
	Temperature      float64           `yaml:"temperature"`
	Water            float64           `yaml:"water"`
	Solute           float64           `yaml:"solute"`
	Theme            string            `yaml:"theme"`
	PrecipitateScale float64           `yaml:"precipitate_scale"`
	Chart            SurfaceConfig     `yaml:"chart"`
	Vessel           SurfaceConfig     `yaml:"vessel"`
	SpeckleSeed      int64             `yaml:"speckle_seed"`
	Substances       []SubstanceConfig `yaml:"substances,omitempty"`
}

// SurfaceConfig is a drawing surface size in terminal cells.
type SurfaceConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SubstanceConfig declares an extra substance. Either Expr or the
// quadratic coefficients A, B, C describe its curve.
type SubstanceConfig struct {
	Key  string  `yaml:"key"`
	Name string  `yaml:"name,omitempty"`
	Tint string  `yaml:"tint,omitempty"`
	Expr string  `yaml:"expr,omitempty"`
	A    float64 `yaml:"a,omitempty"`
	B    float64 `yaml:"b,omitempty"`
	C    float64 `yaml:"c,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Substance:        DefaultSubstance,
		Temperature:      DefaultTemperature,
		Water:            DefaultWater,
		Solute:           DefaultSolute,
		Theme:            DefaultTheme,
		PrecipitateScale: DefaultPrecipitateScale,
		Chart:            SurfaceConfig{Width: DefaultChartWidth, Height: DefaultChartHeight},
		Vessel:           SurfaceConfig{Width: DefaultVesselWidth, Height: DefaultVesselHeight},
		SpeckleSeed:      DefaultSpeckleSeed,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks values that would otherwise break rendering.
func (c *Config) Validate() error {
	if c.PrecipitateScale < 0 {
		return fmt.Errorf("precipitate_scale must not be negative, got %g", c.PrecipitateScale)
	}
	if c.Theme != "" && !slices.Contains(viz.ThemeNames(), c.Theme) {
		return fmt.Errorf("unknown theme %q, want one of %s", c.Theme, strings.Join(viz.ThemeNames(), ", "))
	}
	if c.Chart.Width < 8 || c.Chart.Height < 4 {
		return fmt.Errorf("chart must be at least 8x4 cells, got %dx%d", c.Chart.Width, c.Chart.Height)
	}
	if c.Vessel.Width < 4 || c.Vessel.Height < 3 {
		return fmt.Errorf("vessel must be at least 4x3 cells, got %dx%d", c.Vessel.Width, c.Vessel.Height)
	}
	for _, s := range c.Substances {
		if s.Key == "" {
			return fmt.Errorf("substance entry without key")
		}
	}
	return nil
}

// Table builds the substance table: the built-ins plus any configured
// substances, which replace built-ins that share a key.
func (c *Config) Table() (*solubility.Table, error) {
	table := solubility.DefaultTable()
	for _, sc := range c.Substances {
		var curve solubility.Curve = solubility.Quadratic{A: sc.A, B: sc.B, C: sc.C}
		if sc.Expr != "" {
			f, err := solubility.NewFormula(sc.Expr)
			if err != nil {
				return nil, fmt.Errorf("substance %s: %w", sc.Key, err)
			}
			curve = f
		}
		if err := table.Register(solubility.Substance{Key: sc.Key, Name: sc.Name, Tint: sc.Tint, Curve: curve}); err != nil {
			return nil, err
		}
	}
	return table, nil
}

// State returns the configured model inputs.
func (c *Config) State() solubility.State {
	return solubility.State{
		Substance:   c.Substance,
		Temperature: c.Temperature,
		Solvent:     c.Water,
		Solute:      c.Solute,
	}
}

// ApplyPreset copies the preset's model inputs into c.
func (c *Config) ApplyPreset(p *Config) {
	c.Substance = p.Substance
	c.Temperature = p.Temperature
	c.Water = p.Water
	c.Solute = p.Solute
}
