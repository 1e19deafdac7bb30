package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/solsim/internal/solubility"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRoot(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	root, err := newRootCmd()
	require.NoError(t, err)
	root.SetArgs(args)
	return root
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("SOLSIM_TEMP", "55")
	t.Setenv("SOLSIM_PRECIPITATE_SCALE", "12.5")
	newTestRoot(t)

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, 55.0, cfg.Temperature)
	assert.Equal(t, 12.5, cfg.PrecipitateScale)
}

func TestLoadConfig_RejectsNonNumericEnv(t *testing.T) {
	t.Setenv("SOLSIM_TEMP", "warm")
	newTestRoot(t)

	_, err := loadConfig()
	require.Error(t, err)
	assert.ErrorIs(t, err, solubility.ErrInvalidInput)

	var ie *solubility.InputError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, "temp", ie.Field)
	assert.Equal(t, "warm", ie.Value)
}

func TestLoadConfig_RejectsUnknownTheme(t *testing.T) {
	t.Setenv("SOLSIM_THEME", "bogus")
	newTestRoot(t)

	_, err := loadConfig()
	assert.ErrorContains(t, err, "unknown theme")
}

func TestTUI_UnknownSubstanceFailsBeforeStart(t *testing.T) {
	root := newTestRoot(t, "tui", "--substance", "H2SO4")

	err := root.Execute()
	assert.ErrorIs(t, err, solubility.ErrUnknownSubstance)
}

func TestExport_Parts(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name  string
		flag  string
		width string
	}{
		{"page", "", `width="700"`},
		{"chart", "--chart-only", `width="500"`},
		{"vessel", "--vessel-only", `width="200"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := filepath.Join(dir, tt.name+".svg")
			args := []string{"export", "--out", out}
			if tt.flag != "" {
				args = append(args, tt.flag)
			}
			require.NoError(t, newTestRoot(t, args...).Execute())

			data, err := os.ReadFile(out)
			require.NoError(t, err)
			assert.Contains(t, string(data), tt.width)
		})
	}
}

func TestExport_PartsAreExclusive(t *testing.T) {
	out := filepath.Join(t.TempDir(), "x.svg")
	err := newTestRoot(t, "export", "--out", out, "--chart-only", "--vessel-only").Execute()
	assert.Error(t, err)
}
