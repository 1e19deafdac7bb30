package tui

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/solsim/internal/sim"
	"github.com/san-kum/solsim/internal/solubility"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T) model {
	t.Helper()
	return newTestModelWith(t, solubility.State{Substance: "KNO3", Temperature: 20, Solvent: 100, Solute: 40})
}

func newTestModelWith(t *testing.T, initial solubility.State) model {
	t.Helper()
	p := sim.New(solubility.DefaultTable())
	return New(p, Options{
		Initial:          initial,
		Theme:            "lab",
		ChartWidth:       52,
		ChartHeight:      16,
		VesselWidth:      16,
		VesselHeight:     12,
		PrecipitateScale: 30,
		ExportDir:        t.TempDir(),
	})
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m model, keys ...tea.KeyMsg) model {
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(model)
	}
	return m
}

func TestNew_RunsStartupUpdate(t *testing.T) {
	m := newTestModel(t)

	require.NoError(t, m.err)
	assert.Equal(t, "8.9g precipitated (supersaturated)", m.surfaces.Status)
	assert.InDelta(t, 31.1, m.result.PerHundred, 1e-9)
	assert.Equal(t, "20", m.Value(sim.IDTemp))
	assert.Equal(t, "KNO3", m.Value(sim.IDSubstance))
	assert.Empty(t, m.Value("unknown"))
}

func TestIncrementTemperature(t *testing.T) {
	m := press(newTestModel(t), runes("l"))

	assert.Equal(t, "21", m.Value(sim.IDTemp))
	assert.Equal(t, "7.6g precipitated (supersaturated)", m.surfaces.Status)
}

func TestCoarseAdjustClamps(t *testing.T) {
	m := newTestModel(t)
	for i := 0; i < 12; i++ {
		m = press(m, runes("L"))
	}
	assert.Equal(t, "100", m.Value(sim.IDTemp))

	m = press(m, tea.KeyMsg{Type: tea.KeyTab}, runes("H"))
	assert.Equal(t, "90", m.Value(sim.IDWater))
}

func TestFocusWraps(t *testing.T) {
	m := newTestModel(t)
	m = press(m, runes("k"))
	assert.Equal(t, 3, m.focus)
	m = press(m, runes("j"))
	assert.Equal(t, 0, m.focus)
}

func TestSubstanceSelection(t *testing.T) {
	m := newTestModel(t)

	m = press(m, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyTab}, runes("l"))
	assert.Equal(t, "CuSO4", m.Value(sim.IDSubstance))
	assert.Equal(t, "17.7g precipitated (supersaturated)", m.surfaces.Status)
	assert.Equal(t, solubility.TintBlue, m.surfaces.Vessel.Tint())

	m = press(m, runes("s"))
	assert.Equal(t, "NaCl", m.Value(sim.IDSubstance))
	m = press(m, runes("s"))
	assert.Equal(t, "NaNO3", m.Value(sim.IDSubstance))
}

func TestTypedValue(t *testing.T) {
	m := newTestModel(t)

	m = press(m,
		tea.KeyMsg{Type: tea.KeyEnter},
		tea.KeyMsg{Type: tea.KeyBackspace},
		tea.KeyMsg{Type: tea.KeyBackspace},
		runes("60"),
	)
	assert.True(t, m.editing)
	assert.Equal(t, "60", m.editBuf)

	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.editing)
	assert.Equal(t, "60", m.Value(sim.IDTemp))
	assert.Equal(t, "fully dissolved", m.surfaces.Status)
}

func TestTypedValue_Invalid(t *testing.T) {
	m := newTestModel(t)
	before := m.surfaces.Chart.Render(m.theme)

	m = press(m,
		tea.KeyMsg{Type: tea.KeyEnter},
		tea.KeyMsg{Type: tea.KeyBackspace},
		tea.KeyMsg{Type: tea.KeyBackspace},
		runes("abc"),
		tea.KeyMsg{Type: tea.KeyEnter},
	)

	require.Error(t, m.err)
	assert.ErrorIs(t, m.err, solubility.ErrInvalidInput)
	assert.Equal(t, "8.9g precipitated (supersaturated)", m.surfaces.Status)
	assert.Equal(t, before, m.surfaces.Chart.Render(m.theme))
	assert.Contains(t, m.View(), "invalid input")

	// nudging an unparseable value restarts from the minimum
	m = press(m, runes("l"))
	assert.NoError(t, m.err)
	assert.Equal(t, "1", m.Value(sim.IDTemp))
}

func TestEditCancel(t *testing.T) {
	m := newTestModel(t)
	m = press(m, tea.KeyMsg{Type: tea.KeyEnter}, runes("5"), tea.KeyMsg{Type: tea.KeyEsc})

	assert.False(t, m.editing)
	assert.Equal(t, "20", m.Value(sim.IDTemp))
}

func TestThemeAndHelp(t *testing.T) {
	m := newTestModel(t)
	m = press(m, runes("t"), runes("?"))

	assert.NotEqual(t, "lab", m.theme.Name)
	assert.True(t, m.showHelp)
	assert.Contains(t, m.View(), "export svg")
}

func TestExport(t *testing.T) {
	m := newTestModel(t)
	m = press(m, runes("e"))

	path := filepath.Join(m.exportDir, "solsim-KNO3-20C.svg")
	assert.Equal(t, "saved "+path, m.notice)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
}

func TestView_Idempotent(t *testing.T) {
	m := newTestModel(t)
	first := m.View()

	m = press(m, runes("l"), runes("h"))
	assert.Equal(t, first, m.View())
	assert.Contains(t, first, "8.9g precipitated")
}

func TestQuit(t *testing.T) {
	_, cmd := newTestModel(t).Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestNew_UnknownSubstance(t *testing.T) {
	m := newTestModelWith(t, solubility.State{Substance: "H2SO4", Temperature: 20, Solvent: 100, Solute: 40})

	require.Error(t, m.err)
	assert.ErrorIs(t, m.err, solubility.ErrUnknownSubstance)
	assert.Equal(t, "H2SO4", m.Value(sim.IDSubstance))
	assert.Empty(t, m.surfaces.Status)
	assert.Contains(t, m.View(), "invalid input")

	// picking a substance clears the error
	m = press(m, runes("s"))
	assert.NoError(t, m.err)
	assert.Equal(t, "NaNO3", m.Value(sim.IDSubstance))
	assert.Equal(t, "fully dissolved", m.surfaces.Status)
}

func TestExport_ReportsWriteError(t *testing.T) {
	m := newTestModel(t)
	m.exportDir = filepath.Join(t.TempDir(), "missing")
	m = press(m, runes("e"))

	assert.NotContains(t, m.notice, "saved")
	assert.NotEmpty(t, m.notice)
}
