package viz

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/solsim/internal/solubility"
)

// Fixed plot ranges and gridline spacing.
const (
	ChartTempMax  = 100.0
	ChartSolMax   = 250.0
	GridTempStep  = 10.0
	GridSolStep   = 50.0
	labelTempStep = 20.0
	yLabelWidth   = 4
	markerRadius  = 1
)

// Chart draws a solubility curve and the current solution on three braille
// layers: grid, curve and marker.
type Chart struct {
	Width, Height int
	grid          *Canvas
	curve         *Canvas
	marker        *Canvas
	title         string
}

func NewChart(w, h int) *Chart {
	return &Chart{
		Width:  w,
		Height: h,
		grid:   NewCanvas(w, h),
		curve:  NewCanvas(w, h),
		marker: NewCanvas(w, h),
	}
}

// Project maps a (temperature, solubility) point to pixel coordinates.
// Both values are clamped to the visible range.
func (c *Chart) Project(t, v float64) (int, int) {
	pw, ph := c.grid.PixelWidth()-1, c.grid.PixelHeight()-1
	t = clamp(t, 0, ChartTempMax)
	v = clamp(v, 0, ChartSolMax)
	x := int(math.Round(t / ChartTempMax * float64(pw)))
	y := ph - int(math.Round(v/ChartSolMax*float64(ph)))
	return x, y
}

// Draw clears the chart and plots curve with a marker at (temp, relative),
// where relative is the solute load per 100 g of water.
func (c *Chart) Draw(title string, curve solubility.Curve, temp, relative float64) {
	c.grid.Clear()
	c.curve.Clear()
	c.marker.Clear()
	c.title = title

	pw, ph := c.grid.PixelWidth()-1, c.grid.PixelHeight()-1
	for t := GridTempStep; t <= ChartTempMax; t += GridTempStep {
		x, _ := c.Project(t, 0)
		c.grid.DrawDotted(x, 0, x, ph, 3)
	}
	for v := GridSolStep; v <= ChartSolMax; v += GridSolStep {
		_, y := c.Project(0, v)
		c.grid.DrawDotted(0, y, pw, y, 3)
	}
	c.grid.DrawLine(0, 0, 0, ph)
	c.grid.DrawLine(0, ph, pw, ph)

	px, py := c.Project(0, curve.At(0))
	for t := 1; t <= int(ChartTempMax); t++ {
		x, y := c.Project(float64(t), curve.At(float64(t)))
		c.curve.DrawLine(px, py, x, y)
		px, py = x, y
	}

	if math.IsNaN(relative) {
		relative = 0
	}
	mx, my := c.Project(temp, relative)
	c.marker.FillDisc(mx, my, markerRadius)
}

// MarkerAt reports whether the marker covers pixel (x, y).
func (c *Chart) MarkerAt(x, y int) bool { return c.marker.IsSet(x, y) }

// CurveAt reports whether the curve covers pixel (x, y).
func (c *Chart) CurveAt(x, y int) bool { return c.curve.IsSet(x, y) }

// Render returns the chart with tick labels and axis titles.
func (c *Chart) Render(th Theme) string {
	gridStyle := lipgloss.NewStyle().Foreground(th.Grid)
	curveStyle := lipgloss.NewStyle().Foreground(th.Curve)
	markerStyle := lipgloss.NewStyle().Foreground(th.Marker).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(th.Axis)
	titleStyle := lipgloss.NewStyle().Foreground(th.Primary).Bold(true)

	yLabels := make(map[int]string)
	for v := 0.0; v <= ChartSolMax; v += GridSolStep {
		_, y := c.Project(0, v)
		yLabels[y/4] = fmt.Sprintf("%*.0f", yLabelWidth-1, v)
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(c.title) + "\n")
	b.WriteString(labelStyle.Render("g/100g water") + "\n")
	for row := 0; row < c.Height; row++ {
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-*s", yLabelWidth, yLabels[row])))
		for col := 0; col < c.Width; col++ {
			r := c.grid.Grid[row][col] | c.curve.Grid[row][col] | c.marker.Grid[row][col]
			switch {
			case !c.marker.Empty(col, row):
				b.WriteString(markerStyle.Render(string(r)))
			case !c.curve.Empty(col, row):
				b.WriteString(curveStyle.Render(string(r)))
			case !c.grid.Empty(col, row):
				b.WriteString(gridStyle.Render(string(r)))
			default:
				b.WriteRune(r)
			}
		}
		b.WriteString("\n")
	}

	ticks := []rune(strings.Repeat(" ", c.Width+yLabelWidth+3))
	for t := 0.0; t <= ChartTempMax; t += labelTempStep {
		x, _ := c.Project(t, 0)
		label := fmt.Sprintf("%.0f", t)
		start := yLabelWidth + x/2 - len(label)/2
		for i, ch := range label {
			if p := start + i; p >= 0 && p < len(ticks) {
				ticks[p] = ch
			}
		}
	}
	b.WriteString(labelStyle.Render(strings.TrimRight(string(ticks), " ")) + "\n")

	axis := "temperature (°C)"
	pad := yLabelWidth + (c.Width-lipgloss.Width(axis))/2
	if pad < 0 {
		pad = 0
	}
	b.WriteString(strings.Repeat(" ", pad) + labelStyle.Render(axis))
	return b.String()
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
