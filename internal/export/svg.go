package export

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/san-kum/solsim/internal/solubility"
)

// Page geometry in SVG user units.
const (
	ChartWidth    = 500
	ChartHeight   = 400
	chartPadding  = 50
	VesselWidth   = 200
	VesselHeight  = 200
	solMax        = 250.0
	tempMax       = 100.0
	markerRadius  = 5
	statusHeight  = 30
	liquidFill    = "rgba(173, 216, 230, 0.6)"
	curveStroke   = "#3498db"
	gridStroke    = "#e0e0e0"
	vesselStroke  = "#555"
	markerFill    = "red"
	labelFontSize = 12
)

// Snapshot is everything needed to draw one state of the simulator.
type Snapshot struct {
	Substance solubility.Substance
	Result    solubility.Result
	Status    string
	// PrecipitateScale is the layer height in vessel units per 100 g.
	PrecipitateScale float64
}

// ChartSVG draws the solubility curve with the current solution marked.
func ChartSVG(snap Snapshot) string {
	var sb strings.Builder
	writeChart(&sb, snap)
	return wrap(ChartWidth, ChartHeight, sb.String())
}

// VesselSVG draws the beaker with its liquid and precipitate layers.
func VesselSVG(snap Snapshot) string {
	var sb strings.Builder
	writeVessel(&sb, snap)
	return wrap(VesselWidth, VesselHeight, sb.String())
}

// Write emits a page with the chart, the vessel and the status line.
func Write(w io.Writer, snap Snapshot) error {
	var sb strings.Builder
	writeChart(&sb, snap)
	sb.WriteString(fmt.Sprintf(`<g transform="translate(%d,%d)">
`, ChartWidth, (ChartHeight-VesselHeight)/2))
	writeVessel(&sb, snap)
	sb.WriteString("</g>\n")
	sb.WriteString(fmt.Sprintf(`<text x="%d" y="%d" font-size="16" font-family="sans-serif">%s</text>
`, chartPadding, ChartHeight+statusHeight/2+5, escape(snap.Status)))

	_, err := io.WriteString(w, wrap(ChartWidth+VesselWidth, ChartHeight+statusHeight, sb.String()))
	return err
}

// Part selects what Render draws.
type Part int

const (
	PartPage Part = iota
	PartChart
	PartVessel
)

// Render writes the selected part of snap to w.
func Render(w io.Writer, snap Snapshot, part Part) error {
	switch part {
	case PartChart:
		_, err := io.WriteString(w, ChartSVG(snap))
		return err
	case PartVessel:
		_, err := io.WriteString(w, VesselSVG(snap))
		return err
	default:
		return Write(w, snap)
	}
}

// WriteFile renders part of snap into path. A failed close is reported,
// since the file may be truncated.
func WriteFile(path string, snap Snapshot, part Part) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	return Render(f, snap, part)
}

func wrap(width, height int, body string) string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#ffffff"/>
%s</svg>`, width, height, width, height, body)
}

func chartX(t float64) float64 {
	t = math.Max(0, math.Min(tempMax, t))
	return chartPadding + t/tempMax*(ChartWidth-2*chartPadding)
}

func chartY(v float64) float64 {
	v = math.Max(0, math.Min(solMax, v))
	return (ChartHeight - chartPadding) - v/solMax*(ChartHeight-2*chartPadding)
}

func writeChart(sb *strings.Builder, snap Snapshot) {
	left, right := float64(chartPadding), float64(ChartWidth-chartPadding)
	top, bottom := float64(chartPadding), float64(ChartHeight-chartPadding)

	sb.WriteString(fmt.Sprintf(`<g stroke="%s" stroke-width="1">
`, gridStroke))
	for t := 10.0; t <= tempMax; t += 10 {
		x := chartX(t)
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>
`, x, top, x, bottom))
	}
	for v := 50.0; v <= solMax; v += 50 {
		y := chartY(v)
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>
`, left, y, right, y))
	}
	sb.WriteString("</g>\n")

	sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="#000" stroke-width="1" d="M%.1f,%.1f L%.1f,%.1f L%.1f,%.1f"/>
`, left, top, left, bottom, right, bottom))

	sb.WriteString(fmt.Sprintf(`<g font-size="%d" font-family="sans-serif" fill="#000">
`, labelFontSize))
	for t := 0.0; t <= tempMax; t += 20 {
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" text-anchor="middle">%.0f</text>
`, chartX(t), bottom+16, t))
	}
	for v := 0.0; v <= solMax; v += 50 {
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" text-anchor="end">%.0f</text>
`, left-6, chartY(v)+4, v))
	}
	sb.WriteString(fmt.Sprintf(`<text x="%d" y="%d" text-anchor="middle">temperature (°C)</text>
`, ChartWidth/2, ChartHeight-10))
	sb.WriteString(fmt.Sprintf(`<text transform="rotate(-90)" x="%d" y="16" text-anchor="middle">solubility (g/100g water)</text>
`, -ChartHeight/2))
	sb.WriteString(fmt.Sprintf(`<text x="%d" y="%d" font-weight="bold">%s</text>
`, chartPadding, chartPadding-16, escape(snap.Substance.Key+" · "+snap.Substance.Name)))
	sb.WriteString("</g>\n")

	if curve := snap.Substance.Curve; curve != nil {
		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="2" d="M`, curveStroke))
		for t := 0; t <= int(tempMax); t++ {
			x, y := chartX(float64(t)), chartY(curve.At(float64(t)))
			if t == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
			}
		}
		sb.WriteString(`"/>
`)
	}

	st := snap.Result.State
	sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%d" fill="%s"/>
`, chartX(st.Temperature), chartY(snap.Result.Relative()), markerRadius, markerFill))
}

func writeVessel(sb *strings.Builder, snap Snapshot) {
	const (
		x0, y0 = 50, 40
		w, h   = 100, 120
	)
	base := float64(y0 + h)

	sb.WriteString(fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="%d" fill="none" stroke="%s" stroke-width="3"/>
`, x0, y0, w, h, vesselStroke))

	water := snap.Result.State.Solvent
	waterH := math.Min(float64(h), math.Max(0, water)/200*100)
	if waterH > 0 {
		sb.WriteString(fmt.Sprintf(`<rect x="%d" y="%.1f" width="%d" height="%.1f" fill="%s"/>
`, x0+2, base-waterH, w-4, waterH, liquidFill))
	}

	if p := snap.Result.Precipitate; p > 0 {
		precipH := math.Min(waterH, p/100*snap.PrecipitateScale)
		tint := snap.Substance.Tint
		if tint == "" {
			tint = solubility.TintNeutral
		}
		sb.WriteString(fmt.Sprintf(`<rect x="%d" y="%.1f" width="%d" height="%.1f" fill="%s"/>
`, x0+2, base-precipH, w-4, precipH, tint))
	}
}

func escape(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
	return r.Replace(s)
}
