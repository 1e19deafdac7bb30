package viz

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Vessel geometry in reference pixels. The liquid reaches fillPx when the
// vessel holds MaxWater grams; the inside is vesselPx tall.
const (
	MaxWater = 200.0
	vesselPx = 120.0
	fillPx   = 100.0
)

type cellKind uint8

const (
	cellEmpty cellKind = iota
	cellLiquid
	cellPrecipitate
)

var speckles = []rune{'█', '▓', '▒'}

// Vessel is a beaker drawn on a character grid. Width and Height are the
// inside dimensions in cells.
type Vessel struct {
	Width, Height int
	cells         [][]cellKind
	glyphs        [][]rune
	tint          string
	label         string
	liquidRows    int
	precipRows    int
}

func NewVessel(w, h int) *Vessel {
	v := &Vessel{
		Width:  w,
		Height: h,
		cells:  make([][]cellKind, h),
		glyphs: make([][]rune, h),
	}
	for i := range v.cells {
		v.cells[i] = make([]cellKind, w)
		v.glyphs[i] = make([]rune, w)
	}
	v.clear()
	return v
}

func (v *Vessel) clear() {
	for r := range v.cells {
		for c := range v.cells[r] {
			v.cells[r][c] = cellEmpty
			v.glyphs[r][c] = ' '
		}
	}
	v.liquidRows, v.precipRows = 0, 0
}

// LiquidRows is the height of the liquid in cells after the last Draw.
func (v *Vessel) LiquidRows() int { return v.liquidRows }

// PrecipitateRows is the height of the settled layer after the last Draw.
func (v *Vessel) PrecipitateRows() int { return v.precipRows }

// Tint is the precipitate colour used by the last Draw.
func (v *Vessel) Tint() string { return v.tint }

// Draw clears the vessel and fills it for the given water and precipitate
// masses. scale is the precipitate height in reference pixels per 100 g;
// seed fixes the decorative speckle pattern.
func (v *Vessel) Draw(water, precip float64, tint string, scale float64, seed int64) {
	v.clear()
	v.tint = tint
	v.label = fmt.Sprintf("%.0fg water", water)

	waterPx := math.Min(vesselPx, math.Max(0, water)/MaxWater*fillPx)
	v.liquidRows = v.rows(waterPx)

	if precip > 0 {
		precipPx := math.Min(waterPx, precip/100*scale)
		v.precipRows = v.rows(precipPx)
		if v.precipRows == 0 && v.liquidRows > 0 && scale > 0 {
			v.precipRows = 1
		}
	}

	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < v.liquidRows; i++ {
		r := v.Height - 1 - i
		for c := 0; c < v.Width; c++ {
			if i < v.precipRows {
				v.cells[r][c] = cellPrecipitate
				v.glyphs[r][c] = speckles[rng.Intn(len(speckles))]
			} else {
				v.cells[r][c] = cellLiquid
				v.glyphs[r][c] = '░'
			}
		}
	}
}

func (v *Vessel) rows(px float64) int {
	n := int(math.Round(px / vesselPx * float64(v.Height)))
	if n > v.Height {
		n = v.Height
	}
	return n
}

// Render returns the beaker outline with its contents and graduations.
func (v *Vessel) Render(th Theme) string {
	glass := lipgloss.NewStyle().Foreground(th.Glass)
	liquid := lipgloss.NewStyle().Foreground(th.Liquid)
	precip := lipgloss.NewStyle().Foreground(lipgloss.Color(v.tint))
	label := lipgloss.NewStyle().Foreground(th.Muted)

	marks := make(map[int]string)
	for g := 50.0; g <= MaxWater; g += 50 {
		n := v.rows(g / MaxWater * fillPx)
		if n > 0 {
			marks[v.Height-n] = fmt.Sprintf("%.0f", g)
		}
	}

	var b strings.Builder
	b.WriteString(glass.Render("╷"+strings.Repeat(" ", v.Width)+"╷") + "\n")
	for r := 0; r < v.Height; r++ {
		b.WriteString(glass.Render("│"))
		for c := 0; c < v.Width; c++ {
			g := string(v.glyphs[r][c])
			switch v.cells[r][c] {
			case cellLiquid:
				b.WriteString(liquid.Render(g))
			case cellPrecipitate:
				b.WriteString(precip.Render(g))
			default:
				b.WriteString(g)
			}
		}
		if m, ok := marks[r]; ok {
			b.WriteString(glass.Render("┤") + label.Render(" "+m))
		} else {
			b.WriteString(glass.Render("│"))
		}
		b.WriteString("\n")
	}
	b.WriteString(glass.Render("└"+strings.Repeat("─", v.Width)+"┘") + "\n")
	b.WriteString(label.Render(v.label))
	return b.String()
}
