package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Panel frames a surface with a rounded border.
func Panel(th Theme) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(th.Muted).
		Padding(0, 1)
}

// Title renders a bold heading.
func Title(th Theme, s string) string {
	return lipgloss.NewStyle().Bold(true).Foreground(th.Primary).Render(s)
}

// SliderBar renders a horizontal slider track with the knob at frac.
func SliderBar(frac float64, width int, focused bool, th Theme) string {
	if width < 2 {
		width = 2
	}
	if frac < 0 || frac != frac {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	knob := int(frac * float64(width-1))

	track := lipgloss.NewStyle().Foreground(th.Muted)
	fill := lipgloss.NewStyle().Foreground(th.Axis)
	knobStyle := lipgloss.NewStyle().Foreground(th.Text)
	if focused {
		fill = fill.Foreground(th.Primary)
		knobStyle = knobStyle.Foreground(th.Accent).Bold(true)
	}

	return fill.Render(strings.Repeat("━", knob)) +
		knobStyle.Render("●") +
		track.Render(strings.Repeat("─", width-knob-1))
}

// KeyHints renders "key action" pairs in a single line.
func KeyHints(th Theme, pairs ...string) string {
	key := lipgloss.NewStyle().Foreground(th.Primary).Bold(true)
	desc := lipgloss.NewStyle().Foreground(th.Muted)
	parts := make([]string, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		parts = append(parts, key.Render(pairs[i])+desc.Render(" "+pairs[i+1]))
	}
	return strings.Join(parts, "  ")
}
