package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines color scheme for the TUI
type Theme struct {
	Name    string
	Primary lipgloss.Color
	Accent  lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Grid    lipgloss.Color
	Axis    lipgloss.Color
	Curve   lipgloss.Color
	Marker  lipgloss.Color
	Glass   lipgloss.Color
	Liquid  lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
}

// Available themes
var (
	ThemeLab = Theme{
		Name:    "lab",
		Primary: lipgloss.Color("#00cccc"),
		Accent:  lipgloss.Color("#ff88ff"),
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#666688"),
		Grid:    lipgloss.Color("#333344"),
		Axis:    lipgloss.Color("#888899"),
		Curve:   lipgloss.Color("#3498db"),
		Marker:  lipgloss.Color("#ff4444"),
		Glass:   lipgloss.Color("#555555"),
		Liquid:  lipgloss.Color("#add8e6"),
		Success: lipgloss.Color("#00ff88"),
		Warning: lipgloss.Color("#ffaa00"),
		Error:   lipgloss.Color("#ff4444"),
	}

	ThemeRetroGreen = Theme{
		Name:    "retro",
		Primary: lipgloss.Color("#00ff00"), // Green phosphor
		Accent:  lipgloss.Color("#88ff88"),
		Text:    lipgloss.Color("#00ff00"),
		Muted:   lipgloss.Color("#005500"),
		Grid:    lipgloss.Color("#003300"),
		Axis:    lipgloss.Color("#00aa00"),
		Curve:   lipgloss.Color("#88ff88"),
		Marker:  lipgloss.Color("#ffff00"),
		Glass:   lipgloss.Color("#00aa00"),
		Liquid:  lipgloss.Color("#00cc00"),
		Success: lipgloss.Color("#88ff88"),
		Warning: lipgloss.Color("#ffff00"),
		Error:   lipgloss.Color("#ff0000"),
	}

	ThemeMinimal = Theme{
		Name:    "minimal",
		Primary: lipgloss.Color("#ffffff"),
		Accent:  lipgloss.Color("#0088ff"),
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#888888"),
		Grid:    lipgloss.Color("#444444"),
		Axis:    lipgloss.Color("#cccccc"),
		Curve:   lipgloss.Color("#ffffff"),
		Marker:  lipgloss.Color("#0088ff"),
		Glass:   lipgloss.Color("#cccccc"),
		Liquid:  lipgloss.Color("#888888"),
		Success: lipgloss.Color("#00ff00"),
		Warning: lipgloss.Color("#ffaa00"),
		Error:   lipgloss.Color("#ff0000"),
	}

	ThemeOcean = Theme{
		Name:    "ocean",
		Primary: lipgloss.Color("#0077be"), // Ocean blue
		Accent:  lipgloss.Color("#ffd700"),
		Text:    lipgloss.Color("#e0f0ff"),
		Muted:   lipgloss.Color("#4488aa"),
		Grid:    lipgloss.Color("#113355"),
		Axis:    lipgloss.Color("#4488aa"),
		Curve:   lipgloss.Color("#00a8cc"),
		Marker:  lipgloss.Color("#ffd700"),
		Glass:   lipgloss.Color("#4488aa"),
		Liquid:  lipgloss.Color("#0077be"),
		Success: lipgloss.Color("#00ff88"),
		Warning: lipgloss.Color("#ffcc00"),
		Error:   lipgloss.Color("#ff4444"),
	}

	// All available themes
	Themes = []Theme{
		ThemeLab,
		ThemeRetroGreen,
		ThemeMinimal,
		ThemeOcean,
	}
)

// GetTheme returns a theme by name
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeLab
}

// NextTheme returns the theme after name, wrapping around.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
