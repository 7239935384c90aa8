package styles

import (
	"contactup/internal/models"

	"github.com/charmbracelet/lipgloss"
)

// Palette defines a complete color scheme for the application
type Palette struct {
	// Core colors
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color

	// Background colors
	BgBase     lipgloss.Color
	BgSurface  lipgloss.Color
	BgElevated lipgloss.Color

	// Text colors
	TextPrimary   lipgloss.Color
	TextSecondary lipgloss.Color
	TextMuted     lipgloss.Color

	// Semantic colors
	Success lipgloss.Color
	Error   lipgloss.Color

	Border lipgloss.Color
}

// DarkPalette is the dark mode color scheme
var DarkPalette = Palette{
	Primary:   lipgloss.Color("#818CF8"), // Indigo 400
	Secondary: lipgloss.Color("#22D3EE"), // Cyan 400
	Accent:    lipgloss.Color("#F472B6"), // Pink 400

	BgBase:     lipgloss.Color("#0B0B0F"),
	BgSurface:  lipgloss.Color("#141419"),
	BgElevated: lipgloss.Color("#1E1E2A"),

	TextPrimary:   lipgloss.Color("#F1F5F9"), // Slate 100
	TextSecondary: lipgloss.Color("#94A3B8"), // Slate 400
	TextMuted:     lipgloss.Color("#64748B"), // Slate 500

	Success: lipgloss.Color("#34D399"), // Emerald 400
	Error:   lipgloss.Color("#FB7185"), // Rose 400

	Border: lipgloss.Color("#3F3F46"),
}

// LightPalette is the light mode color scheme
var LightPalette = Palette{
	Primary:   lipgloss.Color("#4F46E5"), // Indigo 600
	Secondary: lipgloss.Color("#0891B2"), // Cyan 600
	Accent:    lipgloss.Color("#DB2777"), // Pink 600

	BgBase:     lipgloss.Color("#FAFAFA"),
	BgSurface:  lipgloss.Color("#FFFFFF"),
	BgElevated: lipgloss.Color("#F4F4F5"),

	TextPrimary:   lipgloss.Color("#18181B"), // Zinc 900
	TextSecondary: lipgloss.Color("#52525B"), // Zinc 600
	TextMuted:     lipgloss.Color("#A1A1AA"), // Zinc 400

	Success: lipgloss.Color("#10B981"), // Emerald 500
	Error:   lipgloss.Color("#EF4444"), // Red 500

	Border: lipgloss.Color("#D4D4D8"),
}

// PaletteFor returns the palette matching a theme. Unknown themes get the light palette.
func PaletteFor(t models.Theme) Palette {
	if t == models.ThemeDark {
		return DarkPalette
	}
	return LightPalette
}

// GlamourStyle is the glamour standard style name for a theme.
func GlamourStyle(t models.Theme) string {
	if t == models.ThemeDark {
		return "dark"
	}
	return "light"
}

// Apply makes adaptive colors follow the chosen theme instead of the terminal background.
func Apply(t models.Theme) {
	lipgloss.SetHasDarkBackground(t == models.ThemeDark)
}

// SystemPrefersDark reports the terminal's background, queried once before the program starts.
func SystemPrefersDark() bool {
	return lipgloss.HasDarkBackground()
}
