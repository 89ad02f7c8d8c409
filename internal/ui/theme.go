package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// forcedVariant wraps a theme to force a specific variant (light/dark).
type forcedVariant struct {
	fyne.Theme
	variant fyne.ThemeVariant
}

// Color returns the color for the forced variant, ignoring the passed variant.
func (f *forcedVariant) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	return f.Theme.Color(name, f.variant)
}

// ApplyTheme sets the application theme. mode is "dark", "light", or
// "system" (the default).
func ApplyTheme(a fyne.App, mode string) {
	switch mode {
	case "dark":
		a.Settings().SetTheme(&forcedVariant{
			Theme:   theme.DefaultTheme(),
			variant: theme.VariantDark,
		})
	case "light":
		a.Settings().SetTheme(&forcedVariant{
			Theme:   theme.DefaultTheme(),
			variant: theme.VariantLight,
		})
	default:
		a.Settings().SetTheme(theme.DefaultTheme())
	}
}
