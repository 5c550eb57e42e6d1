package views

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"notes-app/internal/settings"
)

type palette struct {
	background color.Color
	foreground color.Color
	selection  color.Color
}

var (
	lightPalette = palette{
		background: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		foreground: color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff},
		selection:  color.NRGBA{R: 0x00, G: 0x78, B: 0xd7, A: 0xff},
	}
	darkPalette = palette{
		background: color.NRGBA{R: 0x2d, G: 0x2d, B: 0x2d, A: 0xff},
		foreground: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		selection:  color.NRGBA{R: 0x40, G: 0x40, B: 0x40, A: 0xff},
	}
)

// noteTheme forces the default theme into one variant and applies the
// editor palette on top.
type noteTheme struct {
	variant fyne.ThemeVariant
	colors  palette
}

var _ fyne.Theme = (*noteTheme)(nil)

func NewTheme(mode settings.Mode) fyne.Theme {
	if mode.Dark() {
		return &noteTheme{variant: theme.VariantDark, colors: darkPalette}
	}
	return &noteTheme{variant: theme.VariantLight, colors: lightPalette}
}

func (t *noteTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground, theme.ColorNameInputBackground:
		return t.colors.background
	case theme.ColorNameForeground:
		return t.colors.foreground
	case theme.ColorNameSelection:
		return t.colors.selection
	}
	return theme.DefaultTheme().Color(name, t.variant)
}

func (t *noteTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (t *noteTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (t *noteTheme) Size(name fyne.ThemeSizeName) float32 {
	return theme.DefaultTheme().Size(name)
}
