package theme

import (
	"image/color"

	"fyne.io/fyne/v2"
	fynetheme "fyne.io/fyne/v2/theme"
)

// Palette holds the colours shared by both variants.
type Palette struct {
	Background color.Color
	Card       color.Color
	Primary    color.Color
	Text       color.Color
	Secondary  color.Color
}

var (
	DarkPalette = Palette{
		Background: color.NRGBA{R: 0x0f, G: 0x17, B: 0x2a, A: 0xff},
		Card:       color.NRGBA{R: 0x1e, G: 0x29, B: 0x3b, A: 0xff},
		Primary:    color.NRGBA{R: 0x60, G: 0xa5, B: 0xfa, A: 0xff},
		Text:       color.NRGBA{R: 0xe2, G: 0xe8, B: 0xf0, A: 0xff},
		Secondary:  color.NRGBA{R: 0x94, G: 0xa3, B: 0xb8, A: 0xff},
	}
	LightPalette = Palette{
		Background: color.NRGBA{R: 0xf1, G: 0xf5, B: 0xf9, A: 0xff},
		Card:       color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Primary:    color.NRGBA{R: 0x3b, G: 0x82, B: 0xf6, A: 0xff},
		Text:       color.NRGBA{R: 0x1e, G: 0x29, B: 0x3b, A: 0xff},
		Secondary:  color.NRGBA{R: 0x64, G: 0x74, B: 0x8b, A: 0xff},
	}
)

// Theme is a fyne theme locked to one variant regardless of the OS setting.
type Theme struct {
	dark    bool
	palette Palette
}

var _ fyne.Theme = (*Theme)(nil)

// New returns the dark or light application theme.
func New(dark bool) *Theme {
	palette := LightPalette
	if dark {
		palette = DarkPalette
	}
	return &Theme{dark: dark, palette: palette}
}

// Dark reports the variant.
func (appTheme *Theme) Dark() bool {
	return appTheme.dark
}

func (appTheme *Theme) Palette() Palette {
	return appTheme.palette
}

func (appTheme *Theme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case fynetheme.ColorNameBackground:
		return appTheme.palette.Background
	case fynetheme.ColorNameInputBackground, fynetheme.ColorNameMenuBackground, fynetheme.ColorNameOverlayBackground:
		return appTheme.palette.Card
	case fynetheme.ColorNamePrimary, fynetheme.ColorNameFocus:
		return appTheme.palette.Primary
	case fynetheme.ColorNameForeground:
		return appTheme.palette.Text
	case fynetheme.ColorNamePlaceHolder, fynetheme.ColorNameDisabled:
		return appTheme.palette.Secondary
	}
	return fynetheme.DefaultTheme().Color(name, appTheme.variant())
}

func (appTheme *Theme) Font(style fyne.TextStyle) fyne.Resource {
	return fynetheme.DefaultTheme().Font(style)
}

func (appTheme *Theme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return fynetheme.DefaultTheme().Icon(name)
}

func (appTheme *Theme) Size(name fyne.ThemeSizeName) float32 {
	return fynetheme.DefaultTheme().Size(name)
}

func (appTheme *Theme) variant() fyne.ThemeVariant {
	if appTheme.dark {
		return fynetheme.VariantDark
	}
	return fynetheme.VariantLight
}
