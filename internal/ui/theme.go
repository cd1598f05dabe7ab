package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Catalog palette
var (
	ColorAccent     = color.RGBA{R: 26, G: 115, B: 232, A: 255}  // #1a73e8
	ColorSurface    = color.RGBA{R: 17, G: 17, B: 17, A: 255}    // #111
	ColorButton     = color.RGBA{R: 51, G: 51, B: 51, A: 255}    // #333
	ColorMuted      = color.RGBA{R: 154, G: 160, B: 166, A: 255} // #9aa0a6
	ColorBody       = color.RGBA{R: 208, G: 208, B: 208, A: 255} // #d0d0d0
	ColorOverlay    = color.NRGBA{R: 0, G: 0, B: 0, A: 153}
	ColorBackground = color.Black
)

// CatalogTheme is a dark, compact theme
type CatalogTheme struct{}

// NewCatalogTheme creates the catalog theme
func NewCatalogTheme() fyne.Theme {
	return &CatalogTheme{}
}

// Color returns theme colors. The catalog is always dark.
func (t *CatalogTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary, theme.ColorNameFocus:
		return ColorAccent
	case theme.ColorNameBackground:
		return ColorBackground
	case theme.ColorNameButton, theme.ColorNameInputBackground:
		return ColorButton
	case theme.ColorNameForeground:
		return color.White
	case theme.ColorNamePlaceHolder, theme.ColorNameDisabled:
		return ColorMuted
	case theme.ColorNameOverlayBackground, theme.ColorNameMenuBackground:
		return ColorSurface
	case theme.ColorNameError:
		return color.RGBA{R: 244, G: 67, B: 54, A: 255}
	case theme.ColorNameSuccess:
		return color.RGBA{R: 46, G: 160, B: 67, A: 255}
	}

	return theme.DefaultTheme().Color(name, theme.VariantDark)
}

// Font returns theme fonts
func (t *CatalogTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *CatalogTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *CatalogTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3 // Reduced from default 4
	case theme.SizeNameInnerPadding:
		return 6 // Reduced from default 8
	case theme.SizeNameLineSpacing:
		return 2
	case theme.SizeNameScrollBar:
		return 12
	case theme.SizeNameText:
		return 14
	case theme.SizeNameHeadingText:
		return 24
	case theme.SizeNameSubHeadingText:
		return 16
	case theme.SizeNameCaptionText:
		return 11
	case theme.SizeNameInputRadius:
		return 8
	case theme.SizeNameSelectionRadius:
		return 4
	}

	return theme.DefaultTheme().Size(name)
}
