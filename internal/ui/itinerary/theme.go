package itinerary

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// listTheme tightens row padding for the itinerary list while delegating
// all other theme queries to the parent theme
type listTheme struct {
	parent fyne.Theme
}

func newListTheme(parent fyne.Theme) fyne.Theme {
	if parent == nil {
		parent = theme.DefaultTheme()
	}
	return &listTheme{parent: parent}
}

// Color delegates color queries to the parent theme
func (t *listTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	return t.parent.Color(name, variant)
}

// Font delegates font queries to the parent theme
func (t *listTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.parent.Font(style)
}

// Icon delegates icon queries to the parent theme
func (t *listTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.parent.Icon(name)
}

// Size halves inner padding so headers and places sit closer together
func (t *listTheme) Size(name fyne.ThemeSizeName) float32 {
	if name == theme.SizeNameInnerPadding {
		return t.parent.Size(name) / 2
	}
	return t.parent.Size(name)
}
