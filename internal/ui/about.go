package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// Version is set at build time via ldflags:
//
//	go build -ldflags "-X github.com/shhac/travelease/internal/ui.Version=1.2.3"
var Version = "dev"

// shortcuts lists the keyboard shortcuts shown in the reference dialog
var shortcuts = []struct{ action, key string }{
	{"Save Itinerary", "⌘ S"},
	{"Add Place", "⌘ N"},
	{"Expand All Dates", "⌘ E"},
	{"Collapse All Dates", "⌘ ⇧ E"},
	{"Preferences", "⌘ ,"},
}

// ShowAboutDialog displays information about the TravelEase application.
func ShowAboutDialog(parent fyne.Window) {
	content := container.NewVBox(
		widget.NewLabelWithStyle("TravelEase", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		widget.NewLabel("Plan the places you visit, day by day"),
		widget.NewLabel("Version "+Version),
		widget.NewSeparator(),
		widget.NewLabel("Built with Fyne and Go"),
	)
	dialog.ShowCustom("About TravelEase", "Close", content, parent)
}

// ShowShortcutDialog displays a reference of all keyboard shortcuts.
func ShowShortcutDialog(parent fyne.Window) {
	grid := container.NewGridWithColumns(2)
	for _, s := range shortcuts {
		grid.Add(widget.NewLabel(s.action))
		grid.Add(widget.NewLabelWithStyle(s.key, fyne.TextAlignTrailing, fyne.TextStyle{Monospace: true}))
	}

	dialog.ShowCustom("Keyboard Shortcuts", "Close", container.NewVScroll(grid), parent)
}
