package imageload

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Placeholder is shown while a place photo loads and when it cannot be loaded
var Placeholder = theme.NewThemedResource(
	fyne.NewStaticResource("place-placeholder.svg", []byte(`<svg xmlns="http://www.w3.org/2000/svg" width="24" height="24" viewBox="0 0 24 24"><path fill="#000000" d="M21 19V5c0-1.1-.9-2-2-2H5c-1.1 0-2 .9-2 2v14c0 1.1.9 2 2 2h14c1.1 0 2-.9 2-2zM8.5 13.5l2.5 3.01L14.5 12l4.5 6H5l3.5-4.5z"/></svg>`)),
)
