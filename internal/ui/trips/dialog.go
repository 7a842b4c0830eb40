package trips

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
)

// ShowDeleteConfirm shows a confirmation dialog before deleting a saved itinerary
func ShowDeleteConfirm(parent fyne.Window, name string, onConfirm func()) {
	dialog.ShowConfirm("Delete Itinerary",
		"Are you sure you want to delete itinerary '"+name+"'? This cannot be undone.",
		func(confirmed bool) {
			if confirmed {
				onConfirm()
			}
		},
		parent,
	)
}

// ShowOverwriteConfirm asks before replacing a saved itinerary
func ShowOverwriteConfirm(parent fyne.Window, name string, onConfirm func()) {
	dialog.ShowConfirm("Overwrite Itinerary",
		"Itinerary '"+name+"' already exists. Overwrite it?",
		func(confirmed bool) {
			if confirmed {
				onConfirm()
			}
		},
		parent,
	)
}

// ShowDiscardConfirm asks before dropping unsaved changes
func ShowDiscardConfirm(parent fyne.Window, onConfirm func()) {
	dialog.ShowConfirm("Unsaved Changes",
		"The open itinerary has unsaved changes. Discard them?",
		func(confirmed bool) {
			if confirmed {
				onConfirm()
			}
		},
		parent,
	)
}
