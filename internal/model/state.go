package model

import "fyne.io/fyne/v2/data/binding"

// ApplicationState represents the centralized application state with Fyne data bindings.
// All UI components bind to these values for reactive updates.
type ApplicationState struct {
	// Trip selection
	CurrentItinerary binding.String
	Destination      binding.String
	Itineraries      binding.StringList // saved itinerary names

	// Itinerary list state
	VisibleCount  binding.Int    // rows the list currently shows
	PlaceCount    binding.Int    // places across all days
	SelectedPlace binding.String // name of the last place clicked

	// Dirty is true when the open itinerary has unsaved changes
	Dirty binding.Bool

	Status *StatusState
}

// NewApplicationState creates a new ApplicationState with initialized bindings.
func NewApplicationState() *ApplicationState {
	return &ApplicationState{
		CurrentItinerary: binding.NewString(),
		Destination:      binding.NewString(),
		Itineraries:      binding.NewStringList(),
		VisibleCount:     binding.NewInt(),
		PlaceCount:       binding.NewInt(),
		SelectedPlace:    binding.NewString(),
		Dirty:            binding.NewBool(),
		Status:           NewStatusState(),
	}
}

// StatusState backs the status bar.
// States: "idle", "saved", "error"
type StatusState struct {
	State   binding.String
	Message binding.String
}

// NewStatusState creates a new StatusState with initialized bindings.
func NewStatusState() *StatusState {
	state := binding.NewString()
	_ = state.Set("idle")

	return &StatusState{
		State:   state,
		Message: binding.NewString(),
	}
}
