package app

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shhac/travelease/internal/domain"
	"github.com/shhac/travelease/internal/itinerary"
	"github.com/shhac/travelease/internal/model"
	"github.com/shhac/travelease/internal/storage"
)

// Trip is the itinerary open in the window: a grouped list plus the name it
// is saved under. It keeps the application state bindings in step with the
// list. All methods must be called on the UI goroutine.
type Trip struct {
	repo   storage.Repository
	state  *model.ApplicationState
	logger *slog.Logger

	list        *itinerary.GroupedList
	name        string
	destination string
}

// NewTrip creates an empty, unnamed trip
func NewTrip(repo storage.Repository, state *model.ApplicationState, logger *slog.Logger) *Trip {
	t := &Trip{
		repo:   repo,
		state:  state,
		logger: logger,
		list:   itinerary.NewGroupedList(nil, itinerary.WithLogger(logger)),
	}

	t.list.OnChange(func(itinerary.Change) {
		t.syncCounts()
		_ = t.state.Dirty.Set(true)
	})
	t.syncCounts()

	return t
}

// List returns the grouped list backing the open itinerary
func (t *Trip) List() *itinerary.GroupedList {
	return t.list
}

// Name returns the name the trip was last saved or opened under
func (t *Trip) Name() string {
	return t.name
}

// Snapshot returns the trip as it would be saved
func (t *Trip) Snapshot() domain.Itinerary {
	return domain.Itinerary{
		Name:        t.name,
		Destination: t.destination,
		Days:        t.list.Days(),
		Expanded:    t.list.ExpandedDates(),
		UpdatedAt:   time.Now().UTC(),
	}
}

// New replaces the open trip with an empty one
func (t *Trip) New(destination string) {
	t.list.CollapseAll()
	t.list.ReplaceAll(nil)
	t.setIdentity("", destination)
	_ = t.state.Dirty.Set(false)
	t.setStatus("idle", "New itinerary")
}

// Save stores the trip under name and makes name the current itinerary
func (t *Trip) Save(name string) error {
	name = strings.TrimSpace(name)
	snapshot := t.Snapshot()
	snapshot.Name = name

	if err := t.repo.SaveItinerary(snapshot); err != nil {
		t.setStatus("error", "Save failed")
		return fmt.Errorf("save itinerary %q: %w", name, err)
	}

	t.logger.Info("itinerary saved",
		slog.String("name", name),
		slog.Int("days", len(snapshot.Days)))

	t.setIdentity(name, snapshot.Destination)
	_ = t.state.Dirty.Set(false)
	t.setStatus("saved", "Saved "+name)
	return t.RefreshNames()
}

// Open loads the saved itinerary name into the list
func (t *Trip) Open(name string) error {
	saved, err := t.repo.LoadItinerary(name)
	if err != nil {
		t.setStatus("error", "Open failed")
		return fmt.Errorf("open itinerary %q: %w", name, err)
	}

	t.list.CollapseAll()
	t.list.ReplaceAll(domain.Flatten(saved.Days))
	for _, date := range saved.Expanded {
		t.list.Expand(date)
	}

	t.logger.Info("itinerary opened",
		slog.String("name", name),
		slog.Int("items", t.list.ItemCount()))

	t.setIdentity(name, saved.Destination)
	_ = t.state.Dirty.Set(false)
	t.setStatus("idle", "Opened "+name)
	return nil
}

// Delete removes a saved itinerary. The open trip keeps its places but
// loses its name if it was the one deleted.
func (t *Trip) Delete(name string) error {
	if err := t.repo.DeleteItinerary(name); err != nil {
		return fmt.Errorf("delete itinerary %q: %w", name, err)
	}

	t.logger.Info("itinerary deleted", slog.String("name", name))

	if name == t.name {
		t.setIdentity("", t.destination)
		_ = t.state.Dirty.Set(true)
	}
	t.setStatus("idle", "Deleted "+name)
	return t.RefreshNames()
}

// RefreshNames reloads the saved itinerary names into the state
func (t *Trip) RefreshNames() error {
	names, err := t.repo.ListItineraries()
	if err != nil {
		return fmt.Errorf("list itineraries: %w", err)
	}
	return t.state.Itineraries.Set(names)
}

// AddPlace validates place and adds it under its date
func (t *Trip) AddPlace(place domain.Recommendation) error {
	if err := place.Validate(); err != nil {
		return err
	}
	if place.ID == "" {
		place = domain.NewRecommendation(place.PlaceName, place.Price, place.TimeMinutes, place.ImageURL, place.Date)
	}

	t.list.AddItemToDate(place, place.Date)
	t.logger.Debug("place added",
		slog.String("place", place.PlaceName),
		slog.String("date", place.Date))
	return nil
}

// RemovePlace removes place from the list, reporting whether it was there
func (t *Trip) RemovePlace(place domain.Recommendation) bool {
	removed := t.list.RemoveItem(place)
	if removed {
		t.logger.Debug("place removed",
			slog.String("place", place.PlaceName),
			slog.String("date", place.Date))
	}
	return removed
}

// SetMinutes changes the planned minutes of place
func (t *Trip) SetMinutes(place domain.Recommendation, minutes string) error {
	if err := domain.ValidateMinutes(minutes); err != nil {
		return err
	}
	if place.TimeMinutes == minutes {
		return nil
	}

	place.TimeMinutes = minutes
	if !t.list.UpdateRecommendation(place) {
		t.logger.Warn("minutes changed for unknown place", slog.String("id", place.ID))
	}
	return nil
}

// Select records place as the last one the user picked
func (t *Trip) Select(place domain.Recommendation) {
	_ = t.state.SelectedPlace.Set(place.PlaceName)
	t.setStatus("idle", fmt.Sprintf("%s on %s", place.PlaceName, place.Date))
}

func (t *Trip) setIdentity(name, destination string) {
	t.name = name
	t.destination = destination
	_ = t.state.CurrentItinerary.Set(name)
	_ = t.state.Destination.Set(destination)
}

func (t *Trip) setStatus(state, message string) {
	_ = t.state.Status.State.Set(state)
	_ = t.state.Status.Message.Set(message)
}

func (t *Trip) syncCounts() {
	places := 0
	for _, item := range t.list.Items() {
		if _, ok := item.(domain.Recommendation); ok {
			places++
		}
	}
	_ = t.state.VisibleCount.Set(t.list.ItemCount())
	_ = t.state.PlaceCount.Set(places)
}
