package storage

import "github.com/shhac/travelease/internal/domain"

// Repository defines persistence operations for saved itineraries
type Repository interface {
	SaveItinerary(itinerary domain.Itinerary) error
	LoadItinerary(name string) (*domain.Itinerary, error)
	ListItineraries() ([]string, error)
	DeleteItinerary(name string) error
}
