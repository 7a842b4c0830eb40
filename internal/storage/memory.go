package storage

import (
	"fmt"
	"sort"
	"sync"

	"github.com/shhac/travelease/internal/domain"
	apperrors "github.com/shhac/travelease/internal/errors"
)

// MemoryRepository implements Repository using in-memory storage for tests
type MemoryRepository struct {
	itineraries map[string]domain.Itinerary
	mu          sync.RWMutex
}

// NewMemoryRepository creates a new in-memory storage repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		itineraries: make(map[string]domain.Itinerary),
	}
}

// SaveItinerary stores an itinerary in memory
func (m *MemoryRepository) SaveItinerary(itinerary domain.Itinerary) error {
	if err := validateName(itinerary.Name); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.itineraries[itinerary.Name] = itinerary
	return nil
}

// LoadItinerary retrieves an itinerary from memory
func (m *MemoryRepository) LoadItinerary(name string) (*domain.Itinerary, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	itinerary, ok := m.itineraries[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrItineraryNotFound, name)
	}

	return &itinerary, nil
}

// ListItineraries returns names of all stored itineraries, sorted
func (m *MemoryRepository) ListItineraries() ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.itineraries))
	for name := range m.itineraries {
		names = append(names, name)
	}
	sort.Strings(names)

	return names, nil
}

// DeleteItinerary removes an itinerary from memory
func (m *MemoryRepository) DeleteItinerary(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.itineraries[name]; !ok {
		return fmt.Errorf("%w: %q", apperrors.ErrItineraryNotFound, name)
	}

	delete(m.itineraries, name)
	return nil
}
