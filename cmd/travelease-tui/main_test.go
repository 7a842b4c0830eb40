package main

import (
	"path/filepath"
	"testing"

	"github.com/shhac/travelease/internal/domain"
	"github.com/shhac/travelease/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSaver_RepositoryUsesRequestedName(t *testing.T) {
	repo := storage.NewMemoryRepository()

	save := newSaver("", "paris", repo)
	require.NoError(t, save(domain.Itinerary{Name: "renamed"}))

	_, err := repo.LoadItinerary("paris")
	assert.NoError(t, err)
	names, err := repo.ListItineraries()
	require.NoError(t, err)
	assert.Equal(t, []string{"paris"}, names)
}

func TestNewSaver_RepositoryEmptyStoredName(t *testing.T) {
	repo := storage.NewMemoryRepository()

	save := newSaver("", "lisbon", repo)

	assert.NoError(t, save(domain.Itinerary{}))
}

func TestNewSaver_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trip.json")

	save := newSaver(path, "", nil)
	require.NoError(t, save(domain.Itinerary{Name: "paris", Days: []domain.Day{{Date: "2024-05-01"}}}))

	got, err := storage.ReadItineraryFile(path)
	require.NoError(t, err)
	assert.Equal(t, "paris", got.Name)
	assert.Len(t, got.Days, 1)
}
