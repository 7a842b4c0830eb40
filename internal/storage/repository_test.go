package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shhac/travelease/internal/domain"
	apperrors "github.com/shhac/travelease/internal/errors"
	"github.com/shhac/travelease/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleItinerary(name string) domain.Itinerary {
	return domain.Itinerary{
		Name:        name,
		Destination: "Paris",
		Days: []domain.Day{
			{
				Date: "2024-05-01",
				Places: []domain.Recommendation{
					{ID: "1", PlaceName: "Louvre", Price: "17 EUR", TimeMinutes: "120", ImageURL: "https://example.com/louvre.jpg", Date: "2024-05-01"},
				},
			},
			{
				Date: "2024-05-02",
				Places: []domain.Recommendation{
					{ID: "2", PlaceName: "Eiffel Tower", Price: "29 EUR", TimeMinutes: "60", Date: "2024-05-02"},
				},
			},
		},
		Expanded:  []string{"2024-05-01"},
		UpdatedAt: time.Date(2024, 4, 20, 10, 30, 0, 0, time.UTC),
	}
}

// testRepository runs the behaviour every Repository must share
func testRepository(t *testing.T, repo Repository) {
	t.Run("empty list", func(t *testing.T) {
		names, err := repo.ListItineraries()
		require.NoError(t, err)
		assert.Empty(t, names)
	})

	t.Run("round trip", func(t *testing.T) {
		original := sampleItinerary("paris")
		require.NoError(t, repo.SaveItinerary(original))

		loaded, err := repo.LoadItinerary("paris")
		require.NoError(t, err)
		assert.Equal(t, original, *loaded)
	})

	t.Run("overwrite", func(t *testing.T) {
		updated := sampleItinerary("paris")
		updated.Destination = "Versailles"
		require.NoError(t, repo.SaveItinerary(updated))

		loaded, err := repo.LoadItinerary("paris")
		require.NoError(t, err)
		assert.Equal(t, "Versailles", loaded.Destination)
	})

	t.Run("list sorted", func(t *testing.T) {
		require.NoError(t, repo.SaveItinerary(sampleItinerary("lisbon")))

		names, err := repo.ListItineraries()
		require.NoError(t, err)
		assert.Equal(t, []string{"lisbon", "paris"}, names)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := repo.LoadItinerary("tokyo")
		assert.ErrorIs(t, err, apperrors.ErrItineraryNotFound)

		err = repo.DeleteItinerary("tokyo")
		assert.ErrorIs(t, err, apperrors.ErrItineraryNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.DeleteItinerary("lisbon"))

		names, err := repo.ListItineraries()
		require.NoError(t, err)
		assert.Equal(t, []string{"paris"}, names)
	})

	t.Run("invalid name", func(t *testing.T) {
		err := repo.SaveItinerary(domain.Itinerary{Name: "../escape"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidName)
	})
}

func TestJSONRepository(t *testing.T) {
	testRepository(t, NewJSONRepository(t.TempDir(), logging.NewNopLogger()))
}

func TestMemoryRepository(t *testing.T) {
	testRepository(t, NewMemoryRepository())
}

func TestJSONRepository_FileLayout(t *testing.T) {
	dir := t.TempDir()
	repo := NewJSONRepository(dir, logging.NewNopLogger())

	require.NoError(t, repo.SaveItinerary(sampleItinerary("weekend in paris")))

	data, err := os.ReadFile(filepath.Join(dir, itinerariesDir, "weekend in paris.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"place_name": "Louvre"`)
	assert.Contains(t, string(data), `"expanded": [`)
}

func TestJSONRepository_ListIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	repo := NewJSONRepository(dir, logging.NewNopLogger())
	require.NoError(t, repo.SaveItinerary(sampleItinerary("paris")))

	base := filepath.Join(dir, itinerariesDir)
	require.NoError(t, os.WriteFile(filepath.Join(base, "notes.txt"), []byte("x"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(base, "archive.json"), 0755))

	names, err := repo.ListItineraries()
	require.NoError(t, err)
	assert.Equal(t, []string{"paris"}, names)
}

func TestJSONRepository_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	repo := NewJSONRepository(dir, logging.NewNopLogger())
	base := filepath.Join(dir, itinerariesDir)
	require.NoError(t, os.MkdirAll(base, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(base, "broken.json"), []byte("{not json"), 0644))

	_, err := repo.LoadItinerary("broken")
	require.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrItineraryNotFound)
}

func TestJSONRepository_PathTraversal(t *testing.T) {
	repo := NewJSONRepository(t.TempDir(), logging.NewNopLogger())

	for _, name := range []string{"../../etc/passwd", "../escape", "foo/bar", "back\\slash"} {
		assert.ErrorIs(t, repo.SaveItinerary(domain.Itinerary{Name: name}), apperrors.ErrInvalidName, name)

		_, err := repo.LoadItinerary(name)
		assert.ErrorIs(t, err, apperrors.ErrInvalidName, name)

		assert.ErrorIs(t, repo.DeleteItinerary(name), apperrors.ErrInvalidName, name)
	}
}

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"paris-2024", false},
		{"weekend trip", false},
		{"with.dots", false},
		{"unicode-東京", false},
		{"", true},
		{"   ", true},
		{"..", true},
		{"foo/../bar", true},
		{"path/sep", true},
		{"back\\slash", true},
		{"has\x00null", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateName(tt.name)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateName(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
		})
	}
}

func TestAtomicWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.json")

	if err := atomicWriteFile(path, []byte("old"), 0644); err != nil {
		t.Fatalf("first write failed: %v", err)
	}
	if err := atomicWriteFile(path, []byte("new"), 0644); err != nil {
		t.Fatalf("second write failed: %v", err)
	}

	got, _ := os.ReadFile(path)
	if string(got) != "new" {
		t.Errorf("got %q, want %q", got, "new")
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0644 {
		t.Errorf("permissions = %o, want 0644", perm)
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("expected only the target file, found %d entries", len(entries))
	}
}

func TestAtomicWriteFile_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nodir", "test.json")
	if err := atomicWriteFile(path, []byte("data"), 0644); err == nil {
		t.Fatal("expected error writing to non-existent directory")
	}
}
