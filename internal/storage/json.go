package storage

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/shhac/travelease/internal/domain"
	apperrors "github.com/shhac/travelease/internal/errors"
)

const (
	itinerariesDir = "itineraries"
	fileExt        = ".json"
	filePermission = 0644
	dirPermission  = 0755
)

// JSONRepository stores each itinerary as a JSON file under
// <basePath>/itineraries.
type JSONRepository struct {
	basePath string
	logger   *slog.Logger
}

// NewJSONRepository creates a new JSON-based storage repository
func NewJSONRepository(basePath string, logger *slog.Logger) *JSONRepository {
	return &JSONRepository{
		basePath: basePath,
		logger:   logger,
	}
}

// SaveItinerary writes an itinerary, replacing any previous version
func (r *JSONRepository) SaveItinerary(itinerary domain.Itinerary) error {
	path, err := r.itineraryPath(itinerary.Name)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), dirPermission); err != nil {
		return fmt.Errorf("create itineraries directory: %w", err)
	}

	data, err := json.MarshalIndent(itinerary, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal itinerary: %w", err)
	}

	if err := atomicWriteFile(path, data, filePermission); err != nil {
		return fmt.Errorf("write itinerary file: %w", err)
	}

	r.logger.Debug("saved itinerary",
		slog.String("name", itinerary.Name),
		slog.Int("days", len(itinerary.Days)),
		slog.String("path", path))

	return nil
}

// LoadItinerary reads an itinerary by name
func (r *JSONRepository) LoadItinerary(name string) (*domain.Itinerary, error) {
	path, err := r.itineraryPath(name)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %q", apperrors.ErrItineraryNotFound, name)
		}
		return nil, fmt.Errorf("read itinerary file: %w", err)
	}

	var itinerary domain.Itinerary
	if err := json.Unmarshal(data, &itinerary); err != nil {
		return nil, fmt.Errorf("unmarshal itinerary: %w", err)
	}

	r.logger.Debug("loaded itinerary",
		slog.String("name", name),
		slog.String("path", path))

	return &itinerary, nil
}

// ListItineraries returns the names of all saved itineraries, sorted
func (r *JSONRepository) ListItineraries() ([]string, error) {
	dir := filepath.Join(r.basePath, itinerariesDir)

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("read itineraries directory: %w", err)
	}

	names := []string{}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != fileExt {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), fileExt))
	}
	sort.Strings(names)

	r.logger.Debug("listed itineraries", slog.Int("count", len(names)))
	return names, nil
}

// DeleteItinerary removes a saved itinerary
func (r *JSONRepository) DeleteItinerary(name string) error {
	path, err := r.itineraryPath(name)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %q", apperrors.ErrItineraryNotFound, name)
		}
		return fmt.Errorf("delete itinerary file: %w", err)
	}

	r.logger.Debug("deleted itinerary",
		slog.String("name", name),
		slog.String("path", path))

	return nil
}

// itineraryPath validates name and returns its file path, which is
// guaranteed to be inside the itineraries directory.
func (r *JSONRepository) itineraryPath(name string) (string, error) {
	if err := validateName(name); err != nil {
		return "", err
	}

	base := filepath.Join(r.basePath, itinerariesDir)
	path := filepath.Join(base, name+fileExt)
	rel, err := filepath.Rel(base, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return "", fmt.Errorf("%w: %q escapes the itineraries directory", apperrors.ErrInvalidName, name)
	}
	return path, nil
}

// atomicWriteFile writes data to a file atomically by writing to a temp file
// in the same directory, syncing, then renaming over the target path.
func atomicWriteFile(path string, data []byte, perm os.FileMode) error {
	f, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := f.Name()

	success := false
	defer func() {
		if !success {
			os.Remove(tmpPath)
		}
	}()

	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}

	success = true
	return nil
}

// validateName checks that an itinerary name is safe for use as a filename.
func validateName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return fmt.Errorf("%w: name must not be empty", apperrors.ErrInvalidName)
	case strings.Contains(name, ".."):
		return fmt.Errorf("%w: name must not contain %q", apperrors.ErrInvalidName, "..")
	case strings.ContainsAny(name, "/\\"):
		return fmt.Errorf("%w: name must not contain path separators", apperrors.ErrInvalidName)
	case strings.ContainsRune(name, 0):
		return fmt.Errorf("%w: name must not contain null bytes", apperrors.ErrInvalidName)
	}
	return nil
}
