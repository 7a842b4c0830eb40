package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shhac/travelease/internal/domain"
	apperrors "github.com/shhac/travelease/internal/errors"
)

// ReadItineraryFile reads an itinerary from an arbitrary JSON file. A file
// without a name is named after the file.
func ReadItineraryFile(path string) (*domain.Itinerary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrItineraryNotFound, path)
		}
		return nil, fmt.Errorf("read itinerary file: %w", err)
	}

	var itinerary domain.Itinerary
	if err := json.Unmarshal(data, &itinerary); err != nil {
		return nil, fmt.Errorf("unmarshal itinerary: %w", err)
	}
	if itinerary.Name == "" {
		itinerary.Name = strings.TrimSuffix(filepath.Base(path), fileExt)
	}

	return &itinerary, nil
}

// WriteItineraryFile atomically writes itinerary to path
func WriteItineraryFile(path string, itinerary domain.Itinerary) error {
	data, err := json.MarshalIndent(itinerary, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal itinerary: %w", err)
	}
	if err := atomicWriteFile(path, data, filePermission); err != nil {
		return fmt.Errorf("write itinerary file: %w", err)
	}
	return nil
}
