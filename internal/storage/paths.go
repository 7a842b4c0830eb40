package storage

import (
	"os"
	"path/filepath"
)

const appDir = ".travelease"

// DefaultStoragePath returns the default storage location
// Platform-specific paths:
//   - macOS/Linux: ~/.travelease
//   - Windows: %USERPROFILE%\.travelease
func DefaultStoragePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, appDir), nil
}
