package errors

import (
	"context"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyError_Nil(t *testing.T) {
	assert.Nil(t, ClassifyError(nil))
}

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		title    string
		severity ErrorSeverity
	}{
		{
			name:     "wrapped not found",
			err:      fmt.Errorf("load itinerary %q: %w", "paris", ErrItineraryNotFound),
			title:    "Itinerary Not Found",
			severity: SeverityWarning,
		},
		{
			name:     "invalid name",
			err:      fmt.Errorf("save: %w", ErrInvalidName),
			title:    "Invalid Name",
			severity: SeverityError,
		},
		{
			name:     "permission",
			err:      fmt.Errorf("write: %w", fs.ErrPermission),
			title:    "Permission Denied",
			severity: SeverityError,
		},
		{
			name:     "cancelled",
			err:      context.Canceled,
			title:    "Cancelled",
			severity: SeverityInfo,
		},
		{
			name:     "out of range",
			err:      fmt.Errorf("bind 9: %w", ErrPositionOutOfRange),
			title:    "Display Error",
			severity: SeverityFatal,
		},
		{
			name:     "validation",
			err:      ValidationError{Field: "Minutes", Message: "must be a whole number"},
			title:    "Validation Error",
			severity: SeverityError,
		},
		{
			name:     "unknown",
			err:      fmt.Errorf("boom"),
			title:    "Unexpected Error",
			severity: SeverityError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uiErr := ClassifyError(tt.err)
			require.NotNil(t, uiErr)
			assert.Equal(t, tt.title, uiErr.Title)
			assert.Equal(t, tt.severity, uiErr.Severity)
			assert.ErrorIs(t, uiErr, tt.err)
		})
	}
}

func TestClassifyError_PassesThroughUIError(t *testing.T) {
	original := &UIError{Title: "Custom"}
	wrapped := fmt.Errorf("context: %w", original)

	assert.Same(t, original, ClassifyError(wrapped))
}

func TestValidationError_Error(t *testing.T) {
	assert.Equal(t, "Minutes: must be a whole number",
		ValidationError{Field: "Minutes", Message: "must be a whole number"}.Error())
	assert.Equal(t, "bad input", ValidationError{Message: "bad input"}.Error())
}
