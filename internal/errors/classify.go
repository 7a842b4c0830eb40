package errors

import (
	"context"
	"errors"
	"io/fs"
)

// ErrorSeverity indicates the severity of an error for UI presentation.
type ErrorSeverity int

const (
	SeverityInfo    ErrorSeverity = iota // User should know, not blocking
	SeverityWarning                      // Degraded functionality
	SeverityError                        // Operation failed, can retry
	SeverityFatal                        // Application must exit
)

// UIError wraps an error with UI-friendly presentation metadata.
type UIError struct {
	Err      error
	Severity ErrorSeverity
	Title    string   // Short user-facing title
	Message  string   // Detailed user-facing message
	Recovery []string // Suggested actions (bullet points)
	Details  string   // Technical details (collapsed by default)
}

func (e UIError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Title
}

// Unwrap returns the underlying error.
func (e UIError) Unwrap() error {
	return e.Err
}

// ClassifyError converts an error into a UIError with a title, message and
// recovery suggestions suitable for a dialog.
func ClassifyError(err error) *UIError {
	if err == nil {
		return nil
	}

	var uiErr *UIError
	if errors.As(err, &uiErr) {
		return uiErr
	}

	switch {
	case errors.Is(err, context.Canceled):
		return &UIError{
			Err:      err,
			Severity: SeverityInfo,
			Title:    "Cancelled",
			Message:  "The operation was cancelled.",
		}

	case errors.Is(err, ErrItineraryNotFound):
		return &UIError{
			Err:      err,
			Severity: SeverityWarning,
			Title:    "Itinerary Not Found",
			Message:  "The saved itinerary no longer exists.",
			Recovery: []string{"Refresh the list of saved trips", "Save the current itinerary again"},
			Details:  err.Error(),
		}

	case errors.Is(err, ErrInvalidName):
		return &UIError{
			Err:      err,
			Severity: SeverityError,
			Title:    "Invalid Name",
			Message:  "Itinerary names cannot be empty or contain path separators.",
			Recovery: []string{"Choose a different name"},
			Details:  err.Error(),
		}

	case errors.Is(err, fs.ErrPermission):
		return &UIError{
			Err:      err,
			Severity: SeverityError,
			Title:    "Permission Denied",
			Message:  "The itinerary could not be written to disk.",
			Recovery: []string{"Check the storage directory permissions", "Set TRAVELEASE_STORAGE_PATH to a writable directory"},
			Details:  err.Error(),
		}

	case errors.Is(err, ErrInvalidViewKind), errors.Is(err, ErrPositionOutOfRange):
		return &UIError{
			Err:      err,
			Severity: SeverityFatal,
			Title:    "Display Error",
			Message:  "The itinerary list got out of sync with its contents.",
			Recovery: []string{"Reload the itinerary"},
			Details:  err.Error(),
		}
	}

	var validationErr ValidationError
	if errors.As(err, &validationErr) {
		return &UIError{
			Err:      err,
			Severity: SeverityError,
			Title:    "Validation Error",
			Message:  validationErr.Message,
			Recovery: []string{"Correct the field value and try again"},
			Details:  validationErr.Error(),
		}
	}

	return &UIError{
		Err:      err,
		Severity: SeverityError,
		Title:    "Unexpected Error",
		Message:  "An unexpected error occurred.",
		Recovery: []string{"Try again"},
		Details:  err.Error(),
	}
}
