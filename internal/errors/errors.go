package errors

import "errors"

// Sentinel errors for common failure modes.
var (
	ErrInvalidViewKind    = errors.New("invalid view kind")
	ErrPositionOutOfRange = errors.New("visible position out of range")
	ErrItineraryNotFound  = errors.New("itinerary not found")
	ErrInvalidName        = errors.New("invalid itinerary name")
)

// ValidationError represents a field validation failure.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}
