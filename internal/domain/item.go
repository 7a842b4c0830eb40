package domain

import "github.com/google/uuid"

// ListItem is an entry of an itinerary's backing list: either a DateHeader
// or a Recommendation. The set of variants is closed.
type ListItem interface {
	isListItem()
}

// DateHeader marks the start of the places planned for one date
type DateHeader struct {
	Date string `json:"date"`
}

// Recommendation is a recommended place planned for a date
type Recommendation struct {
	ID          string `json:"id"`
	PlaceName   string `json:"place_name"`
	Price       string `json:"price"`
	TimeMinutes string `json:"time_minutes"` // Minutes to spend at the place, digits only
	ImageURL    string `json:"image_url"`
	Date        string `json:"date"`
}

func (DateHeader) isListItem()     {}
func (Recommendation) isListItem() {}

// NewRecommendation creates a recommendation with a fresh ID
func NewRecommendation(placeName, price, timeMinutes, imageURL, date string) Recommendation {
	return Recommendation{
		ID:          uuid.NewString(),
		PlaceName:   placeName,
		Price:       price,
		TimeMinutes: timeMinutes,
		ImageURL:    imageURL,
		Date:        date,
	}
}
