package domain

import "time"

// Itinerary is a saved trip plan
type Itinerary struct {
	Name        string    `json:"name"`
	Destination string    `json:"destination,omitempty"`
	Days        []Day     `json:"days"`
	Expanded    []string  `json:"expanded,omitempty"` // Dates whose places were visible when saved
	UpdatedAt   time.Time `json:"updated_at"`
}

// Day holds the places planned for a single date, in display order
type Day struct {
	Date   string           `json:"date"`
	Places []Recommendation `json:"places"`
}

// Flatten converts days into a backing list: each day's header followed by
// its places.
func Flatten(days []Day) []ListItem {
	var items []ListItem
	for _, day := range days {
		items = append(items, DateHeader{Date: day.Date})
		for _, place := range day.Places {
			items = append(items, place)
		}
	}
	return items
}

// Group folds a backing list into days. Each header starts a new day and
// collects the recommendations that follow it. Recommendations that appear
// before any header cannot be attributed to a day; they are returned
// separately so the caller can decide what to do with them.
func Group(items []ListItem) (days []Day, orphans []Recommendation) {
	for _, item := range items {
		switch v := item.(type) {
		case DateHeader:
			days = append(days, Day{Date: v.Date, Places: []Recommendation{}})
		case Recommendation:
			if len(days) == 0 {
				orphans = append(orphans, v)
				continue
			}
			last := &days[len(days)-1]
			last.Places = append(last.Places, v)
		}
	}
	return days, orphans
}
