package domain

import (
	"net/url"
	"strings"
	"time"

	apperrors "github.com/shhac/travelease/internal/errors"
)

// DateLayout is the format of itinerary dates
const DateLayout = "2006-01-02"

// ValidateDate checks that date is a calendar date in DateLayout
func ValidateDate(date string) error {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return apperrors.ValidationError{Field: "date", Message: "must be a date like 2024-05-01"}
	}
	return nil
}

// ValidateMinutes checks that minutes is empty or contains only digits
func ValidateMinutes(minutes string) error {
	for _, r := range minutes {
		if r < '0' || r > '9' {
			return apperrors.ValidationError{Field: "time", Message: "must be a whole number of minutes"}
		}
	}
	return nil
}

// ValidateImageURL checks that raw is empty or an absolute http(s) URL
func ValidateImageURL(raw string) error {
	if raw == "" {
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return apperrors.ValidationError{Field: "image", Message: "must be an http or https URL"}
	}
	return nil
}

// Validate checks every user-editable field of r
func (r Recommendation) Validate() error {
	if strings.TrimSpace(r.PlaceName) == "" {
		return apperrors.ValidationError{Field: "place", Message: "must not be empty"}
	}
	if err := ValidateDate(r.Date); err != nil {
		return err
	}
	if err := ValidateMinutes(r.TimeMinutes); err != nil {
		return err
	}
	return ValidateImageURL(r.ImageURL)
}
