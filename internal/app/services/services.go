package services

import (
	"time"

	"github.com/lucasmt/monitoria/internal/pkg/apperrors"
)

// parseDate parses the wire date format used by grade and observation
// payloads.
func parseDate(field, value string) (time.Time, error) {
	date, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return time.Time{}, apperrors.Validation(field, "must be a date in YYYY-MM-DD format")
	}
	return date, nil
}
