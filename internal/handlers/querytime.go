package handlers

import (
	"fmt"
	"strings"
	"time"

	"sugar_tracker/internal/models"
)

const (
	layoutDateTime      = "2006-01-02 15:04:05"
	layoutDateTimeShort = "2006-01-02 15:04"
	layoutDate          = "2006-01-02"
)

// acceptedLayouts lists query/body time formats in the order they are tried.
var acceptedLayouts = []string{
	time.RFC3339,
	layoutDateTime,
	layoutDateTimeShort,
	models.LayoutDisplayDateTime,
	layoutDate,
}

// isDateOnly reports whether the query string represents a date without time component.
func isDateOnly(s string) bool {
	return !strings.ContainsAny(s, "T :")
}

func parseQueryTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range acceptedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf(
		"invalid time format %q, expected one of: "+
			"RFC3339 (e.g. 2025-08-27T15:04:05Z), "+
			"'YYYY-MM-DD HH:MM:SS', 'YYYY-MM-DD HH:MM', 'DD.MM.YYYY HH:MM', "+
			"'YYYY-MM-DD'",
		s,
	)
}

// parseUpperBound parses an inclusive upper bound; a date-only value means the end of that day.
func parseUpperBound(s string) (time.Time, error) {
	t, err := parseQueryTime(s)
	if err != nil {
		return time.Time{}, err
	}
	if isDateOnly(s) {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return t, nil
}
