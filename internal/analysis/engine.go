// Package analysis filters, sorts and summarises blood sugar measurements.
// All functions are pure: they never mutate their input slices.
package analysis

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"sugar_tracker/internal/models"

	"github.com/montanaflynn/stats"
)

var (
	ErrInvalidPeriod = models.ErrInvalidPeriod
	ErrEmptyInput    = errors.New("cannot compute statistics of an empty measurement list")
	ErrEmptyResult   = errors.New("there aren't such measurements")
)

// StartDateFor returns the beginning of the window that ends at end.
func StartDateFor(period models.Period, end time.Time) (time.Time, error) {
	switch period {
	case models.PeriodYear:
		return subtractMonths(end, 12), nil
	case models.PeriodMonth:
		return subtractMonths(end, 1), nil
	case models.PeriodWeek:
		return end.AddDate(0, 0, -7), nil
	case models.PeriodDay:
		return end.AddDate(0, 0, -1), nil
	default:
		return time.Time{}, fmt.Errorf("%w: %d", ErrInvalidPeriod, period)
	}
}

// subtractMonths moves t back n months, clamping the day to the end of the target month.
func subtractMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m, 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location()).AddDate(0, -n, 0)
	if last := daysIn(first.Year(), first.Month(), t.Location()); d > last {
		d = last
	}
	return first.AddDate(0, 0, d-1)
}

func daysIn(year int, month time.Month, loc *time.Location) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}

// FilterByMode keeps the measurements taken in mode, preserving order.
func FilterByMode(mode models.MeasurementMode, ms []models.Measurement) []models.Measurement {
	out := make([]models.Measurement, 0, len(ms))
	for _, m := range ms {
		if m.Mode == mode {
			out = append(out, m)
		}
	}
	return out
}

// FilterByPeriod keeps the measurements inside [StartDateFor(period, end), end].
func FilterByPeriod(period models.Period, end time.Time, ms []models.Measurement) ([]models.Measurement, error) {
	start, err := StartDateFor(period, end)
	if err != nil {
		return nil, err
	}
	out := make([]models.Measurement, 0, len(ms))
	for _, m := range ms {
		if !m.TakenAt.Before(start) && !m.TakenAt.After(end) {
			out = append(out, m)
		}
	}
	return out, nil
}

// ComputeStatistics returns the arithmetic mean, minimum and maximum value.
func ComputeStatistics(ms []models.Measurement) (models.Statistics, error) {
	if len(ms) == 0 {
		return models.Statistics{}, ErrEmptyInput
	}
	data := make(stats.Float64Data, len(ms))
	lo, hi := ms[0].Value, ms[0].Value
	for i, m := range ms {
		data[i] = float64(m.Value)
		lo = min(lo, m.Value)
		hi = max(hi, m.Value)
	}
	avg, err := data.Mean()
	if err != nil {
		return models.Statistics{}, fmt.Errorf("mean: %w", err)
	}
	return models.Statistics{Average: avg, Min: lo, Max: hi}, nil
}

// SortChronologically returns a copy of ms sorted by TakenAt; ties keep their input order.
func SortChronologically(ms []models.Measurement) []models.Measurement {
	out := make([]models.Measurement, len(ms))
	copy(out, ms)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TakenAt.Before(out[j].TakenAt)
	})
	return out
}

// Values extracts the sugar values in order.
func Values(ms []models.Measurement) []int {
	out := make([]int, len(ms))
	for i, m := range ms {
		out[i] = m.Value
	}
	return out
}

// Lines renders every measurement as a list line.
func Lines(ms []models.Measurement) []string {
	out := make([]string, len(ms))
	for i, m := range ms {
		out[i] = m.String()
	}
	return out
}
