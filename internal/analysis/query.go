package analysis

import (
	"fmt"
	"time"

	"sugar_tracker/internal/models"
)

// Query selects measurements for one analysis run.
type Query struct {
	Period models.Period
	End    time.Time
	Filter models.ModeFilter
}

// Result is the outcome of a successful Run.
type Result struct {
	Query        Query
	Start        time.Time
	Measurements []models.Measurement // chronological
	Statistics   models.Statistics
	// BorderValue is set only when Query.Filter selects a single mode.
	BorderValue *int
}

// Mode returns the selected measurement mode, if any.
func (r Result) Mode() (models.MeasurementMode, bool) {
	return r.Query.Filter.Mode()
}

// Run applies the mode filter first, then the period filter, and summarises what is left.
// An empty list after either step yields ErrEmptyResult.
func Run(q Query, ms []models.Measurement) (Result, error) {
	if q.Filter.String() == "" {
		return Result{}, fmt.Errorf("%w: %d", models.ErrInvalidFilter, q.Filter)
	}
	start, err := StartDateFor(q.Period, q.End)
	if err != nil {
		return Result{}, err
	}

	res := Result{Query: q, Start: start}
	if mode, ok := q.Filter.Mode(); ok {
		border, err := mode.BorderValue()
		if err != nil {
			return Result{}, err
		}
		res.BorderValue = &border
		ms = FilterByMode(mode, ms)
	}
	if len(ms) == 0 {
		return Result{}, ErrEmptyResult
	}

	inPeriod, err := FilterByPeriod(q.Period, q.End, ms)
	if err != nil {
		return Result{}, err
	}
	if len(inPeriod) == 0 {
		return Result{}, ErrEmptyResult
	}

	st, err := ComputeStatistics(inPeriod)
	if err != nil {
		return Result{}, err
	}
	res.Statistics = st
	res.Measurements = SortChronologically(inPeriod)
	return res, nil
}
