package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Clinical border values separating normal from abnormal readings, mg/dL.
const (
	FastingBorderValue     = 100
	AfterEatingBorderValue = 140
)

// Display layouts used by the original desktop form.
const (
	LayoutDisplayDateTime = "02.01.2006 15:04"
	LayoutDisplayDate     = "02.01.2006"
)

var (
	ErrInvalidMode   = errors.New("invalid mode: must be fasting or after_eating")
	ErrInvalidFilter = errors.New("invalid mode filter: must be all, fasting or after_eating")
	ErrInvalidPeriod = errors.New("invalid period: must be year, month, week or day")
)

// MeasurementMode tells whether a measurement was taken fasting or after a meal.
type MeasurementMode int

const (
	ModeFasting MeasurementMode = iota + 1
	ModeAfterEating
)

// Label is the human-readable name shown in lists and chart titles.
func (m MeasurementMode) Label() string {
	switch m {
	case ModeFasting:
		return "fasting"
	case ModeAfterEating:
		return "after eating"
	default:
		return "unknown"
	}
}

// String is the wire form used in JSON bodies and query strings.
func (m MeasurementMode) String() string {
	switch m {
	case ModeFasting:
		return "fasting"
	case ModeAfterEating:
		return "after_eating"
	default:
		return ""
	}
}

// BorderValue returns the clinical threshold for the mode.
func (m MeasurementMode) BorderValue() (int, error) {
	switch m {
	case ModeFasting:
		return FastingBorderValue, nil
	case ModeAfterEating:
		return AfterEatingBorderValue, nil
	default:
		return 0, ErrInvalidMode
	}
}

// Valid reports whether m is one of the enumerated modes.
func (m MeasurementMode) Valid() bool {
	return m == ModeFasting || m == ModeAfterEating
}

// ParseMode accepts "fasting", "after_eating", "after eating" and "after-eating".
func ParseMode(s string) (MeasurementMode, error) {
	switch normalizeToken(s) {
	case "fasting":
		return ModeFasting, nil
	case "after_eating":
		return ModeAfterEating, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}

func (m MeasurementMode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, ErrInvalidMode
	}
	return []byte(m.String()), nil
}

func (m *MeasurementMode) UnmarshalText(b []byte) error {
	v, err := ParseMode(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// ModeFilter restricts an analysis to one mode or keeps all of them.
type ModeFilter int

const (
	FilterAll ModeFilter = iota
	FilterFasting
	FilterAfterEating
)

func (f ModeFilter) String() string {
	switch f {
	case FilterAll:
		return "all"
	case FilterFasting:
		return "fasting"
	case FilterAfterEating:
		return "after_eating"
	default:
		return ""
	}
}

// Mode returns the measurement mode selected by the filter; ok is false for FilterAll.
func (f ModeFilter) Mode() (mode MeasurementMode, ok bool) {
	switch f {
	case FilterFasting:
		return ModeFasting, true
	case FilterAfterEating:
		return ModeAfterEating, true
	default:
		return 0, false
	}
}

// ParseModeFilter treats an empty string as "all".
func ParseModeFilter(s string) (ModeFilter, error) {
	switch normalizeToken(s) {
	case "", "all":
		return FilterAll, nil
	case "fasting":
		return FilterFasting, nil
	case "after_eating":
		return FilterAfterEating, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidFilter, s)
	}
}

// Period is the lookback window ending at a chosen date-time.
type Period int

const (
	PeriodYear Period = iota + 1
	PeriodMonth
	PeriodWeek
	PeriodDay
)

func (p Period) String() string {
	switch p {
	case PeriodYear:
		return "year"
	case PeriodMonth:
		return "month"
	case PeriodWeek:
		return "week"
	case PeriodDay:
		return "day"
	default:
		return ""
	}
}

func ParsePeriod(s string) (Period, error) {
	switch normalizeToken(s) {
	case "year":
		return PeriodYear, nil
	case "month":
		return PeriodMonth, nil
	case "week":
		return PeriodWeek, nil
	case "day":
		return PeriodDay, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidPeriod, s)
	}
}

func normalizeToken(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "-", "_")
	return strings.ReplaceAll(s, " ", "_")
}

// Measurement is a single blood sugar reading. Immutable once stored.
type Measurement struct {
	ID      string          `json:"id"`
	UserID  int             `json:"-"`
	TakenAt time.Time       `json:"taken_at"`
	Value   int             `json:"value"` // mg/dL
	Mode    MeasurementMode `json:"mode"`
}

// String renders the measurement the way the analysis list shows it.
func (m Measurement) String() string {
	return fmt.Sprintf("%s  %d mg/dL  %s", m.TakenAt.Format(LayoutDisplayDateTime), m.Value, m.Mode.Label())
}

// Statistics summarises a set of measurements. Recomputed per query.
type Statistics struct {
	Average float64 `json:"average"`
	Min     int     `json:"min"`
	Max     int     `json:"max"`
}
