package models

import "fmt"

// Severity classifies a histogram bin for coloring.
type Severity int

const (
	SeverityNormal Severity = iota
	SeverityAbnormal
	SeverityCritical
)

func (s Severity) String() string {
	switch s {
	case SeverityAbnormal:
		return "abnormal"
	case SeverityCritical:
		return "critical"
	default:
		return "normal"
	}
}

func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Severity) UnmarshalText(b []byte) error {
	switch string(b) {
	case "normal":
		*s = SeverityNormal
	case "abnormal":
		*s = SeverityAbnormal
	case "critical":
		*s = SeverityCritical
	default:
		return fmt.Errorf("unknown severity %q", b)
	}
	return nil
}

// HistogramBin is one fixed-width bucket of the sugar histogram: [LowerBound, UpperBound).
type HistogramBin struct {
	LowerBound int      `json:"lower_bound"`
	UpperBound int      `json:"upper_bound"`
	Count      int      `json:"count"`
	Severity   Severity `json:"severity"`
}
