// Package histogram buckets blood sugar values into fixed-width bins,
// colors each bin by clinical severity and renders the result as a PNG.
package histogram

import (
	"errors"
	"fmt"

	"sugar_tracker/internal/models"
)

// Bin layout: BinCount bins of BinWidth mg/dL covering [MinValue, MaxValue).
const (
	BinWidth = 10
	MinValue = 10
	MaxValue = 400
	BinCount = (MaxValue - MinValue) / BinWidth // 39

	// Index ranges of the fixed severity bands.
	lowCriticalEnd  = 4  // [0,4): hypoglycaemia, life at risk
	lowAbnormalEnd  = 6  // [4,6)
	highCriticalBeg = 19 // [19,39): high sugar danger zone
)

var (
	ErrInvalidBorder = errors.New("border value puts the abnormal band outside the histogram")
	ErrBinIndex      = errors.New("bin index out of range")
)

// BandStart returns the first bin index of the border-dependent abnormal band.
func BandStart(border int) (int, error) {
	start := border/BinWidth - 1
	if start < 0 || start > highCriticalBeg {
		return 0, fmt.Errorf("%w: border %d gives band start %d", ErrInvalidBorder, border, start)
	}
	return start, nil
}

// SeverityFor maps a bin index to its severity for the given border value.
// The border band [BandStart(border), 19) overrides the fixed bands.
func SeverityFor(index, border int) (models.Severity, error) {
	if index < 0 || index >= BinCount {
		return models.SeverityNormal, fmt.Errorf("%w: %d", ErrBinIndex, index)
	}
	band, err := BandStart(border)
	if err != nil {
		return models.SeverityNormal, err
	}

	switch {
	case index >= band && index < highCriticalBeg:
		return models.SeverityAbnormal, nil
	case index < lowCriticalEnd, index >= highCriticalBeg:
		return models.SeverityCritical, nil
	case index < lowAbnormalEnd:
		return models.SeverityAbnormal, nil
	default:
		return models.SeverityNormal, nil
	}
}

// BinIndex returns the bin a value falls into; ok is false outside [MinValue, MaxValue).
func BinIndex(value int) (index int, ok bool) {
	if value < MinValue || value >= MaxValue {
		return 0, false
	}
	return (value - MinValue) / BinWidth, true
}

// Bin counts values per bin and assigns every bin its severity.
func Bin(values []int, border int) ([]models.HistogramBin, error) {
	if _, err := BandStart(border); err != nil {
		return nil, err
	}

	bins := make([]models.HistogramBin, BinCount)
	for i := range bins {
		sev, err := SeverityFor(i, border)
		if err != nil {
			return nil, err
		}
		lower := MinValue + i*BinWidth
		bins[i] = models.HistogramBin{LowerBound: lower, UpperBound: lower + BinWidth, Severity: sev}
	}
	for _, v := range values {
		if i, ok := BinIndex(v); ok {
			bins[i].Count++
		}
	}
	return bins, nil
}
