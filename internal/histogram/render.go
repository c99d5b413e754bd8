package histogram

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"sugar_tracker/internal/models"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ErrRender wraps any failure of the underlying chart library.
var ErrRender = errors.New("render histogram")

const (
	chartWidth  = 1024
	chartHeight = 480
	barWidth    = 18
	barSpacing  = 4
	maxYTicks   = 10

	legendBoxSize = 12
	legendGap     = 8
)

var (
	colorCritical = drawing.ColorFromHex("d62728")
	colorAbnormal = drawing.ColorFromHex("ff7f0e")
	colorNormal   = drawing.ColorFromHex("2ca02c")
	colorEdge     = drawing.ColorBlack
)

// legend entries in display order
var legend = []struct {
	label string
	color drawing.Color
}{
	{"life at risk", colorCritical},
	{"abnormal blood sugar", colorAbnormal},
	{"normal blood sugar", colorNormal},
}

// Request describes one histogram image.
type Request struct {
	Values []int
	Border int
	Mode   models.MeasurementMode
	Start  time.Time
	End    time.Time
}

// Title names the mode and the period; both dates are shown without a time of day.
func (r Request) Title() string {
	return fmt.Sprintf("Blood sugar - %s, period %s - %s",
		r.Mode.Label(),
		r.Start.Format(models.LayoutDisplayDate),
		r.End.Format(models.LayoutDisplayDate),
	)
}

// CacheKey is a content hash of everything that affects the rendered image.
// Start and End only reach the image through the title's dates, so requests
// ending at different times of the same day share a key.
func (r Request) CacheKey() string {
	h := sha256.New()
	_, _ = fmt.Fprintf(h, "%d|%d|%s|", r.Border, r.Mode, r.Title())
	for _, v := range r.Values {
		_, _ = fmt.Fprintf(h, "%d,", v)
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Render draws the histogram and returns it as PNG bytes.
func Render(req Request) ([]byte, error) {
	if !req.Mode.Valid() {
		return nil, fmt.Errorf("%w: %w", ErrRender, models.ErrInvalidMode)
	}
	bins, err := Bin(req.Values, req.Border)
	if err != nil {
		return nil, err
	}

	bc := newBarChart(req.Title(), bins)
	var buf bytes.Buffer
	if err := bc.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRender, err)
	}
	return buf.Bytes(), nil
}

func newBarChart(title string, bins []models.HistogramBin) chart.BarChart {
	bars := make([]chart.Value, len(bins))
	maxCount := 1
	for i, b := range bins {
		bars[i] = chart.Value{
			Label: strconv.Itoa(b.LowerBound),
			Value: float64(b.Count),
			Style: chart.Style{
				FillColor:   severityColor(b.Severity),
				StrokeColor: colorEdge,
				StrokeWidth: 1,
			},
		}
		maxCount = max(maxCount, b.Count)
	}

	return chart.BarChart{
		Title:      title,
		TitleStyle: chart.Style{FontSize: 13},
		Width:      chartWidth,
		Height:     chartHeight,
		BarWidth:   barWidth,
		BarSpacing: barSpacing,
		Background: chart.Style{
			Padding: chart.Box{Top: 48, Left: 24, Right: 200, Bottom: 48},
		},
		XAxis: chart.Style{FontSize: 7},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: float64(maxCount)},
			Ticks: countTicks(maxCount),
		},
		Bars:     bars,
		Elements: []chart.Renderable{drawLegend},
	}
}

func severityColor(s models.Severity) drawing.Color {
	switch s {
	case models.SeverityCritical:
		return colorCritical
	case models.SeverityAbnormal:
		return colorAbnormal
	default:
		return colorNormal
	}
}

// countTicks builds integer ticks from 0 to maxCount.
func countTicks(maxCount int) []chart.Tick {
	step := int(math.Ceil(float64(maxCount) / maxYTicks))
	step = max(step, 1)
	ticks := make([]chart.Tick, 0, maxYTicks+2)
	for v := 0; v < maxCount; v += step {
		ticks = append(ticks, chart.Tick{Value: float64(v), Label: strconv.Itoa(v)})
	}
	return append(ticks, chart.Tick{Value: float64(maxCount), Label: strconv.Itoa(maxCount)})
}

// drawLegend renders the severity legend right of the plot plus the axis captions.
func drawLegend(r chart.Renderer, canvas chart.Box, defaults chart.Style) {
	text := chart.Style{
		Font:      defaults.Font,
		FontSize:  9,
		FontColor: drawing.ColorBlack,
	}

	x := canvas.Right + 2*legendGap
	y := canvas.Top
	for _, e := range legend {
		chart.Draw.Box(r, chart.Box{Top: y, Left: x, Right: x + legendBoxSize, Bottom: y + legendBoxSize}, chart.Style{
			FillColor:   e.color,
			StrokeColor: colorEdge,
			StrokeWidth: 1,
		})
		chart.Draw.Text(r, e.label, x+legendBoxSize+legendGap, y+legendBoxSize-1, text)
		y += legendBoxSize + legendGap
	}

	chart.Draw.Text(r, "Sugar mg/dl", canvas.Left+canvas.Width()/2-30, canvas.Bottom+36, text)
	chart.Draw.Text(r, "Frequency", canvas.Left, canvas.Top-8, text)
}
