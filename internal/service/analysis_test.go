package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"sugar_tracker/internal/analysis"
	"sugar_tracker/internal/histogram"
	"sugar_tracker/internal/logger"
	"sugar_tracker/internal/models"
)

func sampleRows() []models.Measurement {
	day := func(d, h int) time.Time { return time.Date(2025, time.April, d, h, 0, 0, 0, time.UTC) }
	return []models.Measurement{
		{ID: "1", TakenAt: day(9, 7), Value: 101, Mode: models.ModeFasting},
		{ID: "2", TakenAt: day(9, 13), Value: 180, Mode: models.ModeAfterEating},
		{ID: "3", TakenAt: day(8, 7), Value: 92, Mode: models.ModeFasting},
		{ID: "4", TakenAt: day(1, 7), Value: 85, Mode: models.ModeFasting},
	}
}

func newTestAnalysis(repo *fakeMeasurementRepo, c *fakeCache) *AnalysisService {
	s := NewAnalysisService(repo, c, logger.Nop())
	s.now = func() time.Time { return fixedNow }
	return s
}

func TestAnalysisService_AnalyzeFasting(t *testing.T) {
	t.Parallel()

	repo := &fakeMeasurementRepo{rows: sampleRows()}
	rep, err := newTestAnalysis(repo, newFakeCache()).Analyze(context.Background(), 3, analysis.Query{
		Period: models.PeriodWeek,
		End:    fixedNow,
		Filter: models.FilterFasting,
	})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if len(rep.Measurements) != 2 || rep.Measurements[0].ID != "3" || rep.Measurements[1].ID != "1" {
		t.Fatalf("unexpected measurements: %+v", rep.Measurements)
	}
	if rep.BorderValue == nil || *rep.BorderValue != models.FastingBorderValue {
		t.Fatalf("border: got %v", rep.BorderValue)
	}
	if len(rep.Bins) != histogram.BinCount {
		t.Fatalf("bins: got %d; want %d", len(rep.Bins), histogram.BinCount)
	}
	if rep.Statistics.Min != 92 || rep.Statistics.Max != 101 {
		t.Fatalf("unexpected statistics: %+v", rep.Statistics)
	}

	call := repo.listArgs[0]
	if call.userID != 3 || !call.to.Equal(fixedNow) || !call.from.Equal(fixedNow.AddDate(0, 0, -7)) {
		t.Fatalf("unexpected window: %+v", call)
	}
}

func TestAnalysisService_AnalyzeAllHasNoBins(t *testing.T) {
	t.Parallel()

	repo := &fakeMeasurementRepo{rows: sampleRows()}
	rep, err := newTestAnalysis(repo, newFakeCache()).Analyze(context.Background(), 1, analysis.Query{
		Period: models.PeriodDay,
		Filter: models.FilterAll,
	})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if rep.BorderValue != nil || rep.Bins != nil {
		t.Fatalf("all-mode report must not carry border or bins: %+v", rep)
	}
	if len(rep.Measurements) != 1 || rep.Measurements[0].ID != "2" {
		t.Fatalf("expected only the reading of the last 24h, got %+v", rep.Measurements)
	}
	if !rep.Query.End.Equal(fixedNow) {
		t.Fatalf("zero end should default to now, got %v", rep.Query.End)
	}
}

func TestAnalysisService_AnalyzeErrors(t *testing.T) {
	t.Parallel()

	boom := errors.New("db gone")
	cases := []struct {
		name string
		repo *fakeMeasurementRepo
		q    analysis.Query
		want error
	}{
		{"empty", &fakeMeasurementRepo{}, analysis.Query{Period: models.PeriodYear, End: fixedNow}, analysis.ErrEmptyResult},
		{"no after eating in window", &fakeMeasurementRepo{rows: sampleRows()},
			analysis.Query{Period: models.PeriodDay, End: fixedNow.AddDate(0, 0, -2), Filter: models.FilterAfterEating}, analysis.ErrEmptyResult},
		{"bad period", &fakeMeasurementRepo{}, analysis.Query{Period: 0, End: fixedNow}, models.ErrInvalidPeriod},
		{"bad filter", &fakeMeasurementRepo{}, analysis.Query{Period: models.PeriodDay, Filter: 5}, models.ErrInvalidFilter},
		{"repo error", &fakeMeasurementRepo{err: boom}, analysis.Query{Period: models.PeriodDay}, boom},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := newTestAnalysis(tc.repo, newFakeCache()).Analyze(context.Background(), 1, tc.q)
			if !errors.Is(err, tc.want) {
				t.Fatalf("got %v; want %v", err, tc.want)
			}
		})
	}
}

func TestAnalysisService_HistogramCaches(t *testing.T) {
	t.Parallel()

	c := newFakeCache()
	svc := newTestAnalysis(&fakeMeasurementRepo{rows: sampleRows()}, c)
	renders := 0
	var got histogram.Request
	svc.render = func(req histogram.Request) ([]byte, error) {
		renders++
		got = req
		return []byte("png"), nil
	}

	q := analysis.Query{Period: models.PeriodMonth, End: fixedNow, Filter: models.FilterAfterEating}
	for i := 0; i < 2; i++ {
		img, err := svc.Histogram(context.Background(), 1, q)
		if err != nil {
			t.Fatalf("Histogram #%d: %v", i, err)
		}
		if string(img) != "png" {
			t.Fatalf("unexpected image %q", img)
		}
	}
	if renders != 1 {
		t.Fatalf("second call should hit the cache, rendered %d times", renders)
	}
	if c.gets != 2 || c.sets != 1 {
		t.Fatalf("cache usage: gets=%d sets=%d", c.gets, c.sets)
	}
	if got.Border != models.AfterEatingBorderValue || got.Mode != models.ModeAfterEating {
		t.Fatalf("unexpected render request: %+v", got)
	}
	if len(got.Values) != 1 || got.Values[0] != 180 {
		t.Fatalf("unexpected values: %v", got.Values)
	}
}

func TestAnalysisService_HistogramCacheErrorFallsBack(t *testing.T) {
	t.Parallel()

	c := newFakeCache()
	c.getErr = errors.New("redis down")
	svc := newTestAnalysis(&fakeMeasurementRepo{rows: sampleRows()}, c)
	svc.render = func(histogram.Request) ([]byte, error) { return []byte("png"), nil }

	img, err := svc.Histogram(context.Background(), 1, analysis.Query{Period: models.PeriodWeek, End: fixedNow, Filter: models.FilterFasting})
	if err != nil || string(img) != "png" {
		t.Fatalf("Histogram: img=%q err=%v", img, err)
	}
}

func TestAnalysisService_HistogramErrors(t *testing.T) {
	t.Parallel()

	svc := newTestAnalysis(&fakeMeasurementRepo{rows: sampleRows()}, newFakeCache())
	if _, err := svc.Histogram(context.Background(), 1, analysis.Query{Period: models.PeriodWeek, Filter: models.FilterAll}); !errors.Is(err, ErrNoHistogram) {
		t.Fatalf("expected ErrNoHistogram, got %v", err)
	}

	renderErr := errors.New("font missing")
	svc.render = func(histogram.Request) ([]byte, error) { return nil, renderErr }
	if _, err := svc.Histogram(context.Background(), 1, analysis.Query{Period: models.PeriodWeek, End: fixedNow, Filter: models.FilterFasting}); !errors.Is(err, renderErr) {
		t.Fatalf("expected render error, got %v", err)
	}
}

func TestAnalysisService_HistogramRendersPNG(t *testing.T) {
	t.Parallel()

	svc := newTestAnalysis(&fakeMeasurementRepo{rows: sampleRows()}, newFakeCache())
	img, err := svc.Histogram(context.Background(), 1, analysis.Query{Period: models.PeriodYear, End: fixedNow, Filter: models.FilterFasting})
	if err != nil {
		t.Fatalf("Histogram: %v", err)
	}
	if len(img) < 8 || string(img[1:4]) != "PNG" {
		t.Fatalf("expected PNG signature")
	}
}

func TestAnalysisService_HistogramEmptyDoesNotRender(t *testing.T) {
	t.Parallel()

	c := newFakeCache()
	svc := newTestAnalysis(&fakeMeasurementRepo{}, c)
	renders := 0
	svc.render = func(histogram.Request) ([]byte, error) {
		renders++
		return []byte("png"), nil
	}

	img, err := svc.Histogram(context.Background(), 1, analysis.Query{Period: models.PeriodMonth, End: fixedNow, Filter: models.FilterFasting})
	if !errors.Is(err, analysis.ErrEmptyResult) {
		t.Fatalf("expected ErrEmptyResult, got %v", err)
	}
	if img != nil {
		t.Fatalf("expected no image, got %d bytes", len(img))
	}
	if renders != 0 {
		t.Fatalf("render must not run for an empty result, ran %d times", renders)
	}
	if c.gets != 0 || c.sets != 0 {
		t.Fatalf("cache must not be touched: gets=%d sets=%d", c.gets, c.sets)
	}
}
