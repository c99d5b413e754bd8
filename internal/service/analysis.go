package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sugar_tracker/internal/analysis"
	"sugar_tracker/internal/cache"
	"sugar_tracker/internal/histogram"
	"sugar_tracker/internal/logger"
	"sugar_tracker/internal/metrics"
	"sugar_tracker/internal/models"
	"sugar_tracker/internal/repository"
)

// ErrNoHistogram is returned for histogram requests that do not select a single mode.
var ErrNoHistogram = errors.New("histogram requires a single measurement mode")

// Report is an analysis result plus its histogram bins when a border value applies.
type Report struct {
	analysis.Result
	Bins []models.HistogramBin
}

// renderFunc matches histogram.Render.
type renderFunc func(histogram.Request) ([]byte, error)

type AnalysisService struct {
	repo   repository.MeasurementRepo
	cache  cache.ImageCache
	log    *logger.Logger
	render renderFunc
	now    func() time.Time
}

func NewAnalysisService(repo repository.MeasurementRepo, c cache.ImageCache, log *logger.Logger) *AnalysisService {
	return &AnalysisService{
		repo:   repo,
		cache:  c,
		log:    log,
		render: histogram.Render,
		now:    time.Now,
	}
}

func (s *AnalysisService) countOutcome(q analysis.Query, err error) {
	outcome := metrics.OutcomeOK
	switch {
	case err == nil:
	case errors.Is(err, analysis.ErrEmptyResult):
		outcome = metrics.OutcomeEmpty
	case errors.Is(err, models.ErrInvalidPeriod), errors.Is(err, models.ErrInvalidFilter):
		outcome = metrics.OutcomeInvalid
	default:
		outcome = metrics.OutcomeError
	}
	metrics.AnalysesTotal.WithLabelValues(q.Period.String(), q.Filter.String(), outcome).Inc()
}

// Analyze loads the user's measurements in the query window and runs the engine on them.
func (s *AnalysisService) Analyze(ctx context.Context, userID int, q analysis.Query) (rep Report, err error) {
	defer func() { s.countOutcome(q, err) }()

	if q.End.IsZero() {
		q.End = s.now()
	}
	if q.Filter.String() == "" {
		return Report{}, fmt.Errorf("%w: %d", models.ErrInvalidFilter, q.Filter)
	}
	start, err := analysis.StartDateFor(q.Period, q.End)
	if err != nil {
		return Report{}, err
	}

	ms, err := s.repo.List(ctx, userID, start, q.End, nil)
	if err != nil {
		return Report{}, err
	}

	res, err := analysis.Run(q, ms)
	if err != nil {
		return Report{}, err
	}

	rep = Report{Result: res}
	if res.BorderValue != nil {
		if rep.Bins, err = histogram.Bin(analysis.Values(res.Measurements), *res.BorderValue); err != nil {
			return Report{}, err
		}
	}
	return rep, nil
}

// Histogram renders the PNG for an analysis. Identical requests are served from the cache.
func (s *AnalysisService) Histogram(ctx context.Context, userID int, q analysis.Query) ([]byte, error) {
	if _, ok := q.Filter.Mode(); !ok {
		return nil, ErrNoHistogram
	}
	rep, err := s.Analyze(ctx, userID, q)
	if err != nil {
		return nil, err
	}
	mode, _ := rep.Mode()

	req := histogram.Request{
		Values: analysis.Values(rep.Measurements),
		Border: *rep.BorderValue,
		Mode:   mode,
		Start:  rep.Start,
		End:    rep.Query.End,
	}
	key := req.CacheKey()

	img, ok, err := s.cache.Get(ctx, key)
	switch {
	case err != nil:
		metrics.CacheLookups.WithLabelValues("error").Inc()
		s.log.Warnw("histogram_cache_get_failed", "key", key, "err", err)
	case ok:
		metrics.CacheLookups.WithLabelValues("hit").Inc()
		return img, nil
	default:
		metrics.CacheLookups.WithLabelValues("miss").Inc()
	}

	began := time.Now()
	img, err = s.render(req)
	metrics.RenderDuration.Observe(time.Since(began).Seconds())
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, img); err != nil {
		s.log.Warnw("histogram_cache_set_failed", "key", key, "err", err)
	}
	return img, nil
}
