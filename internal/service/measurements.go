package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sugar_tracker/internal/metrics"
	"sugar_tracker/internal/models"
	"sugar_tracker/internal/repository"
)

// futureSkew tolerates small clock differences between client and server.
const futureSkew = time.Minute

var (
	ErrInvalidMeasurement  = errors.New("invalid measurement")
	ErrInvalidTimeRange    = errors.New("invalid time range: from must be <= to")
	ErrMeasurementNotFound = errors.New("measurement not found")
)

type MeasurementService struct {
	repo repository.MeasurementRepo
	now  func() time.Time
}

func NewMeasurementService(repo repository.MeasurementRepo) *MeasurementService {
	return &MeasurementService{repo: repo, now: time.Now}
}

// normalizeToUTC returns t in UTC, preserving zero time values.
func normalizeToUTC(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}

func (s *MeasurementService) validate(in NewMeasurement) error {
	if in.Value <= 0 {
		return fmt.Errorf("%w: value must be positive, got %d", ErrInvalidMeasurement, in.Value)
	}
	if !in.Mode.Valid() {
		return fmt.Errorf("%w: %w", ErrInvalidMeasurement, models.ErrInvalidMode)
	}
	if !in.TakenAt.IsZero() && in.TakenAt.After(s.now().Add(futureSkew)) {
		return fmt.Errorf("%w: taken_at is in the future", ErrInvalidMeasurement)
	}
	return nil
}

func (s *MeasurementService) Record(ctx context.Context, userID int, in NewMeasurement) (models.Measurement, error) {
	if err := s.validate(in); err != nil {
		return models.Measurement{}, err
	}
	takenAt := normalizeToUTC(in.TakenAt)
	if takenAt.IsZero() {
		takenAt = s.now().UTC()
	}

	m, err := s.repo.Add(ctx, models.Measurement{
		UserID:  userID,
		TakenAt: takenAt,
		Value:   in.Value,
		Mode:    in.Mode,
	})
	if err != nil {
		return models.Measurement{}, err
	}
	metrics.MeasurementsRecorded.WithLabelValues(m.Mode.String()).Inc()
	return m, nil
}

// normalizeAndValidateFilter converts bounds to UTC and checks their order.
func normalizeAndValidateFilter(f MeasurementFilter) (MeasurementFilter, error) {
	f.From = normalizeToUTC(f.From)
	f.To = normalizeToUTC(f.To)
	if !f.From.IsZero() && !f.To.IsZero() && f.From.After(f.To) {
		return MeasurementFilter{}, ErrInvalidTimeRange
	}
	if f.Mode != nil && !f.Mode.Valid() {
		return MeasurementFilter{}, models.ErrInvalidMode
	}
	return f, nil
}

func (s *MeasurementService) List(ctx context.Context, userID int, f MeasurementFilter) ([]models.Measurement, error) {
	f, err := normalizeAndValidateFilter(f)
	if err != nil {
		return nil, err
	}
	return s.repo.List(ctx, userID, f.From, f.To, f.Mode)
}

func (s *MeasurementService) Delete(ctx context.Context, userID int, id string) error {
	ok, err := s.repo.Delete(ctx, userID, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrMeasurementNotFound
	}
	return nil
}
