package service

import (
	"context"
	"time"

	"sugar_tracker/internal/analysis"
	"sugar_tracker/internal/cache"
	"sugar_tracker/internal/logger"
	"sugar_tracker/internal/models"
	"sugar_tracker/internal/repository"
)

type Authorization interface {
	SignUp(ctx context.Context, username, password string) (int, error)
	GenerateToken(ctx context.Context, username, password string) (string, error)
	ParseToken(accessToken string) (int, error)
}

// Measurements records and lists one user's blood sugar readings.
type Measurements interface {
	Record(ctx context.Context, userID int, in NewMeasurement) (models.Measurement, error)
	List(ctx context.Context, userID int, f MeasurementFilter) ([]models.Measurement, error)
	Delete(ctx context.Context, userID int, id string) error
}

// Analysis runs period/mode queries and renders histograms.
type Analysis interface {
	Analyze(ctx context.Context, userID int, q analysis.Query) (Report, error)
	Histogram(ctx context.Context, userID int, q analysis.Query) ([]byte, error)
}

type Service struct {
	Authorization
	Measurements
	Analysis
}

// Options carries the non-repository dependencies of the services.
type Options struct {
	SigningKey string
	TokenTTL   time.Duration
	Cache      cache.ImageCache
	Log        *logger.Logger
}

func NewService(repos *repository.Repository, opts Options) *Service {
	if opts.Cache == nil {
		opts.Cache = cache.Nop{}
	}
	if opts.Log == nil {
		opts.Log = logger.Nop()
	}
	return &Service{
		Authorization: NewAuthService(repos.Auth, opts.SigningKey, opts.TokenTTL),
		Measurements:  NewMeasurementService(repos.Measurements),
		Analysis:      NewAnalysisService(repos.Measurements, opts.Cache, opts.Log),
	}
}
