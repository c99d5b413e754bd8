package repository

import (
	"context"
	"database/sql"
	"time"

	"sugar_tracker/internal/models"
)

type Authorization interface {
	Create(ctx context.Context, username, hash string) (int, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// MeasurementRepo is the measurement store. Every call is scoped to one user.
type MeasurementRepo interface {
	Add(ctx context.Context, m models.Measurement) (models.Measurement, error)
	// List returns measurements in [from, to] (zero bounds are open), optionally of one mode, ordered ASC.
	List(ctx context.Context, userID int, from, to time.Time, mode *models.MeasurementMode) ([]models.Measurement, error)
	Delete(ctx context.Context, userID int, id string) (bool, error)
}

type Repository struct {
	Measurements MeasurementRepo
	Auth         Authorization
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Measurements: NewMeasurementSQLite(db),
		Auth:         NewUserRepository(db),
	}
}
