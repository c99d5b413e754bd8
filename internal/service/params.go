package service

import (
	"time"

	"sugar_tracker/internal/models"
)

// NewMeasurement is the input of Measurements.Record. A zero TakenAt means now.
type NewMeasurement struct {
	TakenAt time.Time
	Value   int
	Mode    models.MeasurementMode
}

// MeasurementFilter narrows Measurements.List; zero bounds and a nil Mode are open.
type MeasurementFilter struct {
	From time.Time
	To   time.Time
	Mode *models.MeasurementMode
}
