package service

import (
	"context"
	"sync"
	"time"

	"sugar_tracker/internal/models"
)

// fakeMeasurementRepo is an in-memory repository.MeasurementRepo.
type fakeMeasurementRepo struct {
	rows []models.Measurement
	err  error

	added    []models.Measurement
	listArgs []listCall
	deleted  bool
}

type listCall struct {
	userID   int
	from, to time.Time
	mode     *models.MeasurementMode
}

func (f *fakeMeasurementRepo) Add(_ context.Context, m models.Measurement) (models.Measurement, error) {
	if f.err != nil {
		return models.Measurement{}, f.err
	}
	m.ID = "generated"
	f.added = append(f.added, m)
	return m, nil
}

// List honours the time bounds so callers see what the SQL store would return.
func (f *fakeMeasurementRepo) List(_ context.Context, userID int, from, to time.Time, mode *models.MeasurementMode) ([]models.Measurement, error) {
	f.listArgs = append(f.listArgs, listCall{userID: userID, from: from, to: to, mode: mode})
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Measurement
	for _, m := range f.rows {
		if !from.IsZero() && m.TakenAt.Before(from) {
			continue
		}
		if !to.IsZero() && m.TakenAt.After(to) {
			continue
		}
		if mode != nil && m.Mode != *mode {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

func (f *fakeMeasurementRepo) Delete(context.Context, int, string) (bool, error) {
	return f.deleted, f.err
}

// fakeCache is a map-backed cache.ImageCache.
type fakeCache struct {
	mu     sync.Mutex
	data   map[string][]byte
	getErr error
	gets   int
	sets   int
}

func newFakeCache() *fakeCache { return &fakeCache{data: map[string][]byte{}} }

func (c *fakeCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	v, ok := c.data[key]
	return v, ok, nil
}

func (c *fakeCache) Set(_ context.Context, key string, img []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets++
	c.data[key] = img
	return nil
}

func (c *fakeCache) Close() error { return nil }
