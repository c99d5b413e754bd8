package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"sugar_tracker/internal/models"

	"github.com/google/uuid"
)

// sqliteTimeLayout sorts lexically, so range filters can compare stored strings directly.
const sqliteTimeLayout = "2006-01-02 15:04:05.000"

const (
	insertMeasurementSQL = `
		INSERT INTO measurements (id, user_id, taken_at, value, mode)
		VALUES (?, ?, ?, ?, ?)
	`
	selectMeasurementsSQL = `SELECT id, user_id, taken_at, value, mode FROM measurements`
	deleteMeasurementSQL  = `DELETE FROM measurements WHERE user_id = ? AND id = ?`
)

type MeasurementSQLite struct {
	db *sql.DB
}

func NewMeasurementSQLite(db *sql.DB) *MeasurementSQLite { return &MeasurementSQLite{db: db} }

var _ MeasurementRepo = (*MeasurementSQLite)(nil)

func formatTime(t time.Time) string {
	return t.UTC().Format(sqliteTimeLayout)
}

// Add inserts a measurement. A missing ID or timestamp is filled in; the stored copy is returned.
func (r *MeasurementSQLite) Add(ctx context.Context, m models.Measurement) (models.Measurement, error) {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.TakenAt.IsZero() {
		m.TakenAt = time.Now()
	}
	m.TakenAt = m.TakenAt.UTC().Truncate(time.Millisecond)

	_, err := r.db.ExecContext(ctx, insertMeasurementSQL,
		m.ID,
		m.UserID,
		formatTime(m.TakenAt),
		m.Value,
		m.Mode.String(),
	)
	if err != nil {
		return models.Measurement{}, fmt.Errorf("insert measurement: %w", err)
	}
	return m, nil
}

func (r *MeasurementSQLite) List(ctx context.Context, userID int, from, to time.Time, mode *models.MeasurementMode) ([]models.Measurement, error) {
	conds := []string{"user_id = ?"}
	args := []any{userID}

	if !from.IsZero() {
		conds = append(conds, "taken_at >= ?")
		args = append(args, formatTime(from))
	}
	if !to.IsZero() {
		conds = append(conds, "taken_at <= ?")
		args = append(args, formatTime(to))
	}
	if mode != nil {
		conds = append(conds, "mode = ?")
		args = append(args, mode.String())
	}

	q := selectMeasurementsSQL + " WHERE " + strings.Join(conds, " AND ") + " ORDER BY taken_at ASC"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("select measurements: %w", err)
	}
	defer rows.Close()

	out := make([]models.Measurement, 0, 64)
	for rows.Next() {
		var (
			m       models.Measurement
			takenAt time.Time
			modeStr string
		)
		if err := rows.Scan(&m.ID, &m.UserID, &takenAt, &m.Value, &modeStr); err != nil {
			return nil, fmt.Errorf("scan measurement: %w", err)
		}
		if m.Mode, err = models.ParseMode(modeStr); err != nil {
			return nil, fmt.Errorf("measurement %s: %w", m.ID, err)
		}
		m.TakenAt = takenAt.UTC()
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes one of the user's measurements and reports whether it existed.
func (r *MeasurementSQLite) Delete(ctx context.Context, userID int, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, deleteMeasurementSQL, userID, id)
	if err != nil {
		return false, fmt.Errorf("delete measurement %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected for %s: %w", id, err)
	}
	return n > 0, nil
}
