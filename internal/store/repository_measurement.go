package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Daafh07/HeartbeatSenseDB/internal/logger"
	"github.com/Daafh07/HeartbeatSenseDB/models"
	"github.com/google/uuid"
)

// measurementRepository is the PostgreSQL-backed implementation of
// [MeasurementRepository]. Readings in the "measurements" table are written
// by the device ingestion pipeline; the only mutation this repository
// performs is attaching an activity reference.
type measurementRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewMeasurementRepository constructs a [MeasurementRepository] backed by
// the provided database connection and logger.
func NewMeasurementRepository(db *DB, logger *logger.Logger) MeasurementRepository {
	logger.Debug().Msg("creating measurement repository")
	return &measurementRepository{
		db:     db,
		logger: logger,
	}
}

// LatestByDevice returns the single most recent reading of one device,
// ordered by creation timestamp descending, limit one.
//
// Error handling:
//   - Device has no readings → [ErrMeasurementNotFound].
//   - Builder or driver-level failure → wrapped sentinel error.
func (r *measurementRepository) LatestByDevice(ctx context.Context, deviceID string) (models.Measurement, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildLatestMeasurementQuery(deviceID)
	if err != nil {
		log.Err(err).Str("func", "*measurementRepository.LatestByDevice").Msg("failed to build query")
		return models.Measurement{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var m models.Measurement
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := scanMeasurementRow(row, &m); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Measurement{}, ErrMeasurementNotFound
		}
		log.Err(err).
			Str("func", "*measurementRepository.LatestByDevice").
			Str("device_id", deviceID).
			Msg("error querying latest measurement")
		return models.Measurement{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return m, nil
}

// ListByDevice returns up to limit readings of one device, newest first,
// optionally restricted to readings created strictly after since.
func (r *measurementRepository) ListByDevice(ctx context.Context, deviceID string, since *time.Time, limit uint64) ([]models.Measurement, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListMeasurementsQuery(deviceID, since, limit)
	if err != nil {
		log.Err(err).Str("func", "*measurementRepository.ListByDevice").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*measurementRepository.ListByDevice").
			Str("device_id", deviceID).
			Msg("error executing measurement listing")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	measurements := make([]models.Measurement, 0, limit)
	for rows.Next() {
		var m models.Measurement
		if err := rows.Scan(&m.ID, &m.DeviceID, &m.Value, &m.CreatedAt, &m.ActivityID); err != nil {
			log.Err(err).Str("func", "*measurementRepository.ListByDevice").Msg("error scanning measurement row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		measurements = append(measurements, m)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*measurementRepository.ListByDevice").Msg("error iterating measurement rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return measurements, nil
}

// FindByID retrieves one reading by its identifier.
func (r *measurementRepository) FindByID(ctx context.Context, measurementID uuid.UUID) (models.Measurement, error) {
	log := logger.FromContext(ctx)

	var m models.Measurement
	row := r.db.QueryRowContext(ctx, findMeasurementByID, measurementID)
	if err := scanMeasurementRow(row, &m); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Measurement{}, ErrMeasurementNotFound
		}
		log.Err(err).Str("func", "*measurementRepository.FindByID").Msg("error querying measurement")
		return models.Measurement{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return m, nil
}

// AttachActivity links a reading to an activity and returns the updated row.
func (r *measurementRepository) AttachActivity(ctx context.Context, measurementID uuid.UUID, activityID int64) (models.Measurement, error) {
	log := logger.FromContext(ctx)

	var m models.Measurement
	row := r.db.QueryRowContext(ctx, attachActivityToMeasurement, activityID, measurementID)
	if err := scanMeasurementRow(row, &m); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Measurement{}, ErrMeasurementNotFound
		}
		log.Err(err).
			Str("func", "*measurementRepository.AttachActivity").
			Int64("activity_id", activityID).
			Msg("error attaching activity to measurement")
		return models.Measurement{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return m, nil
}

// scanMeasurementRow scans a single measurements row in canonical column order.
func scanMeasurementRow(row *sql.Row, dst *models.Measurement) error {
	return row.Scan(&dst.ID, &dst.DeviceID, &dst.Value, &dst.CreatedAt, &dst.ActivityID)
}
