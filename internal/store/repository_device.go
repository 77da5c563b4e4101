package store

import (
	"context"
	"fmt"

	"github.com/Daafh07/HeartbeatSenseDB/internal/logger"
	"github.com/google/uuid"
)

// deviceRepository is the PostgreSQL-backed implementation of
// [DeviceRepository]. The "devices" table is written by the provisioning
// system; this repository only reads the ownership mapping.
type deviceRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewDeviceRepository constructs a [DeviceRepository] backed by the provided
// database connection and logger.
func NewDeviceRepository(db *DB, logger *logger.Logger) DeviceRepository {
	logger.Debug().Msg("creating device repository")
	return &deviceRepository{
		db:     db,
		logger: logger,
	}
}

// DevicesOf returns the identifiers of every device owned by userID,
// ordered by device ID. A user without devices yields an empty slice,
// not an error.
//
// The ordering matters downstream: the latest-measurement aggregator breaks
// creation-timestamp ties by first position in this list, so the result must
// be stable for a given ownership state.
func (r *deviceRepository) DevicesOf(ctx context.Context, userID uuid.UUID) ([]string, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, findDevicesOfUser, userID)
	if err != nil {
		log.Err(err).Str("func", "*deviceRepository.DevicesOf").Msg("error executing device lookup")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	deviceIDs := make([]string, 0, 4)
	for rows.Next() {
		var deviceID string
		if err := rows.Scan(&deviceID); err != nil {
			log.Err(err).Str("func", "*deviceRepository.DevicesOf").Msg("error scanning device row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		deviceIDs = append(deviceIDs, deviceID)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*deviceRepository.DevicesOf").Msg("error iterating device rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return deviceIDs, nil
}
