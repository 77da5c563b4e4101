package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/Daafh07/HeartbeatSenseDB/internal/logger"
	"github.com/Daafh07/HeartbeatSenseDB/internal/store"
	"github.com/Daafh07/HeartbeatSenseDB/models"
	"github.com/google/uuid"
)

const (
	// DefaultMeasurementLimit caps a history query when the client does not
	// ask for a specific page size.
	DefaultMeasurementLimit uint64 = 50

	// MaxMeasurementLimit is the hard ceiling for a single history query.
	MaxMeasurementLimit uint64 = 200
)

type measurementService struct {
	deviceRepository      store.DeviceRepository
	measurementRepository store.MeasurementRepository
	activityRepository    store.ActivityRepository
	logger                *logger.Logger
}

// NewMeasurementService constructs a MeasurementService over the given
// repositories.
func NewMeasurementService(
	deviceRepository store.DeviceRepository,
	measurementRepository store.MeasurementRepository,
	activityRepository store.ActivityRepository,
	logger *logger.Logger,
) MeasurementService {
	return &measurementService{
		deviceRepository:      deviceRepository,
		measurementRepository: measurementRepository,
		activityRepository:    activityRepository,
		logger:                logger,
	}
}

// ListForUser returns userID's measurement history across all owned devices,
// newest first, optionally restricted to readings after since. The limit is
// clamped to [1, MaxMeasurementLimit]; zero means DefaultMeasurementLimit.
func (s *measurementService) ListForUser(ctx context.Context, userID uuid.UUID, since *time.Time, limit uint64) ([]models.Measurement, error) {
	log := logger.FromContext(ctx)

	if limit == 0 {
		limit = DefaultMeasurementLimit
	}
	if limit > MaxMeasurementLimit {
		limit = MaxMeasurementLimit
	}

	deviceIDs, err := s.deviceRepository.DevicesOf(ctx, userID)
	if err != nil {
		log.Warn().Err(err).Str("user_id", userID.String()).Msg("device lookup failed, returning empty history")
		return []models.Measurement{}, nil
	}
	if len(deviceIDs) == 0 {
		return []models.Measurement{}, nil
	}

	// Each device contributes up to limit rows; the merged set is re-sorted
	// and truncated so the result is the global top-limit.
	results := make([][]models.Measurement, len(deviceIDs))
	queryErrs := make([]error, len(deviceIDs))

	var wg sync.WaitGroup
	for i, deviceID := range deviceIDs {
		wg.Add(1)
		go func(slot int, deviceID string) {
			defer wg.Done()

			measurements, err := s.measurementRepository.ListByDevice(ctx, deviceID, since, limit)
			if err != nil {
				queryErrs[slot] = err
				return
			}
			results[slot] = measurements
		}(i, deviceID)
	}
	wg.Wait()

	for _, err := range queryErrs {
		if err != nil {
			return nil, fmt.Errorf("measurement history query failed: %w", err)
		}
	}

	merged := make([]models.Measurement, 0, limit)
	for _, part := range results {
		merged = append(merged, part...)
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].CreatedAt.After(merged[j].CreatedAt)
	})
	if uint64(len(merged)) > limit {
		merged = merged[:limit]
	}

	return merged, nil
}

// AttachActivity labels one of userID's measurements with an activity from
// the catalogue. The measurement must belong to a device owned by userID and
// the activity must exist.
func (s *measurementService) AttachActivity(ctx context.Context, userID uuid.UUID, measurementID uuid.UUID, activityID int64) (models.Measurement, error) {
	measurement, err := s.measurementRepository.FindByID(ctx, measurementID)
	if err != nil {
		return models.Measurement{}, err
	}

	owned, err := s.ownsMeasurement(ctx, userID, measurement)
	if err != nil {
		return models.Measurement{}, err
	}
	if !owned {
		// Hide the existence of other users' measurements.
		return models.Measurement{}, store.ErrMeasurementNotFound
	}

	if _, err := s.activityRepository.FindActivityByID(ctx, activityID); err != nil {
		return models.Measurement{}, err
	}

	updated, err := s.measurementRepository.AttachActivity(ctx, measurementID, activityID)
	if err != nil {
		return models.Measurement{}, fmt.Errorf("attaching activity failed: %w", err)
	}

	return updated, nil
}

func (s *measurementService) ownsMeasurement(ctx context.Context, userID uuid.UUID, measurement models.Measurement) (bool, error) {
	if measurement.DeviceID == nil {
		return false, nil
	}

	deviceIDs, err := s.deviceRepository.DevicesOf(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("device lookup failed: %w", err)
	}
	for _, deviceID := range deviceIDs {
		if deviceID == *measurement.DeviceID {
			return true, nil
		}
	}
	return false, nil
}
