package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Daafh07/HeartbeatSenseDB/internal/logger"
	"github.com/Daafh07/HeartbeatSenseDB/internal/store"
	"github.com/Daafh07/HeartbeatSenseDB/models"
	"github.com/google/uuid"
)

// sessionService is the concrete implementation of SessionService.
//
// Every identity-affecting operation (register, login, fetch-self, profile
// update) terminates here: the service mints a fresh token, resolves the
// most recent reading across the user's devices, and merges both with the
// user's profile fields into the outbound payload.
type sessionService struct {
	authService           AuthService
	deviceRepository      store.DeviceRepository
	measurementRepository store.MeasurementRepository
	logger                *logger.Logger
}

// NewSessionService constructs a SessionService over the given token issuer
// and read-side repositories.
func NewSessionService(
	authService AuthService,
	deviceRepository store.DeviceRepository,
	measurementRepository store.MeasurementRepository,
	logger *logger.Logger,
) SessionService {
	return &sessionService{
		authService:           authService,
		deviceRepository:      deviceRepository,
		measurementRepository: measurementRepository,
		logger:                logger,
	}
}

// BuildPayload assembles the session view for user: a freshly signed token,
// the public profile fields, and the latest measurement (or an explicit null
// when no device has reported yet).
//
// Nothing is cached across calls; two consecutive payloads for the same user
// carry distinct tokens and independently resolved measurements.
func (s *sessionService) BuildPayload(ctx context.Context, user models.User) (models.SessionPayload, error) {
	log := logger.FromContext(ctx)

	token, err := s.authService.CreateToken(ctx, user)
	if err != nil {
		log.Err(err).Str("user_id", user.ID.String()).Msg("token creation failed during payload assembly")
		return models.SessionPayload{}, fmt.Errorf("token creation failed: %w", err)
	}

	latest, found, err := s.LatestMeasurement(ctx, user.ID)
	if err != nil {
		log.Err(err).Str("user_id", user.ID.String()).Msg("latest measurement lookup failed during payload assembly")
		return models.SessionPayload{}, fmt.Errorf("latest measurement lookup failed: %w", err)
	}

	payload := models.SessionPayload{
		Token:     token.SignedString,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Number:    user.Number,
		Gender:    user.Gender,
		Age:       user.Age,
		Height:    user.Height,
		Weight:    user.Weight,
		BloodType: user.BloodType,
	}
	if found {
		payload.LatestMeasurement = models.NewMeasurementView(latest)
	}

	return payload, nil
}

// LatestMeasurement determines the single most recent reading across every
// device owned by userID.
//
// The device directory is read first; a user with zero devices resolves to
// "absent" immediately, without issuing any measurement query. A directory
// lookup failure is treated the same as zero devices — callers cannot tell
// the two apart, both mean "no measurement available".
//
// The per-device top-1 queries are independent pure reads and are issued
// concurrently; the reduction waits for all of them before picking the
// maximum creation timestamp. Ties are broken by device-directory order:
// the earliest-listed device wins, which is stable for a given ownership
// state. If any per-device query fails the whole aggregation fails — a
// silently stale "latest reading" is worse than an explicit error here.
//
// The returned bool reports whether a measurement exists at all.
func (s *sessionService) LatestMeasurement(ctx context.Context, userID uuid.UUID) (models.Measurement, bool, error) {
	log := logger.FromContext(ctx)

	deviceIDs, err := s.deviceRepository.DevicesOf(ctx, userID)
	if err != nil {
		log.Warn().Err(err).Str("user_id", userID.String()).Msg("device lookup failed, treating as no devices")
		return models.Measurement{}, false, nil
	}
	if len(deviceIDs) == 0 {
		return models.Measurement{}, false, nil
	}

	// Fan out one top-1 query per device. Results land in fixed slots so the
	// reduction below sees them in device-directory order regardless of
	// completion order.
	results := make([]*models.Measurement, len(deviceIDs))
	queryErrs := make([]error, len(deviceIDs))

	var wg sync.WaitGroup
	for i, deviceID := range deviceIDs {
		wg.Add(1)
		go func(slot int, deviceID string) {
			defer wg.Done()

			m, err := s.measurementRepository.LatestByDevice(ctx, deviceID)
			if err != nil {
				if errors.Is(err, store.ErrMeasurementNotFound) {
					return // device has no readings yet
				}
				queryErrs[slot] = err
				return
			}
			results[slot] = &m
		}(i, deviceID)
	}
	wg.Wait()

	for _, err := range queryErrs {
		if err != nil {
			log.Err(err).Str("user_id", userID.String()).Msg("per-device latest measurement query failed")
			return models.Measurement{}, false, fmt.Errorf("latest measurement aggregation failed: %w", err)
		}
	}

	// Strictly-after comparison keeps the earliest device slot on equal
	// timestamps.
	var latest *models.Measurement
	for _, m := range results {
		if m == nil {
			continue
		}
		if latest == nil || m.CreatedAt.After(latest.CreatedAt) {
			latest = m
		}
	}

	if latest == nil {
		return models.Measurement{}, false, nil
	}

	return *latest, true, nil
}
