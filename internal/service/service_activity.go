// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daafh07

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Daafh07/HeartbeatSenseDB/internal/logger"
	"github.com/Daafh07/HeartbeatSenseDB/internal/store"
	"github.com/Daafh07/HeartbeatSenseDB/models"
)

type activityService struct {
	activityRepository store.ActivityRepository
	logger             *logger.Logger
}

// NewActivityService constructs an ActivityService over the given repository.
func NewActivityService(activityRepository store.ActivityRepository, logger *logger.Logger) ActivityService {
	return &activityService{
		activityRepository: activityRepository,
		logger:             logger,
	}
}

// ListActivities returns the activity catalogue, newest first.
func (s *activityService) ListActivities(ctx context.Context) ([]models.Activity, error) {
	activities, err := s.activityRepository.ListActivities(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing activities failed: %w", err)
	}
	return activities, nil
}

// CreateActivity validates and stores a new catalogue entry.
func (s *activityService) CreateActivity(ctx context.Context, request models.ActivityRequest) (models.Activity, error) {
	if strings.TrimSpace(request.Title) == "" || strings.TrimSpace(request.Type) == "" {
		return models.Activity{}, ErrInvalidDataProvided
	}

	activity, err := s.activityRepository.CreateActivity(ctx, models.Activity{
		Title:       request.Title,
		Type:        request.Type,
		Description: request.Description,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("activity creation failed")
		return models.Activity{}, fmt.Errorf("activity creation failed: %w", err)
	}

	return activity, nil
}

// UpdateActivity overwrites an existing catalogue entry.
func (s *activityService) UpdateActivity(ctx context.Context, activityID int64, request models.ActivityRequest) (models.Activity, error) {
	if strings.TrimSpace(request.Title) == "" || strings.TrimSpace(request.Type) == "" {
		return models.Activity{}, ErrInvalidDataProvided
	}

	activity, err := s.activityRepository.UpdateActivity(ctx, models.Activity{
		ID:          activityID,
		Title:       request.Title,
		Type:        request.Type,
		Description: request.Description,
	})
	if err != nil {
		return models.Activity{}, err
	}

	return activity, nil
}
