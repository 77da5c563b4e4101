package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Daafh07/HeartbeatSenseDB/internal/logger"
	"github.com/Daafh07/HeartbeatSenseDB/models"
)

// activityRepository is the PostgreSQL-backed implementation of
// [ActivityRepository].
type activityRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewActivityRepository constructs an [ActivityRepository] backed by the
// provided database connection and logger.
func NewActivityRepository(db *DB, logger *logger.Logger) ActivityRepository {
	logger.Debug().Msg("creating activity repository")
	return &activityRepository{
		db:     db,
		logger: logger,
	}
}

// ListActivities returns all activities, newest first.
func (r *activityRepository) ListActivities(ctx context.Context) ([]models.Activity, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listActivities)
	if err != nil {
		log.Err(err).Str("func", "*activityRepository.ListActivities").Msg("error executing activity listing")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	activities := make([]models.Activity, 0, 16)
	for rows.Next() {
		var a models.Activity
		if err := rows.Scan(&a.ID, &a.Title, &a.Type, &a.Description, &a.CreatedAt); err != nil {
			log.Err(err).Str("func", "*activityRepository.ListActivities").Msg("error scanning activity row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		activities = append(activities, a)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*activityRepository.ListActivities").Msg("error iterating activity rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return activities, nil
}

// CreateActivity persists a new activity and returns the row with
// server-assigned fields (ID, CreatedAt) populated.
func (r *activityRepository) CreateActivity(ctx context.Context, activity models.Activity) (models.Activity, error) {
	log := logger.FromContext(ctx)

	var created models.Activity
	row := r.db.QueryRowContext(ctx, createActivity, activity.Title, activity.Type, activity.Description)
	if err := row.Scan(&created.ID, &created.Title, &created.Type, &created.Description, &created.CreatedAt); err != nil {
		log.Err(err).Str("func", "*activityRepository.CreateActivity").Msg("error creating activity")
		return models.Activity{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// UpdateActivity replaces the three mutable fields of an existing activity.
//
// Returns [ErrActivityNotFound] when no row matches the identifier.
func (r *activityRepository) UpdateActivity(ctx context.Context, activity models.Activity) (models.Activity, error) {
	log := logger.FromContext(ctx)

	var updated models.Activity
	row := r.db.QueryRowContext(ctx, updateActivity, activity.Title, activity.Type, activity.Description, activity.ID)
	if err := row.Scan(&updated.ID, &updated.Title, &updated.Type, &updated.Description, &updated.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Activity{}, ErrActivityNotFound
		}
		log.Err(err).Str("func", "*activityRepository.UpdateActivity").Msg("error updating activity")
		return models.Activity{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

// FindActivityByID retrieves one activity by its identifier.
func (r *activityRepository) FindActivityByID(ctx context.Context, activityID int64) (models.Activity, error) {
	log := logger.FromContext(ctx)

	var found models.Activity
	row := r.db.QueryRowContext(ctx, findActivityByID, activityID)
	if err := row.Scan(&found.ID, &found.Title, &found.Type, &found.Description, &found.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Activity{}, ErrActivityNotFound
		}
		log.Err(err).Str("func", "*activityRepository.FindActivityByID").Msg("error querying activity")
		return models.Activity{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}
