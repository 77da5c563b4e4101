package service

import (
	"context"
	"time"

	"github.com/Daafh07/HeartbeatSenseDB/models"
	"github.com/google/uuid"
)

// AuthService owns the credential path: registration, login, profile
// mutation, and the session-token lifecycle.
type AuthService interface {
	RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, request models.LoginRequest) (models.User, error)
	UserByID(ctx context.Context, userID uuid.UUID) (models.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, request models.UpdateProfileRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// SessionService assembles the "current session" view returned by every
// identity-affecting operation: a fresh token, the user's public profile
// fields, and the most recent measurement across all of the user's devices.
type SessionService interface {
	BuildPayload(ctx context.Context, user models.User) (models.SessionPayload, error)
	LatestMeasurement(ctx context.Context, userID uuid.UUID) (models.Measurement, bool, error)
}

// ActivityService manages user-defined activity labels.
type ActivityService interface {
	ListActivities(ctx context.Context) ([]models.Activity, error)
	CreateActivity(ctx context.Context, request models.ActivityRequest) (models.Activity, error)
	UpdateActivity(ctx context.Context, activityID int64, request models.ActivityRequest) (models.Activity, error)
}

// MeasurementService exposes read access to a user's readings and the
// activity-attachment mutation.
type MeasurementService interface {
	ListForUser(ctx context.Context, userID uuid.UUID, since *time.Time, limit uint64) ([]models.Measurement, error)
	AttachActivity(ctx context.Context, userID uuid.UUID, measurementID uuid.UUID, activityID int64) (models.Measurement, error)
}

// AppInfoService reports build metadata for the version endpoint.
type AppInfoService interface {
	Version() string
}
