package store

import (
	"context"
	"time"

	"github.com/Daafh07/HeartbeatSenseDB/models"
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository provides persistence operations for user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID uuid.UUID) (models.User, error)
	UpdateUser(ctx context.Context, userID uuid.UUID, update models.UpdateProfileRequest) (models.User, error)
}

// DeviceRepository reads the device ownership mapping. Devices are
// provisioned by an external system; this service never writes them.
type DeviceRepository interface {
	DevicesOf(ctx context.Context, userID uuid.UUID) ([]string, error)
}

// MeasurementRepository reads biometric readings and attaches activity
// references to them. Readings themselves are written by the ingestion
// pipeline, not by this service.
type MeasurementRepository interface {
	LatestByDevice(ctx context.Context, deviceID string) (models.Measurement, error)
	ListByDevice(ctx context.Context, deviceID string, since *time.Time, limit uint64) ([]models.Measurement, error)
	FindByID(ctx context.Context, measurementID uuid.UUID) (models.Measurement, error)
	AttachActivity(ctx context.Context, measurementID uuid.UUID, activityID int64) (models.Measurement, error)
}

// ActivityRepository provides persistence operations for user-defined
// activities.
type ActivityRepository interface {
	ListActivities(ctx context.Context) ([]models.Activity, error)
	CreateActivity(ctx context.Context, activity models.Activity) (models.Activity, error)
	UpdateActivity(ctx context.Context, activity models.Activity) (models.Activity, error)
	FindActivityByID(ctx context.Context, activityID int64) (models.Activity, error)
}
