package http

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/Daafh07/HeartbeatSenseDB/internal/logger"
	"github.com/Daafh07/HeartbeatSenseDB/internal/service"
	"github.com/Daafh07/HeartbeatSenseDB/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock services
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerUserFn  func(ctx context.Context, request models.RegisterRequest) (models.User, error)
	loginFn         func(ctx context.Context, request models.LoginRequest) (models.User, error)
	userByIDFn      func(ctx context.Context, userID uuid.UUID) (models.User, error)
	updateProfileFn func(ctx context.Context, userID uuid.UUID, request models.UpdateProfileRequest) (models.User, error)
	createTokenFn   func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn    func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	return m.registerUserFn(ctx, request)
}

func (m *mockAuthService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	return m.loginFn(ctx, request)
}

func (m *mockAuthService) UserByID(ctx context.Context, userID uuid.UUID) (models.User, error) {
	return m.userByIDFn(ctx, userID)
}

func (m *mockAuthService) UpdateProfile(ctx context.Context, userID uuid.UUID, request models.UpdateProfileRequest) (models.User, error) {
	return m.updateProfileFn(ctx, userID, request)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// mockSessionService implements service.SessionService for unit tests.
type mockSessionService struct {
	buildPayloadFn      func(ctx context.Context, user models.User) (models.SessionPayload, error)
	latestMeasurementFn func(ctx context.Context, userID uuid.UUID) (models.Measurement, bool, error)
}

func (m *mockSessionService) BuildPayload(ctx context.Context, user models.User) (models.SessionPayload, error) {
	return m.buildPayloadFn(ctx, user)
}

func (m *mockSessionService) LatestMeasurement(ctx context.Context, userID uuid.UUID) (models.Measurement, bool, error) {
	return m.latestMeasurementFn(ctx, userID)
}

// mockActivityService implements service.ActivityService for unit tests.
type mockActivityService struct {
	listActivitiesFn func(ctx context.Context) ([]models.Activity, error)
	createActivityFn func(ctx context.Context, request models.ActivityRequest) (models.Activity, error)
	updateActivityFn func(ctx context.Context, activityID int64, request models.ActivityRequest) (models.Activity, error)
}

func (m *mockActivityService) ListActivities(ctx context.Context) ([]models.Activity, error) {
	return m.listActivitiesFn(ctx)
}

func (m *mockActivityService) CreateActivity(ctx context.Context, request models.ActivityRequest) (models.Activity, error) {
	return m.createActivityFn(ctx, request)
}

func (m *mockActivityService) UpdateActivity(ctx context.Context, activityID int64, request models.ActivityRequest) (models.Activity, error) {
	return m.updateActivityFn(ctx, activityID, request)
}

// mockMeasurementService implements service.MeasurementService for unit tests.
type mockMeasurementService struct {
	listForUserFn    func(ctx context.Context, userID uuid.UUID, since *time.Time, limit uint64) ([]models.Measurement, error)
	attachActivityFn func(ctx context.Context, userID uuid.UUID, measurementID uuid.UUID, activityID int64) (models.Measurement, error)
}

func (m *mockMeasurementService) ListForUser(ctx context.Context, userID uuid.UUID, since *time.Time, limit uint64) ([]models.Measurement, error) {
	return m.listForUserFn(ctx, userID, since, limit)
}

func (m *mockMeasurementService) AttachActivity(ctx context.Context, userID uuid.UUID, measurementID uuid.UUID, activityID int64) (models.Measurement, error) {
	return m.attachActivityFn(ctx, userID, measurementID, activityID)
}

// mockAppInfoService implements service.AppInfoService for unit tests.
type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) Version() string {
	return m.version
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler with the given service mocks; nil slots
// default to empty mocks.
func newTestHandler(t *testing.T, svcs *service.Services) *Handler {
	t.Helper()
	if svcs.AppInfoService == nil {
		svcs.AppInfoService = &mockAppInfoService{version: "test"}
	}
	return NewHandler(svcs, nil, nil, logger.Nop())
}

// jsonBody serialises any value to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// stubPayload returns a minimal session payload carrying the given token.
func stubPayload(token string) models.SessionPayload {
	return models.SessionPayload{Token: token, Email: "alice@example.com"}
}
