package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Daafh07/HeartbeatSenseDB/internal/logger"
	"github.com/Daafh07/HeartbeatSenseDB/internal/mock"
	"github.com/Daafh07/HeartbeatSenseDB/internal/store"
	"github.com/Daafh07/HeartbeatSenseDB/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestActivitySvc(t *testing.T) (*gomock.Controller, *mock.MockActivityRepository, ActivityService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mock.NewMockActivityRepository(ctrl)
	svc := NewActivityService(repo, logger.Nop())

	return ctrl, repo, svc
}

func TestListActivities_Success(t *testing.T) {
	ctrl, repo, svc := newTestActivitySvc(t)
	defer ctrl.Finish()

	ctx := context.Background()
	want := []models.Activity{
		{ID: 2, Title: "Morning run", Type: "running"},
		{ID: 1, Title: "Evening walk", Type: "walking"},
	}

	repo.EXPECT().ListActivities(ctx).Return(want, nil)

	activities, err := svc.ListActivities(ctx)

	require.NoError(t, err)
	assert.Equal(t, want, activities)
}

func TestListActivities_RepositoryFailure(t *testing.T) {
	ctrl, repo, svc := newTestActivitySvc(t)
	defer ctrl.Finish()

	ctx := context.Background()
	repo.EXPECT().ListActivities(ctx).Return(nil, errors.New("db failure"))

	_, err := svc.ListActivities(ctx)

	require.Error(t, err)
}

func TestCreateActivity_Success(t *testing.T) {
	ctrl, repo, svc := newTestActivitySvc(t)
	defer ctrl.Finish()

	ctx := context.Background()
	request := models.ActivityRequest{Title: "Morning run", Type: "running", Description: "5k"}

	repo.EXPECT().CreateActivity(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, activity models.Activity) (models.Activity, error) {
			activity.ID = 1
			return activity, nil
		})

	created, err := svc.CreateActivity(ctx, request)

	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, request.Title, created.Title)
}

func TestCreateActivity_MissingFields(t *testing.T) {
	ctrl, _, svc := newTestActivitySvc(t)
	defer ctrl.Finish()

	tests := []struct {
		name    string
		request models.ActivityRequest
	}{
		{"missing title", models.ActivityRequest{Type: "running"}},
		{"missing type", models.ActivityRequest{Title: "Run"}},
		{"blank title", models.ActivityRequest{Title: "   ", Type: "running"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateActivity(context.Background(), tt.request)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestUpdateActivity_Success(t *testing.T) {
	ctrl, repo, svc := newTestActivitySvc(t)
	defer ctrl.Finish()

	ctx := context.Background()
	request := models.ActivityRequest{Title: "Long run", Type: "running"}

	repo.EXPECT().UpdateActivity(ctx, models.Activity{
		ID:    5,
		Title: "Long run",
		Type:  "running",
	}).Return(models.Activity{ID: 5, Title: "Long run", Type: "running"}, nil)

	updated, err := svc.UpdateActivity(ctx, 5, request)

	require.NoError(t, err)
	assert.Equal(t, "Long run", updated.Title)
}

func TestUpdateActivity_NotFound(t *testing.T) {
	ctrl, repo, svc := newTestActivitySvc(t)
	defer ctrl.Finish()

	ctx := context.Background()
	repo.EXPECT().UpdateActivity(ctx, gomock.Any()).
		Return(models.Activity{}, store.ErrActivityNotFound)

	_, err := svc.UpdateActivity(ctx, 42, models.ActivityRequest{Title: "X", Type: "y"})

	assert.ErrorIs(t, err, store.ErrActivityNotFound)
}
