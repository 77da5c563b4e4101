// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daafh07

package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Daafh07/HeartbeatSenseDB/internal/service"
	"github.com/Daafh07/HeartbeatSenseDB/internal/store"
	"github.com/Daafh07/HeartbeatSenseDB/internal/utils"
	"github.com/Daafh07/HeartbeatSenseDB/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// authedRequest builds a request carrying an authenticated user ID, the way
// the auth middleware leaves it.
func authedRequest(method, target string, body string, userID uuid.UUID) *http.Request {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	return req.WithContext(context.WithValue(req.Context(), utils.UserIDCtxKey, userID))
}

// ─────────────────────────────────────────────
// GET /api/measurements
// ─────────────────────────────────────────────

func TestListMeasurements_Success(t *testing.T) {
	userID := uuid.New()
	deviceID := "dev-a"
	want := []models.Measurement{
		{ID: uuid.New(), DeviceID: &deviceID, Value: `{"hr":61}`, CreatedAt: time.Now().UTC()},
	}

	h := newTestHandler(t, &service.Services{
		MeasurementService: &mockMeasurementService{
			listForUserFn: func(_ context.Context, gotUser uuid.UUID, since *time.Time, limit uint64) ([]models.Measurement, error) {
				require.Equal(t, userID, gotUser)
				assert.Nil(t, since)
				assert.Zero(t, limit)
				return want, nil
			},
		},
	})

	rec := httptest.NewRecorder()
	h.listMeasurements(rec, authedRequest(http.MethodGet, "/api/measurements", "", userID))

	require.Equal(t, http.StatusOK, rec.Code)

	var got []models.Measurement
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, want[0].ID, got[0].ID)
}

func TestListMeasurements_QueryParamsPassedThrough(t *testing.T) {
	userID := uuid.New()
	wantSince := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	h := newTestHandler(t, &service.Services{
		MeasurementService: &mockMeasurementService{
			listForUserFn: func(_ context.Context, _ uuid.UUID, since *time.Time, limit uint64) ([]models.Measurement, error) {
				require.NotNil(t, since)
				assert.True(t, since.Equal(wantSince))
				assert.Equal(t, uint64(25), limit)
				return []models.Measurement{}, nil
			},
		},
	})

	target := "/api/measurements?since=2026-03-01T12:00:00Z&limit=25"
	rec := httptest.NewRecorder()
	h.listMeasurements(rec, authedRequest(http.MethodGet, target, "", userID))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListMeasurements_InvalidSince(t *testing.T) {
	h := newTestHandler(t, &service.Services{MeasurementService: &mockMeasurementService{}})

	rec := httptest.NewRecorder()
	h.listMeasurements(rec, authedRequest(http.MethodGet, "/api/measurements?since=yesterday", "", uuid.New()))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "since")
}

func TestListMeasurements_InvalidLimit(t *testing.T) {
	h := newTestHandler(t, &service.Services{MeasurementService: &mockMeasurementService{}})

	rec := httptest.NewRecorder()
	h.listMeasurements(rec, authedRequest(http.MethodGet, "/api/measurements?limit=-1", "", uuid.New()))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "limit")
}

func TestListMeasurements_NoUserIDInContext(t *testing.T) {
	h := newTestHandler(t, &service.Services{MeasurementService: &mockMeasurementService{}})

	req := httptest.NewRequest(http.MethodGet, "/api/measurements", nil)
	rec := httptest.NewRecorder()

	h.listMeasurements(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestListMeasurements_ServiceFailure(t *testing.T) {
	h := newTestHandler(t, &service.Services{
		MeasurementService: &mockMeasurementService{
			listForUserFn: func(_ context.Context, _ uuid.UUID, _ *time.Time, _ uint64) ([]models.Measurement, error) {
				return nil, errors.New("aggregation failed")
			},
		},
	})

	rec := httptest.NewRecorder()
	h.listMeasurements(rec, authedRequest(http.MethodGet, "/api/measurements", "", uuid.New()))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ─────────────────────────────────────────────
// PUT /api/measurements/{id}/activity
// ─────────────────────────────────────────────

func TestAttachActivity_Success(t *testing.T) {
	userID := uuid.New()
	measurementID := uuid.New()
	activityID := int64(3)

	h := newTestHandler(t, &service.Services{
		MeasurementService: &mockMeasurementService{
			attachActivityFn: func(_ context.Context, gotUser, gotMeasurement uuid.UUID, gotActivity int64) (models.Measurement, error) {
				require.Equal(t, userID, gotUser)
				require.Equal(t, measurementID, gotMeasurement)
				require.Equal(t, activityID, gotActivity)
				return models.Measurement{ID: gotMeasurement, ActivityID: &gotActivity}, nil
			},
		},
	})

	body := jsonBody(t, models.AttachActivityRequest{ActivityID: activityID})
	req := authedRequest(http.MethodPut, "/api/measurements/"+measurementID.String()+"/activity", body, userID)
	req = withURLParam(req, "id", measurementID.String())
	rec := httptest.NewRecorder()

	h.attachActivity(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.Measurement
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.NotNil(t, got.ActivityID)
	assert.Equal(t, activityID, *got.ActivityID)
}

func TestAttachActivity_BadMeasurementID(t *testing.T) {
	h := newTestHandler(t, &service.Services{MeasurementService: &mockMeasurementService{}})

	req := authedRequest(http.MethodPut, "/api/measurements/not-a-uuid/activity", "{}", uuid.New())
	req = withURLParam(req, "id", "not-a-uuid")
	rec := httptest.NewRecorder()

	h.attachActivity(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid measurement ID")
}

func TestAttachActivity_MeasurementNotFound(t *testing.T) {
	measurementID := uuid.New()

	h := newTestHandler(t, &service.Services{
		MeasurementService: &mockMeasurementService{
			attachActivityFn: func(_ context.Context, _, _ uuid.UUID, _ int64) (models.Measurement, error) {
				return models.Measurement{}, store.ErrMeasurementNotFound
			},
		},
	})

	body := jsonBody(t, models.AttachActivityRequest{ActivityID: 1})
	req := authedRequest(http.MethodPut, "/api/measurements/"+measurementID.String()+"/activity", body, uuid.New())
	req = withURLParam(req, "id", measurementID.String())
	rec := httptest.NewRecorder()

	h.attachActivity(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "measurement not found")
}

func TestAttachActivity_UnknownActivity(t *testing.T) {
	measurementID := uuid.New()

	h := newTestHandler(t, &service.Services{
		MeasurementService: &mockMeasurementService{
			attachActivityFn: func(_ context.Context, _, _ uuid.UUID, _ int64) (models.Measurement, error) {
				return models.Measurement{}, store.ErrActivityNotFound
			},
		},
	})

	body := jsonBody(t, models.AttachActivityRequest{ActivityID: 99})
	req := authedRequest(http.MethodPut, "/api/measurements/"+measurementID.String()+"/activity", body, uuid.New())
	req = withURLParam(req, "id", measurementID.String())
	rec := httptest.NewRecorder()

	h.attachActivity(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "activity not found")
}
