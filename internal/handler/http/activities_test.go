package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Daafh07/HeartbeatSenseDB/internal/service"
	"github.com/Daafh07/HeartbeatSenseDB/internal/store"
	"github.com/Daafh07/HeartbeatSenseDB/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withURLParam injects a chi route parameter into the request context so
// handlers can be exercised without a full router.
func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestListActivities_ReturnsCatalogue(t *testing.T) {
	want := []models.Activity{
		{ID: 2, Title: "Morning run", Type: "running"},
		{ID: 1, Title: "Evening walk", Type: "walking"},
	}

	h := newTestHandler(t, &service.Services{
		ActivityService: &mockActivityService{
			listActivitiesFn: func(_ context.Context) ([]models.Activity, error) {
				return want, nil
			},
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/activities", nil)
	rec := httptest.NewRecorder()

	h.listActivities(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []models.Activity
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, want, got)
}

func TestListActivities_Failure(t *testing.T) {
	h := newTestHandler(t, &service.Services{
		ActivityService: &mockActivityService{
			listActivitiesFn: func(_ context.Context) ([]models.Activity, error) {
				return nil, errors.New("db failure")
			},
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/activities", nil)
	rec := httptest.NewRecorder()

	h.listActivities(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestCreateActivity_Success(t *testing.T) {
	h := newTestHandler(t, &service.Services{
		ActivityService: &mockActivityService{
			createActivityFn: func(_ context.Context, r models.ActivityRequest) (models.Activity, error) {
				return models.Activity{ID: 1, Title: r.Title, Type: r.Type}, nil
			},
		},
	})

	body := jsonBody(t, models.ActivityRequest{Title: "Morning run", Type: "running"})
	req := httptest.NewRequest(http.MethodPost, "/api/activities", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.createActivity(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Activity
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, int64(1), created.ID)
}

func TestCreateActivity_InvalidData(t *testing.T) {
	h := newTestHandler(t, &service.Services{
		ActivityService: &mockActivityService{
			createActivityFn: func(_ context.Context, _ models.ActivityRequest) (models.Activity, error) {
				return models.Activity{}, service.ErrInvalidDataProvided
			},
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/activities", strings.NewReader(`{"title":""}`))
	rec := httptest.NewRecorder()

	h.createActivity(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateActivity_Success(t *testing.T) {
	h := newTestHandler(t, &service.Services{
		ActivityService: &mockActivityService{
			updateActivityFn: func(_ context.Context, id int64, r models.ActivityRequest) (models.Activity, error) {
				require.Equal(t, int64(5), id)
				return models.Activity{ID: id, Title: r.Title, Type: r.Type}, nil
			},
		},
	})

	body := jsonBody(t, models.ActivityRequest{Title: "Long run", Type: "running"})
	req := httptest.NewRequest(http.MethodPut, "/api/activities/5", strings.NewReader(body))
	req = withURLParam(req, "id", "5")
	rec := httptest.NewRecorder()

	h.updateActivity(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateActivity_BadID(t *testing.T) {
	h := newTestHandler(t, &service.Services{ActivityService: &mockActivityService{}})

	req := httptest.NewRequest(http.MethodPut, "/api/activities/abc", strings.NewReader("{}"))
	req = withURLParam(req, "id", "abc")
	rec := httptest.NewRecorder()

	h.updateActivity(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid activity ID")
}

func TestUpdateActivity_NotFound(t *testing.T) {
	h := newTestHandler(t, &service.Services{
		ActivityService: &mockActivityService{
			updateActivityFn: func(_ context.Context, _ int64, _ models.ActivityRequest) (models.Activity, error) {
				return models.Activity{}, store.ErrActivityNotFound
			},
		},
	})

	body := jsonBody(t, models.ActivityRequest{Title: "X", Type: "y"})
	req := httptest.NewRequest(http.MethodPut, "/api/activities/42", strings.NewReader(body))
	req = withURLParam(req, "id", "42")
	rec := httptest.NewRecorder()

	h.updateActivity(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "activity not found")
}
