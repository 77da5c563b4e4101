package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Daafh07/HeartbeatSenseDB/internal/logger"
	"github.com/google/uuid"
)

func newTestMeasurementRepo(t *testing.T) (*measurementRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &measurementRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

var measurementColumns = []string{"id", "device_id", "value", "created_at", "activity_id"}

func TestLatestByDevice_Success(t *testing.T) {
	repo, mock, db := newTestMeasurementRepo(t)
	defer db.Close()

	ctx := context.Background()
	id := uuid.New()
	now := time.Now().UTC()

	rows := sqlmock.NewRows(measurementColumns).
		AddRow(id, "dev-a", "72", now, nil)

	mock.ExpectQuery("SELECT id, device_id, value, created_at, activity_id FROM measurements").
		WithArgs("dev-a").
		WillReturnRows(rows)

	m, err := repo.LatestByDevice(ctx, "dev-a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.ID != id {
		t.Errorf("expected ID %s, got %s", id, m.ID)
	}
	if m.Value != "72" {
		t.Errorf("expected value 72, got %s", m.Value)
	}
	if m.ActivityID != nil {
		t.Errorf("expected nil activity, got %v", *m.ActivityID)
	}
}

func TestLatestByDevice_NoReadings(t *testing.T) {
	repo, mock, db := newTestMeasurementRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT id, device_id, value, created_at, activity_id FROM measurements").
		WithArgs("silent-device").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.LatestByDevice(ctx, "silent-device")
	if !errors.Is(err, ErrMeasurementNotFound) {
		t.Fatalf("expected ErrMeasurementNotFound, got %v", err)
	}
}

func TestLatestByDevice_QueryError(t *testing.T) {
	repo, mock, db := newTestMeasurementRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT id, device_id, value, created_at, activity_id FROM measurements").
		WithArgs("dev-a").
		WillReturnError(errors.New("db failure"))

	_, err := repo.LatestByDevice(ctx, "dev-a")
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestListByDevice_Success(t *testing.T) {
	repo, mock, db := newTestMeasurementRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now().UTC()

	rows := sqlmock.NewRows(measurementColumns).
		AddRow(uuid.New(), "dev-a", "72", now, nil).
		AddRow(uuid.New(), "dev-a", "68", now.Add(-time.Hour), nil)

	mock.ExpectQuery("SELECT id, device_id, value, created_at, activity_id FROM measurements").
		WithArgs("dev-a").
		WillReturnRows(rows)

	measurements, err := repo.ListByDevice(ctx, "dev-a", nil, 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(measurements) != 2 {
		t.Fatalf("expected 2 measurements, got %d", len(measurements))
	}
}

func TestListByDevice_WithSince(t *testing.T) {
	repo, mock, db := newTestMeasurementRepo(t)
	defer db.Close()

	ctx := context.Background()
	since := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT id, device_id, value, created_at, activity_id FROM measurements").
		WithArgs("dev-a", since).
		WillReturnRows(sqlmock.NewRows(measurementColumns))

	measurements, err := repo.ListByDevice(ctx, "dev-a", &since, 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(measurements) != 0 {
		t.Errorf("expected empty result, got %d rows", len(measurements))
	}
}

func TestFindByID_Success(t *testing.T) {
	repo, mock, db := newTestMeasurementRepo(t)
	defer db.Close()

	ctx := context.Background()
	id := uuid.New()
	now := time.Now().UTC()

	rows := sqlmock.NewRows(measurementColumns).
		AddRow(id, "dev-a", "72", now, nil)

	mock.ExpectQuery("SELECT id, device_id, value, created_at, activity_id").
		WithArgs(id).
		WillReturnRows(rows)

	m, err := repo.FindByID(ctx, id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.ID != id {
		t.Errorf("expected ID %s, got %s", id, m.ID)
	}
}

func TestFindByID_NotFound(t *testing.T) {
	repo, mock, db := newTestMeasurementRepo(t)
	defer db.Close()

	ctx := context.Background()
	id := uuid.New()

	mock.ExpectQuery("SELECT id, device_id, value, created_at, activity_id").
		WithArgs(id).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByID(ctx, id)
	if !errors.Is(err, ErrMeasurementNotFound) {
		t.Fatalf("expected ErrMeasurementNotFound, got %v", err)
	}
}

func TestAttachActivity_Success(t *testing.T) {
	repo, mock, db := newTestMeasurementRepo(t)
	defer db.Close()

	ctx := context.Background()
	id := uuid.New()
	activityID := int64(7)
	now := time.Now().UTC()

	rows := sqlmock.NewRows(measurementColumns).
		AddRow(id, "dev-a", "72", now, activityID)

	mock.ExpectQuery("UPDATE measurements").
		WithArgs(activityID, id).
		WillReturnRows(rows)

	m, err := repo.AttachActivity(ctx, id, activityID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.ActivityID == nil || *m.ActivityID != activityID {
		t.Errorf("expected activity ID %d, got %v", activityID, m.ActivityID)
	}
}

func TestAttachActivity_MeasurementGone(t *testing.T) {
	repo, mock, db := newTestMeasurementRepo(t)
	defer db.Close()

	ctx := context.Background()
	id := uuid.New()

	mock.ExpectQuery("UPDATE measurements").
		WithArgs(int64(7), id).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.AttachActivity(ctx, id, 7)
	if !errors.Is(err, ErrMeasurementNotFound) {
		t.Fatalf("expected ErrMeasurementNotFound, got %v", err)
	}
}
