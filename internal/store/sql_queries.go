package store

import (
	"strings"
	"time"

	"github.com/Daafh07/HeartbeatSenseDB/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

// psql is the squirrel statement builder configured for PostgreSQL
// placeholder format ($1, $2, ...).
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// userColumns is the canonical column list scanned into a models.User.
var userColumns = []string{
	"id", "first_name", "last_name", "email", "password",
	"number", "gender", "age", "height", "weight", "blood_type", "created_at",
}

const (
	createUser = `INSERT INTO users (id, first_name, last_name, email, password, number, gender, age, created_at)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    RETURNING id, first_name, last_name, email, password, number, gender, age, height, weight, blood_type, created_at;`

	findUserByEmail = `SELECT id, first_name, last_name, email, password, number, gender, age, height, weight, blood_type, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT id, first_name, last_name, email, password, number, gender, age, height, weight, blood_type, created_at
    FROM users
    WHERE id = $1;`

	findDevicesOfUser = `SELECT id
    FROM devices
    WHERE user_id = $1
    ORDER BY id;`

	findMeasurementByID = `SELECT id, device_id, value, created_at, activity_id
    FROM measurements
    WHERE id = $1;`

	attachActivityToMeasurement = `UPDATE measurements
    SET activity_id = $1
    WHERE id = $2
    RETURNING id, device_id, value, created_at, activity_id;`

	listActivities = `SELECT id, title, type, description, created_at
    FROM activities
    ORDER BY created_at DESC;`

	createActivity = `INSERT INTO activities (title, type, description)
    VALUES ($1, $2, $3)
    RETURNING id, title, type, description, created_at;`

	updateActivity = `UPDATE activities
    SET title = $1, type = $2, description = $3
    WHERE id = $4
    RETURNING id, title, type, description, created_at;`

	findActivityByID = `SELECT id, title, type, description, created_at
    FROM activities
    WHERE id = $1;`
)

// buildUpdateUserQuery builds a partial UPDATE for the users table touching
// only the columns present in update. Absent fields are left untouched, not
// cleared. The statement ends with a RETURNING clause so the caller receives
// the canonical post-update row.
//
// Returns [ErrBuildingSQLQuery]-wrapped errors when no column is set or the
// builder fails.
func buildUpdateUserQuery(userID uuid.UUID, update models.UpdateProfileRequest) (string, []any, error) {
	if update.Empty() {
		return "", nil, ErrBuildingSQLQuery
	}

	builder := psql.Update("users")

	if update.FirstName != nil {
		builder = builder.Set("first_name", *update.FirstName)
	}
	if update.LastName != nil {
		builder = builder.Set("last_name", *update.LastName)
	}
	if update.Number != nil {
		builder = builder.Set("number", *update.Number)
	}
	if update.Gender != nil {
		builder = builder.Set("gender", *update.Gender)
	}
	if update.Age != nil {
		builder = builder.Set("age", *update.Age)
	}
	if update.Height != nil {
		builder = builder.Set("height", *update.Height)
	}
	if update.Weight != nil {
		builder = builder.Set("weight", *update.Weight)
	}
	if update.BloodType != nil {
		builder = builder.Set("blood_type", *update.BloodType)
	}

	query, args, err := builder.
		Where(sq.Eq{"id": userID}).
		Suffix("RETURNING " + strings.Join(userColumns, ", ")).
		ToSql()
	if err != nil {
		return "", nil, err
	}

	return query, args, nil
}

// buildLatestMeasurementQuery builds the per-device top-1 query: the single
// most recent reading of one device, ordered by creation timestamp
// descending.
func buildLatestMeasurementQuery(deviceID string) (string, []any, error) {
	return psql.
		Select("id", "device_id", "value", "created_at", "activity_id").
		From("measurements").
		Where(sq.Eq{"device_id": deviceID}).
		OrderBy("created_at DESC").
		Limit(1).
		ToSql()
}

// buildListMeasurementsQuery builds the per-device listing query with an
// optional lower time bound and a row cap.
func buildListMeasurementsQuery(deviceID string, since *time.Time, limit uint64) (string, []any, error) {
	builder := psql.
		Select("id", "device_id", "value", "created_at", "activity_id").
		From("measurements").
		Where(sq.Eq{"device_id": deviceID})

	if since != nil {
		builder = builder.Where(sq.Gt{"created_at": *since})
	}

	return builder.
		OrderBy("created_at DESC").
		Limit(limit).
		ToSql()
}
