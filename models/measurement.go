package models

import (
	"time"

	"github.com/google/uuid"
)

// Measurement is a single biometric reading ingested from a wearable.
// Readings are written by the device ingestion pipeline; this backend
// only reads them and, at most, attaches an activity reference.
type Measurement struct {
	// ID is the unique identifier of the reading.
	ID uuid.UUID `json:"id"`

	// DeviceID references the originating device. It is nullable because
	// a reading may arrive before its device link is established.
	DeviceID *string `json:"deviceId"`

	// Value is the opaque serialized sensor payload.
	Value string `json:"value"`

	// CreatedAt is the ingestion timestamp used for "most recent" ordering.
	CreatedAt time.Time `json:"createdAt"`

	// ActivityID optionally links the reading to a user-defined activity.
	ActivityID *int64 `json:"activityId"`
}

// TableName returns the name of the database table
// associated with the Measurement model.
func (m Measurement) TableName() string {
	return "measurements"
}
