package models

import "github.com/google/uuid"

// Device is a wearable registered to exactly one user. Devices are
// provisioned outside of this service; the backend only reads the
// ownership mapping.
type Device struct {
	// ID is the vendor-assigned hardware identifier.
	ID string `json:"id"`

	// UserID references the owning user account.
	UserID uuid.UUID `json:"userId"`
}

// TableName returns the name of the database table
// associated with the Device model.
func (d Device) TableName() string {
	return "devices"
}
