package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account entity used for authentication and profile
// management. It contains identity attributes, mutable profile fields and
// credential-related data. Sensitive fields must never be exposed outside
// trusted boundaries.
type User struct {
	// ID is the immutable unique identifier of the user, generated
	// server-side at registration time.
	ID uuid.UUID `json:"-"`

	// FirstName and LastName are the user's display names.
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`

	// Email is the unique contact address used during authentication.
	Email string `json:"email"`

	// PasswordHash stores the user's password representation.
	// This value MUST be a bcrypt hash, never plaintext.
	// It is never serialized into any outbound payload.
	PasswordHash string `json:"-"`

	// Number is the contact phone number kept as an opaque digit string.
	// Large numbers overflow integer columns and leading zeroes are lost,
	// so the numeric representation used by early schema revisions is not kept.
	Number string `json:"number"`

	// Gender is a free-form short string ("male", "female", ...).
	Gender string `json:"gender"`

	// Age in full years.
	Age int `json:"age"`

	// Height (cm) and Weight (kg) are optional; nil means "not provided".
	Height *float64 `json:"height"`
	Weight *float64 `json:"weight"`

	// BloodType is an optional short code such as "A+" or "0-".
	BloodType string `json:"bloodType"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
