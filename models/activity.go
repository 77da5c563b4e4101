package models

import "time"

// Activity is a user-defined label (e.g. "morning run") that measurements
// can be attached to.
type Activity struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the Activity model.
func (a Activity) TableName() string {
	return "activities"
}
