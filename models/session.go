package models

import "time"

// MeasurementView is the public projection of a Measurement embedded in a
// SessionPayload: only the fields a client needs to render the latest
// reading.
type MeasurementView struct {
	Value     string    `json:"value"`
	DeviceID  *string   `json:"deviceId"`
	CreatedAt time.Time `json:"createdAt"`
}

// SessionPayload is the transient aggregate returned by every
// identity-affecting operation: the user's public profile fields, a freshly
// signed bearer token, and the most recent measurement across all of the
// user's devices (null when no device has reported yet).
//
// It is never persisted; a new payload is assembled per request so the
// client always observes a fresh token and the freshest known reading.
type SessionPayload struct {
	Token             string           `json:"token"`
	FirstName         string           `json:"firstName"`
	LastName          string           `json:"lastName"`
	Email             string           `json:"email"`
	Number            string           `json:"number"`
	Gender            string           `json:"gender"`
	Age               int              `json:"age"`
	Height            *float64         `json:"height"`
	Weight            *float64         `json:"weight"`
	BloodType         string           `json:"bloodType"`
	LatestMeasurement *MeasurementView `json:"latestMeasurement"`
}

// NewMeasurementView projects a Measurement into its payload form.
func NewMeasurementView(m Measurement) *MeasurementView {
	return &MeasurementView{
		Value:     m.Value,
		DeviceID:  m.DeviceID,
		CreatedAt: m.CreatedAt,
	}
}
