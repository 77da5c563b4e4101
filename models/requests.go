package models

// RegisterRequest is the inbound body of POST /api/auth/register.
type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Number    string `json:"number"`
	Gender    string `json:"gender"`
	Age       int    `json:"age"`
}

// LoginRequest is the inbound body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest is the inbound body of PUT /api/users/me.
//
// Every field is a pointer: nil means "leave untouched", a non-nil value is
// applied as-is. At least one field must be set for the request to be valid.
type UpdateProfileRequest struct {
	FirstName *string  `json:"firstName"`
	LastName  *string  `json:"lastName"`
	Number    *string  `json:"number"`
	Gender    *string  `json:"gender"`
	Age       *int     `json:"age"`
	Height    *float64 `json:"height"`
	Weight    *float64 `json:"weight"`
	BloodType *string  `json:"bloodType"`
}

// Empty reports whether no updatable field is present in the request.
func (r UpdateProfileRequest) Empty() bool {
	return r.FirstName == nil && r.LastName == nil && r.Number == nil &&
		r.Gender == nil && r.Age == nil && r.Height == nil &&
		r.Weight == nil && r.BloodType == nil
}

// ActivityRequest is the inbound body of POST /api/activities and
// PUT /api/activities/{id}.
type ActivityRequest struct {
	Title       string `json:"title"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

// AttachActivityRequest is the inbound body of
// PUT /api/measurements/{id}/activity.
type AttachActivityRequest struct {
	ActivityID int64 `json:"activityId"`
}
