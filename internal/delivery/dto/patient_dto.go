package dto

import (
	"time"

	"github.com/google/uuid"
)

// PatientUpdateSelfRequest holds the fields a patient may change on their own
// profile. Empty fields are left untouched.
type PatientUpdateSelfRequest struct {
	Email    string `json:"email" validate:"omitempty,email"`
	FullName string `json:"full_name" validate:"omitempty,min=2"`
	Address  string `json:"address" validate:"omitempty,max=255"`
	Phone    string `json:"phone" validate:"omitempty,min=6,max=20"`
}

// PatientProfileResponse represents patient profile data in responses
type PatientProfileResponse struct {
	UserID        uuid.UUID `json:"user_id"`
	Address       string    `json:"address,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	AdmissionDate string    `json:"admission_date,omitempty"`
	DischargeDate string    `json:"discharge_date,omitempty"`
	Condition     string    `json:"condition,omitempty"`
}

// PatientResponse represents a patient user with profile data
type PatientResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Address   string    `json:"address,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Condition string    `json:"condition,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}
