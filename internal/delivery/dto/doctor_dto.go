package dto

import (
	"github.com/google/uuid"
)

// Request DTOs

type CreateDoctorRequest struct {
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=6"`
	FullName       string `json:"full_name" validate:"required,min=2"`
	Specialization string `json:"specialization" validate:"required,max=100"`
	Biography      string `json:"biography" validate:"omitempty"`
}

// Response DTOs

type DoctorProfileResponse struct {
	UserID         uuid.UUID `json:"user_id"`
	Specialization string    `json:"specialization"`
	Biography      string    `json:"biography,omitempty"`
}

type DoctorResponse struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	FullName       string    `json:"full_name"`
	Specialization string    `json:"specialization"`
	Biography      string    `json:"biography,omitempty"`
	IsActive       *bool     `json:"is_active"`
}

// DoctorLoadResponse is a doctor with the size of their appointment history.
type DoctorLoadResponse struct {
	ID               uuid.UUID `json:"id"`
	FullName         string    `json:"full_name"`
	Specialization   string    `json:"specialization"`
	AppointmentCount int64     `json:"appointment_count"`
}

type DoctorListResponse struct {
	Doctors []DoctorLoadResponse `json:"doctors"`
	Total   int                  `json:"total"`
}
