package dto

import (
	"time"

	"github.com/google/uuid"
)

type TreatmentResponse struct {
	ID           int64  `json:"id"`
	Medicine     string `json:"medicine"`
	Prescription string `json:"prescription,omitempty"`
}

type MedicalRecordResponse struct {
	ID         int64               `json:"id"`
	PatientID  uuid.UUID           `json:"patient_id"`
	DoctorID   uuid.UUID           `json:"doctor_id"`
	DoctorName string              `json:"doctor_name"`
	Symptoms   string              `json:"symptoms,omitempty"`
	Diagnosis  string              `json:"diagnosis,omitempty"`
	Treatments []TreatmentResponse `json:"treatments"`
	CreatedAt  time.Time           `json:"created_at"`
}

type MedicalRecordListResponse struct {
	Records []MedicalRecordResponse `json:"records"`
	Total   int                     `json:"total"`
}
