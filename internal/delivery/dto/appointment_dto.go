package dto

import "github.com/google/uuid"

// AutoScheduleResponse is returned when the scheduler books an appointment.
type AutoScheduleResponse struct {
	Status        string    `json:"status"`
	AppointmentID int64     `json:"appointment_id"`
	DoctorID      uuid.UUID `json:"doctor_id"`
	DoctorName    string    `json:"doctor_name"`
	Date          string    `json:"date"`
	Time          string    `json:"time"`
}

type AppointmentResponse struct {
	ID          int64     `json:"id"`
	DoctorID    uuid.UUID `json:"doctor_id"`
	DoctorName  string    `json:"doctor_name"`
	PatientID   uuid.UUID `json:"patient_id"`
	PatientName string    `json:"patient_name"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
