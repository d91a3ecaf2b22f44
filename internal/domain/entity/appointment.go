package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Appointment is a one hour slot between a doctor and a patient.
// (doctor, date, time) and (patient, date, time) are both unique.
type Appointment struct {
	ID              int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID        uuid.UUID `gorm:"type:uuid;not null;index" json:"doctor_id"`
	PatientID       uuid.UUID `gorm:"type:uuid;not null;index" json:"patient_id"`
	AppointmentDate time.Time `gorm:"type:date;not null" json:"appointment_date"`
	AppointmentTime string    `gorm:"type:time;not null" json:"appointment_time"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Doctor  DoctorProfile  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Patient PatientProfile `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// DateString formats the appointment date as YYYY-MM-DD.
func (a *Appointment) DateString() string {
	return a.AppointmentDate.Format(DateLayout)
}

// TimeString returns the appointment time as HH:MM. Postgres returns
// time columns as HH:MM:SS, so the seconds are dropped.
func (a *Appointment) TimeString() string {
	if len(a.AppointmentTime) > 5 {
		return a.AppointmentTime[:5]
	}
	return a.AppointmentTime
}
